package eventbus

// Global topic declarations. Kept in one place so they can be swapped for
// configuration later.

var (
	TopicIngestEvents = NewTopic("trenddit.ingest.events")
)
