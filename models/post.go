package models

import (
	"fmt"
	"time"
)

// Post sources. The record ID is derived from these, so renaming a source
// would break deduplication against already persisted rows.
const (
	SourceReddit = "reddit"
	SourceRSS    = "rss"
)

// Sentiment labels attached during enrichment.
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// EmbeddingDim is the fixed output dimension of the embedding model
// (all-MiniLM-L6-v2 class models).
const EmbeddingDim = 384

// Post represents one ingested social-media post.
// Collection: posts. Documents are append-only: written once by the
// ingestion pipeline after enrichment and never mutated afterwards.
type Post struct {
	ID             string       `bson:"_id" json:"id"`
	Source         string       `bson:"source" json:"source"`
	SourceID       string       `bson:"source_id" json:"source_id"`
	Keyword        string       `bson:"keyword" json:"keyword"`
	Title          string       `bson:"title,omitempty" json:"title,omitempty"`
	Body           string       `bson:"body,omitempty" json:"body,omitempty"`
	Author         string       `bson:"author,omitempty" json:"author,omitempty"`
	URL            string       `bson:"url" json:"url"`
	Score          int          `bson:"score" json:"score"`
	CreatedAt      time.Time    `bson:"created_at" json:"created_at"`
	InsertedAt     time.Time    `bson:"inserted_at" json:"inserted_at"`
	Metadata       PostMetadata `bson:"metadata" json:"metadata"`
	SentimentScore *float64     `bson:"sentiment_score,omitempty" json:"sentiment_score,omitempty"`
	SentimentLabel string       `bson:"sentiment_label,omitempty" json:"sentiment_label,omitempty"`
	Embedding      []float32    `bson:"embedding,omitempty" json:"embedding,omitempty"`
}

// PostID builds the deterministic record ID for a source/source_id pair.
// The same underlying post always maps to the same ID, which is what makes
// ingestion idempotent.
func PostID(source, sourceID string) string {
	return fmt.Sprintf("%s:%s", source, sourceID)
}

// FullText returns the text used for sentiment scoring and embedding.
func (p *Post) FullText() string {
	return p.Title + "\n" + p.Body
}

// PostMetadata holds source-specific attributes. Fields are typed rather
// than kept in a free-form map so a missing key is a zero value, not a
// silent lookup miss.
type PostMetadata struct {
	Subreddit   string            `bson:"subreddit,omitempty" json:"subreddit,omitempty"`
	NumComments int               `bson:"num_comments,omitempty" json:"num_comments,omitempty"`
	FeedTitle   string            `bson:"feed_title,omitempty" json:"feed_title,omitempty"`
	Extra       map[string]string `bson:"extra,omitempty" json:"extra,omitempty"`
}

// SubredditOrEmpty returns the subreddit name, or "" for posts that did not
// come from reddit.
func (m PostMetadata) SubredditOrEmpty() string {
	return m.Subreddit
}
