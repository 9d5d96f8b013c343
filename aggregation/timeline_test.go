package aggregation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"trenddit/aggregation"
	"trenddit/models"
)

func post(created time.Time, score float64) models.Post {
	return models.Post{CreatedAt: created, SentimentScore: &score}
}

func TestBucketWidth(t *testing.T) {
	assert.Equal(t, 15*time.Minute, aggregation.BucketWidth(time.Hour))
	assert.Equal(t, 15*time.Minute, aggregation.BucketWidth(24*time.Hour))
	assert.Equal(t, time.Hour, aggregation.BucketWidth(7*24*time.Hour))
}

func TestTimelineFifteenMinuteBuckets(t *testing.T) {
	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	posts := []models.Post{
		post(base, 0.2),
		post(base.Add(10*time.Minute), -0.4),
		post(base.Add(20*time.Minute), 0.6),
	}

	timeline := aggregation.Timeline(posts, 24*time.Hour)
	assert.Len(t, timeline, 2)

	assert.Equal(t, base, timeline[0].BucketStart)
	assert.InDelta(t, -0.1, timeline[0].AvgSentiment, 1e-9)
	assert.Equal(t, 2, timeline[0].Volume)

	assert.Equal(t, base.Add(15*time.Minute), timeline[1].BucketStart)
	assert.InDelta(t, 0.6, timeline[1].AvgSentiment, 1e-9)
	assert.Equal(t, 1, timeline[1].Volume)
}

func TestTimelineForwardFill(t *testing.T) {
	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	posts := []models.Post{
		post(base, 0.5),
		post(base.Add(time.Hour), -0.5),
	}

	timeline := aggregation.Timeline(posts, 24*time.Hour)
	assert.Len(t, timeline, 5)

	// interior buckets carry the last mean forward at zero volume
	for _, b := range timeline[1:4] {
		assert.Equal(t, 0.5, b.AvgSentiment)
		assert.Zero(t, b.Volume)
	}
	assert.Equal(t, -0.5, timeline[4].AvgSentiment)
	assert.Equal(t, 1, timeline[4].Volume)
}

func TestTimelineHourlyBucketsForLongWindows(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	posts := []models.Post{
		post(base.Add(5*time.Minute), 0.1),
		post(base.Add(50*time.Minute), 0.3),
	}

	timeline := aggregation.Timeline(posts, 7*24*time.Hour)
	assert.Len(t, timeline, 1)
	assert.Equal(t, base, timeline[0].BucketStart)
	assert.Equal(t, 2, timeline[0].Volume)
}

func TestTimelineMissingScoresCountAsZero(t *testing.T) {
	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	score := 0.8
	posts := []models.Post{
		{CreatedAt: base, SentimentScore: &score},
		{CreatedAt: base}, // unenriched record
	}

	timeline := aggregation.Timeline(posts, 24*time.Hour)
	assert.Len(t, timeline, 1)
	assert.InDelta(t, 0.4, timeline[0].AvgSentiment, 1e-9)
}

func TestTimelineEmpty(t *testing.T) {
	assert.Nil(t, aggregation.Timeline(nil, 24*time.Hour))
}
