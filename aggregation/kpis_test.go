package aggregation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"trenddit/aggregation"
	"trenddit/models"
)

func TestKPIsVolumeChange(t *testing.T) {
	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	var posts []models.Post
	for i := 0; i < 10; i++ {
		posts = append(posts, post(base.Add(time.Duration(i)*time.Minute), 0.2))
	}
	for i := 0; i < 15; i++ {
		posts = append(posts, post(base.Add(15*time.Minute+time.Duration(i)*time.Second), 0.2))
	}

	timeline := aggregation.Timeline(posts, 24*time.Hour)
	summary := aggregation.KPIs(posts, timeline)

	assert.Equal(t, 25, summary.TotalPosts)
	if assert.NotNil(t, summary.VolumeChangePct) {
		assert.InDelta(t, 50.0, *summary.VolumeChangePct, 1e-9)
	}
}

func TestKPIsVolumeChangeUndefined(t *testing.T) {
	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	posts := []models.Post{post(base, 0.1), post(base.Add(time.Minute), 0.3)}

	// single bucket, nothing to compare against
	timeline := aggregation.Timeline(posts, 24*time.Hour)
	summary := aggregation.KPIs(posts, timeline)
	assert.Nil(t, summary.VolumeChangePct)
}

func TestKPIsMeanSentiment(t *testing.T) {
	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	posts := []models.Post{
		post(base, 0.6),
		post(base, -0.2),
		{CreatedAt: base}, // missing score counts as 0
	}

	summary := aggregation.KPIs(posts, nil)
	assert.InDelta(t, 0.4/3, summary.MeanSentiment, 1e-9)
}

func TestKPIsTopSubreddit(t *testing.T) {
	posts := []models.Post{
		{Metadata: models.PostMetadata{Subreddit: "golang"}},
		{Metadata: models.PostMetadata{Subreddit: "rust"}},
		{Metadata: models.PostMetadata{Subreddit: "golang"}},
		{}, // non-reddit post, no subreddit
	}

	summary := aggregation.KPIs(posts, nil)
	assert.Equal(t, "golang", summary.TopSubreddit)
}

func TestKPIsEmpty(t *testing.T) {
	summary := aggregation.KPIs(nil, nil)
	assert.Zero(t, summary.TotalPosts)
	assert.Zero(t, summary.MeanSentiment)
	assert.Nil(t, summary.VolumeChangePct)
	assert.Empty(t, summary.TopSubreddit)
}
