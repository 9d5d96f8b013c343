package aggregation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"trenddit/aggregation"
	"trenddit/models"
)

func TestBuildReportViewsDegradeIndependently(t *testing.T) {
	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	posts := []models.Post{
		{Title: "first post", CreatedAt: base},
		{Title: "second post", CreatedAt: base.Add(time.Minute)},
	}

	report := aggregation.BuildReport(posts, 24*time.Hour, 30)

	// too few posts to cluster, the other views still render
	assert.True(t, report.Clusters.Unavailable)
	assert.Equal(t, "insufficient data", report.Clusters.Reason)

	assert.False(t, report.Timeline.Unavailable)
	assert.NotEmpty(t, report.Timeline.Value)
	assert.False(t, report.TopTerms.Unavailable)
	assert.False(t, report.KPIs.Unavailable)
	assert.Equal(t, 2, report.KPIs.Value.TotalPosts)
}

func TestBuildReportFullWindow(t *testing.T) {
	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	posts := make([]models.Post, 20)
	for i := range posts {
		vec := make([]float32, models.EmbeddingDim)
		vec[i%2] = 1
		score := 0.3
		posts[i] = models.Post{
			Title:          "stable diffusion release",
			CreatedAt:      base.Add(time.Duration(i) * time.Minute),
			SentimentScore: &score,
			Embedding:      vec,
		}
	}

	report := aggregation.BuildReport(posts, 24*time.Hour, 30)

	assert.False(t, report.Timeline.Unavailable)
	assert.False(t, report.TopTerms.Unavailable)
	assert.False(t, report.Clusters.Unavailable)
	assert.Len(t, report.Clusters.Value, 2)
	assert.InDelta(t, 0.3, report.KPIs.Value.MeanSentiment, 1e-9)
}

func TestBuildReportEmpty(t *testing.T) {
	report := aggregation.BuildReport(nil, 24*time.Hour, 30)

	assert.True(t, report.Clusters.Unavailable)
	assert.False(t, report.KPIs.Unavailable)
	assert.Zero(t, report.KPIs.Value.TotalPosts)
}
