package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"trenddit/aggregation"
	"trenddit/dto"
)

func TestNewKPIDTOFormatsChange(t *testing.T) {
	up := 50.0
	out := dto.NewKPIDTO(aggregation.KPISummary{
		TotalPosts:      25,
		MeanSentiment:   0.2,
		VolumeChangePct: &up,
		TopSubreddit:    "golang",
	})
	assert.Equal(t, "+50.0%", out.VolumeChange)
	assert.Equal(t, "golang", out.TopSubreddit)

	down := -12.34
	out = dto.NewKPIDTO(aggregation.KPISummary{VolumeChangePct: &down})
	assert.Equal(t, "-12.3%", out.VolumeChange)
}

func TestNewKPIDTOPlaceholders(t *testing.T) {
	out := dto.NewKPIDTO(aggregation.KPISummary{})
	assert.Equal(t, "—", out.VolumeChange)
	assert.Equal(t, "—", out.TopSubreddit)
}

func TestNewAggregateDTOCarriesViewFailures(t *testing.T) {
	report := aggregation.Report{
		Clusters: aggregation.View[[]aggregation.TopicCluster]{
			Unavailable: true,
			Reason:      "insufficient data",
		},
	}

	out := dto.NewAggregateDTO("golang", "24h", report)
	assert.Equal(t, "golang", out.Keyword)
	assert.True(t, out.Clusters.Unavailable)
	assert.Equal(t, "insufficient data", out.Clusters.Reason)
	assert.False(t, out.Timeline.Unavailable)
}
