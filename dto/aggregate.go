package dto

import (
	"fmt"
	"time"

	"trenddit/aggregation"
)

// TimelinePointDTO is one bucket of the sentiment timeline.
type TimelinePointDTO struct {
	BucketStart  time.Time `json:"bucket_start"`
	AvgSentiment float64   `json:"avg_sentiment"`
	Volume       int       `json:"volume"`
}

// TermCountDTO is one ranked n-gram.
type TermCountDTO struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// ClusterDTO is one approximate topic cluster.
type ClusterDTO struct {
	ID             int    `json:"id"`
	Size           int    `json:"size"`
	Representative string `json:"representative"`
	URL            string `json:"url,omitempty"`
}

// KPIDTO carries the headline numbers. VolumeChange and TopSubreddit are
// pre-formatted for display: an em dash placeholder when undefined, a signed
// percentage like "+50.0%" otherwise.
type KPIDTO struct {
	TotalPosts    int     `json:"total_posts"`
	MeanSentiment float64 `json:"mean_sentiment"`
	VolumeChange  string  `json:"volume_change"`
	TopSubreddit  string  `json:"top_subreddit"`
}

// ViewDTO wraps one aggregate view so a failed view reports its reason while
// the siblings still carry data.
type ViewDTO[T any] struct {
	Value       T      `json:"value,omitempty"`
	Unavailable bool   `json:"unavailable,omitempty"`
	Reason      string `json:"reason,omitempty"`
}

// AggregateDTO is the full read-side aggregate response for one query window.
type AggregateDTO struct {
	Keyword  string                      `json:"keyword"`
	Window   string                      `json:"window"`
	Timeline ViewDTO[[]TimelinePointDTO] `json:"timeline"`
	TopTerms ViewDTO[[]TermCountDTO]     `json:"top_terms"`
	Clusters ViewDTO[[]ClusterDTO]       `json:"clusters"`
	KPIs     ViewDTO[KPIDTO]             `json:"kpis"`
}

const placeholder = "—"

// NewAggregateDTO converts an aggregation report into its API shape.
func NewAggregateDTO(keyword, window string, report aggregation.Report) AggregateDTO {
	return AggregateDTO{
		Keyword:  keyword,
		Window:   window,
		Timeline: mapView(report.Timeline, newTimelinePoints),
		TopTerms: mapView(report.TopTerms, newTermCounts),
		Clusters: mapView(report.Clusters, newClusters),
		KPIs:     mapView(report.KPIs, NewKPIDTO),
	}
}

func mapView[T, U any](view aggregation.View[T], convert func(T) U) ViewDTO[U] {
	if view.Unavailable {
		return ViewDTO[U]{Unavailable: true, Reason: view.Reason}
	}
	return ViewDTO[U]{Value: convert(view.Value)}
}

func newTimelinePoints(buckets []aggregation.TimelineBucket) []TimelinePointDTO {
	out := make([]TimelinePointDTO, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, TimelinePointDTO{
			BucketStart:  b.BucketStart,
			AvgSentiment: b.AvgSentiment,
			Volume:       b.Volume,
		})
	}
	return out
}

func newTermCounts(terms []aggregation.TermCount) []TermCountDTO {
	out := make([]TermCountDTO, 0, len(terms))
	for _, tc := range terms {
		out = append(out, TermCountDTO{Term: tc.Term, Count: tc.Count})
	}
	return out
}

func newClusters(clusters []aggregation.TopicCluster) []ClusterDTO {
	out := make([]ClusterDTO, 0, len(clusters))
	for _, c := range clusters {
		out = append(out, ClusterDTO{
			ID:             c.ID,
			Size:           c.Size,
			Representative: c.Representative,
			URL:            c.URL,
		})
	}
	return out
}

// NewKPIDTO formats the KPI summary for display.
func NewKPIDTO(summary aggregation.KPISummary) KPIDTO {
	out := KPIDTO{
		TotalPosts:    summary.TotalPosts,
		MeanSentiment: summary.MeanSentiment,
		VolumeChange:  placeholder,
		TopSubreddit:  summary.TopSubreddit,
	}
	if summary.VolumeChangePct != nil {
		out.VolumeChange = fmt.Sprintf("%+.1f%%", *summary.VolumeChangePct)
	}
	if out.TopSubreddit == "" {
		out.TopSubreddit = placeholder
	}
	return out
}
