package aggregation

import (
	"errors"
	"fmt"
	"time"

	"trenddit/internal/logger"
	"trenddit/models"
)

// View wraps one derived view so it can fail on its own: a broken view
// reports unavailable with a reason while its siblings still render.
type View[T any] struct {
	Value       T      `json:"value,omitempty"`
	Unavailable bool   `json:"unavailable,omitempty"`
	Reason      string `json:"reason,omitempty"`
}

// Report bundles the four derived views over one post window.
type Report struct {
	Timeline View[[]TimelineBucket] `json:"timeline"`
	TopTerms View[[]TermCount]      `json:"top_terms"`
	Clusters View[[]TopicCluster]   `json:"clusters"`
	KPIs     View[KPISummary]       `json:"kpis"`
}

// BuildReport computes all four views for the given posts and query window.
// It is a pure function of the post set; each view degrades independently
// and a panic inside one never takes down the others.
func BuildReport(posts []models.Post, window time.Duration, topN int) Report {
	var report Report

	report.Timeline = computeView(func() ([]TimelineBucket, error) {
		return Timeline(posts, window), nil
	})
	report.TopTerms = computeView(func() ([]TermCount, error) {
		return TopTerms(posts, topN), nil
	})
	report.Clusters = computeView(func() ([]TopicCluster, error) {
		return Clusters(posts)
	})
	report.KPIs = computeView(func() (KPISummary, error) {
		return KPIs(posts, report.Timeline.Value), nil
	})

	return report
}

func computeView[T any](compute func() (T, error)) (view View[T]) {
	defer func() {
		if r := recover(); r != nil {
			logger.Log.Errorf("aggregation view panicked: %v", r)
			view = View[T]{Unavailable: true, Reason: fmt.Sprintf("view failed: %v", r)}
		}
	}()

	value, err := compute()
	if err != nil {
		if errors.Is(err, ErrInsufficientData) {
			return View[T]{Unavailable: true, Reason: "insufficient data"}
		}
		logger.Log.Errorf("aggregation view failed: %v", err)
		return View[T]{Unavailable: true, Reason: err.Error()}
	}
	return View[T]{Value: value}
}
