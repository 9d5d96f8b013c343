package aggregation

import "trenddit/models"

// KPISummary holds the headline numbers for a post window.
type KPISummary struct {
	TotalPosts    int     `json:"total_posts"`
	MeanSentiment float64 `json:"mean_sentiment"`

	// VolumeChangePct compares the two most recent timeline buckets. Nil
	// when fewer than two buckets exist or the previous bucket is empty.
	VolumeChangePct *float64 `json:"volume_change_pct,omitempty"`

	// TopSubreddit is the modal subreddit across the window, "" when no
	// post carries one.
	TopSubreddit string `json:"top_subreddit,omitempty"`
}

// KPIs computes the summary for a post set and its timeline. Missing
// sentiment scores count as 0 in the mean.
func KPIs(posts []models.Post, timeline []TimelineBucket) KPISummary {
	summary := KPISummary{TotalPosts: len(posts)}
	if len(posts) == 0 {
		return summary
	}

	sum := 0.0
	for _, p := range posts {
		if p.SentimentScore != nil {
			sum += *p.SentimentScore
		}
	}
	summary.MeanSentiment = sum / float64(len(posts))

	if len(timeline) >= 2 {
		prev := timeline[len(timeline)-2].Volume
		last := timeline[len(timeline)-1].Volume
		if prev > 0 {
			pct := (float64(last) - float64(prev)) / float64(prev) * 100
			summary.VolumeChangePct = &pct
		}
	}

	summary.TopSubreddit = modalSubreddit(posts)
	return summary
}

// modalSubreddit returns the most frequent subreddit, ties broken by first
// appearance.
func modalSubreddit(posts []models.Post) string {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, p := range posts {
		name := p.Metadata.SubredditOrEmpty()
		if name == "" {
			continue
		}
		if counts[name] == 0 {
			order = append(order, name)
		}
		counts[name]++
	}

	top, topCount := "", 0
	for _, name := range order {
		if counts[name] > topCount {
			top, topCount = name, counts[name]
		}
	}
	return top
}
