package aggregation

import (
	"sort"
	"time"

	"trenddit/models"
)

// TimelineBucket is one fixed-width window of the sentiment timeline.
type TimelineBucket struct {
	BucketStart  time.Time `json:"bucket_start"`
	AvgSentiment float64   `json:"avg_sentiment"`
	Volume       int       `json:"volume"`
}

// BucketWidth picks the bucket size for a query window: 15 minutes up to a
// day, one hour beyond that.
func BucketWidth(window time.Duration) time.Duration {
	if window <= 24*time.Hour {
		return 15 * time.Minute
	}
	return time.Hour
}

// Timeline buckets posts by created_at and computes mean sentiment and
// volume per bucket. Missing sentiment scores count as 0 in the mean.
// Buckets between the first and last post that hold no posts report zero
// volume but carry the last known mean forward, so the sentiment series has
// no gaps.
func Timeline(posts []models.Post, window time.Duration) []TimelineBucket {
	if len(posts) == 0 {
		return nil
	}
	width := BucketWidth(window)

	type acc struct {
		sum   float64
		count int
	}
	sums := make(map[time.Time]*acc)
	for _, p := range posts {
		bucket := p.CreatedAt.UTC().Truncate(width)
		a := sums[bucket]
		if a == nil {
			a = &acc{}
			sums[bucket] = a
		}
		if p.SentimentScore != nil {
			a.sum += *p.SentimentScore
		}
		a.count++
	}

	starts := make([]time.Time, 0, len(sums))
	for t := range sums {
		starts = append(starts, t)
	}
	sort.Slice(starts, func(i, j int) bool { return starts[i].Before(starts[j]) })

	first, last := starts[0], starts[len(starts)-1]
	var (
		out      []TimelineBucket
		lastMean float64
	)
	for t := first; !t.After(last); t = t.Add(width) {
		bucket := TimelineBucket{BucketStart: t}
		if a, ok := sums[t]; ok {
			bucket.AvgSentiment = a.sum / float64(a.count)
			bucket.Volume = a.count
			lastMean = bucket.AvgSentiment
		} else {
			// forward-fill the sentiment series, volume stays zero
			bucket.AvgSentiment = lastMean
		}
		out = append(out, bucket)
	}
	return out
}
