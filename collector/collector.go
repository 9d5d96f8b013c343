package collector

import (
	"context"
	"time"
)

// RawPost is what a source connector returns before enrichment.
type RawPost struct {
	SourceID    string
	Title       string
	Body        string
	Author      string
	URL         string
	Score       int
	CreatedAt   time.Time
	Subreddit   string
	NumComments int
	FeedTitle   string
}

// Source is the connector capability: search a social source by keyword and
// return up to limit raw posts, newest first. Any connector satisfying this
// contract is interchangeable.
type Source interface {
	Name() string
	Search(ctx context.Context, keyword string, limit int) ([]RawPost, error)
}
