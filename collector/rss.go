package collector

import (
	"context"
	"crypto/tls"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"trenddit/internal/logger"
	"trenddit/models"
)

const rssTimeout = 30 * time.Second

// RSSSource searches a fixed list of feeds for items mentioning the
// keyword. It exists so the pipeline can run against non-reddit sources
// through the same connector contract.
type RSSSource struct {
	feeds  []string
	client *http.Client
}

func NewRSSSource(feeds []string) *RSSSource {
	return &RSSSource{
		feeds: feeds,
		client: &http.Client{
			Timeout: rssTimeout,
			Transport: &http.Transport{
				// Some feeds sit behind proxies with broken cert chains.
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			},
		},
	}
}

func (s *RSSSource) Name() string { return models.SourceRSS }

// Search fetches every configured feed, keeps items whose title or
// description contain the keyword (case-insensitive), and returns them
// newest first. A single unreachable feed is skipped, not fatal; the search
// fails only when every feed fails.
func (s *RSSSource) Search(ctx context.Context, keyword string, limit int) ([]RawPost, error) {
	fp := gofeed.NewParser()
	fp.Client = s.client

	needle := strings.ToLower(strings.TrimSpace(keyword))

	var (
		posts   []RawPost
		lastErr error
		fetched int
	)
	for _, feedURL := range s.feeds {
		feed, err := fp.ParseURLWithContext(feedURL, ctx)
		if err != nil {
			logger.Log.Warnf("rss feed %s skipped: %v", feedURL, err)
			lastErr = err
			continue
		}
		fetched++

		for _, item := range feed.Items {
			if !matchesKeyword(item, needle) {
				continue
			}

			var published time.Time
			if item.PublishedParsed != nil {
				published = item.PublishedParsed.UTC()
			} else if item.UpdatedParsed != nil {
				published = item.UpdatedParsed.UTC()
			}

			sourceID := item.GUID
			if sourceID == "" {
				sourceID = item.Link
			}

			author := ""
			if item.Author != nil {
				author = item.Author.Name
			}

			posts = append(posts, RawPost{
				SourceID:  sourceID,
				Title:     item.Title,
				Body:      item.Description,
				Author:    author,
				URL:       item.Link,
				CreatedAt: published,
				FeedTitle: feed.Title,
			})
		}
	}

	if fetched == 0 && lastErr != nil {
		return nil, lastErr
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	if limit > 0 && len(posts) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

func matchesKeyword(item *gofeed.Item, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(item.Title), needle) ||
		strings.Contains(strings.ToLower(item.Description), needle)
}
