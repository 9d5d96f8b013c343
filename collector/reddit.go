package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"trenddit/models"
)

const redditTimeout = 30 * time.Second

// RedditSource searches reddit's public JSON API across all subreddits.
type RedditSource struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

func NewRedditSource(baseURL, userAgent string) *RedditSource {
	if baseURL == "" {
		baseURL = "https://www.reddit.com"
	}
	return &RedditSource{
		client:    &http.Client{Timeout: redditTimeout},
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
	}
}

func (s *RedditSource) Name() string { return models.SourceReddit }

type redditListing struct {
	Data struct {
		Children []struct {
			Data redditPost `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type redditPost struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	SelfText    string  `json:"selftext"`
	Author      string  `json:"author"`
	URL         string  `json:"url"`
	Permalink   string  `json:"permalink"`
	Score       int     `json:"score"`
	CreatedUTC  float64 `json:"created_utc"`
	Subreddit   string  `json:"subreddit"`
	NumComments int     `json:"num_comments"`
}

// Search queries /search.json sorted by new. Reddit caps limit at 100 per
// request; callers wanting more get the first page only.
func (s *RedditSource) Search(ctx context.Context, keyword string, limit int) ([]RawPost, error) {
	params := url.Values{}
	params.Set("q", keyword)
	params.Set("sort", "new")
	params.Set("limit", strconv.Itoa(limit))
	params.Set("raw_json", "1")

	endpoint := fmt.Sprintf("%s/search.json?%s", s.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create reddit request: %w", err)
	}
	// Reddit rejects the default Go User-Agent.
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reddit search failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("reddit search failed: status code %d", resp.StatusCode)
	}

	var listing redditListing
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return nil, fmt.Errorf("decode reddit response: %w", err)
	}

	posts := make([]RawPost, 0, len(listing.Data.Children))
	for _, child := range listing.Data.Children {
		p := child.Data
		postURL := p.URL
		if postURL == "" && p.Permalink != "" {
			postURL = s.baseURL + p.Permalink
		}
		posts = append(posts, RawPost{
			SourceID:    p.ID,
			Title:       p.Title,
			Body:        p.SelfText,
			Author:      p.Author,
			URL:         postURL,
			Score:       p.Score,
			CreatedAt:   time.Unix(int64(p.CreatedUTC), 0).UTC(),
			Subreddit:   p.Subreddit,
			NumComments: p.NumComments,
		})
	}
	if limit > 0 && len(posts) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}
