package dto

import (
	"time"

	"trenddit/models"
)

// PostDTO exposes the fields the feed UI needs for one post
// Embeddings stay internal; sentiment is carried as score plus label
type PostDTO struct {
	ID             string    `json:"id"`
	Source         string    `json:"source"`
	Keyword        string    `json:"keyword"`
	Title          string    `json:"title"`
	Body           string    `json:"body"`
	Author         string    `json:"author"`
	URL            string    `json:"url"`
	Score          int       `json:"score"`
	Subreddit      string    `json:"subreddit,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	SentimentScore *float64  `json:"sentiment_score,omitempty"`
	SentimentLabel string    `json:"sentiment_label,omitempty"`
}

// NewPostDTO constructs PostDTO from models.Post
func NewPostDTO(p models.Post) PostDTO {
	return PostDTO{
		ID:             p.ID,
		Source:         p.Source,
		Keyword:        p.Keyword,
		Title:          p.Title,
		Body:           p.Body,
		Author:         p.Author,
		URL:            p.URL,
		Score:          p.Score,
		Subreddit:      p.Metadata.SubredditOrEmpty(),
		CreatedAt:      p.CreatedAt,
		SentimentScore: p.SentimentScore,
		SentimentLabel: p.SentimentLabel,
	}
}

// NewPostDTOs maps a post slice, never returning nil so JSON renders []
func NewPostDTOs(posts []models.Post) []PostDTO {
	out := make([]PostDTO, 0, len(posts))
	for _, p := range posts {
		out = append(out, NewPostDTO(p))
	}
	return out
}

// PaginationPostDTO is a concrete swagger-friendly type for paginated posts response
// swagger:model PaginationPostDTO
type PaginationPostDTO struct {
	Data     []PostDTO `json:"data"`
	Page     int       `json:"page"`
	PageSize int       `json:"page_size"`
	Total    int64     `json:"total"`
}
