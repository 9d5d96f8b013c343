package dto

import (
	"time"

	"trenddit/models"
)

// SaveQueryRequest is the body for saving a search.
type SaveQueryRequest struct {
	Keyword string   `json:"keyword" binding:"required"`
	Sources []string `json:"sources"`
}

// QueryDTO is one saved search.
type QueryDTO struct {
	Keyword   string    `json:"keyword"`
	Sources   []string  `json:"sources"`
	CreatedAt time.Time `json:"created_at"`
}

// NewQueryDTO constructs QueryDTO from models.Query
func NewQueryDTO(q models.Query) QueryDTO {
	return QueryDTO{
		Keyword:   q.Keyword,
		Sources:   q.Sources,
		CreatedAt: q.CreatedAt,
	}
}

// NewQueryDTOs maps saved queries, never returning nil so JSON renders []
func NewQueryDTOs(queries []models.Query) []QueryDTO {
	out := make([]QueryDTO, 0, len(queries))
	for _, q := range queries {
		out = append(out, NewQueryDTO(q))
	}
	return out
}
