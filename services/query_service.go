package services

import (
	"context"

	"trenddit/dto"
	"trenddit/models"
	"trenddit/repositories"
)

// QueryService persists and lists saved searches.
type QueryService struct {
	repo *repositories.QueryRepository
}

func NewQueryService(repo *repositories.QueryRepository) *QueryService {
	return &QueryService{repo: repo}
}

// Save records a search and returns its DTO.
func (s *QueryService) Save(ctx context.Context, in dto.SaveQueryRequest) (*dto.QueryDTO, error) {
	q := models.Query{Keyword: in.Keyword, Sources: in.Sources}
	if err := s.repo.Insert(ctx, &q); err != nil {
		return nil, err
	}
	out := dto.NewQueryDTO(q)
	return &out, nil
}

// List returns saved searches, newest first.
func (s *QueryService) List(ctx context.Context) ([]dto.QueryDTO, error) {
	queries, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewQueryDTOs(queries), nil
}
