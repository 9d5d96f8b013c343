package services

import (
	"context"
	"time"

	"trenddit/aggregation"
	"trenddit/config"
	"trenddit/dto"
	"trenddit/repositories"
)

// AggregateService loads a capped post window and derives the analytics
// views over it.
type AggregateService struct {
	repo *repositories.PostRepository
}

func NewAggregateService(repo *repositories.PostRepository) *AggregateService {
	return &AggregateService{repo: repo}
}

type AggregateInput struct {
	Keyword   string
	Sources   []string
	Timeframe string
	TopTerms  int
}

// Aggregate reads the matching window, newest first up to the read cap, and
// computes timeline, top terms, clusters and KPIs over it.
func (s *AggregateService) Aggregate(ctx context.Context, in AggregateInput) (*dto.AggregateDTO, error) {
	window, err := ParseTimeframe(in.Timeframe)
	if err != nil {
		return nil, err
	}

	limit := config.GetConfig().Aggregation.MaxPosts
	posts, err := s.repo.List(ctx, repositories.ListPostsOptions{
		Keyword: in.Keyword,
		Sources: in.Sources,
		Since:   time.Now().UTC().Add(-window),
		Limit:   limit,
	})
	if err != nil {
		return nil, err
	}

	report := aggregation.BuildReport(posts, window, in.TopTerms)

	timeframe := in.Timeframe
	if timeframe == "" {
		timeframe = DefaultTimeframe
	}
	out := dto.NewAggregateDTO(in.Keyword, timeframe, report)
	return &out, nil
}
