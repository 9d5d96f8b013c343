package services

import (
	"context"

	"trenddit/dto"
	"trenddit/repositories"
)

// AlertService reads back alerts raised by the monitoring pipeline.
type AlertService struct {
	repo *repositories.AlertRepository
}

func NewAlertService(repo *repositories.AlertRepository) *AlertService {
	return &AlertService{repo: repo}
}

// Recent returns the latest n alerts, newest first.
func (s *AlertService) Recent(ctx context.Context, n int) ([]dto.AlertDTO, error) {
	alerts, err := s.repo.ListRecent(ctx, n)
	if err != nil {
		return nil, err
	}
	return dto.NewAlertDTOs(alerts), nil
}
