package dto

import (
	"time"

	"trenddit/models"
)

// AlertDTO is one alert raised by the monitoring pipeline.
type AlertDTO struct {
	AlertType   string    `json:"alert_type"`
	Message     string    `json:"message"`
	TriggeredAt time.Time `json:"triggered_at"`
}

// NewAlertDTOs maps alerts, never returning nil so JSON renders []
func NewAlertDTOs(alerts []models.Alert) []AlertDTO {
	out := make([]AlertDTO, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, AlertDTO{
			AlertType:   a.AlertType,
			Message:     a.Message,
			TriggeredAt: a.TriggeredAt,
		})
	}
	return out
}
