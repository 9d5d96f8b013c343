package models

import "time"

// Alert is produced by the external alert monitor; this service only
// reads them back for display.
// Collection: alerts.
type Alert struct {
	AlertType   string    `bson:"alert_type" json:"alert_type"`
	Message     string    `bson:"message" json:"message"`
	TriggeredAt time.Time `bson:"triggered_at" json:"triggered_at"`
}
