package events

import "time"

// EventType identifies the payload shape of an ingest event.
type EventType string

const (
	IngestCompleted EventType = "ingest.completed"
)

// BaseEvent carries the fields shared by every event.
type BaseEvent struct {
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
}

// IngestCompletedEvent is published after an ingestion run commits its bulk
// insert. The external alert monitor consumes these to decide whether a
// spike or sentiment shift warrants an alert row.
type IngestCompletedEvent struct {
	BaseEvent
	Keyword  string `json:"keyword"`
	Fetched  int    `json:"fetched"`
	Inserted int    `json:"inserted"`
	Skipped  int    `json:"skipped"`
}
