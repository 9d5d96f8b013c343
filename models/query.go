package models

import "time"

// Query is a saved search. Write-once record of user intent.
// Collection: queries.
type Query struct {
	Keyword   string    `bson:"keyword" json:"keyword"`
	Sources   []string  `bson:"sources" json:"sources"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
