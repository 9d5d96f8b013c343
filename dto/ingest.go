package dto

import "trenddit/ingestion"

// IngestRequest is the body of an ingest trigger. Source is optional and
// defaults to the reddit connector.
type IngestRequest struct {
	Keyword string `json:"keyword" binding:"required"`
	Source  string `json:"source"`
	Limit   int    `json:"limit"`
}

// IngestResultDTO reports what one ingestion run did.
type IngestResultDTO struct {
	Keyword  string `json:"keyword"`
	Fetched  int    `json:"fetched"`
	Inserted int    `json:"inserted"`
	Skipped  int    `json:"skipped"`
}

// NewIngestResultDTO constructs IngestResultDTO from an ingestion result.
func NewIngestResultDTO(keyword string, result ingestion.IngestResult) IngestResultDTO {
	return IngestResultDTO{
		Keyword:  keyword,
		Fetched:  result.Fetched,
		Inserted: result.Inserted,
		Skipped:  result.Skipped,
	}
}
