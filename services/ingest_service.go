package services

import (
	"context"
	"fmt"

	"trenddit/dto"
	"trenddit/ingestion"
	"trenddit/models"
)

// ErrUnknownSource is returned for an ingest request naming a source that has
// no configured connector.
var ErrUnknownSource = fmt.Errorf("unknown source")

// IngestService triggers ingestion runs on behalf of the API. It holds one
// pipeline per configured source connector.
type IngestService struct {
	pipelines map[string]*ingestion.Service
}

func NewIngestService(pipelines map[string]*ingestion.Service) *IngestService {
	return &IngestService{pipelines: pipelines}
}

// Run ingests posts for the keyword through the requested source connector
// and reports what happened. An empty source means reddit.
func (s *IngestService) Run(ctx context.Context, in dto.IngestRequest) (*dto.IngestResultDTO, error) {
	source := in.Source
	if source == "" {
		source = models.SourceReddit
	}
	pipeline, ok := s.pipelines[source]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownSource, source)
	}

	result, err := pipeline.Ingest(ctx, in.Keyword, in.Limit)
	if err != nil {
		return nil, err
	}
	out := dto.NewIngestResultDTO(in.Keyword, result)
	return &out, nil
}
