package ingestion

import (
	"errors"

	"trenddit/nlp/embedder"
)

// Pipeline error taxonomy. Low-level connector and store errors are wrapped
// into these at the pipeline boundary; raw transport errors never reach
// callers.
var (
	// ErrSourceUnavailable means the connector fetch failed or timed out.
	// The run aborts with no partial writes.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrStoreUnavailable means the existence check or insert failed or
	// timed out. The write phase aborts; enriched data is discarded and the
	// whole call is safe to retry because inserts are idempotent by ID.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// Stable taxonomy names reported to callers.
const (
	KindSourceUnavailable = "source_unavailable"
	KindStoreUnavailable  = "store_unavailable"
	KindModelUnavailable  = "model_unavailable"
	KindInternal          = "internal"
)

// Kind maps a pipeline error to its stable taxonomy name, for callers that
// report failures as structured kind + message outcomes.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrSourceUnavailable):
		return KindSourceUnavailable
	case errors.Is(err, ErrStoreUnavailable):
		return KindStoreUnavailable
	case errors.Is(err, embedder.ErrModelUnavailable):
		return KindModelUnavailable
	default:
		return KindInternal
	}
}
