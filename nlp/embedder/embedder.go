package embedder

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"trenddit/config"
	"trenddit/models"
)

// ErrModelUnavailable reports that the embedding model could not be
// initialized or reached. The ingestion pipeline treats it as non-fatal
// (records proceed embedding-less); clustering inputs treat it as fatal.
var ErrModelUnavailable = errors.New("embedding model unavailable")

// Client maps text to fixed-dimension dense vectors. Implementations must
// be deterministic for a fixed model version and safe for concurrent use.
type Client interface {
	Embed(ctx context.Context, inputs []string) ([][]float32, error)
}

// NewClient builds a Client for the configured provider.
func NewClient(cfg config.AppConfig) (Client, error) {
	switch strings.ToLower(cfg.Embedder.Provider) {
	case "openai", "ollama", "":
		return newHTTPClient(cfg)
	case "gemini":
		return newGeminiClient(cfg)
	default:
		return nil, fmt.Errorf("embedding provider %q is not supported", cfg.Embedder.Provider)
	}
}

var (
	sharedOnce   sync.Once
	sharedClient Client
	sharedErr    error
)

// Shared returns the process-wide embedding client, building it on first
// use. Concurrent first calls initialize at most once; if initialization
// fails, every subsequent call keeps returning ErrModelUnavailable.
func Shared() (Client, error) {
	sharedOnce.Do(func() {
		cl, err := NewClient(config.GetConfig())
		if err != nil {
			sharedErr = fmt.Errorf("%w: %v", ErrModelUnavailable, err)
			return
		}
		sharedClient = cl
	})
	return sharedClient, sharedErr
}

// validateDims rejects vectors that do not match the fixed model dimension.
func validateDims(vectors [][]float32) error {
	for i, v := range vectors {
		if len(v) != models.EmbeddingDim {
			return fmt.Errorf("embedding %d has dimension %d, want %d", i, len(v), models.EmbeddingDim)
		}
	}
	return nil
}
