package embedder

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"trenddit/config"
	"trenddit/models"
)

// geminiClient embeds through the Gemini API. The output dimensionality is
// pinned so vectors stay interchangeable with the HTTP providers.
type geminiClient struct {
	client *genai.Client
	model  string
}

func newGeminiClient(cfg config.AppConfig) (*geminiClient, error) {
	if cfg.Embedder.Model == "" {
		return nil, errors.New("embedding model is required")
	}
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: cfg.GeminiAPIKey,
	})
	if err != nil {
		return nil, err
	}
	return &geminiClient{client: client, model: cfg.Embedder.Model}, nil
}

func (c *geminiClient) Embed(ctx context.Context, inputs []string) ([][]float32, error) {
	if len(inputs) == 0 {
		return nil, errors.New("inputs are required")
	}

	contents := make([]*genai.Content, 0, len(inputs))
	for _, input := range inputs {
		contents = append(contents, genai.NewContentFromText(input, genai.RoleUser))
	}

	result, err := c.client.Models.EmbedContent(ctx, c.model, contents, &genai.EmbedContentConfig{
		OutputDimensionality: genai.Ptr(int32(models.EmbeddingDim)),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}
	if len(result.Embeddings) != len(inputs) {
		return nil, fmt.Errorf("unexpected embeddings count: %d", len(result.Embeddings))
	}

	vectors := make([][]float32, 0, len(result.Embeddings))
	for _, emb := range result.Embeddings {
		vectors = append(vectors, emb.Values)
	}
	if err := validateDims(vectors); err != nil {
		return nil, err
	}
	return vectors, nil
}
