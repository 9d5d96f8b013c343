package embedder_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"trenddit/config"
	"trenddit/models"
	"trenddit/nlp/embedder"
)

func openAIConfig(url string) config.AppConfig {
	return config.AppConfig{
		Embedder: config.EmbedderConfig{
			Provider: "openai",
			Model:    "all-minilm",
			APIURL:   url,
		},
	}
}

func TestEmbedOpenAICompatible(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/embeddings", r.URL.Path)

		var req struct {
			Model string   `json:"model"`
			Input []string `json:"input"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "all-minilm", req.Model)

		type entry struct {
			Embedding []float32 `json:"embedding"`
		}
		resp := struct {
			Data []entry `json:"data"`
		}{}
		for range req.Input {
			resp.Data = append(resp.Data, entry{Embedding: make([]float32, models.EmbeddingDim)})
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	client, err := embedder.NewClient(openAIConfig(srv.URL))
	assert.NoError(t, err)

	vectors, err := client.Embed(context.Background(), []string{"hello", "world"})
	assert.NoError(t, err)
	assert.Len(t, vectors, 2)
	for _, v := range vectors {
		assert.Len(t, v, models.EmbeddingDim)
	}
}

func TestEmbedWrongDimensionRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"embedding":[0.1,0.2,0.3]}]}`))
	}))
	defer srv.Close()

	client, err := embedder.NewClient(openAIConfig(srv.URL))
	assert.NoError(t, err)

	_, err = client.Embed(context.Background(), []string{"hello"})
	assert.Error(t, err)
}

func TestEmbedServerErrorIsModelUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client, err := embedder.NewClient(openAIConfig(srv.URL))
	assert.NoError(t, err)

	_, err = client.Embed(context.Background(), []string{"hello"})
	assert.ErrorIs(t, err, embedder.ErrModelUnavailable)
}

func TestNewClientRequiresModel(t *testing.T) {
	_, err := embedder.NewClient(config.AppConfig{
		Embedder: config.EmbedderConfig{Provider: "openai"},
	})
	assert.Error(t, err)
}

func TestNewClientUnknownProvider(t *testing.T) {
	_, err := embedder.NewClient(config.AppConfig{
		Embedder: config.EmbedderConfig{Provider: "word2vec", Model: "x"},
	})
	assert.Error(t, err)
}
