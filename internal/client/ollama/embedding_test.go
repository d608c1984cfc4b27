package ollama_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarifflens/tarifflens-api/internal/client/ollama"
	"github.com/tarifflens/tarifflens-api/internal/logger"
)

func init() {
	logger.InitLogger("local")
}

// fakeOllama serves canned embeddings keyed by prompt and counts requests.
func fakeOllama(t *testing.T, embeddings map[string][]float32, calls *atomic.Int64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/embeddings", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		if calls != nil {
			calls.Add(1)
		}

		var req struct {
			Model  string `json:"model"`
			Prompt string `json:"prompt"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		vec, ok := embeddings[req.Prompt]
		if !ok {
			vec = []float32{0, 0, 1}
		}
		assert.NoError(t, json.NewEncoder(w).Encode(map[string]any{"embedding": vec}))
	}))
}

func TestEmbeddingClient_Embed(t *testing.T) {
	srv := fakeOllama(t, map[string][]float32{"gloves": {1, 0, 0}}, nil)
	defer srv.Close()

	client := ollama.NewEmbeddingClient(srv.URL, "test-model")

	vec, err := client.Embed(context.Background(), "gloves")
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 0, 0}, vec)
}

func TestEmbeddingClient_EmbedServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := ollama.NewEmbeddingClient(srv.URL, "test-model")

	_, err := client.Embed(context.Background(), "gloves")
	assert.Error(t, err)
}

func TestEmbeddingClient_EmbedEmptyVector(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"embedding": []float32{}})
	}))
	defer srv.Close()

	client := ollama.NewEmbeddingClient(srv.URL, "test-model")

	_, err := client.Embed(context.Background(), "gloves")
	assert.Error(t, err)
}

func TestEmbeddingClient_Rank(t *testing.T) {
	embeddings := map[string][]float32{
		"rubber gloves":   {1, 0, 0},
		"gloves, rubber":  {0.9, 0.1, 0},
		"cotton t-shirts": {0, 1, 0},
		"laptops":         {0, 0, 1},
	}
	srv := fakeOllama(t, embeddings, nil)
	defer srv.Close()

	client := ollama.NewEmbeddingClient(srv.URL, "test-model")

	hits, err := client.Rank(context.Background(), "rubber gloves",
		[]string{"gloves, rubber", "cotton t-shirts", "laptops"})
	require.NoError(t, err)
	require.Len(t, hits, 3)

	// Best first, scores clamped into [0,1].
	assert.Equal(t, 0, hits[0].Index)
	assert.Greater(t, hits[0].Score, hits[1].Score)
	for _, h := range hits {
		assert.GreaterOrEqual(t, h.Score, 0.0)
		assert.LessOrEqual(t, h.Score, 1.0)
	}
}

func TestEmbeddingClient_RankEmptyCorpus(t *testing.T) {
	client := ollama.NewEmbeddingClient("http://127.0.0.1:1", "test-model")

	hits, err := client.Rank(context.Background(), "anything", nil)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestEmbeddingClient_CorpusCaching(t *testing.T) {
	var calls atomic.Int64
	srv := fakeOllama(t, nil, &calls)
	defer srv.Close()

	client := ollama.NewEmbeddingClient(srv.URL, "test-model")
	corpus := []string{"gloves", "t-shirts"}

	_, err := client.Rank(context.Background(), "query one", corpus)
	require.NoError(t, err)
	firstPass := calls.Load() // query + both corpus entries

	_, err = client.Rank(context.Background(), "query two", corpus)
	require.NoError(t, err)

	// Second pass embeds only the new query; corpus entries come from cache.
	assert.Equal(t, firstPass+1, calls.Load())
}

func TestEmbeddingClient_WarmCorpus(t *testing.T) {
	var calls atomic.Int64
	srv := fakeOllama(t, nil, &calls)
	defer srv.Close()

	client := ollama.NewEmbeddingClient(srv.URL, "test-model")

	client.WarmCorpus(context.Background(), []string{"gloves", "t-shirts"})
	assert.Equal(t, int64(2), calls.Load())

	// Warmed entries are served from cache.
	client.WarmCorpus(context.Background(), []string{"gloves", "t-shirts"})
	assert.Equal(t, int64(2), calls.Load())
}
