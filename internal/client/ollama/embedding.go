// Package ollama implements the embedding and text-generation clients backed
// by a local Ollama runtime. The embedding client satisfies
// interfaces.SimilarityClient; the tariff services only ever see the
// interface, so the runtime can be absent (degraded mode) or mocked in tests.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/tarifflens/tarifflens-api/internal/interfaces"
	"github.com/tarifflens/tarifflens-api/internal/logger"
)

const (
	defaultBaseURL    = "http://localhost:11434"
	defaultEmbedModel = "nomic-embed-text"
	defaultTimeout    = 10 * time.Second
)

// EmbeddingClient calls the Ollama embeddings API and ranks corpora by cosine
// similarity. Corpus embeddings are cached per text so repeated searches over
// the same catalog snapshot only embed the query.
type EmbeddingClient struct {
	baseURL    string
	model      string
	httpClient *http.Client
	logger     *zap.Logger

	mu    sync.RWMutex
	cache map[string][]float32
}

// NewEmbeddingClient creates an embedding client. Empty arguments fall back
// to the local Ollama defaults.
func NewEmbeddingClient(baseURL, model string) *EmbeddingClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if model == "" {
		model = defaultEmbedModel
	}
	return &EmbeddingClient{
		baseURL:    baseURL,
		model:      model,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     logger.Log,
		cache:      make(map[string][]float32),
	}
}

type embedRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

type embedResponse struct {
	Embedding []float32 `json:"embedding"`
}

// Embed generates an embedding for a single text.
func (c *EmbeddingClient) Embed(ctx context.Context, text string) ([]float32, error) {
	body, err := json.Marshal(embedRequest{Model: c.model, Prompt: text})
	if err != nil {
		return nil, fmt.Errorf("marshaling embed request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/embeddings", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating embed request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling ollama embeddings: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ollama embeddings returned status %d", resp.StatusCode)
	}

	var out embedResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding embed response: %w", err)
	}
	if len(out.Embedding) == 0 {
		return nil, fmt.Errorf("ollama returned empty embedding")
	}
	return out.Embedding, nil
}

// embedCached returns the embedding for text, consulting the cache first.
func (c *EmbeddingClient) embedCached(ctx context.Context, text string) ([]float32, error) {
	c.mu.RLock()
	vec, ok := c.cache[text]
	c.mu.RUnlock()
	if ok {
		return vec, nil
	}

	vec, err := c.Embed(ctx, text)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.cache[text] = vec
	c.mu.Unlock()
	return vec, nil
}

// Rank embeds the query and each corpus entry and returns hits sorted
// descending by cosine similarity. Scores are clamped into [0,1].
func (c *EmbeddingClient) Rank(ctx context.Context, query string, corpus []string) ([]interfaces.SimilarityHit, error) {
	if len(corpus) == 0 {
		return nil, nil
	}

	queryVec, err := c.Embed(ctx, query)
	if err != nil {
		return nil, err
	}

	hits := make([]interfaces.SimilarityHit, 0, len(corpus))
	for i, text := range corpus {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		vec, err := c.embedCached(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("embedding corpus entry %d: %w", i, err)
		}
		score := cosineSimilarity(queryVec, vec)
		if score < 0 {
			score = 0
		} else if score > 1 {
			score = 1
		}
		hits = append(hits, interfaces.SimilarityHit{Index: i, Score: score})
	}

	sort.Slice(hits, func(i, j int) bool { return hits[i].Score > hits[j].Score })
	return hits, nil
}

// WarmCorpus pre-embeds corpus entries so the first search after a catalog
// refresh does not pay the full embedding cost. Failures are logged and
// ignored; search degrades gracefully without the cache.
func (c *EmbeddingClient) WarmCorpus(ctx context.Context, corpus []string) {
	for _, text := range corpus {
		if ctx.Err() != nil {
			return
		}
		if _, err := c.embedCached(ctx, text); err != nil {
			if c.logger != nil {
				c.logger.Warn("Corpus warm-up aborted", zap.Error(err))
			}
			return
		}
	}
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
