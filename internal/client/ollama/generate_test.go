package ollama_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarifflens/tarifflens-api/internal/client/ollama"
)

func TestGenerateClient_Complete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)

		var req struct {
			Model  string `json:"model"`
			Prompt string `json:"prompt"`
			Stream bool   `json:"stream"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.False(t, req.Stream)
		assert.Equal(t, "test-model", req.Model)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"response": "The seamless rubber gloves heading fits best.",
			"done":     true,
		})
	}))
	defer srv.Close()

	client := ollama.NewGenerateClient(srv.URL, "test-model")

	out, err := client.Complete(context.Background(), "explain the match")
	require.NoError(t, err)
	assert.Equal(t, "The seamless rubber gloves heading fits best.", out)
}

func TestGenerateClient_CompleteServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := ollama.NewGenerateClient(srv.URL, "test-model")

	_, err := client.Complete(context.Background(), "explain the match")
	assert.Error(t, err)
}

func TestGenerateClient_CompleteContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"response": "late", "done": true})
	}))
	defer srv.Close()

	client := ollama.NewGenerateClient(srv.URL, "test-model")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Complete(ctx, "explain the match")
	assert.Error(t, err)
}
