package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	defaultGenerateModel   = "llama3.2"
	defaultGenerateTimeout = 30 * time.Second
)

// GenerateClient calls the Ollama generate API for short advisory
// completions. It satisfies interfaces.CompletionClient.
type GenerateClient struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewGenerateClient creates a text-generation client. Empty arguments fall
// back to the local Ollama defaults.
func NewGenerateClient(baseURL, model string) *GenerateClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if model == "" {
		model = defaultGenerateModel
	}
	return &GenerateClient{
		baseURL:    baseURL,
		model:      model,
		httpClient: &http.Client{Timeout: defaultGenerateTimeout},
	}
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// Complete returns a single non-streamed completion for the prompt.
func (c *GenerateClient) Complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{Model: c.model, Prompt: prompt, Stream: false})
	if err != nil {
		return "", fmt.Errorf("marshaling generate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling ollama generate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama generate returned status %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decoding generate response: %w", err)
	}
	return out.Response, nil
}
