package model

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"embed-service/internal/retry"
)

const defaultEmbedTimeout = 30 * time.Second

// Compile-time interface check
var _ Model = (*Ollama)(nil)

// Ollama speaks the embeddings API of a local Ollama-compatible model
// runtime. The runtime loads the model once; this client only holds the
// connection details.
type Ollama struct {
	baseURL string
	name    string
	dim     int
	client  *http.Client
}

type ollamaEmbedRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

type ollamaEmbedResponse struct {
	Embedding []float32 `json:"embedding"`
}

// NewOllama creates a client for the runtime at baseURL serving the named model.
func NewOllama(baseURL, name string, dim int) (*Ollama, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("runtime url required")
	}
	if name == "" {
		return nil, fmt.Errorf("model name required")
	}
	return &Ollama{
		baseURL: baseURL,
		name:    name,
		dim:     dim,
		client:  &http.Client{Timeout: defaultEmbedTimeout},
	}, nil
}

// Embed encodes text via the runtime's embeddings endpoint.
func (o *Ollama) Embed(ctx context.Context, text string) (Vector, error) {
	body, err := json.Marshal(ollamaEmbedRequest{Model: o.name, Prompt: text})
	if err != nil {
		return nil, fmt.Errorf("marshal embed request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+"/api/embeddings", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create embed request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("model runtime unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("model runtime returned %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}

	var out ollamaEmbedResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode embed response: %w", err)
	}
	if len(out.Embedding) == 0 {
		return nil, fmt.Errorf("model runtime returned no embedding")
	}
	return Vector(out.Embedding), nil
}

// Name returns the loaded model's name.
func (o *Ollama) Name() string {
	return o.name
}

// Dimension returns the configured model dimension.
func (o *Ollama) Dimension() int {
	return o.dim
}

// WaitReady blocks until the runtime answers, retrying with exponential
// backoff. Called once at startup before the server begins serving.
func (o *Ollama) WaitReady(ctx context.Context, attempts int, base time.Duration) error {
	if attempts <= 0 {
		attempts = 1
	}
	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		err := o.ping(ctx)
		if err == nil {
			return nil
		}
		lastErr = err
		if attempt == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retry.ExponentialBackoff(attempt, base)):
		}
	}
	return fmt.Errorf("model runtime not ready after %d attempts: %w", attempts, lastErr)
}

func (o *Ollama) ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.baseURL+"/", nil)
	if err != nil {
		return err
	}
	resp, err := o.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("runtime returned %d", resp.StatusCode)
	}
	return nil
}
