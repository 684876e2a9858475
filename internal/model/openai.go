package model

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// Compile-time interface check
var _ Model = (*OpenAI)(nil)

// OpenAI calls OpenAI's embeddings API as an alternate hosted backend.
type OpenAI struct {
	model  openai.EmbeddingModel
	dim    int
	client *openai.Client
}

// NewOpenAI creates a new OpenAI-backed model handle.
func NewOpenAI(apiKey, name string, dim int) (*OpenAI, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key required")
	}
	if name == "" {
		name = string(openai.EmbeddingModelTextEmbedding3Small)
	}
	cli := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAI{
		model:  openai.EmbeddingModel(name),
		dim:    dim,
		client: &cli,
	}, nil
}

func (o *OpenAI) Embed(ctx context.Context, text string) (Vector, error) {
	resp, err := o.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Input: openai.EmbeddingNewParamsInputUnion{
			OfString: openai.String(text),
		},
		Model: o.model,
	})
	if err != nil {
		return nil, fmt.Errorf("embedding generation failed: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("embedding generation failed: no data returned")
	}

	// Convert []float64 to []float32
	embedding := resp.Data[0].Embedding
	vec := make(Vector, len(embedding))
	for i, v := range embedding {
		vec[i] = float32(v)
	}
	return vec, nil
}

func (o *OpenAI) Name() string {
	return string(o.model)
}

func (o *OpenAI) Dimension() int {
	return o.dim
}
