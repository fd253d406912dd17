// Package openai provides a memory.Embedder backed by the OpenAI embeddings
// API so VolatileMemory can rank records by semantic similarity.
package openai

import (
	"context"
	"fmt"
	"sort"

	"github.com/hupe1980/skcontext/memory"
	"github.com/openai/openai-go"
)

// Options configure the embedder.
type Options struct {
	Model openai.EmbeddingModel
}

// Embedder wraps the OpenAI embeddings endpoint behind memory.Embedder.
type Embedder struct {
	client *openai.Client
	opts   Options
}

// NewEmbedder creates an embedder using a client configured from the
// environment (OPENAI_API_KEY, OPENAI_BASE_URL).
func NewEmbedder(optFns ...func(o *Options)) *Embedder {
	client := openai.NewClient()
	return NewEmbedderFromClient(&client, optFns...)
}

// NewEmbedderFromClient creates an embedder from an existing client.
func NewEmbedderFromClient(client *openai.Client, optFns ...func(o *Options)) *Embedder {
	opts := Options{
		Model: openai.EmbeddingModelTextEmbedding3Small,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Embedder{client: client, opts: opts}
}

// Embed implements memory.Embedder. Vectors are returned in input order.
func (e *Embedder) Embed(ctx context.Context, texts []string) ([][]float64, error) {
	if len(texts) == 0 {
		return [][]float64{}, nil
	}

	resp, err := e.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Input: openai.EmbeddingNewParamsInputUnion{OfArrayOfStrings: texts},
		Model: e.opts.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("openai embeddings: %w", err)
	}

	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("openai embeddings: expected %d vectors, got %d", len(texts), len(resp.Data))
	}

	data := resp.Data
	sort.Slice(data, func(i, j int) bool { return data[i].Index < data[j].Index })

	out := make([][]float64, len(data))
	for i, d := range data {
		out[i] = d.Embedding
	}

	return out, nil
}

var _ memory.Embedder = (*Embedder)(nil)
