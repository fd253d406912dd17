package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEmbedder(t *testing.T, handler http.HandlerFunc) *Embedder {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := openai.NewClient(
		option.WithBaseURL(srv.URL+"/"),
		option.WithAPIKey("test-key"),
		option.WithMaxRetries(0),
	)
	return NewEmbedderFromClient(&client, func(o *Options) { o.Model = "test-embedding" })
}

func TestEmbedder_Embed(t *testing.T) {
	var gotBody map[string]any
	e := newTestEmbedder(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/embeddings", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		// Deliberately out of order to exercise index sorting.
		_, _ = w.Write([]byte(`{"object":"list","model":"test-embedding",
			"data":[
				{"object":"embedding","index":1,"embedding":[0,1]},
				{"object":"embedding","index":0,"embedding":[1,0]}
			],
			"usage":{"prompt_tokens":2,"total_tokens":2}}`))
	})

	vecs, err := e.Embed(context.Background(), []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 0}, {0, 1}}, vecs)
	assert.Equal(t, "test-embedding", gotBody["model"])
	assert.Equal(t, []any{"a", "b"}, gotBody["input"])
}

func TestEmbedder_CountMismatch(t *testing.T) {
	e := newTestEmbedder(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"object":"list","model":"m","data":[],"usage":{"prompt_tokens":0,"total_tokens":0}}`))
	})

	_, err := e.Embed(context.Background(), []string{"a"})
	assert.Error(t, err)
}

func TestEmbedder_HTTPError(t *testing.T) {
	e := newTestEmbedder(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"bad key","type":"invalid_request_error"}}`))
	})

	_, err := e.Embed(context.Background(), []string{"a"})
	assert.Error(t, err)
}

func TestEmbedder_EmptyInput(t *testing.T) {
	e := NewEmbedderFromClient(nil)
	vecs, err := e.Embed(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, vecs)
}
