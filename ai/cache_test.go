package ai

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingEmbedder implements Embedder for testing.
type countingEmbedder struct {
	calls       int
	shouldError bool
}

func (e *countingEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	e.calls++
	if e.shouldError {
		return nil, errors.New("embedder error")
	}
	return []float32{float32(len(text)), 0.5}, nil
}

func (e *countingEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	e.calls++
	if e.shouldError {
		return nil, errors.New("embedder error")
	}
	result := make([][]float32, len(texts))
	for i, text := range texts {
		result[i] = []float32{float32(len(text)), 0.5}
	}
	return result, nil
}

func TestCachedEmbedderEmbedText(t *testing.T) {
	ctx := context.Background()
	inner := &countingEmbedder{}
	cached := NewCachedEmbedder(inner, time.Minute)

	first, err := cached.EmbedText(ctx, "what is fastapi")
	require.NoError(t, err)
	assert.Equal(t, 1, inner.calls)

	second, err := cached.EmbedText(ctx, "what is fastapi")
	require.NoError(t, err)
	assert.Equal(t, 1, inner.calls, "repeated query must be served from cache")
	assert.Equal(t, first, second)

	_, err = cached.EmbedText(ctx, "another query")
	require.NoError(t, err)
	assert.Equal(t, 2, inner.calls)
}

func TestCachedEmbedderEmbedTexts(t *testing.T) {
	ctx := context.Background()
	inner := &countingEmbedder{}
	cached := NewCachedEmbedder(inner, time.Minute)

	_, err := cached.EmbedText(ctx, "alpha")
	require.NoError(t, err)

	vectors, err := cached.EmbedTexts(ctx, []string{"alpha", "beta"})
	require.NoError(t, err)
	require.Len(t, vectors, 2)
	assert.Equal(t, 2, inner.calls, "only the uncached text should hit the inner embedder")

	// Everything cached now: no further inner calls.
	_, err = cached.EmbedTexts(ctx, []string{"alpha", "beta"})
	require.NoError(t, err)
	assert.Equal(t, 2, inner.calls)
}

func TestCachedEmbedderPropagatesErrors(t *testing.T) {
	ctx := context.Background()
	inner := &countingEmbedder{shouldError: true}
	cached := NewCachedEmbedder(inner, time.Minute)

	_, err := cached.EmbedText(ctx, "query")
	assert.Error(t, err)

	_, err = cached.EmbedTexts(ctx, []string{"query"})
	assert.Error(t, err)
}
