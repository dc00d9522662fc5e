package ai

import (
	"context"
	"log/slog"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const (
	defaultCacheTTL    = 10 * time.Minute
	cacheSweepInterval = 30 * time.Minute
)

// CachedEmbedder decorates an Embedder with a TTL cache keyed by input text,
// so repeated queries against the semantic index do not re-embed the same
// string. The cache is in-process and best-effort; expiry is handled by the
// underlying go-cache sweeper.
type CachedEmbedder struct {
	inner  Embedder
	cache  *gocache.Cache
	logger *slog.Logger
}

// NewCachedEmbedder wraps inner with a TTL cache. A non-positive ttl selects
// the default of 10 minutes.
func NewCachedEmbedder(inner Embedder, ttl time.Duration) *CachedEmbedder {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &CachedEmbedder{
		inner:  inner,
		cache:  gocache.New(ttl, cacheSweepInterval),
		logger: slog.Default().With("component", "cached-embedder"),
	}
}

// EmbedText returns the cached embedding for text, or delegates to the
// wrapped embedder and caches the result.
func (e *CachedEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	if cached, ok := e.cache.Get(text); ok {
		if vector, ok := cached.([]float32); ok {
			e.logger.Debug("embedding cache hit", "length", len(text))
			return vector, nil
		}
	}

	vector, err := e.inner.EmbedText(ctx, text)
	if err != nil {
		return nil, err
	}

	e.cache.Set(text, vector, gocache.DefaultExpiration)
	return vector, nil
}

// EmbedTexts embeds a batch, serving individual texts from the cache where
// possible and delegating the remainder in one call.
func (e *CachedEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	result := make([][]float32, len(texts))
	var missing []string
	var missingIdx []int

	for i, text := range texts {
		if cached, ok := e.cache.Get(text); ok {
			if vector, ok := cached.([]float32); ok {
				result[i] = vector
				continue
			}
		}
		missing = append(missing, text)
		missingIdx = append(missingIdx, i)
	}

	if len(missing) == 0 {
		return result, nil
	}

	vectors, err := e.inner.EmbedTexts(ctx, missing)
	if err != nil {
		return nil, err
	}

	for j, vector := range vectors {
		if j >= len(missingIdx) {
			break
		}
		result[missingIdx[j]] = vector
		e.cache.Set(missing[j], vector, gocache.DefaultExpiration)
	}

	return result, nil
}
