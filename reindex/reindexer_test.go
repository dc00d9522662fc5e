package reindex

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/synaptiq/braid/ai/mock"
	"github.com/synaptiq/braid/core"
	"github.com/synaptiq/braid/storage"
	"github.com/synaptiq/braid/storage/badger"
)

func newTestStore(t *testing.T) *badger.SemanticIndex {
	t.Helper()

	semantic, graph, backend, err := badger.NewMemoryIndices(mock.NewMockEmbedder())
	require.NoError(t, err)
	t.Cleanup(func() {
		semantic.Close()
		graph.Close()
		backend.Close()
	})
	return semantic
}

func seedChunks(t *testing.T, semantic *badger.SemanticIndex, texts ...string) {
	t.Helper()

	ctx := context.Background()
	for i, text := range texts {
		require.NoError(t, semantic.Add(ctx, core.NewChunk(text, "seed.txt", i)))
	}
}

func scanAll(t *testing.T, semantic *badger.SemanticIndex) []storage.ChunkRecord {
	t.Helper()

	var records []storage.ChunkRecord
	err := semantic.ScanChunks(context.Background(), func(record storage.ChunkRecord) error {
		records = append(records, record)
		return nil
	})
	require.NoError(t, err)
	return records
}

func TestReindexerRun(t *testing.T) {
	ctx := context.Background()
	semantic := newTestStore(t)
	seedChunks(t, semantic,
		"FastAPI is a modern web framework.",
		"Routers enable clean organization of endpoints.",
		"Pydantic provides data validation.")

	// The replacement model returns a fixed vector so the rewrite is
	// observable: {3, 4} normalizes to {0.6, 0.8}.
	replacement := mock.NewMockEmbedder()
	replacement.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		vectors := make([][]float32, len(texts))
		for i := range texts {
			vectors[i] = []float32{3, 4}
		}
		return vectors, nil
	}

	var out bytes.Buffer
	config := &Config{BatchSize: 2, ReportInterval: 1, MaxRetries: 1, RetryDelay: time.Millisecond}
	require.NoError(t, NewReindexer(semantic, replacement, config, &out).Run(ctx))

	records := scanAll(t, semantic)
	require.Len(t, records, 3)
	for _, record := range records {
		require.Len(t, record.Chunk.Vector, 2)
		assert.InDelta(t, 0.6, record.Chunk.Vector[0], 1e-6)
		assert.InDelta(t, 0.8, record.Chunk.Vector[1], 1e-6)
		assert.NotEmpty(t, record.Chunk.Text)
	}

	assert.Contains(t, out.String(), "Starting reindex of 3 chunks")
	assert.Contains(t, out.String(), "Reindex complete")
}

func TestReindexerRunEmptyStore(t *testing.T) {
	semantic := newTestStore(t)

	var out bytes.Buffer
	require.NoError(t, NewReindexer(semantic, mock.NewMockEmbedder(), nil, &out).Run(context.Background()))
	assert.Contains(t, out.String(), "No chunk records found")
}

func TestReindexerRunEmbeddingFailure(t *testing.T) {
	semantic := newTestStore(t)
	seedChunks(t, semantic, "FastAPI is a modern web framework.")

	failing := mock.NewMockEmbedder()
	failing.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		return nil, errors.New("embedding service down")
	}

	var out bytes.Buffer
	config := &Config{BatchSize: 10, ReportInterval: 10, MaxRetries: 2, RetryDelay: time.Millisecond}
	err := NewReindexer(semantic, failing, config, &out).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 2 attempts")

	// Original vectors survive a failed run.
	records := scanAll(t, semantic)
	require.Len(t, records, 1)
	assert.Len(t, records[0].Chunk.Vector, 384)
}

func TestReindexerRunCountMismatch(t *testing.T) {
	semantic := newTestStore(t)
	seedChunks(t, semantic, "FastAPI is a modern web framework.", "Routers enable organization.")

	short := mock.NewMockEmbedder()
	short.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		return [][]float32{{1, 0}}, nil
	}

	var out bytes.Buffer
	config := &Config{BatchSize: 10, ReportInterval: 10, MaxRetries: 1, RetryDelay: time.Millisecond}
	err := NewReindexer(semantic, short, config, &out).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "embedding count mismatch")
}
