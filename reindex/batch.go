package reindex

import (
	"context"
	"fmt"
	"time"

	"github.com/synaptiq/braid/ai"
	"github.com/synaptiq/braid/storage"
)

// batchProcessor re-embeds one batch of chunk records and writes them
// back under their original keys.
type batchProcessor struct {
	store          storage.ChunkStore
	embedder       ai.Embedder
	maxRetries     int
	retryBaseDelay time.Duration
}

func (bp *batchProcessor) process(ctx context.Context, records []storage.ChunkRecord) error {
	if len(records) == 0 {
		return nil
	}

	texts := make([]string, len(records))
	for i, record := range records {
		texts[i] = record.Chunk.Text
	}

	var embeddings [][]float32
	err := RetryWithBackoff(ctx, func() error {
		var err error
		embeddings, err = bp.embedder.EmbedTexts(ctx, texts)
		return err
	}, bp.maxRetries, bp.retryBaseDelay)
	if err != nil {
		return fmt.Errorf("failed to generate embeddings after %d attempts: %w", bp.maxRetries, err)
	}
	if len(embeddings) != len(records) {
		return fmt.Errorf("embedding count mismatch: expected %d, got %d", len(records), len(embeddings))
	}

	for i := range records {
		records[i].Chunk.Vector = normalizeVector(embeddings[i])
	}

	if err := bp.store.RewriteChunks(ctx, records); err != nil {
		return fmt.Errorf("failed to rewrite chunk records: %w", err)
	}
	return nil
}
