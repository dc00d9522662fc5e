// Copyright 2025 Synaptiq Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package badger

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"

	"github.com/dgraph-io/badger/v4"
	"github.com/synaptiq/braid/ai"
	"github.com/synaptiq/braid/core"
	"github.com/synaptiq/braid/storage"
)

// SemanticIndex implements storage.SemanticIndex over BadgerDB with a
// brute-force cosine scan. Chunks are keyed by a storage sequence, not
// by content, so adding identical chunks accumulates duplicates.
type SemanticIndex struct {
	backend  *Backend
	embedder ai.Embedder
	seq      *badger.Sequence
	logger   *slog.Logger
}

var _ storage.SemanticIndex = (*SemanticIndex)(nil)
var _ storage.ChunkStore = (*SemanticIndex)(nil)

// NewSemanticIndex creates a semantic index using the given embedder
// for both adds and queries.
func NewSemanticIndex(backend *Backend, embedder ai.Embedder) (*SemanticIndex, error) {
	seq, err := backend.GetSequence(chunkRecordSeq)
	if err != nil {
		return nil, err
	}

	return &SemanticIndex{
		backend:  backend,
		embedder: embedder,
		seq:      seq,
		logger:   slog.Default().With("component", "semantic-index"),
	}, nil
}

// Close releases the key sequence. The shared backend is closed by its
// owner.
func (s *SemanticIndex) Close() error {
	return s.seq.Release()
}

// Add embeds the chunk text and stores the chunk record.
func (s *SemanticIndex) Add(ctx context.Context, chunk *core.Chunk) error {
	if err := core.ValidateChunk(chunk); err != nil {
		return err
	}

	vector, err := s.embedder.EmbedText(ctx, chunk.Text)
	if err != nil {
		return fmt.Errorf("%w: %w", storage.ErrEmbeddingFailed, err)
	}
	chunk.Vector = vector

	seq, err := s.seq.Next()
	if err != nil {
		return err
	}

	return s.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeChunkKey(seq), storage.MarshalChunk(chunk)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// Query embeds the question and scans all chunk records for the most
// similar vectors.
func (s *SemanticIndex) Query(ctx context.Context, text string, limit int) ([]*core.RetrievalResult, error) {
	if limit <= 0 {
		return nil, storage.ErrInvalidQuery
	}

	queryVector, err := s.embedder.EmbedText(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", storage.ErrEmbeddingFailed, err)
	}

	var results []*core.RetrievalResult
	err = s.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(chunkRecordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var chunk *core.Chunk
			err := iter.Item().Value(func(val []byte) error {
				var err error
				chunk, err = storage.UnmarshalChunk(val)
				return err
			})
			if err != nil {
				return err
			}
			if chunk == nil || len(chunk.Vector) == 0 {
				continue
			}

			results = append(results, &core.RetrievalResult{
				Content: chunk.Text,
				Source:  chunk.Source,
				ChunkId: chunk.Id,
				Score:   cosineSimilarity(queryVector, chunk.Vector),
			})
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	// Sort by similarity descending
	slices.SortFunc(results, func(a, b *core.RetrievalResult) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		return 0
	})

	if len(results) > limit {
		results = results[:limit]
	}
	for i, result := range results {
		result.Rank = i + 1
	}

	s.logger.Debug("semantic query", "hits", len(results), "limit", limit)
	return results, nil
}

// ScanChunks visits every stored chunk record in key order.
func (s *SemanticIndex) ScanChunks(ctx context.Context, fn func(record storage.ChunkRecord) error) error {
	return s.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(chunkRecordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			item := iter.Item()
			var chunk *core.Chunk
			err := item.Value(func(val []byte) error {
				var err error
				chunk, err = storage.UnmarshalChunk(val)
				return err
			})
			if err != nil {
				return err
			}

			record := storage.ChunkRecord{Key: item.KeyCopy(nil), Chunk: chunk}
			if err := fn(record); err != nil {
				return err
			}
		}
		return nil
	}, false)
}

// RewriteChunks writes the records back under their existing keys in a
// single transaction.
func (s *SemanticIndex) RewriteChunks(ctx context.Context, records []storage.ChunkRecord) error {
	if len(records) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.backend.WithTx(func(tx *badger.Txn) error {
		for _, record := range records {
			if err := tx.Set(record.Key, storage.MarshalChunk(record.Chunk)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// cosineSimilarity computes full cosine similarity. Vectors are not
// assumed to be normalized.
func cosineSimilarity(a, b []float32) float32 {
	minLen := len(a)
	if len(b) < minLen {
		minLen = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < minLen; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return float32(dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}
