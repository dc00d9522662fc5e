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


package reindex

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/synaptiq/braid/ai"
	"github.com/synaptiq/braid/storage"
)

// Config holds settings for one reindexing run.
type Config struct {
	// BatchSize is the number of chunk records embedded per batch
	BatchSize int

	// ReportInterval is how often to report progress (number of records)
	ReportInterval int

	// MaxRetries is the maximum number of attempts for embedding calls
	MaxRetries int

	// RetryDelay is the base delay for exponential backoff
	RetryDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BatchSize:      100,
		ReportInterval: 100,
		MaxRetries:     3,
		RetryDelay:     1 * time.Second,
	}
}

// Reindexer re-embeds every chunk record in a store with the given
// embedder.
type Reindexer struct {
	store     storage.ChunkStore
	config    *Config
	progress  io.Writer
	processor *batchProcessor
}

// NewReindexer creates a reindexer.
// progress: where to write progress output (typically os.Stderr)
func NewReindexer(store storage.ChunkStore, embedder ai.Embedder, config *Config, progress io.Writer) *Reindexer {
	if config == nil {
		config = DefaultConfig()
	}
	if config.BatchSize <= 0 {
		config.BatchSize = DefaultConfig().BatchSize
	}

	return &Reindexer{
		store:    store,
		config:   config,
		progress: progress,
		processor: &batchProcessor{
			store:          store,
			embedder:       embedder,
			maxRetries:     config.MaxRetries,
			retryBaseDelay: config.RetryDelay,
		},
	}
}

// Run re-embeds all stored chunks. The store is scanned fully first so
// progress can be reported against a known total.
func (r *Reindexer) Run(ctx context.Context) error {
	var records []storage.ChunkRecord
	err := r.store.ScanChunks(ctx, func(record storage.ChunkRecord) error {
		records = append(records, record)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to scan chunk records: %w", err)
	}

	total := len(records)
	if total == 0 {
		fmt.Fprintf(r.progress, "No chunk records found (0 records)\n")
		return nil
	}

	fmt.Fprintf(r.progress, "Starting reindex of %d chunks (batch size: %d)\n",
		total, r.config.BatchSize)

	tracker := newProgressTracker(r.progress, total, r.config.ReportInterval)
	tracker.Start()

	for start := 0; start < total; start += r.config.BatchSize {
		end := start + r.config.BatchSize
		if end > total {
			end = total
		}

		if err := r.processor.process(ctx, records[start:end]); err != nil {
			return fmt.Errorf("failed to process batch: %w", err)
		}
		tracker.Update(end)
	}

	tracker.Finish()

	elapsed := tracker.Elapsed()
	fmt.Fprintf(r.progress, "Reindex complete. Processed %d chunks in %v (%.1f chunks/sec)\n",
		total, elapsed.Round(time.Second), float64(total)/elapsed.Seconds())

	return nil
}
