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


package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/synaptiq/braid/chunk"
	"github.com/synaptiq/braid/core"
	"github.com/synaptiq/braid/extract"
	"github.com/synaptiq/braid/storage"
)

// Pipeline orchestrates the ingestion of documents into the semantic
// and relationship indices. Triple extraction runs concurrently on a
// worker pool; index writes happen on the calling goroutine.
type Pipeline struct {
	semantic    storage.SemanticIndex
	graph       storage.RelationshipIndex
	chunker     chunk.Chunker
	extractor   extract.Extractor
	extractPool *ants.Pool
	logger      *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent extraction.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.extractPool != nil {
			p.extractPool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.extractPool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(
	semantic storage.SemanticIndex,
	graph storage.RelationshipIndex,
	chunker chunk.Chunker,
	extractor extract.Extractor,
	opts ...Option,
) (*Pipeline, error) {
	if semantic == nil {
		return nil, ErrSemanticIndexRequired
	}
	if graph == nil {
		return nil, ErrRelationshipIndexRequired
	}
	if chunker == nil {
		return nil, ErrChunkerRequired
	}
	if extractor == nil {
		return nil, ErrExtractorRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		semantic:    semantic,
		graph:       graph,
		chunker:     chunker,
		extractor:   extractor,
		extractPool: pool,
		logger:      slog.Default().With("component", "ingestion"),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Ingest reads the file at path and ingests its contents. A missing or
// unreadable file is fatal to the run and reported as a status=error
// report; it never raises.
func (p *Pipeline) Ingest(ctx context.Context, path string) *core.IngestionReport {
	data, err := os.ReadFile(path)
	if err != nil {
		p.logger.Error("failed to read document", "path", path, "err", err)
		return errorReport(fmt.Sprintf("failed to read document: %v", err))
	}

	return p.IngestDocument(ctx, core.Document{Source: path, Text: string(data)})
}

// IngestDocument chunks the document, stores every chunk in the
// semantic index in order, extracts triples concurrently, and merges
// them into the relationship index.
//
// A store-write failure aborts the run with a status=error report.
// Chunks already written to the semantic index before the failure
// remain; there is no rollback across the two indices.
func (p *Pipeline) IngestDocument(ctx context.Context, doc core.Document) *core.IngestionReport {
	chunks, err := p.chunker.Split(doc)
	if err != nil {
		p.logger.Error("failed to chunk document", "source", doc.Source, "err", err)
		return errorReport(fmt.Sprintf("failed to chunk document: %v", err))
	}

	if len(chunks) == 0 {
		p.logger.Info("document produced no chunks", "source", doc.Source)
		return &core.IngestionReport{Status: core.StatusSuccess}
	}

	// Kick off extraction on the pool while the semantic adds proceed.
	// Results land in a per-chunk slot, so no locking is needed.
	triplesByChunk := make([][]core.Triple, len(chunks))
	var wg sync.WaitGroup
	for i, c := range chunks {
		i, text := i, c.Text
		task := func() {
			defer wg.Done()
			triples, err := p.extractor.Extract(ctx, text)
			if err != nil {
				// Extractors degrade internally; this is a second net.
				p.logger.Warn("extraction degraded to zero triples", "chunk", i, "err", err)
				return
			}
			triplesByChunk[i] = triples
		}

		wg.Add(1)
		if err := p.extractPool.Submit(task); err != nil {
			// Pool saturated or released: extract on this goroutine.
			task()
		}
	}

	for _, c := range chunks {
		if err := p.semantic.Add(ctx, c); err != nil {
			p.logger.Error("failed to add chunk to semantic index",
				"source", doc.Source, "sequence", c.Sequence, "err", err)
			wg.Wait()
			return errorReport(fmt.Sprintf("failed to store chunk: %v", err))
		}
	}

	wg.Wait()

	extracted := 0
	for _, triples := range triplesByChunk {
		for _, triple := range triples {
			if err := p.graph.MergeEdge(ctx, triple); err != nil {
				p.logger.Error("failed to merge triple",
					"source", doc.Source, "triple", triple.Key(), "err", err)
				return errorReport(fmt.Sprintf("failed to store triple: %v", err))
			}
			extracted++
		}
	}

	p.logger.Info("document ingested",
		"source", doc.Source,
		"chunks", len(chunks),
		"triples", extracted)

	return &core.IngestionReport{
		ChunksProcessed:  len(chunks),
		TriplesExtracted: extracted,
		Status:           core.StatusSuccess,
	}
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.extractPool != nil {
		p.extractPool.Release()
	}
}

func errorReport(message string) *core.IngestionReport {
	return &core.IngestionReport{
		Status:  core.StatusError,
		Message: message,
	}
}
