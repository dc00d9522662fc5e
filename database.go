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


// Package braid is a hybrid retrieval engine: one ingested corpus
// served by both a semantic (embedding) index and an entity
// relationship graph, with per-question routing between the two.
package braid

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/synaptiq/braid/ai"
	"github.com/synaptiq/braid/ai/openai"
	"github.com/synaptiq/braid/chunk"
	"github.com/synaptiq/braid/core"
	"github.com/synaptiq/braid/extract"
	"github.com/synaptiq/braid/ingestion"
	"github.com/synaptiq/braid/query"
	"github.com/synaptiq/braid/reindex"
	"github.com/synaptiq/braid/storage"
	"github.com/synaptiq/braid/storage/badger"
)

// Strategy tags selecting between the interchangeable policy variants.
const (
	// ChunkingRecursive is the fixed-window splitter with overlap.
	ChunkingRecursive = "recursive"
	// ChunkingStructural is the paragraph-oriented splitter.
	ChunkingStructural = "structural"

	// ExtractionPattern extracts triples with verb-phrase templates.
	ExtractionPattern = "pattern"
	// ExtractionGenerative extracts triples with a few-shot prompt.
	ExtractionGenerative = "generative"

	// RoutingKeyword routes by indicator phrases.
	RoutingKeyword = "keyword"
	// RoutingGenerative routes by asking the generator.
	RoutingGenerative = "generative"
)

// Engine wires the whole system: one storage backend, the two indices,
// the ingestion pipeline, and the query service.
type Engine struct {
	backend  *badger.Backend
	semantic storage.SemanticIndex
	graph    storage.RelationshipIndex
	provider ai.Provider
	embedder ai.Embedder
	pipeline *ingestion.Pipeline
	service  *query.Service
	logger   *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	aiConfig     *ai.Config
	provider     ai.Provider
	inMemory     bool
	noGenerator  bool
	chunking     string
	extraction   string
	routing      string
	ingestionOps []ingestion.Option
}

// WithAIConfig sets the configuration used to build the default
// OpenAI-compatible provider.
func WithAIConfig(config *ai.Config) EngineOption {
	return func(o *engineOptions) {
		if config != nil {
			o.aiConfig = config
		}
	}
}

// WithProvider injects an existing provider instead of constructing
// one from the AI config. The engine takes ownership and closes it.
func WithProvider(provider ai.Provider) EngineOption {
	return func(o *engineOptions) {
		o.provider = provider
	}
}

// WithInMemory keeps all storage in memory. Intended for tests.
func WithInMemory() EngineOption {
	return func(o *engineOptions) {
		o.inMemory = true
	}
}

// WithoutGenerator disables the text generator. Answers come from the
// deterministic fallbacks; generative strategies become unavailable.
func WithoutGenerator() EngineOption {
	return func(o *engineOptions) {
		o.noGenerator = true
	}
}

// WithChunking selects the chunking strategy.
// Default is ChunkingRecursive.
func WithChunking(strategy string) EngineOption {
	return func(o *engineOptions) {
		o.chunking = strategy
	}
}

// WithExtraction selects the triple extraction strategy.
// Default is ExtractionPattern.
func WithExtraction(strategy string) EngineOption {
	return func(o *engineOptions) {
		o.extraction = strategy
	}
}

// WithRouting selects the query routing strategy.
// Default is RoutingKeyword.
func WithRouting(strategy string) EngineOption {
	return func(o *engineOptions) {
		o.routing = strategy
	}
}

// WithIngestionOptions forwards options to the ingestion pipeline.
func WithIngestionOptions(opts ...ingestion.Option) EngineOption {
	return func(o *engineOptions) {
		o.ingestionOps = append(o.ingestionOps, opts...)
	}
}

// NewEngine creates an engine with storage at filePath.
func NewEngine(filePath string, opts ...EngineOption) (*Engine, error) {
	options := &engineOptions{
		aiConfig:   ai.DefaultConfig(),
		chunking:   ChunkingRecursive,
		extraction: ExtractionPattern,
		routing:    RoutingKeyword,
	}
	for _, opt := range opts {
		opt(options)
	}

	provider := options.provider
	if provider == nil {
		var err error
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			return nil, err
		}
	}

	var generator ai.Generator
	if !options.noGenerator {
		generator = provider.Generator()
	}

	chunker, err := newChunker(options.chunking)
	if err != nil {
		provider.Close()
		return nil, err
	}

	extractor, err := newExtractor(options.extraction, generator)
	if err != nil {
		provider.Close()
		return nil, err
	}

	router, err := newRouter(options.routing, generator)
	if err != nil {
		provider.Close()
		return nil, err
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		provider.Close()
		return nil, err
	}

	// Repeated queries re-embed the same question text; cache those.
	embedder := ai.NewCachedEmbedder(provider.Embedder(), 0)

	semantic, err := badger.NewSemanticIndex(backend, embedder)
	if err != nil {
		backend.Close()
		provider.Close()
		return nil, err
	}

	graph, err := badger.NewRelationshipIndex(backend)
	if err != nil {
		semantic.Close()
		backend.Close()
		provider.Close()
		return nil, err
	}

	pipeline, err := ingestion.NewPipeline(semantic, graph, chunker, extractor, options.ingestionOps...)
	if err != nil {
		graph.Close()
		semantic.Close()
		backend.Close()
		provider.Close()
		return nil, err
	}

	composer, err := query.NewComposer(semantic, graph, generator)
	if err == nil {
		var service *query.Service
		service, err = query.NewService(router, composer)
		if err == nil {
			return &Engine{
				backend:  backend,
				semantic: semantic,
				graph:    graph,
				provider: provider,
				embedder: embedder,
				pipeline: pipeline,
				service:  service,
				logger:   slog.Default(),
			}, nil
		}
	}

	pipeline.Release()
	graph.Close()
	semantic.Close()
	backend.Close()
	provider.Close()
	return nil, err
}

// Ingest reads and ingests the document at path.
func (e *Engine) Ingest(ctx context.Context, path string) *core.IngestionReport {
	return e.pipeline.Ingest(ctx, path)
}

// IngestDocument ingests an already-loaded document.
func (e *Engine) IngestDocument(ctx context.Context, doc core.Document) *core.IngestionReport {
	return e.pipeline.IngestDocument(ctx, doc)
}

// Query answers one question over the ingested corpus.
func (e *Engine) Query(ctx context.Context, question string) *core.QueryResponse {
	return e.service.Query(ctx, question)
}

// Reindex re-embeds every stored chunk with the current embedding
// model. Use after switching embedding models on an existing database.
// Progress is reported to the given writer.
func (e *Engine) Reindex(ctx context.Context, progress io.Writer, config *reindex.Config) error {
	store, ok := e.semantic.(storage.ChunkStore)
	if !ok {
		return fmt.Errorf("semantic index does not support reindexing")
	}
	return reindex.NewReindexer(store, e.embedder, config, progress).Run(ctx)
}

// SemanticIndex exposes the semantic index for direct use.
func (e *Engine) SemanticIndex() storage.SemanticIndex {
	return e.semantic
}

// RelationshipIndex exposes the relationship index for direct use.
func (e *Engine) RelationshipIndex() storage.RelationshipIndex {
	return e.graph
}

// Close releases the pipeline, indices, provider, and storage backend.
func (e *Engine) Close() error {
	e.pipeline.Release()

	if err := e.provider.Close(); err != nil {
		e.logger.Error("error closing AI provider", "err", err)
	}

	if err := e.semantic.Close(); err != nil {
		e.logger.Error("error closing semantic index", "err", err)
		return err
	}
	if err := e.graph.Close(); err != nil {
		e.logger.Error("error closing relationship index", "err", err)
		return err
	}

	if err := e.backend.Close(); err != nil {
		e.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func newChunker(strategy string) (chunk.Chunker, error) {
	switch strategy {
	case ChunkingRecursive:
		return chunk.NewRecursive(), nil
	case ChunkingStructural:
		return chunk.NewStructural(), nil
	default:
		return nil, fmt.Errorf("unknown chunking strategy %q", strategy)
	}
}

func newExtractor(strategy string, generator ai.Generator) (extract.Extractor, error) {
	switch strategy {
	case ExtractionPattern:
		return extract.NewPattern(), nil
	case ExtractionGenerative:
		if generator == nil {
			return nil, fmt.Errorf("extraction strategy %q requires a generator", strategy)
		}
		return extract.NewGenerative(generator), nil
	default:
		return nil, fmt.Errorf("unknown extraction strategy %q", strategy)
	}
}

func newRouter(strategy string, generator ai.Generator) (query.Router, error) {
	switch strategy {
	case RoutingKeyword:
		return query.NewKeywordRouter(), nil
	case RoutingGenerative:
		if generator == nil {
			return nil, fmt.Errorf("routing strategy %q requires a generator", strategy)
		}
		return query.NewGenerativeRouter(generator)
	default:
		return nil, fmt.Errorf("unknown routing strategy %q", strategy)
	}
}
