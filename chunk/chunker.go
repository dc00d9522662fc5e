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


package chunk

import "github.com/synaptiq/braid/core"

// Default chunking parameters. The recursive policy uses the window
// size and overlap; the structural policy uses the paragraph bounds
// and sentence pack target.
const (
	DefaultChunkSize       = 300
	DefaultChunkOverlap    = 50
	DefaultMinParagraphLen = 50
	DefaultMaxParagraphLen = 500
	DefaultSentencePackLen = 400
)

// Chunker splits a document into ordered chunks.
type Chunker interface {
	// Split returns the document's chunks in reading order.
	// An empty or whitespace-only document yields no chunks and no error.
	Split(doc core.Document) ([]*core.Chunk, error)
}

// Config holds chunking parameters shared by the policies.
type Config struct {
	ChunkSize       int // target window size in characters (recursive)
	ChunkOverlap    int // characters shared between adjacent windows (recursive)
	MinParagraphLen int // paragraphs shorter than this are discarded (structural)
	MaxParagraphLen int // paragraphs longer than this are sentence-packed (structural)
	SentencePackLen int // target size when packing sentences (structural)
}

// Option configures chunking parameters.
type Option func(*Config)

// WithChunkSize sets the recursive window size.
func WithChunkSize(size int) Option {
	return func(c *Config) {
		if size > 0 {
			c.ChunkSize = size
		}
	}
}

// WithChunkOverlap sets the recursive window overlap.
func WithChunkOverlap(overlap int) Option {
	return func(c *Config) {
		if overlap >= 0 {
			c.ChunkOverlap = overlap
		}
	}
}

// WithMinParagraphLen sets the structural fragment-discard threshold.
func WithMinParagraphLen(n int) Option {
	return func(c *Config) {
		if n >= 0 {
			c.MinParagraphLen = n
		}
	}
}

// WithMaxParagraphLen sets the structural paragraph size limit.
func WithMaxParagraphLen(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.MaxParagraphLen = n
		}
	}
}

// WithSentencePackLen sets the structural sentence pack target.
func WithSentencePackLen(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.SentencePackLen = n
		}
	}
}

// NewConfig creates a Config with defaults, then applies options.
func NewConfig(opts ...Option) Config {
	cfg := Config{
		ChunkSize:       DefaultChunkSize,
		ChunkOverlap:    DefaultChunkOverlap,
		MinParagraphLen: DefaultMinParagraphLen,
		MaxParagraphLen: DefaultMaxParagraphLen,
		SentencePackLen: DefaultSentencePackLen,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
