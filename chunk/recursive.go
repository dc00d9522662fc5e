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

import (
	"strings"

	"github.com/synaptiq/braid/core"
	"github.com/tmc/langchaingo/textsplitter"
)

// Separator preference for the recursive splitter, from paragraph
// breaks down to single spaces. There is no character-level fallback:
// a token longer than the window is emitted whole rather than cut
// mid-word.
var recursiveSeparators = []string{"\n\n", "\n", ". ", " "}

type recursiveChunker struct {
	splitter textsplitter.RecursiveCharacter
}

// NewRecursive creates a fixed-window chunker with overlap.
func NewRecursive(opts ...Option) Chunker {
	cfg := NewConfig(opts...)
	return &recursiveChunker{
		splitter: textsplitter.NewRecursiveCharacter(
			textsplitter.WithChunkSize(cfg.ChunkSize),
			textsplitter.WithChunkOverlap(cfg.ChunkOverlap),
			textsplitter.WithSeparators(recursiveSeparators),
		),
	}
}

// Split returns overlapping windows over the document text.
func (c *recursiveChunker) Split(doc core.Document) ([]*core.Chunk, error) {
	text := strings.TrimSpace(doc.Text)
	if text == "" {
		return nil, nil
	}

	parts, err := c.splitter.SplitText(text)
	if err != nil {
		return nil, err
	}

	chunks := make([]*core.Chunk, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		chunks = append(chunks, core.NewChunk(part, doc.Source, len(chunks)))
	}
	return chunks, nil
}
