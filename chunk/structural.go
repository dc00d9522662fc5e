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
)

type structuralChunker struct {
	minParagraphLen int
	maxParagraphLen int
	sentencePackLen int
}

// NewStructural creates a paragraph-oriented chunker. Paragraphs below
// the minimum length are discarded as fragments; paragraphs above the
// maximum are split into sentences and repacked.
func NewStructural(opts ...Option) Chunker {
	cfg := NewConfig(opts...)
	return &structuralChunker{
		minParagraphLen: cfg.MinParagraphLen,
		maxParagraphLen: cfg.MaxParagraphLen,
		sentencePackLen: cfg.SentencePackLen,
	}
}

// Split returns one chunk per surviving paragraph, or several when a
// paragraph had to be sentence-packed.
func (c *structuralChunker) Split(doc core.Document) ([]*core.Chunk, error) {
	text := strings.TrimSpace(doc.Text)
	if text == "" {
		return nil, nil
	}

	var chunks []*core.Chunk
	for _, paragraph := range strings.Split(text, "\n\n") {
		paragraph = strings.TrimSpace(paragraph)
		if len(paragraph) < c.minParagraphLen {
			continue
		}

		if len(paragraph) <= c.maxParagraphLen {
			chunks = append(chunks, core.NewChunk(paragraph, doc.Source, len(chunks)))
			continue
		}

		for _, piece := range c.packSentences(paragraph) {
			chunks = append(chunks, core.NewChunk(piece, doc.Source, len(chunks)))
		}
	}
	return chunks, nil
}

// packSentences greedily accumulates sentences up to the pack target.
// A single sentence longer than the target becomes its own piece.
func (c *structuralChunker) packSentences(paragraph string) []string {
	var pieces []string
	var current strings.Builder

	for _, sentence := range strings.Split(paragraph, ". ") {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		if !strings.HasSuffix(sentence, ".") {
			sentence += "."
		}

		if current.Len() > 0 && current.Len()+len(sentence)+1 > c.sentencePackLen {
			pieces = append(pieces, current.String())
			current.Reset()
		}

		if current.Len() > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(sentence)
	}

	if current.Len() > 0 {
		pieces = append(pieces, current.String())
	}
	return pieces
}
