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


package query

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/synaptiq/braid/ai"
	"github.com/synaptiq/braid/core"
	"github.com/synaptiq/braid/storage"
)

const (
	// defaultTopK is the number of passages retrieved on the semantic path.
	defaultTopK = 3
	// maxFacts caps the triples formatted into a relational answer.
	maxFacts = 5
	// minKeywordLen filters question words too short to name an entity.
	// Must not exceed the extractor's entity floor, or stored entities
	// become unreachable by their own name.
	minKeywordLen = 3

	// Store names used in evidence entries.
	semanticStore   = "semantic_index"
	relationalStore = "relationship_index"

	// Fixed answers for empty retrievals. Returned with empty evidence
	// and without calling the generator.
	noInformationAnswer   = "No relevant information found"
	noRelationshipsAnswer = "No relevant relationships found"

	// fallbackContextLen bounds the context echoed by the
	// non-generative semantic fallback.
	fallbackContextLen = 200
)

const semanticPromptTemplate = `Based on the following context, answer the question concisely and accurately.

Context: %s

Question: %s

Answer:`

const relationalPromptTemplate = `Based on the following relationships, answer the question.

Relationships:
%s

Question: %s

Answer:`

// Composer turns a routed question into an answer with provenance.
type Composer struct {
	semantic  storage.SemanticIndex
	graph     storage.RelationshipIndex
	generator ai.Generator
	topK      int
	logger    *slog.Logger
}

// ComposerOption configures a Composer.
type ComposerOption func(*Composer)

// WithTopK sets the number of passages retrieved on the semantic path.
func WithTopK(k int) ComposerOption {
	return func(c *Composer) {
		if k > 0 {
			c.topK = k
		}
	}
}

// NewComposer creates a composer over the two indices. The generator
// may be nil: both paths then answer deterministically from the
// retrieved context or facts.
func NewComposer(
	semantic storage.SemanticIndex,
	graph storage.RelationshipIndex,
	generator ai.Generator,
	opts ...ComposerOption,
) (*Composer, error) {
	if semantic == nil {
		return nil, ErrSemanticIndexRequired
	}
	if graph == nil {
		return nil, ErrRelationshipIndexRequired
	}

	c := &Composer{
		semantic:  semantic,
		graph:     graph,
		generator: generator,
		topK:      defaultTopK,
		logger:    slog.Default().With("component", "composer"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Answer composes an answer for the question along the given route.
// It returns an error only when the routed index fails; generator
// failures and empty retrievals produce fallback answers.
func (c *Composer) Answer(ctx context.Context, question string, route core.Route) (*core.Answer, error) {
	if route == core.RouteRelational {
		return c.answerRelational(ctx, question)
	}
	return c.answerSemantic(ctx, question)
}

func (c *Composer) answerSemantic(ctx context.Context, question string) (*core.Answer, error) {
	results, err := c.semantic.Query(ctx, question, c.topK)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return &core.Answer{Text: noInformationAnswer}, nil
	}

	passages := make([]string, len(results))
	chunkIds := make([]core.ID, len(results))
	for i, result := range results {
		passages[i] = result.Content
		chunkIds[i] = result.ChunkId
	}
	context := strings.Join(passages, "\n\n")

	text := c.generate(ctx, fmt.Sprintf(semanticPromptTemplate, context, question))
	if text == "" {
		snippet := context
		if len(snippet) > fallbackContextLen {
			snippet = snippet[:fallbackContextLen]
		}
		text = "Based on the available information: " + snippet + "..."
	}

	return &core.Answer{
		Text:    text,
		Sources: []core.Source{{Store: semanticStore, ChunkIds: chunkIds}},
	}, nil
}

func (c *Composer) answerRelational(ctx context.Context, question string) (*core.Answer, error) {
	matches, err := c.graph.Match(ctx, questionKeywords(question))
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return &core.Answer{Text: noRelationshipsAnswer}, nil
	}

	capped := matches
	if len(capped) > maxFacts {
		capped = capped[:maxFacts]
	}
	facts := make([]string, len(capped))
	for i, triple := range capped {
		facts[i] = "• " + triple.Fact()
	}
	factsBlock := strings.Join(facts, "\n")

	text := c.generate(ctx, fmt.Sprintf(relationalPromptTemplate, factsBlock, question))
	if text == "" {
		text = "Based on the relationships:\n" + factsBlock
	}

	return &core.Answer{
		Text:    text,
		Sources: []core.Source{{Store: relationalStore, Relationships: len(matches)}},
	}, nil
}

// generate runs the generator when configured. A missing generator or
// a failed call yields "", which callers replace with a deterministic
// fallback.
func (c *Composer) generate(ctx context.Context, prompt string) string {
	if c.generator == nil {
		return ""
	}
	text, err := c.generator.Generate(ctx, prompt)
	if err != nil {
		c.logger.Warn("generation failed, using fallback answer", "err", err)
		return ""
	}
	return strings.TrimSpace(text)
}

// questionKeywords lowers the question and keeps words long enough to
// plausibly name an entity.
func questionKeywords(question string) []string {
	var keywords []string
	for _, word := range strings.Fields(strings.ToLower(question)) {
		word = strings.Trim(word, "?.,!;:'\"")
		if len(word) >= minKeywordLen {
			keywords = append(keywords, word)
		}
	}
	return keywords
}
