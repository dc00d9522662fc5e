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


package extract

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/synaptiq/braid/ai"
	"github.com/synaptiq/braid/core"
)

const triplePromptTemplate = `Extract relationships from this text as triples in the format (entity1, relation, entity2).

Examples:
- (FastAPI, HAS_COMPONENT, routers)
- (routers, ENABLES, organization)
- (Pydantic, PROVIDES, validation)

Text: %s

Triples:`

// tripleLinePattern matches a bracketed comma-separated 3-tuple
// anywhere in a response line. The captures exclude newlines and
// parens so a malformed line cannot merge with its neighbor; lines
// that do not match are skipped.
var tripleLinePattern = regexp.MustCompile(`\(([^,\n()]+),\s*([^,\n()]+),\s*([^)\n]+)\)`)

type generativeExtractor struct {
	generator ai.Generator
	logger    *slog.Logger
}

// NewGenerative creates an extractor that prompts a text generator with
// few-shot examples and parses the bracketed triples it emits.
//
// A generator failure for one chunk degrades to zero triples; it never
// propagates as an error, so one bad chunk cannot abort an ingestion run.
func NewGenerative(generator ai.Generator) Extractor {
	return &generativeExtractor{
		generator: generator,
		logger:    slog.Default().With("component", "generative-extractor"),
	}
}

// Extract prompts the generator and parses every well-formed triple
// line from its completion.
func (e *generativeExtractor) Extract(ctx context.Context, text string) ([]core.Triple, error) {
	response, err := e.generator.Generate(ctx, fmt.Sprintf(triplePromptTemplate, text))
	if err != nil {
		e.logger.Warn("triple extraction degraded to zero triples", "err", err)
		return nil, nil
	}

	var triples []core.Triple
	for _, match := range tripleLinePattern.FindAllStringSubmatch(response, -1) {
		triple, err := core.NormalizeTriple(match[1], match[2], match[3])
		if err != nil {
			// Malformed tuple, skip the line.
			continue
		}
		triples = append(triples, triple)
	}

	e.logger.Debug("extracted triples", "count", len(triples))
	return triples, nil
}
