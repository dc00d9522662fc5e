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
	"regexp"

	"github.com/synaptiq/braid/core"
)

// minEntityLen is the shortest captured entity kept; anything shorter
// is pronoun-level noise.
const minEntityLen = 3

// patternRule maps one verb family to its canonical predicate.
type patternRule struct {
	re        *regexp.Regexp
	predicate string
}

// Ordered verb-phrase templates. Matching is case-insensitive and a
// sentence may match several rules.
var patternRules = []patternRule{
	{regexp.MustCompile(`(?i)\b(\w+)\s+(?:is|are)\s+(?:an?\s+)?(\w+)`), "IS_A"},
	{regexp.MustCompile(`(?i)\b(\w+)\s+(?:has|have)\s+(\w+)`), "HAS"},
	{regexp.MustCompile(`(?i)\b(\w+)\s+(?:uses|use)\s+(\w+)`), "USES"},
	{regexp.MustCompile(`(?i)\b(\w+)\s+(?:provides|provide)\s+(\w+)`), "PROVIDES"},
	{regexp.MustCompile(`(?i)\b(\w+)\s+(?:includes|include)\s+(\w+)`), "INCLUDES"},
	{regexp.MustCompile(`(?i)\b(\w+)\s+(?:supports|support)\s+(\w+)`), "SUPPORTS"},
}

type patternExtractor struct{}

// NewPattern creates a deterministic extractor driven by verb-phrase
// regular expressions. It performs no model calls and never fails.
func NewPattern() Extractor {
	return &patternExtractor{}
}

// Extract applies every rule over the text and keeps normalized triples
// whose entities pass the noise threshold.
func (e *patternExtractor) Extract(_ context.Context, text string) ([]core.Triple, error) {
	var triples []core.Triple
	for _, rule := range patternRules {
		for _, match := range rule.re.FindAllStringSubmatch(text, -1) {
			subject := core.NormalizeEntity(match[1])
			object := core.NormalizeEntity(match[2])
			if len(subject) < minEntityLen || len(object) < minEntityLen {
				continue
			}

			triple, err := core.NormalizeTriple(subject, rule.predicate, object)
			if err != nil {
				continue
			}
			triples = append(triples, triple)
		}
	}
	return triples, nil
}
