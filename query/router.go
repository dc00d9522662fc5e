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
)

// Router decides which retrieval path answers a question. Routing is
// stateless: each call is independent, never cached, never influenced
// by prior queries.
type Router interface {
	Route(ctx context.Context, question string) core.Route
}

// Indicator phrase lists for the keyword policy. Relational indicators
// are checked first: a question matching both lists routes relational.
var (
	relationalIndicators = []string{
		"how does", "relate", "relationship", "connection", "connected",
		"links", "associated", "depends", "uses", "has", "includes",
	}
	semanticIndicators = []string{
		"what is", "define", "explain", "describe", "meaning",
		"overview", "summary", "about",
	}
)

type keywordRouter struct{}

// NewKeywordRouter creates a deterministic router driven by indicator
// phrases. Questions matching neither list route semantic.
func NewKeywordRouter() Router {
	return &keywordRouter{}
}

func (r *keywordRouter) Route(_ context.Context, question string) core.Route {
	lowered := strings.ToLower(question)

	for _, indicator := range relationalIndicators {
		if strings.Contains(lowered, indicator) {
			return core.RouteRelational
		}
	}
	for _, indicator := range semanticIndicators {
		if strings.Contains(lowered, indicator) {
			return core.RouteSemantic
		}
	}
	return core.RouteSemantic
}

const routingPromptTemplate = `Classify this question for the best search method.

Question: %s

Options:
(A) Vector Search - for questions about what something is, definitions, explanations
(B) Graph Query - for questions about relationships, connections, how things relate

Answer with just (A) or (B):`

type generativeRouter struct {
	generator ai.Generator
	logger    *slog.Logger
}

// NewGenerativeRouter creates a router that asks the text generator to
// classify the question. An unparseable or failed response degrades to
// the semantic default; routing never fails.
func NewGenerativeRouter(generator ai.Generator) (Router, error) {
	if generator == nil {
		return nil, ErrGeneratorRequired
	}
	return &generativeRouter{
		generator: generator,
		logger:    slog.Default().With("component", "generative-router"),
	}, nil
}

func (r *generativeRouter) Route(ctx context.Context, question string) core.Route {
	response, err := r.generator.Generate(ctx, fmt.Sprintf(routingPromptTemplate, question))
	if err != nil {
		r.logger.Warn("routing degraded to semantic default", "err", err)
		return core.RouteSemantic
	}

	switch {
	case strings.Contains(response, "(A)"), strings.Contains(response, "Vector Search"):
		return core.RouteSemantic
	case strings.Contains(response, "(B)"), strings.Contains(response, "Graph Query"):
		return core.RouteRelational
	default:
		r.logger.Debug("unparseable routing response, using semantic default",
			"response", response)
		return core.RouteSemantic
	}
}
