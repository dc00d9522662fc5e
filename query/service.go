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
	"log/slog"

	"github.com/synaptiq/braid/core"
)

// Service is the query entry point: route, compose, envelope.
type Service struct {
	router   Router
	composer *Composer
	logger   *slog.Logger
}

// NewService creates a query service.
func NewService(router Router, composer *Composer) (*Service, error) {
	if router == nil {
		return nil, ErrRouterRequired
	}
	if composer == nil {
		return nil, ErrComposerRequired
	}
	return &Service{
		router:   router,
		composer: composer,
		logger:   slog.Default().With("component", "query"),
	}, nil
}

// Query answers one question. It always returns a completed envelope:
// index failures are reported inside it as status=error, never raised.
func (s *Service) Query(ctx context.Context, question string) *core.QueryResponse {
	route := s.router.Route(ctx, question)

	answer, err := s.composer.Answer(ctx, question, route)
	if err != nil {
		s.logger.Error("query failed", "route", route, "err", err)
		return &core.QueryResponse{
			Status:       core.StatusError,
			SearchMethod: route,
			Message:      "failed to process query: " + err.Error(),
		}
	}

	s.logger.Debug("query answered", "route", route, "sources", len(answer.Sources))
	return &core.QueryResponse{
		Status:       core.StatusSuccess,
		Answer:       answer.Text,
		SearchMethod: route,
		Sources:      answer.Sources,
	}
}
