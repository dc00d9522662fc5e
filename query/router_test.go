package query

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/synaptiq/braid/ai/mock"
	"github.com/synaptiq/braid/core"
)

func TestKeywordRouter(t *testing.T) {
	ctx := context.Background()
	router := NewKeywordRouter()

	tests := []struct {
		name     string
		question string
		want     core.Route
	}{
		{"definition question", "What is FastAPI?", core.RouteSemantic},
		{"explanation question", "Explain dependency injection", core.RouteSemantic},
		{"summary question", "Give me an overview of the framework", core.RouteSemantic},
		{"relationship question", "How does FastAPI relate to routers?", core.RouteRelational},
		{"connection question", "What is the connection between Pydantic and validation?", core.RouteRelational},
		{"uses question", "Which server uses FastAPI?", core.RouteRelational},
		{"no indicators default semantic", "Tell me more", core.RouteSemantic},
		{"both lists routes relational", "Explain how does FastAPI relate to Pydantic", core.RouteRelational},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, router.Route(ctx, tt.question))
		})
	}

	t.Run("routing is deterministic", func(t *testing.T) {
		question := "How does FastAPI relate to routers?"
		first := router.Route(ctx, question)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, router.Route(ctx, question))
		}
	})
}

func TestGenerativeRouter(t *testing.T) {
	ctx := context.Background()

	t.Run("requires a generator", func(t *testing.T) {
		_, err := NewGenerativeRouter(nil)
		assert.ErrorIs(t, err, ErrGeneratorRequired)
	})

	tests := []struct {
		name     string
		response string
		want     core.Route
	}{
		{"letter A", "(A)", core.RouteSemantic},
		{"letter B", "(B)", core.RouteRelational},
		{"option name vector", "I would use Vector Search here.", core.RouteSemantic},
		{"option name graph", "Graph Query fits best.", core.RouteRelational},
		{"unparseable defaults semantic", "hard to say", core.RouteSemantic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, err := NewGenerativeRouter(mock.NewMockGenerator(tt.response))
			require.NoError(t, err)
			assert.Equal(t, tt.want, router.Route(ctx, "How does FastAPI relate to routers?"))
		})
	}

	t.Run("generator failure defaults semantic", func(t *testing.T) {
		generator := mock.NewMockGenerator()
		generator.GenerateFunc = func(ctx context.Context, prompt string) (string, error) {
			return "", errors.New("model unavailable")
		}
		router, err := NewGenerativeRouter(generator)
		require.NoError(t, err)

		assert.Equal(t, core.RouteSemantic, router.Route(ctx, "anything"))
	})

	t.Run("prompt carries the question", func(t *testing.T) {
		var seen string
		generator := mock.NewMockGenerator()
		generator.GenerateFunc = func(ctx context.Context, prompt string) (string, error) {
			seen = prompt
			return "(A)", nil
		}
		router, err := NewGenerativeRouter(generator)
		require.NoError(t, err)

		router.Route(ctx, "What is FastAPI?")
		assert.Contains(t, seen, "What is FastAPI?")
		assert.Contains(t, seen, "(A) Vector Search")
		assert.Contains(t, seen, "(B) Graph Query")
	})
}
