package extract

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/synaptiq/braid/ai/mock"
	"github.com/synaptiq/braid/core"
)

func TestGenerativeExtract(t *testing.T) {
	ctx := context.Background()

	t.Run("parses bracketed triple lines", func(t *testing.T) {
		generator := mock.NewMockGenerator(
			"- (FastAPI, HAS_COMPONENT, routers)\n" +
				"- (routers, ENABLES, organization)\n" +
				"that last line is commentary, not a triple")
		extractor := NewGenerative(generator)

		triples, err := extractor.Extract(ctx, "FastAPI has routers for organization.")
		require.NoError(t, err)
		require.Len(t, triples, 2)
		assert.Equal(t,
			core.Triple{Subject: "FastAPI", Predicate: "HAS_COMPONENT", Object: "routers"},
			triples[0])
		assert.Equal(t,
			core.Triple{Subject: "routers", Predicate: "ENABLES", Object: "organization"},
			triples[1])
	})

	t.Run("normalizes quotes and predicate case", func(t *testing.T) {
		generator := mock.NewMockGenerator(`("Pydantic", provides, 'validation')`)
		extractor := NewGenerative(generator)

		triples, err := extractor.Extract(ctx, "Pydantic provides validation.")
		require.NoError(t, err)
		require.Len(t, triples, 1)
		assert.Equal(t,
			core.Triple{Subject: "Pydantic", Predicate: "PROVIDES", Object: "validation"},
			triples[0])
	})

	t.Run("malformed tuples are skipped", func(t *testing.T) {
		generator := mock.NewMockGenerator("(only, two)\n(, HAS, thing)\n(a, b, c)")
		extractor := NewGenerative(generator)

		triples, err := extractor.Extract(ctx, "whatever")
		require.NoError(t, err)
		require.Len(t, triples, 1)
		assert.Equal(t, core.Triple{Subject: "a", Predicate: "B", Object: "c"}, triples[0])
	})

	t.Run("tuple split across lines is not merged", func(t *testing.T) {
		generator := mock.NewMockGenerator(
			"(FastAPI, HAS\n, routers)\n(routers, ENABLES, organization)")
		extractor := NewGenerative(generator)

		triples, err := extractor.Extract(ctx, "whatever")
		require.NoError(t, err)
		require.Len(t, triples, 1)
		assert.Equal(t,
			core.Triple{Subject: "routers", Predicate: "ENABLES", Object: "organization"},
			triples[0])
	})

	t.Run("generator failure degrades to zero triples", func(t *testing.T) {
		generator := mock.NewMockGenerator()
		generator.GenerateFunc = func(ctx context.Context, prompt string) (string, error) {
			return "", errors.New("model unavailable")
		}
		extractor := NewGenerative(generator)

		triples, err := extractor.Extract(ctx, "FastAPI has routers.")
		assert.NoError(t, err, "generator failure must not abort the chunk")
		assert.Empty(t, triples)
	})

	t.Run("prompt carries the chunk text and examples", func(t *testing.T) {
		var seen string
		generator := mock.NewMockGenerator()
		generator.GenerateFunc = func(ctx context.Context, prompt string) (string, error) {
			seen = prompt
			return "", nil
		}
		extractor := NewGenerative(generator)

		_, err := extractor.Extract(ctx, "Uvicorn runs FastAPI applications.")
		require.NoError(t, err)
		assert.Contains(t, seen, "Uvicorn runs FastAPI applications.")
		assert.Contains(t, seen, "(FastAPI, HAS_COMPONENT, routers)")
	})
}
