package badger

import (
	"context"
	"testing"

	"github.com/synaptiq/braid/ai/mock"
	"github.com/synaptiq/braid/core"
)

func TestRelationshipIndexMerge(t *testing.T) {
	semantic, graph, backend, err := NewMemoryIndices(mock.NewMockEmbedder())
	if err != nil {
		t.Fatalf("Failed to create indices: %v", err)
	}
	defer func() { semantic.Close(); graph.Close(); backend.Close() }()

	ctx := context.Background()

	triple := core.Triple{Subject: "FastAPI", Predicate: "HAS", Object: "routers"}
	if err := graph.MergeEdge(ctx, triple); err != nil {
		t.Fatalf("Failed to merge edge: %v", err)
	}

	nodes, edges, err := graph.Counts(ctx)
	if err != nil {
		t.Fatalf("Failed to count: %v", err)
	}
	if nodes != 2 {
		t.Fatalf("Expected 2 nodes, got %d", nodes)
	}
	if edges != 1 {
		t.Fatalf("Expected 1 edge, got %d", edges)
	}
}

func TestRelationshipIndexMergeIsIdempotent(t *testing.T) {
	semantic, graph, backend, err := NewMemoryIndices(mock.NewMockEmbedder())
	if err != nil {
		t.Fatalf("Failed to create indices: %v", err)
	}
	defer func() { semantic.Close(); graph.Close(); backend.Close() }()

	ctx := context.Background()

	triples := []core.Triple{
		{Subject: "FastAPI", Predicate: "HAS", Object: "routers"},
		{Subject: "FastAPI", Predicate: "USES", Object: "Pydantic"},
	}

	// Merge everything three times over.
	for round := 0; round < 3; round++ {
		for _, triple := range triples {
			if err := graph.MergeEdge(ctx, triple); err != nil {
				t.Fatalf("Failed to merge edge: %v", err)
			}
		}
	}

	nodes, edges, err := graph.Counts(ctx)
	if err != nil {
		t.Fatalf("Failed to count: %v", err)
	}
	if nodes != 3 { // FastAPI, routers, Pydantic
		t.Fatalf("Expected 3 nodes, got %d", nodes)
	}
	if edges != 2 {
		t.Fatalf("Expected 2 edges, got %d", edges)
	}
}

func TestRelationshipIndexSamePairDifferentPredicate(t *testing.T) {
	semantic, graph, backend, err := NewMemoryIndices(mock.NewMockEmbedder())
	if err != nil {
		t.Fatalf("Failed to create indices: %v", err)
	}
	defer func() { semantic.Close(); graph.Close(); backend.Close() }()

	ctx := context.Background()

	if err := graph.MergeEdge(ctx, core.Triple{Subject: "FastAPI", Predicate: "HAS", Object: "routers"}); err != nil {
		t.Fatalf("Failed to merge edge: %v", err)
	}
	if err := graph.MergeEdge(ctx, core.Triple{Subject: "FastAPI", Predicate: "INCLUDES", Object: "routers"}); err != nil {
		t.Fatalf("Failed to merge edge: %v", err)
	}

	_, edges, err := graph.Counts(ctx)
	if err != nil {
		t.Fatalf("Failed to count: %v", err)
	}
	if edges != 2 {
		t.Fatalf("Expected distinct predicates to keep distinct edges, got %d", edges)
	}
}

func TestRelationshipIndexMatch(t *testing.T) {
	semantic, graph, backend, err := NewMemoryIndices(mock.NewMockEmbedder())
	if err != nil {
		t.Fatalf("Failed to create indices: %v", err)
	}
	defer func() { semantic.Close(); graph.Close(); backend.Close() }()

	ctx := context.Background()

	triples := []core.Triple{
		{Subject: "FastAPI", Predicate: "HAS", Object: "routers"},
		{Subject: "Pydantic", Predicate: "PROVIDES", Object: "validation"},
		{Subject: "Uvicorn", Predicate: "RUNS", Object: "FastAPI"},
	}
	for _, triple := range triples {
		if err := graph.MergeEdge(ctx, triple); err != nil {
			t.Fatalf("Failed to merge edge: %v", err)
		}
	}

	// Case-insensitive substring match on subject or object.
	matches, err := graph.Match(ctx, []string{"fastapi"})
	if err != nil {
		t.Fatalf("Failed to match: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("Expected 2 matches, got %d", len(matches))
	}

	matches, err = graph.Match(ctx, []string{"validation"})
	if err != nil {
		t.Fatalf("Failed to match: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("Expected 1 match, got %d", len(matches))
	}
	if matches[0].Subject != "Pydantic" {
		t.Fatalf("Expected Pydantic match, got %q", matches[0].Subject)
	}

	// Unknown keywords and empty keyword lists match nothing.
	matches, err = graph.Match(ctx, []string{"nonexistent"})
	if err != nil {
		t.Fatalf("Failed to match: %v", err)
	}
	if len(matches) != 0 {
		t.Fatalf("Expected no matches, got %d", len(matches))
	}

	matches, err = graph.Match(ctx, nil)
	if err != nil {
		t.Fatalf("Failed to match: %v", err)
	}
	if len(matches) != 0 {
		t.Fatalf("Expected no matches for empty keywords, got %d", len(matches))
	}
}

func TestRelationshipIndexRejectsInvalidTriple(t *testing.T) {
	semantic, graph, backend, err := NewMemoryIndices(mock.NewMockEmbedder())
	if err != nil {
		t.Fatalf("Failed to create indices: %v", err)
	}
	defer func() { semantic.Close(); graph.Close(); backend.Close() }()

	err = graph.MergeEdge(context.Background(), core.Triple{Subject: "FastAPI", Predicate: "", Object: "routers"})
	if err == nil {
		t.Fatal("Expected error for triple with empty predicate")
	}
}
