package storage

import (
	"context"

	"github.com/synaptiq/braid/core"
)

// SemanticIndex stores chunk text with embedding vectors and retrieves
// the chunks most similar to a query.
// Implementations must be thread-safe and support concurrent access.
type SemanticIndex interface {
	// Add embeds the chunk text and stores the chunk with its vector
	// and metadata (source, sequence). Adding the same chunk twice
	// stores it twice; the semantic index does not deduplicate.
	Add(ctx context.Context, chunk *core.Chunk) error

	// Query embeds the question text and returns up to limit chunks
	// ordered by similarity, best first. Rank starts at 1.
	// An empty index yields an empty result, not an error.
	Query(ctx context.Context, text string, limit int) ([]*core.RetrievalResult, error)

	// Close releases index resources.
	Close() error
}

// ChunkRecord pairs a stored chunk with the storage key it lives
// under, so the record can be rewritten in place.
type ChunkRecord struct {
	Key   []byte
	Chunk *core.Chunk
}

// ChunkStore is implemented by semantic indices that can enumerate and
// rewrite their stored chunk records. It exists for maintenance
// operations, such as re-embedding the corpus after an embedding model
// change.
type ChunkStore interface {
	// ScanChunks visits every stored chunk record in key order.
	// Iteration stops at the first error from fn.
	ScanChunks(ctx context.Context, fn func(record ChunkRecord) error) error

	// RewriteChunks writes the records back under their existing keys.
	RewriteChunks(ctx context.Context, records []ChunkRecord) error
}

// RelationshipIndex stores an entity graph of extracted triples.
// Node and edge writes are idempotent merges: re-ingesting identical
// content never duplicates graph state.
// Implementations must be thread-safe and support concurrent access.
type RelationshipIndex interface {
	// MergeNode creates the named entity node if it does not exist.
	MergeNode(ctx context.Context, name string) error

	// MergeEdge merges both endpoint nodes and the directed edge
	// (subject)-[predicate]->(object). Merging the same triple twice
	// leaves a single edge.
	MergeEdge(ctx context.Context, triple core.Triple) error

	// Match returns triples whose subject or object contains any of
	// the keywords, case-insensitively. Keywords are matched as
	// substrings. No matches yields an empty result, not an error.
	Match(ctx context.Context, keywords []string) ([]core.Triple, error)

	// Close releases index resources.
	Close() error
}
