package core

import (
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing so identical content
// always maps to the same identity.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs, which is what makes
// node and edge merges idempotent.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Document is a raw text input identified by its source path or name.
// Documents are immutable once read.
type Document struct {
	Source string
	Text   string
}

// Chunk is a bounded passage of source text, the unit of both embedding
// and relation extraction. Chunks are never mutated after creation except
// for the Vector field, which the semantic index populates on add.
type Chunk struct {
	Id       ID
	Text     string
	Source   string    // source document identifier
	Sequence int       // position within the source document
	Vector   []float32 // embedding vector (populated by the semantic index)
}

// NewChunk creates a chunk with a content-based ID.
func NewChunk(text, source string, sequence int) *Chunk {
	return &Chunk{
		Id:       IDFromContent(source + "#" + strconv.Itoa(sequence) + ":" + text),
		Text:     text,
		Source:   source,
		Sequence: sequence,
	}
}

// Triple is a normalized (subject, predicate, object) fact extracted from
// a chunk. All fields are normalized strings; see NormalizeTriple.
type Triple struct {
	Subject   string
	Predicate string
	Object    string
}

// Key returns the canonical identity of the directed edge this triple
// describes. Two triples with the same key merge into one edge.
func (t Triple) Key() string {
	return t.Subject + "|" + t.Predicate + "|" + t.Object
}

// Fact renders the triple as a human-readable statement, with the
// predicate lower-cased and underscores replaced by spaces.
// Example: {FastAPI HAS_COMPONENT routers} -> "FastAPI has component routers".
func (t Triple) Fact() string {
	predicate := strings.ReplaceAll(strings.ToLower(t.Predicate), "_", " ")
	return t.Subject + " " + predicate + " " + t.Object
}

// Route identifies which retrieval path answers a query.
type Route string

const (
	// RouteSemantic routes to nearest-neighbor retrieval over chunk embeddings.
	RouteSemantic Route = "semantic"
	// RouteRelational routes to keyword retrieval over extracted triples.
	RouteRelational Route = "relational"
)

// RetrievalResult is the uniform envelope returned by either index so the
// answer composer can treat semantic hits and relational hits identically.
type RetrievalResult struct {
	Content string // chunk text or formatted fact
	Source  string // source descriptor of the backing item
	ChunkId ID     // identity of the retrieved chunk, if any
	Rank    int    // 1-based relevance rank
	Score   float32
}

// Status values reported by ingestion runs and query envelopes.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// IngestionReport is the terminal artifact of one ingestion run.
// A fresh report is created for each run; reports are never merged.
type IngestionReport struct {
	ChunksProcessed  int    `json:"chunks_processed"`
	TriplesExtracted int    `json:"triples_extracted"`
	Status           string `json:"status"`
	Message          string `json:"message"`
}

// Source records which store and which items backed a given answer.
type Source struct {
	Store         string `json:"store"`
	ChunkIds      []ID   `json:"chunk_ids,omitempty"`
	Relationships int    `json:"relationships,omitempty"`
}

// Answer is the composed answer text together with its provenance.
type Answer struct {
	Text    string
	Sources []Source
}

// QueryResponse is the envelope returned for every query. Status is
// always populated; Message carries the failure description when
// Status is error, in which case Answer is empty.
type QueryResponse struct {
	Status       string   `json:"status"`
	Answer       string   `json:"answer,omitempty"`
	SearchMethod Route    `json:"search_method"`
	Sources      []Source `json:"sources,omitempty"`
	Message      string   `json:"message,omitempty"`
}
