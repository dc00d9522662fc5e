// Package reindex re-embeds every stored chunk with a new or updated
// embedding model.
//
// Chunk records are processed in batches with progress reporting and
// exponential-backoff retries around embedding calls. Rewritten
// vectors are normalized so cosine similarity search stays consistent
// across model changes.
package reindex
