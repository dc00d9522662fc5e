// Package ingestion orchestrates feeding documents into both indices.
//
// The Pipeline type manages the ingestion workflow for a document:
//   - Splitting the text into chunks
//   - Storing every chunk in the semantic index, in reading order
//   - Extracting relationship triples from chunks concurrently
//   - Merging the triples into the relationship index
//
// Triple extraction runs on a worker pool; a failed extraction degrades
// that chunk to zero triples and never aborts the run. Index writes are
// different: a failed store write aborts the run and is reported, with
// chunks already written to the semantic index left in place.
package ingestion
