// Package extract pulls (subject, predicate, object) triples out of
// chunk text for the relationship index.
//
// Two interchangeable strategies are provided:
//   - Pattern: an ordered set of verb-phrase regular expressions mapped
//     to canonical predicates. Fast, deterministic, no model calls.
//   - Generative: a few-shot prompt asking a text generator to emit
//     bracketed (entity, relation, entity) lines, parsed leniently.
//
// Extraction never fails past the chunk boundary: any internal failure
// degrades to zero triples for that chunk and is logged.
package extract
