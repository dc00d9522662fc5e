// Package query answers questions over the ingested corpus.
//
// A query passes through exactly two stages:
//   - Routing: deciding whether the question is semantic (nearest
//     passages by embedding) or relational (entity graph lookup).
//     Keyword-heuristic and generative routing policies are provided.
//   - Composition: retrieving evidence from the routed index and
//     producing an answer, via the text generator when one is
//     configured or via a deterministic fallback when not.
//
// Every query returns a completed envelope. Generator failures and
// empty retrievals degrade to fallback answers; only index failures
// surface as status=error, and even those stay inside the envelope.
package query
