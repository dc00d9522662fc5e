// Package chunk splits raw documents into bounded passages for indexing.
//
// Two chunking policies are provided:
//   - Recursive: a fixed-window splitter with overlap, built on
//     langchaingo's recursive character splitter. Best for dense prose
//     where retrieval windows matter more than document structure.
//   - Structural: a paragraph-oriented splitter that keeps natural
//     boundaries, discards fragments, and packs oversized paragraphs
//     sentence by sentence.
//
// Both policies emit chunks with content-based IDs and per-document
// sequence numbers, so the same document always chunks the same way.
package chunk
