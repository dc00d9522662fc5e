// Copyright 2025 Synaptiq Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import (
	"fmt"
	"strings"
)

// NormalizeEntity normalizes an entity name: surrounding whitespace is
// trimmed and single/double quotes are stripped.
func NormalizeEntity(name string) string {
	name = strings.ReplaceAll(name, `"`, "")
	name = strings.ReplaceAll(name, "'", "")
	return strings.TrimSpace(name)
}

// NormalizePredicate normalizes a predicate: quotes stripped, surrounding
// whitespace trimmed, upper-cased, internal spaces replaced by underscores.
func NormalizePredicate(predicate string) string {
	predicate = NormalizeEntity(predicate)
	predicate = strings.ToUpper(predicate)
	return strings.ReplaceAll(predicate, " ", "_")
}

// NormalizeTriple builds a normalized triple from raw extracted parts.
//
// Normalization rules:
//   - Subject and object: trimmed, quote-stripped
//   - Predicate: trimmed, quote-stripped, upper-cased, spaces -> underscores
//
// A triple whose subject, predicate, or object is empty after normalization
// is invalid and must be discarded by the caller.
func NormalizeTriple(subject, predicate, object string) (Triple, error) {
	t := Triple{
		Subject:   NormalizeEntity(subject),
		Predicate: NormalizePredicate(predicate),
		Object:    NormalizeEntity(object),
	}

	if t.Subject == "" {
		return Triple{}, fmt.Errorf("%w: %w", ErrInvalidTriple, ErrEmptySubject)
	}
	if t.Predicate == "" {
		return Triple{}, fmt.Errorf("%w: %w", ErrInvalidTriple, ErrEmptyPredicate)
	}
	if t.Object == "" {
		return Triple{}, fmt.Errorf("%w: %w", ErrInvalidTriple, ErrEmptyObject)
	}

	return t, nil
}

// ValidateChunk validates a Chunk according to domain rules.
//
// Validation rules:
//   - Text must not be empty
//   - Sequence must not be negative
//
// NOT validated (populated later):
//   - Vector (can be empty until the semantic index embeds the chunk)
func ValidateChunk(chunk *Chunk) error {
	if chunk == nil {
		return fmt.Errorf("%w: chunk is nil", ErrInvalidChunk)
	}

	if chunk.Text == "" {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrEmptyChunkText)
	}

	if chunk.Sequence < 0 {
		return fmt.Errorf("%w: negative sequence %d", ErrInvalidChunk, chunk.Sequence)
	}

	return nil
}
