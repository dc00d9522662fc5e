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

import "errors"

// Domain validation errors
var (
	// ErrInvalidTriple indicates a triple failed normalization.
	ErrInvalidTriple = errors.New("invalid triple")

	// ErrEmptySubject indicates the triple subject is empty after normalization.
	ErrEmptySubject = errors.New("subject cannot be empty")

	// ErrEmptyPredicate indicates the triple predicate is empty after normalization.
	ErrEmptyPredicate = errors.New("predicate cannot be empty")

	// ErrEmptyObject indicates the triple object is empty after normalization.
	ErrEmptyObject = errors.New("object cannot be empty")

	// ErrInvalidChunk indicates a chunk failed validation.
	ErrInvalidChunk = errors.New("invalid chunk")

	// ErrEmptyChunkText indicates the chunk Text field is empty.
	ErrEmptyChunkText = errors.New("chunk text cannot be empty")
)
