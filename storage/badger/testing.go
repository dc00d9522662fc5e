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


package badger

import (
	"github.com/synaptiq/braid/ai"
)

// NewMemoryIndices creates in-memory semantic and relationship indices
// for testing. Returns semantic index, relationship index, backend, and
// error. Caller must close the indices and the backend when done.
func NewMemoryIndices(embedder ai.Embedder) (*SemanticIndex, *RelationshipIndex, *Backend, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, nil, nil, err
	}

	semantic, err := NewSemanticIndex(backend, embedder)
	if err != nil {
		backend.Close()
		return nil, nil, nil, err
	}

	graph, err := NewRelationshipIndex(backend)
	if err != nil {
		semantic.Close()
		backend.Close()
		return nil, nil, nil, err
	}

	return semantic, graph, backend, nil
}
