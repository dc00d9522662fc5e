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


// Package storage defines the two retrieval indices over one ingested
// corpus and the serialization helpers their backends share.
//
//   - SemanticIndex: chunk text plus embedding vectors, queried by
//     similarity to an embedded question.
//   - RelationshipIndex: an entity graph of (subject, predicate,
//     object) triples with merge-by-name node semantics, queried by
//     keyword match against entity names.
//
// Both interfaces hide the backing engine; the badger subpackage is
// the embedded BadgerDB implementation. Implementations must be safe
// for concurrent use: ingestion writes chunks and triples from worker
// goroutines.
//
// The two indices are deliberately independent failure domains. A
// graph write that fails after chunks were already added leaves the
// semantic writes in place; callers surface that as a reported error,
// not a rollback.
package storage
