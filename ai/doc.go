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


// Package ai provides abstractions for the AI collaborators braid depends on.
//
// The package defines interfaces for the two external model services the
// engine consumes: text embedding (for semantic retrieval) and text
// generation (for answer composition, generative extraction, and generative
// routing). The core pipeline and query logic depend only on these
// abstractions, never on a concrete client.
//
// # Interfaces
//
//   - Embedder: generates vector embeddings from text
//   - Generator: produces text from a prompt
//   - Provider: aggregates both services for convenient initialization
//
// # Implementation Packages
//
//   - ai/openai: production implementation using OpenAI-compatible APIs
//     (OpenAI, Ollama, LocalAI, vLLM) via langchaingo
//   - ai/mock: deterministic test doubles
//
// Public constructors in implementation packages return interface types to
// enforce abstraction; mock constructors return concrete types so tests can
// inject behavior and assert call counts.
//
// The generator is optional everywhere it is consumed: a missing or failing
// generator degrades to deterministic fallback behavior, it never fails a
// query or an ingestion run.
package ai
