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


package ingestion

import "errors"

var (
	// ErrSemanticIndexRequired indicates a nil semantic index was passed.
	ErrSemanticIndexRequired = errors.New("semantic index is required")

	// ErrRelationshipIndexRequired indicates a nil relationship index was passed.
	ErrRelationshipIndexRequired = errors.New("relationship index is required")

	// ErrChunkerRequired indicates a nil chunker was passed.
	ErrChunkerRequired = errors.New("chunker is required")

	// ErrExtractorRequired indicates a nil extractor was passed.
	ErrExtractorRequired = errors.New("extractor is required")
)
