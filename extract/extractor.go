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


package extract

import (
	"context"

	"github.com/synaptiq/braid/core"
)

// Extractor extracts relationship triples from chunk text.
type Extractor interface {
	// Extract returns the triples found in the text. Order is not
	// significant and duplicates are permitted; the relationship index
	// deduplicates on merge. An empty result is not an error.
	Extract(ctx context.Context, text string) ([]core.Triple, error)
}
