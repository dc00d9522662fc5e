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
	"context"
	"log/slog"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/synaptiq/braid/core"
	"github.com/synaptiq/braid/storage"
)

// RelationshipIndex implements storage.RelationshipIndex over BadgerDB.
// Nodes are keyed by IDFromContent of the entity name and edges by
// IDFromContent of the triple key, so merges are plain idempotent Sets.
type RelationshipIndex struct {
	backend *Backend
	logger  *slog.Logger
}

var _ storage.RelationshipIndex = (*RelationshipIndex)(nil)

// NewRelationshipIndex creates a relationship index on the backend.
func NewRelationshipIndex(backend *Backend) (*RelationshipIndex, error) {
	return &RelationshipIndex{
		backend: backend,
		logger:  slog.Default().With("component", "relationship-index"),
	}, nil
}

// Close releases resources. RelationshipIndex has no resources of its
// own; the shared backend is closed by its owner.
func (r *RelationshipIndex) Close() error {
	return nil
}

// MergeNode creates the named entity node if it does not exist.
func (r *RelationshipIndex) MergeNode(ctx context.Context, name string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := mergeNode(tx, name); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// MergeEdge merges both endpoint nodes and the directed edge in one
// transaction.
func (r *RelationshipIndex) MergeEdge(ctx context.Context, triple core.Triple) error {
	if triple.Subject == "" || triple.Predicate == "" || triple.Object == "" {
		return core.ErrInvalidTriple
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := mergeNode(tx, triple.Subject); err != nil {
			return err
		}
		if err := mergeNode(tx, triple.Object); err != nil {
			return err
		}

		key := makeEdgeKey(core.IDFromContent(triple.Key()))
		if err := tx.Set(key, storage.MarshalTriple(triple)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// Match scans all edges and returns triples whose subject or object
// contains any keyword, case-insensitively.
func (r *RelationshipIndex) Match(ctx context.Context, keywords []string) ([]core.Triple, error) {
	lowered := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		keyword = strings.ToLower(strings.TrimSpace(keyword))
		if keyword != "" {
			lowered = append(lowered, keyword)
		}
	}
	if len(lowered) == 0 {
		return nil, nil
	}

	var matches []core.Triple
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(graphEdgePrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var triple core.Triple
			err := iter.Item().Value(func(val []byte) error {
				var err error
				triple, err = storage.UnmarshalTriple(val)
				return err
			})
			if err != nil {
				return err
			}

			subject := strings.ToLower(triple.Subject)
			object := strings.ToLower(triple.Object)
			for _, keyword := range lowered {
				if strings.Contains(subject, keyword) || strings.Contains(object, keyword) {
					matches = append(matches, triple)
					break
				}
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("graph match", "keywords", len(lowered), "matches", len(matches))
	return matches, nil
}

// Counts returns the number of nodes and edges in the graph.
func (r *RelationshipIndex) Counts(ctx context.Context) (nodes, edges int, err error) {
	err = r.backend.WithTx(func(tx *badger.Txn) error {
		nodes = countPrefix(tx, graphNodePrefix+":")
		edges = countPrefix(tx, graphEdgePrefix+":")
		return nil
	}, false)
	return nodes, edges, err
}

// mergeNode writes the node record inside an open transaction. The
// content-derived key makes repeated merges overwrite in place.
func mergeNode(tx *badger.Txn, name string) error {
	key := makeNodeKey(core.IDFromContent(name))
	return tx.Set(key, []byte(name))
}

func countPrefix(tx *badger.Txn, prefix string) int {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = []byte(prefix)
	opts.PrefetchValues = false
	iter := tx.NewIterator(opts)
	defer iter.Close()

	count := 0
	for iter.Rewind(); iter.Valid(); iter.Next() {
		count++
	}
	return count
}
