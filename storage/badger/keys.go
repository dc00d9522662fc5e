package badger

import (
	"encoding/binary"
	"fmt"

	"github.com/synaptiq/braid/core"
)

// Key prefixes for different data types
const (
	chunkRecordPrefix = "chkrec"
	chunkRecordSeq    = "chkrecseq"
	graphNodePrefix   = "gnode"
	graphEdgePrefix   = "gedge"
)

// makeChunkKey generates a key for a chunk record from its storage
// sequence number. BigEndian keeps iteration in insertion order.
func makeChunkKey(seq uint64) []byte {
	prefix := chunkRecordPrefix + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], seq)
	return buf
}

// makeNodeKey generates a key for an entity node. The ID is derived
// from the entity name, which is what makes node merges idempotent.
func makeNodeKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", graphNodePrefix, id))
}

// makeEdgeKey generates a key for a directed edge. The ID is derived
// from the full (subject, predicate, object) key string.
func makeEdgeKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", graphEdgePrefix, id))
}
