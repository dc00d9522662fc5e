package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/synaptiq/braid/core"
)

func TestMarshalUnmarshalID(t *testing.T) {
	tests := []struct {
		name string
		id   core.ID
	}{
		{"zero ID", core.ID(0)},
		{"small ID", core.ID(42)},
		{"large ID", core.ID(18446744073709551615)}, // max uint64
		{"content-based ID", core.IDFromContent("FastAPI")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalID(tt.id)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalID(data)
			require.NoError(t, err)
			assert.Equal(t, tt.id, decoded)
		})
	}
}

func TestMarshalUnmarshalChunk(t *testing.T) {
	t.Run("with vector", func(t *testing.T) {
		chunk := core.NewChunk("FastAPI is a modern web framework.", "fastapi.txt", 3)
		chunk.Vector = []float32{0.1, -0.5, 0.9}

		data := MarshalChunk(chunk)
		require.NotEmpty(t, data)

		decoded, err := UnmarshalChunk(data)
		require.NoError(t, err)
		assert.Equal(t, chunk, decoded)
	})

	t.Run("without vector", func(t *testing.T) {
		chunk := core.NewChunk("Not yet embedded.", "doc.txt", 0)

		decoded, err := UnmarshalChunk(MarshalChunk(chunk))
		require.NoError(t, err)
		assert.Equal(t, chunk, decoded)
		assert.Nil(t, decoded.Vector)
	})

	t.Run("truncated data", func(t *testing.T) {
		chunk := core.NewChunk("Some chunk content here.", "doc.txt", 0)
		data := MarshalChunk(chunk)

		_, err := UnmarshalChunk(data[:len(data)/2])
		assert.Error(t, err)
	})
}

func TestMarshalUnmarshalTriple(t *testing.T) {
	triple := core.Triple{Subject: "FastAPI", Predicate: "HAS_COMPONENT", Object: "routers"}

	decoded, err := UnmarshalTriple(MarshalTriple(triple))
	require.NoError(t, err)
	assert.Equal(t, triple, decoded)
}
