package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTriple(t *testing.T) {
	tests := []struct {
		name      string
		subject   string
		predicate string
		object    string
		want      Triple
		wantErr   error
	}{
		{
			name:      "already normalized",
			subject:   "FastAPI",
			predicate: "HAS",
			object:    "routers",
			want:      Triple{Subject: "FastAPI", Predicate: "HAS", Object: "routers"},
		},
		{
			name:      "trims and strips quotes",
			subject:   ` "FastAPI" `,
			predicate: "has",
			object:    " 'routers' ",
			want:      Triple{Subject: "FastAPI", Predicate: "HAS", Object: "routers"},
		},
		{
			name:      "predicate spaces become underscores",
			subject:   "FastAPI",
			predicate: "has component",
			object:    "routers",
			want:      Triple{Subject: "FastAPI", Predicate: "HAS_COMPONENT", Object: "routers"},
		},
		{
			name:      "empty subject after normalization",
			subject:   ` "" `,
			predicate: "HAS",
			object:    "routers",
			wantErr:   ErrEmptySubject,
		},
		{
			name:      "empty predicate",
			subject:   "FastAPI",
			predicate: "  ",
			object:    "routers",
			wantErr:   ErrEmptyPredicate,
		},
		{
			name:      "empty object",
			subject:   "FastAPI",
			predicate: "HAS",
			object:    "''",
			wantErr:   ErrEmptyObject,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeTriple(tt.subject, tt.predicate, tt.object)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, ErrInvalidTriple)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateChunk(t *testing.T) {
	t.Run("valid chunk", func(t *testing.T) {
		assert.NoError(t, ValidateChunk(NewChunk("some text", "a.txt", 0)))
	})

	t.Run("nil chunk", func(t *testing.T) {
		err := ValidateChunk(nil)
		assert.ErrorIs(t, err, ErrInvalidChunk)
	})

	t.Run("empty text", func(t *testing.T) {
		err := ValidateChunk(&Chunk{Source: "a.txt"})
		assert.ErrorIs(t, err, ErrEmptyChunkText)
	})

	t.Run("negative sequence", func(t *testing.T) {
		err := ValidateChunk(&Chunk{Text: "x", Sequence: -1})
		assert.ErrorIs(t, err, ErrInvalidChunk)
	})
}
