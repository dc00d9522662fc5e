package core

import (
	com "github.com/mus-format/common-go"
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

// Hand-written MUS serializers for the records persisted by the storage
// layer. Kept to the three types the indices actually store.
var (
	IDMUS     = idMUS{}
	ChunkMUS  = chunkMUS{}
	TripleMUS = tripleMUS{}
)

type idMUS struct{}

func (idMUS) Marshal(id ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (idMUS) Unmarshal(bs []byte) (id ID, n int, err error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idMUS) Size(id ID) (size int) {
	return varint.Uint64.Size(uint64(id))
}

func (idMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

type chunkMUS struct{}

func (s chunkMUS) Marshal(c Chunk, bs []byte) (n int) {
	n = IDMUS.Marshal(c.Id, bs)
	n += ord.String.Marshal(c.Text, bs[n:])
	n += ord.String.Marshal(c.Source, bs[n:])
	n += varint.Int.Marshal(c.Sequence, bs[n:])
	n += varint.Int.Marshal(len(c.Vector), bs[n:])
	for _, f := range c.Vector {
		n += raw.Float32.Marshal(f, bs[n:])
	}
	return n
}

func (s chunkMUS) Unmarshal(bs []byte) (c Chunk, n int, err error) {
	c.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	c.Text, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	c.Source, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	c.Sequence, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	var length int
	length, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	if length < 0 {
		err = com.ErrNegativeLength
		return
	}
	if length > 0 {
		c.Vector = make([]float32, length)
		for i := 0; i < length; i++ {
			c.Vector[i], n1, err = raw.Float32.Unmarshal(bs[n:])
			n += n1
			if err != nil {
				return
			}
		}
	}
	return
}

func (s chunkMUS) Size(c Chunk) (size int) {
	size = IDMUS.Size(c.Id)
	size += ord.String.Size(c.Text)
	size += ord.String.Size(c.Source)
	size += varint.Int.Size(c.Sequence)
	size += varint.Int.Size(len(c.Vector))
	for _, f := range c.Vector {
		size += raw.Float32.Size(f)
	}
	return size
}

func (s chunkMUS) Skip(bs []byte) (n int, err error) {
	_, n, err = s.Unmarshal(bs)
	return
}

type tripleMUS struct{}

func (s tripleMUS) Marshal(t Triple, bs []byte) (n int) {
	n = ord.String.Marshal(t.Subject, bs)
	n += ord.String.Marshal(t.Predicate, bs[n:])
	n += ord.String.Marshal(t.Object, bs[n:])
	return n
}

func (s tripleMUS) Unmarshal(bs []byte) (t Triple, n int, err error) {
	t.Subject, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	t.Predicate, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	t.Object, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (s tripleMUS) Size(t Triple) (size int) {
	size = ord.String.Size(t.Subject)
	size += ord.String.Size(t.Predicate)
	size += ord.String.Size(t.Object)
	return size
}

func (s tripleMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	return
}
