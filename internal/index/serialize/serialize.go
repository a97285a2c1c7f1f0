// Package serialize implements IndexSerializer (C4): a deterministic,
// self-describing binary encoding of an Index, using CBOR as the Go
// analogue of the original's Postcard format — both are compact,
// schema-less binary codecs well suited to a single round-trip
// artifact with no forward-compatibility requirement.
package serialize

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/go-mizu/blueprints/docfind/internal/column"
	"github.com/go-mizu/blueprints/docfind/internal/index"
)

// wireIndex is the on-disk shape of an Index: column.Store keeps its
// fields unexported, so encoding goes through
// this flat, fully-exported mirror instead of reflecting over them
// directly. The FST already carries every keyword as a key, with its
// stored value pointing at the matching slot in PostingLists, so no
// separate keyword list needs to be persisted.
type wireIndex struct {
	FST           []byte
	DictSymbols   [][]byte
	ColumnCodes   []byte
	ColumnOffsets []uint32
	PostingLists  [][]index.PostingEntry
}

var encMode = func() cbor.EncMode {
	m, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic("serialize: invalid canonical cbor options: " + err.Error())
	}
	return m
}()

// Encode serializes idx into a canonical CBOR byte string.
func Encode(idx *index.Index) ([]byte, error) {
	w := wireIndex{
		FST:           idx.FST,
		DictSymbols:   idx.Column.Dictionary().Symbols,
		ColumnCodes:   idx.Column.Codes(),
		ColumnOffsets: idx.Column.Offsets(),
		PostingLists:  make([][]index.PostingEntry, len(idx.Postings)),
	}
	for i, pl := range idx.Postings {
		w.PostingLists[i] = []index.PostingEntry(pl)
	}
	return encMode.Marshal(w)
}

// Decode reconstructs an Index from bytes produced by Encode.
func Decode(data []byte) (*index.Index, error) {
	var w wireIndex
	if err := cbor.Unmarshal(data, &w); err != nil {
		return nil, err
	}

	store := column.Open(column.Dictionary{Symbols: w.DictSymbols}, w.ColumnCodes, w.ColumnOffsets)

	postings := make([]index.PostingList, len(w.PostingLists))
	for i, pl := range w.PostingLists {
		postings[i] = index.PostingList(pl)
	}

	return &index.Index{
		FST:      w.FST,
		Column:   store,
		Postings: postings,
	}, nil
}
