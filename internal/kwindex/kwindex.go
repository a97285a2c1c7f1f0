// Package kwindex wraps github.com/blevesearch/vellum to provide the
// keyword -> postings-offset map at the heart of IndexBuilder (C3) and
// QueryEngine (C5): a finite-state transducer keyed by normalized
// keyword bytes, with exact, prefix, and fuzzy (edit-distance <= 1)
// lookup.
package kwindex

import (
	"bytes"

	"github.com/blevesearch/vellum"
	"github.com/blevesearch/vellum/levenshtein"
)

// Build constructs an FST from sorted, deduplicated (keyword, value)
// pairs. keys must already be sorted lexicographically by byte value
// and unique — vellum's builder requires insertion in strictly
// increasing key order.
func Build(keys [][]byte, vals []uint64) ([]byte, error) {
	var buf bytes.Buffer
	builder, err := vellum.New(&buf, nil)
	if err != nil {
		return nil, err
	}
	for i, k := range keys {
		if err := builder.Insert(k, vals[i]); err != nil {
			return nil, err
		}
	}
	if err := builder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FST is an opened, queryable keyword transducer.
type FST struct {
	fst *vellum.FST
}

// Open loads a previously built FST from its serialized bytes.
func Open(data []byte) (*FST, error) {
	f, err := vellum.Load(data)
	if err != nil {
		return nil, err
	}
	return &FST{fst: f}, nil
}

// Hit is one matched keyword and the value stored for it.
type Hit struct {
	Keyword string
	Value   uint64
}

// Exact looks up a single keyword, returning ok=false on a miss.
func (f *FST) Exact(keyword string) (uint64, bool) {
	v, exists, err := f.fst.Get([]byte(keyword))
	if err != nil || !exists {
		return 0, false
	}
	return v, true
}

// Prefix returns every keyword in the FST that starts with prefix, in
// lexicographic order. Implemented via vellum's bounded range
// iterator rather than a dedicated prefix automaton: [prefix,
// incremented(prefix)) covers exactly the keys sharing that prefix,
// since the FST's key space is sorted by byte value.
func (f *FST) Prefix(prefix string) []Hit {
	if prefix == "" {
		return nil
	}
	start := []byte(prefix)
	end := incrementBytes(start)

	it, err := f.fst.Iterator(start, end)
	var hits []Hit
	for err == nil {
		k, v := it.Current()
		hits = append(hits, Hit{Keyword: string(k), Value: v})
		err = it.Next()
	}
	return hits
}

// Fuzzy returns every keyword within Levenshtein edit distance 1 of
// query, using vellum's compiled Levenshtein automaton.
func (f *FST) Fuzzy(query string) ([]Hit, error) {
	lev, err := levenshtein.New(query, 1)
	if err != nil {
		return nil, err
	}
	it, err := f.fst.Search(lev, nil, nil)
	var hits []Hit
	for err == nil {
		k, v := it.Current()
		hits = append(hits, Hit{Keyword: string(k), Value: v})
		err = it.Next()
	}
	if err != nil && err != vellum.ErrIteratorDone {
		return hits, err
	}
	return hits, nil
}

// incrementBytes returns the lexicographically smallest byte string
// strictly greater than every string with prefix b, or nil if b is
// all 0xFF (no finite upper bound needed; callers treat nil end as
// unbounded).
func incrementBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	for i := len(out) - 1; i >= 0; i-- {
		if out[i] < 0xFF {
			out[i]++
			return out[:i+1]
		}
	}
	return nil
}
