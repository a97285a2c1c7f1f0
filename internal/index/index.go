// Package index implements IndexBuilder (C3): it fuses keyword
// extraction, the FST keyword map, and the column store into one
// queryable Index, mirroring the original build_index pipeline.
package index

import (
	"sort"

	"github.com/go-mizu/blueprints/docfind/internal/column"
	"github.com/go-mizu/blueprints/docfind/internal/keyword"
	"github.com/go-mizu/blueprints/docfind/internal/kwindex"
	"github.com/go-mizu/blueprints/docfind/internal/stopwords"
	"github.com/go-mizu/blueprints/docfind/types"
)

// PostingEntry is one (document, score) pair within a keyword's
// posting list.
type PostingEntry struct {
	DocIndex uint32
	Score    uint8
}

// Index is the fully built, queryable search structure: an FST
// mapping each keyword to a position in Postings, a column store
// holding every document's four fields in doc_index*4+field order,
// and the posting lists themselves.
type Index struct {
	FST      []byte
	Column   *column.Store
	Postings []PostingList
}

// PostingList is the sorted (score desc, doc index asc) set of
// documents carrying one keyword.
type PostingList []PostingEntry

// Build extracts keywords from every document, assembles the keyword
// FST and posting lists, and trains the column store over the
// flattened title/category/href/body quadruples — in that field
// order, so field f of document d lives at column index d*4+f.
func Build(docs []types.Document, stop stopwords.Set) (*Index, error) {
	strings := make([]string, 0, len(docs)*4)
	postingsByKeyword := make(map[string][]PostingEntry)

	for docIdx, doc := range docs {
		strings = append(strings, doc.Title, doc.Category, doc.Href, doc.Body)

		for _, pair := range keyword.Extract(doc, stop) {
			postingsByKeyword[pair.Keyword] = append(postingsByKeyword[pair.Keyword], PostingEntry{
				DocIndex: uint32(docIdx),
				Score:    saturateUint8(pair.Score),
			})
		}
	}

	keys := make([]string, 0, len(postingsByKeyword))
	for k := range postingsByKeyword {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fstKeys := make([][]byte, len(keys))
	fstVals := make([]uint64, len(keys))
	postings := make([]PostingList, len(keys))

	for i, k := range keys {
		fstKeys[i] = []byte(k)
		fstVals[i] = uint64(i)

		entries := postingsByKeyword[k]
		sort.SliceStable(entries, func(a, b int) bool {
			return entries[a].Score > entries[b].Score
		})
		postings[i] = PostingList(entries)
	}

	fstBytes, err := kwindex.Build(fstKeys, fstVals)
	if err != nil {
		return nil, err
	}

	store, err := column.TrainAndBuild(strings)
	if err != nil {
		return nil, err
	}

	return &Index{
		FST:      fstBytes,
		Column:   store,
		Postings: postings,
	}, nil
}

// saturateUint8 truncates a raw float score to uint8, clamping to the
// representable range rather than wrapping, matching the original's
// `as u8` cast semantics: negative scores become 0, scores above 255
// become 255, and fractional values truncate toward zero.
func saturateUint8(score float64) uint8 {
	if score < 0 {
		return 0
	}
	if score > 255 {
		return 255
	}
	return uint8(score)
}
