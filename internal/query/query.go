// Package query implements QueryEngine (C5): turning a free-text
// query into a ranked slice of documents reconstructed from an Index.
package query

import (
	"sort"
	"strings"

	"github.com/go-mizu/blueprints/docfind/internal/errs"
	"github.com/go-mizu/blueprints/docfind/internal/index"
	"github.com/go-mizu/blueprints/docfind/internal/kwindex"
	"github.com/go-mizu/blueprints/docfind/internal/normalize"
	"github.com/go-mizu/blueprints/docfind/types"
)

// keywordHit pairs a matched FST keyword with the posting-list index
// it points at, mirroring the original's (keyword, fst value) pairs
// ahead of the length sort.
type keywordHit struct {
	keyword string
	postIdx uint64
}

// Search ranks documents in idx against query, per spec.md §4.5: each
// normalized query word (plus the whole query string, lower-cased and
// trimmed of surrounding whitespace) is
// matched fuzzily (edit distance <= 1) and by prefix against the
// keyword FST; every match's posting list is merged with saturating
// addition into a per-document score, shorter keywords processed
// first so the exact/short matches a fuzzy match of a longer word
// could clobber are folded in first; and the top maxResults documents
// by (score desc, doc index asc) are reconstructed from the column
// store.
func Search(idx *index.Index, queryText string, maxResults int) ([]types.Document, error) {
	fst, err := kwindex.Open(idx.FST)
	if err != nil {
		return nil, errs.Wrap(errs.CorruptIndex, "failed to open keyword index", err)
	}

	words := normalize.Fields(queryText)
	queryWords := make(map[string]struct{}, len(words)+1)
	for _, w := range words {
		queryWords[w] = struct{}{}
	}
	full := strings.ToLower(strings.TrimSpace(queryText))
	if full != "" {
		queryWords[full] = struct{}{}
	}
	if len(queryWords) == 0 {
		return nil, nil
	}

	var hits []keywordHit
	for w := range queryWords {
		fuzzy, err := fst.Fuzzy(w)
		if err != nil {
			return nil, errs.Wrap(errs.CorruptIndex, "fuzzy keyword search failed", err)
		}
		for _, h := range fuzzy {
			hits = append(hits, keywordHit{keyword: h.Keyword, postIdx: h.Value})
		}
		for _, h := range fst.Prefix(w) {
			hits = append(hits, keywordHit{keyword: h.Keyword, postIdx: h.Value})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return len(hits[i].keyword) < len(hits[j].keyword)
	})

	scores := make(map[uint32]uint8)
	order := make([]uint32, 0)
	for _, h := range hits {
		if int(h.postIdx) >= len(idx.Postings) {
			return nil, errs.New(errs.CorruptIndex, "fst value out of range of posting lists")
		}
		for _, entry := range idx.Postings[h.postIdx] {
			if _, ok := scores[entry.DocIndex]; !ok {
				order = append(order, entry.DocIndex)
			}
			scores[entry.DocIndex] = saturatingAdd(scores[entry.DocIndex], entry.Score)
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if scores[a] != scores[b] {
			return scores[a] > scores[b]
		}
		return a < b
	})

	if maxResults >= 0 && len(order) > maxResults {
		order = order[:maxResults]
	}

	docs := make([]types.Document, 0, len(order))
	for _, docIdx := range order {
		doc, err := reconstruct(idx, docIdx)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// reconstruct reads back the title/category/href/body quadruple for
// docIdx from the column store, per the d*4+field layout Build wrote.
func reconstruct(idx *index.Index, docIdx uint32) (types.Document, error) {
	base := int(docIdx) * 4
	title, ok := idx.Column.Get(base + 0)
	if !ok {
		return types.Document{}, errs.New(errs.CorruptIndex, "missing title for document")
	}
	category, ok := idx.Column.Get(base + 1)
	if !ok {
		return types.Document{}, errs.New(errs.CorruptIndex, "missing category for document")
	}
	href, ok := idx.Column.Get(base + 2)
	if !ok {
		return types.Document{}, errs.New(errs.CorruptIndex, "missing href for document")
	}
	body, ok := idx.Column.Get(base + 3)
	if !ok {
		return types.Document{}, errs.New(errs.CorruptIndex, "missing body for document")
	}
	return types.Document{Title: title, Category: category, Href: href, Body: body}, nil
}

// saturatingAdd adds b to a, clamping at 255 instead of wrapping.
func saturatingAdd(a, b uint8) uint8 {
	sum := int(a) + int(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}
