// Package keyword implements KeywordExtractor (C2): per-document
// keyword extraction under a fixed budget, combining explicit tags,
// title tokens, and RAKE-style body phrases.
package keyword

import (
	"github.com/go-mizu/blueprints/docfind/internal/normalize"
	"github.com/go-mizu/blueprints/docfind/internal/rake"
	"github.com/go-mizu/blueprints/docfind/internal/stopwords"
	"github.com/go-mizu/blueprints/docfind/types"
)

// Score constants per the explicit > title > body relevance ladder.
const (
	ScoreExplicit = 100.0
	ScoreTitle    = 90.0

	singleWordBudget = 5
	doubleWordBudget = 3
)

// Pair is a normalized keyword and its raw (pre-saturation) score.
type Pair struct {
	Keyword string
	Score   float64
}

// Extract produces the ordered (keyword, score) sequence for doc, per
// spec.md §4.2: explicit keywords first, then title tokens, then
// budget-limited RAKE body phrases. Each keyword is emitted at most
// once — first write wins.
func Extract(doc types.Document, stop stopwords.Set) []Pair {
	seen := make(map[string]struct{})
	var out []Pair

	emit := func(k string, score float64) bool {
		if k == "" || stop.Contains(k) {
			return false
		}
		if _, ok := seen[k]; ok {
			return false
		}
		seen[k] = struct{}{}
		out = append(out, Pair{Keyword: k, Score: score})
		return true
	}

	for _, raw := range doc.Keywords {
		emit(normalize.Keyword(raw), ScoreExplicit)
	}

	for _, tk := range uniqueFields(doc.Title) {
		emit(tk, ScoreTitle)
	}

	single, double := singleWordBudget, doubleWordBudget
	for _, phrase := range rake.Run(doc.Body, stop) {
		if single == 0 && double == 0 {
			break
		}
		kw := normalize.Keyword(phrase.Text)
		if kw == "" {
			continue
		}
		if _, ok := seen[kw]; ok {
			continue
		}

		w := countSpaces(phrase.Text)
		switch {
		case w == 0 && single > 0:
			single--
		case w == 1 && double > 0:
			double--
		default:
			continue
		}
		emit(kw, phrase.Score)
	}

	return out
}

// uniqueFields normalizes doc.Title's whitespace-separated words and
// returns each distinct normalized form exactly once, in the order of
// its first occurrence in the title, so builds are deterministic.
func uniqueFields(title string) []string {
	fields := normalize.Fields(title)
	set := make(map[string]struct{}, len(fields))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, ok := set[f]; ok {
			continue
		}
		set[f] = struct{}{}
		out = append(out, f)
	}
	return out
}

// countSpaces counts ASCII space characters in the raw (pre-normalize)
// phrase text, as spec.md §4.2 defines w.
func countSpaces(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' {
			n++
		}
	}
	return n
}
