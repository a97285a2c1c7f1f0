// Package rake implements a RAKE-style (Rapid Automatic Keyword
// Extraction) keyword-phrase scorer. No groundable third-party RAKE
// library exists in the retrieval pack or the broader ecosystem
// (see DESIGN.md); this is a small, self-contained implementation of
// the documented algorithm, treated by callers as the black-box
// extractor spec.md describes.
package rake

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/go-mizu/blueprints/docfind/internal/stopwords"
)

// Phrase is one candidate keyword phrase with its co-occurrence score.
type Phrase struct {
	Text  string
	Score float64
}

var splitWord = regexp.MustCompile(`[\p{L}\p{N}][\p{L}\p{N}'-]*`)

// Run extracts candidate phrases from body, delimited by stop words and
// punctuation, and scores each by summed word degree/frequency, as
// in the classic RAKE paper. Phrases are returned in descending score
// order; ties keep the order phrases were first encountered in body.
func Run(body string, stop stopwords.Set) []Phrase {
	phrases := candidatePhrases(body, stop)
	if len(phrases) == 0 {
		return nil
	}

	freq := make(map[string]int)
	degree := make(map[string]int)
	order := make([]string, 0, len(phrases))
	seenWord := make(map[string]bool)

	for _, words := range phrases {
		wlen := len(words) - 1
		for _, w := range words {
			freq[w]++
			degree[w] += wlen
			if !seenWord[w] {
				seenWord[w] = true
				order = append(order, w)
			}
		}
	}

	scores := make(map[string]float64, len(order))
	for _, w := range order {
		scores[w] = float64(degree[w]+freq[w]) / float64(freq[w])
	}

	seenPhrase := make(map[string]bool)
	out := make([]Phrase, 0, len(phrases))
	for _, words := range phrases {
		text := strings.Join(words, " ")
		if seenPhrase[text] {
			continue
		}
		seenPhrase[text] = true

		var sum float64
		for _, w := range words {
			sum += scores[w]
		}
		out = append(out, Phrase{Text: text, Score: sum})
	}

	stableSortDesc(out)
	return out
}

// candidatePhrases splits body on stop words and non-word punctuation,
// returning the maximal runs of content words between delimiters.
func candidatePhrases(body string, stop stopwords.Set) [][]string {
	var phrases [][]string
	var current []string

	flush := func() {
		if len(current) > 0 {
			phrases = append(phrases, current)
			current = nil
		}
	}

	prevEnd := 0
	for _, loc := range splitWord.FindAllStringIndex(body, -1) {
		if strings.TrimSpace(body[prevEnd:loc[0]]) != "" {
			flush()
		}
		prevEnd = loc[1]
		lw := strings.ToLower(body[loc[0]:loc[1]])
		if stop.Contains(lw) || isNumberOnly(lw) {
			flush()
			continue
		}
		current = append(current, lw)
	}
	flush()
	return phrases
}

func isNumberOnly(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}

// stableSortDesc sorts by Score descending, preserving relative order
// of equal-score phrases (insertion sort: corpora here are small).
func stableSortDesc(p []Phrase) {
	for i := 1; i < len(p); i++ {
		j := i
		for j > 0 && p[j-1].Score < p[j].Score {
			p[j-1], p[j] = p[j], p[j-1]
			j--
		}
	}
}
