// Package stopwords loads and holds the stop-word set consumed by
// KeywordExtractor and the RAKE phrase extractor.
package stopwords

import (
	"bufio"
	"embed"
	"io"
	"strings"
)

//go:embed english.txt
var defaultFS embed.FS

// Set is a lower-cased stop-word membership set.
type Set map[string]struct{}

// Contains reports whether w (assumed already normalized/lower-cased)
// is a stop word.
func (s Set) Contains(w string) bool {
	_, ok := s[w]
	return ok
}

// Load reads one token per line, skipping blank lines and '#' comments,
// lower-casing every token.
func Load(r io.Reader) (Set, error) {
	set := make(Set)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		set[strings.ToLower(line)] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return set, nil
}

// Default returns the bundled English stop-word list.
func Default() Set {
	f, err := defaultFS.Open("english.txt")
	if err != nil {
		// The asset is embedded at build time; this can't happen
		// outside of a broken build.
		panic("stopwords: embedded default list missing: " + err.Error())
	}
	defer f.Close()
	set, err := Load(f)
	if err != nil {
		panic("stopwords: embedded default list malformed: " + err.Error())
	}
	return set
}
