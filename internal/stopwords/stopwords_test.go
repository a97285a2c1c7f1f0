package stopwords

import (
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	src := "# comment\n\nThe\nAND\n  \nOr\n"
	set, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	for _, w := range []string{"the", "and", "or"} {
		if !set.Contains(w) {
			t.Errorf("expected %q in set", w)
		}
	}
	if set.Contains("comment") {
		t.Errorf("comment line should not be a stop word")
	}
}

func TestDefault(t *testing.T) {
	set := Default()
	if !set.Contains("the") || !set.Contains("and") {
		t.Fatalf("default set missing common stop words")
	}
}
