package rake

import (
	"strings"
	"testing"

	"github.com/go-mizu/blueprints/docfind/internal/stopwords"
)

func testStop() stopwords.Set {
	set, _ := stopwords.Load(strings.NewReader("a\nan\nthe\nis\nof\nand\nfor\n"))
	return set
}

func TestRunBasic(t *testing.T) {
	body := "Linear diophantine equations are a classic problem in number theory and algebra."
	phrases := Run(body, testStop())
	if len(phrases) == 0 {
		t.Fatal("expected at least one candidate phrase")
	}
	for i := 1; i < len(phrases); i++ {
		if phrases[i].Score > phrases[i-1].Score {
			t.Fatalf("phrases not sorted descending at %d: %+v", i, phrases)
		}
	}
}

func TestRunEmpty(t *testing.T) {
	if got := Run("", testStop()); got != nil {
		t.Fatalf("Run(\"\") = %v, want nil", got)
	}
	if got := Run("the a of is", testStop()); len(got) != 0 {
		t.Fatalf("all-stopword body should yield no phrases, got %v", got)
	}
}
