package keyword

import (
	"strings"
	"testing"

	"github.com/go-mizu/blueprints/docfind/internal/stopwords"
	"github.com/go-mizu/blueprints/docfind/types"
)

func testStop() stopwords.Set {
	set, _ := stopwords.Load(strings.NewReader("a\nan\nthe\nis\nof\nand\nfor\nin\n"))
	return set
}

func TestExtractExplicitWins(t *testing.T) {
	doc := types.Document{
		Title:    "Python Tutorial",
		Body:     "Learn programming with simple examples.",
		Href:     "/py",
		Keywords: []string{"Python!"},
	}
	pairs := Extract(doc, testStop())
	if len(pairs) == 0 || pairs[0].Keyword != "python" || pairs[0].Score != ScoreExplicit {
		t.Fatalf("expected explicit keyword python first with score 100, got %+v", pairs)
	}
}

func TestExtractDedupesAcrossStages(t *testing.T) {
	doc := types.Document{
		Title: "vs code",
		Body:  "vs code is a popular editor for debugging code.",
		Href:  "/a",
	}
	pairs := Extract(doc, testStop())
	count := 0
	for _, p := range pairs {
		if p.Keyword == "vs code" || p.Keyword == "vs" || p.Keyword == "code" {
			count++
		}
	}
	seen := make(map[string]int)
	for _, p := range pairs {
		seen[p.Keyword]++
	}
	for k, n := range seen {
		if n > 1 {
			t.Fatalf("keyword %q emitted %d times, want at most 1", k, n)
		}
	}
}

func TestExtractBodyBudgets(t *testing.T) {
	doc := types.Document{
		Title: "Untitled",
		Body: `alpha beta gamma delta epsilon zeta eta theta iota kappa
			lambda mu nu xi omicron pi rho sigma tau upsilon phi chi psi omega`,
		Href: "/b",
	}
	pairs := Extract(doc, testStop())
	single, double := 0, 0
	for _, p := range pairs {
		if p.Score == ScoreExplicit || p.Score == ScoreTitle {
			continue
		}
		if n := strings.Count(p.Keyword, " "); n == 0 {
			single++
		} else if n == 1 {
			double++
		}
	}
	if single > singleWordBudget {
		t.Errorf("single-word budget exceeded: %d > %d", single, singleWordBudget)
	}
	if double > doubleWordBudget {
		t.Errorf("double-word budget exceeded: %d > %d", double, doubleWordBudget)
	}
}
