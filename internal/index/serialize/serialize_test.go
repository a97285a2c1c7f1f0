package serialize

import (
	"strings"
	"testing"

	"github.com/go-mizu/blueprints/docfind/internal/index"
	"github.com/go-mizu/blueprints/docfind/internal/stopwords"
	"github.com/go-mizu/blueprints/docfind/types"
)

func testIndex(t *testing.T) *index.Index {
	t.Helper()
	stop, _ := stopwords.Load(strings.NewReader("a\nan\nthe\nis\nof\nand\nfor\n"))
	docs := []types.Document{
		{Title: "Python Tutorial", Category: "guides", Href: "/python", Body: "Learn Python basics."},
		{Title: "Go Concurrency", Category: "guides", Href: "/go", Body: "Goroutines and channels."},
	}
	idx, err := index.Build(docs, stop)
	if err != nil {
		t.Fatalf("index.Build: %v", err)
	}
	return idx
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	idx := testIndex(t)

	data, err := Encode(idx)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if got.Column.Len() != idx.Column.Len() {
		t.Fatalf("Column.Len() = %d, want %d", got.Column.Len(), idx.Column.Len())
	}
	for i := 0; i < idx.Column.Len(); i++ {
		want, _ := idx.Column.Get(i)
		have, _ := got.Column.Get(i)
		if want != have {
			t.Errorf("Column.Get(%d) = %q, want %q", i, have, want)
		}
	}

	if len(got.Postings) != len(idx.Postings) {
		t.Fatalf("len(Postings) = %d, want %d", len(got.Postings), len(idx.Postings))
	}
	for i := range idx.Postings {
		if len(got.Postings[i]) != len(idx.Postings[i]) {
			t.Errorf("Postings[%d] length mismatch: got %d want %d", i, len(got.Postings[i]), len(idx.Postings[i]))
			continue
		}
		for j := range idx.Postings[i] {
			if got.Postings[i][j] != idx.Postings[i][j] {
				t.Errorf("Postings[%d][%d] = %+v, want %+v", i, j, got.Postings[i][j], idx.Postings[i][j])
			}
		}
	}

	if len(got.FST) != len(idx.FST) {
		t.Errorf("FST length mismatch: got %d want %d", len(got.FST), len(idx.FST))
	}
}

func TestEncodeIsDeterministic(t *testing.T) {
	idx := testIndex(t)
	a, err := Encode(idx)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	b, err := Encode(idx)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if string(a) != string(b) {
		t.Error("Encode output is not deterministic across calls on the same Index")
	}
}
