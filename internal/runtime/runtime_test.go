package runtime

import (
	"context"
	"strings"
	"testing"

	"github.com/go-mizu/blueprints/docfind/internal/index"
	"github.com/go-mizu/blueprints/docfind/internal/index/serialize"
	"github.com/go-mizu/blueprints/docfind/internal/stopwords"
	"github.com/go-mizu/blueprints/docfind/internal/wasmasm"
	"github.com/go-mizu/blueprints/docfind/internal/wasmasm/sentinel"
	"github.com/go-mizu/blueprints/docfind/types"
)

func buildModule(t *testing.T) []byte {
	t.Helper()
	stop, _ := stopwords.Load(strings.NewReader("a\nan\nthe\nis\nof\nand\nfor\n"))
	docs := []types.Document{
		{Title: "Python Tutorial", Category: "guides", Href: "/python", Body: "Learn Python programming basics."},
	}
	idx, err := index.Build(docs, stop)
	if err != nil {
		t.Fatalf("index.Build: %v", err)
	}
	raw, err := serialize.Encode(idx)
	if err != nil {
		t.Fatalf("serialize.Encode: %v", err)
	}
	prebuilt := sentinel.Build(1)
	wasmBytes, err := wasmasm.Assemble(prebuilt, raw)
	if err != nil {
		t.Fatalf("wasmasm.Assemble: %v", err)
	}
	return wasmBytes
}

func TestLoaderDecodesIndexFromModule(t *testing.T) {
	wasmBytes := buildModule(t)

	var l Loader
	idx, err := l.Load(context.Background(), wasmBytes)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	href, ok := idx.Column.Get(2)
	if !ok || href != "/python" {
		t.Fatalf("decoded index href = %q, %v, want /python, true", href, ok)
	}
}

func TestLoaderCachesAfterFirstCall(t *testing.T) {
	wasmBytes := buildModule(t)

	var l Loader
	first, err := l.Load(context.Background(), wasmBytes)
	if err != nil {
		t.Fatalf("first Load: %v", err)
	}
	second, err := l.Load(context.Background(), []byte("ignored on second call"))
	if err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if first != second {
		t.Error("Loader should return the same cached Index on subsequent calls")
	}
}
