package kwindex

import "testing"

func buildTestFST(t *testing.T) *FST {
	t.Helper()
	keys := [][]byte{
		[]byte("code"),
		[]byte("coder"),
		[]byte("python"),
		[]byte("pythonic"),
		[]byte("zebra"),
	}
	vals := []uint64{1, 2, 3, 4, 5}
	data, err := Build(keys, vals)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	f, err := Open(data)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return f
}

func TestExact(t *testing.T) {
	f := buildTestFST(t)
	v, ok := f.Exact("python")
	if !ok || v != 3 {
		t.Fatalf("Exact(python) = %d, %v, want 3, true", v, ok)
	}
	if _, ok := f.Exact("missing"); ok {
		t.Fatal("Exact(missing) should miss")
	}
}

func TestPrefix(t *testing.T) {
	f := buildTestFST(t)
	hits := f.Prefix("code")
	if len(hits) != 2 {
		t.Fatalf("Prefix(code) returned %d hits, want 2: %+v", len(hits), hits)
	}
	seen := map[string]bool{}
	for _, h := range hits {
		seen[h.Keyword] = true
	}
	if !seen["code"] || !seen["coder"] {
		t.Errorf("Prefix(code) missing expected keywords: %+v", hits)
	}
}

func TestFuzzyEditDistanceOne(t *testing.T) {
	f := buildTestFST(t)
	hits, err := f.Fuzzy("pythn")
	if err != nil {
		t.Fatalf("Fuzzy: %v", err)
	}
	found := false
	for _, h := range hits {
		if h.Keyword == "python" {
			found = true
		}
	}
	if !found {
		t.Errorf("Fuzzy(pythn) did not find python: %+v", hits)
	}
}

func TestIncrementBytes(t *testing.T) {
	got := incrementBytes([]byte("ab"))
	want := []byte("ac")
	if string(got) != string(want) {
		t.Errorf("incrementBytes(ab) = %q, want %q", got, want)
	}
	if got := incrementBytes([]byte{0xFF}); got != nil {
		t.Errorf("incrementBytes(0xFF) = %v, want nil", got)
	}
}
