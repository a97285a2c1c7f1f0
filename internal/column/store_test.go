package column

import "testing"

func TestTrainAndBuildRoundTrip(t *testing.T) {
	strs := []string{
		"the quick brown fox",
		"the quick brown dog",
		"the slow brown turtle",
		"",
		"a completely unrelated row about oceans",
	}
	store, err := TrainAndBuild(strs)
	if err != nil {
		t.Fatalf("TrainAndBuild: %v", err)
	}
	if store.Len() != len(strs) {
		t.Fatalf("Len() = %d, want %d", store.Len(), len(strs))
	}
	for i, want := range strs {
		got, ok := store.Get(i)
		if !ok {
			t.Fatalf("Get(%d) not ok", i)
		}
		if got != want {
			t.Errorf("Get(%d) = %q, want %q", i, got, want)
		}
	}
}

func TestGetOutOfRange(t *testing.T) {
	store, err := TrainAndBuild([]string{"one", "two"})
	if err != nil {
		t.Fatalf("TrainAndBuild: %v", err)
	}
	if _, ok := store.Get(-1); ok {
		t.Error("Get(-1) should not be ok")
	}
	if _, ok := store.Get(2); ok {
		t.Error("Get(2) should not be ok")
	}
}

func TestOpenReconstructsStore(t *testing.T) {
	strs := []string{"repeated phrase repeated phrase", "repeated phrase again"}
	orig, err := TrainAndBuild(strs)
	if err != nil {
		t.Fatalf("TrainAndBuild: %v", err)
	}
	reopened := Open(orig.Dictionary(), orig.Codes(), orig.Offsets())
	for i, want := range strs {
		got, ok := reopened.Get(i)
		if !ok || got != want {
			t.Errorf("Get(%d) = %q, %v, want %q, true", i, got, ok, want)
		}
	}
}

func TestDictionaryBoundedSize(t *testing.T) {
	strs := make([]string, 0, 200)
	for i := 0; i < 200; i++ {
		strs = append(strs, "the quick brown fox jumps over the lazy dog repeatedly every single day")
	}
	store, err := TrainAndBuild(strs)
	if err != nil {
		t.Fatalf("TrainAndBuild: %v", err)
	}
	dict := store.Dictionary()
	if len(dict.Symbols) > maxSymbols {
		t.Fatalf("dictionary has %d symbols, want <= %d", len(dict.Symbols), maxSymbols)
	}
	for _, sym := range dict.Symbols {
		if len(sym) < 1 || len(sym) > maxSymbolLen {
			t.Errorf("symbol %q has invalid length %d", sym, len(sym))
		}
	}
}
