package wasmasm

import (
	"bytes"
	"testing"

	"github.com/go-mizu/blueprints/docfind/internal/wasmasm/sentinel"
)

func TestAssemblePatchesSentinelsAndAppendsData(t *testing.T) {
	prebuilt := sentinel.Build(1)
	rawIndex := bytes.Repeat([]byte{0xAB}, 300)

	out, err := Assemble(prebuilt, rawIndex)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	sections, err := parseModule(out)
	if err != nil {
		t.Fatalf("parseModule(out): %v", err)
	}

	var mems []memoryLimits
	var segs []dataSegment
	var dataCount uint64
	for _, s := range sections {
		switch s.ID {
		case secMemory:
			mems, err = parseMemorySection(s.Payload)
			if err != nil {
				t.Fatalf("parseMemorySection: %v", err)
			}
		case secData:
			segs, err = parseDataSection(s.Payload)
			if err != nil {
				t.Fatalf("parseDataSection: %v", err)
			}
		case secDataCount:
			c := &cursor{b: s.Payload}
			dataCount, err = c.uvarint()
			if err != nil {
				t.Fatalf("parsing data count: %v", err)
			}
		}
	}

	if len(mems) != 1 {
		t.Fatalf("expected 1 memory, got %d", len(mems))
	}
	wantPages := uint64(1) + uint64(len(rawIndex))/wasmPageSize + 1
	if mems[0].Min != wantPages {
		t.Errorf("memory pages = %d, want %d", mems[0].Min, wantPages)
	}

	if dataCount != 2 {
		t.Errorf("data count = %d, want 2 (original sentinel segment + appended index segment)", dataCount)
	}
	if len(segs) != 2 {
		t.Fatalf("expected 2 data segments, got %d", len(segs))
	}

	last := segs[len(segs)-1]
	if !bytes.Equal(last.Data, rawIndex) {
		t.Errorf("appended segment data does not match rawIndex")
	}
	wantBase := int32(1 * wasmPageSize)
	if last.I32Offset != wantBase {
		t.Errorf("appended segment offset = %d, want %d", last.I32Offset, wantBase)
	}

	sentinelSeg := segs[0]
	gotBase := int32(sentinelSeg.Data[0]) | int32(sentinelSeg.Data[1])<<8 | int32(sentinelSeg.Data[2])<<16 | int32(sentinelSeg.Data[3])<<24
	gotLen := int32(sentinelSeg.Data[4]) | int32(sentinelSeg.Data[5])<<8 | int32(sentinelSeg.Data[6])<<16 | int32(sentinelSeg.Data[7])<<24
	if gotBase != wantBase {
		t.Errorf("patched INDEX_BASE = %d, want %d", gotBase, wantBase)
	}
	if gotLen != int32(len(rawIndex)) {
		t.Errorf("patched INDEX_LEN = %d, want %d", gotLen, len(rawIndex))
	}
}

func TestAssembleRejectsModuleWithoutSentinels(t *testing.T) {
	bare := []byte{0x00, 0x61, 0x73, 0x6D, 0x01, 0x00, 0x00, 0x00}
	if _, err := Assemble(bare, []byte{1, 2, 3}); err == nil {
		t.Fatal("expected error for module missing memory/sentinel sections")
	}
}
