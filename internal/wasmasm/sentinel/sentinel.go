// Package sentinel hand-assembles a minimal placeholder WebAssembly
// module exporting the two i32 globals INDEX_BASE/INDEX_LEN and a
// single memory, backed by one active data segment carrying both
// sentinel words. It stands in for the externally-built,
// wasm-bindgen-compiled module artifact that is out of scope for this
// repo, so internal/wasmasm's patching pipeline has something real to
// run against end to end.
package sentinel

const (
	wasmPageSize = 0x10000

	// placeholderAddr is the sentinel value both sentinel words in the
	// data segment start life with — unrelated to any real memory
	// layout so a missed patch is obvious rather than accidentally
	// plausible.
	placeholderAddr = int32(-559038737) // 0xDEADBEEF as a signed i32
)

func appendUvarint(dst []byte, v uint64) []byte {
	for {
		b := byte(v & 0x7F)
		v >>= 7
		if v != 0 {
			dst = append(dst, b|0x80)
		} else {
			dst = append(dst, b)
			return dst
		}
	}
}

func appendSvarint(dst []byte, v int64) []byte {
	for {
		b := byte(v & 0x7F)
		v >>= 7
		signBitSet := b&0x40 != 0
		if (v == 0 && !signBitSet) || (v == -1 && signBitSet) {
			dst = append(dst, b)
			return dst
		}
		dst = append(dst, b|0x80)
	}
}

func section(id byte, payload []byte) []byte {
	out := []byte{id}
	out = appendUvarint(out, uint64(len(payload)))
	return append(out, payload...)
}

func encodeName(s string) []byte {
	out := appendUvarint(nil, uint64(len(s)))
	return append(out, s...)
}

// Build constructs a minimal valid WebAssembly module with:
//   - one memory of pages initial pages, exported as "memory"
//   - two mutable i32 globals holding the linear-memory addresses (0
//     and 4) of the two sentinel words, exported as "INDEX_BASE" and
//     "INDEX_LEN"
//   - a data count section declaring one segment
//   - a data section with one active segment at offset 0 holding both
//     sentinel words, each initialized to placeholderAddr, so
//     WasmAssembler has a segment to patch
func Build(pages uint64) []byte {
	const (
		secType      = 1
		secMemory    = 5
		secGlobal    = 6
		secExport    = 7
		secDataCount = 12
		secData      = 11
	)

	typeSec := appendUvarint(nil, 0) // zero function types

	memSec := appendUvarint(nil, 1) // one memory
	memSec = append(memSec, 0x00)   // flags: min only
	memSec = appendUvarint(memSec, pages)

	globalSec := appendUvarint(nil, 2) // two globals
	for _, addr := range []int64{0, 4} {
		globalSec = append(globalSec, 0x7F, 0x01) // valtype i32, mutable
		globalSec = append(globalSec, 0x41)       // i32.const
		globalSec = appendSvarint(globalSec, addr)
		globalSec = append(globalSec, 0x0B) // end
	}

	exportSec := appendUvarint(nil, 3) // three exports
	exportSec = append(exportSec, encodeName("memory")...)
	exportSec = append(exportSec, 0x02) // kind: memory
	exportSec = appendUvarint(exportSec, 0)
	exportSec = append(exportSec, encodeName("INDEX_BASE")...)
	exportSec = append(exportSec, 0x03) // kind: global
	exportSec = appendUvarint(exportSec, 0)
	exportSec = append(exportSec, encodeName("INDEX_LEN")...)
	exportSec = append(exportSec, 0x03)
	exportSec = appendUvarint(exportSec, 1)

	dataCountSec := appendUvarint(nil, 1)

	segData := make([]byte, 8) // two i32 sentinel words, to be patched
	word := placeholderAddr
	for at := 0; at < len(segData); at += 4 {
		segData[at], segData[at+1], segData[at+2], segData[at+3] = byte(word), byte(word>>8), byte(word>>16), byte(word>>24)
	}
	dataSec := appendUvarint(nil, 1) // one segment
	dataSec = append(dataSec, 0x00)  // active, memory 0
	dataSec = append(dataSec, 0x41)  // i32.const
	dataSec = appendSvarint(dataSec, 0)
	dataSec = append(dataSec, 0x0B) // end
	dataSec = appendUvarint(dataSec, uint64(len(segData)))
	dataSec = append(dataSec, segData...)

	out := []byte{0x00, 0x61, 0x73, 0x6D, 0x01, 0x00, 0x00, 0x00}
	out = append(out, section(secType, typeSec)...)
	out = append(out, section(secMemory, memSec)...)
	out = append(out, section(secGlobal, globalSec)...)
	out = append(out, section(secExport, exportSec)...)
	out = append(out, section(secDataCount, dataCountSec)...)
	out = append(out, section(secData, dataSec)...)
	return out
}
