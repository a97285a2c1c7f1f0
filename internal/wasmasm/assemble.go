// Package wasmasm implements WasmAssembler (C6): patching a prebuilt
// WebAssembly module's INDEX_BASE/INDEX_LEN sentinel globals and
// appending the serialized search index as a new active data segment,
// growing linear memory to fit it.
package wasmasm

import "github.com/go-mizu/blueprints/docfind/internal/errs"

const (
	exportIndexBase = "INDEX_BASE"
	exportIndexLen  = "INDEX_LEN"
)

// Assemble patches prebuilt (a compiled WebAssembly module exporting
// two i32 globals INDEX_BASE and INDEX_LEN) so those globals' backing
// memory addresses carry the real base address and length of
// rawIndex, then appends rawIndex to the module as a new active data
// segment and grows the module's memory to fit it.
func Assemble(prebuilt []byte, rawIndex []byte) ([]byte, error) {
	sections, err := parseModule(prebuilt)
	if err != nil {
		return nil, err
	}

	var baseGlobalIdx, lenGlobalIdx uint32
	var haveBase, haveLen bool
	i32Globals := make(map[uint32]int32)
	var oldPages uint64
	var haveMemory bool

	for _, s := range sections {
		switch s.ID {
		case secExport:
			if idx, ok, err := findExportedGlobal(s.Payload, exportIndexBase); err != nil {
				return nil, errs.Wrap(errs.ModuleInvalid, "parsing export section", err)
			} else if ok {
				baseGlobalIdx, haveBase = idx, true
			}
			if idx, ok, err := findExportedGlobal(s.Payload, exportIndexLen); err != nil {
				return nil, errs.Wrap(errs.ModuleInvalid, "parsing export section", err)
			} else if ok {
				lenGlobalIdx, haveLen = idx, true
			}
		case secGlobal:
			vals, err := globalI32Values(s.Payload)
			if err != nil {
				return nil, errs.Wrap(errs.ModuleInvalid, "parsing global section", err)
			}
			i32Globals = vals
		case secMemory:
			mems, err := parseMemorySection(s.Payload)
			if err != nil {
				return nil, errs.Wrap(errs.ModuleInvalid, "parsing memory section", err)
			}
			oldPages, err = singleMemoryPageCount(mems)
			if err != nil {
				return nil, err
			}
			haveMemory = true
		}
	}

	if !haveBase || !haveLen {
		return nil, errs.New(errs.MissingSentinel, "prebuilt module does not export INDEX_BASE and INDEX_LEN globals")
	}
	if !haveMemory {
		return nil, errs.New(errs.ModuleInvalid, "prebuilt module has no memory section")
	}

	baseAddr, ok := i32Globals[baseGlobalIdx]
	if !ok {
		return nil, errs.New(errs.MissingSentinel, "INDEX_BASE global has no i32.const initializer")
	}
	lenAddr, ok := i32Globals[lenGlobalIdx]
	if !ok {
		return nil, errs.New(errs.MissingSentinel, "INDEX_LEN global has no i32.const initializer")
	}

	indexBase := int32(oldPages * wasmPageSize)
	newPages := oldPages + uint64(len(rawIndex))/wasmPageSize + 1

	out := make([]rawSection, len(sections))
	for i, s := range sections {
		switch s.ID {
		case secMemory:
			out[i] = rawSection{ID: secMemory, Payload: encodeMemorySection([]memoryLimits{{Min: newPages}})}
		case secDataCount:
			c := &cursor{b: s.Payload}
			count, err := c.uvarint()
			if err != nil {
				return nil, errs.Wrap(errs.ModuleInvalid, "parsing data count section", err)
			}
			out[i] = rawSection{ID: secDataCount, Payload: appendUvarint(nil, count+1)}
		case secData:
			segs, err := parseDataSection(s.Payload)
			if err != nil {
				return nil, errs.Wrap(errs.ModuleInvalid, "parsing data section", err)
			}
			segs, err = patchSentinelSegment(segs, baseAddr, lenAddr, indexBase, int32(len(rawIndex)))
			if err != nil {
				return nil, err
			}
			segs = append(segs, newActiveSegment(indexBase, rawIndex))
			out[i] = rawSection{ID: secData, Payload: encodeDataSection(segs)}
		default:
			out[i] = s
		}
	}

	return encodeModule(out), nil
}

// patchSentinelSegment finds the active i32.const segment whose byte
// range covers both baseAddr and lenAddr, and overwrites those four-byte
// little-endian windows with the real index base address and length.
func patchSentinelSegment(segs []dataSegment, baseAddr, lenAddr, newBase, newLen int32) ([]dataSegment, error) {
	for i := range segs {
		seg := &segs[i]
		if seg.Passive || !seg.HasI32Offset {
			continue
		}
		start := seg.I32Offset
		end := start + int32(len(seg.Data))
		if baseAddr < start || baseAddr >= end {
			continue
		}
		if lenAddr < start || lenAddr >= end {
			return nil, errs.New(errs.MissingSentinel, "INDEX_LEN address not within the same data segment as INDEX_BASE")
		}

		data := append([]byte(nil), seg.Data...)
		putI32LE(data, int(baseAddr-start), newBase)
		putI32LE(data, int(lenAddr-start), newLen)
		seg.Data = data
		return segs, nil
	}
	return nil, errs.New(errs.MissingSentinel, "no data segment contains the INDEX_BASE sentinel address")
}

func putI32LE(b []byte, at int, v int32) {
	b[at] = byte(v)
	b[at+1] = byte(v >> 8)
	b[at+2] = byte(v >> 16)
	b[at+3] = byte(v >> 24)
}
