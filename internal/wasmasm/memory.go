package wasmasm

import "github.com/go-mizu/blueprints/docfind/internal/errs"

// wasmPageSize is the fixed WebAssembly linear memory page size.
const wasmPageSize = 0x10000

// memoryLimits describes a single memory's page bounds.
type memoryLimits struct {
	Min    uint64
	Max    uint64
	HasMax bool
}

// parseMemorySection reads the (currently always single-memory)
// memory section payload.
func parseMemorySection(payload []byte) ([]memoryLimits, error) {
	c := &cursor{b: payload}
	count, err := c.uvarint()
	if err != nil {
		return nil, err
	}
	out := make([]memoryLimits, 0, count)
	for i := uint64(0); i < count; i++ {
		flags, err := c.byte()
		if err != nil {
			return nil, err
		}
		min, err := c.uvarint()
		if err != nil {
			return nil, err
		}
		lim := memoryLimits{Min: min}
		if flags&0x01 != 0 {
			max, err := c.uvarint()
			if err != nil {
				return nil, err
			}
			lim.Max = max
			lim.HasMax = true
		}
		out = append(out, lim)
	}
	return out, nil
}

// encodeMemorySection serializes a memory section from mems, writing
// each memory's minimum and, only when HasMax is set, its maximum.
func encodeMemorySection(mems []memoryLimits) []byte {
	out := appendUvarint(nil, uint64(len(mems)))
	for _, m := range mems {
		if m.HasMax {
			out = append(out, 0x01)
			out = appendUvarint(out, m.Min)
			out = appendUvarint(out, m.Max)
		} else {
			out = append(out, 0x00)
			out = appendUvarint(out, m.Min)
		}
	}
	return out
}

// singleMemoryPageCount returns the minimum page count of a module's
// only memory, per spec.md §4.6's single-memory assumption.
func singleMemoryPageCount(mems []memoryLimits) (uint64, error) {
	if len(mems) != 1 {
		return 0, errs.New(errs.ModuleInvalid, "expected exactly one memory in module")
	}
	return mems[0].Min, nil
}
