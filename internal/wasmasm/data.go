package wasmasm

import "github.com/go-mizu/blueprints/docfind/internal/errs"

const (
	dataActiveMem0        = 0x00
	dataPassive           = 0x01
	dataActiveExplicitMem = 0x02
)

// dataSegment is one entry of a data section: either passive, or
// active at a given memory index and offset.
type dataSegment struct {
	Passive  bool
	MemIndex uint32
	// I32Offset holds the segment's offset when it is a plain
	// i32.const expression, which is the only case Assemble needs to
	// patch or relocate. OffsetRaw preserves the original init
	// expression bytes for every other (rarer) case, so non-i32.const
	// offsets round-trip untouched.
	HasI32Offset bool
	I32Offset    int32
	OffsetRaw    []byte
	Data         []byte
}

func parseDataSection(payload []byte) ([]dataSegment, error) {
	c := &cursor{b: payload}
	count, err := c.uvarint()
	if err != nil {
		return nil, err
	}
	segs := make([]dataSegment, 0, count)
	for i := uint64(0); i < count; i++ {
		kind, err := c.uvarint()
		if err != nil {
			return nil, err
		}
		seg := dataSegment{}
		switch kind {
		case dataPassive:
			seg.Passive = true
		case dataActiveMem0, dataActiveExplicitMem:
			if kind == dataActiveExplicitMem {
				memIdx, err := c.uvarint()
				if err != nil {
					return nil, err
				}
				seg.MemIndex = uint32(memIdx)
			}
			start := c.pos
			op, err := c.byte()
			if err != nil {
				return nil, err
			}
			if op == opI32Const {
				v, err := c.svarint()
				if err != nil {
					return nil, err
				}
				seg.HasI32Offset = true
				seg.I32Offset = int32(v)
			}
			if err := skipToEnd(c); err != nil {
				return nil, err
			}
			seg.OffsetRaw = append([]byte(nil), c.b[start:c.pos]...)
		default:
			return nil, errs.New(errs.ModuleInvalid, "unsupported data segment kind")
		}

		if !seg.Passive {
			n, err := c.uvarint()
			if err != nil {
				return nil, err
			}
			data, err := c.bytes(int(n))
			if err != nil {
				return nil, err
			}
			seg.Data = append([]byte(nil), data...)
		} else {
			n, err := c.uvarint()
			if err != nil {
				return nil, err
			}
			data, err := c.bytes(int(n))
			if err != nil {
				return nil, err
			}
			seg.Data = append([]byte(nil), data...)
		}
		segs = append(segs, seg)
	}
	return segs, nil
}

func encodeDataSection(segs []dataSegment) []byte {
	out := appendUvarint(nil, uint64(len(segs)))
	for _, seg := range segs {
		switch {
		case seg.Passive:
			out = appendUvarint(out, dataPassive)
		case seg.MemIndex != 0:
			out = appendUvarint(out, dataActiveExplicitMem)
			out = appendUvarint(out, uint64(seg.MemIndex))
			out = append(out, seg.OffsetRaw...)
		default:
			out = appendUvarint(out, dataActiveMem0)
			out = append(out, seg.OffsetRaw...)
		}
		out = appendUvarint(out, uint64(len(seg.Data)))
		out = append(out, seg.Data...)
	}
	return out
}

// newActiveSegment builds a data segment with a fresh i32.const offset.
func newActiveSegment(offset int32, data []byte) dataSegment {
	raw := append([]byte{opI32Const}, appendSvarint(nil, int64(offset))...)
	raw = append(raw, opEnd)
	return dataSegment{
		HasI32Offset: true,
		I32Offset:    offset,
		OffsetRaw:    raw,
		Data:         data,
	}
}
