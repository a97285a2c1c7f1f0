package wasmasm

import "github.com/go-mizu/blueprints/docfind/internal/errs"

const exportKindGlobal = 0x03

// findExportedGlobal scans an export section payload for a named
// export of kind global, returning its global index.
func findExportedGlobal(payload []byte, wantName string) (uint32, bool, error) {
	c := &cursor{b: payload}
	count, err := c.uvarint()
	if err != nil {
		return 0, false, err
	}
	for i := uint64(0); i < count; i++ {
		name, err := c.name()
		if err != nil {
			return 0, false, err
		}
		kind, err := c.byte()
		if err != nil {
			return 0, false, err
		}
		index, err := c.uvarint()
		if err != nil {
			return 0, false, err
		}
		if kind == exportKindGlobal && name == wantName {
			return uint32(index), true, nil
		}
	}
	return 0, false, nil
}

// opI32Const is the opcode for the i32.const instruction.
const opI32Const = 0x41

// opEnd terminates an init expression.
const opEnd = 0x0B

// globalI32Values scans a global section payload, returning the i32
// constant each global is initialized to (globals initialized with
// any other instruction are simply absent from the result, matching
// the original tool's best-effort scan).
func globalI32Values(payload []byte) (map[uint32]int32, error) {
	c := &cursor{b: payload}
	count, err := c.uvarint()
	if err != nil {
		return nil, err
	}
	out := make(map[uint32]int32, count)
	for i := uint64(0); i < count; i++ {
		if _, err := c.byte(); err != nil { // value type
			return nil, err
		}
		if _, err := c.byte(); err != nil { // mutability
			return nil, err
		}
		op, err := c.byte()
		if err != nil {
			return nil, err
		}
		if op == opI32Const {
			v, err := c.svarint()
			if err != nil {
				return nil, err
			}
			out[uint32(i)] = int32(v)
			if err := skipToEnd(c); err != nil {
				return nil, err
			}
			continue
		}
		if err := skipToEnd(c); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// skipToEnd advances c past the remainder of an init expression, up
// to and including its terminating 0x0B opcode.
func skipToEnd(c *cursor) error {
	for {
		b, err := c.byte()
		if err != nil {
			return errs.New(errs.ModuleInvalid, "init expression missing end opcode")
		}
		if b == opEnd {
			return nil
		}
	}
}
