package wasmasm

import "github.com/go-mizu/blueprints/docfind/internal/errs"

// cursor is a simple forward-only byte reader used while walking a
// WebAssembly binary payload.
type cursor struct {
	b   []byte
	pos int
}

func (c *cursor) eof() bool { return c.pos >= len(c.b) }

func (c *cursor) byte() (byte, error) {
	if c.pos >= len(c.b) {
		return 0, errs.New(errs.ModuleInvalid, "unexpected end of section while reading byte")
	}
	v := c.b[c.pos]
	c.pos++
	return v, nil
}

func (c *cursor) bytes(n int) ([]byte, error) {
	if c.pos+n > len(c.b) {
		return nil, errs.New(errs.ModuleInvalid, "unexpected end of section while reading bytes")
	}
	v := c.b[c.pos : c.pos+n]
	c.pos += n
	return v, nil
}

// uvarint reads an unsigned LEB128 integer.
func (c *cursor) uvarint() (uint64, error) {
	var result uint64
	var shift uint
	for {
		b, err := c.byte()
		if err != nil {
			return 0, err
		}
		result |= uint64(b&0x7F) << shift
		if b&0x80 == 0 {
			return result, nil
		}
		shift += 7
		if shift >= 64 {
			return 0, errs.New(errs.ModuleInvalid, "uvarint overflow")
		}
	}
}

// svarint reads a signed LEB128 integer (WebAssembly's i32.const/i64.const encoding).
func (c *cursor) svarint() (int64, error) {
	var result int64
	var shift uint
	var b byte
	var err error
	for {
		b, err = c.byte()
		if err != nil {
			return 0, err
		}
		result |= int64(b&0x7F) << shift
		shift += 7
		if b&0x80 == 0 {
			break
		}
	}
	if shift < 64 && b&0x40 != 0 {
		result |= -1 << shift
	}
	return result, nil
}

// name reads a WebAssembly "name" value: a uvarint length prefix
// followed by that many UTF-8 bytes.
func (c *cursor) name() (string, error) {
	n, err := c.uvarint()
	if err != nil {
		return "", err
	}
	b, err := c.bytes(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// appendUvarint appends v to dst in unsigned LEB128 form.
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

// appendSvarint appends v to dst in signed LEB128 form.
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
