package wasmasm

import "testing"

func TestUvarintRoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 127, 128, 300, 1 << 20, 1 << 40} {
		buf := appendUvarint(nil, v)
		c := &cursor{b: buf}
		got, err := c.uvarint()
		if err != nil {
			t.Fatalf("uvarint(%d): %v", v, err)
		}
		if got != v {
			t.Errorf("uvarint round trip for %d = %d", v, got)
		}
		if !c.eof() {
			t.Errorf("uvarint(%d) left %d unread bytes", v, len(buf)-c.pos)
		}
	}
}

func TestSvarintRoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 63, -64, 64, -65, 1000000, -1000000} {
		buf := appendSvarint(nil, v)
		c := &cursor{b: buf}
		got, err := c.svarint()
		if err != nil {
			t.Fatalf("svarint(%d): %v", v, err)
		}
		if got != v {
			t.Errorf("svarint round trip for %d = %d", v, got)
		}
	}
}

func TestName(t *testing.T) {
	buf := appendUvarint(nil, 5)
	buf = append(buf, []byte("hello")...)
	c := &cursor{b: buf}
	got, err := c.name()
	if err != nil {
		t.Fatalf("name: %v", err)
	}
	if got != "hello" {
		t.Errorf("name() = %q, want hello", got)
	}
}
