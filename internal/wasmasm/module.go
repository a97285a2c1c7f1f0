package wasmasm

import (
	"bytes"

	"github.com/go-mizu/blueprints/docfind/internal/errs"
)

// Section IDs as defined by the WebAssembly binary format.
const (
	secCustom    = 0
	secType      = 1
	secImport    = 2
	secFunction  = 3
	secTable     = 4
	secMemory    = 5
	secGlobal    = 6
	secExport    = 7
	secStart     = 8
	secElement   = 9
	secCode      = 10
	secData      = 11
	secDataCount = 12
)

var wasmMagic = []byte{0x00, 0x61, 0x73, 0x6D}
var wasmVersion = []byte{0x01, 0x00, 0x00, 0x00}

// rawSection is one top-level section as it appears on the wire: an
// id byte and its raw payload bytes, before any section-specific
// interpretation.
type rawSection struct {
	ID      byte
	Payload []byte
}

// parseModule splits a WebAssembly binary into its ordered top-level
// sections, verifying the magic header and version.
func parseModule(data []byte) ([]rawSection, error) {
	if len(data) < 8 || !bytes.Equal(data[:4], wasmMagic) || !bytes.Equal(data[4:8], wasmVersion) {
		return nil, errs.New(errs.ModuleInvalid, "not a valid wasm binary module (bad magic/version)")
	}
	c := &cursor{b: data[8:]}

	var sections []rawSection
	for !c.eof() {
		id, err := c.byte()
		if err != nil {
			return nil, errs.Wrap(errs.ModuleInvalid, "reading section id", err)
		}
		size, err := c.uvarint()
		if err != nil {
			return nil, errs.Wrap(errs.ModuleInvalid, "reading section size", err)
		}
		payload, err := c.bytes(int(size))
		if err != nil {
			return nil, errs.Wrap(errs.ModuleInvalid, "reading section payload", err)
		}
		sections = append(sections, rawSection{ID: id, Payload: payload})
	}
	return sections, nil
}

// encodeModule re-serializes sections, in order, into a complete
// WebAssembly binary.
func encodeModule(sections []rawSection) []byte {
	out := make([]byte, 0, 8)
	out = append(out, wasmMagic...)
	out = append(out, wasmVersion...)
	for _, s := range sections {
		out = append(out, s.ID)
		out = appendUvarint(out, uint64(len(s.Payload)))
		out = append(out, s.Payload...)
	}
	return out
}
