// Package runtime implements RuntimeLoader (C7): instantiating a
// patched WebAssembly search module with wazero, reading its
// INDEX_BASE/INDEX_LEN globals, and decoding the Index out of its
// linear memory — the Go-side host counterpart to what the original
// runs inside the browser's own wasm instance.
package runtime

import (
	"context"
	"sync"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/go-mizu/blueprints/docfind/internal/errs"
	"github.com/go-mizu/blueprints/docfind/internal/index"
	"github.com/go-mizu/blueprints/docfind/internal/index/serialize"
)

// Loader publishes a single, process-wide Index exactly once, giving
// every later reader the same acquire/release visibility the
// original gets from a Rust OnceLock, without the original's mutable
// global state (spec.md §9's redesign note).
type Loader struct {
	once sync.Once
	idx  *index.Index
	err  error
}

// Load instantiates wasmBytes, extracts the search index from its
// memory, and caches the result: only the first call does any work,
// every later call observes the same (*index.Index, error) pair.
func (l *Loader) Load(ctx context.Context, wasmBytes []byte) (*index.Index, error) {
	l.once.Do(func() {
		l.idx, l.err = loadIndexFromModule(ctx, wasmBytes)
	})
	return l.idx, l.err
}

// loadIndexFromModule instantiates wasmBytes, reads its exported
// INDEX_BASE/INDEX_LEN i32 globals as the addresses of two
// little-endian 32-bit words holding the index's base address and
// length, and decodes the Index from that window of the instance's
// linear memory.
func loadIndexFromModule(ctx context.Context, wasmBytes []byte) (*index.Index, error) {
	rt := wazero.NewRuntime(ctx)
	defer rt.Close(ctx)

	compiled, err := rt.CompileModule(ctx, wasmBytes)
	if err != nil {
		return nil, errs.Wrap(errs.ModuleInvalid, "compiling search module", err)
	}

	mod, err := rt.InstantiateModule(ctx, compiled, wazero.NewModuleConfig())
	if err != nil {
		return nil, errs.Wrap(errs.ModuleInvalid, "instantiating search module", err)
	}
	defer mod.Close(ctx)

	base := mod.ExportedGlobal("INDEX_BASE")
	if base == nil {
		return nil, errs.New(errs.MissingSentinel, "module does not export INDEX_BASE")
	}
	length := mod.ExportedGlobal("INDEX_LEN")
	if length == nil {
		return nil, errs.New(errs.MissingSentinel, "module does not export INDEX_LEN")
	}

	mem := mod.Memory()
	if mem == nil {
		return nil, errs.New(errs.ModuleInvalid, "module exports no memory")
	}

	baseAddr := api.DecodeI32(base.Get())
	lenAddr := api.DecodeI32(length.Get())
	if baseAddr < 0 || lenAddr < 0 {
		return nil, errs.New(errs.CorruptIndex, "INDEX_BASE/INDEX_LEN decoded to negative addresses")
	}

	dataBase, ok := mem.ReadUint32Le(uint32(baseAddr))
	if !ok {
		return nil, errs.New(errs.CorruptIndex, "INDEX_BASE address out of bounds of module memory")
	}
	dataLen, ok := mem.ReadUint32Le(uint32(lenAddr))
	if !ok {
		return nil, errs.New(errs.CorruptIndex, "INDEX_LEN address out of bounds of module memory")
	}

	raw, ok := mem.Read(dataBase, dataLen)
	if !ok {
		return nil, errs.New(errs.CorruptIndex, "INDEX_BASE/INDEX_LEN out of bounds of module memory")
	}

	idx, err := serialize.Decode(raw)
	if err != nil {
		return nil, errs.Wrap(errs.CorruptIndex, "decoding index from module memory", err)
	}
	return idx, nil
}
