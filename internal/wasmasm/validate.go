package wasmasm

import (
	"context"

	"github.com/tetratelabs/wazero"

	"github.com/go-mizu/blueprints/docfind/internal/errs"
)

// Validate compiles wasmBytes with wazero, which performs full
// structural and type validation as a side effect of compilation —
// the same guarantee wasmparser's Validator gives the original tool,
// without hand-rolling a validator of our own.
func Validate(ctx context.Context, wasmBytes []byte) error {
	rt := wazero.NewRuntime(ctx)
	defer rt.Close(ctx)

	mod, err := rt.CompileModule(ctx, wasmBytes)
	if err != nil {
		return errs.Wrap(errs.ModuleInvalid, "wasm module failed validation", err)
	}
	return mod.Close(ctx)
}
