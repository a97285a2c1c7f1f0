// Package cli wires docfind's cobra commands: build (run the full
// indexing + WASM assembly pipeline) and serve (host the assembled
// module for local preview).
package cli

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Execute runs the docfind CLI.
func Execute(ctx context.Context) error {
	root := &cobra.Command{
		Use:   "docfind",
		Short: "docfind: compact, browser-deployable full-text search",
		Long: `docfind builds a compressed keyword search index over a document
collection and assembles it into a self-contained WebAssembly module.

Usage:
  docfind build <documents.json> <output_dir>   Build the index and WASM module
  docfind serve <output_dir>                     Preview search over a built module`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetVersionTemplate("docfind {{.Version}}\n")
	root.Version = versionString()

	root.AddCommand(buildCmd())
	root.AddCommand(serveCmd())

	if err := fang.Execute(ctx, root); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return err
	}
	return nil
}

func versionString() string {
	if v := os.Getenv("DOCFIND_VERSION"); strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		if bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			return bi.Main.Version
		}
	}
	return "dev"
}

// newLogger returns a zerolog.Logger writing structured debug logs to
// stderr when DOCFIND_DEBUG is set, or a no-op logger otherwise — the
// plain stdout status lines (UI) carry the non-debug user experience
// instead.
func newLogger() zerolog.Logger {
	if !debugEnabled() {
		return zerolog.Nop()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().
		Level(zerolog.DebugLevel)
}

func debugEnabled() bool {
	_, ok := os.LookupEnv("DOCFIND_DEBUG")
	return ok
}
