package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-mizu/blueprints/docfind/assets"
	"github.com/go-mizu/blueprints/docfind/internal/errs"
	"github.com/go-mizu/blueprints/docfind/internal/index"
	"github.com/go-mizu/blueprints/docfind/internal/index/serialize"
	"github.com/go-mizu/blueprints/docfind/internal/stopwords"
	"github.com/go-mizu/blueprints/docfind/internal/wasmasm"
	"github.com/go-mizu/blueprints/docfind/internal/wasmasm/sentinel"
	"github.com/go-mizu/blueprints/docfind/types"
)

func buildCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "build <documents.json> <output_dir>",
		Short: "Build a search index and assemble it into a WASM module",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd.Context(), args[0], args[1])
		},
	}
	return c
}

func runBuild(ctx context.Context, inputPath, outputDir string) error {
	log := newLogger()
	ui := NewUI()

	log.Debug().Str("input", inputPath).Str("output_dir", outputDir).Msg("starting build")

	docs, err := loadDocuments(inputPath)
	if err != nil {
		return err
	}
	log.Debug().Int("documents", len(docs)).Msg("loaded documents")

	start := time.Now()
	idx, err := index.Build(docs, stopwords.Default())
	if err != nil {
		return errs.Wrap(errs.InputMalformed, "building index", err)
	}
	indexDuration := time.Since(start)
	if debugEnabled() {
		log.Debug().Dur("duration", indexDuration).Msg("indexing completed")
	} else {
		fmt.Printf("Indexing completed in: %s\n", indexDuration)
	}

	start = time.Now()

	rawIndex, err := serialize.Encode(idx)
	if err != nil {
		return errs.Wrap(errs.CorruptIndex, "serializing index", err)
	}
	log.Debug().Int("bytes", len(rawIndex)).Msg("index serialized")
	if !debugEnabled() {
		fmt.Printf("Index size: %d bytes\n", len(rawIndex))
	}

	// The out-of-scope, externally wasm-bindgen-compiled module
	// artifact is stood in for by a minimal hand-assembled fixture
	// exporting the same INDEX_BASE/INDEX_LEN sentinel globals — see
	// internal/wasmasm/sentinel.
	prebuilt := sentinel.Build(1)

	wasmBytes, err := wasmasm.Assemble(prebuilt, rawIndex)
	if err != nil {
		return errs.Wrap(errs.ModuleInvalid, "assembling wasm module", err)
	}
	if err := wasmasm.Validate(ctx, wasmBytes); err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return errs.Wrap(errs.IoFailure, "creating output directory", err)
	}
	if err := os.WriteFile(filepath.Join(outputDir, "docfind.js"), assets.DocfindJS, 0o644); err != nil {
		return errs.Wrap(errs.IoFailure, "writing docfind.js", err)
	}
	if err := os.WriteFile(filepath.Join(outputDir, "docfind_bg.wasm"), wasmBytes, 0o644); err != nil {
		return errs.Wrap(errs.IoFailure, "writing docfind_bg.wasm", err)
	}

	wasmDuration := time.Since(start)
	if debugEnabled() {
		log.Debug().Dur("duration", wasmDuration).Msg("wasm creation completed")
	} else {
		fmt.Printf("WASM creation completed in: %s\n", wasmDuration)
		ui.Summary([][2]string{
			{"Documents", fmt.Sprintf("%d", len(docs))},
			{"Index size", fmt.Sprintf("%d bytes", len(rawIndex))},
			{"Module size", fmt.Sprintf("%d bytes", len(wasmBytes))},
			{"Output", outputDir},
		})
	}

	return nil
}

func loadDocuments(path string) ([]types.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.Wrap(errs.IoFailure, "opening documents file", err)
	}
	defer f.Close()

	var docs []types.Document
	if err := json.NewDecoder(f).Decode(&docs); err != nil {
		return nil, errs.Wrap(errs.InputMalformed, "decoding documents json", err)
	}
	for i, doc := range docs {
		if err := doc.Validate(); err != nil {
			return nil, errs.Wrap(errs.InputMalformed, fmt.Sprintf("document %d", i), err)
		}
	}
	return docs, nil
}
