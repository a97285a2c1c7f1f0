package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/go-mizu/blueprints/docfind/app"
	"github.com/go-mizu/blueprints/docfind/internal/errs"
	"github.com/go-mizu/blueprints/docfind/internal/query"
	"github.com/go-mizu/blueprints/docfind/internal/runtime"
)

func serveCmd() *cobra.Command {
	var addr string

	c := &cobra.Command{
		Use:   "serve <output_dir>",
		Short: "Preview search over a previously built docfind_bg.wasm module",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), addr, args[0])
		},
	}
	c.Flags().StringVar(&addr, "addr", envDefault("DOCFIND_ADDR", ":8080"), "HTTP listen address")
	return c
}

func runServe(_ context.Context, addr, outputDir string) error {
	log := newLogger()
	ui := NewUI()

	wasmPath := filepath.Join(outputDir, "docfind_bg.wasm")
	wasmBytes, err := os.ReadFile(wasmPath)
	if err != nil {
		return errs.Wrap(errs.IoFailure, "reading docfind_bg.wasm (run `docfind build` first)", err)
	}

	a := app.New(app.WithLogger(log))

	var loader runtime.Loader
	a.Handle("/search", searchHandler(&loader, wasmBytes, log))

	ui.Header(iconServer, "docfind preview server")
	ui.Info("Module", wasmPath)
	ui.Info("Listening", fmt.Sprintf("http://localhost%s/search?q=...", addr))
	ui.Blank()
	ui.Hint("Press Ctrl+C to stop")
	ui.Blank()

	return a.Listen(addr)
}

func searchHandler(loader *runtime.Loader, wasmBytes []byte, log zerolog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		idx, err := loader.Load(r.Context(), wasmBytes)
		if err != nil {
			log.Error().Err(err).Msg("failed to load search module")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		q := r.URL.Query().Get("q")
		const maxResults = 20
		docs, err := query.Search(idx, q, maxResults)
		if err != nil {
			log.Error().Err(err).Msg("search failed")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(docs)
	})
}
