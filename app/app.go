// Package app owns the HTTP server lifecycle for `docfind serve`:
// graceful shutdown, a readiness flip, and structured logging, in the
// same shape as a small internal framework's App type but built
// directly on http.ServeMux since docfind only ever serves one small
// JSON endpoint plus a health check.
package app

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/rs/zerolog"
)

// App owns the HTTP server lifecycle and a request mux.
type App struct {
	*http.ServeMux

	preShutdownDelay time.Duration
	shutdownTimeout  time.Duration

	shuttingDown atomic.Bool
	log          zerolog.Logger
}

// Option configures App.
type Option func(*App)

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l zerolog.Logger) Option {
	return func(a *App) { a.log = l }
}

// WithPreShutdownDelay sets the delay after flipping readiness and
// before Shutdown, giving in-flight load balancer checks time to
// notice before connections start draining.
func WithPreShutdownDelay(d time.Duration) Option {
	return func(a *App) {
		if d >= 0 {
			a.preShutdownDelay = d
		}
	}
}

// WithShutdownTimeout sets the maximum duration for http.Server.Shutdown.
func WithShutdownTimeout(d time.Duration) Option {
	return func(a *App) {
		if d > 0 {
			a.shutdownTimeout = d
		}
	}
}

// New creates an App with conservative defaults.
func New(opts ...Option) *App {
	a := &App{
		ServeMux:         http.NewServeMux(),
		preShutdownDelay: 1 * time.Second,
		shutdownTimeout:  15 * time.Second,
		log:              zerolog.Nop(),
	}
	for _, o := range opts {
		o(a)
	}
	a.ServeMux.Handle("/healthz", a.healthzHandler())
	return a
}

// Logger returns the app logger.
func (a *App) Logger() zerolog.Logger { return a.log }

func (a *App) healthzHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if a.shuttingDown.Load() {
			http.Error(w, "shutting down", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, "ok\n")
	})
}

// Listen starts an HTTP server at addr and handles SIGINT/SIGTERM with
// a graceful drain.
func (a *App) Listen(addr string) error {
	srv := &http.Server{Addr: addr, Handler: a}
	return a.serveWithSignals(srv, func() error { return srv.ListenAndServe() })
}

// Serve runs on a caller-supplied listener, with the same graceful
// shutdown behavior as Listen.
func (a *App) Serve(l net.Listener) error {
	srv := &http.Server{Addr: l.Addr().String(), Handler: a}
	return a.serveWithSignals(srv, func() error { return srv.Serve(l) })
}

func (a *App) serveContext(ctx context.Context, srv *http.Server, serveFn func() error) error {
	baseCtx, cancelBase := context.WithCancel(context.Background())
	defer cancelBase()
	srv.BaseContext = func(net.Listener) context.Context { return baseCtx }

	log := a.log.With().
		Str("addr", srv.Addr).
		Int("pid", os.Getpid()).
		Str("go_version", runtime.Version()).
		Logger()
	log.Info().Msg("server starting")

	errCh := make(chan error, 1)
	go func() {
		if err := serveFn(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("server start failed")
		}
		return err

	case <-ctx.Done():
		start := time.Now()
		a.shuttingDown.Store(true)
		log.Info().Msg("shutdown initiated")

		if a.preShutdownDelay > 0 {
			time.Sleep(a.preShutdownDelay)
		}

		drainCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(drainCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Warn().Err(err).Msg("graceful shutdown incomplete")
			_ = srv.Close()
			cancelBase()
		} else {
			cancelBase()
		}

		if err := <-errCh; err != nil {
			log.Error().Err(err).Msg("server exit error after shutdown")
			return err
		}

		log.Info().Dur("duration", time.Since(start)).Msg("server stopped gracefully")
		return nil
	}
}

func (a *App) serveWithSignals(srv *http.Server, serveFn func() error) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return a.serveContext(ctx, srv, serveFn)
}
