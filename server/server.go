// Package server runs the process: migrations, background jobs and the
// HTTP server, each switched on through Options.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 10 * time.Second

type Options struct {
	WebServerEnabled bool
	WebServerPort    string

	JobsEnabled bool
	JobsHandler func() error

	MigrationEnabled bool
	MigrationHandler func() error

	// WebServerPreHandler registers middleware and routes before the
	// server starts listening.
	WebServerPreHandler func(r *gin.Engine)
}

func GetDefaultOptions() Options {
	return Options{
		WebServerEnabled: true,
		WebServerPort:    "3000",
		JobsEnabled:      true,
	}
}

/*
* Apply migrations, then start jobs
* Build the engine and serve until SIGINT or SIGTERM
* Drain open requests before returning
 */
func Start(opts Options) error {
	if opts.MigrationEnabled && opts.MigrationHandler != nil {
		if err := opts.MigrationHandler(); err != nil {
			return err
		}
	}
	if opts.JobsEnabled && opts.JobsHandler != nil {
		if err := opts.JobsHandler(); err != nil {
			return err
		}
	}
	if !opts.WebServerEnabled {
		return nil
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if opts.WebServerPreHandler != nil {
		opts.WebServerPreHandler(r)
	}

	srv := newHTTPServer(":"+opts.WebServerPort, r)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", opts.WebServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newHTTPServer derives every request context from one base context and
// cancels it when Shutdown begins, so long-lived streams return instead of
// holding the drain open.
func newHTTPServer(addr string, handler http.Handler) *http.Server {
	base, cancel := context.WithCancel(context.Background())
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return base },
	}
	srv.RegisterOnShutdown(cancel)
	return srv
}
