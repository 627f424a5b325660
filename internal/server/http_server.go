package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/mikeladderbush/LED-Project/internal/logging"
)

const (
	statusReadTimeout  = 5 * time.Second
	statusWriteTimeout = 10 * time.Second
	statusIdleTimeout  = 60 * time.Second
	scrapeReadTimeout  = 10 * time.Second
)

// shutdownTimeout bounds the whole teardown; tests shorten it.
var shutdownTimeout = 10 * time.Second

// httpServer is the part of *http.Server the process lifecycle touches.
type httpServer interface {
	ListenAndServe() error
	Shutdown(context.Context) error
	Addr() string
	Handler() http.Handler
}

type netHTTPServer struct {
	srv *http.Server
}

func newStatusListener(port string, h http.Handler) netHTTPServer {
	return netHTTPServer{srv: &http.Server{
		Addr:         ":" + port,
		Handler:      h,
		ReadTimeout:  statusReadTimeout,
		WriteTimeout: statusWriteTimeout,
		IdleTimeout:  statusIdleTimeout,
	}}
}

func newScrapeListener(port string, h http.Handler) netHTTPServer {
	mux := http.NewServeMux()
	mux.Handle("/metrics", h)
	return netHTTPServer{srv: &http.Server{
		Addr:              ":" + port,
		Handler:           mux,
		ReadHeaderTimeout: scrapeReadTimeout,
	}}
}

func (s netHTTPServer) ListenAndServe() error              { return s.srv.ListenAndServe() }
func (s netHTTPServer) Shutdown(ctx context.Context) error { return s.srv.Shutdown(ctx) }
func (s netHTTPServer) Addr() string                       { return s.srv.Addr }
func (s netHTTPServer) Handler() http.Handler              { return s.srv.Handler }

// launchServer serves srv on its own goroutine. onError runs only for
// failures other than a requested shutdown.
func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	logging.Info(logger, name+" server starting", slog.String("addr", srv.Addr()))
	go func() {
		err := srv.ListenAndServe()
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return
		}
		logging.Warn(logger, name+" server failed", "error", err)
		if onError != nil {
			onError(err)
		}
	}()
}

func shutdownListener(ctx context.Context, name string, srv httpServer, logger *slog.Logger) {
	if srv == nil {
		return
	}
	if err := srv.Shutdown(ctx); err != nil {
		logging.Warn(logger, name+" server shutdown failed", "error", err)
	}
}
