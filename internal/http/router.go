package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/mikeladderbush/LED-Project/internal/http/handlers"
	"github.com/mikeladderbush/LED-Project/internal/http/middleware"
	"github.com/mikeladderbush/LED-Project/internal/metrics"
)

// NewRouter registers the status routes and wraps them with request logging.
func NewRouter(handler *handlers.Handler, logger *slog.Logger, recorder *metrics.Recorder) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/state", handler.State)
	mux.HandleFunc("/team", handler.Team)
	return middleware.LoggingMiddleware(logger, recorder, mux)
}
