package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/mikeladderbush/LED-Project/internal/app/display"
	"github.com/mikeladderbush/LED-Project/internal/config"
	httpserver "github.com/mikeladderbush/LED-Project/internal/http"
	"github.com/mikeladderbush/LED-Project/internal/http/handlers"
	"github.com/mikeladderbush/LED-Project/internal/logging"
	"github.com/mikeladderbush/LED-Project/internal/metrics"
	"github.com/mikeladderbush/LED-Project/internal/poller"
)

var metricsSetup = metrics.Setup

// Poller is the slice of the polling loop the process lifecycle needs.
type Poller interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() poller.Status
}

// Server owns the poller and the status and metrics listeners for one process.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	display       *display.Service
	httpServer    httpServer
	metricsServer httpServer
	poller        Poller
	metricsStop   func(context.Context) error
}

// New constructs a server that draws to out, polls the configured feeds,
// and serves the status API when enabled.
func New(cfg config.Config, out io.Writer, logger *slog.Logger) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, nil)
	svc := NewDisplay(cfg, out, logger, recorder)
	return newServerWithDisplay(cfg, logger, recorder, svc, metricsSrv, metricsShutdown)
}

func newServerWithDisplay(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder, svc *display.Service, metricsSrv httpServer, metricsShutdown func(context.Context) error) *Server {
	plr := poller.New(svc, logger, recorder, cfg.PollInterval, cfg.MaxPollBackoff)

	var httpSrv httpServer
	if cfg.StatusServer {
		httpSrv = buildHTTPServer(cfg, svc, logger, recorder, plr)
	}

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		display:       svc,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		poller:        plr,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, svc *display.Service, httpSrv httpServer, plr Poller) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		display:    svc,
		httpServer: httpSrv,
		poller:     plr,
	}
}

func buildHTTPServer(cfg config.Config, svc *display.Service, logger *slog.Logger, recorder *metrics.Recorder, plr Poller) httpServer {
	var statusFn func() poller.Status
	if plr != nil {
		statusFn = plr.Status
	}

	handler := handlers.NewHandler(svc, logger, statusFn)
	return newStatusListener(cfg.Port, httpserver.NewRouter(handler, logger, recorder))
}

// Display exposes the display service (used by the CLI).
func (s *Server) Display() *display.Service {
	return s.display
}

// Run starts the poller and HTTP servers, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.poller.Start(ctx)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	if s.httpServer == nil {
		return
	}
	// A dead status listener ends the run.
	launchServer("status", s.httpServer, s.logger, func(error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.poller.Stop(shutdownCtx); err != nil {
		logging.Error(s.logger, "failed to stop poller", err)
	}

	shutdownListener(shutdownCtx, "status", s.httpServer, s.logger)
	shutdownListener(shutdownCtx, "metrics", s.metricsServer, s.logger)

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "error", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = newScrapeListener(recCfg.Port, handler)
	}

	return rec, metricsSrv, shutdown
}

// Handler exposes the status HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Handler()
}
