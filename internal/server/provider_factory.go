package server

import (
	"log/slog"
	"time"

	"github.com/mikeladderbush/LED-Project/internal/config"
	"github.com/mikeladderbush/LED-Project/internal/metrics"
	"github.com/mikeladderbush/LED-Project/internal/providers"
)

// providerFactory assembles the feeds with a shared HTTP client and instrumentation.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) feeds {
	client := providers.NewHTTPClient(clientTimeout(cfg))
	base := selectFeeds(cfg, client, f.logger)
	return feeds{
		scoreboard: providers.NewInstrumentedScoreboard(base.scoreboard, f.logger, f.metrics),
		clock:      providers.NewInstrumentedDate(base.clock, f.logger, f.metrics),
	}
}

// clientTimeout is the shared client's backstop. Feeds bound each request by
// cfg.RequestTimeout through the context, so the client gets twice that.
func clientTimeout(cfg config.Config) time.Duration {
	if cfg.RequestTimeout <= 0 {
		return 0
	}
	return 2 * cfg.RequestTimeout
}
