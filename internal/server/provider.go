package server

import (
	"log/slog"
	"net/http"

	"github.com/mikeladderbush/LED-Project/internal/config"
	"github.com/mikeladderbush/LED-Project/internal/providers"
	"github.com/mikeladderbush/LED-Project/internal/providers/fixture"
	"github.com/mikeladderbush/LED-Project/internal/providers/nba"
	"github.com/mikeladderbush/LED-Project/internal/providers/worldtime"
)

// feeds groups the upstream collaborators one resolution pass needs.
type feeds struct {
	scoreboard providers.ScoreboardProvider
	clock      providers.DateProvider
}

func selectFeeds(cfg config.Config, client *http.Client, logger *slog.Logger) feeds {
	switch normalizeProviderName(cfg.Provider) {
	case providerNBA:
		return feeds{
			scoreboard: nba.NewClient(nba.Config{
				LiveURL:      cfg.Feeds.LiveURL,
				DailyBaseURL: cfg.Feeds.DailyBaseURL,
				HTTPClient:   client,
				Timeout:      cfg.RequestTimeout,
			}),
			clock: worldtime.NewClient(worldtime.Config{
				BaseURL:    cfg.Feeds.WorldTimeURL,
				HTTPClient: client,
				Timeout:    cfg.RequestTimeout,
			}),
		}
	case providerFixture:
		fx := fixture.New(cfg.Timezone)
		return feeds{scoreboard: fx, clock: fx}
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		fx := fixture.New(cfg.Timezone)
		return feeds{scoreboard: fx, clock: fx}
	}
}
