package server

import (
	"io"
	"log/slog"

	"github.com/mikeladderbush/LED-Project/internal/app/display"
	"github.com/mikeladderbush/LED-Project/internal/config"
	"github.com/mikeladderbush/LED-Project/internal/metrics"
	"github.com/mikeladderbush/LED-Project/internal/resolver"
	"github.com/mikeladderbush/LED-Project/internal/store"
)

// NewDisplay wires feeds, resolvers, renderer, and state store into a
// display service. The CLI uses it directly for one-shot commands.
func NewDisplay(cfg config.Config, out io.Writer, logger *slog.Logger, recorder *metrics.Recorder) *display.Service {
	f := newProviderFactory(logger, recorder).build(cfg)
	return display.NewService(
		display.Config{
			Team:        cfg.Team,
			Timezone:    cfg.Timezone,
			HorizonDays: cfg.HorizonDays,
		},
		display.Deps{
			Live:     resolver.NewLive(f.scoreboard, logger),
			Future:   resolver.NewFuture(f.scoreboard, logger, recorder),
			Clock:    f.clock,
			Renderer: selectRenderer(cfg, out, logger),
			Store:    store.NewMemoryStore(cfg.Team),
			Logger:   logger,
			Recorder: recorder,
		},
	)
}
