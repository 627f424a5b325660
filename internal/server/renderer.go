package server

import (
	"io"
	"log/slog"
	"strings"

	"github.com/mikeladderbush/LED-Project/internal/config"
	"github.com/mikeladderbush/LED-Project/internal/render"
)

const (
	rendererTerminal = "terminal"
	rendererLog      = "log"
	rendererBoth     = "both"
)

func selectRenderer(cfg config.Config, out io.Writer, logger *slog.Logger) render.Renderer {
	switch strings.ToLower(strings.TrimSpace(cfg.Renderer)) {
	case rendererTerminal, "":
		return render.NewTerminal(out, cfg.Team)
	case rendererLog:
		return render.NewLog(logger)
	case rendererBoth:
		return render.Multi{render.NewTerminal(out, cfg.Team), render.NewLog(logger)}
	default:
		if logger != nil {
			logger.Warn("unknown renderer, falling back to log", slog.String("renderer", cfg.Renderer))
		}
		return render.NewLog(logger)
	}
}
