package render

import (
	"log/slog"

	"github.com/mikeladderbush/LED-Project/internal/domain/games"
	"github.com/mikeladderbush/LED-Project/internal/logging"
)

// Log records frames as structured log lines; used when no display is attached.
type Log struct {
	logger *slog.Logger
}

func NewLog(logger *slog.Logger) *Log {
	return &Log{logger: logger}
}

func (l *Log) RenderLive(res games.GameResult) {
	logging.Info(l.logger, "render live",
		logging.FieldGameID, res.GameID,
		"home_score", res.HomeScore,
		"away_score", res.AwayScore,
		"opponent", res.Opponent,
		"clock", res.Clock,
		"home", res.Home,
	)
}

func (l *Log) RenderFuture(date, tipInfo, location, opponent string) {
	logging.Info(l.logger, "render upcoming",
		logging.FieldDate, date,
		"tip", tipInfo,
		"location", location,
		"opponent", opponent,
	)
}

func (l *Log) RenderPlaceholder(team string) {
	logging.Info(l.logger, "render placeholder",
		logging.FieldTeam, team,
		"opponent", PlaceholderOpponent,
		"clock", PlaceholderClock,
	)
}
