package resolver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mikeladderbush/LED-Project/internal/domain/games"
	"github.com/mikeladderbush/LED-Project/internal/logging"
	"github.com/mikeladderbush/LED-Project/internal/metrics"
	"github.com/mikeladderbush/LED-Project/internal/providers"
	"github.com/mikeladderbush/LED-Project/internal/timeutil"
)

// DefaultHorizonDays bounds the next-game search when no horizon is given.
const DefaultHorizonDays = 60

// ErrHorizonExhausted means no game for the team was found within the horizon.
var ErrHorizonExhausted = errors.New("no game within search horizon")

// Future walks the daily schedule forward to find the team's next game.
type Future struct {
	feed     providers.ScoreboardProvider
	logger   *slog.Logger
	recorder *metrics.Recorder
}

func NewFuture(feed providers.ScoreboardProvider, logger *slog.Logger, recorder *metrics.Recorder) *Future {
	return &Future{feed: feed, logger: logger, recorder: recorder}
}

// FindNextGame checks horizonDays consecutive dates starting at start
// (inclusive) and returns the first game involving team. A day whose
// schedule cannot be fetched is skipped.
func (f *Future) FindNextGame(ctx context.Context, team string, start timeutil.Date, horizonDays int) (games.FutureGame, error) {
	if f == nil || f.feed == nil {
		return games.FutureGame{}, providers.ErrProviderUnavailable
	}
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}
	logger := scopedLogger(ctx, f.logger, logging.FieldTeam, team)

	day := start
	for i := 0; i < horizonDays; i++ {
		if err := ctx.Err(); err != nil {
			return games.FutureGame{}, err
		}

		list, err := f.feed.GamesOn(ctx, day)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return games.FutureGame{}, ctxErr
			}
			logging.Warn(logger, "daily schedule unavailable, skipping day", logging.FieldDate, day.String(), "error", err)
			list = nil
		}

		if g, ok := games.FindTeamGame(list, team); ok {
			f.recorder.RecordFutureSearch(i+1, true)
			next := games.NewFutureGame(day, g, team)
			logging.Debug(logger, "next game found", logging.FieldDate, day.String(), logging.FieldGameID, g.GameID)
			return next, nil
		}
		day = timeutil.AdvanceOneDay(day)
	}

	f.recorder.RecordFutureSearch(horizonDays, false)
	return games.FutureGame{}, fmt.Errorf("%w: %d days from %s", ErrHorizonExhausted, horizonDays, start)
}
