package providers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/mikeladderbush/LED-Project/internal/domain/games"
	"github.com/mikeladderbush/LED-Project/internal/logging"
	"github.com/mikeladderbush/LED-Project/internal/metrics"
	"github.com/mikeladderbush/LED-Project/internal/timeutil"
)

// instrumentedScoreboard records latency and failures for every feed call.
// It never retries: a failed fetch is reported once per call.
type instrumentedScoreboard struct {
	next    ScoreboardProvider
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewInstrumentedScoreboard wraps next with metrics and debug logging.
func NewInstrumentedScoreboard(next ScoreboardProvider, logger *slog.Logger, recorder *metrics.Recorder) ScoreboardProvider {
	return &instrumentedScoreboard{next: next, logger: logger, metrics: recorder}
}

func (p *instrumentedScoreboard) TodaysGames(ctx context.Context) ([]games.ScoreboardGame, error) {
	if p.next == nil {
		return nil, ErrProviderUnavailable
	}
	start := time.Now()
	list, err := p.next.TodaysGames(ctx)
	p.observe(ctx, FeedLive, start, err, slog.Int(logging.FieldCount, len(list)))
	return list, err
}

func (p *instrumentedScoreboard) GameDetail(ctx context.Context, gameID string) (games.ScoreboardGame, error) {
	if p.next == nil {
		return games.ScoreboardGame{}, ErrProviderUnavailable
	}
	start := time.Now()
	game, err := p.next.GameDetail(ctx, gameID)
	p.observe(ctx, FeedLive, start, err, slog.String(logging.FieldGameID, gameID))
	return game, err
}

func (p *instrumentedScoreboard) GamesOn(ctx context.Context, date timeutil.Date) ([]games.ScoreboardGame, error) {
	if p.next == nil {
		return nil, ErrProviderUnavailable
	}
	start := time.Now()
	list, err := p.next.GamesOn(ctx, date)
	p.observe(ctx, FeedDaily, start, err,
		slog.String(logging.FieldDate, date.String()),
		slog.Int(logging.FieldCount, len(list)),
	)
	return list, err
}

func (p *instrumentedScoreboard) observe(ctx context.Context, feed string, start time.Time, err error, attrs ...slog.Attr) {
	observe(ctx, p.logger, p.metrics, feed, start, err, attrs...)
}

type instrumentedDate struct {
	next    DateProvider
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewInstrumentedDate wraps a DateProvider with metrics and debug logging.
func NewInstrumentedDate(next DateProvider, logger *slog.Logger, recorder *metrics.Recorder) DateProvider {
	return &instrumentedDate{next: next, logger: logger, metrics: recorder}
}

func (p *instrumentedDate) CurrentDate(ctx context.Context, tz string) (timeutil.Date, error) {
	if p.next == nil {
		return timeutil.Date{}, ErrProviderUnavailable
	}
	start := time.Now()
	date, err := p.next.CurrentDate(ctx, tz)
	observe(ctx, p.logger, p.metrics, FeedTime, start, err, slog.String(logging.FieldTimezone, tz))
	return date, err
}

func observe(ctx context.Context, logger *slog.Logger, recorder *metrics.Recorder, feed string, start time.Time, err error, attrs ...slog.Attr) {
	duration := time.Since(start)
	// A missing game id is a normal outcome, not a feed failure.
	failed := err != nil && !isNotFound(err)
	if recorder != nil {
		var recErr error
		if failed {
			recErr = err
		}
		recorder.RecordFeedAttempt(feed, duration, recErr)
	}
	logger = logging.FromContext(ctx, logger)
	if logger == nil {
		return
	}
	attrs = append(attrs,
		slog.String(logging.FieldFeed, feed),
		slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
	)
	if failed {
		logger.LogAttrs(ctx, slog.LevelWarn, "feed fetch failed", append(attrs, slog.Any("error", err))...)
		return
	}
	logger.LogAttrs(ctx, slog.LevelDebug, "feed fetched", attrs...)
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrGameNotFound)
}
