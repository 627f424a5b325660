package providers

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mikeladderbush/LED-Project/internal/domain/games"
	"github.com/mikeladderbush/LED-Project/internal/metrics"
	"github.com/mikeladderbush/LED-Project/internal/testutil"
	"github.com/mikeladderbush/LED-Project/internal/timeutil"
)

type fakeScoreboard struct {
	today     []games.ScoreboardGame
	detailErr error
	dailyErr  error
}

func (f *fakeScoreboard) TodaysGames(ctx context.Context) ([]games.ScoreboardGame, error) {
	return f.today, nil
}

func (f *fakeScoreboard) GameDetail(ctx context.Context, gameID string) (games.ScoreboardGame, error) {
	return games.ScoreboardGame{GameID: gameID}, f.detailErr
}

func (f *fakeScoreboard) GamesOn(ctx context.Context, date timeutil.Date) ([]games.ScoreboardGame, error) {
	return nil, f.dailyErr
}

type fakeDate struct {
	date timeutil.Date
	err  error
}

func (f fakeDate) CurrentDate(ctx context.Context, tz string) (timeutil.Date, error) {
	return f.date, f.err
}

func TestInstrumentedScoreboardRecordsAttempts(t *testing.T) {
	rec := metrics.NewRecorder()
	logger, buf := testutil.NewBufferLogger()
	inner := &fakeScoreboard{
		today:    []games.ScoreboardGame{{GameID: "1"}},
		dailyErr: FetchFailed(FeedDaily, 500, nil),
	}
	p := NewInstrumentedScoreboard(inner, logger, rec)

	if list, err := p.TodaysGames(context.Background()); err != nil || len(list) != 1 {
		t.Fatalf("expected passthrough, got %v %v", list, err)
	}
	if _, err := p.GamesOn(context.Background(), timeutil.NewDate(2024, 1, 1)); !errors.Is(err, ErrFetchFailed) {
		t.Fatalf("expected fetch failure passthrough, got %v", err)
	}

	if got := rec.FeedCalls(FeedLive); got != 1 {
		t.Fatalf("expected 1 live call, got %d", got)
	}
	if got := rec.FeedErrors(FeedDaily); got != 1 {
		t.Fatalf("expected 1 daily error, got %d", got)
	}
	if !strings.Contains(buf.String(), "feed fetch failed") || !strings.Contains(buf.String(), "feed=nba-daily") {
		t.Fatalf("expected warning log with feed name, got %s", buf.String())
	}
}

func TestInstrumentedScoreboardTreatsMissingGameAsSuccess(t *testing.T) {
	rec := metrics.NewRecorder()
	p := NewInstrumentedScoreboard(&fakeScoreboard{detailErr: ErrGameNotFound}, nil, rec)

	if _, err := p.GameDetail(context.Background(), "x"); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("expected ErrGameNotFound, got %v", err)
	}
	if got := rec.FeedErrors(FeedLive); got != 0 {
		t.Fatalf("expected missing game not counted as error, got %d", got)
	}
}

func TestInstrumentedProvidersHandleNilInner(t *testing.T) {
	sb := NewInstrumentedScoreboard(nil, nil, nil)
	if _, err := sb.TodaysGames(context.Background()); !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
	dp := NewInstrumentedDate(nil, nil, nil)
	if _, err := dp.CurrentDate(context.Background(), "UTC"); !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestInstrumentedDateRecordsAttempt(t *testing.T) {
	rec := metrics.NewRecorder()
	p := NewInstrumentedDate(fakeDate{date: timeutil.NewDate(2024, 2, 28)}, nil, rec)

	d, err := p.CurrentDate(context.Background(), "America/New_York")
	if err != nil || d != timeutil.NewDate(2024, 2, 28) {
		t.Fatalf("unexpected result %s %v", d, err)
	}
	if got := rec.FeedCalls(FeedTime); got != 1 {
		t.Fatalf("expected 1 time call, got %d", got)
	}
}
