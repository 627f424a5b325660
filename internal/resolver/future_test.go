package resolver

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikeladderbush/LED-Project/internal/domain/games"
	"github.com/mikeladderbush/LED-Project/internal/metrics"
	"github.com/mikeladderbush/LED-Project/internal/providers"
	"github.com/mikeladderbush/LED-Project/internal/testutil"
	"github.com/mikeladderbush/LED-Project/internal/timeutil"
)

var (
	celtics = testutil.Team("Boston", "Celtics", nil)
	heat    = testutil.Team("Miami", "Heat", nil)
	lakers  = testutil.Team("Los Angeles", "Lakers", nil)
)

func schedule(entries map[timeutil.Date][]games.ScoreboardGame) *testutil.StubScoreboard {
	return &testutil.StubScoreboard{Days: entries}
}

func TestFindNextGameAcrossLeapDay(t *testing.T) {
	start := testutil.MustDate(2024, 2, 28)
	target := testutil.MustDate(2024, 3, 1)
	feed := schedule(map[timeutil.Date][]games.ScoreboardGame{
		target: {testutil.ScheduledGame("g1", heat, celtics, "7:30 pm ET", "2024-03-01T19:30:00")},
	})

	got, err := NewFuture(feed, nil, nil).FindNextGame(context.Background(), "Celtics", start, 60)

	require.NoError(t, err)
	assert.Equal(t, target, got.Date)
	assert.Equal(t, games.LocationAway, got.Location)
	assert.Equal(t, "Miami Heat", got.Opponent)
	assert.Equal(t, "7:30 pm ET", got.TipInfo)
	assert.Equal(t, []timeutil.Date{start, testutil.MustDate(2024, 2, 29), target}, feed.Fetched())
}

func TestFindNextGameStartDateIsInclusive(t *testing.T) {
	start := testutil.MustDate(2024, 1, 10)
	feed := schedule(map[timeutil.Date][]games.ScoreboardGame{
		start: {testutil.ScheduledGame("g1", celtics, lakers, "", "")},
	})

	got, err := NewFuture(feed, nil, nil).FindNextGame(context.Background(), "Celtics", start, 5)

	require.NoError(t, err)
	assert.Equal(t, start, got.Date)
	assert.Equal(t, games.LocationHome, got.Location)
	assert.Equal(t, "Los Angeles Lakers", got.Opponent)
	assert.Equal(t, games.TipTBD, got.TipInfo)
	assert.Len(t, feed.Fetched(), 1)
}

func TestFindNextGameTipInfoFallsBackToStartTime(t *testing.T) {
	start := testutil.MustDate(2024, 1, 10)
	feed := schedule(map[timeutil.Date][]games.ScoreboardGame{
		start: {testutil.ScheduledGame("g1", celtics, lakers, "  ", "2024-01-10T19:00:00")},
	})

	got, err := NewFuture(feed, nil, nil).FindNextGame(context.Background(), "Celtics", start, 1)

	require.NoError(t, err)
	assert.Equal(t, "2024-01-10T19:00:00", got.TipInfo)
}

func TestFindNextGameSkipsFailedDays(t *testing.T) {
	start := testutil.MustDate(2023, 12, 31)
	next := testutil.MustDate(2024, 1, 1)
	feed := schedule(map[timeutil.Date][]games.ScoreboardGame{
		start: {testutil.ScheduledGame("g0", celtics, lakers, "", "")},
		next:  {testutil.ScheduledGame("g1", lakers, celtics, "Final", "")},
	})
	feed.DayErrs = map[timeutil.Date]error{start: providers.FetchFailed(providers.FeedDaily, 404, nil)}
	logger, buf := testutil.NewBufferLogger()

	got, err := NewFuture(feed, logger, nil).FindNextGame(context.Background(), "Celtics", start, 3)

	require.NoError(t, err)
	assert.Equal(t, next, got.Date)
	assert.Contains(t, buf.String(), "skipping day")
}

func TestFindNextGameHorizonExhausted(t *testing.T) {
	start := testutil.MustDate(2024, 1, 1)
	feed := schedule(map[timeutil.Date][]games.ScoreboardGame{
		testutil.MustDate(2024, 1, 6): {testutil.ScheduledGame("late", celtics, heat, "", "")},
	})
	rec := metrics.NewRecorder()

	_, err := NewFuture(feed, nil, rec).FindNextGame(context.Background(), "Celtics", start, 5)

	require.ErrorIs(t, err, ErrHorizonExhausted)
	assert.Len(t, feed.Fetched(), 5)
}

func TestFindNextGameDefaultsHorizon(t *testing.T) {
	feed := schedule(nil)

	_, err := NewFuture(feed, nil, nil).FindNextGame(context.Background(), "Celtics", testutil.MustDate(2024, 1, 1), 0)

	require.ErrorIs(t, err, ErrHorizonExhausted)
	assert.Len(t, feed.Fetched(), DefaultHorizonDays)
}

func TestFindNextGameStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	feed := schedule(nil)

	_, err := NewFuture(feed, nil, nil).FindNextGame(ctx, "Celtics", testutil.MustDate(2024, 1, 1), 10)

	require.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, feed.Fetched())
}

func TestFindNextGameWithoutProvider(t *testing.T) {
	_, err := NewFuture(nil, nil, nil).FindNextGame(context.Background(), "Celtics", testutil.MustDate(2024, 1, 1), 1)
	assert.ErrorIs(t, err, providers.ErrProviderUnavailable)
}
