package resolver

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikeladderbush/LED-Project/internal/domain/games"
	"github.com/mikeladderbush/LED-Project/internal/providers"
	"github.com/mikeladderbush/LED-Project/internal/testutil"
)

func liveFeed(detail games.ScoreboardGame) *testutil.StubScoreboard {
	return &testutil.StubScoreboard{
		Today: []games.ScoreboardGame{
			testutil.ScheduledGame("other", testutil.Team("Golden State", "Warriors", nil), testutil.Team("Miami", "Heat", nil), "", ""),
			{GameID: detail.GameID, HomeTeam: detail.HomeTeam, AwayTeam: detail.AwayTeam},
		},
		Detail:      map[string]games.ScoreboardGame{detail.GameID: detail},
		NotFoundErr: providers.ErrGameNotFound,
	}
}

func TestFetchTeamGameFound(t *testing.T) {
	tests := []struct {
		name     string
		team     string
		wantHome bool
		wantOpp  string
	}{
		{name: "tracked team at home", team: "Celtics", wantHome: true, wantOpp: "Knicks"},
		{name: "tracked team away", team: "Knicks", wantHome: false, wantOpp: "Celtics"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detail := testutil.LiveGame("g1",
				testutil.Team("Boston", "Celtics", testutil.Score(50)),
				testutil.Team("New York", "Knicks", testutil.Score(47)),
				"5:30")
			live := NewLive(liveFeed(detail), nil)

			res := live.FetchTeamGame(context.Background(), tt.team)

			require.Equal(t, LiveFound, res.Status)
			assert.Equal(t, 50, res.Game.HomeScore)
			assert.Equal(t, 47, res.Game.AwayScore)
			assert.Equal(t, tt.wantOpp, res.Game.Opponent)
			assert.Equal(t, "5:30", res.Game.Clock)
			assert.Equal(t, tt.wantHome, res.Game.Home)
			assert.NoError(t, res.Err)
		})
	}
}

func TestFetchTeamGameFetchFailures(t *testing.T) {
	boom := providers.FetchFailed(providers.FeedLive, 503, nil)

	feed := &testutil.StubScoreboard{TodayErr: boom}
	res := NewLive(feed, nil).FetchTeamGame(context.Background(), "Celtics")
	require.Equal(t, LiveFetchFailed, res.Status)
	assert.ErrorIs(t, res.Err, providers.ErrFetchFailed)
	assert.Zero(t, feed.DetailCalls)

	detail := testutil.LiveGame("g1", testutil.Team("Boston", "Celtics", testutil.Score(1)), testutil.Team("New York", "Knicks", testutil.Score(2)), "1:00")
	feed = liveFeed(detail)
	feed.DetailErr = providers.ParseFailed(providers.FeedLive, errors.New("bad json"))
	res = NewLive(feed, nil).FetchTeamGame(context.Background(), "Celtics")
	require.Equal(t, LiveFetchFailed, res.Status)
	assert.ErrorIs(t, res.Err, providers.ErrParseFailed)
}

func TestFetchTeamGameNoGameToday(t *testing.T) {
	feed := &testutil.StubScoreboard{Today: []games.ScoreboardGame{
		testutil.LiveGame("g1", testutil.Team("Boston", "Celtics", testutil.Score(1)), testutil.Team("New York", "Knicks", testutil.Score(2)), "1:00"),
	}}

	res := NewLive(feed, nil).FetchTeamGame(context.Background(), "Lakers")

	assert.Equal(t, LiveNoGameToday, res.Status)
	assert.Zero(t, feed.DetailCalls)
}

func TestFetchTeamGameNotLive(t *testing.T) {
	celtics := testutil.Team("Boston", "Celtics", testutil.Score(10))
	knicks := testutil.Team("New York", "Knicks", testutil.Score(8))

	tests := []struct {
		name   string
		detail games.ScoreboardGame
	}{
		{name: "missing home score", detail: testutil.LiveGame("g1", testutil.Team("Boston", "Celtics", nil), knicks, "5:00")},
		{name: "missing away score", detail: testutil.LiveGame("g1", celtics, testutil.Team("New York", "Knicks", nil), "5:00")},
		{name: "empty clock", detail: testutil.LiveGame("g1", celtics, knicks, "")},
		{name: "blank clock", detail: testutil.LiveGame("g1", celtics, knicks, "  ")},
		{name: "zero clock", detail: testutil.LiveGame("g1", celtics, knicks, "0:00")},
		{name: "zero padded clock", detail: testutil.LiveGame("g1", celtics, knicks, "00:00")},
		{name: "zero iso clock", detail: testutil.LiveGame("g1", celtics, knicks, "PT00M00.00S")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := NewLive(liveFeed(tt.detail), nil).FetchTeamGame(context.Background(), "Celtics")
			assert.Equal(t, LiveNotLive, res.Status)
			assert.Equal(t, games.GameResult{}, res.Game)
		})
	}
}

func TestFetchTeamGameMissingFromLiveFeedIsNotLive(t *testing.T) {
	detail := testutil.LiveGame("g1", testutil.Team("Boston", "Celtics", testutil.Score(1)), testutil.Team("New York", "Knicks", testutil.Score(2)), "1:00")
	feed := liveFeed(detail)
	feed.Detail = nil

	res := NewLive(feed, nil).FetchTeamGame(context.Background(), "Celtics")

	assert.Equal(t, LiveNotLive, res.Status)
	assert.NoError(t, res.Err)
}

func TestFetchTeamGameUsesFirstMatch(t *testing.T) {
	first := testutil.LiveGame("first", testutil.Team("Boston", "Celtics", testutil.Score(3)), testutil.Team("New York", "Knicks", testutil.Score(4)), "2:00")
	second := testutil.LiveGame("second", testutil.Team("Miami", "Heat", testutil.Score(9)), testutil.Team("Boston", "Celtics", testutil.Score(9)), "9:00")
	feed := &testutil.StubScoreboard{
		Today:  []games.ScoreboardGame{first, second},
		Detail: map[string]games.ScoreboardGame{"first": first, "second": second},
	}

	res := NewLive(feed, nil).FetchTeamGame(context.Background(), "Celtics")

	require.Equal(t, LiveFound, res.Status)
	assert.Equal(t, "first", res.Game.GameID)
	assert.Equal(t, 1, feed.DetailCalls)
}

func TestFetchTeamGameWithoutProvider(t *testing.T) {
	res := NewLive(nil, nil).FetchTeamGame(context.Background(), "Celtics")
	assert.Equal(t, LiveFetchFailed, res.Status)
	assert.ErrorIs(t, res.Err, providers.ErrProviderUnavailable)
}

func TestLiveStatusString(t *testing.T) {
	assert.Equal(t, "found", LiveFound.String())
	assert.Equal(t, "fetch_failed", LiveFetchFailed.String())
	assert.Equal(t, "no_game_today", LiveNoGameToday.String())
	assert.Equal(t, "not_live", LiveNotLive.String())
	assert.Equal(t, "unknown", LiveStatus(42).String())
}

func TestIsZeroClock(t *testing.T) {
	for _, c := range []string{"", " ", "0:00", "00:00", "PT00M00.00S", "PT0M0S"} {
		assert.True(t, isZeroClock(c), c)
	}
	for _, c := range []string{"5:30", "0:01", "PT00M00.10S", "Half"} {
		assert.False(t, isZeroClock(c), c)
	}
}
