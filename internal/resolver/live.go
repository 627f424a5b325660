package resolver

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/mikeladderbush/LED-Project/internal/domain/games"
	"github.com/mikeladderbush/LED-Project/internal/logging"
	"github.com/mikeladderbush/LED-Project/internal/providers"
)

// LiveStatus tags the outcome of a live lookup.
type LiveStatus int

const (
	LiveFound LiveStatus = iota
	LiveFetchFailed
	LiveNoGameToday
	LiveNotLive
)

func (s LiveStatus) String() string {
	switch s {
	case LiveFound:
		return "found"
	case LiveFetchFailed:
		return "fetch_failed"
	case LiveNoGameToday:
		return "no_game_today"
	case LiveNotLive:
		return "not_live"
	default:
		return "unknown"
	}
}

// LiveResult is the tagged outcome of FetchTeamGame. Game is set only for
// LiveFound; Err only for LiveFetchFailed.
type LiveResult struct {
	Status LiveStatus
	Game   games.GameResult
	Err    error
}

// Live resolves the tracked team's in-progress game from today's feed.
type Live struct {
	feed   providers.ScoreboardProvider
	logger *slog.Logger
}

func NewLive(feed providers.ScoreboardProvider, logger *slog.Logger) *Live {
	return &Live{feed: feed, logger: logger}
}

// FetchTeamGame locates the first game in today's feed involving team and,
// when it has scores and a running clock, returns them.
func (l *Live) FetchTeamGame(ctx context.Context, team string) LiveResult {
	if l == nil || l.feed == nil {
		return LiveResult{Status: LiveFetchFailed, Err: providers.ErrProviderUnavailable}
	}
	logger := scopedLogger(ctx, l.logger, logging.FieldTeam, team)

	today, err := l.feed.TodaysGames(ctx)
	if err != nil {
		logging.Warn(logger, "today's scoreboard unavailable", "error", err)
		return LiveResult{Status: LiveFetchFailed, Err: err}
	}

	entry, ok := games.FindTeamGame(today, team)
	if !ok {
		logging.Debug(logger, "no game today", logging.FieldCount, len(today))
		return LiveResult{Status: LiveNoGameToday}
	}

	detail, err := l.feed.GameDetail(ctx, entry.GameID)
	switch {
	case errors.Is(err, providers.ErrGameNotFound):
		logging.Debug(logger, "game missing from live feed", logging.FieldGameID, entry.GameID)
		return LiveResult{Status: LiveNotLive}
	case err != nil:
		logging.Warn(logger, "live game detail unavailable", logging.FieldGameID, entry.GameID, "error", err)
		return LiveResult{Status: LiveFetchFailed, Err: err}
	}

	home, away := detail.HomeTeam.Score, detail.AwayTeam.Score
	if home == nil || away == nil || isZeroClock(detail.GameClock) {
		return LiveResult{Status: LiveNotLive}
	}

	opponent := detail.HomeTeam.TeamName
	isHome := detail.IsHome(team)
	if isHome {
		opponent = detail.AwayTeam.TeamName
	}
	return LiveResult{
		Status: LiveFound,
		Game: games.GameResult{
			GameID:    detail.GameID,
			HomeScore: *home,
			AwayScore: *away,
			Opponent:  opponent,
			Clock:     detail.GameClock,
			Home:      isHome,
		},
	}
}

// isZeroClock reports an absent clock or one that reads zero in either the
// ISO form (PT00M00.00S) or the m:ss form.
func isZeroClock(clock string) bool {
	clock = strings.TrimSpace(clock)
	if clock == "" {
		return true
	}
	for _, r := range clock {
		switch r {
		case '0', ':', '.', 'P', 'T', 'M', 'S':
		default:
			return false
		}
	}
	return true
}
