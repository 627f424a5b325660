package providers

import (
	"context"

	"github.com/mikeladderbush/LED-Project/internal/domain/games"
	"github.com/mikeladderbush/LED-Project/internal/timeutil"
)

// Feed names used in logs, metrics, and FeedError.
const (
	FeedLive  = "nba-live"
	FeedDaily = "nba-daily"
	FeedTime  = "worldtime"
)

// ScoreboardProvider fetches scoreboard feeds. Each call performs exactly one upstream request.
type ScoreboardProvider interface {
	// TodaysGames returns the live feed's game list in feed order.
	TodaysGames(ctx context.Context) ([]games.ScoreboardGame, error)
	// GameDetail returns the live feed entry for gameID, or ErrGameNotFound.
	GameDetail(ctx context.Context, gameID string) (games.ScoreboardGame, error)
	// GamesOn returns the schedule for a specific calendar day.
	GamesOn(ctx context.Context, date timeutil.Date) ([]games.ScoreboardGame, error)
}

// DateProvider reports today's date in an IANA timezone.
type DateProvider interface {
	CurrentDate(ctx context.Context, tz string) (timeutil.Date, error)
}
