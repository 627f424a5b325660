package nba

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mikeladderbush/LED-Project/internal/domain/games"
	"github.com/mikeladderbush/LED-Project/internal/providers"
	"github.com/mikeladderbush/LED-Project/internal/timeutil"
)

var errMissingGames = errors.New("payload has no games list")

// Config controls how the client reaches the NBA feeds.
type Config struct {
	LiveURL      string
	DailyBaseURL string
	HTTPClient   *http.Client
	// Timeout bounds each request; defaults to 5s.
	Timeout time.Duration
}

// Client reads the NBA live and per-day scoreboard feeds.
type Client struct {
	liveURL      string
	dailyBaseURL string
	httpClient   httpDoer
	timeout      time.Duration
}

// NewClient constructs an NBA feed client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		liveURL:      normalizeURL(cfg.LiveURL, defaultLiveURL),
		dailyBaseURL: normalizeURL(cfg.DailyBaseURL, defaultDailyBaseURL),
		httpClient:   resolveHTTPClient(cfg.HTTPClient),
		timeout:      resolveTimeout(cfg.Timeout),
	}
}

// TodaysGames fetches the live scoreboard snapshot.
func (c *Client) TodaysGames(ctx context.Context) ([]games.ScoreboardGame, error) {
	var payload scoreboardResponse
	if err := c.getJSON(ctx, providers.FeedLive, c.liveURL, &payload); err != nil {
		return nil, err
	}
	if !payload.hasGames() {
		return nil, providers.ParseFailed(providers.FeedLive, errMissingGames)
	}
	return mapGames(payload.games()), nil
}

// GameDetail fetches the live scoreboard again and returns the entry for gameID.
func (c *Client) GameDetail(ctx context.Context, gameID string) (games.ScoreboardGame, error) {
	list, err := c.TodaysGames(ctx)
	if err != nil {
		return games.ScoreboardGame{}, err
	}
	if g, ok := games.FindGameByID(list, gameID); ok {
		return g, nil
	}
	return games.ScoreboardGame{}, providers.ErrGameNotFound
}

// GamesOn fetches the schedule for a single day.
func (c *Client) GamesOn(ctx context.Context, date timeutil.Date) ([]games.ScoreboardGame, error) {
	url := fmt.Sprintf("%s/%s/scoreboard.json", c.dailyBaseURL, date.Compact())
	var payload scoreboardResponse
	if err := c.getJSON(ctx, providers.FeedDaily, url, &payload); err != nil {
		return nil, err
	}
	if !payload.hasGames() {
		return nil, providers.ParseFailed(providers.FeedDaily, errMissingGames)
	}
	return mapGames(payload.games()), nil
}

func (c *Client) getJSON(ctx context.Context, feed, url string, dest any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return providers.FetchFailed(feed, 0, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return providers.FetchFailed(feed, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return providers.FetchFailed(feed, resp.StatusCode, fmt.Errorf("unexpected status: %s", strings.TrimSpace(string(body))))
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return providers.ParseFailed(feed, err)
	}
	return nil
}
