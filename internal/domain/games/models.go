package games

import (
	"fmt"
	"strings"

	"github.com/mikeladderbush/LED-Project/internal/timeutil"
)

// TeamLine is one side of a scoreboard entry.
type TeamLine struct {
	TeamName string `json:"teamName"`
	TeamCity string `json:"teamCity"`
	// Score is nil when the feed omits it or reports null.
	Score *int `json:"score"`
}

// FullName joins city and name, e.g. "Boston Celtics".
func (t TeamLine) FullName() string {
	return strings.TrimSpace(fmt.Sprintf("%s %s", t.TeamCity, t.TeamName))
}

// ScoreboardGame is a single game parsed from a scoreboard feed.
type ScoreboardGame struct {
	GameID         string   `json:"gameId"`
	HomeTeam       TeamLine `json:"homeTeam"`
	AwayTeam       TeamLine `json:"awayTeam"`
	GameClock      string   `json:"gameClock"`
	GameStatusText string   `json:"gameStatusText,omitempty"`
	GameEt         string   `json:"gameEt,omitempty"`
}

// Involves reports whether team plays on either side of the game.
func (g ScoreboardGame) Involves(team string) bool {
	return g.HomeTeam.TeamName == team || g.AwayTeam.TeamName == team
}

// IsHome reports whether team is the home side.
func (g ScoreboardGame) IsHome(team string) bool {
	return g.HomeTeam.TeamName == team
}

// FindTeamGame returns the first game in feed order involving team.
func FindTeamGame(list []ScoreboardGame, team string) (ScoreboardGame, bool) {
	for _, g := range list {
		if g.Involves(team) {
			return g, true
		}
	}
	return ScoreboardGame{}, false
}

// FindGameByID returns the game with the given id.
func FindGameByID(list []ScoreboardGame, id string) (ScoreboardGame, bool) {
	for _, g := range list {
		if g.GameID == id {
			return g, true
		}
	}
	return ScoreboardGame{}, false
}

// GameResult is the live score for the tracked team's game.
type GameResult struct {
	GameID    string `json:"gameId"`
	HomeScore int    `json:"homeScore"`
	AwayScore int    `json:"awayScore"`
	Opponent  string `json:"opponent"`
	Clock     string `json:"clock"`
	// Home is true when the tracked team is the home side.
	Home bool `json:"home"`
}

// Location says which side the tracked team occupies.
type Location string

const (
	LocationHome Location = "home"
	LocationAway Location = "away"
)

// TipTBD is reported when a scheduled game carries no status or start time.
const TipTBD = "TBD"

// FutureGame is the next scheduled game for the tracked team.
type FutureGame struct {
	Date     timeutil.Date `json:"date"`
	TipInfo  string        `json:"tipInfo"`
	Location Location      `json:"location"`
	Opponent string        `json:"opponent"`
}

// NewFutureGame derives a FutureGame for team from a daily feed entry.
func NewFutureGame(date timeutil.Date, g ScoreboardGame, team string) FutureGame {
	loc := LocationAway
	opp := g.HomeTeam
	if g.IsHome(team) {
		loc = LocationHome
		opp = g.AwayTeam
	}
	return FutureGame{
		Date:     date,
		TipInfo:  TipInfo(g),
		Location: loc,
		Opponent: opp.FullName(),
	}
}

// TipInfo picks status text, then scheduled time, then TBD.
func TipInfo(g ScoreboardGame) string {
	if s := strings.TrimSpace(g.GameStatusText); s != "" {
		return s
	}
	if s := strings.TrimSpace(g.GameEt); s != "" {
		return s
	}
	return TipTBD
}
