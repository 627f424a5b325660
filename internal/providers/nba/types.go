package nba

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// scoreboardResponse covers both feed shapes: {"scoreboard":{"games":[...]}}
// and the flat {"games":[...]}.
type scoreboardResponse struct {
	Scoreboard *scoreboardBody `json:"scoreboard"`
	Games      []gameResponse  `json:"games"`
}

type scoreboardBody struct {
	GameDate string         `json:"gameDate"`
	Games    []gameResponse `json:"games"`
}

func (r scoreboardResponse) hasGames() bool {
	return r.Scoreboard != nil || r.Games != nil
}

func (r scoreboardResponse) games() []gameResponse {
	if r.Scoreboard != nil && r.Scoreboard.Games != nil {
		return r.Scoreboard.Games
	}
	return r.Games
}

type gameResponse struct {
	GameID         string       `json:"gameId"`
	GameStatus     int          `json:"gameStatus"`
	GameStatusText string       `json:"gameStatusText"`
	GameClock      string       `json:"gameClock"`
	GameEt         string       `json:"gameEt"`
	Period         int          `json:"period"`
	HomeTeam       teamResponse `json:"homeTeam"`
	AwayTeam       teamResponse `json:"awayTeam"`
}

type teamResponse struct {
	TeamID      int        `json:"teamId"`
	TeamName    string     `json:"teamName"`
	TeamCity    string     `json:"teamCity"`
	TeamTricode string     `json:"teamTricode"`
	Score       scoreValue `json:"score"`
}

// scoreValue accepts a JSON number, a numeric string, null, or an empty
// string. Absent and blank values stay unset rather than becoming zero.
type scoreValue struct {
	value *int
}

func (s *scoreValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		s.value = nil
		return nil
	}
	raw := string(b)
	if b[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		raw = strings.TrimSpace(str)
		if raw == "" {
			s.value = nil
			return nil
		}
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil {
			return fmt.Errorf("nba: invalid score %q", raw)
		}
		n = int(f)
	}
	s.value = &n
	return nil
}

// Ptr returns the parsed score or nil.
func (s scoreValue) Ptr() *int {
	return s.value
}
