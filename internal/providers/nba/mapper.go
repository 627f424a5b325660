package nba

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mikeladderbush/LED-Project/internal/domain/games"
)

func mapGames(list []gameResponse) []games.ScoreboardGame {
	out := make([]games.ScoreboardGame, 0, len(list))
	for _, g := range list {
		out = append(out, mapGame(g))
	}
	return out
}

func mapGame(g gameResponse) games.ScoreboardGame {
	return games.ScoreboardGame{
		GameID:         g.GameID,
		HomeTeam:       mapTeam(g.HomeTeam),
		AwayTeam:       mapTeam(g.AwayTeam),
		GameClock:      NormalizeClock(g.GameClock),
		GameStatusText: strings.TrimSpace(g.GameStatusText),
		GameEt:         strings.TrimSpace(g.GameEt),
	}
}

func mapTeam(t teamResponse) games.TeamLine {
	return games.TeamLine{
		TeamName: t.TeamName,
		TeamCity: t.TeamCity,
		Score:    t.Score.Ptr(),
	}
}

var isoClock = regexp.MustCompile(`^PT(?:(\d+)M)?(?:(\d+)(?:\.\d+)?S)?$`)

// NormalizeClock converts the live feed's ISO-8601 clock ("PT05M30.00S")
// to "5:30". Values in any other form are returned trimmed.
func NormalizeClock(raw string) string {
	raw = strings.TrimSpace(raw)
	m := isoClock.FindStringSubmatch(raw)
	if m == nil || raw == "PT" {
		return raw
	}
	minutes, _ := strconv.Atoi(m[1])
	seconds, _ := strconv.Atoi(m[2])
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}
