package testutil

import (
	"github.com/mikeladderbush/LED-Project/internal/domain/games"
)

// Score returns a pointer to v for TeamLine.Score.
func Score(v int) *int {
	return &v
}

// Team builds a team line; pass a nil score for a game without points yet.
func Team(city, name string, score *int) games.TeamLine {
	return games.TeamLine{TeamCity: city, TeamName: name, Score: score}
}

// LiveGame returns an in-progress game with both scores and a running clock.
func LiveGame(id string, home, away games.TeamLine, clock string) games.ScoreboardGame {
	return games.ScoreboardGame{
		GameID:    id,
		HomeTeam:  home,
		AwayTeam:  away,
		GameClock: clock,
	}
}

// ScheduledGame returns a game that has not started, with the given status and start time.
func ScheduledGame(id string, home, away games.TeamLine, status, et string) games.ScoreboardGame {
	return games.ScoreboardGame{
		GameID:         id,
		HomeTeam:       Team(home.TeamCity, home.TeamName, nil),
		AwayTeam:       Team(away.TeamCity, away.TeamName, nil),
		GameStatusText: status,
		GameEt:         et,
	}
}
