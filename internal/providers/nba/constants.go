package nba

import "time"

const (
	defaultLiveURL      = "https://cdn.nba.com/static/json/liveData/scoreboard/todaysScoreboard_00.json"
	defaultDailyBaseURL = "https://data.nba.net/data/10s/prod/v1"
	defaultHTTPTimeout  = 10 * time.Second
	defaultTimeout      = 5 * time.Second
	errorBodyLimit      = 512
)
