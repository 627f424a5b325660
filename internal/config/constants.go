package config

import "time"

const (
	envTeam           = "TEAM_NAME"
	envTimezone       = "TIMEZONE"
	envPollInterval   = "POLL_INTERVAL"
	envHorizonDays    = "HORIZON_DAYS"
	envRequestTimeout = "REQUEST_TIMEOUT"
	envProvider       = "PROVIDER"
	envRenderer       = "RENDERER"
	envPort           = "PORT"
	envStatusServer   = "STATUS_SERVER_ENABLED"
	envLiveURL        = "NBA_LIVE_SCOREBOARD_URL"
	envDailyBaseURL   = "NBA_DAILY_SCOREBOARD_BASE_URL"
	envWorldTimeURL   = "WORLDTIME_BASE_URL"
	envMetricsPort    = "METRICS_PORT"
	envMetricsOn      = "METRICS_ENABLED"
	envOtelEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService    = "OTEL_SERVICE_NAME"
	envOtelInsecure   = "OTEL_EXPORTER_OTLP_INSECURE"
	envLogLevel       = "LOG_LEVEL"
	envLogFormat      = "LOG_FORMAT"
	envLogFile        = "LOG_FILE"
	envLogMaxSizeMB   = "LOG_MAX_SIZE_MB"
	envLogMaxBackups  = "LOG_MAX_BACKUPS"
	envMaxPollBackoff = "MAX_POLL_BACKOFF"

	defaultTeam     = "Celtics"
	defaultTimezone = "America/New_York"
	// Live clocks move quickly; 30s keeps the panel current without hammering the CDN.
	defaultPollInterval   = 30 * Duration(time.Second)
	defaultMaxPollBackoff = 5 * Duration(time.Minute)
	defaultHorizonDays    = 60
	defaultRequestTimeout = 5 * Duration(time.Second)
	defaultProvider       = "nba"
	defaultRenderer       = "terminal"
	defaultPort           = "4000"
	defaultStatusServer   = true
	defaultMetricsPort    = "9090"
	defaultServiceName    = "led-scoreboard"

	defaultLiveURL      = "https://cdn.nba.com/static/json/liveData/scoreboard/todaysScoreboard_00.json"
	defaultDailyBaseURL = "https://data.nba.net/data/10s/prod/v1"
	defaultWorldTimeURL = "http://worldtimeapi.org/api/timezone"
)
