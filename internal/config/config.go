package config

// Config holds runtime configuration for the scoreboard client.
type Config struct {
	Team           string
	Timezone       string
	PollInterval   Duration
	MaxPollBackoff Duration
	HorizonDays    int
	RequestTimeout Duration
	Provider       string
	Renderer       string
	Port           string
	StatusServer   bool
	Feeds          FeedsConfig
	Metrics        MetricsConfig
	Logging        LoggingConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Team:           envOrDefault(envTeam, defaultTeam),
		Timezone:       envOrDefault(envTimezone, defaultTimezone),
		PollInterval:   durationEnvOrDefault(envPollInterval, defaultPollInterval),
		MaxPollBackoff: durationEnvOrDefault(envMaxPollBackoff, defaultMaxPollBackoff),
		HorizonDays:    intEnvOrDefault(envHorizonDays, defaultHorizonDays),
		RequestTimeout: durationEnvOrDefault(envRequestTimeout, defaultRequestTimeout),
		Provider:       envOrDefault(envProvider, defaultProvider),
		Renderer:       envOrDefault(envRenderer, defaultRenderer),
		Port:           envOrDefault(envPort, defaultPort),
		StatusServer:   boolEnvOrDefault(envStatusServer, defaultStatusServer),
		Feeds:          loadFeeds(),
		Metrics:        loadMetrics(),
		Logging:        loadLogging(),
	}
}
