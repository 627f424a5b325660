package config

// FeedsConfig holds the upstream endpoints.
type FeedsConfig struct {
	LiveURL      string
	DailyBaseURL string
	WorldTimeURL string
}

func loadFeeds() FeedsConfig {
	return FeedsConfig{
		LiveURL:      envOrDefault(envLiveURL, defaultLiveURL),
		DailyBaseURL: envOrDefault(envDailyBaseURL, defaultDailyBaseURL),
		WorldTimeURL: envOrDefault(envWorldTimeURL, defaultWorldTimeURL),
	}
}
