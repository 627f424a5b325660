package config

// LoggingConfig controls log level, format, and optional file rotation.
type LoggingConfig struct {
	Level      string
	Format     string
	File       string
	MaxSizeMB  int
	MaxBackups int
}

// MetricsConfig controls the Prometheus scrape endpoint and optional OTLP push.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	OtlpEndpoint string
	ServiceName  string
	OtlpInsecure bool
}

func loadLogging() LoggingConfig {
	return LoggingConfig{
		Level:      envOrDefault(envLogLevel, "info"),
		Format:     envOrDefault(envLogFormat, "text"),
		File:       envOrDefault(envLogFile, ""),
		MaxSizeMB:  intEnvOrDefault(envLogMaxSizeMB, 10),
		MaxBackups: intEnvOrDefault(envLogMaxBackups, 3),
	}
}

func loadMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, true),
		Port:         envOrDefault(envMetricsPort, defaultMetricsPort),
		OtlpEndpoint: envOrDefault(envOtelEndpoint, ""),
		ServiceName:  envOrDefault(envOtelService, defaultServiceName),
		// Collectors next to the device usually run without TLS.
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, true),
	}
}
