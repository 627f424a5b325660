package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Duration aliases time.Duration so Config reads as plain settings.
type Duration = time.Duration

// lookup returns the trimmed value of key; blank counts as unset.
func lookup(key string) (string, bool) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	raw = strings.TrimSpace(raw)
	return raw, raw != ""
}

// parsedEnvOrDefault falls back to def when key is unset or parse rejects it.
func parsedEnvOrDefault[T any](key string, def T, parse func(string) (T, bool)) T {
	raw, ok := lookup(key)
	if !ok {
		return def
	}
	if v, ok := parse(raw); ok {
		return v
	}
	return def
}

func envOrDefault(key, def string) string {
	if v, ok := lookup(key); ok {
		return v
	}
	return def
}

// durationEnvOrDefault accepts Go duration syntax; zero or negative values are ignored.
func durationEnvOrDefault(key string, def time.Duration) time.Duration {
	return parsedEnvOrDefault(key, def, func(raw string) (time.Duration, bool) {
		d, err := time.ParseDuration(raw)
		return d, err == nil && d > 0
	})
}

// intEnvOrDefault accepts positive integers only.
func intEnvOrDefault(key string, def int) int {
	return parsedEnvOrDefault(key, def, func(raw string) (int, bool) {
		n, err := strconv.Atoi(raw)
		return n, err == nil && n > 0
	})
}

func boolEnvOrDefault(key string, def bool) bool {
	return parsedEnvOrDefault(key, def, func(raw string) (bool, bool) {
		switch strings.ToLower(raw) {
		case "1", "true", "yes", "on":
			return true, true
		case "0", "false", "no", "off":
			return false, true
		}
		return false, false
	})
}
