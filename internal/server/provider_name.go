package server

import "strings"

const (
	providerNBA     = "nba"
	providerFixture = "fixture"
)

// normalizeProviderName lower-cases the configured provider, defaulting to the live NBA feeds.
func normalizeProviderName(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" {
		return providerNBA
	}
	return name
}
