// Package ai implements the provider registry and the fallback dispatcher
// that routes generation requests through interchangeable AI backends.
package ai

import (
	"github.com/scalexhq/chatgate/internal/profile"
)

// Config represents AI gateway configuration.
type Config struct {
	// Provider credentials. Empty values leave the adapter registered but
	// unconfigured; requests degrade to mock replies instead of failing.
	GeminiAPIKey    string
	GroqAPIKey      string
	AnthropicAPIKey string

	// DefaultProvider answers requests that name no provider or an unknown
	// one. Must be a registered adapter identifier.
	DefaultProvider string
}

// NewConfigFromProfile creates AI config from the server profile.
func NewConfigFromProfile(p *profile.Profile) *Config {
	return &Config{
		GeminiAPIKey:    p.GeminiAPIKey,
		GroqAPIKey:      p.GroqAPIKey,
		AnthropicAPIKey: p.AnthropicAPIKey,
		DefaultProvider: p.DefaultProvider,
	}
}
