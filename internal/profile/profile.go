package profile

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// Profile is configuration to start the main server.
type Profile struct {
	// Mode can be "prod" or "dev".
	Mode string
	// Addr is the binding address of the server.
	Addr string
	// Port is the binding port of the server.
	Port int
	// Version is the current version of the server.
	Version string

	// Provider credentials. A missing key never prevents startup; the
	// corresponding adapter degrades to mock replies instead.
	GeminiAPIKey    string
	GroqAPIKey      string
	AnthropicAPIKey string

	// DefaultProvider handles requests that name no provider, or an
	// unknown one.
	DefaultProvider string
}

func (p *Profile) IsDev() bool {
	return p.Mode != "prod"
}

// getEnvOrDefault returns environment variable value or default value.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvOrDefaultInt returns environment variable value as int or default value.
func getEnvOrDefaultInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// FromEnv loads configuration from environment variables.
// The unprefixed names used by earlier deployments are honored as fallbacks
// so existing .env files keep working.
func (p *Profile) FromEnv() {
	p.GeminiAPIKey = getEnvOrDefault("SCALEX_GEMINI_API_KEY", os.Getenv("GEMINI_API_KEY"))
	p.GroqAPIKey = getEnvOrDefault("SCALEX_GROQ_API_KEY", os.Getenv("GROQ_API_KEY"))
	p.AnthropicAPIKey = getEnvOrDefault("SCALEX_ANTHROPIC_API_KEY", os.Getenv("ANTHROPIC_API_KEY"))
	p.DefaultProvider = getEnvOrDefault("SCALEX_DEFAULT_PROVIDER", "gemini")

	if p.Port == 0 {
		p.Port = getEnvOrDefaultInt("PORT", 3000)
	}
}

// Validate checks that the profile is runnable.
func (p *Profile) Validate() error {
	if p.Mode != "prod" && p.Mode != "dev" {
		p.Mode = "dev"
	}
	if p.Port <= 0 || p.Port > 65535 {
		return errors.Errorf("invalid port %d", p.Port)
	}
	return nil
}
