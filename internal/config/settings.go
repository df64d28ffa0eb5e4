package config

import (
	"os"
	"strconv"
)

// Default AI settings, used when neither the config file nor the
// environment overrides them.
const (
	DefaultProvider  = "anthropic"
	DefaultModel     = "claude-sonnet-4-20250514"
	DefaultMaxTokens = 2000
)

// Credential environment variables per provider.
const (
	EnvAnthropicAPIKey = "ANTHROPIC_API_KEY"
	EnvOpenAIAPIKey    = "OPENAI_API_KEY"
)

// Settings is the resolved AI request configuration for one invocation.
// Precedence: environment variables, then the ai_settings config section,
// then defaults.
type Settings struct {
	Provider  string
	Model     string
	MaxTokens int

	// APIKey is the credential for the resolved provider. Empty means the
	// credential is missing; this is only an error when an AI command is
	// actually attempted.
	APIKey string

	Debug bool
}

// ResolveSettings merges environment overrides with the ai_settings section
// of cfg. cfg may be nil.
func ResolveSettings(cfg *Config) Settings {
	var base AISettings
	if cfg != nil && cfg.AISettings != nil {
		base = *cfg.AISettings
	}

	s := Settings{
		Provider:  getEnv("DEVCHEAT_PROVIDER", firstNonEmpty(base.Provider, DefaultProvider)),
		Model:     getEnv("DEVCHEAT_MODEL", firstNonEmpty(base.Model, DefaultModel)),
		MaxTokens: getEnvInt("DEVCHEAT_MAX_TOKENS", orDefault(base.MaxTokens, DefaultMaxTokens)),
		Debug:     getEnvBool("DEVCHEAT_DEBUG", false),
	}
	s.APIKey = os.Getenv(CredentialVar(s.Provider))
	return s
}

// CredentialVar returns the credential environment variable name for a
// provider. Unknown providers fall back to the Anthropic variable.
func CredentialVar(provider string) string {
	if provider == "openai" {
		return EnvOpenAIAPIKey
	}
	return EnvAnthropicAPIKey
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
		if value == "1" {
			return true
		}
	}
	return defaultValue
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func orDefault(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}
