package generator

import (
	"fmt"
	"time"

	"copycraft/pkg/config"
)

// Default generation parameters. MaxTokens matches the reference behavior of
// capping responses at 1000 output tokens.
const (
	defaultMistralBaseURL = "https://api.mistral.ai/v1"
	defaultMistralModel   = "mistral-medium"
	defaultClaudeModel    = "claude-3-5-haiku-latest"
	defaultMaxTokens      = 1000
	defaultTimeout        = 60 * time.Second
)

// Config holds configuration parameters shared by generator adapters.
// Configuration is loaded from environment variables with fallback to defaults.
type Config struct {
	// Model is the upstream model identifier.
	Model string

	// MaxTokens is the output token budget for a single generation.
	MaxTokens int

	// Timeout is the maximum duration for a single generation API call.
	Timeout time.Duration

	// BaseURL overrides the API endpoint. Only used by the Mistral adapter,
	// which speaks the chat-completion wire format.
	BaseURL string
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	if c.Model == "" {
		return fmt.Errorf("model cannot be empty")
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max tokens must be positive, got %d", c.MaxTokens)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}
	return nil
}

// LoadMistralConfig loads Mistral adapter configuration from environment variables.
//
// Environment variables:
//   - GENERATOR_MODEL: model identifier (default: mistral-medium)
//   - GENERATOR_MAX_TOKENS: output token budget (default: 1000)
//   - GENERATOR_TIMEOUT: per-call timeout (default: 60s)
//   - GENERATOR_BASE_URL: API endpoint (default: https://api.mistral.ai/v1)
func LoadMistralConfig() (*Config, error) {
	cfg := &Config{
		Model:     config.GetEnvString("GENERATOR_MODEL", defaultMistralModel),
		MaxTokens: config.GetEnvInt("GENERATOR_MAX_TOKENS", defaultMaxTokens),
		Timeout:   config.GetEnvDuration("GENERATOR_TIMEOUT", defaultTimeout),
		BaseURL:   config.GetEnvString("GENERATOR_BASE_URL", defaultMistralBaseURL),
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generator configuration: %w", err)
	}
	return cfg, nil
}

// LoadClaudeConfig loads Claude adapter configuration from environment variables.
// It shares the GENERATOR_MAX_TOKENS and GENERATOR_TIMEOUT variables with the
// Mistral adapter so the token budget stays consistent across providers.
func LoadClaudeConfig() (*Config, error) {
	cfg := &Config{
		Model:     config.GetEnvString("GENERATOR_MODEL", defaultClaudeModel),
		MaxTokens: config.GetEnvInt("GENERATOR_MAX_TOKENS", defaultMaxTokens),
		Timeout:   config.GetEnvDuration("GENERATOR_TIMEOUT", defaultTimeout),
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generator configuration: %w", err)
	}
	return cfg, nil
}
