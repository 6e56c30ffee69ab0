package oracle

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all oracle configuration.
type Config struct {
	// Provider selects the backing engine.
	// Values: "newton", "anthropic", "openai", "gemini", "mock"
	Provider string

	Newton    NewtonConfig
	Anthropic AnthropicConfig
	OpenAI    OpenAIConfig
	Gemini    GeminiConfig
	Retry     RetryConfig

	// CacheSize bounds the in-memory result cache.
	CacheSize int

	// Redis, when Addr is set, replaces the in-memory cache with a
	// shared one.
	Redis RedisConfig
}

// DefaultConfig returns a Config with sensible defaults. Newton is the
// default engine; it needs no API key.
func DefaultConfig() Config {
	return Config{
		Provider: "newton",
		Newton: NewtonConfig{
			Timeout: 10 * time.Second,
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		CacheSize: 256,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling
// back to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("GRADEX_ORACLE_PROVIDER"); p != "" {
		cfg.Provider = p
	}
	if u := os.Getenv("GRADEX_NEWTON_BASE_URL"); u != "" {
		cfg.Newton.BaseURL = u
	}

	if k := os.Getenv("GRADEX_ANTHROPIC_API_KEY"); k != "" {
		cfg.Anthropic.APIKey = k
	}
	if m := os.Getenv("GRADEX_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}

	if k := os.Getenv("GRADEX_OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
	}
	if m := os.Getenv("GRADEX_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if u := os.Getenv("GRADEX_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}

	if k := os.Getenv("GRADEX_GEMINI_API_KEY"); k != "" {
		cfg.Gemini.APIKey = k
	}
	if m := os.Getenv("GRADEX_GEMINI_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}

	if n := os.Getenv("GRADEX_ORACLE_CACHE_SIZE"); n != "" {
		if size, err := strconv.Atoi(n); err == nil && size > 0 {
			cfg.CacheSize = size
		}
	}
	if a := os.Getenv("GRADEX_REDIS_ADDR"); a != "" {
		cfg.Redis.Addr = a
		cfg.Redis.Password = os.Getenv("GRADEX_REDIS_PASSWORD")
	}

	return cfg
}

// DiscoverConfig probes standard API key env vars in priority order
// (Gemini → OpenAI → Anthropic) and returns a Config for the first LLM
// engine whose key is found. Returns (Config{}, false) if none found;
// Newton remains available without discovery.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Provider = "gemini"
		cfg.Gemini.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider = "openai"
		cfg.OpenAI.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider = "anthropic"
		cfg.Anthropic.APIKey = k
		return cfg, true
	}

	return Config{}, false
}

// Validate checks that the selected provider has its required
// configuration.
func (c Config) Validate() error {
	switch c.Provider {
	case "newton", "mock":
		// No API key needed.
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("GRADEX_ANTHROPIC_API_KEY is required for the anthropic oracle")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("GRADEX_OPENAI_API_KEY is required for the openai oracle")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("GRADEX_GEMINI_API_KEY is required for the gemini oracle")
		}
	default:
		return fmt.Errorf("unknown oracle provider: %q", c.Provider)
	}
	return nil
}
