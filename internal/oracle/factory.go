package oracle

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/gradex/internal/store"
)

// New creates an Oracle from configuration, wrapped with the standard
// middleware: caller → cache → retry → logging → engine. Cache sits
// outermost so hits skip the retry and logging layers entirely.
func New(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Oracle, error) {
	var base Oracle
	var err error

	switch cfg.Provider {
	case "newton":
		base = NewNewtonOracle(cfg.Newton)
	case "anthropic":
		base, err = NewAnthropicOracle(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIOracle(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiOracle(ctx, cfg.Gemini)
	case "mock":
		return NewMockOracle(), nil
	default:
		return nil, fmt.Errorf("unknown oracle provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s oracle: %w", cfg.Provider, err)
	}

	logged := WithLogging(base, eventRepo)
	retried := WithRetry(logged, cfg.Retry)

	var cache Cache
	if cfg.Redis.Addr != "" {
		redisCache := NewRedisCache(cfg.Redis)
		if pingErr := redisCache.Ping(ctx); pingErr != nil {
			fmt.Fprintf(os.Stderr, "warning: redis cache unreachable, using in-memory cache: %v\n", pingErr)
			cache = NewLRUCache(cfg.CacheSize)
		} else {
			cache = redisCache
		}
	} else {
		cache = NewLRUCache(cfg.CacheSize)
	}

	return WithCache(retried, cache), nil
}
