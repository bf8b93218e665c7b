package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/witsiq/witsiq/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with the
// retry and event-logging middleware.
func NewProvider(ctx context.Context, cfg Config, events store.EventLog) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "deepseek":
		base, err = NewDeepSeekProvider(cfg.DeepSeek)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Middleware order: caller → retry → logging → base.
	logged := WithLogging(base, events)
	return WithRetry(logged, cfg.Retry), nil
}

// NewProviderFromEnv builds a provider from WITSIQ_* env vars, falling
// back to probing the standard provider key vars when WITSIQ_LLM_PROVIDER
// is unset and the configured provider has no key.
func NewProviderFromEnv(ctx context.Context, events store.EventLog) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		if os.Getenv("WITSIQ_LLM_PROVIDER") == "" {
			if discovered, ok := DiscoverConfig(); ok {
				return NewProvider(ctx, discovered, events)
			}
		}
		return nil, err
	}
	return NewProvider(ctx, cfg, events)
}
