package llm

import (
	"context"
	"fmt"
)

// NewProvider creates a Provider from configuration, wrapped with the usage
// recording and retry middleware. The recorder may be nil.
//
// Middleware order: caller → retry → usage recording → base, so each retry
// attempt is recorded individually.
func NewProvider(ctx context.Context, cfg Config, rec *UsageRecorder) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
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

	recorded := WithUsageRecording(base, rec)
	return WithRetry(recorded, cfg.Retry), nil
}

// NewProviderFromEnv builds a Provider from SWOTTER_* env vars, falling back
// to key discovery when no provider is configured explicitly.
func NewProviderFromEnv(ctx context.Context, rec *UsageRecorder) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, rec)
}
