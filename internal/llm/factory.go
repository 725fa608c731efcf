package llm

import (
	"context"
	"fmt"

	"github.com/abhisek/vocatinder/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with retry
// and (when repo is non-nil) event-logging middleware.
func NewProvider(ctx context.Context, cfg Config, repo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "mistral":
		base, err = NewMistralProvider(cfg.Mistral)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Middleware stack: caller → retry → logging → base.
	wrapped := base
	if repo != nil {
		wrapped = WithLogging(wrapped, repo)
	}
	return WithRetry(wrapped, cfg.Retry), nil
}

// NewProviderFromEnv builds a provider from VOCATINDER_* env vars, or
// from discovered standard key vars when no explicit provider is set.
// Returns (nil, nil) when no credential is configured at all: the
// caller treats the LLM as an absent capability, not an error.
func NewProviderFromEnv(ctx context.Context, repo store.EventRepo) (Provider, error) {
	cfg := ConfigFromEnv()

	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, nil
		}
		cfg = discovered
	}

	return NewProvider(ctx, cfg, repo)
}
