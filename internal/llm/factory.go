package llm

import (
	"context"
	"fmt"

	"github.com/abhisek/mcqgen/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with
// request-event logging when a history repo is supplied.
func NewProvider(ctx context.Context, cfg Config, history store.HistoryRepo) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		base = NewMockProvider()
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	if history != nil {
		base = WithLogging(base, history)
	}

	return base, nil
}

// ResolveConfig builds provider configuration from MCQGEN_* environment
// variables. When the configured provider has no API key, the standard
// key variables (GEMINI_API_KEY, GOOGLE_API_KEY, OPENAI_API_KEY, ...)
// are probed instead.
func ResolveConfig() (Config, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return Config{}, err
		}
		cfg = discovered
	}
	return cfg, nil
}

// SetModel overrides the model for whichever provider is selected.
func (c *Config) SetModel(model string) {
	if model == "" {
		return
	}
	switch c.Provider {
	case "gemini":
		c.Gemini.Model = model
	case "openai":
		c.OpenAI.Model = model
	case "anthropic":
		c.Anthropic.Model = model
	case "openrouter":
		c.OpenRouter.Model = model
	}
}
