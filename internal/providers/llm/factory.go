package llm

import (
	"context"
	"fmt"

	"github.com/sandevgo/muckraker/internal/config"
	"github.com/sandevgo/muckraker/pkg/log"
)

// NewProvider selects the configured backend. The returned value serves both
// core.ChatProvider and core.StructuredProvider.
func NewProvider(ctx context.Context, cfg *config.AppConfig) (*OpenAICompatible, error) {
	log.FromCtx(ctx).Info().
		Str("provider", cfg.Provider).
		Msg("starting llm provider")

	switch cfg.Provider {
	case "openai":
		c := config.NewOpenAIConfig(ctx)
		return NewOpenAI(c.APIKey, c.Model).OpenAICompatible, nil
	case "openrouter":
		c := config.NewOpenRouterConfig(ctx)
		return NewOpenRouter(c.APIKey, c.Model).OpenAICompatible, nil
	case "ollama":
		c := config.NewOllamaConfig(ctx)
		return NewOllama(c.BaseURL, c.APIKey, c.Model).OpenAICompatible, nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.Provider)
	}
}
