package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/muckraker/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"MUCK_RUNTIME_PATH" envDefault:".muckraker"`

	// Provider selects the generation backend for the model-backed
	// strategies: openai, openrouter, ollama.
	Provider string `env:"LLM_PROVIDER" envDefault:"openai"`

	// Transport flags
	EnableTelegram bool `env:"ENABLE_TELEGRAM" envDefault:"false"`
	EnableCLI      bool `env:"ENABLE_CLI" envDefault:"true"`
	EnableMCP      bool `env:"ENABLE_MCP" envDefault:"false"`

	// Conversation memory
	MemoryCap     int `env:"MEMORY_CAP" envDefault:"50"`
	ContextWindow int `env:"CONTEXT_WINDOW" envDefault:"5"`

	// Retrieval
	SearchLimit        int `env:"SEARCH_LIMIT" envDefault:"25"`
	DiverseSampleLimit int `env:"DIVERSE_SAMPLE_LIMIT" envDefault:"30"`
	ContextRecordCap   int `env:"CONTEXT_RECORD_CAP" envDefault:"12"`

	// StrategyTimeout bounds each strategy attempt; on expiry the chain
	// advances instead of hanging the turn.
	StrategyTimeout time.Duration `env:"STRATEGY_TIMEOUT" envDefault:"30s"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse app config")
	}
	return c
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "muckraker.db")
}
