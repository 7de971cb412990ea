package main

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/sandevgo/muckraker/internal/config"
	"github.com/sandevgo/muckraker/internal/core"
	"github.com/sandevgo/muckraker/internal/providers/llm"
	"github.com/sandevgo/muckraker/internal/providers/mcp"
	"github.com/sandevgo/muckraker/internal/service/agent"
	"github.com/sandevgo/muckraker/internal/service/command"
	"github.com/sandevgo/muckraker/internal/service/memory"
	"github.com/sandevgo/muckraker/internal/storage/sqlite"
	"github.com/sandevgo/muckraker/internal/transport/cli"
	"github.com/sandevgo/muckraker/internal/transport/telegram"
	"github.com/sandevgo/muckraker/pkg/log"
	"github.com/sandevgo/muckraker/pkg/srv"
)

func NewServices(ctx context.Context, projectID string) []srv.Service {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	// init env
	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)

	// 2. Storage
	db, err := initStorage(ctx, appCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize storage")
	}
	services = append(services, srv.NewCleanup(db.Close))

	corpusRepo := sqlite.NewCorpusRepo(db)
	conversationsRepo := sqlite.NewConversationsRepo(db)
	projectsRepo := sqlite.NewProjectsRepo(db)

	// 3. AI Provider
	aiProvider, err := llm.NewProvider(ctx, appCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize LLM provider")
	}

	// 4. Conversation Memory
	mem := memory.NewManager(memory.NewInProcessStore(), appCfg.MemoryCap)

	// 5. Response strategy chain
	chain := agent.NewChain(appCfg.StrategyTimeout,
		agent.NewStructuredStrategy(aiProvider),
		agent.NewFreetextStrategy(aiProvider),
		agent.NewTemplateStrategy(),
		agent.NewCannedStrategy(),
	)

	// 6. Agent Service
	ag := agent.New(corpusRepo, projectsRepo, conversationsRepo, mem, chain, agent.Options{
		SearchLimit:        appCfg.SearchLimit,
		DiverseSampleLimit: appCfg.DiverseSampleLimit,
		ContextRecordCap:   appCfg.ContextRecordCap,
		ContextWindow:      appCfg.ContextWindow,
	})

	// 7. Slash commands
	router := command.New(command.NewCommands(mem, conversationsRepo, corpusRepo))

	// 8. Transports
	transports, err := initTransports(ctx, appCfg, ag, router, corpusRepo, projectID)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize transports")
	}
	services = append(services, transports...)

	return services
}

func initStorage(ctx context.Context, cfg *config.AppConfig) (*sql.DB, error) {
	return sqlite.NewDB(ctx, cfg.GetDatabasePath())
}

func initTransports(
	ctx context.Context,
	cfg *config.AppConfig,
	ag *agent.Agent,
	router core.CmdRouter,
	corpus *sqlite.CorpusRepo,
	projectID string,
) ([]srv.Service, error) {
	var services []srv.Service

	if cfg.EnableCLI {
		rl, err := cli.NewReadLine(ag, router, cfg, projectID)
		if err != nil {
			return nil, err
		}
		services = append(services, rl)
	}

	if cfg.EnableTelegram {
		tgCfg := config.NewTelegramConfig(ctx)
		bot, err := telegram.NewBot(ctx, tgCfg, ag, router, projectID)
		if err != nil {
			return nil, err
		}
		services = append(services, bot)
	}

	if cfg.EnableMCP {
		services = append(services, mcp.NewServer(corpus, corpus))
	}

	return services, nil
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
