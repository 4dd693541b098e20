package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/assistbot/internal/config"
	"github.com/sandevgo/assistbot/internal/providers/external"
	"github.com/sandevgo/assistbot/internal/service/command"
	"github.com/sandevgo/assistbot/internal/service/dispatch"
	"github.com/sandevgo/assistbot/internal/transport/telegram"
	"github.com/sandevgo/assistbot/pkg/log"
	"github.com/sandevgo/assistbot/pkg/srv"
)

func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	loadEnv(ctx)

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)
	tgCfg := config.NewTelegramConfig(ctx)

	// 2. Commands
	registry, dispatcher := newDispatcher(ctx, appCfg)

	// 3. Transports
	bot, err := telegram.NewBot(ctx, tgCfg, dispatcher, registry)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize telegram bot")
	}
	services = append(services, bot)

	return services
}

// newDispatcher wires the provider clients into the command registry.
func newDispatcher(ctx context.Context, appCfg *config.AppConfig) (*command.Registry, *dispatch.Dispatcher) {
	providersCfg := config.NewProvidersConfig(ctx)

	providers := command.Providers{
		Weather: external.NewWeather(providersCfg, appCfg.GetHTTPTimeout()),
		Jokes:   external.NewJokes(providersCfg, appCfg.GetHTTPTimeout()),
		Search:  external.NewSearch(providersCfg, appCfg.GetHTTPTimeout()),
	}

	registry := command.NewCommands(appCfg, providers)
	return registry, dispatch.New(registry)
}

// loadEnv reads .env from the runtime dir first, then the working directory.
// godotenv never overrides variables that are already set.
func loadEnv(ctx context.Context) {
	for _, dir := range []string{config.GetRuntimePath(), "."} {
		if err := initEnv(ctx, dir); err != nil {
			log.FromCtx(ctx).Fatal().Err(err).Msg("failed to init env")
		}
	}
}

func initEnv(ctx context.Context, dir string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(dir, ".env")

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
