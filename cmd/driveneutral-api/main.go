package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/driveneutral/driveneutral/internal/api"
	"github.com/driveneutral/driveneutral/internal/catalog"
	"github.com/driveneutral/driveneutral/internal/catalog/postgres"
	"github.com/driveneutral/driveneutral/internal/config"
	"github.com/driveneutral/driveneutral/internal/engine"
	"github.com/driveneutral/driveneutral/internal/logging"
)

func main() {
	cfgPath := flag.String("config", "", "path to config file (YAML)")
	flag.Parse()

	// Optional .env for local development; system env wins either way.
	_ = godotenv.Load()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		bootLog := logging.New(logging.Config{})
		bootLog.Fatal().Err(err).Msg("load configuration")
	}

	logger := logging.New(cfg.Logging.ToLoggingConfig())

	var store catalog.Store
	if cfg.Store.DSN != "" {
		ctx, cancel := context.WithTimeout(context.Background(), postgres.ConnectTimeout)
		pg, connErr := postgres.Connect(ctx, cfg.Store.DSN)
		cancel()
		if connErr != nil {
			logger.Fatal().Err(connErr).Msg("connect vehicle store")
		}
		defer pg.Close()
		store = pg
		logger.Info().Msg("using postgres vehicle store")
	} else {
		store = catalog.NewSeedStore()
		logger.Info().Msg("using seed vehicle store")
	}

	eng := engine.New(catalog.New(store, catalog.WithTTL(cfg.Catalog.TTL)))
	server := api.NewServer(cfg, eng, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx); err != nil {
		logger.Error().Err(err).Msg("http server failed")
		os.Exit(1)
	}
	logger.Info().Msg("server stopped")
}
