package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/user/recipevault/internal/config"
	"github.com/user/recipevault/internal/logging"
	"github.com/user/recipevault/internal/repository"
	"github.com/user/recipevault/internal/seed"
)

func main() {
	// .env is optional, system environment otherwise
	envErr := godotenv.Load()

	cfg := config.Load()
	logger := logging.Init("seed", cfg.LogLevel, cfg.IsProduction())
	if envErr != nil {
		logger.Debug().Msg(".env not found, using system environment")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	open := func(context.Context) (seed.Store, io.Closer, error) {
		db, err := repository.InitDB(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewCategoryRepository(db), repository.Closer(db), nil
	}

	code := seed.Main(ctx, open, seed.Catalog, logger)
	stop()
	os.Exit(code)
}
