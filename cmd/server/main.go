package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/user/recipevault/internal/config"
	"github.com/user/recipevault/internal/handler"
	"github.com/user/recipevault/internal/logging"
	"github.com/user/recipevault/internal/repository"
	"github.com/user/recipevault/internal/router"
	"github.com/user/recipevault/internal/service"
	"github.com/user/recipevault/internal/utils"
	"github.com/user/recipevault/web"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.Load()
	logger := logging.Init("server", cfg.LogLevel, cfg.IsProduction())
	if envErr != nil {
		log.Info().Msg(".env not found, using system environment")
	}
	if cfg.IsProduction() && cfg.UsesDefaultSecret() {
		log.Warn().Msg("running in production with the default APP_SECRET, set APP_SECRET now")
	}

	db, err := repository.InitDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer repository.Close(db)

	repos := repository.NewRepositories(db)

	utils.InitCache()
	categories := service.NewCategoryService(repos.Category)

	h := handler.NewHandler(cfg, categories)
	r := router.Setup(cfg, h, web.Templates(), web.Static(), logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	refresher := service.NewRefreshService(categories, 5*time.Minute)
	refresher.Start(ctx)

	srv := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Info().Str("addr", "http://localhost:"+cfg.Port).Msg("server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server failed")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	<-refresher.Done()

	log.Info().Msg("server stopped")
}
