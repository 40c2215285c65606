package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/dfulfagar/portfolio-api/internal/auth"
	"github.com/dfulfagar/portfolio-api/internal/config"
	"github.com/dfulfagar/portfolio-api/internal/database"
	"github.com/dfulfagar/portfolio-api/internal/handler"
	"github.com/dfulfagar/portfolio-api/internal/logger"
	middlewarepkg "github.com/dfulfagar/portfolio-api/internal/middleware"
	"github.com/dfulfagar/portfolio-api/internal/repository"
	"github.com/dfulfagar/portfolio-api/internal/service"
)

func main() {
	log := logger.New("portfolio-api")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.DatabaseURL, cfg.DatabaseName)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}
	defer pool.Close()

	if err := database.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure schema")
	}

	store := repository.NewPGXDocumentStore(pool)

	portfolioService := service.NewPortfolioService(store)
	contactService := service.NewContactService(store)

	portfolioHandler := handler.NewPortfolioHandler(portfolioService, log)
	contactHandler := handler.NewContactHandler(contactService, log)

	// The contacts listing stays public unless a secret is configured; see the
	// README for the trade-off.
	var tokens *auth.TokenManager
	if cfg.AdminJWTSecret != "" {
		tokens = auth.NewTokenManager(cfg.AdminJWTSecret, cfg.AdminTokenTTL)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging(log))
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())

	api := e.Group("/api")
	api.GET("/", portfolioHandler.Root)
	api.GET("/profile", portfolioHandler.Profile)
	api.GET("/experience", portfolioHandler.Experience)
	api.GET("/skills", portfolioHandler.Skills)
	api.GET("/achievements", portfolioHandler.Achievements)
	api.GET("/education", portfolioHandler.Education)
	api.POST("/contact", contactHandler.Submit, middlewarepkg.ContactRateLimiter(cfg.RateLimitContact))
	api.GET("/contacts", contactHandler.List, middlewarepkg.AdminGate(tokens))

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
