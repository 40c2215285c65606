package main

import (
	"context"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/dfulfagar/portfolio-api/internal/config"
	"github.com/dfulfagar/portfolio-api/internal/database"
	"github.com/dfulfagar/portfolio-api/internal/logger"
	"github.com/dfulfagar/portfolio-api/internal/repository"
	"github.com/dfulfagar/portfolio-api/internal/seed"
)

func main() {
	log := logger.New("portfolio-seed")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.DatabaseURL, cfg.DatabaseName)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}
	defer pool.Close()

	if err := database.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure schema")
	}

	reseeder := seed.NewReseeder(repository.NewPGXDocumentStore(pool), log)

	seedErr := reseeder.Reseed(ctx, seed.DefaultDataset())
	if seedErr != nil {
		log.Error().Err(seedErr).Msg("one or more collections failed to seed")
	}

	counts, err := reseeder.Verify(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("post-seed verification failed")
	}
	for col, count := range counts {
		log.Info().Str("collection", string(col)).Int64("documents", count).Msg("verified")
	}

	if seedErr != nil {
		log.Fatal().Msg("seeding finished with errors")
	}
	log.Info().Msg("database seeding completed")
}
