package main

import (
	"context"
	"database/sql"
	"kamion-client/internal/adapters/repositories"
	"kamion-client/internal/config"
	"kamion-client/internal/platform/db"
	"kamion-client/internal/platform/logging"
	"log"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
)

// dbtool prepares a Postgres database for the stub backend: it creates
// the schema and loads the fixture file.
func main() {
	if err := config.LoadEnvFile(); err != nil {
		log.Fatal(err)
	}

	logger, flush, err := logging.New(logging.Options{Level: config.Get("LOG_LEVEL", "info")})
	if err != nil {
		log.Fatal(err)
	}
	defer flush()

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		logger.Fatal("DATABASE_URL is required")
	}

	conn, err := db.Open(databaseURL)
	if err != nil {
		logger.Fatal("open database", zap.Error(err))
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	seedPath := config.Get("SEED_PATH", "data/seeds/kamion.json")
	if err := initAndSeed(ctx, logger, conn, seedPath); err != nil {
		logger.Fatal("database setup failed", zap.Error(err))
	}
}

func initAndSeed(ctx context.Context, logger *zap.Logger, conn *sql.DB, seedPath string) error {
	logger.Info("initializing database schema")
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return err
	}
	logger.Info("schema ready")

	logger.Info("seeding database", zap.String("seed", seedPath))
	if err := repositories.SeedFromJSON(ctx, conn, seedPath); err != nil {
		return err
	}
	logger.Info("seeding complete")

	return nil
}
