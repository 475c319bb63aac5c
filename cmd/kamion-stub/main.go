package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"kamion-client/internal/adapters/repositories"
	"kamion-client/internal/adapters/sessions"
	"kamion-client/internal/api"
	"kamion-client/internal/config"
	"kamion-client/internal/platform/db"
	"kamion-client/internal/platform/logging"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// main is the stub backend's composition root. It wires the SQL
// repositories behind ports and serves the same routes as the real
// backend, for local runs of the client.
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadEnvFile(); err != nil {
		return err
	}

	logger, flush, err := logging.New(logging.Options{Level: config.Get("LOG_LEVEL", "info")})
	if err != nil {
		return err
	}
	defer flush()

	databaseURL := os.Getenv("DATABASE_URL")
	dbPath := config.Get("DB_PATH", "data/stub.db")
	seedPath := config.Get("SEED_PATH", "data/seeds/kamion.json")
	port := config.Get("PORT", "8080")

	conn, err := db.OpenFromEnv(databaseURL, dbPath)
	if err != nil {
		return err
	}
	defer conn.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize schema and seed demo data on startup for local runs.
	if err := initAndSeed(ctx, conn, seedPath); err != nil {
		return err
	}

	repo := repositories.NewSQLRepository(conn)
	router := api.NewRouter(repo, sessions.NewSQLSessionStore(conn), repo)

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("stub backend listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func initAndSeed(ctx context.Context, conn *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(ctx, conn, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
