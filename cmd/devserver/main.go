package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"snailmail-delivery/internal/adapters/routes"
	"snailmail-delivery/internal/api"
	"snailmail-delivery/internal/config"
	"snailmail-delivery/internal/platform/db"
	"snailmail-delivery/internal/platform/logger"
	"snailmail-delivery/internal/ports"
	"snailmail-delivery/internal/services"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// main is the development backend's composition root.
// It wires the route store behind the estimator and serves the estimate API.
func main() {
	loadedEnv := config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.AppEnv, "devserver")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if !loadedEnv {
		log.Info("no .env file found (using environment variables)")
	}

	conn, err := db.Open(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Fatal("failed to open database", zap.Error(err))
	}
	defer conn.Close()

	store, err := initStore(context.Background(), conn, cfg, log)
	if err != nil {
		log.Fatal("failed to prepare route store", zap.Error(err))
	}

	router := api.NewRouter(services.NewEstimator(store, log), log)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr), zap.String("db_driver", cfg.DBDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down devserver")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}
}

// initStore creates the schema, seeds demo routes for local runs, and
// returns the store for the configured driver.
func initStore(ctx context.Context, conn *sql.DB, cfg *config.Config, log *zap.Logger) (ports.RouteStore, error) {
	if err := routes.InitSchema(ctx, conn, cfg.DBDriver); err != nil {
		return nil, fmt.Errorf("init store: %w", err)
	}

	var (
		store  ports.RouteStore
		writer routes.Writer
	)
	if cfg.DBDriver == db.DriverPostgres {
		s := routes.NewSQLRouteStore(conn, log)
		store, writer = s, s
	} else {
		s := routes.NewSqliteRouteStore(conn)
		store, writer = s, s
	}

	if err := routes.SeedFromJSON(ctx, writer, cfg.SeedPath); err != nil {
		return nil, fmt.Errorf("init store: %w", err)
	}

	return store, nil
}
