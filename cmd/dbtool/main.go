package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"snailmail-delivery/internal/adapters/routes"
	"snailmail-delivery/internal/config"
	"snailmail-delivery/internal/platform/db"
	"snailmail-delivery/internal/platform/logger"

	"go.uber.org/zap"
)

// dbtool initializes and seeds the route database without starting the server.
func main() {
	loadedEnv := config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.AppEnv, "dbtool")
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

	if err := initAndSeed(context.Background(), conn, cfg, log); err != nil {
		log.Fatal("init and seed failed", zap.Error(err))
	}
}

func initAndSeed(ctx context.Context, conn *sql.DB, cfg *config.Config, log *zap.Logger) error {
	log.Info("initializing database schema", zap.String("driver", cfg.DBDriver))
	if err := routes.InitSchema(ctx, conn, cfg.DBDriver); err != nil {
		return fmt.Errorf("schema initialization: %w", err)
	}
	log.Info("schema ready")

	var w routes.Writer = routes.NewSqliteRouteStore(conn)
	if cfg.DBDriver == db.DriverPostgres {
		w = routes.NewSQLRouteStore(conn, log)
	}

	log.Info("seeding database", zap.String("seed_path", cfg.SeedPath))
	if err := routes.SeedFromJSON(ctx, w, cfg.SeedPath); err != nil {
		return fmt.Errorf("seeding: %w", err)
	}
	log.Info("seeding complete")

	return nil
}
