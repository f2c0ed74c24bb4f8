package main

import (
	"context"
	"flag"
	"log"
	"time"

	migrate "github.com/rubenv/sql-migrate"
	"go.uber.org/zap"

	"github.com/johnquangdev/engagement-tracker/internal/infrastructure/database"
	"github.com/johnquangdev/engagement-tracker/pkg/config"
	"github.com/johnquangdev/engagement-tracker/pkg/logger"
)

func main() {
	down := flag.Bool("down", false, "revert migrations instead of applying them")
	limit := flag.Int("limit", 0, "maximum number of migrations to run (0 = all; -down defaults to 1)")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger := logger.New(cfg.Server.Environment)
	defer appLogger.Sync()

	// Initialize database using GORM
	db, err := database.NewPostgresDB(context.Background(), cfg, 30*time.Second, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.CloseDB(db)

	direction := migrate.Up
	if *down {
		direction = migrate.Down
		if *limit == 0 {
			*limit = 1
		}
	}

	n, err := database.Migrate(db, direction, *limit)
	if err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err), zap.Int("applied", n))
	}

	appLogger.Info("✅ Migrations done", zap.Bool("down", *down), zap.Int("count", n))
}
