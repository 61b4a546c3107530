// Command seed creates one active account per role and a sample project in
// the configured PostgreSQL database. The shared password comes from
// SEED_PASSWORD, or is generated and printed once.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/scan_payroll_app/internal/platform/config"
	"github.com/SscSPs/scan_payroll_app/internal/platform/seed"
	"github.com/SscSPs/scan_payroll_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/scan_payroll_app/pkg/database"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if cfg.StorageDriver != config.StoragePostgres {
		logger.Error("Seeding requires STORAGE_DRIVER=postgres; memory storage seeds itself with SEED_DEMO_DATA")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	password := cfg.SeedPassword
	res, err := seed.Run(ctx, pgsql.NewRepositoryProvider(dbPool), password, time.Now().UTC(), logger)
	if err != nil {
		logger.Error("Seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	for _, s := range res.Staff {
		fmt.Printf("%-16s %s\n", s.Role, s.Mobile)
	}
	fmt.Printf("project: %s (%s)\n", res.Project.Name, res.Project.ProjectID)
	if password == "" {
		fmt.Printf("password: %s\n", res.Password)
	}
}
