package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"catalog/internal/database"
	"catalog/internal/fixtures"
	"catalog/internal/logger"
)

func main() {
	logger.Init(logger.Config{Env: os.Getenv("ENV")})
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Migration error: %v", err)
	}
}

func run() error {
	if len(os.Args) < 2 {
		return fmt.Errorf("usage: migrate <up|down|version|seed> [N]")
	}

	cfg, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	command := os.Args[1]
	if command == "seed" {
		return seed(cfg)
	}

	if cfg.Driver != database.DriverPostgres {
		if command != "up" {
			return fmt.Errorf("%s is only supported for postgres; %s uses auto-migration", command, cfg.Driver)
		}
		return autoMigrate(cfg)
	}

	m, err := migrate.New(database.MigrationsSource, cfg.MigrationURL())
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			logger.Get().Warnf("migrate source close error: %v", srcErr)
		}
		if dbErr != nil {
			logger.Get().Warnf("migrate database close error: %v", dbErr)
		}
	}()

	switch command {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migration up failed: %w", err)
		}
		logger.Get().Info("Migrations applied successfully")

	case "down":
		steps := 1
		if len(os.Args) > 2 {
			steps, err = strconv.Atoi(os.Args[2])
			if err != nil {
				return fmt.Errorf("invalid step count: %w", err)
			}
		}
		if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migration down failed: %w", err)
		}
		logger.Get().Infof("Rolled back %d migration(s)", steps)

	case "version":
		version, dirty, err := m.Version()
		if err != nil {
			return fmt.Errorf("failed to get version: %w", err)
		}
		logger.Get().Infof("Version: %d, Dirty: %v", version, dirty)

	default:
		return fmt.Errorf("unknown command: %s (use up, down, version, or seed)", command)
	}

	return nil
}

func autoMigrate(cfg *database.Config) error {
	manager, err := database.NewManager(cfg)
	if err != nil {
		return err
	}
	defer manager.Close()

	return manager.Migrate()
}

// seed migrates the schema and writes the built-in catalog into it.
func seed(cfg *database.Config) error {
	manager, err := database.NewManager(cfg)
	if err != nil {
		return err
	}
	defer manager.Close()

	if err := manager.Migrate(); err != nil {
		return err
	}

	ctx := context.Background()
	fx, err := fixtures.Embedded().Load(ctx)
	if err != nil {
		return err
	}
	if err := fixtures.Seed(ctx, manager.DB(), fx); err != nil {
		return err
	}

	logger.Get().Infow("Fixtures seeded",
		"driver", cfg.Driver,
		"users", len(fx.Users),
		"categories", len(fx.Categories),
		"products", len(fx.Products),
	)
	return nil
}
