package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"catalog/internal/config"
	"catalog/internal/database"
	"catalog/internal/fixtures"
	"catalog/internal/logger"
	"catalog/internal/observability"
	"catalog/internal/server"
	"catalog/internal/services"
	"catalog/internal/validator"
)

// @title           Product Catalog API
// @version         1.0
// @description     Browse products joined with their category and owner, filtered by owner, categories and a search term, with optional column sorting.

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		logger.Get().Fatalf("Failed to load configuration: %v", err)
	}

	logger.Init(appConfig.Logger())
	defer logger.Sync()

	if err := run(appConfig); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run(appConfig *config.Config) error {
	log := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider, closeProvider, err := fixtureProvider(appConfig)
	if err != nil {
		return err
	}
	fx, err := provider.Load(ctx)
	closeProvider()
	if err != nil {
		return fmt.Errorf("failed to load fixtures: %w", err)
	}

	// Initialize services
	catalogService, err := services.NewCatalogService(fx)
	if err != nil {
		return fmt.Errorf("failed to build catalog: %w", err)
	}
	sessionService := services.NewSessionService(appConfig.SessionTTL, services.NewAuditService())

	validator.Register()

	router := server.NewRouter(server.Services{
		Catalog:  catalogService,
		Sessions: sessionService,
	})

	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           observability.Middleware(router, appConfig.ServerTiming),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infow("Starting catalog server",
			"port", appConfig.Port,
			"fixture_source", appConfig.FixtureSource,
			"users", len(fx.Users),
			"categories", len(fx.Categories),
			"products", len(fx.Products),
		)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// fixtureProvider selects the configured fixture source. The returned close
// function releases any database connection once fixtures are loaded.
func fixtureProvider(cfg *config.Config) (fixtures.Provider, func(), error) {
	switch cfg.FixtureSource {
	case config.FixtureSourceFile:
		return fixtures.File(cfg.FixturePath), func() {}, nil
	case config.FixtureSourceDatabase:
		dbConfig, err := database.NewConfig()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load database configuration: %w", err)
		}
		dbManager, err := database.NewManager(dbConfig)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create database manager: %w", err)
		}
		if err := dbManager.Migrate(); err != nil {
			_ = dbManager.Close()
			return nil, nil, fmt.Errorf("failed to run database migrations: %w", err)
		}
		closeFn := func() {
			if err := dbManager.Close(); err != nil {
				logger.Get().Warnf("database close error: %v", err)
			}
		}
		return fixtures.Database(dbManager.DB()), closeFn, nil
	default:
		return fixtures.Embedded(), func() {}, nil
	}
}
