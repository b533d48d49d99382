package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/willmarsh13/BookstoreDemo/internal/catalog"
	"github.com/willmarsh13/BookstoreDemo/internal/config"
	"github.com/willmarsh13/BookstoreDemo/internal/database"
	"github.com/willmarsh13/BookstoreDemo/internal/events"
	"github.com/willmarsh13/BookstoreDemo/internal/handler"
	"github.com/willmarsh13/BookstoreDemo/internal/repository"
	"github.com/willmarsh13/BookstoreDemo/internal/router"
	"github.com/willmarsh13/BookstoreDemo/internal/service"

	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is fine; the process environment still applies.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting bookstore API server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool, logger); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if cfg.Catalog.SeedOnStart {
		loader := catalog.NewLoader(ctx, cfg.S3, logger)
		doc, err := loader.Load(ctx, cfg.Catalog.SeedFile)
		if err != nil {
			return fmt.Errorf("failed to load catalog: %w", err)
		}
		if _, err := catalog.NewSeeder(pool, logger).Seed(ctx, doc); err != nil {
			return fmt.Errorf("failed to seed catalog: %w", err)
		}
	}

	bookRepo := repository.NewBookRepository(pool, logger)
	categoryRepo := repository.NewCategoryRepository(pool, logger)
	customerRepo := repository.NewCustomerRepository(pool, logger)
	orderRepo := repository.NewOrderRepository(pool, logger)
	lineItemRepo := repository.NewLineItemRepository(pool, logger)

	var publisher events.Publisher
	if cfg.Events.Enabled {
		publisher, err = events.NewAMQPPublisher(cfg.Events.URL, cfg.Events.Exchange, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize event publisher: %w", err)
		}
	} else {
		logger.Info().Msg("order events disabled, using no-op publisher")
		publisher = events.NewNoopPublisher(logger)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error().Err(err).Msg("failed to close event publisher")
		}
	}()

	catalogService := service.NewCatalogService(categoryRepo, bookRepo, logger)
	orderService := service.NewOrderService(bookRepo, customerRepo, orderRepo, lineItemRepo, publisher, logger)

	catalogHandler := handler.NewCatalogHandler(catalogService, logger)
	orderHandler := handler.NewOrderHandler(orderService, logger)

	mux := router.New(catalogHandler, orderHandler, pool, logger)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
