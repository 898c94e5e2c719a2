package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"stockboard/internal/amqp"
	"stockboard/internal/catalog/memory"
	"stockboard/internal/config"
	apphttp "stockboard/internal/http"
	applog "stockboard/internal/log"
	"stockboard/internal/metrics"
	"stockboard/internal/services"
	"stockboard/internal/storage"
)

func main() {
	// .env is for local development; missing files are fine.
	_ = godotenv.Load()

	logger := applog.New(applog.DefaultConfig())
	applog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", applog.FieldError, err)
		os.Exit(1)
	}

	store := memory.NewDefault()
	m := metrics.New()

	// The record ledger and broker are optional: without them the
	// dashboard still serves, and POST /records answers 503.
	var creator apphttp.RecordCreator
	repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
	if err != nil {
		logger.Warn("Record ledger disabled", applog.FieldError, err, "path", cfg.SQLiteDBPath)
	} else {
		defer repo.Close()

		var publisher services.SyncPublisher
		if cfg.AMQPURL != "" {
			amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
			if err != nil {
				logger.Warn("AMQP publisher disabled, records stay pending until the worker scan",
					applog.FieldError, err)
			} else {
				defer amqpClient.Close()
				publisher = amqpClient
			}
		}
		creator = services.NewRecordService(repo, publisher, logger)
	}

	srv, err := apphttp.NewServer(":"+cfg.Port, store, store, creator, m, logger, apphttp.Options{
		CacheSize: cfg.ViewCacheSize,
		CacheTTL:  cfg.ViewCacheTTL,
	})
	if err != nil {
		logger.Error("Server setup failed", applog.FieldError, err)
		os.Exit(1)
	}
	srv.MaxHeaderBytes = 1 << 16

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", applog.FieldError, err)
		}
		cancel()
	}()

	logger.Info("Starting stockboard server",
		"port", cfg.Port,
		"ledger_enabled", creator != nil)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Server error", applog.FieldError, err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}
