package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/SiloCityLabs/filameter.com-sub000/internal/server/config"
	"github.com/SiloCityLabs/filameter.com-sub000/internal/server/handlers"
	"github.com/SiloCityLabs/filameter.com-sub000/internal/server/mailer"
	"github.com/SiloCityLabs/filameter.com-sub000/internal/server/router"
	"github.com/SiloCityLabs/filameter.com-sub000/internal/server/storage/sqlite"
)

// Version information set via ldflags during build
var (
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.Server.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o700); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}
	store, err := sqlite.New(ctx, cfg.Database.Path)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	var m mailer.Mailer
	if cfg.Mail.SMTPHost != "" {
		m, err = mailer.NewSMTP(mailer.SMTPConfig{
			Host:     cfg.Mail.SMTPHost,
			Port:     cfg.Mail.SMTPPort,
			From:     cfg.Mail.From,
			Username: cfg.Mail.Username,
			Password: cfg.Mail.Password,
		})
		if err != nil {
			return err
		}
	} else {
		logger.Warn("no SMTP host configured, sync keys will be logged instead of mailed")
		m = mailer.NewLog(logger)
	}

	mux := router.New(router.Config{
		SyncHandler:       handlers.NewSyncHandler(store, store, m, logger),
		HealthHandler:     handlers.NewHealthHandler(logger, Version),
		Logger:            logger,
		RateLimitRequests: cfg.RateLimit.Requests,
		RateLimitWindow:   cfg.RateLimit.Window,
	})

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errC := make(chan error, 1)
	go func() {
		logger.Info("relay listening",
			"addr", cfg.Server.Addr(),
			"version", Version,
			"build_date", BuildDate,
			"commit", GitCommit)
		errC <- server.ListenAndServe()
	}()

	select {
	case err := <-errC:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown failed: %w", err)
		}
	}

	return nil
}
