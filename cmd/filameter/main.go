package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/SiloCityLabs/filameter.com-sub000/internal/client/cli"
	"github.com/SiloCityLabs/filameter.com-sub000/internal/client/inventory"
	"github.com/SiloCityLabs/filameter.com-sub000/internal/client/relay"
	"github.com/SiloCityLabs/filameter.com-sub000/internal/client/storage/boltdb"
	syncsvc "github.com/SiloCityLabs/filameter.com-sub000/internal/client/sync"
)

// Version information set via ldflags during build
var (
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	var (
		dbPath   string
		relayURL string
		cooldown time.Duration
		verbose  bool
	)

	app := &cli.App{}
	root := cli.NewRootCommand(app)
	root.Version = fmt.Sprintf("%s (built %s, commit %s)", Version, BuildDate, GitCommit)

	root.PersistentFlags().StringVar(&dbPath, "db", defaultDBPath(), "path to the local database")
	root.PersistentFlags().StringVar(&relayURL, "relay", defaultRelayURL(), "sync relay endpoint URL")
	root.PersistentFlags().DurationVar(&cooldown, "cooldown", syncsvc.DefaultCooldownWindow, "minimum interval between sync checks")
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	var store *boltdb.Storage
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

		if err := os.MkdirAll(filepath.Dir(dbPath), 0o700); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}

		var err error
		store, err = boltdb.New(cmd.Context(), dbPath)
		if err != nil {
			return fmt.Errorf("failed to open database %s: %w", dbPath, err)
		}

		syncService := syncsvc.NewService(store, store, relay.NewClient(relayURL), logger,
			syncsvc.WithCooldownWindow(cooldown))
		app.Sync = syncService
		app.Inventory = inventory.NewService(store, syncService)
		return nil
	}
	root.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		if store == nil {
			return nil
		}
		return store.Close()
	}

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func defaultDBPath() string {
	if path := os.Getenv("FILAMETER_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "filameter.db"
	}
	return filepath.Join(home, ".filameter", "filameter.db")
}

func defaultRelayURL() string {
	if url := os.Getenv("FILAMETER_RELAY"); url != "" {
		return url
	}
	return "http://localhost:8080/api/v1/sync"
}
