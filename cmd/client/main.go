package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/notesync/internal/client/api"
	"github.com/iudanet/notesync/internal/client/auth"
	"github.com/iudanet/notesync/internal/client/cli"
	"github.com/iudanet/notesync/internal/client/iocli"
	"github.com/iudanet/notesync/internal/client/notes"
	"github.com/iudanet/notesync/internal/client/storage/boltdb"
	"github.com/iudanet/notesync/internal/client/storage/sqlite"
	"github.com/iudanet/notesync/internal/client/sync"
	"github.com/iudanet/notesync/internal/config"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "", "Server URL (overrides NOTESYNC_SERVER_URL)")
	dbPath := flag.String("db", "", "Path to local database (overrides NOTESYNC_DB_PATH)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}
	command := args[0]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *serverURL != "" {
		cfg.Server.URL = *serverURL
	}
	if *dbPath != "" {
		cfg.Storage.DatabasePath = *dbPath
	}

	logger := newLogger(cfg.Logging.Level)

	// The watch command runs until interrupted; every command stops
	// cleanly on Ctrl+C.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// BoltDB holds the session and sync metadata
	boltStorage, err := boltdb.New(ctx, cfg.Storage.SessionPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open session database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close session database", "error", err)
		}
	}()

	// SQLite holds entities, the operation queue and the conflict log
	sqliteStorage, err := sqlite.New(ctx, cfg.Storage.DatabasePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := sqliteStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	// Login runs against an unauthenticated client; the authenticated
	// client draws its bearer token from the stored session.
	loginClient := api.NewClient(cfg.Server.URL, cfg.Server.RequestTimeout, nil)
	authService := auth.NewAuthService(loginClient, boltStorage)
	apiClient := api.NewClient(cfg.Server.URL, cfg.Server.RequestTimeout, authService)

	engine := sync.New(
		sqliteStorage,
		sqliteStorage,
		sqliteStorage,
		boltStorage,
		apiClient,
		sync.Config{
			Interval:       cfg.Sync.Interval,
			BaseRetryDelay: cfg.Sync.BaseRetryDelay,
			MaxRetries:     cfg.Sync.MaxRetries,
			Policy:         sync.ConflictPolicy(cfg.Sync.ConflictPolicy),
		},
		logger,
	)
	defer engine.Close()

	noteService := notes.NewService(sqliteStorage, sqliteStorage, engine)

	c := cli.New(iocli.NewStdio(), authService, noteService, engine, boltStorage, apiClient)

	if err := c.Run(ctx, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: lvl,
	}))
}

func printVersion() {
	fmt.Printf("NoteSync Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
