package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/iudanet/gymkeeper/internal/config"
	"github.com/iudanet/gymkeeper/internal/logging"
	"github.com/iudanet/gymkeeper/internal/server"
	"github.com/iudanet/gymkeeper/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
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
	flags := pflag.NewFlagSet("gymkeeper-server", pflag.ExitOnError)
	configFile := flags.StringP("config", "c", "", "Path to config file")
	showVersion := flags.Bool("version", false, "Show version information")
	flags.String("address", ":8080", "Listen address")
	flags.String("db_path", "gymkeeper-server.db", "Path to SQLite database")
	flags.String("log.level", "info", "Log level")
	_ = flags.Parse(os.Args[1:])

	if *showVersion {
		printVersion()
		return nil
	}

	cfg, err := config.LoadServer(*configFile, flags)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(ctx, cfg.DBPath, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	logger.Info("GymKeeper server starting", "version", Version, "db", cfg.DBPath)
	return server.New(cfg, store, Version, logger).Run(ctx)
}

func printVersion() {
	fmt.Printf("GymKeeper Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
