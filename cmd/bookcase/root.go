package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mmcdole/bookcase/internal/adapter"
	"github.com/mmcdole/bookcase/internal/service"
	"github.com/mmcdole/bookcase/internal/store"
	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags
var Version = "dev"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "bookcase",
	Short: "Browse a book catalog in the terminal",
	Long: `Bookcase loads a static book catalog and lets you filter it by title,
author and genre, page through results and read each book's details.
With no subcommand it opens the interactive browser.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runBrowse,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.config/bookcase/config.yaml)")
}

// runtimeEnv holds everything a command needs once config is loaded
type runtimeEnv struct {
	cfg    *adapter.Config
	logger *slog.Logger
	store  *store.CatalogStore
	svc    *service.CatalogService
	logs   io.Closer
}

// setup loads config, opens the log file and the catalog store
func setup() (*runtimeEnv, error) {
	cfg, err := adapter.LoadConfig(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, logs, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger, logs = adapter.NullLogger(), io.NopCloser(nil)
	}
	slog.SetDefault(logger)

	st, err := store.NewCatalogStore(cfg.Data.CacheDir)
	if err != nil {
		logs.Close()
		return nil, fmt.Errorf("failed to open cache: %w", err)
	}

	return &runtimeEnv{
		cfg:    cfg,
		logger: logger,
		store:  st,
		svc:    service.NewCatalogService(st, cfg.Data.File, logger),
		logs:   logs,
	}, nil
}

// Close releases the store and the log file
func (e *runtimeEnv) Close() error {
	return errors.Join(e.store.Close(), e.logs.Close())
}
