package main

import (
	"fmt"

	"github.com/mmcdole/bookcase/internal/adapter"
	"github.com/mmcdole/bookcase/internal/store"
	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the on-disk catalog cache",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Drop the cached catalog and the saved theme",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := adapter.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if cfg.Data.CacheDir == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "Cache is in memory; nothing to clear")
			return nil
		}

		s, err := store.NewCatalogStore(cfg.Data.CacheDir)
		if err != nil {
			return err
		}
		s.InvalidateAll()
		if err := s.Close(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Cleared %s\n", cfg.Data.CacheDir)
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}
