package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/mmcdole/bookcase/internal/adapter"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Validate a catalog file and make it the active source",
	Long: `Parses and validates a JSON or YAML catalog, replaces the cached copy,
and records the file as data.file in the config so later runs use it.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	path, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}

	env, err := setup()
	if err != nil {
		return err
	}
	defer env.Close()

	_, res, err := env.svc.Import(context.Background(), path)
	if err != nil {
		return err
	}

	env.cfg.Data.File = path
	if err := adapter.SaveConfig(env.cfg, cfgFile); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d books from %s\n", res.Count, path)
	return nil
}
