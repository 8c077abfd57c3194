package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/bookcase/internal/adapter"
	"github.com/mmcdole/bookcase/internal/catalog"
	"github.com/mmcdole/bookcase/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the interactive catalog browser (default)",
	Args:  cobra.NoArgs,
	RunE:  runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	env, err := setup()
	if err != nil {
		return err
	}
	defer env.Close()

	env.logger.Info("starting bookcase", "version", Version, "source", env.svc.Source())

	// Piped output gets the first page as a table instead of a TUI
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		cat, _, err := env.svc.Load(context.Background())
		if err != nil {
			return err
		}
		state := catalog.NewQueryState(cat.Books, env.cfg.UI.PageSize)
		return renderList(cmd.OutOrStdout(), state, cat.Authors)
	}

	theme := env.svc.Theme(env.cfg.UI.Theme)
	opener := adapter.NewOpener(env.cfg.UI.OpenCommand, env.logger)
	model := tui.NewModel(env.svc, opener, theme, env.cfg.UI.PageSize)

	p := tea.NewProgram(model, tea.WithAltScreen())

	env.logger.Info("starting TUI", "theme", theme, "page_size", env.cfg.UI.PageSize)

	if _, err := p.Run(); err != nil {
		env.logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	env.logger.Info("shutting down")
	return nil
}
