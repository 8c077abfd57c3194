package main

import (
	"context"

	"github.com/mmcdole/bookcase/internal/adapter"
	"github.com/mmcdole/bookcase/internal/catalog"
	"github.com/mmcdole/bookcase/internal/domain"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print the full record for one book",
	Long:  `Prints one book's details. An unknown id prints nothing.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().Bool("open", false, "open the cover image in the configured viewer")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	open, _ := cmd.Flags().GetBool("open")

	env, err := setup()
	if err != nil {
		return err
	}
	defer env.Close()

	cat, _, err := env.svc.Load(context.Background())
	if err != nil {
		return err
	}

	book, ok := catalog.FindByID(cat.Books, args[0])
	if !ok {
		env.logger.Debug("show", "id", args[0], "error", domain.ErrBookNotFound)
		return nil
	}

	renderBook(cmd.OutOrStdout(), book, cat.Authors, cat.Genres)

	if open && book.Image != "" {
		return adapter.NewOpener(env.cfg.UI.OpenCommand, env.logger).Open(book.Image)
	}
	return nil
}
