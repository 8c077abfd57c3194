package main

import (
	"context"
	"fmt"

	"github.com/mmcdole/bookcase/internal/catalog"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the books matching a filter",
	Long: `Prints the books matching the given filters, revealing pages up to --page.
Author and genre accept an id, a name, or a close misspelling of a name.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().String("title", "", "case-insensitive title substring")
	listCmd.Flags().String("author", "", "author id or name (default any)")
	listCmd.Flags().String("genre", "", "genre id or name (default any)")
	listCmd.Flags().Int("page", 1, "number of pages to reveal")
	listCmd.Flags().Bool("json", false, "output results as JSON")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	title, _ := cmd.Flags().GetString("title")
	author, _ := cmd.Flags().GetString("author")
	genre, _ := cmd.Flags().GetString("genre")
	page, _ := cmd.Flags().GetInt("page")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	if page < 1 {
		return fmt.Errorf("--page must be at least 1, got %d", page)
	}

	env, err := setup()
	if err != nil {
		return err
	}
	defer env.Close()

	cat, _, err := env.svc.Load(context.Background())
	if err != nil {
		return err
	}

	filter, err := env.svc.ResolveFilter(cat, title, author, genre)
	if err != nil {
		return err
	}

	state := catalog.NewQueryState(cat.Books, env.cfg.UI.PageSize).Apply(cat.Books, filter)
	for state.Page < page && state.HasMore() {
		state, _ = state.ShowMore()
	}

	if jsonOutput {
		return renderListJSON(cmd.OutOrStdout(), state)
	}
	return renderList(cmd.OutOrStdout(), state, cat.Authors)
}
