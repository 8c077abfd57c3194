package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/goccy/go-json"
	"github.com/mmcdole/bookcase/internal/catalog"
	"github.com/mmcdole/bookcase/internal/domain"
	"github.com/mmcdole/bookcase/internal/tui/components"
	"github.com/muesli/reflow/wordwrap"
)

// Plain-text output width for descriptions
const textWidth = 80

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// renderList prints the visible books as a table, followed by the
// "Show more" count or the no-results message
func renderList(w io.Writer, state catalog.QueryState, authors domain.Lookup) error {
	if state.Empty() {
		_, err := fmt.Fprintln(w, components.NoResultsMessage)
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("TITLE", "AUTHOR", "YEAR", "ID").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, b := range state.Visible() {
		year := ""
		if y := b.Year(); y > 0 {
			year = strconv.Itoa(y)
		}
		t.Row(b.Title, authors.Name(b.Author), year, b.ID)
	}

	visible := len(state.Visible())
	footer := fmt.Sprintf("%d of %d", visible, state.Total())
	if remaining := state.Remaining(); remaining > 0 {
		footer += fmt.Sprintf(" · Show more (%d): --page %d", remaining, state.Page+1)
	}

	_, err := fmt.Fprintf(w, "%s\n%s\n", t.String(), footer)
	return err
}

// listOutput is the --json shape of the list command
type listOutput struct {
	Filter struct {
		Title  string `json:"title"`
		Author string `json:"author"`
		Genre  string `json:"genre"`
	} `json:"filter"`
	Page      int           `json:"page"`
	Total     int           `json:"total"`
	Remaining int           `json:"remaining"`
	Books     []domain.Book `json:"books"`
}

func renderListJSON(w io.Writer, state catalog.QueryState) error {
	var out listOutput
	out.Filter.Title = state.Filter.Title
	out.Filter.Author = state.Filter.Author
	out.Filter.Genre = state.Filter.Genre
	out.Page = state.Page
	out.Total = state.Total()
	out.Remaining = state.Remaining()
	out.Books = state.Visible()

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

// renderBook prints one book's full record as plain text
func renderBook(w io.Writer, b domain.Book, authors, genres domain.Lookup) {
	fmt.Fprintln(w, b.Title)
	fmt.Fprintln(w, b.Subtitle(authors))

	if len(b.Genres) > 0 {
		names := make([]string, 0, len(b.Genres))
		for _, g := range b.Genres {
			names = append(names, genres.Name(g))
		}
		fmt.Fprintln(w, strings.Join(names, ", "))
	}
	if b.Image != "" {
		fmt.Fprintln(w, b.Image)
	}
	if b.Description != "" {
		fmt.Fprintf(w, "\n%s\n", wordwrap.String(b.Description, textWidth))
	}
}
