package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/bookcase/internal/domain"
	"github.com/mmcdole/bookcase/internal/search"
	"github.com/mmcdole/bookcase/internal/tui/styles"
)

// MaxQuickFindResults caps the rows drawn under the input
const MaxQuickFindResults = 10

// Omnibar is the quick find modal: fuzzy title search over the current matches
type Omnibar struct {
	input     textinput.Model
	index     *search.TitleIndex
	authors   domain.Lookup
	results   []search.Hit
	cursor    int
	visible   bool
	width     int
	prevQuery string // Track query changes for real-time filtering
}

// NewOmnibar creates a new omnibar component
func NewOmnibar() Omnibar {
	ti := textinput.New()
	ti.Placeholder = "Jump to title..."
	ti.CharLimit = 100
	ti.Width = 40
	ti.Prompt = "f "
	ti.PlaceholderStyle = styles.DimStyle

	return Omnibar{
		input:   ti,
		index:   search.NewTitleIndex(nil),
		authors: domain.Lookup{},
	}
}

// Show opens the omnibar over matches. Hit indexes refer back into matches.
func (o *Omnibar) Show(matches []domain.Book, authors domain.Lookup) {
	o.visible = true
	o.index = search.NewTitleIndex(matches)
	o.authors = authors
	o.input.PromptStyle = styles.AccentStyle
	o.input.TextStyle = lipgloss.NewStyle().Foreground(styles.Current.Fg)
	o.input.SetValue("")
	o.input.Focus()
	o.results = nil
	o.cursor = 0
	o.prevQuery = ""
}

// Hide hides the omnibar
func (o *Omnibar) Hide() {
	o.visible = false
	o.input.Blur()
}

// IsVisible returns true if the omnibar is visible
func (o Omnibar) IsVisible() bool {
	return o.visible
}

// SetSize updates the component dimensions
func (o *Omnibar) SetSize(width, _ int) {
	o.width = width
	o.input.Width = max(o.modalWidth()-10, 10)
}

// Results returns the ranked hits for the current query
func (o Omnibar) Results() []search.Hit {
	return o.results
}

// Selected returns the hit under the cursor
func (o Omnibar) Selected() (search.Hit, bool) {
	if o.cursor < 0 || o.cursor >= len(o.results) {
		return search.Hit{}, false
	}
	return o.results[o.cursor], true
}

// refresh re-runs the search when the query changed
func (o *Omnibar) refresh() {
	current := o.input.Value()
	if current == o.prevQuery {
		return
	}
	o.prevQuery = current
	o.results = o.index.Find(current)
	o.cursor = 0
}

// Update handles messages, returns (omnibar, cmd, selected)
func (o Omnibar) Update(msg tea.Msg) (Omnibar, tea.Cmd, bool) {
	if !o.visible {
		return o, nil, false
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, ModalKeys.Escape):
			o.Hide()
			return o, nil, false
		case key.Matches(keyMsg, ModalKeys.Enter):
			if len(o.results) > 0 {
				o.Hide()
				return o, nil, true
			}
			return o, nil, false
		case key.Matches(keyMsg, ModalKeys.Down), key.Matches(keyMsg, ModalKeys.Next):
			if o.cursor < len(o.results)-1 {
				o.cursor++
			}
			return o, nil, false
		case key.Matches(keyMsg, ModalKeys.Up), key.Matches(keyMsg, ModalKeys.Prev):
			if o.cursor > 0 {
				o.cursor--
			}
			return o, nil, false
		}
	}

	var cmd tea.Cmd
	o.input, cmd = o.input.Update(msg)
	o.refresh()
	return o, cmd, false
}

func (o Omnibar) modalWidth() int {
	w := o.width * 2 / 3
	if w < 40 {
		w = 40
	}
	if w > 80 {
		w = 80
	}
	return w
}

// View renders the modal box
func (o Omnibar) View() string {
	if !o.visible {
		return ""
	}

	modalWidth := o.modalWidth()
	var b strings.Builder

	b.WriteString(o.input.View())
	b.WriteString("\n\n")

	switch {
	case len(o.results) == 0 && strings.TrimSpace(o.input.Value()) != "":
		b.WriteString(styles.DimStyle.Render("No matches"))
	case len(o.results) == 0:
		b.WriteString(styles.DimStyle.Render(fmt.Sprintf("%d books in the current results", o.index.Len())))
	default:
		o.renderResults(&b, modalWidth-8)
	}

	return styles.ModalStyle.
		Width(modalWidth).
		Render(b.String())
}

func (o Omnibar) renderResults(b *strings.Builder, width int) {
	count := min(len(o.results), MaxQuickFindResults)

	for i := 0; i < count; i++ {
		hit := o.results[i]
		selected := i == o.cursor

		author := o.authors.Name(hit.Book.Author)
		authorWidth := min(len([]rune(author)), width/3)
		titleWidth := width - authorWidth - 2

		var line string
		if len([]rune(hit.Book.Title)) <= titleWidth {
			line = styles.HighlightMatches(hit.Book.Title, hit.MatchedIndexes, selected)
		} else {
			// Offsets no longer line up once the title is cut
			style := styles.NormalItemStyle
			if selected {
				style = styles.SelectedItemStyle
			}
			line = style.UnsetPadding().Render(styles.Truncate(hit.Book.Title, titleWidth))
		}

		b.WriteString(line)
		b.WriteString("  ")
		b.WriteString(styles.DimStyle.Render(styles.Truncate(author, authorWidth)))
		if i < count-1 {
			b.WriteString("\n")
		}
	}

	if len(o.results) > MaxQuickFindResults {
		b.WriteString("\n")
		b.WriteString(styles.DimStyle.Render(fmt.Sprintf("... and %d more", len(o.results)-MaxQuickFindResults)))
	}
}
