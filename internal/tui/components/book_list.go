package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/bookcase/internal/domain"
	"github.com/mmcdole/bookcase/internal/tui/styles"
)

// Layout constants for the book list
const (
	// Border adds 1 char on each side (left+right for width, top+bottom for height)
	BorderWidth  = 2
	BorderHeight = 2

	// Scroll indicators ("↑ more" and "↓ more") each take 1 line
	ScrollIndicatorLines = 2

	// Title line plus the "Show more" button line
	ChromeLines = 2
)

// NoResultsMessage is shown in place of the list when nothing matches
const NoResultsMessage = "No results found. Your filters might be a little too narrow!"

// BookList is a scrollable list of book previews with a "Show more" button
// as its last row. The cursor can rest on the button while it is enabled.
type BookList struct {
	books     []domain.Book
	authors   domain.Lookup
	remaining int // hidden matches, drives the button label
	total     int // all matches

	// Selection
	cursor     int
	offset     int
	maxVisible int

	// Dimensions
	width  int
	height int

	title string
}

// NewBookList creates an empty list
func NewBookList(title string) *BookList {
	return &BookList{title: title, authors: domain.Lookup{}}
}

// SetAuthors sets the lookup used for the dim author line
func (c *BookList) SetAuthors(authors domain.Lookup) {
	c.authors = authors
}

// SetBooks replaces the visible previews and scrolls to the top
func (c *BookList) SetBooks(books []domain.Book, total, remaining int) {
	c.books = books
	c.total = total
	c.remaining = remaining
	c.cursor = 0
	c.offset = 0
}

// Extend replaces the previews after a "show more", keeping the cursor
func (c *BookList) Extend(books []domain.Book, total, remaining int) {
	c.books = books
	c.total = total
	c.remaining = remaining
	c.SetSelectedIndex(c.cursor)
}

func (c *BookList) Init() tea.Cmd {
	return nil
}

// Update handles navigation keys
func (c *BookList) Update(msg tea.Msg) (*BookList, tea.Cmd) {
	count := c.ItemCount()
	if count == 0 {
		return c, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch {
	case key.Matches(keyMsg, BookListKeys.Down):
		if c.cursor < count-1 {
			c.cursor++
			c.ensureVisible()
		}
	case key.Matches(keyMsg, BookListKeys.Up):
		if c.cursor > 0 {
			c.cursor--
			c.ensureVisible()
		}
	case key.Matches(keyMsg, BookListKeys.Home):
		c.cursor = 0
		c.offset = 0
	case key.Matches(keyMsg, BookListKeys.End):
		c.cursor = count - 1
		c.ensureVisible()
	case key.Matches(keyMsg, BookListKeys.HalfDown):
		c.SetSelectedIndex(c.cursor + c.maxVisible/2)
	case key.Matches(keyMsg, BookListKeys.HalfUp):
		c.SetSelectedIndex(c.cursor - c.maxVisible/2)
	case key.Matches(keyMsg, BookListKeys.PageDown):
		c.SetSelectedIndex(c.cursor + c.maxVisible)
	case key.Matches(keyMsg, BookListKeys.PageUp):
		c.SetSelectedIndex(c.cursor - c.maxVisible)
	}

	return c, nil
}

func (c *BookList) View() string {
	style := styles.ActiveBorder

	content := c.renderContent()

	// Subtract frame (border) size so total rendered size equals c.width x c.height
	frameW, frameH := style.GetFrameSize()

	return style.
		Width(c.width - frameW).
		Height(c.height - frameH).
		Render(content)
}

func (c *BookList) SetSize(width, height int) {
	c.width = width
	c.height = height
	c.recalcMaxVisible()
	c.ensureVisible() // Scroll to show selected item now that we know the size
}

// SelectedIndex returns the cursor row. It equals len(books) on the button.
func (c *BookList) SelectedIndex() int {
	return c.cursor
}

func (c *BookList) SetSelectedIndex(idx int) {
	max := c.ItemCount() - 1
	if max < 0 {
		c.cursor = 0
		return
	}
	if idx < 0 {
		idx = 0
	}
	if idx > max {
		idx = max
	}
	c.cursor = idx
	c.ensureVisible()
}

// SelectedID returns the id of the book under the cursor
func (c *BookList) SelectedID() (string, bool) {
	if c.cursor < 0 || c.cursor >= len(c.books) {
		return "", false
	}
	return c.books[c.cursor].ID, true
}

// OnButton reports whether the cursor rests on "Show more"
func (c *BookList) OnButton() bool {
	return c.remaining > 0 && c.cursor == len(c.books)
}

// ItemCount counts selectable rows: previews plus the enabled button
func (c *BookList) ItemCount() int {
	if c.remaining > 0 {
		return len(c.books) + 1
	}
	return len(c.books)
}

// Len returns the number of visible previews
func (c *BookList) Len() int {
	return len(c.books)
}

// Remaining returns the number on the button
func (c *BookList) Remaining() int {
	return c.remaining
}

func (c *BookList) IsEmpty() bool {
	return len(c.books) == 0
}

// ButtonLabel is the text of the "Show more" control
func (c *BookList) ButtonLabel() string {
	return fmt.Sprintf("Show more (%d)", c.remaining)
}

// Internal methods

func (c *BookList) recalcMaxVisible() {
	// Interior height = total - border (top+bottom)
	interiorHeight := c.height - BorderHeight
	c.maxVisible = interiorHeight - ScrollIndicatorLines - ChromeLines
	if c.maxVisible < 1 {
		c.maxVisible = 1
	}
}

// ensureVisible scrolls so the cursor row is in view. The button has its
// own line, so only preview rows take part in scrolling.
func (c *BookList) ensureVisible() {
	if c.maxVisible <= 0 {
		return
	}
	row := min(c.cursor, max(len(c.books)-1, 0))
	if row < c.offset {
		c.offset = row
	}
	if row >= c.offset+c.maxVisible {
		c.offset = row - c.maxVisible + 1
	}
}

// Rendering

func (c *BookList) renderContent() string {
	// Content width = list width - border (2 chars for left+right border)
	itemWidth := c.width - BorderWidth
	if itemWidth < 10 {
		itemWidth = 10
	}

	heading := c.title
	if c.total > 0 {
		heading = fmt.Sprintf("%s · %d of %d", c.title, len(c.books), c.total)
	}
	titleLine := styles.AccentStyle.Render(styles.Truncate(heading, itemWidth))

	if len(c.books) == 0 {
		msg := lipgloss.NewStyle().Width(itemWidth).Render(styles.DimStyle.Render(NoResultsMessage))
		return titleLine + "\n" + " " + "\n" + msg + "\n" + " " + "\n" + c.renderButton()
	}

	end := min(c.offset+c.maxVisible, len(c.books))

	lines := make([]string, 0, end-c.offset)
	for i := c.offset; i < end; i++ {
		lines = append(lines, c.renderBookItem(c.books[i], i == c.cursor, itemWidth))
	}

	// ALWAYS reserve space for header (even if empty) to prevent layout shifts
	header := " "
	if c.offset > 0 {
		header = styles.DimStyle.Render("↑ more")
	}

	// ALWAYS reserve space for footer (even if empty)
	footer := " "
	if end < len(c.books) {
		footer = styles.DimStyle.Render("↓ more")
	}

	return titleLine + "\n" + header + "\n" + strings.Join(lines, "\n") + "\n" + footer + "\n" + c.renderButton()
}

func (c *BookList) renderBookItem(b domain.Book, selected bool, width int) string {
	author := c.authors.Name(b.Author)
	dim := styles.Current.Dim

	// Available space: width - separator(2) - margins(2)
	available := width - 4
	if available < 10 {
		available = 10
	}
	authorWidth := min(len([]rune(author)), available/3)
	title := styles.Truncate(b.Title, available-authorWidth)
	author = styles.Truncate(author, authorWidth)

	parts := []styles.RowPart{
		{Text: title, Foreground: nil},
		{Text: "  " + author, Foreground: &dim},
	}

	return styles.RenderListRow(parts, selected, width)
}

func (c *BookList) renderButton() string {
	label := c.ButtonLabel()
	if c.remaining == 0 {
		return styles.DisabledButtonStyle.Render(label)
	}
	if c.OnButton() {
		return styles.AccentStyle.Render("▸ ") + styles.ButtonStyle.Render(label)
	}
	return "  " + styles.ButtonStyle.Render(label)
}
