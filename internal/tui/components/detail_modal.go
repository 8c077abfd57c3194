package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/bookcase/internal/domain"
	"github.com/mmcdole/bookcase/internal/tui/styles"
	"github.com/muesli/reflow/wordwrap"
)

// Layout constants for the detail modal
const (
	DetailMaxWidth     = 80
	DetailChromeLines  = 10 // border, padding, header zone and hint line
	DetailMinBodyLines = 3
)

// DetailModal shows the full record for one book. The description scrolls.
type DetailModal struct {
	visible bool
	book    domain.Book
	authors domain.Lookup
	genres  domain.Lookup
	width   int
	height  int
	offset  int // description scroll offset
}

// NewDetailModal creates a hidden detail modal
func NewDetailModal() DetailModal {
	return DetailModal{authors: domain.Lookup{}, genres: domain.Lookup{}}
}

// SetLookups sets the tables used to resolve author and genre names
func (d *DetailModal) SetLookups(authors, genres domain.Lookup) {
	d.authors = authors
	d.genres = genres
}

// SetSize updates the space available to the modal
func (d *DetailModal) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// Show opens the modal on book
func (d *DetailModal) Show(book domain.Book) {
	d.visible = true
	d.book = book
	d.offset = 0 // Reset scroll on item change
}

// Hide dismisses the modal
func (d *DetailModal) Hide() {
	d.visible = false
}

// IsVisible returns whether the modal is shown
func (d DetailModal) IsVisible() bool {
	return d.visible
}

// Book returns the book being shown
func (d DetailModal) Book() domain.Book {
	return d.book
}

// Update handles scrolling and dismissal, returns (modal, cmd, openCover)
func (d DetailModal) Update(msg tea.Msg) (DetailModal, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !d.visible || !ok {
		return d, nil, false
	}

	switch {
	case key.Matches(keyMsg, ModalKeys.Escape), key.Matches(keyMsg, ModalKeys.Enter), keyMsg.String() == "q":
		d.visible = false
	case key.Matches(keyMsg, ModalKeys.Open):
		if d.book.Image != "" {
			return d, nil, true
		}
	case key.Matches(keyMsg, BookListKeys.Down), key.Matches(keyMsg, ModalKeys.Down):
		if d.offset < d.maxOffset() {
			d.offset++
		}
	case key.Matches(keyMsg, BookListKeys.Up), key.Matches(keyMsg, ModalKeys.Up):
		if d.offset > 0 {
			d.offset--
		}
	}
	return d, nil, false
}

func (d DetailModal) contentWidth() int {
	w := d.width - 10
	if w > DetailMaxWidth {
		w = DetailMaxWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}

func (d DetailModal) bodyLines() []string {
	if d.book.Description == "" {
		return nil
	}
	return strings.Split(wordwrap.String(d.book.Description, d.contentWidth()), "\n")
}

func (d DetailModal) bodyHeight() int {
	return max(d.height-DetailChromeLines, DetailMinBodyLines)
}

func (d DetailModal) maxOffset() int {
	return max(len(d.bodyLines())-d.bodyHeight(), 0)
}

// View renders the modal box
func (d DetailModal) View() string {
	if !d.visible {
		return ""
	}

	width := d.contentWidth()
	var b strings.Builder

	// Header zone
	b.WriteString(styles.TitleStyle.Render(styles.Truncate(d.book.Title, width)))
	b.WriteString("\n")
	b.WriteString(styles.SubtitleStyle.Render(styles.Truncate(d.book.Subtitle(d.authors), width)))
	b.WriteString("\n")

	if len(d.book.Genres) > 0 {
		names := make([]string, 0, len(d.book.Genres))
		for _, g := range d.book.Genres {
			names = append(names, d.genres.Name(g))
		}
		b.WriteString(styles.DimStyle.Render(styles.Truncate(strings.Join(names, " · "), width)))
		b.WriteString("\n")
	}
	if d.book.Image != "" {
		b.WriteString(styles.DimStyle.Render(styles.Truncate("Cover: "+d.book.Image, width)))
		b.WriteString("\n")
	}

	// Scrollable description
	lines := d.bodyLines()
	height := d.bodyHeight()
	offset := min(d.offset, d.maxOffset())
	end := min(offset+height, len(lines))

	up := " "
	if offset > 0 {
		up = styles.DimStyle.Render("↑ more")
	}
	down := " "
	if end < len(lines) {
		down = styles.DimStyle.Render("↓ more")
	}
	b.WriteString(up)
	b.WriteString("\n")
	if len(lines) > 0 {
		b.WriteString(strings.Join(lines[offset:end], "\n"))
	} else {
		b.WriteString(styles.DimStyle.Render("No description"))
	}
	b.WriteString("\n")
	b.WriteString(down)
	b.WriteString("\n")

	hint := styles.HelpKeyStyle.Render("esc") + styles.HelpDescStyle.Render(" close")
	if d.book.Image != "" {
		hint += "  " + styles.HelpKeyStyle.Render("o") + styles.HelpDescStyle.Render(" open cover")
	}
	if d.maxOffset() > 0 {
		hint += "  " + styles.HelpKeyStyle.Render("j/k") + styles.HelpDescStyle.Render(" scroll")
	}
	b.WriteString(hint)

	return styles.ModalStyle.Width(width + 4).Render(b.String())
}
