package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/bookcase/internal/catalog"
	"github.com/mmcdole/bookcase/internal/domain"
	"github.com/mmcdole/bookcase/internal/tui/styles"
)

// Form fields in tab order
const (
	fieldTitle = iota
	fieldAuthor
	fieldGenre
	fieldCount
)

// selector is a one-of-many field cycled with left/right
type selector struct {
	label   string
	options []domain.Option
	index   int
}

func newSelector(label, anyLabel string, lookup domain.Lookup) selector {
	opts := append([]domain.Option{{ID: domain.AnyID, Name: anyLabel}}, lookup.Options()...)
	return selector{label: label, options: opts}
}

func (s *selector) selectID(id string) {
	s.index = 0
	for i, opt := range s.options {
		if opt.ID == id {
			s.index = i
			return
		}
	}
}

func (s *selector) step(delta int) {
	n := len(s.options)
	if n == 0 {
		return
	}
	s.index = ((s.index+delta)%n + n) % n
}

func (s selector) value() domain.Option {
	if len(s.options) == 0 {
		return domain.Option{ID: domain.AnyID}
	}
	return s.options[s.index]
}

// SearchForm is the overlay for building a title/author/genre filter
type SearchForm struct {
	visible bool
	focus   int
	title   textinput.Model
	author  selector
	genre   selector
	width   int
}

// NewSearchForm creates the search overlay for the given lookups
func NewSearchForm(authors, genres domain.Lookup) SearchForm {
	ti := textinput.New()
	ti.Placeholder = "Any title"
	ti.CharLimit = 100
	ti.Width = 36
	ti.Prompt = ""
	ti.PlaceholderStyle = styles.DimStyle

	return SearchForm{
		title:  ti,
		author: newSelector("Author", "All Authors", authors),
		genre:  newSelector("Genre", "All Genres", genres),
		width:  48,
	}
}

// Show displays the form prefilled with the active filter
func (m *SearchForm) Show(current catalog.Filter) {
	current = current.Normalize()
	m.visible = true
	m.focus = fieldTitle
	m.title.SetValue(current.Title)
	m.title.CursorEnd()
	m.title.TextStyle = lipgloss.NewStyle().Foreground(styles.Current.Fg)
	m.title.Focus()
	m.author.selectID(current.Author)
	m.genre.selectID(current.Genre)
}

// Hide dismisses the form
func (m *SearchForm) Hide() {
	m.visible = false
	m.title.Blur()
}

// IsVisible returns whether the form is shown
func (m SearchForm) IsVisible() bool {
	return m.visible
}

// Filter returns the filter described by the current field values
func (m SearchForm) Filter() catalog.Filter {
	return catalog.Filter{
		Title:  m.title.Value(),
		Author: m.author.value().ID,
		Genre:  m.genre.value().ID,
	}
}

// Reset clears all three fields back to "any"
func (m *SearchForm) Reset() {
	m.title.SetValue("")
	m.author.index = 0
	m.genre.index = 0
}

func (m *SearchForm) setFocus(f int) {
	m.focus = (f + fieldCount) % fieldCount
	if m.focus == fieldTitle {
		m.title.Focus()
	} else {
		m.title.Blur()
	}
}

// Update handles input events, returns (form, cmd, submitted)
func (m SearchForm) Update(msg tea.Msg) (SearchForm, tea.Cmd, bool) {
	if !m.visible {
		return m, nil, false
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, ModalKeys.Enter):
			m.Hide()
			return m, nil, true
		case key.Matches(keyMsg, ModalKeys.Escape):
			m.Hide()
			return m, nil, false
		case key.Matches(keyMsg, ModalKeys.Reset):
			m.Reset()
			return m, nil, false
		case key.Matches(keyMsg, ModalKeys.Next), key.Matches(keyMsg, ModalKeys.Down):
			m.setFocus(m.focus + 1)
			return m, nil, false
		case key.Matches(keyMsg, ModalKeys.Prev), key.Matches(keyMsg, ModalKeys.Up):
			m.setFocus(m.focus - 1)
			return m, nil, false
		}

		if m.focus != fieldTitle {
			switch {
			case key.Matches(keyMsg, ModalKeys.Left):
				m.currentSelector().step(-1)
			case key.Matches(keyMsg, ModalKeys.Right), keyMsg.String() == " ":
				m.currentSelector().step(1)
			}
			return m, nil, false // consume all keys on selectors
		}
	}

	var cmd tea.Cmd
	m.title, cmd = m.title.Update(msg)
	return m, cmd, false
}

func (m *SearchForm) currentSelector() *selector {
	if m.focus == fieldAuthor {
		return &m.author
	}
	return &m.genre
}

// View renders the form
func (m SearchForm) View() string {
	if !m.visible {
		return ""
	}

	labelStyle := lipgloss.NewStyle().Width(8)
	label := func(text string, field int) string {
		if m.focus == field {
			return styles.AccentStyle.Inherit(labelStyle).Render(text)
		}
		return styles.DimStyle.Inherit(labelStyle).Render(text)
	}

	renderSelector := func(s selector, field int) string {
		value := styles.Pad(s.value().Name, m.width-20)
		if m.focus == field {
			return label(s.label, field) + styles.AccentStyle.Render("‹ ") +
				styles.SelectedItemStyle.Render(value) + styles.AccentStyle.Render(" ›")
		}
		return label(s.label, field) + "  " + styles.NormalItemStyle.Render(value)
	}

	rows := []string{
		label("Title", fieldTitle) + "  " + m.title.View(),
		"",
		renderSelector(m.author, fieldAuthor),
		renderSelector(m.genre, fieldGenre),
		"",
		styles.HelpKeyStyle.Render("tab") + styles.HelpDescStyle.Render(" field  ") +
			styles.HelpKeyStyle.Render("←/→") + styles.HelpDescStyle.Render(" option  ") +
			styles.HelpKeyStyle.Render("C-r") + styles.HelpDescStyle.Render(" reset  ") +
			styles.HelpKeyStyle.Render("enter") + styles.HelpDescStyle.Render(" search"),
	}

	return styles.ModalStyle.
		Width(m.width).
		Render(styles.ModalTitleStyle.Render("Search") + "\n" + strings.Join(rows, "\n"))
}
