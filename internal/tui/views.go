package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/bookcase/internal/catalog"
	"github.com/mmcdole/bookcase/internal/domain"
	"github.com/mmcdole/bookcase/internal/tui/styles"
)

// View renders the whole screen
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	if m.State == StateHelp {
		return styles.Page(m.Width, m.Height, m.renderHelp())
	}

	view := lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		m.List.View(),
		m.renderFooter(),
	)

	// Overlay the open modal if any
	var overlay string
	switch {
	case m.Detail.IsVisible():
		overlay = m.Detail.View()
	case m.SearchForm.IsVisible():
		overlay = m.SearchForm.View()
	case m.Settings.IsVisible():
		overlay = m.Settings.View()
	case m.QuickFind.IsVisible():
		overlay = m.QuickFind.View()
	}
	if overlay != "" {
		view = lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			overlay)
	}

	return styles.Page(m.Width, m.Height, view)
}

// renderHeader shows the app name and a summary of the active filter
func (m Model) renderHeader() string {
	left := styles.TitleStyle.Render("Bookcase")
	right := styles.DimStyle.Render(styles.Truncate(
		DescribeFilter(m.Query.Filter, m.Catalog.Authors, m.Catalog.Genres),
		max(m.Width-lipgloss.Width(left)-2, 0)))

	gap := max(m.Width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// DescribeFilter renders a filter as a short human-readable line
func DescribeFilter(f catalog.Filter, authors, genres domain.Lookup) string {
	f = f.Normalize()
	if f.IsAny() {
		return "All books"
	}

	var parts []string
	if t := strings.TrimSpace(f.Title); t != "" {
		parts = append(parts, fmt.Sprintf("Title %q", t))
	}
	if f.Author != domain.AnyID {
		parts = append(parts, "Author "+authors.Name(f.Author))
	}
	if f.Genre != domain.AnyID {
		parts = append(parts, "Genre "+genres.Name(f.Genre))
	}
	return strings.Join(parts, " · ")
}

// renderFooter renders a single-line minimal footer
func (m Model) renderFooter() string {
	// Left side: loading or status message
	var left string
	switch {
	case m.Loading:
		left = styles.DimStyle.Render("Loading catalog...")
	case m.StatusMsg != "":
		if m.StatusIsErr {
			left = styles.ErrorStyle.Render(m.StatusMsg)
		} else {
			left = styles.SuccessStyle.Render(m.StatusMsg)
		}
	}

	// Center section: the keys that matter for the current list
	var hints []string
	hints = append(hints, styles.AccentStyle.Render("/")+styles.DimStyle.Render(" search"))
	if m.Query.HasMore() {
		hints = append(hints, styles.AccentStyle.Render("m")+styles.DimStyle.Render(" more"))
	}
	if !m.Query.Filter.IsAny() {
		hints = append(hints, styles.AccentStyle.Render("esc")+styles.DimStyle.Render(" clear"))
	}
	center := strings.Join(hints, "  ")

	// Right side: "? help" hint
	right := styles.AccentStyle.Render("?") + styles.DimStyle.Render(" help")

	// Layout: left + centered hints + right
	leftWidth := lipgloss.Width(left)
	centerWidth := lipgloss.Width(center)
	rightWidth := lipgloss.Width(right)

	totalContent := leftWidth + centerWidth + rightWidth
	if totalContent >= m.Width {
		// Not enough space - just left + right
		gap := max(m.Width-leftWidth-rightWidth, 0)
		return left + strings.Repeat(" ", gap) + right
	}

	// Center the hints in available space
	available := m.Width - leftWidth - rightWidth
	leftPad := (available - centerWidth) / 2
	rightPad := available - centerWidth - leftPad

	return left + strings.Repeat(" ", leftPad) + center + strings.Repeat(" ", rightPad) + right
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	help := `
BROWSING                        SEARCH
  j/k        Up/down               /      Title, author and genre
  g/Home     First item            f      Quick find in results
  G/End      Last item             Esc    Clear filters
  PgUp/PgDn  Scroll page
  Ctrl+u/d   Scroll half page

BOOKS                           OTHER
  Enter      Details / show more   t      Theme (auto/day/night)
  m          Show more             r      Reload catalog
  o          Open cover (details)  q      Quit
                                   ?      This help

Press ? or Esc to return...
`

	return lipgloss.Place(m.Width, m.Height,
		lipgloss.Center, lipgloss.Center,
		styles.ModalStyle.Render(help))
}
