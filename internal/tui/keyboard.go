package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/bookcase/internal/catalog"
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle state-specific keys
	if m.State == StateHelp {
		if key.Matches(msg, Keys.Escape, Keys.Help, Keys.Quit) {
			m.State = StateBrowsing
		}
		return m, nil
	}

	// Route to active modal if any
	if handled, newModel, cmd := m.routeToModal(msg); handled {
		return newModel, cmd
	}

	// Global keys
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.State = StateHelp
		return m, nil

	case key.Matches(msg, Keys.Escape):
		if !m.Query.Filter.IsAny() {
			m.applyFilter(catalog.AnyFilter())
			m.StatusMsg = "Filters cleared"
			m.StatusIsErr = false
			return m, ClearStatusCmd(2 * time.Second)
		}
		return m, nil

	case key.Matches(msg, Keys.Search):
		m.SearchForm.Show(m.Query.Filter)
		return m, textinput.Blink

	case key.Matches(msg, Keys.QuickFind):
		if m.Query.Empty() {
			return m, nil
		}
		m.QuickFind.Show(m.Query.Matches, m.Catalog.Authors)
		m.QuickFind.SetSize(m.Width, m.Height)
		return m, textinput.Blink

	case key.Matches(msg, Keys.Settings):
		m.Settings.Show(m.Theme)
		return m, nil

	case key.Matches(msg, Keys.ShowMore):
		m.showMore()
		return m, nil

	case key.Matches(msg, Keys.Enter):
		if m.List.OnButton() {
			m.showMore()
			return m, nil
		}
		m.openDetail()
		return m, nil

	case key.Matches(msg, Keys.Reload):
		if m.Loading {
			return m, nil
		}
		m.Loading = true
		return m, ReloadCatalogCmd(m.Svc)
	}

	// Everything else is list navigation
	var cmd tea.Cmd
	m.List, cmd = m.List.Update(msg)
	return m, cmd
}

// routeToModal sends the key to the open overlay. Overlays swallow every key.
func (m Model) routeToModal(msg tea.KeyMsg) (bool, Model, tea.Cmd) {
	if m.Detail.IsVisible() {
		var openCover bool
		m.Detail, _, openCover = m.Detail.Update(msg)
		if openCover && m.Opener != nil {
			return true, m, OpenCoverCmd(m.Opener, m.Detail.Book())
		}
		return true, m, nil
	}

	if m.SearchForm.IsVisible() {
		var cmd tea.Cmd
		var submitted bool
		m.SearchForm, cmd, submitted = m.SearchForm.Update(msg)
		if submitted {
			m.applyFilter(m.SearchForm.Filter())
		}
		return true, m, cmd
	}

	if m.Settings.IsVisible() {
		var chosen bool
		m.Settings, _, chosen = m.Settings.Update(msg)
		if chosen {
			m.Theme = m.Settings.Selected()
			m.applyTheme()
			return true, m, SaveThemeCmd(m.Svc, m.Theme)
		}
		return true, m, nil
	}

	if m.QuickFind.IsVisible() {
		var cmd tea.Cmd
		var selected bool
		m.QuickFind, cmd, selected = m.QuickFind.Update(msg)
		if selected {
			if hit, ok := m.QuickFind.Selected(); ok {
				m.revealMatch(hit.Index)
			}
		}
		return true, m, cmd
	}

	return false, m, nil
}
