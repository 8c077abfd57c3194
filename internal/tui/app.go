package tui

import (
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/bookcase/internal/catalog"
	"github.com/mmcdole/bookcase/internal/domain"
	"github.com/mmcdole/bookcase/internal/service"
	"github.com/mmcdole/bookcase/internal/tui/components"
	"github.com/mmcdole/bookcase/internal/tui/styles"
)

// ApplicationState represents the current state of the application
type ApplicationState int

const (
	StateBrowsing ApplicationState = iota
	StateHelp
)

// Vertical layout: header line and footer line
const ChromeHeight = 2

// Model is the main Bubble Tea model for the application
type Model struct {
	// Application state
	State ApplicationState
	Ready bool

	// Services
	Svc    *service.CatalogService
	Opener CoverOpener

	// Data
	Catalog domain.Catalog
	Query   catalog.QueryState

	// UI Components
	List       *components.BookList
	SearchForm components.SearchForm    // Title/author/genre filter overlay
	Settings   components.SettingsModal // Theme picker
	Detail     components.DetailModal   // Full record for one book
	QuickFind  components.Omnibar       // Fuzzy jump within the current results

	// Dimensions
	Width  int
	Height int

	// UI state
	StatusMsg   string
	StatusIsErr bool
	Loading     bool
	Theme       string

	// HasDark reports the terminal background for the auto theme
	HasDark func() bool

	pageSize int
}

// NewModel creates a new application model. theme is the resolved
// startup theme name; pageSize is the number of books per "show more".
func NewModel(svc *service.CatalogService, opener CoverOpener, theme string, pageSize int) Model {
	m := Model{
		State:      StateBrowsing,
		Svc:        svc,
		Opener:     opener,
		Catalog:    domain.Catalog{Authors: domain.Lookup{}, Genres: domain.Lookup{}},
		Query:      catalog.NewQueryState(nil, pageSize),
		List:       components.NewBookList("Books"),
		SearchForm: components.NewSearchForm(domain.Lookup{}, domain.Lookup{}),
		Settings:   components.NewSettingsModal(),
		Detail:     components.NewDetailModal(),
		QuickFind:  components.NewOmnibar(),
		Loading:    true,
		Theme:      theme,
		HasDark:    lipgloss.HasDarkBackground,
		pageSize:   pageSize,
	}
	m.applyTheme()
	return m
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return LoadCatalogCmd(m.Svc)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case CatalogLoadedMsg:
		m.Loading = false
		m.Catalog = msg.Catalog

		if msg.Reloaded {
			m.Query = m.Query.Apply(m.Catalog.Books, m.Query.Filter)
		} else {
			m.Query = catalog.NewQueryState(m.Catalog.Books, m.pageSize)
		}

		m.List.SetAuthors(m.Catalog.Authors)
		m.syncList(true)
		m.SearchForm = components.NewSearchForm(m.Catalog.Authors, m.Catalog.Genres)
		m.Detail.SetLookups(m.Catalog.Authors, m.Catalog.Genres)
		m.Detail.Hide()

		origin := "parsed"
		if msg.Result.FromCache {
			origin = "from cache"
		}
		m.StatusMsg = fmt.Sprintf("Loaded %d books (%s)", msg.Result.Count, origin)
		m.StatusIsErr = false
		return m, ClearStatusCmd(3 * time.Second)

	case ThemeSavedMsg:
		m.StatusMsg = "Theme: " + msg.Theme
		m.StatusIsErr = false
		return m, ClearStatusCmd(3 * time.Second)

	case CoverOpenedMsg:
		m.StatusMsg = "Opened cover: " + msg.Title
		m.StatusIsErr = false
		return m, ClearStatusCmd(3 * time.Second)

	case ErrMsg:
		slog.Error("tui command failed", "context", msg.Context, "error", msg.Err)
		m.StatusMsg = msg.Error()
		m.StatusIsErr = true
		m.Loading = false
		return m, ClearStatusCmd(5 * time.Second)

	case StatusMsg:
		m.StatusMsg = msg.Message
		m.StatusIsErr = msg.IsError
		return m, ClearStatusCmd(3 * time.Second)

	case ClearStatusMsg:
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, nil
	}

	// Non-key messages (cursor blink) go to whichever text input is open
	var cmd tea.Cmd
	switch {
	case m.SearchForm.IsVisible():
		m.SearchForm, cmd, _ = m.SearchForm.Update(msg)
	case m.QuickFind.IsVisible():
		m.QuickFind, cmd, _ = m.QuickFind.Update(msg)
	}
	return m, cmd
}

// applyTheme rebuilds the shared styles for the current theme
func (m *Model) applyTheme() {
	styles.Apply(styles.Resolve(m.Theme, m.HasDark))
}

// syncList pushes the visible slice of the query state into the list.
// reset scrolls back to the top, otherwise the cursor is kept.
func (m *Model) syncList(reset bool) {
	if reset {
		m.List.SetBooks(m.Query.Visible(), m.Query.Total(), m.Query.Remaining())
		return
	}
	m.List.Extend(m.Query.Visible(), m.Query.Total(), m.Query.Remaining())
}

// applyFilter runs a new query over the whole collection
func (m *Model) applyFilter(f catalog.Filter) {
	m.Query = m.Query.Apply(m.Catalog.Books, f)
	m.syncList(true)
	slog.Debug("filter applied", "title", m.Query.Filter.Title,
		"author", m.Query.Filter.Author, "genre", m.Query.Filter.Genre,
		"matches", m.Query.Total())
}

// showMore reveals the next page and keeps the cursor where it was
func (m *Model) showMore() {
	if !m.Query.HasMore() {
		return
	}
	m.Query, _ = m.Query.ShowMore()
	m.syncList(false)
}

// revealMatch makes matches[idx] visible and moves the cursor onto it
func (m *Model) revealMatch(idx int) {
	m.Query = m.Query.RevealIndex(idx)
	m.syncList(false)
	m.List.SetSelectedIndex(idx)
}

// openDetail shows the book under the cursor. An id that no longer
// resolves leaves the view unchanged.
func (m *Model) openDetail() {
	id, ok := m.List.SelectedID()
	if !ok {
		return
	}
	book, found := catalog.FindByID(m.Catalog.Books, id)
	if !found {
		return
	}
	m.Detail.Show(book)
}
