package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/bookcase/internal/domain"
	"github.com/mmcdole/bookcase/internal/service"
)

// CoverOpener launches an external viewer for a cover image URL
type CoverOpener interface {
	Open(url string) error
}

// Command factories for async operations

// LoadCatalogCmd loads the catalog, from cache when the source is unchanged
func LoadCatalogCmd(svc *service.CatalogService) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		cat, res, err := svc.Load(ctx)
		if err != nil {
			return ErrMsg{Err: err, Context: "loading catalog"}
		}
		return CatalogLoadedMsg{Catalog: cat, Result: res}
	}
}

// ReloadCatalogCmd drops the cached copy and parses the source again
func ReloadCatalogCmd(svc *service.CatalogService) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		cat, res, err := svc.Reload(ctx)
		if err != nil {
			return ErrMsg{Err: err, Context: "reloading catalog"}
		}
		return CatalogLoadedMsg{Catalog: cat, Result: res, Reloaded: true}
	}
}

// SaveThemeCmd persists the theme choice
func SaveThemeCmd(svc *service.CatalogService, theme string) tea.Cmd {
	return func() tea.Msg {
		saved, err := svc.SaveTheme(theme)
		if err != nil {
			return ErrMsg{Err: err, Context: "saving theme"}
		}
		return ThemeSavedMsg{Theme: saved}
	}
}

// OpenCoverCmd opens the book's cover image in an external viewer
func OpenCoverCmd(opener CoverOpener, book domain.Book) tea.Cmd {
	return func() tea.Msg {
		if err := opener.Open(book.Image); err != nil {
			return ErrMsg{Err: err, Context: "opening cover"}
		}
		return CoverOpenedMsg{Title: book.Title}
	}
}

// ClearStatusCmd returns a command that clears the status after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
