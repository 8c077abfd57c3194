package tui

import (
	"github.com/mmcdole/bookcase/internal/domain"
)

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// CatalogLoadedMsg signals that the catalog has been loaded
type CatalogLoadedMsg struct {
	Catalog  domain.Catalog
	Result   domain.SyncResult
	Reloaded bool // true when the user asked for a reload; the active filter is kept
}

// ThemeSavedMsg signals that the theme choice was persisted
type ThemeSavedMsg struct {
	Theme string
}

// CoverOpenedMsg signals that the cover image was handed to the viewer
type CoverOpenedMsg struct {
	Title string
}

// ClearStatusMsg clears the status message
type ClearStatusMsg struct{}

// StatusMsg sets a status message
type StatusMsg struct {
	Message string
	IsError bool
}
