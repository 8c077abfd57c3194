// Package catalog is the query engine over the static book collection:
// filtering, cumulative pagination and id lookup. Every function is pure;
// callers own the QueryState value and replace it on each action.
package catalog

import (
	"strings"

	"github.com/mmcdole/bookcase/internal/domain"
)

// Filter is a transient query built from the search form
type Filter struct {
	Title  string // Case-insensitive substring; blank matches everything
	Author string // AuthorID or domain.AnyID
	Genre  string // GenreID or domain.AnyID
}

// AnyFilter returns the filter that matches the whole collection
func AnyFilter() Filter {
	return Filter{Author: domain.AnyID, Genre: domain.AnyID}
}

// Normalize maps empty selector values to domain.AnyID
func (f Filter) Normalize() Filter {
	if f.Author == "" {
		f.Author = domain.AnyID
	}
	if f.Genre == "" {
		f.Genre = domain.AnyID
	}
	return f
}

// IsAny reports whether the filter matches every book
func (f Filter) IsAny() bool {
	f = f.Normalize()
	return strings.TrimSpace(f.Title) == "" && f.Author == domain.AnyID && f.Genre == domain.AnyID
}

// Matches reports whether a single book passes all three criteria
func (f Filter) Matches(b domain.Book) bool {
	f = f.Normalize()

	if strings.TrimSpace(f.Title) != "" &&
		!strings.Contains(strings.ToLower(b.Title), strings.ToLower(f.Title)) {
		return false
	}
	if f.Author != domain.AnyID && b.Author != f.Author {
		return false
	}
	if f.Genre != domain.AnyID && !b.HasGenre(f.Genre) {
		return false
	}
	return true
}

// ApplyFilter returns the books matching f, in collection order.
// The result never aliases collection; callers must reset the page to 1.
func ApplyFilter(collection []domain.Book, f Filter) []domain.Book {
	matches := make([]domain.Book, 0, len(collection))
	for _, b := range collection {
		if f.Matches(b) {
			matches = append(matches, b)
		}
	}
	return matches
}

// FindByID resolves an id back to its book. A miss is a normal outcome.
func FindByID(collection []domain.Book, id string) (domain.Book, bool) {
	for _, b := range collection {
		if b.ID == id {
			return b, true
		}
	}
	return domain.Book{}, false
}
