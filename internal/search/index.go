// Package search provides fuzzy matching over book titles and lookup names.
// The catalog filter itself stays a plain substring match; this package backs
// quick find in the TUI and name resolution for CLI flags.
package search

import (
	"strings"

	"github.com/mmcdole/bookcase/internal/domain"
	"github.com/sahilm/fuzzy"
)

// Hit is a quick-find result with match metadata for highlighting
type Hit struct {
	Book           domain.Book
	Index          int   // Position in the indexed slice
	MatchedIndexes []int // Byte offsets into the lowercased title
	Score          int   // Higher is better
}

// TitleIndex implements sahilm/fuzzy.Source over a slice of books
type TitleIndex struct {
	books       []domain.Book
	lowerTitles []string // Pre-computed lowercase titles
}

// NewTitleIndex indexes books in the order given. Hit.Index refers back into it.
func NewTitleIndex(books []domain.Book) *TitleIndex {
	idx := &TitleIndex{
		books:       books,
		lowerTitles: make([]string, len(books)),
	}
	for i, b := range books {
		idx.lowerTitles[i] = strings.ToLower(b.Title)
	}
	return idx
}

// String returns the lowercase title at index i (implements fuzzy.Source)
func (idx *TitleIndex) String(i int) string { return idx.lowerTitles[i] }

// Len returns the number of items (implements fuzzy.Source)
func (idx *TitleIndex) Len() int { return len(idx.books) }

// Find returns hits ranked best first. A blank query returns nil.
func (idx *TitleIndex) Find(query string) []Hit {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || idx.Len() == 0 {
		return nil
	}

	matches := fuzzy.FindFrom(query, idx)

	hits := make([]Hit, len(matches))
	for i, m := range matches {
		hits[i] = Hit{
			Book:           idx.books[m.Index],
			Index:          m.Index,
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}
	return hits
}
