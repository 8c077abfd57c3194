package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// AnyID is the filter value that matches every author or genre
const AnyID = "any"

// Book is a single catalog entry. Books are never mutated after loading.
type Book struct {
	ID          string    `json:"id" yaml:"id"`                   // Unique identifier
	Title       string    `json:"title" yaml:"title"`             // Display title
	Author      string    `json:"author" yaml:"author"`           // AuthorID, resolved through Catalog.Authors
	Image       string    `json:"image" yaml:"image"`             // Cover image URL
	Published   time.Time `json:"published" yaml:"published"`     // Publication date
	Description string    `json:"description" yaml:"description"` // Blurb shown in the detail view
	Genres      []string  `json:"genres" yaml:"genres"`           // GenreIDs, resolved through Catalog.Genres
}

// Year returns the publication year (0 if the date is unset)
func (b Book) Year() int {
	if b.Published.IsZero() {
		return 0
	}
	return b.Published.Year()
}

// HasGenre reports whether the book is tagged with the given genre
func (b Book) HasGenre(genreID string) bool {
	for _, g := range b.Genres {
		if g == genreID {
			return true
		}
	}
	return false
}

// Subtitle returns the "Author (Year)" line used by the detail view
func (b Book) Subtitle(authors Lookup) string {
	name := authors.Name(b.Author)
	if year := b.Year(); year > 0 {
		return fmt.Sprintf("%s (%d)", name, year)
	}
	return name
}

// Option is one entry of a selector list
type Option struct {
	ID   string
	Name string
}

// Lookup maps an author or genre id to its display name
type Lookup map[string]string

// Name returns the display name for id, falling back to the id itself
func (l Lookup) Name(id string) string {
	if name, ok := l[id]; ok {
		return name
	}
	return id
}

// Has reports whether id is a known key
func (l Lookup) Has(id string) bool {
	_, ok := l[id]
	return ok
}

// Options returns the lookup entries sorted by display name, then id
func (l Lookup) Options() []Option {
	opts := make([]Option, 0, len(l))
	for id, name := range l {
		opts = append(opts, Option{ID: id, Name: name})
	}
	sort.Slice(opts, func(i, j int) bool {
		a, b := strings.ToLower(opts[i].Name), strings.ToLower(opts[j].Name)
		if a != b {
			return a < b
		}
		return opts[i].ID < opts[j].ID
	})
	return opts
}

// Catalog is the full static collection plus its lookup tables
type Catalog struct {
	Books   []Book `json:"books" yaml:"books"`
	Authors Lookup `json:"authors" yaml:"authors"`
	Genres  Lookup `json:"genres" yaml:"genres"`
}

// Validate checks id uniqueness and that every author and genre reference resolves
func (c Catalog) Validate() error {
	seen := make(map[string]bool, len(c.Books))
	for i, b := range c.Books {
		if b.ID == "" {
			return fmt.Errorf("%w: book at index %d has no id", ErrInvalidCatalog, i)
		}
		if seen[b.ID] {
			return fmt.Errorf("%w: duplicate book id %q", ErrInvalidCatalog, b.ID)
		}
		seen[b.ID] = true

		if !c.Authors.Has(b.Author) {
			return fmt.Errorf("%w: book %q references unknown author %q", ErrInvalidCatalog, b.ID, b.Author)
		}
		for _, g := range b.Genres {
			if !c.Genres.Has(g) {
				return fmt.Errorf("%w: book %q references unknown genre %q", ErrInvalidCatalog, b.ID, g)
			}
		}
	}
	// "any" is the wildcard filter value and cannot double as a real id
	if c.Authors.Has(AnyID) || c.Genres.Has(AnyID) {
		return fmt.Errorf("%w: %q is reserved", ErrInvalidCatalog, AnyID)
	}
	return nil
}
