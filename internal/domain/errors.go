package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrBookNotFound indicates the requested book id is not in the catalog
	ErrBookNotFound = errors.New("book not found")

	// ErrInvalidCatalog indicates a catalog failed validation
	ErrInvalidCatalog = errors.New("invalid catalog")

	// ErrUnknownAuthor indicates an author name or id could not be resolved
	ErrUnknownAuthor = errors.New("unknown author")

	// ErrUnknownGenre indicates a genre name or id could not be resolved
	ErrUnknownGenre = errors.New("unknown genre")

	// ErrUnsupportedFormat indicates a catalog file extension we cannot decode
	ErrUnsupportedFormat = errors.New("unsupported catalog format")

	// ErrUnknownTheme indicates a theme name other than auto, day or night
	ErrUnknownTheme = errors.New("unknown theme")
)
