package catalog

import "github.com/mmcdole/bookcase/internal/domain"

// PageSlice returns every item revealed up to and including page:
// matches[0 : page*pageSize], clamped. Used to redraw the list from scratch.
func PageSlice(matches []domain.Book, page, pageSize int) []domain.Book {
	if page < 1 || pageSize <= 0 {
		return []domain.Book{}
	}
	end := min(page*pageSize, len(matches))
	return matches[:end]
}

// PageWindow returns only the items page adds:
// matches[(page-1)*pageSize : page*pageSize], clamped. Used to append on "show more".
func PageWindow(matches []domain.Book, page, pageSize int) []domain.Book {
	if page < 1 || pageSize <= 0 {
		return []domain.Book{}
	}
	start := (page - 1) * pageSize
	if start >= len(matches) {
		return []domain.Book{}
	}
	end := min(page*pageSize, len(matches))
	return matches[start:end]
}

// RemainingCount is how many matches are still hidden after page
func RemainingCount(matches []domain.Book, page, pageSize int) int {
	return max(0, len(matches)-page*pageSize)
}
