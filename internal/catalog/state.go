package catalog

import "github.com/mmcdole/bookcase/internal/domain"

// DefaultPageSize is the number of previews revealed per page
const DefaultPageSize = 36

// QueryState is the current filtered result set and how much of it is shown.
// It is a value: every transition returns a new state and leaves the old one intact.
type QueryState struct {
	Filter   Filter
	Matches  []domain.Book
	Page     int
	PageSize int
}

// NewQueryState starts at page 1 over the whole collection
func NewQueryState(collection []domain.Book, pageSize int) QueryState {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return QueryState{
		Filter:   AnyFilter(),
		Matches:  ApplyFilter(collection, AnyFilter()),
		Page:     1,
		PageSize: pageSize,
	}
}

// Apply filters the full collection and resets to page 1
func (s QueryState) Apply(collection []domain.Book, f Filter) QueryState {
	f = f.Normalize()
	return QueryState{
		Filter:   f,
		Matches:  ApplyFilter(collection, f),
		Page:     1,
		PageSize: s.PageSize,
	}
}

// ShowMore advances one page and returns the newly revealed items.
// When nothing is left it returns the state unchanged and no items.
func (s QueryState) ShowMore() (QueryState, []domain.Book) {
	if !s.HasMore() {
		return s, []domain.Book{}
	}
	s.Page++
	return s, PageWindow(s.Matches, s.Page, s.PageSize)
}

// Visible returns every item revealed so far
func (s QueryState) Visible() []domain.Book {
	return PageSlice(s.Matches, s.Page, s.PageSize)
}

// Remaining returns how many matches are still hidden
func (s QueryState) Remaining() int {
	return RemainingCount(s.Matches, s.Page, s.PageSize)
}

// HasMore reports whether "show more" should be enabled
func (s QueryState) HasMore() bool {
	return s.Remaining() > 0
}

// Empty reports the no-results state
func (s QueryState) Empty() bool {
	return len(s.Matches) == 0
}

// Total returns the number of matches
func (s QueryState) Total() int {
	return len(s.Matches)
}

// RevealIndex returns a state whose visible list includes matches[idx],
// advancing pages as needed. Out-of-range indexes leave the state unchanged.
func (s QueryState) RevealIndex(idx int) QueryState {
	if idx < 0 || idx >= len(s.Matches) || s.PageSize <= 0 {
		return s
	}
	if need := idx/s.PageSize + 1; need > s.Page {
		s.Page = need
	}
	return s
}
