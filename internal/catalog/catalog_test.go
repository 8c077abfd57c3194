package catalog

import (
	"fmt"
	"testing"

	"github.com/mmcdole/bookcase/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tenBooks has exactly three titles containing "a" (ids 1, 3, 7)
func tenBooks() []domain.Book {
	titles := []string{
		"Atlas Shrugged", "Dune", "Emma", "Ulysses", "Beloved",
		"Moby Dick", "Hamlet", "The Hobbit", "Nineteen Eighty-Four", "Jude the Obscure",
	}
	books := make([]domain.Book, len(titles))
	for i, title := range titles {
		author := "a1"
		if i%2 == 1 {
			author = "a2"
		}
		genres := []string{"g1"}
		if i%3 == 0 {
			genres = append(genres, "g2")
		}
		books[i] = domain.Book{
			ID:     fmt.Sprintf("%d", i+1),
			Title:  title,
			Author: author,
			Genres: genres,
		}
	}
	return books
}

func ids(books []domain.Book) []string {
	out := make([]string, len(books))
	for i, b := range books {
		out[i] = b.ID
	}
	return out
}

// isSubsequence reports whether sub appears in full in the same relative order
func isSubsequence(sub, full []domain.Book) bool {
	j := 0
	for _, b := range full {
		if j < len(sub) && sub[j].ID == b.ID {
			j++
		}
	}
	return j == len(sub)
}

func TestApplyFilter(t *testing.T) {
	books := tenBooks()

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"any returns everything", AnyFilter(), ids(books)},
		{"zero value behaves as any", Filter{}, ids(books)},
		{"blank title is ignored", Filter{Title: "   ", Author: domain.AnyID, Genre: domain.AnyID}, ids(books)},
		{"title is case insensitive", Filter{Title: "A", Author: domain.AnyID, Genre: domain.AnyID}, []string{"1", "3", "7"}},
		{"title substring", Filter{Title: "obbi"}, []string{"8"}},
		{"author only", Filter{Author: "a2"}, []string{"2", "4", "6", "8", "10"}},
		{"genre only", Filter{Genre: "g2"}, []string{"1", "4", "7", "10"}},
		{"all three combined", Filter{Title: "a", Author: "a1", Genre: "g2"}, []string{"1", "7"}},
		{"unknown author matches nothing", Filter{Author: "X"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyFilter(books, tt.filter)
			assert.Equal(t, tt.want, ids(got))
			assert.True(t, isSubsequence(got, books), "result must keep collection order")
		})
	}
}

func TestApplyFilterIsDeterministic(t *testing.T) {
	books := tenBooks()
	f := Filter{Title: "e", Genre: "g1"}
	assert.Equal(t, ApplyFilter(books, f), ApplyFilter(books, f))
}

func TestApplyFilterDoesNotAliasCollection(t *testing.T) {
	books := tenBooks()
	got := ApplyFilter(books, AnyFilter())
	got[0].Title = "changed"
	assert.Equal(t, "Atlas Shrugged", books[0].Title)
}

func TestPageSliceAndWindow(t *testing.T) {
	books := tenBooks()

	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(PageSlice(books, 1, 4)))
	assert.Equal(t, ids(books[:8]), ids(PageSlice(books, 2, 4)))
	assert.Equal(t, ids(books), ids(PageSlice(books, 3, 4)))
	assert.Equal(t, ids(books), ids(PageSlice(books, 99, 4)))

	assert.Equal(t, []string{"5", "6", "7", "8"}, ids(PageWindow(books, 2, 4)))
	assert.Equal(t, []string{"9", "10"}, ids(PageWindow(books, 3, 4)))
	assert.Empty(t, PageWindow(books, 4, 4))

	assert.Empty(t, PageSlice(books, 0, 4))
	assert.Empty(t, PageWindow(books, 1, 0))
	assert.Empty(t, PageSlice(nil, 1, 4))
}

func TestRemainingCount(t *testing.T) {
	books := tenBooks()
	for page := 1; page <= 6; page++ {
		for size := 1; size <= 12; size++ {
			n := RemainingCount(books, page, size)
			assert.GreaterOrEqual(t, n, 0)
			assert.Equal(t, page*size >= len(books), n == 0, "page=%d size=%d", page, size)
		}
	}
	assert.Equal(t, 6, RemainingCount(books, 1, 4))
}

func TestFindByID(t *testing.T) {
	books := tenBooks()

	b, ok := FindByID(books, "7")
	require.True(t, ok)
	assert.Equal(t, "Hamlet", b.Title)

	b, ok = FindByID(books, "missing")
	assert.False(t, ok)
	assert.Equal(t, domain.Book{}, b)
}

func TestQueryStateShowMoreScenario(t *testing.T) {
	books := tenBooks()

	state := NewQueryState(books, 2).Apply(books, Filter{Title: "a", Author: domain.AnyID, Genre: domain.AnyID})
	require.Equal(t, 3, state.Total())
	assert.Equal(t, 1, state.Page)
	assert.Equal(t, 1, state.Remaining())
	assert.True(t, state.HasMore())
	assert.Len(t, state.Visible(), 2)

	next, added := state.ShowMore()
	assert.Equal(t, 2, next.Page)
	assert.Equal(t, []string{"7"}, ids(added))
	assert.Equal(t, []string{"1", "3", "7"}, ids(next.Visible()))
	assert.Equal(t, 0, next.Remaining())
	assert.False(t, next.HasMore())

	// The previous value is untouched
	assert.Equal(t, 1, state.Page)

	again, none := next.ShowMore()
	assert.Equal(t, next.Page, again.Page)
	assert.Empty(t, none)
}

func TestQueryStateNoResults(t *testing.T) {
	books := tenBooks()
	state := NewQueryState(books, 2).Apply(books, Filter{Author: "X"})
	assert.True(t, state.Empty())
	assert.Empty(t, state.Visible())
	assert.Equal(t, 0, state.Remaining())
	assert.False(t, state.HasMore())
}

func TestQueryStateApplyResetsPage(t *testing.T) {
	books := tenBooks()
	state := NewQueryState(books, 2)
	state, _ = state.ShowMore()
	state, _ = state.ShowMore()
	require.Equal(t, 3, state.Page)

	state = state.Apply(books, AnyFilter())
	assert.Equal(t, 1, state.Page)
	assert.Equal(t, 2, state.PageSize)
	assert.Equal(t, 8, state.Remaining())
}

func TestNewQueryStateDefaults(t *testing.T) {
	state := NewQueryState(tenBooks(), 0)
	assert.Equal(t, DefaultPageSize, state.PageSize)
	assert.True(t, state.Filter.IsAny())
	assert.Len(t, state.Visible(), 10)
}

func TestQueryStateRevealIndex(t *testing.T) {
	state := NewQueryState(tenBooks(), 3)
	assert.Equal(t, 1, state.RevealIndex(2).Page)
	assert.Equal(t, 3, state.RevealIndex(7).Page)
	assert.Equal(t, 1, state.RevealIndex(42).Page)

	// Never moves backwards
	advanced := state.RevealIndex(9)
	assert.Equal(t, 4, advanced.RevealIndex(0).Page)
}
