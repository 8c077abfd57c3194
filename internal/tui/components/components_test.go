package components

import (
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/bookcase/internal/catalog"
	"github.com/mmcdole/bookcase/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testAuthors = domain.Lookup{"a1": "Frank Herbert", "a2": "Jane Austen"}
	testGenres  = domain.Lookup{"g1": "Science Fiction", "g2": "Romance"}
)

func makeBooks(n int) []domain.Book {
	books := make([]domain.Book, n)
	for i := range books {
		books[i] = domain.Book{
			ID:     fmt.Sprintf("b%d", i),
			Title:  fmt.Sprintf("Book %d", i),
			Author: "a1",
			Genres: []string{"g1"},
		}
	}
	return books
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyType(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func TestBookListButtonRow(t *testing.T) {
	l := NewBookList("Books")
	l.SetSize(80, 20)
	l.SetBooks(makeBooks(3), 5, 2)

	assert.Equal(t, 4, l.ItemCount())
	assert.Equal(t, "Show more (2)", l.ButtonLabel())

	l.Update(keyRunes("G"))
	assert.True(t, l.OnButton())
	_, ok := l.SelectedID()
	assert.False(t, ok)

	// Revealing the rest keeps the cursor on the first new row
	l.Extend(makeBooks(5), 5, 0)
	assert.False(t, l.OnButton())
	id, ok := l.SelectedID()
	require.True(t, ok)
	assert.Equal(t, "b3", id)
	assert.Equal(t, 5, l.ItemCount())
}

func TestBookListNavigationClamps(t *testing.T) {
	l := NewBookList("Books")
	l.SetSize(80, 20)
	l.SetBooks(makeBooks(2), 2, 0)

	l.Update(keyRunes("k"))
	assert.Equal(t, 0, l.SelectedIndex())

	l.Update(keyRunes("j"))
	l.Update(keyRunes("j"))
	l.Update(keyRunes("j"))
	assert.Equal(t, 1, l.SelectedIndex())

	l.SetSelectedIndex(99)
	assert.Equal(t, 1, l.SelectedIndex())
}

func TestBookListEmptyView(t *testing.T) {
	l := NewBookList("Books")
	l.SetSize(120, 10)
	l.SetBooks(nil, 0, 0)

	assert.True(t, l.IsEmpty())
	assert.Contains(t, l.View(), "No results found.")
	assert.Contains(t, l.View(), "Show more (0)")
}

func TestSearchFormSubmit(t *testing.T) {
	f := NewSearchForm(testAuthors, testGenres)
	f.Show(catalog.AnyFilter())
	require.True(t, f.IsVisible())

	f, _, _ = f.Update(keyRunes("dune"))
	f, _, _ = f.Update(keyType(tea.KeyTab))
	// Options are sorted by name: All Authors, Frank Herbert, Jane Austen
	f, _, _ = f.Update(keyType(tea.KeyRight))
	f, _, _ = f.Update(keyType(tea.KeyTab))
	// Left from "All Genres" wraps to the last option, Science Fiction
	f, _, _ = f.Update(keyType(tea.KeyLeft))

	var submitted bool
	f, _, submitted = f.Update(keyType(tea.KeyEnter))
	assert.True(t, submitted)
	assert.False(t, f.IsVisible())
	assert.Equal(t, catalog.Filter{Title: "dune", Author: "a1", Genre: "g1"}, f.Filter())
}

func TestSearchFormPrefillAndReset(t *testing.T) {
	f := NewSearchForm(testAuthors, testGenres)
	f.Show(catalog.Filter{Title: "emma", Author: "a2", Genre: "g2"})
	assert.Equal(t, catalog.Filter{Title: "emma", Author: "a2", Genre: "g2"}, f.Filter())

	f, _, _ = f.Update(keyType(tea.KeyCtrlR))
	assert.True(t, f.Filter().IsAny())
	assert.True(t, f.IsVisible())

	var submitted bool
	f, _, submitted = f.Update(keyType(tea.KeyEsc))
	assert.False(t, submitted)
	assert.False(t, f.IsVisible())
}

func TestSearchFormUnknownIDFallsBackToAny(t *testing.T) {
	f := NewSearchForm(testAuthors, testGenres)
	f.Show(catalog.Filter{Author: "gone"})
	assert.Equal(t, domain.AnyID, f.Filter().Author)
}

func TestSettingsModalChoose(t *testing.T) {
	m := NewSettingsModal()
	m.Show(domain.ThemeAuto)

	m, _, _ = m.Update(keyRunes("j"))
	m, _, _ = m.Update(keyRunes("j"))
	var chosen bool
	m, _, chosen = m.Update(keyType(tea.KeyEnter))
	assert.True(t, chosen)
	assert.Equal(t, domain.ThemeNight, m.Selected())
	assert.False(t, m.IsVisible())
}

func TestSettingsModalCancel(t *testing.T) {
	m := NewSettingsModal()
	m.Show(domain.ThemeDay)
	assert.Equal(t, domain.ThemeDay, m.Selected())

	var chosen bool
	m, _, chosen = m.Update(keyType(tea.KeyEsc))
	assert.False(t, chosen)
	assert.False(t, m.IsVisible())
}

func TestDetailModal(t *testing.T) {
	book := domain.Book{
		ID:          "b1",
		Title:       "Dune",
		Author:      "a1",
		Image:       "https://example.com/dune.jpg",
		Published:   time.Date(1965, 8, 1, 0, 0, 0, 0, time.UTC),
		Description: "On the desert planet Arrakis.",
		Genres:      []string{"g1"},
	}

	d := NewDetailModal()
	d.SetLookups(testAuthors, testGenres)
	d.SetSize(100, 30)
	d.Show(book)

	view := d.View()
	assert.Contains(t, view, "Dune")
	assert.Contains(t, view, "Frank Herbert (1965)")
	assert.Contains(t, view, "Science Fiction")

	var open bool
	d, _, open = d.Update(keyRunes("o"))
	assert.True(t, open)

	d, _, _ = d.Update(keyType(tea.KeyEsc))
	assert.False(t, d.IsVisible())
}

func TestDetailModalNoCover(t *testing.T) {
	d := NewDetailModal()
	d.Show(domain.Book{ID: "b1", Title: "Untitled"})

	var open bool
	_, _, open = d.Update(keyRunes("o"))
	assert.False(t, open)
}

func TestOmnibarSelectsHit(t *testing.T) {
	books := []domain.Book{
		{ID: "1", Title: "Pride and Prejudice", Author: "a2"},
		{ID: "2", Title: "Dune", Author: "a1"},
		{ID: "3", Title: "Emma", Author: "a2"},
	}

	o := NewOmnibar()
	o.SetSize(100, 30)
	o.Show(books, testAuthors)

	o, _, _ = o.Update(keyRunes("emma"))
	require.NotEmpty(t, o.Results())

	var selected bool
	o, _, selected = o.Update(keyType(tea.KeyEnter))
	assert.True(t, selected)
	hit, ok := o.Selected()
	require.True(t, ok)
	assert.Equal(t, 2, hit.Index)
	assert.Equal(t, "Emma", hit.Book.Title)
}

func TestOmnibarNoResultsIgnoresEnter(t *testing.T) {
	o := NewOmnibar()
	o.Show([]domain.Book{{ID: "1", Title: "Dune"}}, testAuthors)

	o, _, _ = o.Update(keyRunes("zzz"))
	assert.Empty(t, o.Results())

	var selected bool
	o, _, selected = o.Update(keyType(tea.KeyEnter))
	assert.False(t, selected)
	assert.True(t, o.IsVisible())
	assert.Contains(t, o.View(), "No matches")
}
