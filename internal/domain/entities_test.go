package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() Catalog {
	return Catalog{
		Books: []Book{
			{ID: "b1", Title: "Dune", Author: "a1", Genres: []string{"g1"},
				Published: time.Date(1965, 8, 1, 0, 0, 0, 0, time.UTC)},
			{ID: "b2", Title: "Emma", Author: "a2", Genres: []string{"g2"}},
		},
		Authors: Lookup{"a1": "Frank Herbert", "a2": "Jane Austen"},
		Genres:  Lookup{"g1": "Science Fiction", "g2": "Romance"},
	}
}

func TestCatalogValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		require.NoError(t, testCatalog().Validate())
	})

	t.Run("duplicate id", func(t *testing.T) {
		cat := testCatalog()
		cat.Books[1].ID = "b1"
		err := cat.Validate()
		assert.True(t, errors.Is(err, ErrInvalidCatalog))
		assert.Contains(t, err.Error(), "duplicate")
	})

	t.Run("missing id", func(t *testing.T) {
		cat := testCatalog()
		cat.Books[0].ID = ""
		assert.ErrorIs(t, cat.Validate(), ErrInvalidCatalog)
	})

	t.Run("unknown author", func(t *testing.T) {
		cat := testCatalog()
		cat.Books[0].Author = "nobody"
		assert.ErrorIs(t, cat.Validate(), ErrInvalidCatalog)
	})

	t.Run("unknown genre", func(t *testing.T) {
		cat := testCatalog()
		cat.Books[1].Genres = append(cat.Books[1].Genres, "g9")
		assert.ErrorIs(t, cat.Validate(), ErrInvalidCatalog)
	})

	t.Run("reserved any", func(t *testing.T) {
		cat := testCatalog()
		cat.Genres[AnyID] = "Anything"
		assert.ErrorIs(t, cat.Validate(), ErrInvalidCatalog)
	})
}

func TestLookupOptionsSortedByName(t *testing.T) {
	l := Lookup{"z": "alpha", "a": "Charlie", "m": "bravo"}
	opts := l.Options()
	require.Len(t, opts, 3)
	assert.Equal(t, []Option{{"z", "alpha"}, {"m", "bravo"}, {"a", "Charlie"}}, opts)
}

func TestLookupNameFallsBackToID(t *testing.T) {
	l := Lookup{"a1": "Frank Herbert"}
	assert.Equal(t, "Frank Herbert", l.Name("a1"))
	assert.Equal(t, "a9", l.Name("a9"))
}

func TestBookSubtitle(t *testing.T) {
	cat := testCatalog()
	assert.Equal(t, "Frank Herbert (1965)", cat.Books[0].Subtitle(cat.Authors))
	assert.Equal(t, "Jane Austen", cat.Books[1].Subtitle(cat.Authors))
}

func TestBookHasGenre(t *testing.T) {
	b := Book{Genres: []string{"g1", "g2"}}
	assert.True(t, b.HasGenre("g2"))
	assert.False(t, b.HasGenre("g3"))
}

func TestParseTheme(t *testing.T) {
	for in, want := range map[string]string{"": ThemeAuto, " Night ": ThemeNight, "day": ThemeDay, "AUTO": ThemeAuto} {
		got, err := ParseTheme(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseTheme("sepia")
	assert.ErrorIs(t, err, ErrUnknownTheme)
}
