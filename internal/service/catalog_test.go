package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmcdole/bookcase/internal/domain"
	"github.com/mmcdole/bookcase/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smallCatalog = `{
  "authors": {"a1": "Frank Herbert"},
  "genres": {"g1": "Science Fiction"},
  "books": [{"id": "b1", "title": "Dune", "author": "a1", "published": "1965-08-01", "genres": ["g1"]}]
}`

func newService(t *testing.T, source string) (*CatalogService, *store.CatalogStore) {
	t.Helper()
	st, err := store.NewCatalogStore("")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return NewCatalogService(st, source, nil), st
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadSampleThenCache(t *testing.T) {
	svc, _ := newService(t, "")
	ctx := context.Background()

	cat, res, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.False(t, res.FromCache)
	assert.Equal(t, 14, res.Count)
	assert.Len(t, cat.Books, 14)
	assert.Len(t, res.Fingerprint, 16)

	cached, res2, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.True(t, res2.FromCache)
	assert.Equal(t, res.Fingerprint, res2.Fingerprint)
	assert.Equal(t, cat.Books[0].Title, cached.Books[0].Title)
}

func TestLoadReparsesChangedSource(t *testing.T) {
	path := writeFile(t, "books.json", smallCatalog)
	svc, _ := newService(t, path)
	ctx := context.Background()

	_, res, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Count)

	updated := `{"authors": {"a1": "Frank Herbert"}, "genres": {}, "books": [
		{"id": "b1", "title": "Dune", "author": "a1"},
		{"id": "b2", "title": "Children of Dune", "author": "a1"}]}`
	require.NoError(t, os.WriteFile(path, []byte(updated), 0644))

	cat, res, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.False(t, res.FromCache)
	assert.Len(t, cat.Books, 2)
}

func TestLoadErrors(t *testing.T) {
	svc, _ := newService(t, filepath.Join(t.TempDir(), "missing.json"))
	_, _, err := svc.Load(context.Background())
	assert.Error(t, err)

	svc, _ = newService(t, writeFile(t, "bad.json", `{"books":[{"id":"1","author":"nobody"}]}`))
	_, _, err = svc.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrInvalidCatalog)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = svc.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReload(t *testing.T) {
	svc, _ := newService(t, "")
	ctx := context.Background()

	_, _, err := svc.Load(ctx)
	require.NoError(t, err)

	_, res, err := svc.Reload(ctx)
	require.NoError(t, err)
	assert.False(t, res.FromCache)
}

func TestImport(t *testing.T) {
	svc, st := newService(t, "")
	ctx := context.Background()
	path := writeFile(t, "books.json", smallCatalog)

	cat, res, err := svc.Import(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, path, res.Source)
	assert.Equal(t, path, svc.Source())
	assert.Len(t, cat.Books, 1)
	assert.True(t, st.IsValid(res.Fingerprint))

	// Subsequent loads come from the imported file's cache
	_, res, err = svc.Load(ctx)
	require.NoError(t, err)
	assert.True(t, res.FromCache)
	assert.Equal(t, 1, res.Count)
}

func TestImportRejectsInvalid(t *testing.T) {
	svc, st := newService(t, "")
	ctx := context.Background()

	_, res, err := svc.Load(ctx)
	require.NoError(t, err)

	_, _, err = svc.Import(ctx, writeFile(t, "bad.yaml", "books: [{id: x, author: ghost}]"))
	assert.ErrorIs(t, err, domain.ErrInvalidCatalog)

	// The previous cache is untouched
	assert.True(t, st.IsValid(res.Fingerprint))
	assert.Equal(t, "", svc.Source())

	_, _, err = svc.Import(ctx, writeFile(t, "books.csv", "id,title"))
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestTheme(t *testing.T) {
	svc, st := newService(t, "")

	assert.Equal(t, domain.ThemeNight, svc.Theme("night"))
	assert.Equal(t, domain.ThemeAuto, svc.Theme("bogus"))

	theme, err := svc.SaveTheme(" Day ")
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDay, theme)
	assert.Equal(t, domain.ThemeDay, svc.Theme("night"))

	_, err = svc.SaveTheme("sepia")
	assert.ErrorIs(t, err, domain.ErrUnknownTheme)

	require.NoError(t, st.SaveTheme("garbage"))
	assert.Equal(t, domain.ThemeNight, svc.Theme("night"))
}

func TestResolveFilter(t *testing.T) {
	svc, _ := newService(t, "")
	cat, _, err := svc.Load(context.Background())
	require.NoError(t, err)

	f, err := svc.ResolveFilter(cat, "pride", "austen", "")
	require.NoError(t, err)
	assert.Equal(t, "pride", f.Title)
	assert.Equal(t, "8e1d8a0c", f.Author)
	assert.Equal(t, domain.AnyID, f.Genre)

	f, err = svc.ResolveFilter(cat, "", "any", "science fiction")
	require.NoError(t, err)
	assert.Equal(t, domain.AnyID, f.Author)
	assert.Equal(t, "2b4c", f.Genre)

	_, err = svc.ResolveFilter(cat, "", "tolkien", "")
	assert.ErrorIs(t, err, domain.ErrUnknownAuthor)

	_, err = svc.ResolveFilter(cat, "", "", "zzzz")
	assert.ErrorIs(t, err, domain.ErrUnknownGenre)
}
