package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mmcdole/bookcase/internal/catalog"
	"github.com/mmcdole/bookcase/internal/dataset"
	"github.com/mmcdole/bookcase/internal/domain"
	"github.com/mmcdole/bookcase/internal/search"
)

// CatalogService orchestrates the catalog source and the store.
type CatalogService struct {
	store  domain.CatalogStore
	source string // Catalog file; empty means the embedded sample
	logger *slog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(store domain.CatalogStore, source string, logger *slog.Logger) *CatalogService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogService{store: store, source: source, logger: logger}
}

// Source returns the configured catalog file ("" for the sample)
func (s *CatalogService) Source() string {
	return s.source
}

// Load returns the catalog, from the store when its fingerprint still
// matches the source, otherwise by parsing the source and caching it.
func (s *CatalogService) Load(ctx context.Context) (domain.Catalog, domain.SyncResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.Catalog{}, domain.SyncResult{}, err
	}

	raw, format, err := s.read(s.source)
	if err != nil {
		s.logger.Error("failed to read catalog", "error", err, "source", s.source)
		return domain.Catalog{}, domain.SyncResult{}, err
	}
	fp := dataset.Fingerprint(raw)

	// 1. Freshness check
	if s.store.IsValid(fp) {
		if cat, ok := s.store.GetCatalog(); ok {
			s.logger.Debug("cache fresh", "fingerprint", fp, "count", len(cat.Books))
			return cat, domain.SyncResult{Source: s.source, Fingerprint: fp, FromCache: true, Count: len(cat.Books)}, nil
		}
	}

	// 2. Parse the source
	s.logger.Debug("cache stale, parsing", "fingerprint", fp, "source", s.source)
	cat, err := dataset.Parse(raw, format)
	if err != nil {
		s.logger.Error("failed to parse catalog", "error", err, "source", s.source)
		return domain.Catalog{}, domain.SyncResult{}, err
	}

	if err := s.store.SaveCatalog(cat, fp); err != nil {
		s.logger.Error("failed to save catalog", "error", err)
	}
	s.logger.Info("loaded catalog", "count", len(cat.Books), "authors", len(cat.Authors), "genres", len(cat.Genres))

	return cat, domain.SyncResult{Source: s.source, Fingerprint: fp, Count: len(cat.Books)}, nil
}

// Reload drops the cached copy and loads again from the source
func (s *CatalogService) Reload(ctx context.Context) (domain.Catalog, domain.SyncResult, error) {
	s.store.InvalidateCatalog()
	s.logger.Info("invalidated catalog cache")
	return s.Load(ctx)
}

// Import parses and validates path and replaces the cached catalog with it.
// Later loads use path as their source.
func (s *CatalogService) Import(ctx context.Context, path string) (domain.Catalog, domain.SyncResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.Catalog{}, domain.SyncResult{}, err
	}

	raw, format, err := dataset.ReadFile(path)
	if err != nil {
		return domain.Catalog{}, domain.SyncResult{}, err
	}
	cat, err := dataset.Parse(raw, format)
	if err != nil {
		return domain.Catalog{}, domain.SyncResult{}, fmt.Errorf("import %s: %w", path, err)
	}

	fp := dataset.Fingerprint(raw)
	s.store.InvalidateCatalog()
	if err := s.store.SaveCatalog(cat, fp); err != nil {
		return domain.Catalog{}, domain.SyncResult{}, fmt.Errorf("failed to save catalog: %w", err)
	}
	s.source = path

	s.logger.Info("imported catalog", "path", path, "count", len(cat.Books))
	return cat, domain.SyncResult{Source: path, Fingerprint: fp, Count: len(cat.Books)}, nil
}

// Theme returns the saved theme, or fallback when none is stored
func (s *CatalogService) Theme(fallback string) string {
	if name, ok := s.store.GetTheme(); ok {
		if theme, err := domain.ParseTheme(name); err == nil {
			return theme
		}
		s.logger.Warn("ignoring stored theme", "theme", name)
	}
	theme, err := domain.ParseTheme(fallback)
	if err != nil {
		return domain.ThemeAuto
	}
	return theme
}

// SaveTheme validates and persists the theme choice
func (s *CatalogService) SaveTheme(name string) (string, error) {
	theme, err := domain.ParseTheme(name)
	if err != nil {
		return "", err
	}
	if err := s.store.SaveTheme(theme); err != nil {
		s.logger.Error("failed to save theme", "error", err)
		return "", err
	}
	s.logger.Debug("saved theme", "theme", theme)
	return theme, nil
}

// ResolveFilter builds a filter from free text, resolving author and genre
// names (or near misses) to ids.
func (s *CatalogService) ResolveFilter(cat domain.Catalog, title, author, genre string) (catalog.Filter, error) {
	authorID, err := search.ResolveID(author, cat.Authors)
	if err != nil {
		return catalog.Filter{}, fmt.Errorf("%w: %q", domain.ErrUnknownAuthor, author)
	}
	genreID, err := search.ResolveID(genre, cat.Genres)
	if err != nil {
		return catalog.Filter{}, fmt.Errorf("%w: %q", domain.ErrUnknownGenre, genre)
	}
	return catalog.Filter{Title: title, Author: authorID, Genre: genreID}.Normalize(), nil
}

func (s *CatalogService) read(path string) ([]byte, dataset.Format, error) {
	if path == "" {
		return dataset.Sample(), dataset.FormatJSON, nil
	}
	return dataset.ReadFile(path)
}
