// Package dataset decodes catalog files into a validated domain.Catalog.
package dataset

import (
	"bytes"
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/mmcdole/bookcase/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed sample.json
var sample []byte

// Format identifies a catalog file encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// rawBook mirrors the on-disk record; published stays a string so both
// decoders go through the same date parsing.
type rawBook struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Author      string   `json:"author" yaml:"author"`
	Image       string   `json:"image" yaml:"image"`
	Published   string   `json:"published" yaml:"published"`
	Description string   `json:"description" yaml:"description"`
	Genres      []string `json:"genres" yaml:"genres"`
}

type rawCatalog struct {
	Books   []rawBook         `json:"books" yaml:"books"`
	Authors map[string]string `json:"authors" yaml:"authors"`
	Genres  map[string]string `json:"genres" yaml:"genres"`
}

// Sample returns the embedded demo catalog source
func Sample() []byte {
	return bytes.Clone(sample)
}

// FormatFor picks a decoder from the file extension
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Fingerprint identifies a source by content so the store can tell when it changed
func Fingerprint(raw []byte) string {
	hash := sha256.Sum256(raw)
	return hex.EncodeToString(hash[:8])
}

// ReadFile returns the raw bytes and format of a catalog file
func ReadFile(path string) ([]byte, Format, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, "", err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read catalog: %w", err)
	}
	return raw, format, nil
}

// Parse decodes and validates a catalog
func Parse(raw []byte, format Format) (domain.Catalog, error) {
	var rc rawCatalog

	switch format {
	case FormatJSON:
		if err := json.Unmarshal(raw, &rc); err != nil {
			return domain.Catalog{}, fmt.Errorf("failed to decode json catalog: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(raw, &rc); err != nil {
			return domain.Catalog{}, fmt.Errorf("failed to decode yaml catalog: %w", err)
		}
	default:
		return domain.Catalog{}, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}

	cat := domain.Catalog{
		Books:   make([]domain.Book, 0, len(rc.Books)),
		Authors: domain.Lookup(rc.Authors),
		Genres:  domain.Lookup(rc.Genres),
	}
	if cat.Authors == nil {
		cat.Authors = domain.Lookup{}
	}
	if cat.Genres == nil {
		cat.Genres = domain.Lookup{}
	}

	for _, rb := range rc.Books {
		published, err := parseDate(rb.Published)
		if err != nil {
			return domain.Catalog{}, fmt.Errorf("%w: book %q: %v", domain.ErrInvalidCatalog, rb.ID, err)
		}
		cat.Books = append(cat.Books, domain.Book{
			ID:          rb.ID,
			Title:       rb.Title,
			Author:      rb.Author,
			Image:       rb.Image,
			Published:   published,
			Description: rb.Description,
			Genres:      rb.Genres,
		})
	}

	if err := cat.Validate(); err != nil {
		return domain.Catalog{}, err
	}
	return cat, nil
}

// parseDate accepts full timestamps (as produced by JS Date#toISOString) or plain dates
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad published date %q", s)
	}
	return t, nil
}
