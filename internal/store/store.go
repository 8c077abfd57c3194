package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/mmcdole/bookcase/internal/domain"
	bolt "go.etcd.io/bbolt"
)

// Bucket names
var (
	bucketCatalog  = []byte("catalog")
	bucketSettings = []byte("settings")
)

// Keys
const (
	keyBooks       = "catalog:books"
	keyAuthors     = "catalog:authors"
	keyGenres      = "catalog:genres"
	keyFingerprint = "catalog:fingerprint"
	keyTheme       = "theme"
)

// CatalogStore implements domain.CatalogStore using BoltDB.
type CatalogStore struct {
	db *bolt.DB
	mu sync.RWMutex // Protects memory cache

	// In-memory cache for hot-path reads (promoted on access)
	cache map[string][]byte
}

// NewCatalogStore opens (or creates) bookcase.db under cacheDir.
// An empty cacheDir keeps everything in memory.
func NewCatalogStore(cacheDir string) (*CatalogStore, error) {
	if cacheDir == "" {
		// Memory-only mode (no persistence)
		return &CatalogStore{cache: make(map[string][]byte)}, nil
	}

	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(cacheDir, "bookcase.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{bucketCatalog, bucketSettings} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &CatalogStore{db: db, cache: make(map[string][]byte)}, nil
}

func (s *CatalogStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// === Generic helpers ===

func (s *CatalogStore) get(bucket []byte, key string, dest interface{}) bool {
	cacheKey := string(bucket) + ":" + key

	// Check memory cache first
	s.mu.RLock()
	if data, ok := s.cache[cacheKey]; ok {
		s.mu.RUnlock()
		return json.Unmarshal(data, dest) == nil
	}
	s.mu.RUnlock()

	if s.db == nil {
		return false
	}

	var data []byte
	s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})

	if data == nil {
		return false
	}

	// Promote to memory cache
	s.mu.Lock()
	s.cache[cacheKey] = data
	s.mu.Unlock()

	return json.Unmarshal(data, dest) == nil
}

func (s *CatalogStore) set(bucket []byte, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	cacheKey := string(bucket) + ":" + key

	s.mu.Lock()
	s.cache[cacheKey] = data
	s.mu.Unlock()

	if s.db == nil {
		return nil // Memory-only mode
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		return b.Put([]byte(key), data)
	})
}

func (s *CatalogStore) deletePrefix(bucket []byte, prefix string) {
	s.mu.Lock()
	cachePrefix := string(bucket) + ":" + prefix
	for k := range s.cache {
		if strings.HasPrefix(k, cachePrefix) {
			delete(s.cache, k)
		}
	}
	s.mu.Unlock()

	if s.db == nil {
		return
	}

	// Collect first: deleting while iterating a bolt cursor skips keys
	s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return nil
		}
		var keys [][]byte
		c := b.Cursor()
		prefixBytes := []byte(prefix)
		for k, _ := c.Seek(prefixBytes); k != nil && strings.HasPrefix(string(k), prefix); k, _ = c.Next() {
			keys = append(keys, append([]byte(nil), k...))
		}
		for _, k := range keys {
			if err := b.Delete(k); err != nil {
				return err
			}
		}
		return nil
	})
}

// === Catalog ===

// GetCatalog returns the stored catalog. All three parts must be present.
func (s *CatalogStore) GetCatalog() (domain.Catalog, bool) {
	var cat domain.Catalog
	if !s.get(bucketCatalog, keyBooks, &cat.Books) {
		return domain.Catalog{}, false
	}
	if !s.get(bucketCatalog, keyAuthors, &cat.Authors) {
		return domain.Catalog{}, false
	}
	if !s.get(bucketCatalog, keyGenres, &cat.Genres) {
		return domain.Catalog{}, false
	}
	if cat.Books == nil {
		cat.Books = []domain.Book{}
	}
	return cat, true
}

// SaveCatalog writes the catalog, then the fingerprint that marks it fresh
func (s *CatalogStore) SaveCatalog(cat domain.Catalog, fingerprint string) error {
	if err := s.set(bucketCatalog, keyBooks, cat.Books); err != nil {
		return err
	}
	if err := s.set(bucketCatalog, keyAuthors, cat.Authors); err != nil {
		return err
	}
	if err := s.set(bucketCatalog, keyGenres, cat.Genres); err != nil {
		return err
	}
	return s.set(bucketCatalog, keyFingerprint, fingerprint)
}

// === Validation ===

func (s *CatalogStore) IsValid(fingerprint string) bool {
	var stored string
	if !s.get(bucketCatalog, keyFingerprint, &stored) {
		return false
	}
	return stored != "" && stored == fingerprint
}

// === Settings ===

func (s *CatalogStore) GetTheme() (string, bool) {
	var theme string
	ok := s.get(bucketSettings, keyTheme, &theme)
	return theme, ok
}

func (s *CatalogStore) SaveTheme(name string) error {
	return s.set(bucketSettings, keyTheme, name)
}

// === Invalidation ===

// InvalidateCatalog wipes the cached catalog but keeps settings
func (s *CatalogStore) InvalidateCatalog() {
	s.deletePrefix(bucketCatalog, "catalog:")
}

func (s *CatalogStore) InvalidateAll() {
	s.mu.Lock()
	s.cache = make(map[string][]byte)
	s.mu.Unlock()

	if s.db == nil {
		return
	}

	s.db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{bucketCatalog, bucketSettings} {
			if err := tx.DeleteBucket(bucket); err != nil && err != bolt.ErrBucketNotFound {
				return err
			}
			if _, err := tx.CreateBucket(bucket); err != nil {
				return err
			}
		}
		return nil
	})
}
