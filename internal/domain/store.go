package domain

// CatalogStore handles the local cache (BoltDB + memory).
// The catalog is written once per source fingerprint and read back on startup.
type CatalogStore interface {
	// === Catalog ===
	GetCatalog() (Catalog, bool)
	SaveCatalog(cat Catalog, fingerprint string) error

	// IsValid checks if the stored fingerprint matches the source
	IsValid(fingerprint string) bool

	// === Settings ===
	GetTheme() (string, bool)
	SaveTheme(name string) error

	// === Invalidation ===
	InvalidateCatalog()
	InvalidateAll()

	Close() error
}
