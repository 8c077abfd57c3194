package domain

// SyncResult summarizes what happened while loading the catalog.
type SyncResult struct {
	Source      string // File path, or "" for the embedded sample
	Fingerprint string // Hash of the source bytes
	FromCache   bool   // true if the stored copy was fresh (no parse)
	Count       int    // number of books loaded
}
