package catalog

import (
	"sync/atomic"
)

// Store holds the current catalog snapshot behind an atomic pointer.
// Readers always observe a complete snapshot; a refresh builds a whole new
// Catalog and swaps it in. The refresh path is the single writer.
type Store struct {
	current atomic.Pointer[Catalog]
}

// NewStore creates a store seeded with an initial snapshot.
func NewStore(initial *Catalog) *Store {
	s := &Store{}
	s.current.Store(initial)
	return s
}

// Snapshot returns the current catalog. In-flight requests keep using the
// snapshot they grabbed even if a swap happens mid-request.
func (s *Store) Snapshot() *Catalog {
	return s.current.Load()
}

// Swap replaces the catalog wholesale and returns the previous snapshot.
func (s *Store) Swap(next *Catalog) *Catalog {
	return s.current.Swap(next)
}
