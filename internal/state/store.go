// Package state holds the read-only fixture every page is seeded from.
package state

import (
	"time"

	"github.com/five82/stockdeck/internal/catalog"
)

// Snapshot is a private copy of the fixture handed to a page. Mutating it
// never affects the store or other snapshots.
type Snapshot struct {
	catalog.Fixture
	Source   string // fixture file path, empty for the built-in data
	LoadedAt time.Time
}

// Store owns the seed loaded at startup. It is never written after New, so
// concurrent Snapshot calls need no locking.
type Store struct {
	seed     catalog.Fixture
	source   string
	loadedAt time.Time
}

// New captures a copy of fixture as the immutable seed.
func New(fixture catalog.Fixture, source string) *Store {
	return &Store{
		seed:     fixture.Clone(),
		source:   source,
		loadedAt: time.Now(),
	}
}

// Snapshot returns a deep copy of the seed.
func (s *Store) Snapshot() Snapshot {
	if s == nil {
		return Snapshot{Fixture: catalog.Default()}
	}
	return Snapshot{
		Fixture:  s.seed.Clone(),
		Source:   s.source,
		LoadedAt: s.loadedAt,
	}
}

// SourceLabel describes where the seed came from.
func (s Snapshot) SourceLabel() string {
	if s.Source == "" {
		return "built-in demo data"
	}
	return s.Source
}
