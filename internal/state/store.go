package state

import (
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/five82/glide/internal/deck"
)

// Snapshot represents the latest deck available to the UI.
type Snapshot struct {
	Deck                *deck.Deck
	Source              string
	Revision            int // bumped only when the deck content changes
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive load failures
}

// HasDeck reports whether a deck has been loaded successfully at least once.
func (s Snapshot) HasDeck() bool {
	return s.Deck != nil
}

// IsOffline returns true when the source has failed to load multiple times
// in a row.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// SetSource records where decks are loaded from.
func (s *Store) SetSource(source string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Source = source
}

// Update replaces the stored deck. When err is non-nil the previous deck is
// kept but the error is recorded for visibility. It reports whether the
// revision changed.
func (s *Store) Update(d *deck.Deck, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastUpdated = time.Now()
	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return false
	}

	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
	if d == nil || reflect.DeepEqual(d, s.snapshot.Deck) {
		return false
	}
	s.snapshot.Deck = d.Clone()
	s.snapshot.Revision++
	return true
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Deck = s.snapshot.Deck.Clone()
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
