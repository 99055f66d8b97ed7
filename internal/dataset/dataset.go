// Package dataset holds the session dataset: the funnel events generated
// once at startup and shared read-only by every handler.
package dataset

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/campanalytics/funnelboard/internal/funnel"
)

// Dataset is an immutable snapshot of one generation run. Events must be
// treated as read-only; filtering always produces fresh slices.
type Dataset struct {
	ID          uuid.UUID       `json:"id"`
	Seed        int64           `json:"seed"`
	Rows        int             `json:"rows"`
	GeneratedAt time.Time       `json:"generated_at"`
	Scenario    funnel.Scenario `json:"-"`
	Events      []funnel.Event  `json:"-"`
}

// Store owns the current dataset. Regeneration swaps the whole snapshot
// under a write lock; readers only ever see a complete dataset. Since the
// generator is pure, regenerating with the same seed restores the exact
// same events.
type Store struct {
	mu      sync.RWMutex
	current *Dataset
}

// NewStore generates the initial dataset from seed and returns the store.
func NewStore(seed int64, rows int, sc funnel.Scenario) (*Store, error) {
	s := &Store{}
	if _, err := s.Regenerate(seed, rows, sc); err != nil {
		return nil, err
	}
	return s, nil
}

// Current returns the active dataset snapshot.
func (s *Store) Current() *Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Regenerate replaces the active dataset with a fresh deterministic
// generation. The previous snapshot stays valid for handlers already
// holding it.
func (s *Store) Regenerate(seed int64, rows int, sc funnel.Scenario) (*Dataset, error) {
	events, err := funnel.GenerateSeed(seed, rows, sc)
	if err != nil {
		return nil, err
	}

	ds := &Dataset{
		ID:          uuid.New(),
		Seed:        seed,
		Rows:        rows,
		GeneratedAt: time.Now().UTC(),
		Scenario:    sc,
		Events:      events,
	}

	s.mu.Lock()
	s.current = ds
	s.mu.Unlock()
	return ds, nil
}
