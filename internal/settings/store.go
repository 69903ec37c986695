package settings

import "sync"

// Store holds the single State instance. All writes go through Update.
type Store struct {
	mu    sync.RWMutex
	state State
}

// NewStore creates a Store seeded with initial.
func NewStore(initial State) *Store {
	return &Store{state: initial}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Update applies fn to a copy of the state and stores it only when fn succeeds.
func (s *Store) Update(fn func(*State) error) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state
	if err := fn(&next); err != nil {
		return s.state, err
	}
	s.state = next
	return next, nil
}
