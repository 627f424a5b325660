package store

import (
	"sync"

	"github.com/mikeladderbush/LED-Project/internal/domain/games"
)

// MemoryStore keeps the last display state in memory. Nothing survives a restart.
type MemoryStore struct {
	mu    sync.RWMutex
	state games.DisplayState
}

// NewMemoryStore constructs a store holding an empty state for team.
func NewMemoryStore(team string) *MemoryStore {
	return &MemoryStore{
		state: games.EmptyState(team),
	}
}

// State returns a copy of the current display state.
func (s *MemoryStore) State() games.DisplayState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return copyState(s.state)
}

// SetState replaces the stored display state. A state for a team other than
// the one the store was created or last reset for is dropped and false is
// returned, so a pass that raced a team switch cannot overwrite the reset.
func (s *MemoryStore) SetState(state games.DisplayState) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if state.Team != s.state.Team {
		return false
	}
	s.state = copyState(state)
	return true
}

// Reset clears the stored state, e.g. after the tracked team changes.
func (s *MemoryStore) Reset(team string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = games.EmptyState(team)
}

func copyState(in games.DisplayState) games.DisplayState {
	out := in
	if in.Live != nil {
		live := *in.Live
		out.Live = &live
	}
	if in.Upcoming != nil {
		up := *in.Upcoming
		out.Upcoming = &up
	}
	return out
}
