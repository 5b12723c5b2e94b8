package displaystore

import (
	"context"
	"sync"

	"github.com/yanqian/svatek/internal/domain/dashboard"
)

// MemoryStore keeps the board state in process memory.
type MemoryStore struct {
	mu    sync.RWMutex
	state dashboard.State
	ok    bool
}

// NewMemoryStore constructs an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load implements dashboard.StateStore.
func (s *MemoryStore) Load(_ context.Context) (dashboard.State, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.ok {
		return dashboard.State{}, false, nil
	}
	return cloneState(s.state), true, nil
}

// Save implements dashboard.StateStore.
func (s *MemoryStore) Save(_ context.Context, state dashboard.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = cloneState(state)
	s.ok = true
	return nil
}

func cloneState(state dashboard.State) dashboard.State {
	if state.Alert != nil {
		alert := *state.Alert
		state.Alert = &alert
	}
	return state
}

var _ dashboard.StateStore = (*MemoryStore)(nil)
