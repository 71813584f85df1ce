package storage

import (
	"context"
	"sync"

	"github.com/Tiliavir/temps-vecu/internal/model"
)

// Memory is an in-process Store.
type Memory struct {
	mu    sync.Mutex
	users map[string]model.Snapshot
	saves int
}

// NewMemory returns an empty in-process store.
func NewMemory() *Memory {
	return &Memory{users: map[string]model.Snapshot{}}
}

// Load implements Store.
func (m *Memory) Load(_ context.Context, user string) (model.Snapshot, error) {
	user = UserOrDefault(user)
	m.mu.Lock()
	defer m.mu.Unlock()
	return defaulted(user, m.users[user].Clone()), nil
}

// Save implements Store.
func (m *Memory) Save(_ context.Context, user string, snap model.Snapshot) error {
	user = UserOrDefault(user)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user] = stored(snap)
	m.saves++
	return nil
}

// Saves returns how many saves were applied.
func (m *Memory) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
