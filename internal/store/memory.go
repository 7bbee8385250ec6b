package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/chainquest/chainquest-go/internal/game"
)

// MemoryStore is a pure in-memory PlayerStateStore with the same revision
// semantics as the sqlite store. It backs tests and throwaway sessions.
type MemoryStore struct {
	mu      sync.Mutex
	players map[string][]byte
	revs    map[string]int64
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		players: make(map[string][]byte),
		revs:    make(map[string]int64),
	}
}

// Get loads a player's state.
func (s *MemoryStore) Get(ctx context.Context, id string) (*game.PlayerState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, ok := s.players[id]
	if !ok {
		return nil, ErrNotFound
	}

	var p game.PlayerState
	if err := json.Unmarshal(blob, &p); err != nil {
		return nil, fmt.Errorf("failed to decode player %s: %w", id, err)
	}
	p.Revision = s.revs[id]

	return &p, nil
}

// Put persists a player snapshot, assigning the next revision and rejecting
// stale snapshots.
func (s *MemoryStore) Put(ctx context.Context, p *game.PlayerState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	newRev := p.Revision + 1
	if current, ok := s.revs[p.ID]; ok && newRev <= current {
		return ErrStaleRevision
	}

	p.Revision = newRev
	blob, err := json.Marshal(p)
	if err != nil {
		p.Revision = newRev - 1
		return fmt.Errorf("failed to encode player %s: %w", p.ID, err)
	}

	s.players[p.ID] = blob
	s.revs[p.ID] = newRev
	return nil
}

// List returns every stored player id.
func (s *MemoryStore) List(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.players))
	for id := range s.players {
		ids = append(ids, id)
	}
	return ids, nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}
