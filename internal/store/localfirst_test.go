package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainquest/chainquest-go/internal/game"
	"github.com/chainquest/chainquest-go/internal/pkg/logger"
)

// failingRemote always errors, modelling an unreachable backend.
type failingRemote struct{}

func (failingRemote) LoadPlayer(ctx context.Context, id string) (*game.PlayerState, error) {
	return nil, ErrStoreUnavailable
}

func (failingRemote) SavePlayer(ctx context.Context, p *game.PlayerState) error {
	return ErrStoreUnavailable
}

func (failingRemote) Close() error { return nil }

// recordingRemote captures mirrored snapshots.
type recordingRemote struct {
	mu    sync.Mutex
	saved []game.PlayerState
	state map[string]*game.PlayerState
}

func newRecordingRemote() *recordingRemote {
	return &recordingRemote{state: make(map[string]*game.PlayerState)}
}

func (r *recordingRemote) LoadPlayer(ctx context.Context, id string) (*game.PlayerState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.state[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *recordingRemote) SavePlayer(ctx context.Context, p *game.PlayerState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.saved = append(r.saved, cp)
	r.state[p.ID] = &cp
	return nil
}

func (r *recordingRemote) Close() error { return nil }

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	l, err := logger.CreateLogger("error")
	require.NoError(t, err)
	return l
}

func TestLocalFirstBootstrapsNewPlayer(t *testing.T) {
	s := NewLocalFirst(NewMemoryStore(), nil, testLogger(t))
	ctx := context.Background()

	p, err := s.Get(ctx, "0xnew")
	require.NoError(t, err)
	assert.Equal(t, "0xnew", p.ID)
	assert.Equal(t, 1, p.Level)
	assert.NotEmpty(t, p.Skills)
	assert.NotEmpty(t, p.Quests)

	// The bootstrap is persisted, not re-created per read.
	again, err := s.Get(ctx, "0xnew")
	require.NoError(t, err)
	assert.Equal(t, p.Revision, again.Revision)
}

func TestLocalFirstSurvivesDeadRemote(t *testing.T) {
	s := NewLocalFirst(NewMemoryStore(), failingRemote{}, testLogger(t))
	ctx := context.Background()

	p, err := s.Get(ctx, "0xabc")
	require.NoError(t, err, "an unreachable remote must never surface as a failure")

	p.Coins = 777
	require.NoError(t, s.Put(ctx, p))

	loaded, err := s.Get(ctx, "0xabc")
	require.NoError(t, err)
	assert.Equal(t, int64(777), loaded.Coins)
}

func TestLocalFirstMirrorsWritesToRemote(t *testing.T) {
	remote := newRecordingRemote()
	s := NewLocalFirst(NewMemoryStore(), remote, testLogger(t))
	ctx := context.Background()

	p, err := s.Get(ctx, "0xabc")
	require.NoError(t, err)

	p.Coins = 555
	require.NoError(t, s.Put(ctx, p))

	// Mirrors are asynchronous; Close drains them.
	require.NoError(t, s.Close())

	remote.mu.Lock()
	defer remote.mu.Unlock()
	require.NotEmpty(t, remote.saved)
	last := remote.saved[len(remote.saved)-1]
	assert.Equal(t, int64(555), last.Coins)
}

func TestLocalFirstPrefersRemoteState(t *testing.T) {
	remote := newRecordingRemote()
	seeded := game.NewPlayer("0xabc")
	seeded.Coins = 9999
	seeded.Revision = 42
	require.NoError(t, remote.SavePlayer(context.Background(), seeded))

	s := NewLocalFirst(NewMemoryStore(), remote, testLogger(t))

	p, err := s.Get(context.Background(), "0xabc")
	require.NoError(t, err)
	assert.Equal(t, int64(9999), p.Coins)
}

func TestLocalFirstStaleWriteRejected(t *testing.T) {
	s := NewLocalFirst(NewMemoryStore(), nil, testLogger(t))
	ctx := context.Background()

	p, err := s.Get(ctx, "0xabc")
	require.NoError(t, err)

	stale := *p
	p.Coins = 200
	require.NoError(t, s.Put(ctx, p))

	stale.Coins = 1
	assert.ErrorIs(t, s.Put(ctx, &stale), ErrStaleRevision)
}

func TestMemoryStoreIsolation(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	p := game.NewPlayer("0xabc")
	require.NoError(t, s.Put(ctx, p))

	loaded, err := s.Get(ctx, "0xabc")
	require.NoError(t, err)
	loaded.Coins = 12345

	reloaded, err := s.Get(ctx, "0xabc")
	require.NoError(t, err)
	assert.Equal(t, int64(100), reloaded.Coins, "mutating a loaded copy must not leak into the store")
}

func TestMemoryStoreNotFound(t *testing.T) {
	_, err := NewMemoryStore().Get(context.Background(), "0xmissing")
	assert.ErrorIs(t, err, ErrNotFound)
}
