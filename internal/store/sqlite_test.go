package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainquest/chainquest-go/internal/game"
)

func newTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()

	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, s.Migrate())
	t.Cleanup(func() { s.Close() })

	return s
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	p := game.NewPlayer("0xabc")
	p.Coins = 321
	require.NoError(t, s.Put(ctx, p))
	assert.Equal(t, int64(1), p.Revision)

	loaded, err := s.Get(ctx, "0xabc")
	require.NoError(t, err)
	assert.Equal(t, "0xabc", loaded.ID)
	assert.Equal(t, int64(321), loaded.Coins)
	assert.Equal(t, int64(1), loaded.Revision)
	assert.Len(t, loaded.Skills, len(game.StarterSkills()))
}

func TestSQLiteStoreNotFound(t *testing.T) {
	s := newTestSQLite(t)

	_, err := s.Get(context.Background(), "0xmissing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteStoreRevisionIncrements(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	p := game.NewPlayer("0xabc")
	require.NoError(t, s.Put(ctx, p))
	require.NoError(t, s.Put(ctx, p))
	require.NoError(t, s.Put(ctx, p))

	assert.Equal(t, int64(3), p.Revision)
}

func TestSQLiteStoreRejectsStaleSnapshot(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	p := game.NewPlayer("0xabc")
	require.NoError(t, s.Put(ctx, p))

	stale, err := s.Get(ctx, "0xabc")
	require.NoError(t, err)

	// A newer snapshot lands first.
	fresh, err := s.Get(ctx, "0xabc")
	require.NoError(t, err)
	fresh.Coins = 999
	require.NoError(t, s.Put(ctx, fresh))

	// The stale snapshot must not clobber it.
	stale.Coins = 1
	err = s.Put(ctx, stale)
	assert.ErrorIs(t, err, ErrStaleRevision)

	current, err := s.Get(ctx, "0xabc")
	require.NoError(t, err)
	assert.Equal(t, int64(999), current.Coins)
}

func TestSQLiteStoreList(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, game.NewPlayer("0xaaa")))
	require.NoError(t, s.Put(ctx, game.NewPlayer("0xbbb")))

	ids, err := s.List(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"0xaaa", "0xbbb"}, ids)
}
