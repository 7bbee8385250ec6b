// Package store persists player state. The engine only ever talks to the
// PlayerStateStore seam; concrete implementations cover a sqlite local-first
// store, a pure in-memory store for tests, and a best-effort remote mirror.
package store

import (
	"context"
	"errors"

	"github.com/chainquest/chainquest-go/internal/game"
)

var (
	// ErrNotFound indicates no player state exists for the id.
	ErrNotFound = errors.New("player not found")

	// ErrStaleRevision indicates a write carried an out-of-date snapshot.
	// Last write wins on the monotonically increasing revision counter.
	ErrStaleRevision = errors.New("stale player revision")

	// ErrStoreUnavailable indicates the backing store cannot be reached.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// PlayerStateStore is the single seam through which durable player state is
// read and written. Implementations must guarantee at most one in-flight
// write per player id.
type PlayerStateStore interface {
	Get(ctx context.Context, id string) (*game.PlayerState, error)
	Put(ctx context.Context, p *game.PlayerState) error
	List(ctx context.Context) ([]string, error)
	Close() error
}

// Remote is the narrow interface to the remote relational collaborator.
// Every call is best-effort: the engine must keep working when both always
// fail.
type Remote interface {
	LoadPlayer(ctx context.Context, id string) (*game.PlayerState, error)
	SavePlayer(ctx context.Context, p *game.PlayerState) error
	Close() error
}
