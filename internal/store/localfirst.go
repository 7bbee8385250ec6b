package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/chainquest/chainquest-go/internal/game"
	"github.com/chainquest/chainquest-go/internal/pkg/logger"
)

// remoteTimeout bounds every best-effort call to the remote collaborator.
const remoteTimeout = 2 * time.Second

// LocalFirst composes a local store with an optional remote mirror. The
// local store is always authoritative for gameplay continuity: reads fall
// back to it whenever the remote fails, writes hit it synchronously, and the
// remote is mirrored in the background without ever blocking an engine call.
// A nil remote is simulation mode: the remote is never dialed at all.
type LocalFirst struct {
	local  PlayerStateStore
	remote Remote
	log    *logger.Logger
	wg     sync.WaitGroup
}

// NewLocalFirst wraps local with a best-effort remote mirror. remote may be
// nil for simulation mode.
func NewLocalFirst(local PlayerStateStore, remote Remote, log *logger.Logger) *LocalFirst {
	return &LocalFirst{local: local, remote: remote, log: log}
}

// Get loads a player's state, preferring the remote when one is configured
// and reachable, falling back to the local store otherwise. An id with no
// state anywhere is bootstrapped as a fresh player: Get never reports
// NotFound for a well-formed id.
func (s *LocalFirst) Get(ctx context.Context, id string) (*game.PlayerState, error) {
	if s.remote != nil {
		rctx, cancel := context.WithTimeout(ctx, remoteTimeout)
		p, err := s.remote.LoadPlayer(rctx, id)
		cancel()

		switch {
		case err == nil:
			// Refresh the local cache. A stale-revision rejection means the
			// local copy is newer than the remote's; keep the local one.
			if putErr := s.local.Put(ctx, p); putErr != nil && !errors.Is(putErr, ErrStaleRevision) {
				s.log.Warn("local cache refresh failed", zap.String("player", id), zap.Error(putErr))
			} else if putErr == nil {
				return p, nil
			}
		case errors.Is(err, ErrNotFound):
			// Fall through to the local copy.
		default:
			s.log.Debug("remote load failed, using local state", zap.String("player", id), zap.Error(err))
		}
	}

	p, err := s.local.Get(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return s.bootstrap(ctx, id)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Put persists a snapshot locally and mirrors it to the remote in the
// background. The remote write is never awaited; its failure only degrades
// durability, never gameplay.
func (s *LocalFirst) Put(ctx context.Context, p *game.PlayerState) error {
	if err := s.local.Put(ctx, p); err != nil {
		return err
	}

	if s.remote != nil {
		snapshot := *p
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()

			rctx, cancel := context.WithTimeout(context.Background(), remoteTimeout)
			defer cancel()

			if err := s.remote.SavePlayer(rctx, &snapshot); err != nil {
				s.log.Debug("remote mirror failed", zap.String("player", snapshot.ID), zap.Error(err))
			}
		}()
	}

	return nil
}

// List returns the locally known player ids.
func (s *LocalFirst) List(ctx context.Context) ([]string, error) {
	return s.local.List(ctx)
}

// Close waits for in-flight remote mirrors and closes both stores.
func (s *LocalFirst) Close() error {
	s.wg.Wait()

	err := s.local.Close()
	if s.remote != nil {
		if rerr := s.remote.Close(); err == nil {
			err = rerr
		}
	}
	return err
}

// bootstrap creates and persists the starting state for a new player id.
func (s *LocalFirst) bootstrap(ctx context.Context, id string) (*game.PlayerState, error) {
	p := game.NewPlayer(id)
	if err := s.Put(ctx, p); err != nil {
		return nil, err
	}
	s.log.Info("bootstrapped new player", zap.String("player", id))
	return p, nil
}
