package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/chainquest/chainquest-go/internal/game"
)

// SQLiteStore implements PlayerStateStore on a local sqlite file. Player
// state is stored as one JSON blob per player with a revision counter used
// for last-write-wins conflict rejection.
type SQLiteStore struct {
	db *sql.DB

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewSQLiteStore opens (or creates) the sqlite database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	return &SQLiteStore{db: db, locks: make(map[string]*sync.Mutex)}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Migrate runs database migrations.
func (s *SQLiteStore) Migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS players (
			id TEXT PRIMARY KEY,
			revision INTEGER NOT NULL,
			state TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_players_updated_at ON players(updated_at DESC)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

// playerLock returns the per-player mutex enforcing at most one in-flight
// write per id.
func (s *SQLiteStore) playerLock(id string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[id]
	if !ok {
		l = &sync.Mutex{}
		s.locks[id] = l
	}
	return l
}

// Get loads a player's state.
func (s *SQLiteStore) Get(ctx context.Context, id string) (*game.PlayerState, error) {
	var blob string
	var revision int64

	row := s.db.QueryRowContext(ctx, `SELECT revision, state FROM players WHERE id = ?`, id)
	if err := row.Scan(&revision, &blob); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load player %s: %w", id, err)
	}

	var p game.PlayerState
	if err := json.Unmarshal([]byte(blob), &p); err != nil {
		return nil, fmt.Errorf("failed to decode player %s: %w", id, err)
	}
	p.Revision = revision

	return &p, nil
}

// Put persists a player snapshot, assigning the next revision. A snapshot
// older than the stored one is rejected with ErrStaleRevision.
func (s *SQLiteStore) Put(ctx context.Context, p *game.PlayerState) error {
	lock := s.playerLock(p.ID)
	lock.Lock()
	defer lock.Unlock()

	newRev := p.Revision + 1
	p.Revision = newRev

	blob, err := json.Marshal(p)
	if err != nil {
		p.Revision = newRev - 1
		return fmt.Errorf("failed to encode player %s: %w", p.ID, err)
	}

	query := `INSERT INTO players (id, revision, state, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			revision = excluded.revision,
			state = excluded.state,
			updated_at = CURRENT_TIMESTAMP
		WHERE excluded.revision > players.revision`

	res, err := s.db.ExecContext(ctx, query, p.ID, newRev, string(blob))
	if err != nil {
		p.Revision = newRev - 1
		return fmt.Errorf("failed to save player %s: %w", p.ID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to save player %s: %w", p.ID, err)
	}
	if affected == 0 {
		p.Revision = newRev - 1
		return ErrStaleRevision
	}

	return nil
}

// List returns every stored player id.
func (s *SQLiteStore) List(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM players ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan player id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}

	return ids, nil
}
