package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/chainquest/chainquest-go/internal/game"
	"github.com/chainquest/chainquest-go/internal/pkg/logger"
)

const (
	getPlayerQuery = `SELECT revision, state FROM content.players WHERE id = $1;`

	upsertPlayerQuery = `INSERT INTO content.players (id, revision, state, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (id) DO UPDATE SET
			revision = EXCLUDED.revision,
			state = EXCLUDED.state,
			updated_at = NOW()
		WHERE content.players.revision < EXCLUDED.revision;`

	createSchemaQuery = `CREATE SCHEMA IF NOT EXISTS content;`

	createPlayersQuery = `CREATE TABLE IF NOT EXISTS content.players (
		id TEXT PRIMARY KEY,
		revision BIGINT NOT NULL,
		state JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`
)

// PostgreSQL implements the Remote collaborator against the remote
// relational store. Callers must treat every method as best-effort.
type PostgreSQL struct {
	db  *sql.DB
	log *logger.Logger
}

// NewPostgreSQL connects to the remote database and ensures the schema
// exists. A failed ping is returned to the caller, who decides whether to
// run without a remote.
func NewPostgreSQL(databaseURI string, log *logger.Logger) (*PostgreSQL, error) {
	db, err := sql.Open("pgx", databaseURI)
	if err != nil {
		return nil, fmt.Errorf("failed to open remote database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping remote database: %w", err)
	}

	for _, query := range []string{createSchemaQuery, createPlayersQuery} {
		if _, err := db.ExecContext(ctx, query); err != nil {
			db.Close()
			return nil, fmt.Errorf("remote migration failed: %w", err)
		}
	}

	return &PostgreSQL{db: db, log: log}, nil
}

// LoadPlayer fetches a player's state from the remote store.
func (pg *PostgreSQL) LoadPlayer(ctx context.Context, id string) (*game.PlayerState, error) {
	var revision int64
	var blob []byte

	row := pg.db.QueryRowContext(ctx, getPlayerQuery, id)
	if err := row.Scan(&revision, &blob); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	var p game.PlayerState
	if err := json.Unmarshal(blob, &p); err != nil {
		return nil, fmt.Errorf("failed to decode remote player %s: %w", id, err)
	}
	p.Revision = revision

	return &p, nil
}

// SavePlayer mirrors a player snapshot to the remote store. Stale snapshots
// are silently skipped: the remote keeps whichever revision is newest.
func (pg *PostgreSQL) SavePlayer(ctx context.Context, p *game.PlayerState) error {
	blob, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode player %s: %w", p.ID, err)
	}

	if _, err := pg.db.ExecContext(ctx, upsertPlayerQuery, p.ID, p.Revision, blob); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return nil
}

// Close closes the remote database connection.
func (pg *PostgreSQL) Close() error {
	return pg.db.Close()
}
