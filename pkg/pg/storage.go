package pg

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Storage is a byte-valued key/value store over the kv_store table.
type Storage struct {
	db DBTX
}

func NewStorage(db DBTX) *Storage {
	return &Storage{db: db}
}

// Get returns nil, nil when the key does not exist.
func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	var val []byte
	err := s.db.QueryRow(ctx, `SELECT value FROM kv_store WHERE key = $1`, key).Scan(&val)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return val, err
}

func (s *Storage) Set(ctx context.Context, key string, val []byte) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO kv_store (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, val,
	)
	return err
}

func (s *Storage) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	_, err := s.db.Exec(ctx, `DELETE FROM kv_store WHERE key = ANY($1)`, keys)
	return err
}
