// Package postgres keeps storage slots in the storage_slots table.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ghuser/wherearethenoodles/migrations/inventory"
	"github.com/ghuser/wherearethenoodles/pkg/database"
	"github.com/ghuser/wherearethenoodles/pkg/migrator"
)

const (
	selectSlotSQL = `SELECT value FROM storage_slots WHERE key = $1`
	upsertSlotSQL = `INSERT INTO storage_slots (key, value, updated_at) VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
)

// Slot implements a storage slot against PostgreSQL.
type Slot struct {
	db *database.Database
}

// New applies pending migrations and returns a Slot using db.
func New(ctx context.Context, db *database.Database) (*Slot, error) {
	if err := migrator.Up(ctx, db.DB(), inventory.FS); err != nil {
		return nil, fmt.Errorf("migrate storage_slots: %w", err)
	}
	return &Slot{db: db}, nil
}

// Get returns the value stored under key.
func (s *Slot) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.DB().QueryRowContext(ctx, selectSlotSQL, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("query slot: %w", err)
	}
	return value, true, nil
}

// Set upserts the value under key inside a transaction.
func (s *Slot) Set(ctx context.Context, key string, value []byte) error {
	return s.db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, upsertSlotSQL, key, value); err != nil {
			return fmt.Errorf("upsert slot %s: %w", key, err)
		}
		return nil
	})
}

// Ping checks the database connection health.
func (s *Slot) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// Close is a no-op; the pool is owned by the caller.
func (s *Slot) Close() error { return nil }
