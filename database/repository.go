package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNotFound is returned when the referenced row does not exist
	ErrNotFound = errors.New("record not found")
	// ErrInvalidReference is returned when a note_id points at no note
	ErrInvalidReference = errors.New("referenced note does not exist")
)

// Repository is the store handle threaded through every operation. Each
// exported method runs in its own transaction.
type Repository struct {
	db  *DB
	now func() time.Time
}

func NewRepository(db *DB) *Repository {
	return &Repository{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// withTx runs fn inside a transaction, committing on success and rolling back
// on any error.
func (r *Repository) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// touch returns the timestamp for a mutation of a row last updated at prev.
// It is always strictly after prev, even if the clock has not advanced.
func (r *Repository) touch(prev time.Time) time.Time {
	now := r.now()
	if !now.After(prev) {
		now = prev.Add(time.Microsecond)
	}
	return now
}

type scanner interface {
	Scan(dest ...any) error
}

// Ping verifies the underlying database is reachable
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
