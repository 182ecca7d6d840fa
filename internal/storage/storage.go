// Package storage is the sole reader and writer of subscription, token, and
// credential rows. Services above it never touch SQL.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBTX is the subset of pgx operations shared by a pool and a transaction,
// letting one store type run against either.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// SubscriptionStore persists subscribers and their confirmation tokens.
type SubscriptionStore struct {
	pool *pgxpool.Pool
	db   DBTX
}

// NewSubscriptionStore creates a store bound to a connection pool.
func NewSubscriptionStore(pool *pgxpool.Pool) *SubscriptionStore {
	return &SubscriptionStore{pool: pool, db: pool}
}

// InTx runs fn inside one database transaction. fn receives a store bound to
// that transaction; every store call made through it commits or rolls back as
// a unit. The transaction spans only fn itself, so callers must not do slow
// external work (like sending email) inside it.
func (s *SubscriptionStore) InTx(ctx context.Context, fn func(txStore *SubscriptionStore) error) error {
	if s.pool == nil {
		return ErrNestedTransaction
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txStore := &SubscriptionStore{db: tx}

	if err := fn(txStore); err != nil {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			return fmt.Errorf("transaction failed: %w, rollback failed: %v", err, rollbackErr)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
