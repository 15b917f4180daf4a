package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/bookkeeping_app/internal/apperrors"
	portsrepo "github.com/SscSPs/bookkeeping_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// postingLockKey serialises units of work across connections so postings stay single-writer.
const postingLockKey int64 = 0x626f6f6b // "book"

type txRepositories struct {
	*PgxJournalRepository
	*PgxLedgerRepository
}

var _ portsrepo.TxRepositories = txRepositories{}

// PgxTxManager runs units of work on a single pgx transaction.
type PgxTxManager struct {
	Pool *pgxpool.Pool
}

func newPgxTxManager(pool *pgxpool.Pool) *PgxTxManager {
	return &PgxTxManager{Pool: pool}
}

var _ portsrepo.TransactionManager = (*PgxTxManager)(nil)

// Begin starts a new database transaction
func (m *PgxTxManager) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := m.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (m *PgxTxManager) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction
func (m *PgxTxManager) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

// WithinTransaction commits when fn returns nil and rolls back otherwise.
func (m *PgxTxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context, tx portsrepo.TxRepositories) error) error {
	tx, err := m.Begin(ctx)
	if err != nil {
		return err
	}
	// Will be ignored if transaction is committed successfully
	defer m.Rollback(ctx, tx) //nolint:errcheck

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, postingLockKey); err != nil {
		return fmt.Errorf("failed to acquire posting lock: %w", err)
	}

	repos := txRepositories{
		PgxJournalRepository: newPgxJournalRepository(tx),
		PgxLedgerRepository:  newPgxLedgerRepository(tx),
	}
	if err := fn(ctx, repos); err != nil {
		return err
	}

	return m.Commit(ctx, tx)
}
