package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	portsrepo "github.com/SscSPs/bookkeeping_app/internal/core/ports/repositories"
)

// txRepositories binds the writers and the ledger reader to one *sql.Tx.
type txRepositories struct {
	*SQLiteJournalRepository
	*SQLiteLedgerRepository
}

var _ portsrepo.TxRepositories = txRepositories{}

// SQLiteTxManager runs units of work on a single SQLite transaction.
type SQLiteTxManager struct {
	db *sql.DB
}

func newSQLiteTxManager(db *sql.DB) *SQLiteTxManager {
	return &SQLiteTxManager{db: db}
}

var _ portsrepo.TransactionManager = (*SQLiteTxManager)(nil)

// WithinTransaction commits when fn returns nil and rolls back on error or panic.
func (m *SQLiteTxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context, tx portsrepo.TxRepositories) error) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	repos := txRepositories{
		SQLiteJournalRepository: newSQLiteJournalRepository(tx),
		SQLiteLedgerRepository:  newSQLiteLedgerRepository(tx),
	}

	if err := fn(ctx, repos); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction error: %v, rollback error: %w", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
