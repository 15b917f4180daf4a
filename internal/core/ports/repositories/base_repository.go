package repositories

import (
	"context"
)

// TxRepositories are the repository operations available inside a unit of work.
// Every call made through it commits or rolls back together.
type TxRepositories interface {
	JournalWriter
	LedgerReader
	LedgerWriter
}

// TransactionManager runs a function inside a single database transaction.
// The transaction is committed when fn returns nil and rolled back otherwise.
type TransactionManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context, tx TxRepositories) error) error
}
