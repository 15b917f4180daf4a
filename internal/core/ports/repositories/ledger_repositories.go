package repositories

import (
	"context"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
)

// LedgerReader defines read operations for the append-only ledger.
type LedgerReader interface {
	// FindLatestLedgerRow returns the most recently appended row for the account,
	// or apperrors.ErrNotFound when the account has never been posted to.
	FindLatestLedgerRow(ctx context.Context, accountID int64) (*domain.LedgerRow, error)

	// ListLedgerByAccount returns ledger rows newest first with the linked account name filled in.
	// A limit of zero or less returns the whole history.
	ListLedgerByAccount(ctx context.Context, accountID int64, limit int, nextToken *string) ([]domain.LedgerRow, *string, error)
}

// LedgerWriter appends ledger rows. Rows are never updated or deleted.
type LedgerWriter interface {
	// AppendLedgerRow inserts a row and returns its id.
	AppendLedgerRow(ctx context.Context, row domain.LedgerRow) (int64, error)
}

// LedgerRepositoryFacade exposes the read side of the ledger outside a unit of work.
type LedgerRepositoryFacade interface {
	LedgerReader
}
