package services

import (
	"context"
	"time"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	"github.com/SscSPs/bookkeeping_app/internal/dto"
	"github.com/shopspring/decimal"
)

// SeedRequest describes an opening balance written outside a journal.
type SeedRequest struct {
	AccountID   int64
	Date        time.Time
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Particulars string
}

// LedgerReaderSvc defines read operations for the ledger.
type LedgerReaderSvc interface {
	// GetCurrentBalance returns the balance of the account's latest ledger row.
	// The boolean is false when the account has never been posted to.
	GetCurrentBalance(ctx context.Context, session domain.Session, accountID int64) (domain.Balance, bool, error)

	// GetLedger returns the account's ledger rows newest first.
	GetLedger(ctx context.Context, session domain.Session, accountID int64, params dto.ListLedgerParams) (*dto.ListLedgerResponse, error)
}

// LedgerSeederSvc seeds opening balances on accounts without history.
type LedgerSeederSvc interface {
	// SeedOpeningBalance appends the first ledger row of an account.
	// It fails with apperrors.ErrAlreadySeeded when the account already has rows.
	SeedOpeningBalance(ctx context.Context, session domain.Session, req SeedRequest) (*domain.LedgerRow, error)
}

// LedgerSvcFacade combines all ledger-related service interfaces.
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerSeederSvc
}
