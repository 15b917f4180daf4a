package dto

import (
	"time"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerRowResponse defines the data returned for a ledger row.
type LedgerRowResponse struct {
	LedgerID          int64              `json:"ledgerID"`
	Date              time.Time          `json:"date"`
	Particulars       string             `json:"particulars"`
	Debit             decimal.Decimal    `json:"debit"`
	Credit            decimal.Decimal    `json:"credit"`
	Balance           decimal.Decimal    `json:"balance"`
	BalanceType       domain.BalanceType `json:"balanceType"`
	LinkedAccountID   *int64             `json:"linkedAccountID,omitempty"`
	LinkedAccountName string             `json:"linkedAccountName,omitempty"`
	CreatedAt         time.Time          `json:"createdAt"`
}

// ToLedgerRowResponse converts a ledger row to its DTO form.
func ToLedgerRowResponse(r domain.LedgerRow) LedgerRowResponse {
	return LedgerRowResponse{
		LedgerID:          r.LedgerID,
		Date:              r.Date,
		Particulars:       r.Particulars,
		Debit:             r.Debit,
		Credit:            r.Credit,
		Balance:           r.Balance,
		BalanceType:       r.BalanceType,
		LinkedAccountID:   r.LinkedAccountID,
		LinkedAccountName: r.LinkedAccountName,
		CreatedAt:         r.CreatedAt,
	}
}

// ToLedgerRowResponses converts ledger rows to their DTO form.
func ToLedgerRowResponses(rows []domain.LedgerRow) []LedgerRowResponse {
	res := make([]LedgerRowResponse, len(rows))
	for i, r := range rows {
		res[i] = ToLedgerRowResponse(r)
	}
	return res
}

// ListLedgerParams defines query parameters for reading an account ledger.
// A zero limit returns the full history.
type ListLedgerParams struct {
	Limit     int     `form:"limit,default=0" binding:"gte=0,lte=500"`
	NextToken *string `form:"nextToken"`
}

// ListLedgerResponse wraps the rows of an account ledger, newest first.
type ListLedgerResponse struct {
	AccountID int64               `json:"accountID"`
	Rows      []LedgerRowResponse `json:"rows"`
	NextToken *string             `json:"nextToken,omitempty"`
}

// AccountBalanceResponse defines the data returned for an account balance query.
type AccountBalanceResponse struct {
	AccountID   int64              `json:"accountID"`
	Balance     decimal.Decimal    `json:"balance"`
	BalanceType domain.BalanceType `json:"balanceType"`
	HasHistory  bool               `json:"hasHistory"`
}

// SeedOpeningBalanceRequest seeds the first ledger row of an account.
type SeedOpeningBalanceRequest struct {
	Date         time.Time       `json:"date" binding:"required"`
	DebitAmount  decimal.Decimal `json:"debitAmount" binding:"gte=0"`
	CreditAmount decimal.Decimal `json:"creditAmount" binding:"gte=0"`
	Particulars  string          `json:"particulars"`
}
