package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// LedgerRow is a row of the append-only ledger table.
type LedgerRow struct {
	LedgerID          int64           `db:"ledger_id"`
	AccountID         int64           `db:"account_id"`
	Date              time.Time       `db:"date"`
	Particulars       string          `db:"particulars"`
	Debit             decimal.Decimal `db:"debit"`
	Credit            decimal.Decimal `db:"credit"`
	Balance           decimal.Decimal `db:"balance"`
	BalanceType       string          `db:"balance_type"`
	LinkedAccountID   sql.NullInt64   `db:"linked_account_id"`
	LinkedAccountName sql.NullString  `db:"linked_account_name"` // Joined from accounts on read
	AuditFields
}
