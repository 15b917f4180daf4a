package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceType records the sign of a running balance.
type BalanceType string

const (
	BalanceDebit  BalanceType = "Dr"
	BalanceCredit BalanceType = "Cr"
)

// IsValid reports whether t is Dr or Cr.
func (t BalanceType) IsValid() bool {
	return t == BalanceDebit || t == BalanceCredit
}

// Balance is an unsigned magnitude plus the side it sits on.
type Balance struct {
	Amount decimal.Decimal `json:"balance"`
	Type   BalanceType     `json:"balanceType"`
}

// OpeningBalance is the balance of an account that has never been posted to.
func OpeningBalance() Balance {
	return Balance{Amount: decimal.Zero, Type: BalanceDebit}
}

// Signed returns the balance as a signed amount, debits positive.
func (b Balance) Signed() decimal.Decimal {
	if b.Type == BalanceCredit {
		return b.Amount.Neg()
	}
	return b.Amount
}

// Apply returns the balance after a debit and credit are posted against it.
// A result of exactly zero is reported as Dr.
func (b Balance) Apply(debit, credit decimal.Decimal) Balance {
	signed := b.Signed().Add(debit).Sub(credit)
	if signed.IsNegative() {
		return Balance{Amount: signed.Abs(), Type: BalanceCredit}
	}
	return Balance{Amount: signed, Type: BalanceDebit}
}

// LedgerRow is one immutable snapshot of an account's balance after one posting.
type LedgerRow struct {
	LedgerID          int64           `json:"ledgerID"`
	AccountID         int64           `json:"accountID"`
	Date              time.Time       `json:"date"`
	Particulars       string          `json:"particulars"`
	Debit             decimal.Decimal `json:"debit"`
	Credit            decimal.Decimal `json:"credit"`
	Balance           decimal.Decimal `json:"balance"`
	BalanceType       BalanceType     `json:"balanceType"`
	LinkedAccountID   *int64          `json:"linkedAccountID,omitempty"`
	LinkedAccountName string          `json:"linkedAccountName,omitempty"` // Read side only
	AuditFields
}

// CurrentBalance returns the balance recorded on the row.
func (r LedgerRow) CurrentBalance() Balance {
	return Balance{Amount: r.Balance, Type: r.BalanceType}
}
