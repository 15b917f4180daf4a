package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Journal is a row of the journals table.
type Journal struct {
	JournalID int64     `db:"journal_id"`
	UserID    string    `db:"user_id"`
	Date      time.Time `db:"date"`
	Narration string    `db:"narration"`
	IsPosted  bool      `db:"is_posted"`
	AuditFields
}

// JournalEntry is a row of the journal_entries table.
type JournalEntry struct {
	EntryID      int64           `db:"entry_id"`
	JournalID    int64           `db:"journal_id"`
	AccountID    int64           `db:"account_id"`
	AccountName  string          `db:"account_name"` // Joined from accounts on read
	DebitAmount  decimal.Decimal `db:"debit_amount"`
	CreditAmount decimal.Decimal `db:"credit_amount"`
}
