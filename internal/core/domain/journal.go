package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNoEntries        = errors.New("journal must contain at least one entry")
	ErrNegativeAmount   = errors.New("entry amounts must not be negative")
	ErrEmptyEntry       = errors.New("entry must carry a debit or a credit amount")
	ErrDoubleSidedEntry = errors.New("entry must not carry both a debit and a credit amount")
	ErrMissingAccount   = errors.New("entry must reference an account")
	ErrAmountScale      = fmt.Errorf("entry amounts must not have more than %d decimal places", AmountScale)
)

// AmountScale is the number of decimal places amounts are stored with.
const AmountScale = 4

// Journal is a dated transaction record made of balanced debit and credit entries.
type Journal struct {
	JournalID int64          `json:"journalID"` // Assigned by the store on insert
	UserID    string         `json:"userID"`
	Date      time.Time      `json:"date"`
	Narration string         `json:"narration,omitempty"`
	IsPosted  bool           `json:"isPosted"` // Always true; drafts are not supported
	Entries   []JournalEntry `json:"journalEntries"`
	AuditFields
}

// JournalEntry is one debit-or-credit line within a journal.
type JournalEntry struct {
	EntryID      int64           `json:"entryID"`
	JournalID    int64           `json:"journalID"`
	AccountID    int64           `json:"accountID"`
	AccountName  string          `json:"accountName,omitempty"` // Read side only
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
}

// Validate checks the one-side rule and the amount scale for a single entry.
func (e JournalEntry) Validate() error {
	if e.AccountID <= 0 {
		return ErrMissingAccount
	}
	if e.DebitAmount.IsNegative() || e.CreditAmount.IsNegative() {
		return ErrNegativeAmount
	}
	if !e.DebitAmount.Equal(e.DebitAmount.Truncate(AmountScale)) || !e.CreditAmount.Equal(e.CreditAmount.Truncate(AmountScale)) {
		return ErrAmountScale
	}
	hasDebit := !e.DebitAmount.IsZero()
	hasCredit := !e.CreditAmount.IsZero()
	if !hasDebit && !hasCredit {
		return ErrEmptyEntry
	}
	if hasDebit && hasCredit {
		return ErrDoubleSidedEntry
	}
	return nil
}

// Validate checks the entry-level rules of every entry. It does not check the balance.
func (j Journal) Validate() error {
	if len(j.Entries) == 0 {
		return ErrNoEntries
	}
	for i, entry := range j.Entries {
		if err := entry.Validate(); err != nil {
			return fmt.Errorf("entry %d: %w", i+1, err)
		}
	}
	return nil
}

// Totals returns the sum of debit and credit amounts over all entries.
func (j Journal) Totals() (debits, credits decimal.Decimal) {
	debits, credits = decimal.Zero, decimal.Zero
	for _, entry := range j.Entries {
		debits = debits.Add(entry.DebitAmount)
		credits = credits.Add(entry.CreditAmount)
	}
	return debits, credits
}

// IsBalanced reports whether total debits equal total credits.
func (j Journal) IsBalanced() bool {
	debits, credits := j.Totals()
	return debits.Equal(credits)
}

// AccountIDs returns the distinct account ids referenced by the entries, in first-seen order.
func (j Journal) AccountIDs() []int64 {
	seen := make(map[int64]struct{}, len(j.Entries))
	ids := make([]int64, 0, len(j.Entries))
	for _, entry := range j.Entries {
		if _, ok := seen[entry.AccountID]; ok {
			continue
		}
		seen[entry.AccountID] = struct{}{}
		ids = append(ids, entry.AccountID)
	}
	return ids
}

// LinkedAccountID returns the counterpart account of entry i.
// Only two-entry journals have a counterpart; any other shape returns nil.
func (j Journal) LinkedAccountID(i int) *int64 {
	if len(j.Entries) != 2 || i < 0 || i > 1 {
		return nil
	}
	other := j.Entries[1-i].AccountID
	return &other
}

// JournalParticulars is the ledger narration written for every row a journal produces.
func JournalParticulars(journalID int64) string {
	return fmt.Sprintf("Journal #%d", journalID)
}
