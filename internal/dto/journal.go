package dto

import (
	"time"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalEntryRequest is one debit-or-credit line of a journal being posted.
type JournalEntryRequest struct {
	AccountID    int64           `json:"accountID" binding:"required,gt=0"`
	DebitAmount  decimal.Decimal `json:"debitAmount" binding:"gte=0"`
	CreditAmount decimal.Decimal `json:"creditAmount" binding:"gte=0"`
}

// CreateJournalRequest defines the data needed to post a journal.
type CreateJournalRequest struct {
	Date      time.Time             `json:"date" binding:"required"`
	Narration string                `json:"narration"`
	Entries   []JournalEntryRequest `json:"journalEntries" binding:"required,min=1,dive"`
}

// ToDomainJournal converts the request into an unposted domain.Journal.
func (r CreateJournalRequest) ToDomainJournal() domain.Journal {
	entries := make([]domain.JournalEntry, len(r.Entries))
	for i, e := range r.Entries {
		entries[i] = domain.JournalEntry{
			AccountID:    e.AccountID,
			DebitAmount:  e.DebitAmount,
			CreditAmount: e.CreditAmount,
		}
	}
	return domain.Journal{
		Date:      r.Date,
		Narration: r.Narration,
		Entries:   entries,
	}
}

// CreateJournalResponse returns the id assigned to a posted journal.
type CreateJournalResponse struct {
	JournalID int64 `json:"journalID"`
}

// NextJournalIDResponse carries the advisory id of the next journal.
type NextJournalIDResponse struct {
	NextJournalID int64 `json:"nextJournalID"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	EntryID      int64           `json:"entryID"`
	AccountID    int64           `json:"accountID"`
	AccountName  string          `json:"accountName"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
}

// JournalResponse defines the data returned for a journal.
type JournalResponse struct {
	JournalID int64                  `json:"journalID"`
	Date      time.Time              `json:"date"`
	Narration string                 `json:"narration"`
	IsPosted  bool                   `json:"isPosted"`
	Entries   []JournalEntryResponse `json:"journalEntries,omitempty"`
	CreatedAt time.Time              `json:"createdAt"`
	CreatedBy string                 `json:"createdBy"`
}

// ToJournalResponse converts a domain.Journal to JournalResponse DTO.
func ToJournalResponse(j *domain.Journal) JournalResponse {
	var entries []JournalEntryResponse
	if len(j.Entries) > 0 {
		entries = make([]JournalEntryResponse, len(j.Entries))
		for i, e := range j.Entries {
			entries[i] = JournalEntryResponse{
				EntryID:      e.EntryID,
				AccountID:    e.AccountID,
				AccountName:  e.AccountName,
				DebitAmount:  e.DebitAmount,
				CreditAmount: e.CreditAmount,
			}
		}
	}
	return JournalResponse{
		JournalID: j.JournalID,
		Date:      j.Date,
		Narration: j.Narration,
		IsPosted:  j.IsPosted,
		Entries:   entries,
		CreatedAt: j.CreatedAt,
		CreatedBy: j.CreatedBy,
	}
}

// ListJournalsParams defines query parameters for listing journals.
type ListJournalsParams struct {
	Limit     int     `form:"limit,default=20" binding:"gte=0,lte=200"`
	NextToken *string `form:"nextToken"`
}

// ListJournalsResponse wraps a page of journals.
type ListJournalsResponse struct {
	Journals  []JournalResponse `json:"journals"`
	NextToken *string           `json:"nextToken,omitempty"`
}
