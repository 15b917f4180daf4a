package mapping

import (
	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	"github.com/SscSPs/bookkeeping_app/internal/models"
)

// ToModelJournal converts a domain Journal header to a model Journal
func ToModelJournal(d domain.Journal) models.Journal {
	return models.Journal{
		JournalID:   d.JournalID,
		UserID:      d.UserID,
		Date:        d.Date,
		Narration:   d.Narration,
		IsPosted:    d.IsPosted,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournal converts a model Journal to a domain Journal without entries
func ToDomainJournal(m models.Journal) domain.Journal {
	return domain.Journal{
		JournalID:   m.JournalID,
		UserID:      m.UserID,
		Date:        m.Date,
		Narration:   m.Narration,
		IsPosted:    m.IsPosted,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelJournalEntry converts a domain JournalEntry to a model JournalEntry
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:      d.EntryID,
		JournalID:    d.JournalID,
		AccountID:    d.AccountID,
		AccountName:  d.AccountName,
		DebitAmount:  d.DebitAmount,
		CreditAmount: d.CreditAmount,
	}
}

// ToDomainJournalEntry converts a model JournalEntry to a domain JournalEntry
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:      m.EntryID,
		JournalID:    m.JournalID,
		AccountID:    m.AccountID,
		AccountName:  m.AccountName,
		DebitAmount:  m.DebitAmount,
		CreditAmount: m.CreditAmount,
	}
}

// ToDomainJournalEntrySlice converts a slice of model entries to domain entries
func ToDomainJournalEntrySlice(ms []models.JournalEntry) []domain.JournalEntry {
	ds := make([]domain.JournalEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJournalEntry(m)
	}
	return ds
}
