package services

import (
	"context"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	"github.com/SscSPs/bookkeeping_app/internal/dto"
)

// JournalPosterSvc is the journal posting engine.
type JournalPosterSvc interface {
	// PostJournal validates and persists a journal with one ledger row per entry, atomically.
	// It returns the store-assigned journal id.
	PostJournal(ctx context.Context, session domain.Session, journal domain.Journal) (int64, error)
}

// JournalReaderSvc defines read operations for journal data.
type JournalReaderSvc interface {
	// GetJournal retrieves a journal with its entries.
	GetJournal(ctx context.Context, session domain.Session, journalID int64) (*domain.Journal, error)

	// ListJournals retrieves a page of journal headers, newest first.
	ListJournals(ctx context.Context, session domain.Session, params dto.ListJournalsParams) (*dto.ListJournalsResponse, error)

	// GetNextJournalID returns the id the next journal is expected to receive. Advisory only.
	GetNextJournalID(ctx context.Context) (int64, error)
}

// JournalSvcFacade combines all journal-related service interfaces.
type JournalSvcFacade interface {
	JournalPosterSvc
	JournalReaderSvc
}
