package repositories

import (
	"context"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
)

// JournalReader defines read operations for journal data.
type JournalReader interface {
	// FindJournalByID retrieves a journal header and its entries, each entry carrying the account name.
	FindJournalByID(ctx context.Context, userID string, journalID int64) (*domain.Journal, error)

	// ListJournals retrieves journal headers newest first using token-based pagination.
	// It returns the journals, a token for the next page, and an error.
	ListJournals(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Journal, *string, error)

	// MaxJournalID returns the greatest journal id ever assigned, or 0 when there are none.
	MaxJournalID(ctx context.Context) (int64, error)
}

// JournalWriter defines write operations for journal data. It is only reachable inside a unit of work.
type JournalWriter interface {
	// InsertJournal persists a journal header and returns the id assigned by the store.
	InsertJournal(ctx context.Context, journal domain.Journal) (int64, error)

	// InsertJournalEntry persists a single entry of an already inserted journal.
	InsertJournalEntry(ctx context.Context, entry domain.JournalEntry) (int64, error)
}

// JournalRepositoryFacade combines journal reads with the transactional entry point.
type JournalRepositoryFacade interface {
	JournalReader
}
