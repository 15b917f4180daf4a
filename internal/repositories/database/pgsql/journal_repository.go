package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/bookkeeping_app/internal/apperrors"
	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_app/internal/core/ports/repositories"
	"github.com/SscSPs/bookkeeping_app/internal/models"
	"github.com/SscSPs/bookkeeping_app/internal/utils/mapping"
	"github.com/SscSPs/bookkeeping_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
)

type PgxJournalRepository struct {
	db pgQuerier
}

// newPgxJournalRepository creates a new repository for journal headers and entries.
func newPgxJournalRepository(db pgQuerier) *PgxJournalRepository {
	return &PgxJournalRepository{db: db}
}

var (
	_ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)
	_ portsrepo.JournalWriter           = (*PgxJournalRepository)(nil)
)

const defaultJournalPageSize = 20

const journalColumns = `journal_id, user_id, date, narration, is_posted, created_at, created_by, last_updated_at, last_updated_by`

// InsertJournal inserts a journal header and returns the id assigned by the store.
func (r *PgxJournalRepository) InsertJournal(ctx context.Context, journal domain.Journal) (int64, error) {
	m := mapping.ToModelJournal(journal)
	query := `
		INSERT INTO journals (user_id, date, narration, is_posted, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING journal_id;
	`
	var id int64
	err := r.db.QueryRow(ctx, query,
		m.UserID, m.Date, m.Narration, m.IsPosted, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert journal: %w", err)
	}
	return id, nil
}

// InsertJournalEntry inserts one entry of an already inserted journal.
func (r *PgxJournalRepository) InsertJournalEntry(ctx context.Context, entry domain.JournalEntry) (int64, error) {
	m := mapping.ToModelJournalEntry(entry)
	query := `
		INSERT INTO journal_entries (journal_id, account_id, debit_amount, credit_amount)
		VALUES ($1, $2, $3, $4)
		RETURNING entry_id;
	`
	var id int64
	if err := r.db.QueryRow(ctx, query, m.JournalID, m.AccountID, m.DebitAmount, m.CreditAmount).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert entry for journal %d: %w", m.JournalID, err)
	}
	return id, nil
}

// FindJournalByID retrieves a journal header and its entries in insertion order.
func (r *PgxJournalRepository) FindJournalByID(ctx context.Context, userID string, journalID int64) (*domain.Journal, error) {
	query := `SELECT ` + journalColumns + ` FROM journals WHERE user_id = $1 AND journal_id = $2;`
	m, err := scanJournal(r.db.QueryRow(ctx, query, userID, journalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find journal %d: %w", journalID, err)
	}

	entryQuery := `
		SELECT e.entry_id, e.journal_id, e.account_id, a.name, e.debit_amount, e.credit_amount
		FROM journal_entries e
		JOIN accounts a ON a.account_id = e.account_id
		WHERE e.journal_id = $1
		ORDER BY e.entry_id;
	`
	rows, err := r.db.Query(ctx, entryQuery, journalID)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries for journal %d: %w", journalID, err)
	}
	defer rows.Close()

	var entries []models.JournalEntry
	for rows.Next() {
		var e models.JournalEntry
		if err := rows.Scan(&e.EntryID, &e.JournalID, &e.AccountID, &e.AccountName, &e.DebitAmount, &e.CreditAmount); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal entries: %w", err)
	}

	journal := mapping.ToDomainJournal(m)
	journal.Entries = mapping.ToDomainJournalEntrySlice(entries)
	return &journal, nil
}

// ListJournals retrieves journal headers newest first (date, then id) with token-based pagination.
func (r *PgxJournalRepository) ListJournals(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Journal, *string, error) {
	if limit <= 0 {
		limit = defaultJournalPageSize
	}
	args := []any{userID}
	query := `SELECT ` + journalColumns + ` FROM journals WHERE user_id = $1`

	if nextToken != nil && *nextToken != "" {
		date, id, err := pagination.DecodeDateIDToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		query += ` AND (date, journal_id) < ($2, $3)`
		args = append(args, date, id)
	}

	query += fmt.Sprintf(` ORDER BY date DESC, journal_id DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit+1)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list journals: %w", err)
	}
	defer rows.Close()

	journals := make([]domain.Journal, 0, limit)
	for rows.Next() {
		m, err := scanJournal(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan journal: %w", err)
		}
		journals = append(journals, mapping.ToDomainJournal(m))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating journal rows: %w", err)
	}

	var next *string
	if len(journals) > limit {
		journals = journals[:limit]
		last := journals[len(journals)-1]
		token := pagination.EncodeDateIDToken(last.Date, last.JournalID)
		next = &token
	}
	return journals, next, nil
}

// MaxJournalID returns the greatest journal id ever assigned, or 0.
func (r *PgxJournalRepository) MaxJournalID(ctx context.Context) (int64, error) {
	var maxID int64
	if err := r.db.QueryRow(ctx, `SELECT COALESCE(MAX(journal_id), 0) FROM journals;`).Scan(&maxID); err != nil {
		return 0, fmt.Errorf("failed to read max journal id: %w", err)
	}
	return maxID, nil
}

func scanJournal(s rowScanner) (models.Journal, error) {
	var m models.Journal
	err := s.Scan(
		&m.JournalID, &m.UserID, &m.Date, &m.Narration, &m.IsPosted,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}
