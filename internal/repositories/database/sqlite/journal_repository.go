package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SscSPs/bookkeeping_app/internal/apperrors"
	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_app/internal/core/ports/repositories"
	"github.com/SscSPs/bookkeeping_app/internal/models"
	"github.com/SscSPs/bookkeeping_app/internal/utils/mapping"
	"github.com/SscSPs/bookkeeping_app/internal/utils/pagination"
)

type SQLiteJournalRepository struct {
	db querier
}

// newSQLiteJournalRepository creates a new repository for journal headers and entries.
func newSQLiteJournalRepository(db querier) *SQLiteJournalRepository {
	return &SQLiteJournalRepository{db: db}
}

var (
	_ portsrepo.JournalRepositoryFacade = (*SQLiteJournalRepository)(nil)
	_ portsrepo.JournalWriter           = (*SQLiteJournalRepository)(nil)
)

const defaultJournalPageSize = 20

const journalColumns = `journal_id, user_id, date, narration, is_posted, created_at, created_by, last_updated_at, last_updated_by`

// InsertJournal inserts a journal header and returns the id assigned by the store.
func (r *SQLiteJournalRepository) InsertJournal(ctx context.Context, journal domain.Journal) (int64, error) {
	m := mapping.ToModelJournal(journal)
	query := `
		INSERT INTO journals (user_id, date, narration, is_posted, created_at, created_by, last_updated_at, last_updated_by)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	res, err := r.db.ExecContext(ctx, query,
		m.UserID, utc(m.Date), m.Narration, m.IsPosted,
		utc(m.CreatedAt), m.CreatedBy, utc(m.LastUpdatedAt), m.LastUpdatedBy,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert journal: %w", err)
	}
	return res.LastInsertId()
}

// InsertJournalEntry inserts one entry of an already inserted journal.
func (r *SQLiteJournalRepository) InsertJournalEntry(ctx context.Context, entry domain.JournalEntry) (int64, error) {
	m := mapping.ToModelJournalEntry(entry)
	query := `
		INSERT INTO journal_entries (journal_id, account_id, debit_amount, credit_amount)
		VALUES (?, ?, ?, ?)
	`
	res, err := r.db.ExecContext(ctx, query, m.JournalID, m.AccountID, m.DebitAmount, m.CreditAmount)
	if err != nil {
		return 0, fmt.Errorf("failed to insert entry for journal %d: %w", m.JournalID, err)
	}
	return res.LastInsertId()
}

// FindJournalByID retrieves a journal header and its entries in insertion order.
func (r *SQLiteJournalRepository) FindJournalByID(ctx context.Context, userID string, journalID int64) (*domain.Journal, error) {
	query := `SELECT ` + journalColumns + ` FROM journals WHERE user_id = ? AND journal_id = ?`
	m, err := scanJournal(r.db.QueryRowContext(ctx, query, userID, journalID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find journal %d: %w", journalID, err)
	}

	entries, err := r.findEntries(ctx, journalID)
	if err != nil {
		return nil, err
	}

	journal := mapping.ToDomainJournal(m)
	journal.Entries = entries
	return &journal, nil
}

func (r *SQLiteJournalRepository) findEntries(ctx context.Context, journalID int64) ([]domain.JournalEntry, error) {
	query := `
		SELECT e.entry_id, e.journal_id, e.account_id, a.name, e.debit_amount, e.credit_amount
		FROM journal_entries e
		JOIN accounts a ON a.account_id = e.account_id
		WHERE e.journal_id = ?
		ORDER BY e.entry_id
	`
	rows, err := r.db.QueryContext(ctx, query, journalID)
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
	return mapping.ToDomainJournalEntrySlice(entries), nil
}

// ListJournals retrieves journal headers newest first (date, then id) with token-based pagination.
func (r *SQLiteJournalRepository) ListJournals(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Journal, *string, error) {
	if limit <= 0 {
		limit = defaultJournalPageSize
	}
	args := []any{userID}
	query := `SELECT ` + journalColumns + ` FROM journals WHERE user_id = ?`

	if nextToken != nil && *nextToken != "" {
		date, id, err := pagination.DecodeDateIDToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		query += ` AND (date < ? OR (date = ? AND journal_id < ?))`
		args = append(args, utc(date), utc(date), id)
	}

	// Fetch one extra row to learn whether another page exists.
	query += ` ORDER BY date DESC, journal_id DESC LIMIT ?`
	args = append(args, limit+1)

	rows, err := r.db.QueryContext(ctx, query, args...)
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
func (r *SQLiteJournalRepository) MaxJournalID(ctx context.Context) (int64, error) {
	var maxID int64
	if err := r.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(journal_id), 0) FROM journals`).Scan(&maxID); err != nil {
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
