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

type SQLiteLedgerRepository struct {
	db querier
}

// newSQLiteLedgerRepository creates a new repository for the append-only ledger.
func newSQLiteLedgerRepository(db querier) *SQLiteLedgerRepository {
	return &SQLiteLedgerRepository{db: db}
}

var (
	_ portsrepo.LedgerRepositoryFacade = (*SQLiteLedgerRepository)(nil)
	_ portsrepo.LedgerWriter           = (*SQLiteLedgerRepository)(nil)
)

const ledgerSelect = `
	SELECT l.ledger_id, l.account_id, l.date, l.particulars, l.debit, l.credit, l.balance, l.balance_type,
	       l.linked_account_id, la.name,
	       l.created_at, l.created_by, l.last_updated_at, l.last_updated_by
	FROM ledger l
	LEFT JOIN accounts la ON la.account_id = l.linked_account_id
`

// AppendLedgerRow inserts a new ledger row and returns its id.
func (r *SQLiteLedgerRepository) AppendLedgerRow(ctx context.Context, row domain.LedgerRow) (int64, error) {
	m := mapping.ToModelLedgerRow(row)
	query := `
		INSERT INTO ledger (account_id, date, particulars, debit, credit, balance, balance_type, linked_account_id,
		                    created_at, created_by, last_updated_at, last_updated_by)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	res, err := r.db.ExecContext(ctx, query,
		m.AccountID, utc(m.Date), m.Particulars, m.Debit, m.Credit, m.Balance, m.BalanceType, m.LinkedAccountID,
		utc(m.CreatedAt), m.CreatedBy, utc(m.LastUpdatedAt), m.LastUpdatedBy,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to append ledger row for account %d: %w", m.AccountID, err)
	}
	return res.LastInsertId()
}

// FindLatestLedgerRow returns the most recently appended row for the account.
func (r *SQLiteLedgerRepository) FindLatestLedgerRow(ctx context.Context, accountID int64) (*domain.LedgerRow, error) {
	query := ledgerSelect + ` WHERE l.account_id = ? ORDER BY l.ledger_id DESC LIMIT 1`
	m, err := scanLedgerRow(r.db.QueryRowContext(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read latest ledger row for account %d: %w", accountID, err)
	}
	row := mapping.ToDomainLedgerRow(m)
	return &row, nil
}

// ListLedgerByAccount returns ledger rows newest first. A limit of zero or less returns every row.
func (r *SQLiteLedgerRepository) ListLedgerByAccount(ctx context.Context, accountID int64, limit int, nextToken *string) ([]domain.LedgerRow, *string, error) {
	args := []any{accountID}
	query := ledgerSelect + ` WHERE l.account_id = ?`

	if nextToken != nil && *nextToken != "" {
		beforeID, err := pagination.DecodeIDToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		query += ` AND l.ledger_id < ?`
		args = append(args, beforeID)
	}

	query += ` ORDER BY l.ledger_id DESC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit+1)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list ledger for account %d: %w", accountID, err)
	}
	defer rows.Close()

	var ms []models.LedgerRow
	for rows.Next() {
		m, err := scanLedgerRow(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan ledger row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating ledger rows: %w", err)
	}

	var next *string
	if limit > 0 && len(ms) > limit {
		ms = ms[:limit]
		token := pagination.EncodeIDToken(ms[len(ms)-1].LedgerID)
		next = &token
	}
	return mapping.ToDomainLedgerRowSlice(ms), next, nil
}

func scanLedgerRow(s rowScanner) (models.LedgerRow, error) {
	var m models.LedgerRow
	err := s.Scan(
		&m.LedgerID, &m.AccountID, &m.Date, &m.Particulars, &m.Debit, &m.Credit, &m.Balance, &m.BalanceType,
		&m.LinkedAccountID, &m.LinkedAccountName,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}
