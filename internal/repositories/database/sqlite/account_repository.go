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
)

type SQLiteAccountRepository struct {
	db querier
}

// newSQLiteAccountRepository creates a new repository for account data.
func newSQLiteAccountRepository(db querier) *SQLiteAccountRepository {
	return &SQLiteAccountRepository{db: db}
}

var _ portsrepo.AccountRepositoryFacade = (*SQLiteAccountRepository)(nil)

const accountColumns = `account_id, user_id, name, chart_id, head_name, account_type, code, created_at, created_by, last_updated_at, last_updated_by`

// SaveAccount inserts a new account and returns the id assigned by the store.
func (r *SQLiteAccountRepository) SaveAccount(ctx context.Context, account domain.Account) (int64, error) {
	m := mapping.ToModelAccount(account)
	query := `
		INSERT INTO accounts (user_id, name, chart_id, head_name, account_type, code, created_at, created_by, last_updated_at, last_updated_by)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	res, err := r.db.ExecContext(ctx, query,
		m.UserID, m.Name, m.ChartID, m.HeadName, m.AccountType, m.Code,
		utc(m.CreatedAt), m.CreatedBy, utc(m.LastUpdatedAt), m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: account %q already exists", apperrors.ErrDuplicate, m.Name)
		}
		return 0, fmt.Errorf("failed to save account %q: %w", m.Name, err)
	}
	return res.LastInsertId()
}

// FindAccountByID retrieves an account owned by userID.
func (r *SQLiteAccountRepository) FindAccountByID(ctx context.Context, userID string, accountID int64) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE user_id = ? AND account_id = ?`
	return r.findOne(ctx, query, userID, accountID)
}

// FindAccountByName retrieves an account by its exact name.
func (r *SQLiteAccountRepository) FindAccountByName(ctx context.Context, userID string, name string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE user_id = ? AND name = ?`
	return r.findOne(ctx, query, userID, name)
}

// FindAccountsByIDs retrieves the accounts that exist among accountIDs, keyed by id.
func (r *SQLiteAccountRepository) FindAccountsByIDs(ctx context.Context, userID string, accountIDs []int64) (map[int64]domain.Account, error) {
	result := make(map[int64]domain.Account, len(accountIDs))
	if len(accountIDs) == 0 {
		return result, nil
	}

	args := make([]any, 0, len(accountIDs)+1)
	args = append(args, userID)
	for _, id := range accountIDs {
		args = append(args, id)
	}
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE user_id = ? AND account_id IN (` + placeholders(len(accountIDs)) + `)`

	accounts, err := r.list(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	for _, acc := range accounts {
		result[acc.AccountID] = acc
	}
	return result, nil
}

// ListAccounts retrieves all accounts owned by userID ordered by code then name.
func (r *SQLiteAccountRepository) ListAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE user_id = ? ORDER BY code, name`
	return r.list(ctx, query, userID)
}

func (r *SQLiteAccountRepository) findOne(ctx context.Context, query string, args ...any) (*domain.Account, error) {
	m, err := scanAccount(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}
	acc := mapping.ToDomainAccount(m)
	return &acc, nil
}

func (r *SQLiteAccountRepository) list(ctx context.Context, query string, args ...any) ([]domain.Account, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return mapping.ToDomainAccountSlice(accounts), nil
}

func scanAccount(s rowScanner) (models.Account, error) {
	var m models.Account
	err := s.Scan(
		&m.AccountID, &m.UserID, &m.Name, &m.ChartID, &m.HeadName, &m.AccountType, &m.Code,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}
