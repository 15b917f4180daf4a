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
	"github.com/jackc/pgx/v5"
)

type PgxAccountRepository struct {
	db pgQuerier
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(db pgQuerier) *PgxAccountRepository {
	return &PgxAccountRepository{db: db}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const accountColumns = `account_id, user_id, name, chart_id, head_name, account_type, code, created_at, created_by, last_updated_at, last_updated_by`

// SaveAccount inserts a new account and returns its id.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) (int64, error) {
	m := mapping.ToModelAccount(account)
	query := `
		INSERT INTO accounts (user_id, name, chart_id, head_name, account_type, code, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING account_id;
	`
	var id int64
	err := r.db.QueryRow(ctx, query,
		m.UserID, m.Name, m.ChartID, m.HeadName, m.AccountType, m.Code,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: account %q already exists", apperrors.ErrDuplicate, m.Name)
		}
		return 0, fmt.Errorf("failed to save account %q: %w", m.Name, err)
	}
	return id, nil
}

// FindAccountByID retrieves an account owned by userID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, userID string, accountID int64) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE user_id = $1 AND account_id = $2;`
	return r.findOne(ctx, query, userID, accountID)
}

// FindAccountByName retrieves an account by its exact name.
func (r *PgxAccountRepository) FindAccountByName(ctx context.Context, userID string, name string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE user_id = $1 AND name = $2;`
	return r.findOne(ctx, query, userID, name)
}

// FindAccountsByIDs retrieves the accounts that exist among accountIDs, keyed by id.
func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, userID string, accountIDs []int64) (map[int64]domain.Account, error) {
	result := make(map[int64]domain.Account, len(accountIDs))
	if len(accountIDs) == 0 {
		return result, nil
	}

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE user_id = $1 AND account_id = ANY($2);`
	accounts, err := r.list(ctx, query, userID, accountIDs)
	if err != nil {
		return nil, err
	}
	for _, acc := range accounts {
		result[acc.AccountID] = acc
	}
	return result, nil
}

// ListAccounts retrieves all accounts owned by userID ordered by code then name.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE user_id = $1 ORDER BY code, name;`
	return r.list(ctx, query, userID)
}

func (r *PgxAccountRepository) findOne(ctx context.Context, query string, args ...any) (*domain.Account, error) {
	m, err := scanAccount(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}
	acc := mapping.ToDomainAccount(m)
	return &acc, nil
}

func (r *PgxAccountRepository) list(ctx context.Context, query string, args ...any) ([]domain.Account, error) {
	rows, err := r.db.Query(ctx, query, args...)
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
