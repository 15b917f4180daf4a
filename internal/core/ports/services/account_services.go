package services

import (
	"context"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	"github.com/SscSPs/bookkeeping_app/internal/dto"
)

// ChartSvc defines operations on chart heads.
type ChartSvc interface {
	// CreateChart creates a new chart head.
	CreateChart(ctx context.Context, session domain.Session, req dto.CreateChartRequest) (*domain.Chart, error)

	// ListCharts lists the session's chart heads.
	ListCharts(ctx context.Context, session domain.Session) ([]domain.Chart, error)

	// FindChartByName finds a chart head by exact name.
	FindChartByName(ctx context.Context, session domain.Session, name string) (*domain.Chart, error)
}

// AccountReaderSvc defines read operations for accounts.
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account.
	GetAccountByID(ctx context.Context, session domain.Session, accountID int64) (*domain.Account, error)

	// GetAccountsByIDs retrieves several accounts keyed by id; unknown ids are absent.
	GetAccountsByIDs(ctx context.Context, session domain.Session, accountIDs []int64) (map[int64]domain.Account, error)

	// FindAccountByName finds an account by exact name.
	FindAccountByName(ctx context.Context, session domain.Session, name string) (*domain.Account, error)

	// ListAccounts lists the session's accounts.
	ListAccounts(ctx context.Context, session domain.Session) ([]domain.Account, error)

	// AccountExists reports whether the account exists for the session.
	AccountExists(ctx context.Context, session domain.Session, accountID int64) (bool, error)
}

// AccountWriterSvc defines write operations for accounts.
type AccountWriterSvc interface {
	// CreateAccount creates an account under an existing chart head.
	CreateAccount(ctx context.Context, session domain.Session, req dto.CreateAccountRequest) (*domain.Account, error)
}

// AccountSvcFacade combines all account-directory service interfaces.
type AccountSvcFacade interface {
	ChartSvc
	AccountReaderSvc
	AccountWriterSvc
}
