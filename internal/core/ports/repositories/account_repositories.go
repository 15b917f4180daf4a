package repositories

import (
	"context"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
)

// ChartReader defines read operations for chart heads.
type ChartReader interface {
	// FindChartByID retrieves a chart head owned by userID.
	FindChartByID(ctx context.Context, userID string, chartID int64) (*domain.Chart, error)

	// FindChartByName retrieves a chart head by its exact name.
	FindChartByName(ctx context.Context, userID string, name string) (*domain.Chart, error)

	// ListCharts retrieves all chart heads owned by userID.
	ListCharts(ctx context.Context, userID string) ([]domain.Chart, error)
}

// ChartWriter defines write operations for chart heads.
type ChartWriter interface {
	// SaveChart persists a new chart head and returns its id.
	SaveChart(ctx context.Context, chart domain.Chart) (int64, error)
}

// ChartRepositoryFacade combines all chart-related repository interfaces.
type ChartRepositoryFacade interface {
	ChartReader
	ChartWriter
}

// AccountReader defines read operations for account data.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its identifier.
	FindAccountByID(ctx context.Context, userID string, accountID int64) (*domain.Account, error)

	// FindAccountByName retrieves an account by its exact name.
	FindAccountByName(ctx context.Context, userID string, name string) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts keyed by id. Missing ids are absent from the map.
	FindAccountsByIDs(ctx context.Context, userID string, accountIDs []int64) (map[int64]domain.Account, error)

	// ListAccounts retrieves all accounts owned by userID ordered by code then name.
	ListAccounts(ctx context.Context, userID string) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data.
type AccountWriter interface {
	// SaveAccount persists a new account and returns its id.
	SaveAccount(ctx context.Context, account domain.Account) (int64, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
