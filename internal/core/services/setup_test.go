package services_test

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookkeeping_app/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_app/internal/core/services"
	"github.com/SscSPs/bookkeeping_app/internal/dto"
	"github.com/SscSPs/bookkeeping_app/internal/platform/config"
	"github.com/SscSPs/bookkeeping_app/internal/platform/database"
	"github.com/SscSPs/bookkeeping_app/internal/repositories/database/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	owner     = domain.NewSession("owner")
	firstDay  = time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	secondDay = time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)
)

// book is a service container backed by a fresh SQLite file.
type book struct {
	repos portsrepo.RepositoryProvider
	svc   *portssvc.ServiceContainer
}

func newBook(t *testing.T) *book {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "books.db")
	require.NoError(t, database.RunMigrations(slog.New(slog.NewTextHandler(io.Discard, nil)), config.DriverSQLite, dbPath, database.Up))

	db, err := database.OpenSQLite(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repos := sqlite.NewRepositoryProvider(db)
	return &book{repos: repos, svc: services.NewServiceContainer(&config.Config{}, repos)}
}

// accounts creates one chart head of the given type holding the named accounts.
func (b *book) accounts(t *testing.T, head string, accountType domain.AccountType, names ...string) []int64 {
	t.Helper()
	ctx := context.Background()
	chart, err := b.svc.Account.CreateChart(ctx, owner, dto.CreateChartRequest{Name: head, AccountType: accountType})
	require.NoError(t, err)

	ids := make([]int64, 0, len(names))
	for _, name := range names {
		acc, err := b.svc.Account.CreateAccount(ctx, owner, dto.CreateAccountRequest{Name: name, ChartID: chart.ChartID})
		require.NoError(t, err)
		ids = append(ids, acc.AccountID)
	}
	return ids
}

// transfer posts a two-entry journal debiting dr and crediting cr.
func (b *book) transfer(t *testing.T, dr, cr int64, amount string) int64 {
	t.Helper()
	id, err := b.svc.Journal.PostJournal(context.Background(), owner, twoEntry(dr, cr, amount))
	require.NoError(t, err)
	return id
}

func twoEntry(dr, cr int64, amount string) domain.Journal {
	amt := decimal.RequireFromString(amount)
	return domain.Journal{
		Date: firstDay,
		Entries: []domain.JournalEntry{
			{AccountID: dr, DebitAmount: amt, CreditAmount: decimal.Zero},
			{AccountID: cr, DebitAmount: decimal.Zero, CreditAmount: amt},
		},
	}
}

func (b *book) ledger(t *testing.T, accountID int64) []dto.LedgerRowResponse {
	t.Helper()
	resp, err := b.svc.Ledger.GetLedger(context.Background(), owner, accountID, dto.ListLedgerParams{})
	require.NoError(t, err)
	return resp.Rows
}

func assertBalance(t *testing.T, want string, wantType domain.BalanceType, got domain.Balance) {
	t.Helper()
	assert.Truef(t, decimal.RequireFromString(want).Equal(got.Amount), "balance: want %s, got %s", want, got.Amount)
	assert.Equal(t, wantType, got.Type)
}
