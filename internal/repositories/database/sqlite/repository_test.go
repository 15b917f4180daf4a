package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/SscSPs/bookkeeping_app/internal/apperrors"
	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_app/internal/core/ports/repositories"
	"github.com/SscSPs/bookkeeping_app/internal/platform/database"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUser = "owner"

var testDate = time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

func setupDB(t *testing.T) (*sql.DB, portsrepo.RepositoryProvider) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "books.db")
	require.NoError(t, database.RunMigrations(slog.New(slog.NewTextHandler(io.Discard, nil)), "sqlite3", dbPath, database.Up))

	db, err := database.OpenSQLite(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db, NewRepositoryProvider(db)
}

func seedAccounts(t *testing.T, repos portsrepo.RepositoryProvider, names ...string) []int64 {
	t.Helper()
	ctx := context.Background()
	audit := domain.NewAuditFields(testUser, testDate)

	chartID, err := repos.ChartRepo.SaveChart(ctx, domain.Chart{
		UserID: testUser, Name: "Current Asset", AccountType: domain.Asset, Date: testDate, AuditFields: audit,
	})
	require.NoError(t, err)

	ids := make([]int64, 0, len(names))
	for _, name := range names {
		id, err := repos.AccountRepo.SaveAccount(ctx, domain.Account{
			UserID: testUser, Name: name, ChartID: chartID, HeadName: "Current Asset", AccountType: domain.Asset, AuditFields: audit,
		})
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return ids
}

func TestChartRepository(t *testing.T) {
	_, repos := setupDB(t)
	ctx := context.Background()
	audit := domain.NewAuditFields(testUser, testDate)

	id, err := repos.ChartRepo.SaveChart(ctx, domain.Chart{UserID: testUser, Name: "Revenue", AccountType: domain.Revenue, Date: testDate, AuditFields: audit})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	_, err = repos.ChartRepo.SaveChart(ctx, domain.Chart{UserID: testUser, Name: "Revenue", AccountType: domain.Revenue, Date: testDate, AuditFields: audit})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	chart, err := repos.ChartRepo.FindChartByName(ctx, testUser, "Revenue")
	require.NoError(t, err)
	assert.Equal(t, id, chart.ChartID)
	assert.Equal(t, domain.Revenue, chart.AccountType)
	assert.True(t, testDate.Equal(chart.Date))

	_, err = repos.ChartRepo.FindChartByID(ctx, "someone-else", id)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	charts, err := repos.ChartRepo.ListCharts(ctx, testUser)
	require.NoError(t, err)
	assert.Len(t, charts, 1)
}

func TestAccountRepository(t *testing.T) {
	_, repos := setupDB(t)
	ctx := context.Background()
	ids := seedAccounts(t, repos, "Cash", "Bank")

	acc, err := repos.AccountRepo.FindAccountByID(ctx, testUser, ids[0])
	require.NoError(t, err)
	assert.Equal(t, "Cash", acc.Name)
	assert.Equal(t, "Current Asset", acc.HeadName)

	byName, err := repos.AccountRepo.FindAccountByName(ctx, testUser, "Bank")
	require.NoError(t, err)
	assert.Equal(t, ids[1], byName.AccountID)

	_, err = repos.AccountRepo.FindAccountByID(ctx, testUser, 999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	found, err := repos.AccountRepo.FindAccountsByIDs(ctx, testUser, []int64{ids[0], 999, ids[1]})
	require.NoError(t, err)
	assert.Len(t, found, 2)
	assert.Contains(t, found, ids[0])
	assert.NotContains(t, found, int64(999))

	empty, err := repos.AccountRepo.FindAccountsByIDs(ctx, testUser, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	list, err := repos.AccountRepo.ListAccounts(ctx, testUser)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Bank", list[0].Name)

	_, err = repos.AccountRepo.SaveAccount(ctx, domain.Account{UserID: testUser, Name: "Cash", ChartID: 1, HeadName: "x", AccountType: domain.Asset})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestJournalRepository_InsertAndFind(t *testing.T) {
	_, repos := setupDB(t)
	ctx := context.Background()
	ids := seedAccounts(t, repos, "Cash", "Bank")

	maxID, err := repos.JournalRepo.MaxJournalID(ctx)
	require.NoError(t, err)
	assert.Zero(t, maxID)

	var journalID int64
	err = repos.TxManager.WithinTransaction(ctx, func(ctx context.Context, tx portsrepo.TxRepositories) error {
		var err error
		journalID, err = tx.InsertJournal(ctx, domain.Journal{
			UserID: testUser, Date: testDate, Narration: "deposit", IsPosted: true,
			AuditFields: domain.NewAuditFields(testUser, testDate),
		})
		if err != nil {
			return err
		}
		if _, err := tx.InsertJournalEntry(ctx, domain.JournalEntry{JournalID: journalID, AccountID: ids[1], DebitAmount: decimal.NewFromInt(100)}); err != nil {
			return err
		}
		_, err = tx.InsertJournalEntry(ctx, domain.JournalEntry{JournalID: journalID, AccountID: ids[0], CreditAmount: decimal.NewFromInt(100)})
		return err
	})
	require.NoError(t, err)

	journal, err := repos.JournalRepo.FindJournalByID(ctx, testUser, journalID)
	require.NoError(t, err)
	assert.Equal(t, "deposit", journal.Narration)
	assert.True(t, journal.IsPosted)
	require.Len(t, journal.Entries, 2)
	assert.Equal(t, "Bank", journal.Entries[0].AccountName)
	assert.True(t, journal.Entries[0].DebitAmount.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, "Cash", journal.Entries[1].AccountName)
	assert.True(t, journal.Entries[1].CreditAmount.Equal(decimal.NewFromInt(100)))

	maxID, err = repos.JournalRepo.MaxJournalID(ctx)
	require.NoError(t, err)
	assert.Equal(t, journalID, maxID)

	_, err = repos.JournalRepo.FindJournalByID(ctx, testUser, journalID+1)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestJournalRepository_EntryCheckConstraint(t *testing.T) {
	_, repos := setupDB(t)
	ctx := context.Background()
	ids := seedAccounts(t, repos, "Cash")

	err := repos.TxManager.WithinTransaction(ctx, func(ctx context.Context, tx portsrepo.TxRepositories) error {
		journalID, err := tx.InsertJournal(ctx, domain.Journal{UserID: testUser, Date: testDate, IsPosted: true, AuditFields: domain.NewAuditFields(testUser, testDate)})
		if err != nil {
			return err
		}
		_, err = tx.InsertJournalEntry(ctx, domain.JournalEntry{
			JournalID: journalID, AccountID: ids[0], DebitAmount: decimal.NewFromInt(5), CreditAmount: decimal.NewFromInt(5),
		})
		return err
	})
	require.Error(t, err)

	maxID, err := repos.JournalRepo.MaxJournalID(ctx)
	require.NoError(t, err)
	assert.Zero(t, maxID, "the header insert must have been rolled back")
}

func TestJournalRepository_ListPagination(t *testing.T) {
	_, repos := setupDB(t)
	ctx := context.Background()

	err := repos.TxManager.WithinTransaction(ctx, func(ctx context.Context, tx portsrepo.TxRepositories) error {
		for i := 0; i < 5; i++ {
			date := testDate.AddDate(0, 0, i/2) // two journals share most dates
			if _, err := tx.InsertJournal(ctx, domain.Journal{UserID: testUser, Date: date, IsPosted: true, AuditFields: domain.NewAuditFields(testUser, date)}); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)

	var seen []int64
	var token *string
	for page := 0; page < 5; page++ {
		journals, next, err := repos.JournalRepo.ListJournals(ctx, testUser, 2, token)
		require.NoError(t, err)
		for _, j := range journals {
			seen = append(seen, j.JournalID)
		}
		if next == nil {
			break
		}
		token = next
	}
	assert.Equal(t, []int64{5, 4, 3, 2, 1}, seen)

	bad := "%%%"
	_, _, err = repos.JournalRepo.ListJournals(ctx, testUser, 2, &bad)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestLedgerRepository(t *testing.T) {
	_, repos := setupDB(t)
	ctx := context.Background()
	ids := seedAccounts(t, repos, "Cash", "Bank")
	cash, bank := ids[0], ids[1]

	_, err := repos.LedgerRepo.FindLatestLedgerRow(ctx, cash)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	err = repos.TxManager.WithinTransaction(ctx, func(ctx context.Context, tx portsrepo.TxRepositories) error {
		balance := domain.OpeningBalance()
		for i := 1; i <= 3; i++ {
			balance = balance.Apply(decimal.NewFromInt(int64(i*10)), decimal.Zero)
			row := domain.LedgerRow{
				AccountID: cash, Date: testDate, Particulars: domain.JournalParticulars(int64(i)),
				Debit: decimal.NewFromInt(int64(i * 10)), Credit: decimal.Zero,
				Balance: balance.Amount, BalanceType: balance.Type,
				AuditFields: domain.NewAuditFields(testUser, testDate),
			}
			if i != 2 {
				row.LinkedAccountID = &bank
			}
			if _, err := tx.AppendLedgerRow(ctx, row); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)

	latest, err := repos.LedgerRepo.FindLatestLedgerRow(ctx, cash)
	require.NoError(t, err)
	assert.True(t, latest.Balance.Equal(decimal.NewFromInt(60)))
	assert.Equal(t, domain.BalanceDebit, latest.BalanceType)
	assert.Equal(t, "Journal #3", latest.Particulars)

	all, next, err := repos.LedgerRepo.ListLedgerByAccount(ctx, cash, 0, nil)
	require.NoError(t, err)
	assert.Nil(t, next)
	require.Len(t, all, 3)
	assert.Equal(t, "Journal #3", all[0].Particulars)
	assert.Equal(t, "Bank", all[0].LinkedAccountName)
	require.NotNil(t, all[0].LinkedAccountID)
	assert.Equal(t, bank, *all[0].LinkedAccountID)
	assert.Nil(t, all[1].LinkedAccountID)
	assert.Empty(t, all[1].LinkedAccountName)

	firstPage, next, err := repos.LedgerRepo.ListLedgerByAccount(ctx, cash, 2, nil)
	require.NoError(t, err)
	require.Len(t, firstPage, 2)
	require.NotNil(t, next)
	secondPage, next, err := repos.LedgerRepo.ListLedgerByAccount(ctx, cash, 2, next)
	require.NoError(t, err)
	assert.Nil(t, next)
	require.Len(t, secondPage, 1)
	assert.Equal(t, "Journal #1", secondPage[0].Particulars)

	other, _, err := repos.LedgerRepo.ListLedgerByAccount(ctx, bank, 0, nil)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestTxManager_RollbackOnError(t *testing.T) {
	_, repos := setupDB(t)
	ctx := context.Background()
	ids := seedAccounts(t, repos, "Cash")
	boom := errors.New("boom")

	err := repos.TxManager.WithinTransaction(ctx, func(ctx context.Context, tx portsrepo.TxRepositories) error {
		_, err := tx.AppendLedgerRow(ctx, domain.LedgerRow{
			AccountID: ids[0], Date: testDate, Particulars: "Opening Balance",
			Debit: decimal.NewFromInt(1), Credit: decimal.Zero, Balance: decimal.NewFromInt(1), BalanceType: domain.BalanceDebit,
			AuditFields: domain.NewAuditFields(testUser, testDate),
		})
		require.NoError(t, err)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = repos.LedgerRepo.FindLatestLedgerRow(ctx, ids[0])
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
