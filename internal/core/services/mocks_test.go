package services_test

import (
	"context"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookkeeping_app/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock JournalRepository ---
type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepositoryFacade = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) FindJournalByID(ctx context.Context, userID string, journalID int64) (*domain.Journal, error) {
	args := m.Called(ctx, userID, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockJournalRepository) ListJournals(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Journal, *string, error) {
	args := m.Called(ctx, userID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Journal), returnedNextToken, args.Error(2)
}

func (m *MockJournalRepository) MaxJournalID(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock unit of work ---
type MockTxRepositories struct {
	mock.Mock
}

var _ portsrepo.TxRepositories = (*MockTxRepositories)(nil)

func (m *MockTxRepositories) InsertJournal(ctx context.Context, journal domain.Journal) (int64, error) {
	args := m.Called(ctx, journal)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTxRepositories) InsertJournalEntry(ctx context.Context, entry domain.JournalEntry) (int64, error) {
	args := m.Called(ctx, entry)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTxRepositories) FindLatestLedgerRow(ctx context.Context, accountID int64) (*domain.LedgerRow, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerRow), args.Error(1)
}

func (m *MockTxRepositories) ListLedgerByAccount(ctx context.Context, accountID int64, limit int, nextToken *string) ([]domain.LedgerRow, *string, error) {
	args := m.Called(ctx, accountID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.LedgerRow), nil, args.Error(2)
}

func (m *MockTxRepositories) AppendLedgerRow(ctx context.Context, row domain.LedgerRow) (int64, error) {
	args := m.Called(ctx, row)
	return args.Get(0).(int64), args.Error(1)
}

// MockTxManager runs fn against Tx unless WithinTransaction is stubbed to fail before starting.
type MockTxManager struct {
	mock.Mock
	Tx portsrepo.TxRepositories
}

var _ portsrepo.TransactionManager = (*MockTxManager)(nil)

func (m *MockTxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context, tx portsrepo.TxRepositories) error) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx, m.Tx)
}

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

func (m *MockAccountService) CreateChart(ctx context.Context, session domain.Session, req dto.CreateChartRequest) (*domain.Chart, error) {
	args := m.Called(ctx, session, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Chart), args.Error(1)
}

func (m *MockAccountService) ListCharts(ctx context.Context, session domain.Session) ([]domain.Chart, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Chart), args.Error(1)
}

func (m *MockAccountService) FindChartByName(ctx context.Context, session domain.Session, name string) (*domain.Chart, error) {
	args := m.Called(ctx, session, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Chart), args.Error(1)
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, session domain.Session, accountID int64) (*domain.Account, error) {
	args := m.Called(ctx, session, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountsByIDs(ctx context.Context, session domain.Session, accountIDs []int64) (map[int64]domain.Account, error) {
	args := m.Called(ctx, session, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]domain.Account), args.Error(1)
}

func (m *MockAccountService) FindAccountByName(ctx context.Context, session domain.Session, name string) (*domain.Account, error) {
	args := m.Called(ctx, session, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, session domain.Session) ([]domain.Account, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) AccountExists(ctx context.Context, session domain.Session, accountID int64) (bool, error) {
	args := m.Called(ctx, session, accountID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountService) CreateAccount(ctx context.Context, session domain.Session, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, session, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

// --- Mock JournalPoster ---
type MockJournalPoster struct {
	mock.Mock
}

var _ portssvc.JournalPosterSvc = (*MockJournalPoster)(nil)

func (m *MockJournalPoster) PostJournal(ctx context.Context, session domain.Session, journal domain.Journal) (int64, error) {
	args := m.Called(ctx, session, journal)
	return args.Get(0).(int64), args.Error(1)
}
