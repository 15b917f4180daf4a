package handlers_test

import (
	"context"
	"io"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	portssvc "github.com/SscSPs/bookkeeping_app/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

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

// --- Mock JournalService ---
type MockJournalService struct {
	mock.Mock
}

var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)

func (m *MockJournalService) PostJournal(ctx context.Context, session domain.Session, journal domain.Journal) (int64, error) {
	args := m.Called(ctx, session, journal)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockJournalService) GetJournal(ctx context.Context, session domain.Session, journalID int64) (*domain.Journal, error) {
	args := m.Called(ctx, session, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockJournalService) ListJournals(ctx context.Context, session domain.Session, params dto.ListJournalsParams) (*dto.ListJournalsResponse, error) {
	args := m.Called(ctx, session, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListJournalsResponse), args.Error(1)
}

func (m *MockJournalService) GetNextJournalID(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

func (m *MockLedgerService) GetCurrentBalance(ctx context.Context, session domain.Session, accountID int64) (domain.Balance, bool, error) {
	args := m.Called(ctx, session, accountID)
	return args.Get(0).(domain.Balance), args.Bool(1), args.Error(2)
}

func (m *MockLedgerService) GetLedger(ctx context.Context, session domain.Session, accountID int64, params dto.ListLedgerParams) (*dto.ListLedgerResponse, error) {
	args := m.Called(ctx, session, accountID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListLedgerResponse), args.Error(1)
}

func (m *MockLedgerService) SeedOpeningBalance(ctx context.Context, session domain.Session, req portssvc.SeedRequest) (*domain.LedgerRow, error) {
	args := m.Called(ctx, session, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerRow), args.Error(1)
}

// --- Mock InvoiceService ---
type MockInvoiceService struct {
	mock.Mock
}

var _ portssvc.InvoiceSvc = (*MockInvoiceService)(nil)

func (m *MockInvoiceService) PostInvoice(ctx context.Context, session domain.Session, req dto.PostInvoiceRequest) (int64, error) {
	args := m.Called(ctx, session, req)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock StatementImportService ---
type MockStatementImportService struct {
	mock.Mock
}

var _ portssvc.StatementImportSvc = (*MockStatementImportService)(nil)

func (m *MockStatementImportService) ImportBalanceSheet(ctx context.Context, session domain.Session, r io.Reader) (*dto.ImportBalanceSheetResponse, error) {
	body, _ := io.ReadAll(r)
	args := m.Called(ctx, session, string(body))
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ImportBalanceSheetResponse), args.Error(1)
}

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

var _ portssvc.AuthSvc = (*MockAuthService)(nil)

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}
