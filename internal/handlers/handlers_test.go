package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/bookkeeping_app/internal/apperrors"
	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	portssvc "github.com/SscSPs/bookkeeping_app/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_app/internal/dto"
	"github.com/SscSPs/bookkeeping_app/internal/handlers"
	"github.com/SscSPs/bookkeeping_app/internal/platform/config"
	"github.com/SscSPs/bookkeeping_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testUser = "owner"

type HandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	cfg         *config.Config
	accountSvc  *MockAccountService
	journalSvc  *MockJournalService
	ledgerSvc   *MockLedgerService
	invoiceSvc  *MockInvoiceService
	importSvc   *MockStatementImportService
	authSvc     *MockAuthService
	session     domain.Session
	bearerToken string
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.cfg = &config.Config{
		JWTSecret:         "test-secret-key-that-is-long-enough",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "bookkeeping-test",
		IsProduction:      true,
	}

	suite.accountSvc = new(MockAccountService)
	suite.journalSvc = new(MockJournalService)
	suite.ledgerSvc = new(MockLedgerService)
	suite.invoiceSvc = new(MockInvoiceService)
	suite.importSvc = new(MockStatementImportService)
	suite.authSvc = new(MockAuthService)

	handlers.RegisterRoutes(suite.router, suite.cfg, &portssvc.ServiceContainer{
		Account:         suite.accountSvc,
		Journal:         suite.journalSvc,
		Ledger:          suite.ledgerSvc,
		Invoice:         suite.invoiceSvc,
		StatementImport: suite.importSvc,
		Auth:            suite.authSvc,
	})

	suite.session = domain.NewSession(testUser)
	token, err := utils.GenerateJWT(testUser, suite.cfg.JWTSecret, time.Hour, suite.cfg.JWTIssuer)
	suite.Require().NoError(err)
	suite.bearerToken = "Bearer " + token
}

func (suite *HandlerTestSuite) do(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}

	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Authorization", suite.bearerToken)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) errorBody(w *httptest.ResponseRecorder) string {
	var resp handlers.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error
}

func journalBody(debit, credit string) map[string]any {
	return map[string]any{
		"date":      "2024-04-01T00:00:00Z",
		"narration": "Capital introduced",
		"journalEntries": []map[string]any{
			{"accountID": 1, "debitAmount": debit, "creditAmount": "0"},
			{"accountID": 2, "debitAmount": "0", "creditAmount": credit},
		},
	}
}

// --- Public routes ---

func (suite *HandlerTestSuite) TestHealth() {
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlerTestSuite) TestLogin() {
	suite.authSvc.On("Login", mock.Anything, "owner", "s3cret").Return("signed-token", nil).Once()
	suite.authSvc.On("Login", mock.Anything, "owner", "wrong").
		Return("", fmt.Errorf("%w: invalid username or password", apperrors.ErrUnauthorized)).Once()

	w := suite.do(http.MethodPost, "/auth/login", dto.LoginRequest{Username: "owner", Password: "s3cret"})
	suite.Equal(http.StatusOK, w.Code)
	var resp dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("signed-token", resp.Token)

	w = suite.do(http.MethodPost, "/auth/login", dto.LoginRequest{Username: "owner", Password: "wrong"})
	suite.Equal(http.StatusUnauthorized, w.Code)

	w = suite.do(http.MethodPost, "/auth/login", map[string]string{"username": "owner"})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.authSvc.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestProtectedRoutesRequireToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/accounts", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusUnauthorized, w.Code)

	other, err := utils.GenerateJWT(testUser, "another-secret", time.Hour, suite.cfg.JWTIssuer)
	suite.Require().NoError(err)
	suite.bearerToken = "Bearer " + other
	w = suite.do(http.MethodGet, "/api/v1/accounts", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)

	suite.accountSvc.AssertNotCalled(suite.T(), "ListAccounts", mock.Anything, mock.Anything)
}

// --- Journals ---

func (suite *HandlerTestSuite) TestPostJournal_Success() {
	suite.journalSvc.On("PostJournal", mock.Anything, suite.session, mock.MatchedBy(func(j domain.Journal) bool {
		return len(j.Entries) == 2 &&
			j.Entries[0].AccountID == 1 && j.Entries[0].DebitAmount.Equal(decimal.NewFromInt(100)) &&
			j.Entries[1].AccountID == 2 && j.Entries[1].CreditAmount.Equal(decimal.NewFromInt(100)) &&
			j.Narration == "Capital introduced"
	})).Return(int64(7), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/journals", journalBody("100", "100"))

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.CreateJournalResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(7), resp.JournalID)
	suite.journalSvc.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestPostJournal_ErrorMapping() {
	testCases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{
			name:    "imbalanced",
			err:     fmt.Errorf("%w: debits 100, credits 90", apperrors.ErrImbalancedJournal),
			status:  http.StatusBadRequest,
			message: "do not balance",
		},
		{
			name:    "unknown account",
			err:     fmt.Errorf("%w: account 2", apperrors.ErrUnknownAccount),
			status:  http.StatusBadRequest,
			message: "unknown account",
		},
		{
			name:    "persistence",
			err:     fmt.Errorf("%w: disk full", apperrors.ErrPersistence),
			status:  http.StatusInternalServerError,
			message: "Failed to post journal",
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.journalSvc.On("PostJournal", mock.Anything, suite.session, mock.Anything).Return(int64(0), tc.err).Once()

			w := suite.do(http.MethodPost, "/api/v1/journals", journalBody("100", "90"))

			suite.Equal(tc.status, w.Code)
			suite.Contains(suite.errorBody(w), tc.message)
		})
	}
}

func (suite *HandlerTestSuite) TestPostJournal_BindingRejectsNegativeAmounts() {
	w := suite.do(http.MethodPost, "/api/v1/journals", journalBody("-5", "100"))
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/journals", map[string]any{"date": "2024-04-01T00:00:00Z"})
	suite.Equal(http.StatusBadRequest, w.Code)

	suite.journalSvc.AssertNotCalled(suite.T(), "PostJournal", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestGetJournal() {
	journal := &domain.Journal{
		JournalID: 3,
		IsPosted:  true,
		Entries: []domain.JournalEntry{
			{EntryID: 5, AccountID: 1, AccountName: "Cash", DebitAmount: decimal.NewFromInt(10), CreditAmount: decimal.Zero},
			{EntryID: 6, AccountID: 2, AccountName: "Capital", DebitAmount: decimal.Zero, CreditAmount: decimal.NewFromInt(10)},
		},
	}
	suite.journalSvc.On("GetJournal", mock.Anything, suite.session, int64(3)).Return(journal, nil).Once()
	suite.journalSvc.On("GetJournal", mock.Anything, suite.session, int64(4)).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodGet, "/api/v1/journals/3", nil)
	suite.Equal(http.StatusOK, w.Code)
	var resp dto.JournalResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Entries, 2)
	suite.Equal("Cash", resp.Entries[0].AccountName)
	suite.Contains(w.Body.String(), `"journalEntries"`)

	w = suite.do(http.MethodGet, "/api/v1/journals/4", nil)
	suite.Equal(http.StatusNotFound, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/journals/abc", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestListJournalsAndNextID() {
	suite.journalSvc.On("ListJournals", mock.Anything, suite.session, mock.MatchedBy(func(p dto.ListJournalsParams) bool {
		return p.Limit == 5 && p.NextToken != nil && *p.NextToken == "abc"
	})).Return(&dto.ListJournalsResponse{Journals: []dto.JournalResponse{{JournalID: 9}}}, nil).Once()
	suite.journalSvc.On("GetNextJournalID", mock.Anything).Return(int64(10), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/journals?limit=5&nextToken=abc", nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/journals/next-id", nil)
	suite.Equal(http.StatusOK, w.Code)
	var resp dto.NextJournalIDResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(10), resp.NextJournalID)

	w = suite.do(http.MethodGet, "/api/v1/journals?limit=1000", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.journalSvc.AssertExpectations(suite.T())
}

// --- Ledger ---

func (suite *HandlerTestSuite) TestGetBalance() {
	suite.ledgerSvc.On("GetCurrentBalance", mock.Anything, suite.session, int64(1)).
		Return(domain.Balance{Amount: decimal.NewFromInt(20), Type: domain.BalanceCredit}, true, nil).Once()
	suite.ledgerSvc.On("GetCurrentBalance", mock.Anything, suite.session, int64(2)).
		Return(domain.Balance{}, false, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts/1/balance", nil)
	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AccountBalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Balance.Equal(decimal.NewFromInt(20)))
	suite.Equal(domain.BalanceCredit, resp.BalanceType)
	suite.True(resp.HasHistory)

	w = suite.do(http.MethodGet, "/api/v1/accounts/2/balance", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestGetLedger() {
	linked := int64(2)
	suite.ledgerSvc.On("GetLedger", mock.Anything, suite.session, int64(1), dto.ListLedgerParams{}).
		Return(&dto.ListLedgerResponse{
			AccountID: 1,
			Rows: []dto.LedgerRowResponse{
				{LedgerID: 4, Particulars: "Journal #2", LinkedAccountID: &linked, LinkedAccountName: "Capital"},
			},
		}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts/1/ledger", nil)
	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListLedgerResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Rows, 1)
	suite.Equal("Capital", resp.Rows[0].LinkedAccountName)
	suite.ledgerSvc.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestSeedOpeningBalance() {
	suite.ledgerSvc.On("SeedOpeningBalance", mock.Anything, suite.session, mock.MatchedBy(func(r portssvc.SeedRequest) bool {
		return r.AccountID == 3 && r.Debit.Equal(decimal.NewFromInt(500)) && r.Credit.IsZero()
	})).Return(&domain.LedgerRow{LedgerID: 1, AccountID: 3, Particulars: "Opening Balance", Balance: decimal.NewFromInt(500), BalanceType: domain.BalanceDebit}, nil).Once()
	suite.ledgerSvc.On("SeedOpeningBalance", mock.Anything, suite.session, mock.MatchedBy(func(r portssvc.SeedRequest) bool {
		return r.AccountID == 4
	})).Return(nil, fmt.Errorf("%w: account 4", apperrors.ErrAlreadySeeded)).Once()

	body := map[string]any{"date": "2024-04-01T00:00:00Z", "debitAmount": "500", "creditAmount": "0"}

	w := suite.do(http.MethodPost, "/api/v1/accounts/3/opening-balance", body)
	suite.Equal(http.StatusCreated, w.Code)
	var row dto.LedgerRowResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &row))
	suite.Equal("Opening Balance", row.Particulars)

	w = suite.do(http.MethodPost, "/api/v1/accounts/4/opening-balance", body)
	suite.Equal(http.StatusConflict, w.Code)
}

// --- Accounts ---

func (suite *HandlerTestSuite) TestCreateChartAndAccount() {
	suite.accountSvc.On("CreateChart", mock.Anything, suite.session, mock.MatchedBy(func(r dto.CreateChartRequest) bool {
		return r.Name == "Current Asset" && r.AccountType == domain.Asset
	})).Return(&domain.Chart{ChartID: 1, Name: "Current Asset", AccountType: domain.Asset}, nil).Once()
	suite.accountSvc.On("CreateAccount", mock.Anything, suite.session, dto.CreateAccountRequest{Name: "Cash", ChartID: 1}).
		Return(nil, fmt.Errorf("%w: account \"Cash\" already exists", apperrors.ErrDuplicate)).Once()

	w := suite.do(http.MethodPost, "/api/v1/charts", map[string]any{"name": "Current Asset", "accountType": "ASSET"})
	suite.Equal(http.StatusCreated, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/charts", map[string]any{"name": "Odd", "accountType": "OTHER"})
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/accounts", map[string]any{"name": "Cash", "chartID": 1})
	suite.Equal(http.StatusConflict, w.Code)
	suite.accountSvc.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestListAndGetAccounts() {
	suite.accountSvc.On("ListAccounts", mock.Anything, suite.session).
		Return([]domain.Account{{AccountID: 1, Name: "Cash"}, {AccountID: 2, Name: "Bank"}}, nil).Once()
	suite.accountSvc.On("GetAccountByID", mock.Anything, suite.session, int64(2)).
		Return(&domain.Account{AccountID: 2, Name: "Bank", HeadName: "Current Asset"}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts", nil)
	suite.Equal(http.StatusOK, w.Code)
	var list dto.ListAccountsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &list))
	suite.Len(list.Accounts, 2)

	w = suite.do(http.MethodGet, "/api/v1/accounts/2", nil)
	suite.Equal(http.StatusOK, w.Code)
	var acc dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &acc))
	suite.Equal("Current Asset", acc.HeadName)
}

// --- Invoices and imports ---

func (suite *HandlerTestSuite) TestPostInvoice() {
	suite.invoiceSvc.On("PostInvoice", mock.Anything, suite.session, mock.MatchedBy(func(r dto.PostInvoiceRequest) bool {
		return r.Kind == dto.InvoiceSale && r.PartyAccountID == 5 && r.Amount.Equal(decimal.NewFromInt(250))
	})).Return(int64(11), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/invoices", map[string]any{
		"kind": "SALE", "partyAccountID": 5, "amount": "250", "date": "2024-04-02T00:00:00Z",
	})
	suite.Equal(http.StatusCreated, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/invoices", map[string]any{
		"kind": "SALE", "partyAccountID": 5, "amount": "0", "date": "2024-04-02T00:00:00Z",
	})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.invoiceSvc.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestImportBalanceSheet() {
	sheet := "date: 2024-04-01\nheads: []\n"
	suite.importSvc.On("ImportBalanceSheet", mock.Anything, suite.session, sheet).
		Return(&dto.ImportBalanceSheetResponse{ChartsCreated: 1}, nil).Twice()

	w := suite.do(http.MethodPost, "/api/v1/imports/balance-sheet", sheet)
	suite.Equal(http.StatusOK, w.Code)

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	part, err := form.CreateFormFile("file", "opening.yaml")
	suite.Require().NoError(err)
	_, err = part.Write([]byte(sheet))
	suite.Require().NoError(err)
	suite.Require().NoError(form.Close())

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/imports/balance-sheet", &buf)
	req.Header.Set("Authorization", suite.bearerToken)
	req.Header.Set("Content-Type", form.FormDataContentType())
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)
	suite.Equal(http.StatusOK, rec.Code)
	suite.True(strings.Contains(rec.Body.String(), `"chartsCreated":1`))

	suite.importSvc.AssertExpectations(suite.T())
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
