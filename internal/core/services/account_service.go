package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/bookkeeping_app/internal/apperrors"
	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookkeeping_app/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_app/internal/dto"
)

// accountService implements the account directory: chart heads and the accounts under them.
type accountService struct {
	BaseService
	chartRepo   portsrepo.ChartRepositoryFacade
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new account directory service.
func NewAccountService(chartRepo portsrepo.ChartRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{
		chartRepo:   chartRepo,
		accountRepo: accountRepo,
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateChart(ctx context.Context, session domain.Session, req dto.CreateChartRequest) (*domain.Chart, error) {
	if err := s.RequireSession(session); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: chart name is required", apperrors.ErrValidation)
	}
	if !req.AccountType.IsValid() {
		return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, req.AccountType)
	}

	now := s.CurrentTime()
	date := now
	if req.Date != nil {
		date = req.Date.UTC()
	}

	chart := domain.Chart{
		UserID:      session.UserID,
		Name:        name,
		AccountType: req.AccountType,
		Date:        date,
		AuditFields: domain.NewAuditFields(session.UserID, now),
	}

	id, err := s.chartRepo.SaveChart(ctx, chart)
	if err != nil {
		s.LogError(ctx, err, "Failed to save chart", slog.String("name", name))
		return nil, fmt.Errorf("failed to create chart: %w", err)
	}
	chart.ChartID = id

	s.LogInfo(ctx, "Chart created", slog.Int64("chart_id", id), slog.String("name", name))
	return &chart, nil
}

func (s *accountService) ListCharts(ctx context.Context, session domain.Session) ([]domain.Chart, error) {
	if err := s.RequireSession(session); err != nil {
		return nil, err
	}
	charts, err := s.chartRepo.ListCharts(ctx, session.UserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list charts")
		return nil, fmt.Errorf("failed to list charts: %w", err)
	}
	if charts == nil {
		charts = []domain.Chart{}
	}
	return charts, nil
}

func (s *accountService) FindChartByName(ctx context.Context, session domain.Session, name string) (*domain.Chart, error) {
	if err := s.RequireSession(session); err != nil {
		return nil, err
	}
	return s.chartRepo.FindChartByName(ctx, session.UserID, name)
}

func (s *accountService) CreateAccount(ctx context.Context, session domain.Session, req dto.CreateAccountRequest) (*domain.Account, error) {
	if err := s.RequireSession(session); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: account name is required", apperrors.ErrValidation)
	}

	chart, err := s.chartRepo.FindChartByID(ctx, session.UserID, req.ChartID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: chart %d does not exist", apperrors.ErrValidation, req.ChartID)
		}
		s.LogError(ctx, err, "Failed to load chart for new account", slog.Int64("chart_id", req.ChartID))
		return nil, fmt.Errorf("failed to load chart: %w", err)
	}

	account := domain.Account{
		UserID:      session.UserID,
		Name:        name,
		ChartID:     chart.ChartID,
		HeadName:    chart.Name,
		AccountType: chart.AccountType,
		Code:        strings.TrimSpace(req.Code),
		AuditFields: domain.NewAuditFields(session.UserID, s.CurrentTime()),
	}

	id, err := s.accountRepo.SaveAccount(ctx, account)
	if err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("name", name))
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	account.AccountID = id

	s.LogInfo(ctx, "Account created", slog.Int64("account_id", id), slog.String("name", name))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, session domain.Session, accountID int64) (*domain.Account, error) {
	if err := s.RequireSession(session); err != nil {
		return nil, err
	}
	account, err := s.accountRepo.FindAccountByID(ctx, session.UserID, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get account", slog.Int64("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) GetAccountsByIDs(ctx context.Context, session domain.Session, accountIDs []int64) (map[int64]domain.Account, error) {
	if err := s.RequireSession(session); err != nil {
		return nil, err
	}
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, session.UserID, accountIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to get accounts by ids", slog.Int("count", len(accountIDs)))
		return nil, fmt.Errorf("failed to get accounts: %w", err)
	}
	return accounts, nil
}

func (s *accountService) FindAccountByName(ctx context.Context, session domain.Session, name string) (*domain.Account, error) {
	if err := s.RequireSession(session); err != nil {
		return nil, err
	}
	return s.accountRepo.FindAccountByName(ctx, session.UserID, name)
}

func (s *accountService) ListAccounts(ctx context.Context, session domain.Session) ([]domain.Account, error) {
	if err := s.RequireSession(session); err != nil {
		return nil, err
	}
	accounts, err := s.accountRepo.ListAccounts(ctx, session.UserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		accounts = []domain.Account{}
	}
	return accounts, nil
}

func (s *accountService) AccountExists(ctx context.Context, session domain.Session, accountID int64) (bool, error) {
	_, err := s.GetAccountByID(ctx, session, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
