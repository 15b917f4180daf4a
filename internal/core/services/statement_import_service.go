package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/SscSPs/bookkeeping_app/internal/apperrors"
	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	portssvc "github.com/SscSPs/bookkeeping_app/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_app/internal/dto"
	"github.com/SscSPs/bookkeeping_app/internal/importer"
)

type statementImportService struct {
	BaseService
	accountSvc portssvc.AccountSvcFacade
	ledgerSvc  portssvc.LedgerSeederSvc
}

// NewStatementImportService creates the balance-sheet importer.
func NewStatementImportService(accountSvc portssvc.AccountSvcFacade, ledgerSvc portssvc.LedgerSeederSvc) portssvc.StatementImportSvc {
	return &statementImportService{accountSvc: accountSvc, ledgerSvc: ledgerSvc}
}

var _ portssvc.StatementImportSvc = (*statementImportService)(nil)

// ImportBalanceSheet creates any missing chart heads and accounts and seeds each non-zero
// opening balance. Accounts that already have ledger history are reported as skipped.
func (s *statementImportService) ImportBalanceSheet(ctx context.Context, session domain.Session, r io.Reader) (*dto.ImportBalanceSheetResponse, error) {
	if err := s.RequireSession(session); err != nil {
		return nil, err
	}

	sheet, err := importer.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}

	resp := &dto.ImportBalanceSheetResponse{}
	for _, head := range sheet.Heads {
		chart, created, err := s.ensureChart(ctx, session, head, sheet)
		if err != nil {
			return resp, err
		}
		if created {
			resp.ChartsCreated++
		}

		for _, line := range head.Accounts {
			account, created, err := s.ensureAccount(ctx, session, chart, line)
			if err != nil {
				return resp, err
			}
			if created {
				resp.AccountsCreated++
			}

			if line.Balance.Amount.IsZero() {
				continue
			}
			_, err = s.ledgerSvc.SeedOpeningBalance(ctx, session, portssvc.SeedRequest{
				AccountID: account.AccountID,
				Date:      sheet.Date,
				Debit:     line.Debit(),
				Credit:    line.Credit(),
			})
			if err != nil {
				if errors.Is(err, apperrors.ErrAlreadySeeded) {
					resp.Skipped = append(resp.Skipped, account.Name)
					continue
				}
				return resp, err
			}
			resp.BalancesSeeded++
		}
	}

	s.LogInfo(ctx, "Balance sheet imported",
		slog.Int("charts_created", resp.ChartsCreated),
		slog.Int("accounts_created", resp.AccountsCreated),
		slog.Int("balances_seeded", resp.BalancesSeeded),
		slog.Int("skipped", len(resp.Skipped)))
	return resp, nil
}

func (s *statementImportService) ensureChart(ctx context.Context, session domain.Session, head importer.Head, sheet *importer.BalanceSheet) (*domain.Chart, bool, error) {
	chart, err := s.accountSvc.FindChartByName(ctx, session, head.Name)
	if err == nil {
		if chart.AccountType != head.AccountType {
			return nil, false, fmt.Errorf("%w: chart %q exists with type %s, not %s",
				apperrors.ErrValidation, head.Name, chart.AccountType, head.AccountType)
		}
		return chart, false, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, false, err
	}

	date := sheet.Date
	chart, err = s.accountSvc.CreateChart(ctx, session, dto.CreateChartRequest{
		Name:        head.Name,
		AccountType: head.AccountType,
		Date:        &date,
	})
	if err != nil {
		return nil, false, err
	}
	return chart, true, nil
}

func (s *statementImportService) ensureAccount(ctx context.Context, session domain.Session, chart *domain.Chart, line importer.Account) (*domain.Account, bool, error) {
	account, err := s.accountSvc.FindAccountByName(ctx, session, line.Name)
	if err == nil {
		return account, false, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, false, err
	}

	account, err = s.accountSvc.CreateAccount(ctx, session, dto.CreateAccountRequest{
		Name:    line.Name,
		ChartID: chart.ChartID,
		Code:    line.Code,
	})
	if err != nil {
		return nil, false, err
	}
	return account, true, nil
}
