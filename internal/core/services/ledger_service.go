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

// OpeningBalanceParticulars is written on seeded rows when the caller gives none.
const OpeningBalanceParticulars = "Opening Balance"

type ledgerService struct {
	BaseService
	ledgerRepo portsrepo.LedgerRepositoryFacade
	accountSvc portssvc.AccountReaderSvc
	txManager  portsrepo.TransactionManager
}

// NewLedgerService creates the ledger balance store service.
func NewLedgerService(
	ledgerRepo portsrepo.LedgerRepositoryFacade,
	accountSvc portssvc.AccountReaderSvc,
	txManager portsrepo.TransactionManager,
) portssvc.LedgerSvcFacade {
	return &ledgerService{
		ledgerRepo: ledgerRepo,
		accountSvc: accountSvc,
		txManager:  txManager,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// GetCurrentBalance returns the balance on the account's latest row, or (0, Dr) and false
// when the account has never been posted to.
func (s *ledgerService) GetCurrentBalance(ctx context.Context, session domain.Session, accountID int64) (domain.Balance, bool, error) {
	if _, err := s.accountSvc.GetAccountByID(ctx, session, accountID); err != nil {
		return domain.Balance{}, false, err
	}

	latest, err := s.ledgerRepo.FindLatestLedgerRow(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.OpeningBalance(), false, nil
		}
		s.LogError(ctx, err, "Failed to read current balance", slog.Int64("account_id", accountID))
		return domain.Balance{}, false, err
	}
	return latest.CurrentBalance(), true, nil
}

func (s *ledgerService) GetLedger(ctx context.Context, session domain.Session, accountID int64, params dto.ListLedgerParams) (*dto.ListLedgerResponse, error) {
	if _, err := s.accountSvc.GetAccountByID(ctx, session, accountID); err != nil {
		return nil, err
	}

	rows, nextToken, err := s.ledgerRepo.ListLedgerByAccount(ctx, accountID, params.Limit, params.NextToken)
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to list ledger", slog.Int64("account_id", accountID))
		}
		return nil, err
	}

	return &dto.ListLedgerResponse{
		AccountID: accountID,
		Rows:      dto.ToLedgerRowResponses(rows),
		NextToken: nextToken,
	}, nil
}

// SeedOpeningBalance appends the first row of an account. The "no prior rows" check and the
// append share one unit of work.
func (s *ledgerService) SeedOpeningBalance(ctx context.Context, session domain.Session, req portssvc.SeedRequest) (*domain.LedgerRow, error) {
	if _, err := s.accountSvc.GetAccountByID(ctx, session, req.AccountID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: account %d", apperrors.ErrUnknownAccount, req.AccountID)
		}
		return nil, err
	}

	line := domain.JournalEntry{AccountID: req.AccountID, DebitAmount: req.Debit, CreditAmount: req.Credit}
	if err := line.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}

	particulars := strings.TrimSpace(req.Particulars)
	if particulars == "" {
		particulars = OpeningBalanceParticulars
	}

	now := s.CurrentTime()
	date := req.Date.UTC()
	if req.Date.IsZero() {
		date = now
	}
	opening := domain.OpeningBalance().Apply(req.Debit, req.Credit)
	row := domain.LedgerRow{
		AccountID:   req.AccountID,
		Date:        date,
		Particulars: particulars,
		Debit:       req.Debit,
		Credit:      req.Credit,
		Balance:     opening.Amount,
		BalanceType: opening.Type,
		AuditFields: domain.NewAuditFields(session.UserID, now),
	}

	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context, tx portsrepo.TxRepositories) error {
		_, err := tx.FindLatestLedgerRow(ctx, req.AccountID)
		switch {
		case err == nil:
			return apperrors.ErrAlreadySeeded
		case !errors.Is(err, apperrors.ErrNotFound):
			return err
		}

		id, err := tx.AppendLedgerRow(ctx, row)
		if err != nil {
			return err
		}
		row.LedgerID = id
		return nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrAlreadySeeded) {
			return nil, fmt.Errorf("%w: account %d", apperrors.ErrAlreadySeeded, req.AccountID)
		}
		s.LogError(ctx, err, "Failed to seed opening balance", slog.Int64("account_id", req.AccountID))
		return nil, fmt.Errorf("%w: %w", apperrors.ErrPersistence, err)
	}

	s.LogInfo(ctx, "Opening balance seeded",
		slog.Int64("account_id", req.AccountID),
		slog.String("balance", opening.Amount.String()),
		slog.String("balance_type", string(opening.Type)))
	return &row, nil
}
