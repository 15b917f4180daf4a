package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/bookkeeping_app/internal/apperrors"
	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookkeeping_app/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_app/internal/dto"
)

// journalService is the journal posting engine plus the journal read side.
type journalService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryFacade
	accountSvc  portssvc.AccountReaderSvc
	txManager   portsrepo.TransactionManager
}

// NewJournalService creates a new journal service.
func NewJournalService(
	journalRepo portsrepo.JournalRepositoryFacade,
	accountSvc portssvc.AccountReaderSvc,
	txManager portsrepo.TransactionManager,
) portssvc.JournalSvcFacade {
	return &journalService{
		journalRepo: journalRepo,
		accountSvc:  accountSvc,
		txManager:   txManager,
	}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// PostJournal validates the journal and, in one unit of work, writes the header, every entry
// and one ledger row per entry. Entries are applied in caller order, so two entries on the
// same account produce two rows with the second built on the first.
func (s *journalService) PostJournal(ctx context.Context, session domain.Session, journal domain.Journal) (int64, error) {
	if err := s.RequireSession(session); err != nil {
		return 0, err
	}
	logger := s.GetLogger(ctx)

	if err := journal.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}

	if !journal.IsBalanced() {
		debits, credits := journal.Totals()
		logger.Warn("Rejected imbalanced journal",
			slog.String("debits", debits.String()),
			slog.String("credits", credits.String()))
		return 0, fmt.Errorf("%w: debits %s, credits %s", apperrors.ErrImbalancedJournal, debits.String(), credits.String())
	}

	accountIDs := journal.AccountIDs()
	accounts, err := s.accountSvc.GetAccountsByIDs(ctx, session, accountIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve journal accounts", slog.Int("account_count", len(accountIDs)))
		return 0, fmt.Errorf("%w: resolving accounts: %w", apperrors.ErrPersistence, err)
	}
	for _, id := range accountIDs {
		if _, ok := accounts[id]; !ok {
			return 0, fmt.Errorf("%w: account %d", apperrors.ErrUnknownAccount, id)
		}
	}

	now := s.CurrentTime()
	journal.UserID = session.UserID
	journal.IsPosted = true
	journal.Date = journal.Date.UTC()
	journal.AuditFields = domain.NewAuditFields(session.UserID, now)

	var journalID int64
	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context, tx portsrepo.TxRepositories) error {
		id, err := tx.InsertJournal(ctx, journal)
		if err != nil {
			return err
		}
		journalID = id
		particulars := domain.JournalParticulars(id)

		for i, entry := range journal.Entries {
			entry.JournalID = id
			if _, err := tx.InsertJournalEntry(ctx, entry); err != nil {
				return err
			}

			balance, err := currentBalance(ctx, tx, entry.AccountID)
			if err != nil {
				return err
			}
			next := balance.Apply(entry.DebitAmount, entry.CreditAmount)

			row := domain.LedgerRow{
				AccountID:       entry.AccountID,
				Date:            journal.Date,
				Particulars:     particulars,
				Debit:           entry.DebitAmount,
				Credit:          entry.CreditAmount,
				Balance:         next.Amount,
				BalanceType:     next.Type,
				LinkedAccountID: journal.LinkedAccountID(i),
				AuditFields:     journal.AuditFields,
			}
			if _, err := tx.AppendLedgerRow(ctx, row); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to post journal, unit of work rolled back",
			slog.Int("entries", len(journal.Entries)))
		return 0, fmt.Errorf("%w: %w", apperrors.ErrPersistence, err)
	}

	logger.Info("Journal posted", slog.Int64("journal_id", journalID), slog.Int("entries", len(journal.Entries)))
	return journalID, nil
}

// currentBalance reads the latest ledger row of an account through the unit of work.
func currentBalance(ctx context.Context, tx portsrepo.LedgerReader, accountID int64) (domain.Balance, error) {
	latest, err := tx.FindLatestLedgerRow(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.OpeningBalance(), nil
		}
		return domain.Balance{}, err
	}
	return latest.CurrentBalance(), nil
}

func (s *journalService) GetJournal(ctx context.Context, session domain.Session, journalID int64) (*domain.Journal, error) {
	if err := s.RequireSession(session); err != nil {
		return nil, err
	}
	journal, err := s.journalRepo.FindJournalByID(ctx, session.UserID, journalID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get journal", slog.Int64("journal_id", journalID))
		}
		return nil, err
	}
	return journal, nil
}

func (s *journalService) ListJournals(ctx context.Context, session domain.Session, params dto.ListJournalsParams) (*dto.ListJournalsResponse, error) {
	if err := s.RequireSession(session); err != nil {
		return nil, err
	}
	journals, nextToken, err := s.journalRepo.ListJournals(ctx, session.UserID, params.Limit, params.NextToken)
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to list journals")
		}
		return nil, err
	}

	resp := &dto.ListJournalsResponse{
		Journals:  make([]dto.JournalResponse, 0, len(journals)),
		NextToken: nextToken,
	}
	for i := range journals {
		resp.Journals = append(resp.Journals, dto.ToJournalResponse(&journals[i]))
	}
	return resp, nil
}

// GetNextJournalID returns max(journal id)+1, or 1 for an empty book. Ids are assigned by the
// store at insert time, so a concurrent post may take this id first.
func (s *journalService) GetNextJournalID(ctx context.Context) (int64, error) {
	maxID, err := s.journalRepo.MaxJournalID(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to read max journal id")
		return 0, err
	}
	return maxID + 1, nil
}
