package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/bookkeeping_app/internal/apperrors"
	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	portssvc "github.com/SscSPs/bookkeeping_app/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_app/internal/dto"
	"github.com/shopspring/decimal"
)

// Control accounts that invoices post against. They are ordinary accounts looked up by name.
const (
	SaleAccountName     = "Sale"
	PurchaseAccountName = "Purchase"
)

type invoiceService struct {
	BaseService
	accountSvc portssvc.AccountReaderSvc
	poster     portssvc.JournalPosterSvc
}

// NewInvoiceService creates the invoice posting service.
func NewInvoiceService(accountSvc portssvc.AccountReaderSvc, poster portssvc.JournalPosterSvc) portssvc.InvoiceSvc {
	return &invoiceService{accountSvc: accountSvc, poster: poster}
}

var _ portssvc.InvoiceSvc = (*invoiceService)(nil)

// PostInvoice builds the two-entry journal for a sale (Dr party, Cr Sale) or a purchase
// (Dr Purchase, Cr party) and posts it through the journal engine unchanged.
func (s *invoiceService) PostInvoice(ctx context.Context, session domain.Session, req dto.PostInvoiceRequest) (int64, error) {
	if !req.Amount.IsPositive() {
		return 0, fmt.Errorf("%w: invoice amount must be positive", apperrors.ErrValidation)
	}

	var controlName, narration string
	switch req.Kind {
	case dto.InvoiceSale:
		controlName, narration = SaleAccountName, "Sale invoice"
	case dto.InvoicePurchase:
		controlName, narration = PurchaseAccountName, "Purchase invoice"
	default:
		return 0, fmt.Errorf("%w: unknown invoice kind %q", apperrors.ErrValidation, req.Kind)
	}
	if req.Narration != "" {
		narration = req.Narration
	}

	control, err := s.accountSvc.FindAccountByName(ctx, session, controlName)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return 0, fmt.Errorf("%w: control account %q is not set up", apperrors.ErrValidation, controlName)
		}
		return 0, err
	}

	debitID, creditID := req.PartyAccountID, control.AccountID
	if req.Kind == dto.InvoicePurchase {
		debitID, creditID = control.AccountID, req.PartyAccountID
	}

	journal := domain.Journal{
		Date:      req.Date,
		Narration: narration,
		Entries: []domain.JournalEntry{
			{AccountID: debitID, DebitAmount: req.Amount, CreditAmount: decimal.Zero},
			{AccountID: creditID, DebitAmount: decimal.Zero, CreditAmount: req.Amount},
		},
	}
	return s.poster.PostJournal(ctx, session, journal)
}
