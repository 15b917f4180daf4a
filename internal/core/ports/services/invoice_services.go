package services

import (
	"context"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	"github.com/SscSPs/bookkeeping_app/internal/dto"
)

// InvoiceSvc turns sale and purchase invoices into two-entry journals.
type InvoiceSvc interface {
	PostInvoice(ctx context.Context, session domain.Session, req dto.PostInvoiceRequest) (int64, error)
}
