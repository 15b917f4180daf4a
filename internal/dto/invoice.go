package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceKind selects which control account an invoice posts against.
type InvoiceKind string

const (
	InvoiceSale     InvoiceKind = "SALE"
	InvoicePurchase InvoiceKind = "PURCHASE"
)

// PostInvoiceRequest carries the economics of a sale or purchase invoice.
type PostInvoiceRequest struct {
	Kind           InvoiceKind     `json:"kind" binding:"required,oneof=SALE PURCHASE"`
	PartyAccountID int64           `json:"partyAccountID" binding:"required,gt=0"`
	Amount         decimal.Decimal `json:"amount" binding:"gt=0"`
	Date           time.Time       `json:"date" binding:"required"`
	Narration      string          `json:"narration"`
}

// PostInvoiceResponse returns the journal created for an invoice.
type PostInvoiceResponse struct {
	JournalID int64 `json:"journalID"`
}
