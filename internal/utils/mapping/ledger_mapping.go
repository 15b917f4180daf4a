package mapping

import (
	"database/sql"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	"github.com/SscSPs/bookkeeping_app/internal/models"
)

// ToModelLedgerRow converts a domain LedgerRow to a model LedgerRow
func ToModelLedgerRow(d domain.LedgerRow) models.LedgerRow {
	m := models.LedgerRow{
		LedgerID:    d.LedgerID,
		AccountID:   d.AccountID,
		Date:        d.Date,
		Particulars: d.Particulars,
		Debit:       d.Debit,
		Credit:      d.Credit,
		Balance:     d.Balance,
		BalanceType: string(d.BalanceType),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
	if d.LinkedAccountID != nil {
		m.LinkedAccountID = sql.NullInt64{Int64: *d.LinkedAccountID, Valid: true}
	}
	if d.LinkedAccountName != "" {
		m.LinkedAccountName = sql.NullString{String: d.LinkedAccountName, Valid: true}
	}
	return m
}

// ToDomainLedgerRow converts a model LedgerRow to a domain LedgerRow
func ToDomainLedgerRow(m models.LedgerRow) domain.LedgerRow {
	d := domain.LedgerRow{
		LedgerID:          m.LedgerID,
		AccountID:         m.AccountID,
		Date:              m.Date,
		Particulars:       m.Particulars,
		Debit:             m.Debit,
		Credit:            m.Credit,
		Balance:           m.Balance,
		BalanceType:       domain.BalanceType(m.BalanceType),
		LinkedAccountName: m.LinkedAccountName.String,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
	if m.LinkedAccountID.Valid {
		linked := m.LinkedAccountID.Int64
		d.LinkedAccountID = &linked
	}
	return d
}

// ToDomainLedgerRowSlice converts a slice of model ledger rows to domain rows
func ToDomainLedgerRowSlice(ms []models.LedgerRow) []domain.LedgerRow {
	ds := make([]domain.LedgerRow, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerRow(m)
	}
	return ds
}
