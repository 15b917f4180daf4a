package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerRowMapping_LinkedAccount(t *testing.T) {
	linked := int64(7)
	now := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	row := domain.LedgerRow{
		LedgerID:          3,
		AccountID:         2,
		Date:              now,
		Particulars:       "Journal #9",
		Debit:             decimal.NewFromInt(50),
		Credit:            decimal.Zero,
		Balance:           decimal.NewFromInt(150),
		BalanceType:       domain.BalanceDebit,
		LinkedAccountID:   &linked,
		LinkedAccountName: "Cash",
		AuditFields:       domain.NewAuditFields("owner", now),
	}

	m := ToModelLedgerRow(row)
	assert.True(t, m.LinkedAccountID.Valid)
	assert.Equal(t, int64(7), m.LinkedAccountID.Int64)
	assert.Equal(t, "Dr", m.BalanceType)

	back := ToDomainLedgerRow(m)
	require.NotNil(t, back.LinkedAccountID)
	assert.Equal(t, linked, *back.LinkedAccountID)
	assert.Equal(t, "Cash", back.LinkedAccountName)
	assert.True(t, row.Balance.Equal(back.Balance))
	assert.Equal(t, row.AuditFields, back.AuditFields)
}

func TestLedgerRowMapping_NoLinkedAccount(t *testing.T) {
	back := ToDomainLedgerRow(ToModelLedgerRow(domain.LedgerRow{AccountID: 1, BalanceType: domain.BalanceCredit}))
	assert.Nil(t, back.LinkedAccountID)
	assert.Empty(t, back.LinkedAccountName)
	assert.Equal(t, domain.BalanceCredit, back.BalanceType)
}
