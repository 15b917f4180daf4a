package mapping

import (
	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	"github.com/SscSPs/bookkeeping_app/internal/models"
)

// ToModelChart converts a domain Chart to a model Chart
func ToModelChart(d domain.Chart) models.Chart {
	return models.Chart{
		ChartID:     d.ChartID,
		UserID:      d.UserID,
		Name:        d.Name,
		AccountType: string(d.AccountType),
		Date:        d.Date,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainChart converts a model Chart to a domain Chart
func ToDomainChart(m models.Chart) domain.Chart {
	return domain.Chart{
		ChartID:     m.ChartID,
		UserID:      m.UserID,
		Name:        m.Name,
		AccountType: domain.AccountType(m.AccountType),
		Date:        m.Date,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:   d.AccountID,
		UserID:      d.UserID,
		Name:        d.Name,
		ChartID:     d.ChartID,
		HeadName:    d.HeadName,
		AccountType: string(d.AccountType),
		Code:        d.Code,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:   m.AccountID,
		UserID:      m.UserID,
		Name:        m.Name,
		ChartID:     m.ChartID,
		HeadName:    m.HeadName,
		AccountType: domain.AccountType(m.AccountType),
		Code:        m.Code,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}

// ToDomainChartSlice converts a slice of model Charts to a slice of domain Charts
func ToDomainChartSlice(ms []models.Chart) []domain.Chart {
	ds := make([]domain.Chart, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainChart(m)
	}
	return ds
}
