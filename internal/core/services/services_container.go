package services

import (
	portsrepo "github.com/SscSPs/bookkeeping_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookkeeping_app/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The account directory comes first since every other service resolves accounts through it
	container.Account = NewAccountService(repos.ChartRepo, repos.AccountRepo)

	container.Journal = NewJournalService(repos.JournalRepo, container.Account, repos.TxManager)
	container.Ledger = NewLedgerService(repos.LedgerRepo, container.Account, repos.TxManager)
	container.Invoice = NewInvoiceService(container.Account, container.Journal)
	container.StatementImport = NewStatementImportService(container.Account, container.Ledger)
	container.Auth = NewAuthService(cfg)

	return container
}
