package sqlite

import (
	"database/sql"

	portsrepo "github.com/SscSPs/bookkeeping_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every repository to the given SQLite handle.
func NewRepositoryProvider(db *sql.DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ChartRepo:   newSQLiteChartRepository(db),
		AccountRepo: newSQLiteAccountRepository(db),
		JournalRepo: newSQLiteJournalRepository(db),
		LedgerRepo:  newSQLiteLedgerRepository(db),
		TxManager:   newSQLiteTxManager(db),
	}
}
