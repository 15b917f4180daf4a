package services

import (
	"context"
	"io"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	"github.com/SscSPs/bookkeeping_app/internal/dto"
)

// StatementImportSvc seeds charts, accounts and opening balances from a balance sheet.
type StatementImportSvc interface {
	ImportBalanceSheet(ctx context.Context, session domain.Session, r io.Reader) (*dto.ImportBalanceSheetResponse, error)
}
