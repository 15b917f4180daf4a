package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bookkeeping_app/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_app/internal/dto"
	"github.com/SscSPs/bookkeeping_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	account := rg.Group("/accounts/:accountID")
	{
		account.GET("/ledger", h.getLedger)
		account.GET("/balance", h.getBalance)
		account.POST("/opening-balance", h.seedOpeningBalance)
	}
}

// getLedger godoc
// @Summary Get an account ledger
// @Description Returns the account's ledger rows newest first, each with the counterpart account name when the journal had exactly two entries. Omit limit for the full history.
// @Tags ledger
// @Produce json
// @Param accountID path int true "Account ID"
// @Param limit query int false "Page size, 0 for all rows" default(0)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListLedgerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Account not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/{accountID}/ledger [get]
func (h *ledgerHandler) getLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := int64Param(c, "accountID")
	if !ok {
		return
	}

	var params dto.ListLedgerParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for GetLedger", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	session, ok := sessionFromContext(c, logger)
	if !ok {
		return
	}

	resp, err := h.ledgerService.GetLedger(c.Request.Context(), session, accountID, params)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to retrieve ledger")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getBalance godoc
// @Summary Get the current balance of an account
// @Description Returns the balance on the account's latest ledger row, or 0 Dr when it has never been posted to
// @Tags ledger
// @Produce json
// @Param accountID path int true "Account ID"
// @Success 200 {object} dto.AccountBalanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Account not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/{accountID}/balance [get]
func (h *ledgerHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := int64Param(c, "accountID")
	if !ok {
		return
	}
	session, ok := sessionFromContext(c, logger)
	if !ok {
		return
	}

	balance, hasHistory, err := h.ledgerService.GetCurrentBalance(c.Request.Context(), session, accountID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to retrieve balance")
		return
	}
	c.JSON(http.StatusOK, dto.AccountBalanceResponse{
		AccountID:   accountID,
		Balance:     balance.Amount,
		BalanceType: balance.Type,
		HasHistory:  hasHistory,
	})
}

// seedOpeningBalance godoc
// @Summary Seed an opening balance
// @Description Writes the first ledger row of an account that has no history
// @Tags ledger
// @Accept json
// @Produce json
// @Param accountID path int true "Account ID"
// @Param seed body dto.SeedOpeningBalanceRequest true "Opening balance"
// @Success 201 {object} dto.LedgerRowResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Account already has ledger rows"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/{accountID}/opening-balance [post]
func (h *ledgerHandler) seedOpeningBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := int64Param(c, "accountID")
	if !ok {
		return
	}

	var req dto.SeedOpeningBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SeedOpeningBalance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	session, ok := sessionFromContext(c, logger)
	if !ok {
		return
	}

	row, err := h.ledgerService.SeedOpeningBalance(c.Request.Context(), session, portssvc.SeedRequest{
		AccountID:   accountID,
		Date:        req.Date,
		Debit:       req.DebitAmount,
		Credit:      req.CreditAmount,
		Particulars: req.Particulars,
	})
	if err != nil {
		writeServiceError(c, logger, err, "Failed to seed opening balance")
		return
	}
	c.JSON(http.StatusCreated, dto.ToLedgerRowResponse(*row))
}
