package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bookkeeping_app/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_app/internal/dto"
	"github.com/SscSPs/bookkeeping_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalHandler handles HTTP requests related to journals.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

func newJournalHandler(js portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{journalService: js}
}

// registerJournalRoutes registers journal specific routes
func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	journals := rg.Group("/journals")
	{
		journals.POST("", h.postJournal)
		journals.GET("", h.listJournals)
		journals.GET("/next-id", h.getNextJournalID)
		journals.GET("/:journalID", h.getJournal)
	}
}

// postJournal godoc
// @Summary Post a journal
// @Description Validates a balanced journal and writes it with one ledger row per entry in a single unit of work
// @Tags journals
// @Accept json
// @Produce json
// @Param journal body dto.CreateJournalRequest true "Journal and its entries"
// @Success 201 {object} dto.CreateJournalResponse
// @Failure 400 {object} ErrorResponse "Invalid entries, imbalanced journal or unknown account"
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse "Failed to post journal"
// @Security BearerAuth
// @Router /journals [post]
func (h *journalHandler) postJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PostJournal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	session, ok := sessionFromContext(c, logger)
	if !ok {
		return
	}

	journalID, err := h.journalService.PostJournal(c.Request.Context(), session, req.ToDomainJournal())
	if err != nil {
		writeServiceError(c, logger, err, "Failed to post journal")
		return
	}

	logger.Info("Journal posted successfully", slog.Int64("journal_id", journalID))
	c.JSON(http.StatusCreated, dto.CreateJournalResponse{JournalID: journalID})
}

// getJournal godoc
// @Summary Get a journal and its entries
// @Tags journals
// @Produce json
// @Param journalID path int true "Journal ID"
// @Success 200 {object} dto.JournalResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Journal not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /journals/{journalID} [get]
func (h *journalHandler) getJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	journalID, ok := int64Param(c, "journalID")
	if !ok {
		return
	}
	session, ok := sessionFromContext(c, logger)
	if !ok {
		return
	}

	journal, err := h.journalService.GetJournal(c.Request.Context(), session, journalID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to retrieve journal")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalResponse(journal))
}

// listJournals godoc
// @Summary List journals
// @Description Lists journal headers newest first
// @Tags journals
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListJournalsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /journals [get]
func (h *journalHandler) listJournals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListJournalsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListJournals", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	session, ok := sessionFromContext(c, logger)
	if !ok {
		return
	}

	resp, err := h.journalService.ListJournals(c.Request.Context(), session, params)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to list journals")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getNextJournalID godoc
// @Summary Get the next journal id
// @Description Advisory only; the id is assigned when the journal is posted
// @Tags journals
// @Produce json
// @Success 200 {object} dto.NextJournalIDResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /journals/next-id [get]
func (h *journalHandler) getNextJournalID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	nextID, err := h.journalService.GetNextJournalID(c.Request.Context())
	if err != nil {
		writeServiceError(c, logger, err, "Failed to compute next journal id")
		return
	}
	c.JSON(http.StatusOK, dto.NextJournalIDResponse{NextJournalID: nextID})
}
