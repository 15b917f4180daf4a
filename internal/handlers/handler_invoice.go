package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bookkeeping_app/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_app/internal/dto"
	"github.com/SscSPs/bookkeeping_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvc
}

func registerInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvc) {
	h := &invoiceHandler{invoiceService: invoiceService}
	rg.POST("/invoices", h.postInvoice)
}

// postInvoice godoc
// @Summary Post a sale or purchase invoice
// @Description Posts a two-entry journal against the Sale or Purchase control account
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body dto.PostInvoiceRequest true "Invoice"
// @Success 201 {object} dto.PostInvoiceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices [post]
func (h *invoiceHandler) postInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PostInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PostInvoice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	session, ok := sessionFromContext(c, logger)
	if !ok {
		return
	}

	journalID, err := h.invoiceService.PostInvoice(c.Request.Context(), session, req)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to post invoice")
		return
	}
	c.JSON(http.StatusCreated, dto.PostInvoiceResponse{JournalID: journalID})
}
