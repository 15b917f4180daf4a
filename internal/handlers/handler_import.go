package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"strings"

	portssvc "github.com/SscSPs/bookkeeping_app/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// maxImportBytes bounds the size of an uploaded balance sheet.
const maxImportBytes = 1 << 20

type importHandler struct {
	importService portssvc.StatementImportSvc
}

func registerImportRoutes(rg *gin.RouterGroup, importService portssvc.StatementImportSvc) {
	h := &importHandler{importService: importService}
	rg.POST("/imports/balance-sheet", h.importBalanceSheet)
}

// importBalanceSheet godoc
// @Summary Import an opening balance sheet
// @Description Accepts a YAML balance sheet either as the raw body or as a multipart "file" field. Missing charts and accounts are created and non-zero balances seeded; accounts with history are skipped.
// @Tags imports
// @Accept application/x-yaml
// @Accept multipart/form-data
// @Produce json
// @Success 200 {object} dto.ImportBalanceSheetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /imports/balance-sheet [post]
func (h *importHandler) importBalanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	session, ok := sessionFromContext(c, logger)
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImportBytes)
	var body io.Reader = c.Request.Body
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing file field"})
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			logger.Error("Failed to open uploaded balance sheet", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unreadable file"})
			return
		}
		defer file.Close()
		body = file
	}

	resp, err := h.importService.ImportBalanceSheet(c.Request.Context(), session, body)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to import balance sheet")
		return
	}
	c.JSON(http.StatusOK, resp)
}
