package handlers

import (
	stderrors "errors"
	"net/http"

	"fintrack/internal/dto"
	"fintrack/internal/errors"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
)

// SMSHandler handles the SMS-to-transaction convenience path
type SMSHandler struct {
	transactionService services.TransactionServiceInterface
	auditLogger        services.AuditLoggerInterface
}

// NewSMSHandler creates a new SMS parse handler
func NewSMSHandler(
	transactionService services.TransactionServiceInterface,
	auditLogger services.AuditLoggerInterface,
) *SMSHandler {
	return &SMSHandler{
		transactionService: transactionService,
		auditLogger:        auditLogger,
	}
}

// ParseSMS extracts a transaction from a pasted bank notification and
// records it. Extraction failures answer 200 {"success": false} with no
// partial credit: the reason codes stay in logs and metrics, and the ledger
// is never touched by a failed parse.
//
// POST /api/v1/parse-sms
// Body: {message, sender?}
func (h *SMSHandler) ParseSMS(c echo.Context) error {
	var req dto.ParseSMSRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	transaction, err := h.transactionService.IngestSMS(req.Message, req.Sender)
	if err != nil {
		var extractionErr *services.ExtractionError
		if stderrors.As(err, &extractionErr) {
			h.auditLogger.LogSMSParseFailed(c.Request().Context(), extractionErr.Reason, req.Sender)
			return c.JSON(http.StatusOK, dto.ParseSMSResponse{Success: false})
		}
		return SendSystemError(c, err)
	}

	h.auditLogger.LogTransactionCreated(c.Request().Context(),
		transaction.ID, transaction.Source, transaction.Type, transaction.Category)

	return c.JSON(http.StatusOK, dto.ParseSMSResponse{
		Success:     true,
		Transaction: transaction,
	})
}
