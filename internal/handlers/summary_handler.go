package handlers

import (
	"net/http"

	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
)

// SummaryHandler serves the derived ledger summary
type SummaryHandler struct {
	summaryService services.SummaryServiceInterface
	auditLogger    services.AuditLoggerInterface
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(
	summaryService services.SummaryServiceInterface,
	auditLogger services.AuditLoggerInterface,
) *SummaryHandler {
	return &SummaryHandler{
		summaryService: summaryService,
		auditLogger:    auditLogger,
	}
}

// GetSummary recomputes the summary from the current ledger contents.
// Nothing is cached between requests, so the totals can never go stale.
//
// GET /api/v1/summary
// Response: {total_income, total_expenses, balance, category_breakdown}
func (h *SummaryHandler) GetSummary(c echo.Context) error {
	summary, err := h.summaryService.GetSummary()
	if err != nil {
		return SendSystemError(c, err)
	}

	h.auditLogger.LogSummaryGenerated(c.Request().Context(),
		len(summary.CategoryBreakdown), summary.Balance.String())

	return c.JSON(http.StatusOK, summary)
}
