package handlers

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const maxListLimit = 500

// TransactionHandler handles ledger-facing HTTP requests
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
	auditLogger        services.AuditLoggerInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(
	transactionService services.TransactionServiceInterface,
	auditLogger services.AuditLoggerInterface,
) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		auditLogger:        auditLogger,
	}
}

// CreateTransaction records a manually entered ledger entry.
//
// POST /api/v1/transactions
// Body: {amount, type, category, description, date}
// Responses: 201 with the created transaction, 400 with validation detail.
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	draft, err := req.ToDraft()
	if err != nil {
		return SendError(c, errors.TransactionInvalidAmount,
			errors.WithDetails("amount: must be a valid number"))
	}

	transaction, err := h.transactionService.IngestManual(draft)
	if err != nil {
		if code, ok := mapInvariantError(err); ok {
			return SendError(c, code)
		}
		return SendSystemError(c, err)
	}

	h.auditLogger.LogTransactionCreated(c.Request().Context(),
		transaction.ID, transaction.Source, transaction.Type, transaction.Category)

	return c.JSON(http.StatusCreated, transaction)
}

// ListTransactions returns the ledger in insertion order, most-recent-last.
//
// GET /api/v1/transactions
// Optional query filters: type, category, source, from, to, limit.
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	filters, err := parseTransactionFilters(c)
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	transactions, err := h.transactionService.ListTransactions(filters)
	if err != nil {
		return SendSystemError(c, err)
	}

	response := dto.ListTransactionsResponse{
		Transactions: transactions,
		Count:        len(transactions),
	}

	return c.JSON(http.StatusOK, response)
}

// GetTransaction retrieves a single ledger entry by its public ID.
//
// GET /api/v1/transactions/:id
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.TransactionInvalidID)
	}

	transaction, err := h.transactionService.GetTransaction(id)
	if err != nil {
		if stderrors.Is(err, services.ErrNotFound) {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, transaction)
}

// DeleteTransaction removes a ledger entry. Deletion is idempotent: an
// absent id is a no-op success, so the response is 204 either way.
//
// DELETE /api/v1/transactions/:id
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.TransactionInvalidID)
	}

	deleted, err := h.transactionService.DeleteTransaction(id)
	if err != nil {
		return SendSystemError(c, err)
	}

	h.auditLogger.LogTransactionDeleted(c.Request().Context(), id, deleted)

	return c.NoContent(http.StatusNoContent)
}

// parseTransactionFilters parses and validates listing filter parameters
func parseTransactionFilters(c echo.Context) (models.TransactionFilters, error) {
	filters := models.TransactionFilters{}

	if txnType := c.QueryParam("type"); txnType != "" {
		if !models.IsValidTransactionType(txnType) {
			return filters, fmt.Errorf("invalid type, must be 'income' or 'expense'")
		}
		filters.Type = txnType
	}

	if category := c.QueryParam("category"); category != "" {
		if !models.IsValidCategory(category) {
			return filters, fmt.Errorf("invalid category")
		}
		filters.Category = category
	}

	if source := c.QueryParam("source"); source != "" {
		if !models.IsValidTransactionSource(source) {
			return filters, fmt.Errorf("invalid source, must be 'manual' or 'sms'")
		}
		filters.Source = source
	}

	if from := c.QueryParam("from"); from != "" {
		if !isCalendarDate(from) {
			return filters, fmt.Errorf("invalid from date, use YYYY-MM-DD")
		}
		filters.DateFrom = from
	}

	if to := c.QueryParam("to"); to != "" {
		if !isCalendarDate(to) {
			return filters, fmt.Errorf("invalid to date, use YYYY-MM-DD")
		}
		filters.DateTo = to
	}

	if limitStr := c.QueryParam("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			return filters, fmt.Errorf("invalid limit parameter")
		}
		if limit > maxListLimit {
			limit = maxListLimit
		}
		filters.Limit = limit
	}

	return filters, nil
}

func isCalendarDate(value string) bool {
	_, err := time.Parse(models.DateLayout, value)
	return err == nil
}

// mapInvariantError translates model invariant violations into error codes.
// Anything unrecognized is a storage failure, not a client error.
func mapInvariantError(err error) (errors.ErrorCode, bool) {
	switch {
	case stderrors.Is(err, models.ErrInvalidAmount):
		return errors.TransactionInvalidAmount, true
	case stderrors.Is(err, models.ErrInvalidTransactionType):
		return errors.TransactionInvalidType, true
	case stderrors.Is(err, models.ErrInvalidCategory):
		return errors.TransactionInvalidCategory, true
	case stderrors.Is(err, models.ErrEmptyDescription):
		return errors.ValidationRequiredField, true
	case stderrors.Is(err, models.ErrInvalidDate):
		return errors.ValidationInvalidDate, true
	case stderrors.Is(err, models.ErrInvalidTransactionSource):
		return errors.TransactionInvalidSource, true
	default:
		return "", false
	}
}
