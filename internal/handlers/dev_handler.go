package handlers

import (
	"fmt"
	"net/http"
	"time"

	"fintrack/internal/config"
	"fintrack/internal/errors"
	"fintrack/internal/repositories"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	transactionRepo repositories.TransactionRepositoryInterface
	generator       services.TransactionGeneratorInterface
	cfg             *config.Config
}

// NewDevHandler creates a new development handler
func NewDevHandler(
	transactionRepo repositories.TransactionRepositoryInterface,
	cfg *config.Config,
) *DevHandler {
	return &DevHandler{
		transactionRepo: transactionRepo,
		generator:       services.NewTransactionGenerator(),
		cfg:             cfg,
	}
}

// SeedTransactions fills the ledger with realistic sample data.
//
// Method: POST /api/v1/dev/seed
// Environment: Development only
//
// Query parameters:
//   - count: Number of transactions to generate (default: 50, max: 1000)
//   - days: Number of days of history to generate (default: 30, max: 365)
//
// Success Response: 200 OK
//   - message: Success message
//   - transactions_created: Number of transactions created
//
// Error Responses:
//   - 403: Not a development environment
//   - 500: Internal server error
func (h *DevHandler) SeedTransactions(c echo.Context) error {
	if !h.cfg.IsDevelopment() {
		return SendError(c, errors.AccessForbidden,
			errors.WithDetails("Seeding is only available in development"))
	}

	count := getIntQueryParam(c, "count", 50)
	if count < 1 {
		count = 1
	}
	if count > 1000 {
		count = 1000
	}

	days := getIntQueryParam(c, "days", 30)
	if days < 1 {
		days = 1
	}
	if days > 365 {
		days = 365
	}

	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -days)

	transactions := h.generator.GenerateTransactions(startDate, endDate, count)

	created := 0
	for _, txn := range transactions {
		if err := h.transactionRepo.Create(txn); err != nil {
			continue
		}
		created++
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":              "sample data generated successfully",
		"transactions_created": created,
		"date_range": map[string]string{
			"start": startDate.Format(time.RFC3339),
			"end":   endDate.Format(time.RFC3339),
		},
	})
}

// Helper function to get integer query parameters
func getIntQueryParam(c echo.Context, key string, defaultValue int) int {
	valueStr := c.QueryParam(key)
	if valueStr == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(valueStr, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}
