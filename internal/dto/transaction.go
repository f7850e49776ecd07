package dto

import (
	"encoding/json"
	"strings"

	"fintrack/internal/models"

	"github.com/shopspring/decimal"
)

// Transaction Request DTOs

// CreateTransactionRequest represents the request payload for recording a ledger entry
type CreateTransactionRequest struct {
	Amount      json.Number `json:"amount" validate:"required"`
	Type        string      `json:"type" validate:"required,transaction_type"`
	Category    string      `json:"category" validate:"required,transaction_category"`
	Description string      `json:"description" validate:"required,max=255"`
	Date        string      `json:"date" validate:"required,ledger_date"`
}

// ToDraft converts the request into an unvalidated transaction draft.
// The amount is parsed from the JSON number literal, so values round-trip
// exactly instead of passing through a float.
func (r *CreateTransactionRequest) ToDraft() (*models.TransactionDraft, error) {
	amount, err := decimal.NewFromString(r.Amount.String())
	if err != nil {
		return nil, err
	}

	return &models.TransactionDraft{
		Amount:      amount,
		Type:        r.Type,
		Category:    r.Category,
		Description: strings.TrimSpace(r.Description),
		Date:        r.Date,
	}, nil
}

// ParseSMSRequest represents the request payload for extracting a transaction
// from a pasted bank notification message
type ParseSMSRequest struct {
	Message string `json:"message" validate:"required"`
	Sender  string `json:"sender"`
}

// Transaction Response DTOs

// ListTransactionsResponse represents the ledger listing in insertion order
type ListTransactionsResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	Count        int                  `json:"count"`
}

// ParseSMSResponse represents the outcome of an SMS extraction attempt.
// Failures collapse to success=false with no transaction attached; internal
// reason codes stay in logs and metrics, never on the wire.
type ParseSMSResponse struct {
	Success     bool                `json:"success"`
	Transaction *models.Transaction `json:"transaction,omitempty"`
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}
