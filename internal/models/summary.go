package models

import "github.com/shopspring/decimal"

// Summary contains the totals derived from the current ledger contents.
// It is recomputed in full on every request and never stored, so there is
// no cached aggregate that can drift from the transactions themselves.
type Summary struct {
	TotalIncome       decimal.Decimal            `json:"total_income"`
	TotalExpenses     decimal.Decimal            `json:"total_expenses"`
	Balance           decimal.Decimal            `json:"balance"`
	CategoryBreakdown map[string]decimal.Decimal `json:"category_breakdown"`
}

// NewSummary returns the all-zero summary of an empty ledger.
// The breakdown map is empty but non-nil so it serializes as {}.
func NewSummary() Summary {
	return Summary{
		TotalIncome:       decimal.Zero,
		TotalExpenses:     decimal.Zero,
		Balance:           decimal.Zero,
		CategoryBreakdown: make(map[string]decimal.Decimal),
	}
}
