package services

import (
	"fmt"
	"log/slog"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repositories"
)

type summaryService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         MetricsRecorderInterface
}

func NewSummaryService(
	transactionRepo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
) SummaryServiceInterface {
	return &summaryService{
		transactionRepo: transactionRepo,
		metrics:         metrics,
	}
}

// GetSummary folds the whole ledger into aggregate totals. Nothing is cached;
// the summary is recomputed from the stored transactions on every call.
func (s *summaryService) GetSummary() (models.Summary, error) {
	start := time.Now()

	transactions, err := s.transactionRepo.List(models.TransactionFilters{})
	if err != nil {
		slog.Error("failed to load ledger for summary", "error", err)
		return models.Summary{}, fmt.Errorf("failed to load transactions: %w", err)
	}

	summary := s.Summarize(transactions)

	s.metrics.IncrementCounter("summary.generated", nil)
	s.metrics.RecordProcessingTime("summary.generation", time.Since(start))
	slog.Info("summary generated",
		"transaction_count", len(transactions),
		"balance", summary.Balance.String())

	return summary, nil
}

// Summarize reduces a transaction slice in one pass. Breakdown entries are
// net signed values, so the breakdown always sums to the balance.
func (s *summaryService) Summarize(transactions []models.Transaction) models.Summary {
	summary := models.NewSummary()

	for i := range transactions {
		transaction := &transactions[i]

		switch {
		case transaction.IsIncome():
			summary.TotalIncome = summary.TotalIncome.Add(transaction.Amount)
		case transaction.IsExpense():
			summary.TotalExpenses = summary.TotalExpenses.Add(transaction.Amount)
		}

		current := summary.CategoryBreakdown[transaction.Category]
		summary.CategoryBreakdown[transaction.Category] = current.Add(transaction.SignedAmount())
	}

	summary.Balance = summary.TotalIncome.Sub(summary.TotalExpenses)
	return summary
}
