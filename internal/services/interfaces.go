package services

import (
	"context"
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryServiceInterface defines the interface for category inference operations
type CategoryServiceInterface interface {
	// InferCategory maps merchant/keyword fragments in the text to the fixed
	// category set. It never fails: income without a merchant match falls back
	// to Income, everything else to Shopping.
	InferCategory(text, transactionType string) *models.CategoryInference

	// MatchMerchant reports the first merchant keyword found in the text
	MatchMerchant(text string) (keyword, category string, found bool)
}

// ExtractionServiceInterface defines the contract for turning a bank SMS into
// a transaction draft
type ExtractionServiceInterface interface {
	// Extract is a pure function of (message, sender): identical input yields
	// an identical draft or an identical *ExtractionError.
	Extract(message, sender string) (*models.TransactionDraft, error)
}

// SummaryServiceInterface defines the contract for derived financial summaries
type SummaryServiceInterface interface {
	// Summarize folds a transaction set into totals in a single pass
	Summarize(transactions []models.Transaction) models.Summary

	// GetSummary recomputes the summary from the full ledger
	GetSummary() (models.Summary, error)
}

// TransactionServiceInterface defines ledger-facing business operations
type TransactionServiceInterface interface {
	IngestManual(draft *models.TransactionDraft) (*models.Transaction, error)
	IngestSMS(message, sender string) (*models.Transaction, error)
	GetTransaction(id uuid.UUID) (*models.Transaction, error)
	ListTransactions(filters models.TransactionFilters) ([]models.Transaction, error)
	DeleteTransaction(id uuid.UUID) (bool, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type AuditLoggerInterface interface {
	LogTransactionCreated(ctx context.Context, transactionID uuid.UUID, source, transactionType, category string)
	LogTransactionDeleted(ctx context.Context, transactionID uuid.UUID, deleted bool)
	LogSMSParseFailed(ctx context.Context, reason, sender string)
	LogSummaryGenerated(ctx context.Context, categoryCount int, balance string)
}

// TransactionGeneratorInterface generates realistic ledger data for development
type TransactionGeneratorInterface interface {
	GenerateTransactions(startDate, endDate time.Time, count int) []*models.Transaction
	GetMerchantPool() []models.MerchantInfo
	SelectRandomMerchant() models.MerchantInfo
	GenerateAmount(category string) decimal.Decimal
	GenerateDate(startDate, endDate time.Time) string
	GenerateSMS(merchant models.MerchantInfo, amount decimal.Decimal) (message, sender string)
}
