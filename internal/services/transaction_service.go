package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("resource not found")
)

type transactionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	extractor       ExtractionServiceInterface
	metrics         MetricsRecorderInterface
}

func NewTransactionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	extractor ExtractionServiceInterface,
	metrics MetricsRecorderInterface,
) TransactionServiceInterface {
	return &transactionService{
		transactionRepo: transactionRepo,
		extractor:       extractor,
		metrics:         metrics,
	}
}

// IngestManual records a user-entered transaction. The draft is validated
// up front so callers can tell a bad submission from a storage failure.
func (s *transactionService) IngestManual(draft *models.TransactionDraft) (*models.Transaction, error) {
	transaction := draft.ToTransaction(models.TransactionSourceManual)

	if err := transaction.Validate(); err != nil {
		slog.Warn("rejected manual transaction",
			"type", transaction.Type,
			"category", transaction.Category,
			"error", err)
		return nil, err
	}

	if err := s.transactionRepo.Create(transaction); err != nil {
		slog.Error("failed to store manual transaction", "error", err)
		return nil, fmt.Errorf("failed to store transaction: %w", err)
	}

	s.metrics.IncrementCounter("transaction.created", map[string]string{
		"source": models.TransactionSourceManual,
		"type":   transaction.Type,
	})
	s.refreshLedgerSize()

	slog.Info("transaction recorded",
		"transaction_id", transaction.ID,
		"source", transaction.Source,
		"type", transaction.Type,
		"category", transaction.Category)

	return transaction, nil
}

// IngestSMS extracts a transaction from a bank notification and records it.
// A failed extraction leaves the ledger untouched and returns the
// ExtractionError unwrapped so callers can inspect the reason.
func (s *transactionService) IngestSMS(message, sender string) (*models.Transaction, error) {
	start := time.Now()
	draft, err := s.extractor.Extract(message, sender)
	s.metrics.RecordProcessingTime("sms.extraction", time.Since(start))

	if err != nil {
		var extractionErr *ExtractionError
		if errors.As(err, &extractionErr) {
			s.metrics.IncrementCounter("sms.parse.failed", map[string]string{
				"reason": extractionErr.Reason,
			})
			slog.Warn("sms extraction failed",
				"reason", extractionErr.Reason,
				"sender", sender,
				"error", err)
			return nil, err
		}
		slog.Error("sms extraction failed unexpectedly", "sender", sender, "error", err)
		return nil, fmt.Errorf("failed to extract transaction: %w", err)
	}

	// Extraction yields no date; SMS transactions are dated on arrival.
	draft.Date = time.Now().Format(models.DateLayout)

	transaction := draft.ToTransaction(models.TransactionSourceSMS)
	transaction.RawOrigin = &message

	if err := s.transactionRepo.Create(transaction); err != nil {
		slog.Error("failed to store sms transaction", "sender", sender, "error", err)
		return nil, fmt.Errorf("failed to store transaction: %w", err)
	}

	s.metrics.IncrementCounter("sms.parse.succeeded", nil)
	s.metrics.IncrementCounter("transaction.created", map[string]string{
		"source": models.TransactionSourceSMS,
		"type":   transaction.Type,
	})
	s.refreshLedgerSize()

	slog.Info("sms transaction recorded",
		"transaction_id", transaction.ID,
		"type", transaction.Type,
		"category", transaction.Category,
		"sender", sender)

	return transaction, nil
}

func (s *transactionService) GetTransaction(id uuid.UUID) (*models.Transaction, error) {
	transaction, err := s.transactionRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, ErrNotFound
		}
		slog.Error("failed to get transaction", "transaction_id", id, "error", err)
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return transaction, nil
}

func (s *transactionService) ListTransactions(filters models.TransactionFilters) ([]models.Transaction, error) {
	transactions, err := s.transactionRepo.List(filters)
	if err != nil {
		slog.Error("failed to list transactions", "error", err)
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

// DeleteTransaction removes a ledger entry. Deleting an id that is absent,
// or was already deleted, reports false with no error.
func (s *transactionService) DeleteTransaction(id uuid.UUID) (bool, error) {
	deleted, err := s.transactionRepo.Delete(id)
	if err != nil {
		slog.Error("failed to delete transaction", "transaction_id", id, "error", err)
		return false, fmt.Errorf("failed to delete transaction: %w", err)
	}

	if deleted {
		s.metrics.IncrementCounter("transaction.deleted", nil)
		s.refreshLedgerSize()
		slog.Info("transaction deleted", "transaction_id", id)
	} else {
		slog.Info("transaction already absent", "transaction_id", id)
	}

	return deleted, nil
}

func (s *transactionService) refreshLedgerSize() {
	count, err := s.transactionRepo.Count()
	if err != nil {
		slog.Warn("failed to refresh ledger size gauge", "error", err)
		return
	}
	s.metrics.RecordGauge("ledger.size", float64(count), nil)
}
