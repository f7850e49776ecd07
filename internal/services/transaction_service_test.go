package services_test

import (
	"errors"
	"testing"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/repositories/repository_mocks"
	"fintrack/internal/services"
	"fintrack/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	transactionRepo *repository_mocks.MockTransactionRepositoryInterface
	extractor       *service_mocks.MockExtractionServiceInterface
	metrics         *service_mocks.MockMetricsRecorderInterface
	service         services.TransactionServiceInterface
}

func TestTransactionServiceSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}

func (s *TransactionServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.transactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.extractor = service_mocks.NewMockExtractionServiceInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.service = services.NewTransactionService(s.transactionRepo, s.extractor, s.metrics)
}

func (s *TransactionServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TransactionServiceTestSuite) expectLedgerSizeRefresh(count int64) {
	s.transactionRepo.EXPECT().Count().Return(count, nil).Times(1)
	s.metrics.EXPECT().RecordGauge("ledger.size", float64(count), nil).Times(1)
}

// Test IngestManual stores a validated draft with manual provenance
func (s *TransactionServiceTestSuite) TestIngestManual_Success() {
	draft := &models.TransactionDraft{
		Amount:      decimal.NewFromInt(500),
		Type:        models.TransactionTypeExpense,
		Category:    models.CategoryFood,
		Description: "Lunch",
		Date:        "2024-01-01",
	}

	s.transactionRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(transaction *models.Transaction) error {
		s.True(decimal.NewFromInt(500).Equal(transaction.Amount))
		s.Equal(models.TransactionTypeExpense, transaction.Type)
		s.Equal(models.CategoryFood, transaction.Category)
		s.Equal("Lunch", transaction.Description)
		s.Equal("2024-01-01", transaction.Date)
		s.Equal(models.TransactionSourceManual, transaction.Source)
		s.Nil(transaction.RawOrigin)
		return nil
	}).Times(1)
	s.metrics.EXPECT().IncrementCounter("transaction.created", map[string]string{
		"source": models.TransactionSourceManual,
		"type":   models.TransactionTypeExpense,
	}).Times(1)
	s.expectLedgerSizeRefresh(1)

	transaction, err := s.service.IngestManual(draft)

	s.NoError(err)
	s.Require().NotNil(transaction)
	s.Equal(models.TransactionSourceManual, transaction.Source)
}

// Test IngestManual rejects drafts that break ledger invariants before any
// storage call is made
func (s *TransactionServiceTestSuite) TestIngestManual_InvalidDraft() {
	valid := models.TransactionDraft{
		Amount:      decimal.NewFromInt(100),
		Type:        models.TransactionTypeExpense,
		Category:    models.CategoryBills,
		Description: gofakeit.ProductName(),
		Date:        "2024-02-10",
	}

	tests := []struct {
		name    string
		mutate  func(draft *models.TransactionDraft)
		wantErr error
	}{
		{
			name:    "zero amount",
			mutate:  func(d *models.TransactionDraft) { d.Amount = decimal.Zero },
			wantErr: models.ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			mutate:  func(d *models.TransactionDraft) { d.Amount = decimal.NewFromInt(-10) },
			wantErr: models.ErrInvalidAmount,
		},
		{
			name:    "unknown type",
			mutate:  func(d *models.TransactionDraft) { d.Type = "transfer" },
			wantErr: models.ErrInvalidTransactionType,
		},
		{
			name:    "unknown category",
			mutate:  func(d *models.TransactionDraft) { d.Category = "Gadgets" },
			wantErr: models.ErrInvalidCategory,
		},
		{
			name:    "blank description",
			mutate:  func(d *models.TransactionDraft) { d.Description = "   " },
			wantErr: models.ErrEmptyDescription,
		},
		{
			name:    "malformed date",
			mutate:  func(d *models.TransactionDraft) { d.Date = "10-02-2024" },
			wantErr: models.ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			draft := valid
			tt.mutate(&draft)

			transaction, err := s.service.IngestManual(&draft)

			s.ErrorIs(err, tt.wantErr)
			s.Nil(transaction)
		})
	}
}

// Test IngestManual surfaces storage failures as internal errors
func (s *TransactionServiceTestSuite) TestIngestManual_RepositoryError() {
	draft := &models.TransactionDraft{
		Amount:      decimal.NewFromInt(75),
		Type:        models.TransactionTypeIncome,
		Category:    models.CategoryIncome,
		Description: "Cashback",
		Date:        "2024-03-01",
	}

	s.transactionRepo.EXPECT().Create(gomock.Any()).Return(errors.New("disk full")).Times(1)

	transaction, err := s.service.IngestManual(draft)

	s.Error(err)
	s.Contains(err.Error(), "failed to store transaction")
	s.Nil(transaction)
}

// Test IngestSMS stores the extracted draft with sms provenance, today's
// date and the original message retained
func (s *TransactionServiceTestSuite) TestIngestSMS_Success() {
	message := "Rs.250 debited for Swiggy order"
	sender := "VK-HDFCBK"
	draft := &models.TransactionDraft{
		Amount:      decimal.NewFromInt(250),
		Type:        models.TransactionTypeExpense,
		Category:    models.CategoryFood,
		Description: "Swiggy order",
	}

	s.extractor.EXPECT().Extract(message, sender).Return(draft, nil).Times(1)
	s.metrics.EXPECT().RecordProcessingTime("sms.extraction", gomock.Any()).Times(1)
	s.transactionRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(transaction *models.Transaction) error {
		s.True(decimal.NewFromInt(250).Equal(transaction.Amount))
		s.Equal(models.TransactionSourceSMS, transaction.Source)
		s.Equal(time.Now().Format(models.DateLayout), transaction.Date)
		s.Require().NotNil(transaction.RawOrigin)
		s.Equal(message, *transaction.RawOrigin)
		return nil
	}).Times(1)
	s.metrics.EXPECT().IncrementCounter("sms.parse.succeeded", nil).Times(1)
	s.metrics.EXPECT().IncrementCounter("transaction.created", map[string]string{
		"source": models.TransactionSourceSMS,
		"type":   models.TransactionTypeExpense,
	}).Times(1)
	s.expectLedgerSizeRefresh(4)

	transaction, err := s.service.IngestSMS(message, sender)

	s.NoError(err)
	s.Require().NotNil(transaction)
	s.Equal(models.TransactionSourceSMS, transaction.Source)
}

// Test IngestSMS leaves the ledger untouched when extraction fails and
// hands the typed error back to the caller
func (s *TransactionServiceTestSuite) TestIngestSMS_ExtractionFailure() {
	message := "Account updated"
	sender := "AX-SBIMB"

	s.extractor.EXPECT().Extract(message, sender).Return(nil, &services.ExtractionError{
		Reason: services.ReasonNoAmountFound,
		Detail: "no currency-marked amount in message",
	}).Times(1)
	s.metrics.EXPECT().RecordProcessingTime("sms.extraction", gomock.Any()).Times(1)
	s.metrics.EXPECT().IncrementCounter("sms.parse.failed", map[string]string{
		"reason": services.ReasonNoAmountFound,
	}).Times(1)

	transaction, err := s.service.IngestSMS(message, sender)

	s.Nil(transaction)
	var extErr *services.ExtractionError
	s.Require().True(errors.As(err, &extErr))
	s.Equal(services.ReasonNoAmountFound, extErr.Reason)
}

// Test IngestSMS surfaces storage failures after a successful extraction
func (s *TransactionServiceTestSuite) TestIngestSMS_RepositoryError() {
	message := "Rs.99 debited for Blinkit"
	draft := &models.TransactionDraft{
		Amount:      decimal.NewFromInt(99),
		Type:        models.TransactionTypeExpense,
		Category:    models.CategoryFood,
		Description: "Blinkit",
	}

	s.extractor.EXPECT().Extract(message, "VK-HDFCBK").Return(draft, nil).Times(1)
	s.metrics.EXPECT().RecordProcessingTime("sms.extraction", gomock.Any()).Times(1)
	s.transactionRepo.EXPECT().Create(gomock.Any()).Return(errors.New("database locked")).Times(1)

	transaction, err := s.service.IngestSMS(message, "VK-HDFCBK")

	s.Error(err)
	s.Contains(err.Error(), "failed to store transaction")
	s.Nil(transaction)
}

// Test GetTransaction passthrough and not-found mapping
func (s *TransactionServiceTestSuite) TestGetTransaction() {
	id := uuid.New()
	stored := &models.Transaction{
		ID:          id,
		Amount:      decimal.NewFromInt(300),
		Type:        models.TransactionTypeExpense,
		Category:    models.CategoryTransport,
		Description: "Airport cab",
		Date:        "2024-04-02",
		Source:      models.TransactionSourceManual,
	}

	s.transactionRepo.EXPECT().GetByID(id).Return(stored, nil).Times(1)

	transaction, err := s.service.GetTransaction(id)

	s.NoError(err)
	s.Equal(stored, transaction)
}

func (s *TransactionServiceTestSuite) TestGetTransaction_NotFound() {
	id := uuid.New()

	s.transactionRepo.EXPECT().GetByID(id).Return(nil, repositories.ErrTransactionNotFound).Times(1)

	transaction, err := s.service.GetTransaction(id)

	s.ErrorIs(err, services.ErrNotFound)
	s.Nil(transaction)
}

func (s *TransactionServiceTestSuite) TestGetTransaction_RepositoryError() {
	id := uuid.New()

	s.transactionRepo.EXPECT().GetByID(id).Return(nil, errors.New("connection reset")).Times(1)

	transaction, err := s.service.GetTransaction(id)

	s.Error(err)
	s.NotErrorIs(err, services.ErrNotFound)
	s.Nil(transaction)
}

// Test ListTransactions forwards filters untouched
func (s *TransactionServiceTestSuite) TestListTransactions() {
	filters := models.TransactionFilters{Type: models.TransactionTypeExpense, Limit: 10}
	stored := []models.Transaction{
		{Amount: decimal.NewFromInt(40), Type: models.TransactionTypeExpense, Category: models.CategoryFood},
	}

	s.transactionRepo.EXPECT().List(filters).Return(stored, nil).Times(1)

	transactions, err := s.service.ListTransactions(filters)

	s.NoError(err)
	s.Equal(stored, transactions)
}

func (s *TransactionServiceTestSuite) TestListTransactions_RepositoryError() {
	s.transactionRepo.EXPECT().List(models.TransactionFilters{}).Return(nil, errors.New("bad query")).Times(1)

	transactions, err := s.service.ListTransactions(models.TransactionFilters{})

	s.Error(err)
	s.Contains(err.Error(), "failed to list transactions")
	s.Nil(transactions)
}

// Test DeleteTransaction reports whether a record was removed and only
// touches the metrics when one was
func (s *TransactionServiceTestSuite) TestDeleteTransaction() {
	id := uuid.New()

	s.transactionRepo.EXPECT().Delete(id).Return(true, nil).Times(1)
	s.metrics.EXPECT().IncrementCounter("transaction.deleted", nil).Times(1)
	s.expectLedgerSizeRefresh(0)

	deleted, err := s.service.DeleteTransaction(id)

	s.NoError(err)
	s.True(deleted)
}

func (s *TransactionServiceTestSuite) TestDeleteTransaction_AlreadyAbsent() {
	id := uuid.New()

	s.transactionRepo.EXPECT().Delete(id).Return(false, nil).Times(1)

	deleted, err := s.service.DeleteTransaction(id)

	s.NoError(err)
	s.False(deleted)
}

func (s *TransactionServiceTestSuite) TestDeleteTransaction_RepositoryError() {
	id := uuid.New()

	s.transactionRepo.EXPECT().Delete(id).Return(false, errors.New("database locked")).Times(1)

	deleted, err := s.service.DeleteTransaction(id)

	s.Error(err)
	s.False(deleted)
}
