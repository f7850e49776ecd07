package services_test

import (
	"errors"
	"testing"

	"fintrack/internal/models"
	"fintrack/internal/repositories/repository_mocks"
	"fintrack/internal/services"
	"fintrack/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type SummaryServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	transactionRepo *repository_mocks.MockTransactionRepositoryInterface
	metrics         *service_mocks.MockMetricsRecorderInterface
	service         services.SummaryServiceInterface
}

func TestSummaryServiceSuite(t *testing.T) {
	suite.Run(t, new(SummaryServiceTestSuite))
}

func (s *SummaryServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.transactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.service = services.NewSummaryService(s.transactionRepo, s.metrics)
}

func (s *SummaryServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *SummaryServiceTestSuite) expectMetrics() {
	s.metrics.EXPECT().IncrementCounter("summary.generated", nil).Times(1)
	s.metrics.EXPECT().RecordProcessingTime("summary.generation", gomock.Any()).Times(1)
}

func makeTransaction(amount, transactionType, category string) models.Transaction {
	return models.Transaction{
		Amount:      decimal.RequireFromString(amount),
		Type:        transactionType,
		Category:    category,
		Description: gofakeit.ProductName(),
		Date:        "2024-01-01",
		Source:      models.TransactionSourceManual,
	}
}

// Test GetSummary over a ledger with income and expenses in several categories
func (s *SummaryServiceTestSuite) TestGetSummary_MixedLedger() {
	transactions := []models.Transaction{
		makeTransaction("3000", models.TransactionTypeIncome, models.CategoryIncome),
		makeTransaction("500", models.TransactionTypeExpense, models.CategoryFood),
		makeTransaction("120.50", models.TransactionTypeExpense, models.CategoryTransport),
		makeTransaction("200", models.TransactionTypeIncome, models.CategoryFood),
	}

	s.transactionRepo.EXPECT().List(models.TransactionFilters{}).Return(transactions, nil).Times(1)
	s.expectMetrics()

	summary, err := s.service.GetSummary()

	s.NoError(err)
	s.True(decimal.RequireFromString("3200").Equal(summary.TotalIncome))
	s.True(decimal.RequireFromString("620.50").Equal(summary.TotalExpenses))
	s.True(decimal.RequireFromString("2579.50").Equal(summary.Balance))

	s.Len(summary.CategoryBreakdown, 3)
	s.True(decimal.RequireFromString("3000").Equal(summary.CategoryBreakdown[models.CategoryIncome]))
	s.True(decimal.RequireFromString("-300").Equal(summary.CategoryBreakdown[models.CategoryFood]))
	s.True(decimal.RequireFromString("-120.50").Equal(summary.CategoryBreakdown[models.CategoryTransport]))
}

// Test GetSummary with a single expense: balance goes negative and the
// breakdown carries the signed value
func (s *SummaryServiceTestSuite) TestGetSummary_SingleExpense() {
	transactions := []models.Transaction{
		makeTransaction("500", models.TransactionTypeExpense, models.CategoryFood),
	}

	s.transactionRepo.EXPECT().List(models.TransactionFilters{}).Return(transactions, nil).Times(1)
	s.expectMetrics()

	summary, err := s.service.GetSummary()

	s.NoError(err)
	s.True(decimal.Zero.Equal(summary.TotalIncome))
	s.True(decimal.RequireFromString("500").Equal(summary.TotalExpenses))
	s.True(decimal.RequireFromString("-500").Equal(summary.Balance))
	s.True(decimal.RequireFromString("-500").Equal(summary.CategoryBreakdown[models.CategoryFood]))
}

// Test GetSummary on an empty ledger returns zero totals and an empty,
// non-nil breakdown
func (s *SummaryServiceTestSuite) TestGetSummary_EmptyLedger() {
	s.transactionRepo.EXPECT().List(models.TransactionFilters{}).Return([]models.Transaction{}, nil).Times(1)
	s.expectMetrics()

	summary, err := s.service.GetSummary()

	s.NoError(err)
	s.True(decimal.Zero.Equal(summary.TotalIncome))
	s.True(decimal.Zero.Equal(summary.TotalExpenses))
	s.True(decimal.Zero.Equal(summary.Balance))
	s.NotNil(summary.CategoryBreakdown)
	s.Empty(summary.CategoryBreakdown)
}

// Test GetSummary propagates repository failures
func (s *SummaryServiceTestSuite) TestGetSummary_RepositoryError() {
	s.transactionRepo.EXPECT().List(models.TransactionFilters{}).Return(nil, errors.New("connection reset")).Times(1)

	_, err := s.service.GetSummary()

	s.Error(err)
	s.Contains(err.Error(), "failed to load transactions")
}

// Test that breakdown entries always sum to the balance, whatever the mix
func (s *SummaryServiceTestSuite) TestSummarize_BreakdownSumsToBalance() {
	types := []string{models.TransactionTypeIncome, models.TransactionTypeExpense}
	transactions := make([]models.Transaction, 0, 20)
	for i := 0; i < 20; i++ {
		transactions = append(transactions, makeTransaction(
			decimal.NewFromFloat(gofakeit.Float64Range(1.0, 5000.0)).Round(2).String(),
			types[i%2],
			gofakeit.RandomString(models.AllCategories()),
		))
	}

	summary := s.service.Summarize(transactions)

	total := decimal.Zero
	for _, net := range summary.CategoryBreakdown {
		total = total.Add(net)
	}
	s.True(summary.Balance.Equal(total))
	s.True(summary.Balance.Equal(summary.TotalIncome.Sub(summary.TotalExpenses)))
}

// Test Summarize keeps exact decimal arithmetic on paise amounts
func (s *SummaryServiceTestSuite) TestSummarize_DecimalPrecision() {
	transactions := []models.Transaction{
		makeTransaction("0.10", models.TransactionTypeExpense, models.CategoryBills),
		makeTransaction("0.20", models.TransactionTypeExpense, models.CategoryBills),
	}

	summary := s.service.Summarize(transactions)

	s.Equal("0.3", summary.TotalExpenses.String())
	s.Equal("-0.3", summary.CategoryBreakdown[models.CategoryBills].String())
}
