package repositories

import (
	"errors"
	"fmt"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create appends a transaction to the ledger. Identity assignment and
// invariant checks run in the model's BeforeCreate hook, inside the same
// insert, so a transaction is either fully recorded or not recorded at all.
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// GetByID retrieves a transaction by its public ID
func (r *transactionRepository) GetByID(id uuid.UUID) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.Where("id = ?", id).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &transaction, nil
}

// List retrieves transactions in insertion order, oldest first. Filters
// narrow the result; a Limit keeps only the most recent entries without
// disturbing the order.
func (r *transactionRepository) List(filters models.TransactionFilters) ([]models.Transaction, error) {
	transactions := make([]models.Transaction, 0)

	query := r.db.Model(&models.Transaction{})

	if filters.Type != "" {
		query = query.Where("type = ?", filters.Type)
	}
	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.Source != "" {
		query = query.Where("source = ?", filters.Source)
	}
	if filters.DateFrom != "" {
		query = query.Where("date >= ?", filters.DateFrom)
	}
	if filters.DateTo != "" {
		query = query.Where("date <= ?", filters.DateTo)
	}

	if filters.Limit > 0 {
		// Take the tail of the ledger, then flip it back to insertion order.
		if err := query.Order("seq DESC").Limit(filters.Limit).Find(&transactions).Error; err != nil {
			return nil, fmt.Errorf("failed to list transactions: %w", err)
		}
		for i, j := 0, len(transactions)-1; i < j; i, j = i+1, j-1 {
			transactions[i], transactions[j] = transactions[j], transactions[i]
		}
		return transactions, nil
	}

	if err := query.Order("seq ASC").Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

// Delete removes a transaction by its public ID. Deleting an absent ID is
// not an error: the bool reports whether a row was actually removed.
func (r *transactionRepository) Delete(id uuid.UUID) (bool, error) {
	result := r.db.Where("id = ?", id).Delete(&models.Transaction{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete transaction: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// Count returns the number of transactions in the ledger
func (r *transactionRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Transaction{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}
