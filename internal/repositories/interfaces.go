package repositories

import (
	"fintrack/internal/models"

	"github.com/google/uuid"
)

// TransactionRepositoryInterface defines the contract for the ledger store.
// The ledger is append-and-delete only: entries are never updated in place.
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	List(filters models.TransactionFilters) ([]models.Transaction, error)
	Delete(id uuid.UUID) (bool, error)
	Count() (int64, error)
}
