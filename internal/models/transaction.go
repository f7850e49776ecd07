package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"

	TransactionSourceManual = "manual"
	TransactionSourceSMS    = "sms"
)

// DateLayout is the calendar-date format used throughout the ledger.
// Transactions carry no time-of-day semantics.
const DateLayout = "2006-01-02"

func init() {
	// Amounts cross the wire as bare JSON numbers; direction comes from the
	// type field, never from a sign.
	decimal.MarshalJSONWithoutQuotes = true
}

var (
	ErrInvalidTransactionType   = errors.New("invalid transaction type")
	ErrInvalidTransactionSource = errors.New("invalid transaction source")
	ErrInvalidAmount            = errors.New("transaction amount must be positive")
	ErrInvalidCategory          = errors.New("invalid transaction category")
	ErrEmptyDescription         = errors.New("transaction description is required")
	ErrInvalidDate              = errors.New("transaction date must be a YYYY-MM-DD calendar date")
	ErrUnexpectedRawOrigin      = errors.New("raw origin is only retained for sms transactions")
)

// Transaction is a single ledger entry. Records are immutable once created;
// the ledger only appends and deletes, so there is no update path anywhere.
//
// Seq is the storage primary key and owns insertion order. ID is the public
// identifier; a fresh UUID per record means an id is never reused, even after
// the record it named is deleted.
type Transaction struct {
	Seq         uint64          `gorm:"primaryKey;autoIncrement" json:"-"`
	ID          uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null" json:"id"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Type        string          `gorm:"type:varchar(10);not null;index" json:"type"`
	Category    string          `gorm:"type:varchar(20);not null;index" json:"category"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Date        string          `gorm:"type:varchar(10);not null;index" json:"date"`
	Source      string          `gorm:"type:varchar(10);not null" json:"source"`
	RawOrigin   *string         `gorm:"type:text" json:"raw_origin,omitempty"`
	CreatedAt   time.Time       `gorm:"not null;index" json:"created_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	if t.Source == "" {
		t.Source = TransactionSourceManual
	}

	t.Description = strings.TrimSpace(t.Description)

	// Set timestamp if not already set (for tests)
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}

	return t.Validate()
}

// Validate validates the transaction fields against the ledger invariants
func (t *Transaction) Validate() error {
	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if !IsValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}

	if !IsValidCategory(t.Category) {
		return ErrInvalidCategory
	}

	if strings.TrimSpace(t.Description) == "" {
		return ErrEmptyDescription
	}

	if _, err := time.Parse(DateLayout, t.Date); err != nil {
		return ErrInvalidDate
	}

	if !IsValidTransactionSource(t.Source) {
		return ErrInvalidTransactionSource
	}

	if t.RawOrigin != nil && t.Source != TransactionSourceSMS {
		return ErrUnexpectedRawOrigin
	}

	return nil
}

// IsIncome returns true if the transaction adds to the balance
func (t *Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// IsExpense returns true if the transaction subtracts from the balance
func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// SignedAmount returns the transaction's net contribution to the balance:
// positive for income, negative for expense.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.IsExpense() {
		return t.Amount.Neg()
	}
	return t.Amount
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// Helper functions

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}

// IsValidTransactionSource checks if the provenance tag is valid
func IsValidTransactionSource(source string) bool {
	switch source {
	case TransactionSourceManual, TransactionSourceSMS:
		return true
	default:
		return false
	}
}

// TransactionDraft is an unvalidated, unpersisted candidate transaction.
// Drafts come from the manual-entry form or from SMS extraction; the
// ingestion coordinator validates them and stamps provenance before they
// reach the store.
type TransactionDraft struct {
	Amount      decimal.Decimal
	Type        string
	Category    string
	Description string
	Date        string
}

// ToTransaction materializes the draft with the given provenance tag.
// Callers are expected to validate the result before persisting.
func (d *TransactionDraft) ToTransaction(source string) *Transaction {
	return &Transaction{
		Amount:      d.Amount,
		Type:        d.Type,
		Category:    d.Category,
		Description: strings.TrimSpace(d.Description),
		Date:        d.Date,
		Source:      source,
	}
}
