// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/finance-wallet/backend/internal/domain/valueobject"
)

// TransactionType represents the kind of money movement a transaction records.
type TransactionType string

const (
	TransactionTypeIncome     TransactionType = "income"
	TransactionTypeExpense    TransactionType = "expense"
	TransactionTypeInvestment TransactionType = "investment"
	TransactionTypeTransfer   TransactionType = "transfer"
)

// transactionTypeLabels maps each supported transaction type to its display label.
var transactionTypeLabels = map[TransactionType]string{
	TransactionTypeIncome:     "Income",
	TransactionTypeExpense:    "Expense",
	TransactionTypeInvestment: "Investment",
	TransactionTypeTransfer:   "Transfer",
}

// IsValid reports whether the transaction type is one of the supported types.
func (t TransactionType) IsValid() bool {
	_, ok := transactionTypeLabels[t]
	return ok
}

// Label returns the human-readable label for the transaction type.
func (t TransactionType) Label() string {
	return transactionTypeLabels[t]
}

// MatchesCategoryType reports whether a transaction of this type may be filed
// under a category of the given type.
func (t TransactionType) MatchesCategoryType(categoryType CategoryType) bool {
	return string(t) == string(categoryType)
}

// Transaction represents a financial transaction in the Finance Wallet system.
// Reconciled transactions are protected from deletion until unreconciled.
type Transaction struct {
	ID           uuid.UUID
	AccountID    uuid.UUID
	CategoryID   uuid.UUID
	Amount       valueobject.TransactionAmount // Negative for expenses, positive for income
	Description  valueobject.TransactionDescription
	Type         TransactionType
	Date         valueobject.TransactionDate
	IsReconciled bool
	UserID       uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewTransaction creates a new Transaction entity. Transactions start unreconciled.
func NewTransaction(
	accountID uuid.UUID,
	categoryID uuid.UUID,
	amount valueobject.TransactionAmount,
	description valueobject.TransactionDescription,
	transactionType TransactionType,
	date valueobject.TransactionDate,
	userID uuid.UUID,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:           uuid.New(),
		AccountID:    accountID,
		CategoryID:   categoryID,
		Amount:       amount,
		Description:  description,
		Type:         transactionType,
		Date:         date,
		IsReconciled: false,
		UserID:       userID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
