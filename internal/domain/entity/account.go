// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/finance-wallet/backend/internal/domain/valueobject"
)

// Account represents a financial account in the Finance Wallet system.
// All validated fields are value objects; the struct itself is treated as
// immutable outside the account use cases.
type Account struct {
	ID        uuid.UUID
	Name      valueobject.AccountName
	Type      valueobject.AccountType
	Provider  string // Optional free text, e.g. the bank or broker name
	Balance   valueobject.AccountBalance
	Currency  valueobject.Currency
	IsActive  bool
	UserID    uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAccount creates a new Account entity. Accounts start active.
func NewAccount(
	name valueobject.AccountName,
	accountType valueobject.AccountType,
	provider string,
	balance valueobject.AccountBalance,
	currency valueobject.Currency,
	userID uuid.UUID,
) *Account {
	now := time.Now().UTC()

	return &Account{
		ID:        uuid.New(),
		Name:      name,
		Type:      accountType,
		Provider:  provider,
		Balance:   balance,
		Currency:  currency,
		IsActive:  true,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
