// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-wallet/backend/internal/domain/entity"
	"github.com/finance-wallet/backend/internal/domain/valueobject"
)

// AccountModel represents the accounts table in the database.
type AccountModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_accounts_user_name"`
	Name      string          `gorm:"type:varchar(100);not null;uniqueIndex:idx_accounts_user_name"`
	Type      string          `gorm:"type:varchar(20);not null"`
	Provider  string          `gorm:"type:varchar(100)"`
	Balance   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Currency  string          `gorm:"type:char(3);not null"`
	IsActive  bool            `gorm:"not null;default:true"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the AccountModel.
func (AccountModel) TableName() string {
	return "accounts"
}

// ToEntity converts an AccountModel to a domain Account entity. Stored values
// pass through the same value objects used at creation, so a row that no
// longer satisfies the domain rules surfaces as an error instead of leaking
// an invalid entity into the application.
func (m *AccountModel) ToEntity() (*entity.Account, error) {
	name, err := valueobject.NewAccountName(m.Name)
	if err != nil {
		return nil, err
	}

	accountType, err := valueobject.ParseAccountType(m.Type)
	if err != nil {
		return nil, err
	}

	balance, err := valueobject.NewAccountBalance(m.Balance)
	if err != nil {
		return nil, err
	}

	currency, err := valueobject.NewCurrency(m.Currency)
	if err != nil {
		return nil, err
	}

	return &entity.Account{
		ID:        m.ID,
		Name:      name,
		Type:      accountType,
		Provider:  m.Provider,
		Balance:   balance,
		Currency:  currency,
		IsActive:  m.IsActive,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}, nil
}

// AccountFromEntity creates an AccountModel from a domain Account entity.
func AccountFromEntity(account *entity.Account) *AccountModel {
	return &AccountModel{
		ID:        account.ID,
		UserID:    account.UserID,
		Name:      account.Name.Value(),
		Type:      string(account.Type),
		Provider:  account.Provider,
		Balance:   account.Balance.Value(),
		Currency:  account.Currency.Code(),
		IsActive:  account.IsActive,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}
