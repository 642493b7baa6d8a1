package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-wallet/backend/internal/domain/entity"
	domainerror "github.com/finance-wallet/backend/internal/domain/error"
	"github.com/finance-wallet/backend/internal/domain/valueobject"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	AccountID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Description  string          `gorm:"type:varchar(200);not null"`
	Type         string          `gorm:"type:varchar(10);not null;index"`
	Date         time.Time       `gorm:"type:timestamp;not null;index"`
	IsReconciled bool            `gorm:"not null;default:false"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Account  *AccountModel  `gorm:"foreignKey:AccountID;references:ID"`
	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity,
// re-validating stored values through the domain value objects.
func (m *TransactionModel) ToEntity() (*entity.Transaction, error) {
	amount, err := valueobject.NewTransactionAmount(m.Amount)
	if err != nil {
		return nil, err
	}

	description, err := valueobject.NewTransactionDescription(m.Description)
	if err != nil {
		return nil, err
	}

	date, err := valueobject.NewTransactionDate(m.Date)
	if err != nil {
		return nil, err
	}

	transactionType := entity.TransactionType(m.Type)
	if !transactionType.IsValid() {
		return nil, domainerror.ErrInvalidTransactionType
	}

	return &entity.Transaction{
		ID:           m.ID,
		AccountID:    m.AccountID,
		CategoryID:   m.CategoryID,
		Amount:       amount,
		Description:  description,
		Type:         transactionType,
		Date:         date,
		IsReconciled: m.IsReconciled,
		UserID:       m.UserID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}, nil
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:           transaction.ID,
		UserID:       transaction.UserID,
		AccountID:    transaction.AccountID,
		CategoryID:   transaction.CategoryID,
		Amount:       transaction.Amount.Value(),
		Description:  transaction.Description.Value(),
		Type:         string(transaction.Type),
		Date:         transaction.Date.Time(),
		IsReconciled: transaction.IsReconciled,
		CreatedAt:    transaction.CreatedAt,
		UpdatedAt:    transaction.UpdatedAt,
	}
}
