// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/finance-wallet/backend/internal/domain/valueobject"
)

// CategoryType represents the kind of money movement a category groups.
type CategoryType string

const (
	CategoryTypeIncome     CategoryType = "income"
	CategoryTypeExpense    CategoryType = "expense"
	CategoryTypeInvestment CategoryType = "investment"
	CategoryTypeTransfer   CategoryType = "transfer"
)

// categoryTypeLabels maps each supported category type to its display label.
var categoryTypeLabels = map[CategoryType]string{
	CategoryTypeIncome:     "Income",
	CategoryTypeExpense:    "Expense",
	CategoryTypeInvestment: "Investment",
	CategoryTypeTransfer:   "Transfer",
}

// IsValid reports whether the category type is one of the supported types.
func (t CategoryType) IsValid() bool {
	_, ok := categoryTypeLabels[t]
	return ok
}

// Label returns the human-readable label for the category type.
func (t CategoryType) Label() string {
	return categoryTypeLabels[t]
}

// Category represents a transaction category in the Finance Wallet system.
// Default categories are immutable: they can be neither updated nor deleted.
type Category struct {
	ID          uuid.UUID
	Name        valueobject.CategoryName
	Description valueobject.CategoryDescription
	Type        CategoryType
	Color       valueobject.CategoryColor
	IsDefault   bool
	UserID      uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewCategory creates a new Category entity.
func NewCategory(
	name valueobject.CategoryName,
	description valueobject.CategoryDescription,
	categoryType CategoryType,
	color valueobject.CategoryColor,
	userID uuid.UUID,
) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Type:        categoryType,
		Color:       color,
		IsDefault:   false,
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
