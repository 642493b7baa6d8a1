package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/finance-wallet/backend/internal/domain/entity"
	domainerror "github.com/finance-wallet/backend/internal/domain/error"
	"github.com/finance-wallet/backend/internal/domain/valueobject"
)

// CategoryModel represents the categories table in the database.
type CategoryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_categories_user_name"`
	Name        string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_categories_user_name"`
	Description string    `gorm:"type:varchar(200)"`
	Type        string    `gorm:"type:varchar(10);not null;index"`
	Color       string    `gorm:"type:char(7);not null"`
	IsDefault   bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity, re-validating
// stored values through the domain value objects.
func (m *CategoryModel) ToEntity() (*entity.Category, error) {
	name, err := valueobject.NewCategoryName(m.Name)
	if err != nil {
		return nil, err
	}

	description, err := valueobject.NewCategoryDescription(m.Description)
	if err != nil {
		return nil, err
	}

	color, err := valueobject.NewCategoryColor(m.Color)
	if err != nil {
		return nil, err
	}

	categoryType := entity.CategoryType(m.Type)
	if !categoryType.IsValid() {
		return nil, domainerror.ErrInvalidCategoryType
	}

	return &entity.Category{
		ID:          m.ID,
		Name:        name,
		Description: description,
		Type:        categoryType,
		Color:       color,
		IsDefault:   m.IsDefault,
		UserID:      m.UserID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}, nil
}

// CategoryFromEntity creates a CategoryModel from a domain Category entity.
func CategoryFromEntity(category *entity.Category) *CategoryModel {
	return &CategoryModel{
		ID:          category.ID,
		UserID:      category.UserID,
		Name:        category.Name.Value(),
		Description: category.Description.Value(),
		Type:        string(category.Type),
		Color:       category.Color.Hex(),
		IsDefault:   category.IsDefault,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}
}
