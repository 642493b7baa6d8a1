// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-wallet/backend/internal/application/adapter"
	"github.com/finance-wallet/backend/internal/domain/entity"
	domainerror "github.com/finance-wallet/backend/internal/domain/error"
	"github.com/finance-wallet/backend/internal/domain/valueobject"
)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	UserID      uuid.UUID
	Name        string
	Description string // Optional
	Type        string
	Color       string // Optional; blank picks a random palette color
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category creation. Fields are validated in declaration
// order and the first invalid one fails the whole operation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	name, err := valueobject.NewCategoryName(input.Name)
	if err != nil {
		return nil, err
	}

	description, err := valueobject.NewCategoryDescription(input.Description)
	if err != nil {
		return nil, err
	}

	categoryType := entity.CategoryType(input.Type)
	if !categoryType.IsValid() {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryType,
			"category type must be one of: income, expense, investment, transfer",
			domainerror.ErrInvalidCategoryType,
		)
	}

	var color valueobject.CategoryColor
	if input.Color == "" {
		color = valueobject.RandomCategoryColor()
	} else {
		color, err = valueobject.NewCategoryColor(input.Color)
		if err != nil {
			return nil, err
		}
	}

	// Check if the user already has a category with this name
	exists, err := uc.categoryRepo.NameExists(ctx, name.Value(), input.UserID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check category name existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeDuplicateCategoryName,
			"a category with this name already exists",
			domainerror.ErrDuplicateCategoryName,
		)
	}

	category := entity.NewCategory(name, description, categoryType, color, input.UserID)

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &CreateCategoryOutput{
		Category: category,
	}, nil
}
