// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finance-wallet/backend/internal/application/adapter"
	"github.com/finance-wallet/backend/internal/domain/entity"
	domainerror "github.com/finance-wallet/backend/internal/domain/error"
	"github.com/finance-wallet/backend/internal/domain/valueobject"
)

// UpdateCategoryInput represents the input for category update. Nil fields are
// left untouched.
type UpdateCategoryInput struct {
	CategoryID  uuid.UUID
	UserID      uuid.UUID
	Name        *string
	Description *string
	Type        *string
	Color       *string
}

// UpdateCategoryOutput represents the output of category update.
type UpdateCategoryOutput struct {
	Category *entity.Category
}

// UpdateCategoryUseCase handles category update logic.
type UpdateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(categoryRepo adapter.CategoryRepository) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category update. Default categories are immutable.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	category, err := uc.categoryRepo.FindByIDAndUser(ctx, input.CategoryID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	if category.IsDefault {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCannotUpdateDefaultCategory,
			"default categories cannot be updated",
			domainerror.ErrCannotUpdateDefaultCategory,
		)
	}

	if input.Name != nil {
		name, err := valueobject.NewCategoryName(*input.Name)
		if err != nil {
			return nil, err
		}

		// Re-check uniqueness excluding the category being updated
		if !name.Equals(category.Name) {
			exists, err := uc.categoryRepo.NameExists(ctx, name.Value(), input.UserID, &category.ID)
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
		}

		category.Name = name
	}

	if input.Description != nil {
		description, err := valueobject.NewCategoryDescription(*input.Description)
		if err != nil {
			return nil, err
		}
		category.Description = description
	}

	if input.Type != nil {
		categoryType := entity.CategoryType(*input.Type)
		if !categoryType.IsValid() {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeInvalidCategoryType,
				"category type must be one of: income, expense, investment, transfer",
				domainerror.ErrInvalidCategoryType,
			)
		}
		category.Type = categoryType
	}

	if input.Color != nil {
		color, err := valueobject.NewCategoryColor(*input.Color)
		if err != nil {
			return nil, err
		}
		category.Color = color
	}

	category.UpdatedAt = time.Now().UTC()

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return &UpdateCategoryOutput{
		Category: category,
	}, nil
}
