// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-wallet/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// FindByIDAndUser retrieves a category scoped to its owner.
	// Returns domainerror.ErrCategoryNotFound when absent.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Category, error)

	// FindByUser retrieves all categories for a given user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error)

	// NameExists checks whether the user already has a category with the given
	// name. A non-nil excludeID skips that category, for update checks.
	NameExists(ctx context.Context, name string, userID uuid.UUID, excludeID *uuid.UUID) (bool, error)

	// IsInUse checks whether any transaction references the category.
	IsInUse(ctx context.Context, categoryID uuid.UUID) (bool, error)

	// Update updates an existing category in the database.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
