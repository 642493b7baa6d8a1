// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/finance-wallet/backend/internal/domain/entity"
	domainerror "github.com/finance-wallet/backend/internal/domain/error"
)

// fakeCategoryRepository is an in-memory adapter.CategoryRepository for tests.
type fakeCategoryRepository struct {
	categories map[uuid.UUID]*entity.Category
	inUse      map[uuid.UUID]bool
}

func newFakeCategoryRepository() *fakeCategoryRepository {
	return &fakeCategoryRepository{
		categories: make(map[uuid.UUID]*entity.Category),
		inUse:      make(map[uuid.UUID]bool),
	}
}

func (r *fakeCategoryRepository) Create(_ context.Context, category *entity.Category) error {
	copied := *category
	r.categories[category.ID] = &copied
	return nil
}

func (r *fakeCategoryRepository) FindByIDAndUser(_ context.Context, id, userID uuid.UUID) (*entity.Category, error) {
	category, ok := r.categories[id]
	if !ok || category.UserID != userID {
		return nil, domainerror.ErrCategoryNotFound
	}
	copied := *category
	return &copied, nil
}

func (r *fakeCategoryRepository) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	var result []*entity.Category
	for _, category := range r.categories {
		if category.UserID == userID {
			copied := *category
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeCategoryRepository) NameExists(_ context.Context, name string, userID uuid.UUID, excludeID *uuid.UUID) (bool, error) {
	for _, category := range r.categories {
		if excludeID != nil && category.ID == *excludeID {
			continue
		}
		if category.UserID == userID && category.Name.Value() == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCategoryRepository) IsInUse(_ context.Context, categoryID uuid.UUID) (bool, error) {
	return r.inUse[categoryID], nil
}

func (r *fakeCategoryRepository) Update(_ context.Context, category *entity.Category) error {
	copied := *category
	r.categories[category.ID] = &copied
	return nil
}

func (r *fakeCategoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.categories, id)
	return nil
}

func seedCategory(t *testing.T, repo *fakeCategoryRepository, userID uuid.UUID, name string, isDefault bool) *entity.Category {
	t.Helper()
	uc := NewCreateCategoryUseCase(repo)
	output, err := uc.Execute(context.Background(), CreateCategoryInput{
		UserID: userID,
		Name:   name,
		Type:   "expense",
	})
	if err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}
	if isDefault {
		repo.categories[output.Category.ID].IsDefault = true
		output.Category.IsDefault = true
	}
	return output.Category
}

func TestCreateCategoryUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("creates a category with explicit color", func(t *testing.T) {
		repo := newFakeCategoryRepository()
		uc := NewCreateCategoryUseCase(repo)

		output, err := uc.Execute(ctx, CreateCategoryInput{
			UserID:      userID,
			Name:        "Groceries",
			Description: "Weekly food shopping",
			Type:        "expense",
			Color:       "#ff0000",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Category.Color.Hex() != "#FF0000" {
			t.Errorf("expected normalized color, got %q", output.Category.Color.Hex())
		}
		if output.Category.IsDefault {
			t.Error("expected user categories to not be default")
		}
	})

	t.Run("blank color gets a palette color", func(t *testing.T) {
		repo := newFakeCategoryRepository()
		uc := NewCreateCategoryUseCase(repo)

		output, err := uc.Execute(ctx, CreateCategoryInput{
			UserID: userID,
			Name:   "Groceries",
			Type:   "expense",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Category.Color.Hex() == "" {
			t.Error("expected a color to be assigned")
		}
	})

	t.Run("duplicate name fails", func(t *testing.T) {
		repo := newFakeCategoryRepository()
		seedCategory(t, repo, userID, "Groceries", false)
		uc := NewCreateCategoryUseCase(repo)

		_, err := uc.Execute(ctx, CreateCategoryInput{
			UserID: userID,
			Name:   "Groceries",
			Type:   "income",
		})
		if !errors.Is(err, domainerror.ErrDuplicateCategoryName) {
			t.Fatalf("expected ErrDuplicateCategoryName, got %v", err)
		}
	})

	t.Run("invalid type", func(t *testing.T) {
		repo := newFakeCategoryRepository()
		uc := NewCreateCategoryUseCase(repo)

		_, err := uc.Execute(ctx, CreateCategoryInput{
			UserID: userID,
			Name:   "Groceries",
			Type:   "savings",
		})
		if !errors.Is(err, domainerror.ErrInvalidCategoryType) {
			t.Fatalf("expected ErrInvalidCategoryType, got %v", err)
		}
	})
}

func TestUpdateCategoryUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("default categories are immutable", func(t *testing.T) {
		repo := newFakeCategoryRepository()
		category := seedCategory(t, repo, userID, "Other", true)
		uc := NewUpdateCategoryUseCase(repo)

		name := "Renamed"
		_, err := uc.Execute(ctx, UpdateCategoryInput{
			CategoryID: category.ID,
			UserID:     userID,
			Name:       &name,
		})
		if !errors.Is(err, domainerror.ErrCannotUpdateDefaultCategory) {
			t.Fatalf("expected ErrCannotUpdateDefaultCategory, got %v", err)
		}
	})

	t.Run("partial update keeps unspecified fields", func(t *testing.T) {
		repo := newFakeCategoryRepository()
		category := seedCategory(t, repo, userID, "Groceries", false)
		uc := NewUpdateCategoryUseCase(repo)

		color := "#00FF00"
		output, err := uc.Execute(ctx, UpdateCategoryInput{
			CategoryID: category.ID,
			UserID:     userID,
			Color:      &color,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Category.Name.Value() != "Groceries" {
			t.Errorf("expected name unchanged, got %q", output.Category.Name.Value())
		}
		if output.Category.Color.Hex() != "#00FF00" {
			t.Errorf("expected updated color, got %q", output.Category.Color.Hex())
		}
	})

	t.Run("rename collision excluding self", func(t *testing.T) {
		repo := newFakeCategoryRepository()
		seedCategory(t, repo, userID, "Groceries", false)
		second := seedCategory(t, repo, userID, "Transport", false)
		uc := NewUpdateCategoryUseCase(repo)

		name := "Groceries"
		_, err := uc.Execute(ctx, UpdateCategoryInput{
			CategoryID: second.ID,
			UserID:     userID,
			Name:       &name,
		})
		if !errors.Is(err, domainerror.ErrDuplicateCategoryName) {
			t.Fatalf("expected ErrDuplicateCategoryName, got %v", err)
		}
	})
}

func TestDeleteCategoryUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("deletes an unused non-default category", func(t *testing.T) {
		repo := newFakeCategoryRepository()
		category := seedCategory(t, repo, userID, "Groceries", false)
		uc := NewDeleteCategoryUseCase(repo)

		output, err := uc.Execute(ctx, DeleteCategoryInput{CategoryID: category.ID, UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Success {
			t.Error("expected success")
		}
		if _, ok := repo.categories[category.ID]; ok {
			t.Error("expected category removed")
		}
	})

	t.Run("default category cannot be deleted even when unused", func(t *testing.T) {
		repo := newFakeCategoryRepository()
		category := seedCategory(t, repo, userID, "Other", true)
		uc := NewDeleteCategoryUseCase(repo)

		_, err := uc.Execute(ctx, DeleteCategoryInput{CategoryID: category.ID, UserID: userID})
		if !errors.Is(err, domainerror.ErrCannotDeleteDefaultCategory) {
			t.Fatalf("expected ErrCannotDeleteDefaultCategory, got %v", err)
		}
	})

	t.Run("category referenced by transactions cannot be deleted", func(t *testing.T) {
		repo := newFakeCategoryRepository()
		category := seedCategory(t, repo, userID, "Groceries", false)
		repo.inUse[category.ID] = true
		uc := NewDeleteCategoryUseCase(repo)

		_, err := uc.Execute(ctx, DeleteCategoryInput{CategoryID: category.ID, UserID: userID})
		if !errors.Is(err, domainerror.ErrCannotDeleteCategoryInUse) {
			t.Fatalf("expected ErrCannotDeleteCategoryInUse, got %v", err)
		}
		if _, ok := repo.categories[category.ID]; !ok {
			t.Error("expected category untouched")
		}
	})

	t.Run("category of another user is not found", func(t *testing.T) {
		repo := newFakeCategoryRepository()
		category := seedCategory(t, repo, userID, "Groceries", false)
		uc := NewDeleteCategoryUseCase(repo)

		_, err := uc.Execute(ctx, DeleteCategoryInput{CategoryID: category.ID, UserID: uuid.New()})
		if !errors.Is(err, domainerror.ErrCategoryNotFound) {
			t.Fatalf("expected ErrCategoryNotFound, got %v", err)
		}
	})
}
