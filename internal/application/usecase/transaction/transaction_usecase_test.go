// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-wallet/backend/internal/domain/entity"
	domainerror "github.com/finance-wallet/backend/internal/domain/error"
	"github.com/finance-wallet/backend/internal/domain/valueobject"
)

// fakeAccount is the slice of account state the transaction repository needs.
type fakeAccount struct {
	userID  uuid.UUID
	balance decimal.Decimal
}

// fakeTransactionRepository is an in-memory adapter.TransactionRepository.
// Balance sufficiency is computed the same way the persistence layer does it:
// account balance plus the sum of the account's transaction amounts.
type fakeTransactionRepository struct {
	transactions map[uuid.UUID]*entity.Transaction
	accounts     map[uuid.UUID]fakeAccount
}

func newFakeTransactionRepository() *fakeTransactionRepository {
	return &fakeTransactionRepository{
		transactions: make(map[uuid.UUID]*entity.Transaction),
		accounts:     make(map[uuid.UUID]fakeAccount),
	}
}

func (r *fakeTransactionRepository) addAccount(userID uuid.UUID, balance float64) uuid.UUID {
	id := uuid.New()
	r.accounts[id] = fakeAccount{userID: userID, balance: decimal.NewFromFloat(balance)}
	return id
}

func (r *fakeTransactionRepository) Create(_ context.Context, transaction *entity.Transaction) error {
	copied := *transaction
	r.transactions[transaction.ID] = &copied
	return nil
}

func (r *fakeTransactionRepository) FindByIDAndUser(_ context.Context, id, userID uuid.UUID) (*entity.Transaction, error) {
	transaction, ok := r.transactions[id]
	if !ok || transaction.UserID != userID {
		return nil, domainerror.ErrTransactionNotFound
	}
	copied := *transaction
	return &copied, nil
}

func (r *fakeTransactionRepository) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	var result []*entity.Transaction
	for _, transaction := range r.transactions {
		if transaction.UserID == userID {
			copied := *transaction
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeTransactionRepository) FindByAccount(_ context.Context, accountID, userID uuid.UUID) ([]*entity.Transaction, error) {
	var result []*entity.Transaction
	for _, transaction := range r.transactions {
		if transaction.AccountID == accountID && transaction.UserID == userID {
			copied := *transaction
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeTransactionRepository) AccountExists(_ context.Context, accountID, userID uuid.UUID) (bool, error) {
	account, ok := r.accounts[accountID]
	return ok && account.userID == userID, nil
}

func (r *fakeTransactionRepository) HasSufficientBalance(_ context.Context, accountID uuid.UUID, amount decimal.Decimal, excludeTransactionID *uuid.UUID) (bool, error) {
	account, ok := r.accounts[accountID]
	if !ok {
		return false, nil
	}
	available := account.balance
	for _, transaction := range r.transactions {
		if transaction.AccountID != accountID {
			continue
		}
		if excludeTransactionID != nil && transaction.ID == *excludeTransactionID {
			continue
		}
		available = available.Add(transaction.Amount.Value())
	}
	return available.Add(amount).GreaterThanOrEqual(decimal.Zero), nil
}

func (r *fakeTransactionRepository) Update(_ context.Context, transaction *entity.Transaction) error {
	copied := *transaction
	r.transactions[transaction.ID] = &copied
	return nil
}

func (r *fakeTransactionRepository) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.transactions, id)
	return nil
}

func (r *fakeTransactionRepository) MarkAsReconciled(_ context.Context, id uuid.UUID) error {
	transaction, ok := r.transactions[id]
	if !ok {
		return domainerror.ErrTransactionNotFound
	}
	transaction.IsReconciled = true
	return nil
}

func (r *fakeTransactionRepository) MarkAsUnreconciled(_ context.Context, id uuid.UUID) error {
	transaction, ok := r.transactions[id]
	if !ok {
		return domainerror.ErrTransactionNotFound
	}
	transaction.IsReconciled = false
	return nil
}

// fakeCategoryRepository backs the category lookups of the transaction use cases.
type fakeCategoryRepository struct {
	categories map[uuid.UUID]*entity.Category
}

func newFakeCategoryRepository() *fakeCategoryRepository {
	return &fakeCategoryRepository{categories: make(map[uuid.UUID]*entity.Category)}
}

func (r *fakeCategoryRepository) addCategory(t *testing.T, userID uuid.UUID, name string, categoryType entity.CategoryType) uuid.UUID {
	t.Helper()
	categoryName, err := valueobject.NewCategoryName(name)
	if err != nil {
		t.Fatalf("failed to build category name: %v", err)
	}
	color, err := valueobject.NewCategoryColor("")
	if err != nil {
		t.Fatalf("failed to build category color: %v", err)
	}
	category := entity.NewCategory(categoryName, valueobject.CategoryDescription{}, categoryType, color, userID)
	r.categories[category.ID] = category
	return category.ID
}

func (r *fakeCategoryRepository) Create(_ context.Context, category *entity.Category) error {
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepository) FindByIDAndUser(_ context.Context, id, userID uuid.UUID) (*entity.Category, error) {
	category, ok := r.categories[id]
	if !ok || category.UserID != userID {
		return nil, domainerror.ErrCategoryNotFound
	}
	return category, nil
}

func (r *fakeCategoryRepository) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	var result []*entity.Category
	for _, category := range r.categories {
		if category.UserID == userID {
			result = append(result, category)
		}
	}
	return result, nil
}

func (r *fakeCategoryRepository) NameExists(_ context.Context, name string, userID uuid.UUID, _ *uuid.UUID) (bool, error) {
	for _, category := range r.categories {
		if category.UserID == userID && category.Name.Value() == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCategoryRepository) IsInUse(_ context.Context, _ uuid.UUID) (bool, error) {
	return false, nil
}

func (r *fakeCategoryRepository) Update(_ context.Context, category *entity.Category) error {
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.categories, id)
	return nil
}

func floatPtr(f float64) *float64 { return &f }

func TestCreateTransactionUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	setup := func(balance float64) (*fakeTransactionRepository, *fakeCategoryRepository, uuid.UUID, uuid.UUID) {
		txnRepo := newFakeTransactionRepository()
		catRepo := newFakeCategoryRepository()
		accountID := txnRepo.addAccount(userID, balance)
		categoryID := catRepo.addCategory(t, userID, "Groceries", entity.CategoryTypeExpense)
		return txnRepo, catRepo, accountID, categoryID
	}

	t.Run("creates an unreconciled transaction", func(t *testing.T) {
		txnRepo, catRepo, accountID, categoryID := setup(100)
		uc := NewCreateTransactionUseCase(txnRepo, catRepo)

		output, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:      userID,
			AccountID:   accountID,
			CategoryID:  categoryID,
			Amount:      -42.50,
			Description: "Weekly shopping",
			Type:        "expense",
			Date:        "2024-03-10",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Transaction.IsReconciled {
			t.Error("expected new transactions to start unreconciled")
		}
		if output.Transaction.Date.DateString() != "2024-03-10" {
			t.Errorf("expected date preserved, got %q", output.Transaction.Date.DateString())
		}
	})

	t.Run("unknown account", func(t *testing.T) {
		txnRepo, catRepo, _, categoryID := setup(100)
		uc := NewCreateTransactionUseCase(txnRepo, catRepo)

		_, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:      userID,
			AccountID:   uuid.New(),
			CategoryID:  categoryID,
			Amount:      10,
			Description: "Refund",
			Type:        "expense",
			Date:        "2024-03-10",
		})
		if !errors.Is(err, domainerror.ErrAccountNotFoundForTransaction) {
			t.Fatalf("expected ErrAccountNotFoundForTransaction, got %v", err)
		}
	})

	t.Run("category type must match transaction type", func(t *testing.T) {
		txnRepo, catRepo, accountID, categoryID := setup(100)
		uc := NewCreateTransactionUseCase(txnRepo, catRepo)

		_, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:      userID,
			AccountID:   accountID,
			CategoryID:  categoryID,
			Amount:      500,
			Description: "Salary",
			Type:        "income",
			Date:        "2024-03-10",
		})
		if !errors.Is(err, domainerror.ErrCategoryTypeMismatch) {
			t.Fatalf("expected ErrCategoryTypeMismatch, got %v", err)
		}
	})

	t.Run("negative amount beyond the balance", func(t *testing.T) {
		txnRepo, catRepo, accountID, categoryID := setup(50)
		uc := NewCreateTransactionUseCase(txnRepo, catRepo)

		_, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:      userID,
			AccountID:   accountID,
			CategoryID:  categoryID,
			Amount:      -50.01,
			Description: "Weekly shopping",
			Type:        "expense",
			Date:        "2024-03-10",
		})
		if !errors.Is(err, domainerror.ErrInsufficientBalance) {
			t.Fatalf("expected ErrInsufficientBalance, got %v", err)
		}
		if len(txnRepo.transactions) != 0 {
			t.Error("expected nothing persisted on failure")
		}
	})

	t.Run("negative amount exactly matching the balance", func(t *testing.T) {
		txnRepo, catRepo, accountID, categoryID := setup(50)
		uc := NewCreateTransactionUseCase(txnRepo, catRepo)

		_, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:      userID,
			AccountID:   accountID,
			CategoryID:  categoryID,
			Amount:      -50,
			Description: "Weekly shopping",
			Type:        "expense",
			Date:        "2024-03-10",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("empty description", func(t *testing.T) {
		txnRepo, catRepo, accountID, categoryID := setup(100)
		uc := NewCreateTransactionUseCase(txnRepo, catRepo)

		_, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:      userID,
			AccountID:   accountID,
			CategoryID:  categoryID,
			Amount:      10,
			Description: "   ",
			Type:        "expense",
			Date:        "2024-03-10",
		})
		if !errors.Is(err, domainerror.ErrTransactionDescriptionRequired) {
			t.Fatalf("expected ErrTransactionDescriptionRequired, got %v", err)
		}
	})
}

func TestUpdateTransactionUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	seed := func(t *testing.T, balance, amount float64) (*fakeTransactionRepository, *fakeCategoryRepository, *entity.Transaction) {
		t.Helper()
		txnRepo := newFakeTransactionRepository()
		catRepo := newFakeCategoryRepository()
		accountID := txnRepo.addAccount(userID, balance)
		categoryID := catRepo.addCategory(t, userID, "Groceries", entity.CategoryTypeExpense)

		create := NewCreateTransactionUseCase(txnRepo, catRepo)
		output, err := create.Execute(ctx, CreateTransactionInput{
			UserID:      userID,
			AccountID:   accountID,
			CategoryID:  categoryID,
			Amount:      amount,
			Description: "Weekly shopping",
			Type:        "expense",
			Date:        "2024-03-10",
		})
		if err != nil {
			t.Fatalf("failed to seed transaction: %v", err)
		}
		return txnRepo, catRepo, output.Transaction
	}

	t.Run("updates the amount", func(t *testing.T) {
		txnRepo, catRepo, transaction := seed(t, 100, 20)
		uc := NewUpdateTransactionUseCase(txnRepo, catRepo)

		output, err := uc.Execute(ctx, UpdateTransactionInput{
			TransactionID: transaction.ID,
			UserID:        userID,
			Amount:        floatPtr(-30),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Transaction.Amount.Float64() != -30 {
			t.Errorf("expected amount -30, got %v", output.Transaction.Amount.Float64())
		}
		if output.Transaction.Description.Value() != "Weekly shopping" {
			t.Errorf("expected description unchanged, got %q", output.Transaction.Description.Value())
		}
	})

	t.Run("positive to negative beyond the balance leaves the transaction unmodified", func(t *testing.T) {
		txnRepo, catRepo, transaction := seed(t, 100, 20)
		uc := NewUpdateTransactionUseCase(txnRepo, catRepo)

		// Available is 100 + 20 = 120; excluding the edited transaction
		// leaves 100, so -100.01 must be rejected.
		_, err := uc.Execute(ctx, UpdateTransactionInput{
			TransactionID: transaction.ID,
			UserID:        userID,
			Amount:        floatPtr(-100.01),
		})
		if !errors.Is(err, domainerror.ErrInsufficientBalance) {
			t.Fatalf("expected ErrInsufficientBalance, got %v", err)
		}

		stored := txnRepo.transactions[transaction.ID]
		if stored.Amount.Float64() != 20 {
			t.Errorf("expected stored amount unchanged, got %v", stored.Amount.Float64())
		}
	})

	t.Run("edited transaction is excluded from its own running balance", func(t *testing.T) {
		txnRepo, catRepo, transaction := seed(t, 100, -80)
		uc := NewUpdateTransactionUseCase(txnRepo, catRepo)

		// Without excluding itself the available balance would be 20 and a
		// -90 amount would be rejected. Excluding it leaves 100.
		_, err := uc.Execute(ctx, UpdateTransactionInput{
			TransactionID: transaction.ID,
			UserID:        userID,
			Amount:        floatPtr(-90),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown transaction", func(t *testing.T) {
		txnRepo, catRepo, _ := seed(t, 100, 20)
		uc := NewUpdateTransactionUseCase(txnRepo, catRepo)

		_, err := uc.Execute(ctx, UpdateTransactionInput{
			TransactionID: uuid.New(),
			UserID:        userID,
			Amount:        floatPtr(10),
		})
		if !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Fatalf("expected ErrTransactionNotFound, got %v", err)
		}
	})

	t.Run("type change re-checks the category", func(t *testing.T) {
		txnRepo, catRepo, transaction := seed(t, 100, 20)
		uc := NewUpdateTransactionUseCase(txnRepo, catRepo)

		newType := "income"
		_, err := uc.Execute(ctx, UpdateTransactionInput{
			TransactionID: transaction.ID,
			UserID:        userID,
			Type:          &newType,
		})
		if !errors.Is(err, domainerror.ErrCategoryTypeMismatch) {
			t.Fatalf("expected ErrCategoryTypeMismatch, got %v", err)
		}
	})

	t.Run("moving to a nonexistent account", func(t *testing.T) {
		txnRepo, catRepo, transaction := seed(t, 100, 20)
		uc := NewUpdateTransactionUseCase(txnRepo, catRepo)

		otherAccount := uuid.New()
		_, err := uc.Execute(ctx, UpdateTransactionInput{
			TransactionID: transaction.ID,
			UserID:        userID,
			AccountID:     &otherAccount,
		})
		if !errors.Is(err, domainerror.ErrAccountNotFoundForTransaction) {
			t.Fatalf("expected ErrAccountNotFoundForTransaction, got %v", err)
		}
	})
}

func TestDeleteAndReconcileTransaction(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	seed := func(t *testing.T) (*fakeTransactionRepository, *entity.Transaction) {
		t.Helper()
		txnRepo := newFakeTransactionRepository()
		catRepo := newFakeCategoryRepository()
		accountID := txnRepo.addAccount(userID, 100)
		categoryID := catRepo.addCategory(t, userID, "Groceries", entity.CategoryTypeExpense)

		create := NewCreateTransactionUseCase(txnRepo, catRepo)
		output, err := create.Execute(ctx, CreateTransactionInput{
			UserID:      userID,
			AccountID:   accountID,
			CategoryID:  categoryID,
			Amount:      -25,
			Description: "Weekly shopping",
			Type:        "expense",
			Date:        "2024-03-10",
		})
		if err != nil {
			t.Fatalf("failed to seed transaction: %v", err)
		}
		return txnRepo, output.Transaction
	}

	t.Run("deletes an unreconciled transaction", func(t *testing.T) {
		txnRepo, transaction := seed(t)
		uc := NewDeleteTransactionUseCase(txnRepo)

		output, err := uc.Execute(ctx, DeleteTransactionInput{TransactionID: transaction.ID, UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Success {
			t.Error("expected success")
		}
	})

	t.Run("reconcile then delete fails, unreconcile then delete succeeds", func(t *testing.T) {
		txnRepo, transaction := seed(t)
		reconcile := NewReconcileTransactionUseCase(txnRepo)
		del := NewDeleteTransactionUseCase(txnRepo)

		input := ReconcileTransactionInput{TransactionID: transaction.ID, UserID: userID}
		output, err := reconcile.MarkAsReconciled(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Transaction.IsReconciled {
			t.Error("expected transaction to be reconciled")
		}

		_, err = del.Execute(ctx, DeleteTransactionInput{TransactionID: transaction.ID, UserID: userID})
		if !errors.Is(err, domainerror.ErrCannotDeleteReconciledTransaction) {
			t.Fatalf("expected ErrCannotDeleteReconciledTransaction, got %v", err)
		}
		if _, ok := txnRepo.transactions[transaction.ID]; !ok {
			t.Fatal("expected transaction untouched")
		}

		output, err = reconcile.MarkAsUnreconciled(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Transaction.IsReconciled {
			t.Error("expected transaction to be unreconciled")
		}

		if _, err := del.Execute(ctx, DeleteTransactionInput{TransactionID: transaction.ID, UserID: userID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := txnRepo.transactions[transaction.ID]; ok {
			t.Error("expected transaction removed")
		}
	})

	t.Run("reconciling another user's transaction", func(t *testing.T) {
		txnRepo, transaction := seed(t)
		reconcile := NewReconcileTransactionUseCase(txnRepo)

		_, err := reconcile.MarkAsReconciled(ctx, ReconcileTransactionInput{TransactionID: transaction.ID, UserID: uuid.New()})
		if !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Fatalf("expected ErrTransactionNotFound, got %v", err)
		}
	})
}
