// Package transaction contains transaction-related use cases.
package transaction

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

// UpdateTransactionInput represents the input for transaction update. Nil
// fields are left untouched.
type UpdateTransactionInput struct {
	TransactionID uuid.UUID
	UserID        uuid.UUID
	AccountID     *uuid.UUID
	CategoryID    *uuid.UUID
	Amount        *float64
	Description   *string
	Type          *string
	Date          *string
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

// Execute performs the transaction update. Changed fields pass through the
// same value objects used at creation. An amount change to a negative value
// re-checks balance sufficiency with the edited transaction excluded from the
// running balance, so it is not double-counted.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	transaction, err := uc.transactionRepo.FindByIDAndUser(ctx, input.TransactionID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	if input.AccountID != nil && *input.AccountID != transaction.AccountID {
		accountExists, err := uc.transactionRepo.AccountExists(ctx, *input.AccountID, input.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to check account existence: %w", err)
		}
		if !accountExists {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTxnAccountNotFound,
				"account not found",
				domainerror.ErrAccountNotFoundForTransaction,
			)
		}
		transaction.AccountID = *input.AccountID
	}

	if input.Description != nil {
		description, err := valueobject.NewTransactionDescription(*input.Description)
		if err != nil {
			return nil, err
		}
		transaction.Description = description
	}

	if input.Type != nil {
		transactionType := entity.TransactionType(*input.Type)
		if !transactionType.IsValid() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionType,
				"transaction type must be one of: income, expense, investment, transfer",
				domainerror.ErrInvalidTransactionType,
			)
		}
		transaction.Type = transactionType
	}

	if input.Date != nil {
		date, err := valueobject.ParseTransactionDate(*input.Date)
		if err != nil {
			return nil, err
		}
		transaction.Date = date
	}

	// A category or type change re-verifies ownership and the type match
	if input.CategoryID != nil || input.Type != nil {
		categoryID := transaction.CategoryID
		if input.CategoryID != nil {
			categoryID = *input.CategoryID
		}

		category, err := uc.categoryRepo.FindByIDAndUser(ctx, categoryID, input.UserID)
		if err != nil {
			if errors.Is(err, domainerror.ErrCategoryNotFound) {
				return nil, domainerror.NewTransactionError(
					domainerror.ErrCodeTxnCategoryNotFound,
					"category not found",
					domainerror.ErrCategoryNotFoundForTransaction,
				)
			}
			return nil, fmt.Errorf("failed to find category: %w", err)
		}
		if !transaction.Type.MatchesCategoryType(category.Type) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeCategoryTypeMismatch,
				fmt.Sprintf("a %s transaction cannot use a %s category", transaction.Type, category.Type),
				domainerror.ErrCategoryTypeMismatch,
			)
		}

		transaction.CategoryID = categoryID
	}

	if input.Amount != nil {
		amount, err := valueobject.NewTransactionAmountFromFloat(*input.Amount)
		if err != nil {
			return nil, err
		}

		if amount.IsNegative() {
			sufficient, err := uc.transactionRepo.HasSufficientBalance(ctx, transaction.AccountID, amount.Value(), &transaction.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to check account balance: %w", err)
			}
			if !sufficient {
				return nil, domainerror.NewTransactionError(
					domainerror.ErrCodeInsufficientBalance,
					"account balance is insufficient for this expense",
					domainerror.ErrInsufficientBalance,
				)
			}
		}

		transaction.Amount = amount
	}

	transaction.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{
		Transaction: transaction,
	}, nil
}
