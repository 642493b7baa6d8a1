// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-wallet/backend/internal/application/adapter"
	"github.com/finance-wallet/backend/internal/domain/entity"
	domainerror "github.com/finance-wallet/backend/internal/domain/error"
	"github.com/finance-wallet/backend/internal/domain/valueobject"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID      uuid.UUID
	AccountID   uuid.UUID
	CategoryID  uuid.UUID
	Amount      float64
	Description string
	Type        string
	Date        string // ISO date, date-only strings are read as UTC midnight
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

// Execute performs the transaction creation. Fields are validated in
// declaration order; the account must exist and belong to the user, the
// category must belong to the user and match the transaction type, and
// negative amounts require the account balance to cover the expense.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	amount, err := valueobject.NewTransactionAmountFromFloat(input.Amount)
	if err != nil {
		return nil, err
	}

	description, err := valueobject.NewTransactionDescription(input.Description)
	if err != nil {
		return nil, err
	}

	transactionType := entity.TransactionType(input.Type)
	if !transactionType.IsValid() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be one of: income, expense, investment, transfer",
			domainerror.ErrInvalidTransactionType,
		)
	}

	date, err := valueobject.ParseTransactionDate(input.Date)
	if err != nil {
		return nil, err
	}

	// The account must exist and belong to the user; absence and lack of
	// ownership are indistinguishable on purpose.
	accountExists, err := uc.transactionRepo.AccountExists(ctx, input.AccountID, input.UserID)
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

	if err := uc.checkCategory(ctx, input.CategoryID, input.UserID, transactionType); err != nil {
		return nil, err
	}

	// Expenses must be covered by the account balance
	if amount.IsNegative() {
		sufficient, err := uc.transactionRepo.HasSufficientBalance(ctx, input.AccountID, amount.Value(), nil)
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

	transaction := entity.NewTransaction(
		input.AccountID,
		input.CategoryID,
		amount,
		description,
		transactionType,
		date,
		input.UserID,
	)

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{
		Transaction: transaction,
	}, nil
}

// checkCategory verifies the category belongs to the user and that its type
// matches the transaction type.
func (uc *CreateTransactionUseCase) checkCategory(
	ctx context.Context,
	categoryID, userID uuid.UUID,
	transactionType entity.TransactionType,
) error {
	category, err := uc.categoryRepo.FindByIDAndUser(ctx, categoryID, userID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeTxnCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFoundForTransaction,
			)
		}
		return fmt.Errorf("failed to find category: %w", err)
	}

	if !transactionType.MatchesCategoryType(category.Type) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeCategoryTypeMismatch,
			fmt.Sprintf("a %s transaction cannot use a %s category", transactionType, category.Type),
			domainerror.ErrCategoryTypeMismatch,
		)
	}

	return nil
}
