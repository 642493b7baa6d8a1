// Package account contains account-related use cases.
package account

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

// UpdateAccountInput represents the input for account update. Nil fields are
// left untouched; only fields explicitly present are validated and persisted.
type UpdateAccountInput struct {
	AccountID uuid.UUID
	UserID    uuid.UUID
	Name      *string
	Type      *string
	Provider  *string
	Balance   *float64
	Currency  *string
	IsActive  *bool
}

// UpdateAccountOutput represents the output of account update.
type UpdateAccountOutput struct {
	Account *entity.Account
}

// UpdateAccountUseCase handles account update logic.
type UpdateAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewUpdateAccountUseCase creates a new UpdateAccountUseCase instance.
func NewUpdateAccountUseCase(accountRepo adapter.AccountRepository) *UpdateAccountUseCase {
	return &UpdateAccountUseCase{
		accountRepo: accountRepo,
	}
}

// Execute performs the account update. Present fields pass through the same
// value objects used at creation, so update and create share one validation
// contract.
func (uc *UpdateAccountUseCase) Execute(ctx context.Context, input UpdateAccountInput) (*UpdateAccountOutput, error) {
	account, err := uc.accountRepo.FindByIDAndUser(ctx, input.AccountID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrAccountNotFound) {
			return nil, domainerror.NewAccountError(
				domainerror.ErrCodeAccountNotFound,
				"account not found",
				domainerror.ErrAccountNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	if input.Name != nil {
		name, err := valueobject.NewAccountName(*input.Name)
		if err != nil {
			return nil, err
		}

		// Re-check uniqueness excluding the account being updated
		if !name.Equals(account.Name) {
			exists, err := uc.accountRepo.NameExists(ctx, name.Value(), input.UserID, &account.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to check account name existence: %w", err)
			}
			if exists {
				return nil, domainerror.NewAccountError(
					domainerror.ErrCodeDuplicateAccountName,
					"an account with this name already exists",
					domainerror.ErrDuplicateAccountName,
				)
			}
		}

		account.Name = name
	}

	if input.Type != nil {
		accountType, err := valueobject.ParseAccountType(*input.Type)
		if err != nil {
			return nil, err
		}
		account.Type = accountType
	}

	if input.Provider != nil {
		account.Provider = *input.Provider
	}

	if input.Balance != nil {
		balance, err := valueobject.NewAccountBalanceFromFloat(*input.Balance)
		if err != nil {
			return nil, err
		}
		account.Balance = balance
	}

	if input.Currency != nil {
		currency, err := valueobject.NewCurrency(*input.Currency)
		if err != nil {
			return nil, err
		}
		account.Currency = currency
	}

	if input.IsActive != nil {
		account.IsActive = *input.IsActive
	}

	account.UpdatedAt = time.Now().UTC()

	if err := uc.accountRepo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	return &UpdateAccountOutput{
		Account: account,
	}, nil
}
