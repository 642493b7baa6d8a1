// Package account contains account-related use cases.
package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-wallet/backend/internal/application/adapter"
	"github.com/finance-wallet/backend/internal/domain/entity"
	domainerror "github.com/finance-wallet/backend/internal/domain/error"
	"github.com/finance-wallet/backend/internal/domain/valueobject"
)

// CreateAccountInput represents the input for account creation.
type CreateAccountInput struct {
	UserID   uuid.UUID
	Name     string
	Type     string
	Provider string // Optional free text
	Balance  float64
	Currency string
}

// CreateAccountOutput represents the output of account creation.
type CreateAccountOutput struct {
	Account *entity.Account
}

// CreateAccountUseCase handles account creation logic.
type CreateAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewCreateAccountUseCase creates a new CreateAccountUseCase instance.
func NewCreateAccountUseCase(accountRepo adapter.AccountRepository) *CreateAccountUseCase {
	return &CreateAccountUseCase{
		accountRepo: accountRepo,
	}
}

// Execute performs the account creation. Fields are validated in declaration
// order and the first invalid one fails the whole operation.
func (uc *CreateAccountUseCase) Execute(ctx context.Context, input CreateAccountInput) (*CreateAccountOutput, error) {
	name, err := valueobject.NewAccountName(input.Name)
	if err != nil {
		return nil, err
	}

	accountType, err := valueobject.ParseAccountType(input.Type)
	if err != nil {
		return nil, err
	}

	balance, err := valueobject.NewAccountBalanceFromFloat(input.Balance)
	if err != nil {
		return nil, err
	}

	currency, err := valueobject.NewCurrency(input.Currency)
	if err != nil {
		return nil, err
	}

	// Check if the user already has an active account with this name
	exists, err := uc.accountRepo.NameExists(ctx, name.Value(), input.UserID, nil)
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

	account := entity.NewAccount(name, accountType, input.Provider, balance, currency, input.UserID)

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return &CreateAccountOutput{
		Account: account,
	}, nil
}
