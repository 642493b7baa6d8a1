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
)

// ReconcileTransactionInput represents the input for toggling reconciliation.
type ReconcileTransactionInput struct {
	TransactionID uuid.UUID
	UserID        uuid.UUID
}

// ReconcileTransactionOutput represents the output of a reconciliation toggle.
type ReconcileTransactionOutput struct {
	Transaction *entity.Transaction
}

// ReconcileTransactionUseCase toggles the reconciled flag on a transaction.
// Reconciliation has no other side effects; balances are not recomputed.
type ReconcileTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewReconcileTransactionUseCase creates a new ReconcileTransactionUseCase instance.
func NewReconcileTransactionUseCase(transactionRepo adapter.TransactionRepository) *ReconcileTransactionUseCase {
	return &ReconcileTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// MarkAsReconciled marks the transaction as confirmed against an external
// statement, protecting it from deletion.
func (uc *ReconcileTransactionUseCase) MarkAsReconciled(ctx context.Context, input ReconcileTransactionInput) (*ReconcileTransactionOutput, error) {
	return uc.toggle(ctx, input, true)
}

// MarkAsUnreconciled clears the reconciled flag, making the transaction
// deletable again.
func (uc *ReconcileTransactionUseCase) MarkAsUnreconciled(ctx context.Context, input ReconcileTransactionInput) (*ReconcileTransactionOutput, error) {
	return uc.toggle(ctx, input, false)
}

func (uc *ReconcileTransactionUseCase) toggle(ctx context.Context, input ReconcileTransactionInput, reconciled bool) (*ReconcileTransactionOutput, error) {
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

	if reconciled {
		err = uc.transactionRepo.MarkAsReconciled(ctx, transaction.ID)
	} else {
		err = uc.transactionRepo.MarkAsUnreconciled(ctx, transaction.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update reconciliation state: %w", err)
	}

	transaction.IsReconciled = reconciled

	return &ReconcileTransactionOutput{
		Transaction: transaction,
	}, nil
}
