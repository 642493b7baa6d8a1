// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-wallet/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByIDAndUser retrieves a transaction scoped to its owner.
	// Returns domainerror.ErrTransactionNotFound when absent.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Transaction, error)

	// FindByUser retrieves all transactions for a given user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error)

	// FindByAccount retrieves all transactions for a given account and user.
	FindByAccount(ctx context.Context, accountID, userID uuid.UUID) ([]*entity.Transaction, error)

	// AccountExists checks whether the account exists and belongs to the user.
	AccountExists(ctx context.Context, accountID, userID uuid.UUID) (bool, error)

	// HasSufficientBalance checks whether the account can absorb the given
	// (negative) amount without its available balance going below zero. A
	// non-nil excludeTransactionID leaves that transaction out of the running
	// balance, so re-checking an edited transaction does not double-count it.
	HasSufficientBalance(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, excludeTransactionID *uuid.UUID) (bool, error)

	// Update updates an existing transaction in the database.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// MarkAsReconciled sets the reconciled flag on the transaction.
	MarkAsReconciled(ctx context.Context, id uuid.UUID) error

	// MarkAsUnreconciled clears the reconciled flag on the transaction.
	MarkAsUnreconciled(ctx context.Context, id uuid.UUID) error
}
