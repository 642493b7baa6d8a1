// Package adapter defines interfaces that will be implemented in the integration layer.
//
// Repository implementations must make the check-then-act sequences the use cases
// perform (uniqueness check then create, balance check then create) atomic, using
// a unique index, a serializable transaction or equivalent. Alternatively they may
// surface a conflict error the use case layer translates into the corresponding
// typed domain error.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-wallet/backend/internal/domain/entity"
)

// AccountRepository defines the interface for account persistence operations.
type AccountRepository interface {
	// Create creates a new account in the database.
	Create(ctx context.Context, account *entity.Account) error

	// FindByIDAndUser retrieves an account scoped to its owner.
	// Returns domainerror.ErrAccountNotFound when absent.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Account, error)

	// FindByUser retrieves all active accounts for a given user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Account, error)

	// NameExists checks whether the user already has an active account with the
	// given name. A non-nil excludeID skips that account, for update checks.
	NameExists(ctx context.Context, name string, userID uuid.UUID, excludeID *uuid.UUID) (bool, error)

	// Update updates an existing account in the database.
	Update(ctx context.Context, account *entity.Account) error
}
