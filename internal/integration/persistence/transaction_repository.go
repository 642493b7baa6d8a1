package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-wallet/backend/internal/application/adapter"
	"github.com/finance-wallet/backend/internal/domain/entity"
	domainerror "github.com/finance-wallet/backend/internal/domain/error"
	"github.com/finance-wallet/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction in the database.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Create(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByIDAndUser retrieves a transaction scoped to its owner.
func (r *transactionRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity()
}

// FindByUser retrieves all transactions for a given user, newest first.
func (r *transactionRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toTransactionEntities(transactionModels)
}

// FindByAccount retrieves all transactions for a given account and user.
func (r *transactionRepository) FindByAccount(ctx context.Context, accountID, userID uuid.UUID) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("account_id = ? AND user_id = ?", accountID, userID).
		Order("date DESC, created_at DESC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toTransactionEntities(transactionModels)
}

func toTransactionEntities(transactionModels []model.TransactionModel) ([]*entity.Transaction, error) {
	transactions := make([]*entity.Transaction, len(transactionModels))
	for i, tm := range transactionModels {
		transaction, err := tm.ToEntity()
		if err != nil {
			return nil, err
		}
		transactions[i] = transaction
	}
	return transactions, nil
}

// AccountExists checks whether the account exists and belongs to the user.
func (r *transactionRepository) AccountExists(ctx context.Context, accountID, userID uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ? AND user_id = ?", accountID, userID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// HasSufficientBalance checks whether the account can absorb the given
// (negative) amount. The available balance is the account's balance plus the
// sum of its transaction amounts, optionally excluding one transaction. Both
// reads happen in the same database transaction so the check sees a
// consistent snapshot.
func (r *transactionRepository) HasSufficientBalance(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, excludeTransactionID *uuid.UUID) (bool, error) {
	var sufficient bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var accountModel model.AccountModel
		if result := tx.Where("id = ?", accountID).First(&accountModel); result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return domainerror.ErrAccountNotFound
			}
			return result.Error
		}

		query := tx.Model(&model.TransactionModel{}).
			Where("account_id = ?", accountID)
		if excludeTransactionID != nil {
			query = query.Where("id <> ?", *excludeTransactionID)
		}

		var sum decimal.NullDecimal
		if result := query.Select("SUM(amount)").Scan(&sum); result.Error != nil {
			return result.Error
		}

		available := accountModel.Balance
		if sum.Valid {
			available = available.Add(sum.Decimal)
		}
		sufficient = available.Add(amount).GreaterThanOrEqual(decimal.Zero)
		return nil
	})
	if err != nil {
		return false, err
	}
	return sufficient, nil
}

// Update updates an existing transaction in the database.
func (r *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Save(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a transaction from the database.
func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.TransactionModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// MarkAsReconciled sets the reconciled flag on the transaction.
func (r *transactionRepository) MarkAsReconciled(ctx context.Context, id uuid.UUID) error {
	return r.setReconciled(ctx, id, true)
}

// MarkAsUnreconciled clears the reconciled flag on the transaction.
func (r *transactionRepository) MarkAsUnreconciled(ctx context.Context, id uuid.UUID) error {
	return r.setReconciled(ctx, id, false)
}

func (r *transactionRepository) setReconciled(ctx context.Context, id uuid.UUID, reconciled bool) error {
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("id = ?", id).
		Update("is_reconciled", reconciled)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTransactionNotFound
	}
	return nil
}
