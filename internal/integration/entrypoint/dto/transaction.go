package dto

import (
	"time"

	"github.com/finance-wallet/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	AccountID   string  `json:"account_id" binding:"required,uuid"`
	CategoryID  string  `json:"category_id" binding:"required,uuid"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description" binding:"required"`
	Type        string  `json:"type" binding:"required"`
	Date        string  `json:"date" binding:"required"`
}

// UpdateTransactionRequest represents the request body for transaction update.
// Absent fields are left unchanged.
type UpdateTransactionRequest struct {
	AccountID   *string  `json:"account_id,omitempty" binding:"omitempty,uuid"`
	CategoryID  *string  `json:"category_id,omitempty" binding:"omitempty,uuid"`
	Amount      *float64 `json:"amount,omitempty"`
	Description *string  `json:"description,omitempty"`
	Type        *string  `json:"type,omitempty"`
	Date        *string  `json:"date,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID           string    `json:"id"`
	AccountID    string    `json:"account_id"`
	CategoryID   string    `json:"category_id"`
	Amount       float64   `json:"amount"`
	Description  string    `json:"description"`
	Type         string    `json:"type"`
	TypeLabel    string    `json:"type_label"`
	Date         string    `json:"date"`
	DisplayDate  string    `json:"display_date"`
	IsReconciled bool      `json:"is_reconciled"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(transaction *entity.Transaction, now time.Time) TransactionResponse {
	return TransactionResponse{
		ID:           transaction.ID.String(),
		AccountID:    transaction.AccountID.String(),
		CategoryID:   transaction.CategoryID.String(),
		Amount:       transaction.Amount.Float64(),
		Description:  transaction.Description.Value(),
		Type:         string(transaction.Type),
		TypeLabel:    transaction.Type.Label(),
		Date:         transaction.Date.DateString(),
		DisplayDate:  transaction.Date.DisplayString(now),
		IsReconciled: transaction.IsReconciled,
		CreatedAt:    transaction.CreatedAt,
		UpdatedAt:    transaction.UpdatedAt,
	}
}

// ToTransactionListResponse converts a list of transactions to TransactionListResponse.
func ToTransactionListResponse(transactions []*entity.Transaction, now time.Time) TransactionListResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i, transaction := range transactions {
		responses[i] = ToTransactionResponse(transaction, now)
	}
	return TransactionListResponse{Transactions: responses}
}
