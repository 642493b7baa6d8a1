// Package error defines domain-specific errors for the Finance Wallet application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrInvalidTransactionAmount is returned when the amount is not a finite number.
	ErrInvalidTransactionAmount = errors.New("invalid transaction amount")

	// ErrTransactionAmountOutOfRange is returned when the amount exceeds the supported range.
	ErrTransactionAmountOutOfRange = errors.New("transaction amount out of range")

	// ErrAmountDivisionByZero is returned when dividing a transaction amount by zero.
	ErrAmountDivisionByZero = errors.New("transaction amount division by zero")

	// ErrTransactionDescriptionRequired is returned when the description is empty.
	ErrTransactionDescriptionRequired = errors.New("transaction description is required")

	// ErrTransactionDescriptionTooLong is returned when the description exceeds the maximum length.
	ErrTransactionDescriptionTooLong = errors.New("transaction description too long")

	// ErrTransactionDescriptionInvalidChars is returned when the description contains disallowed characters.
	ErrTransactionDescriptionInvalidChars = errors.New("transaction description contains invalid characters")

	// ErrInvalidTransactionType is returned when the transaction type is not one of the supported types.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidTransactionDate is returned when the transaction date cannot be parsed.
	ErrInvalidTransactionDate = errors.New("invalid transaction date")

	// ErrTransactionDateOutOfRange is returned when the date is outside the supported range.
	ErrTransactionDateOutOfRange = errors.New("transaction date out of range")

	// ErrTransactionNotFound is returned when a transaction is not found for the given user.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrAccountNotFoundForTransaction is returned when the target account does not exist
	// or does not belong to the user.
	ErrAccountNotFoundForTransaction = errors.New("account not found for transaction")

	// ErrCategoryNotFoundForTransaction is returned when the referenced category does not exist
	// or does not belong to the user.
	ErrCategoryNotFoundForTransaction = errors.New("category not found for transaction")

	// ErrCategoryTypeMismatch is returned when the transaction type does not match the category type.
	ErrCategoryTypeMismatch = errors.New("transaction type does not match category type")

	// ErrInsufficientBalance is returned when the account balance cannot cover the expense.
	ErrInsufficientBalance = errors.New("insufficient account balance")

	// ErrCannotDeleteReconciledTransaction is returned when attempting to delete a reconciled transaction.
	ErrCannotDeleteReconciledTransaction = errors.New("reconciled transactions cannot be deleted")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionAmount    TransactionErrorCode = "TXN-010001"
	ErrCodeTransactionAmountOutOfRange TransactionErrorCode = "TXN-010002"
	ErrCodeTransactionDescRequired     TransactionErrorCode = "TXN-010003"
	ErrCodeTransactionDescTooLong      TransactionErrorCode = "TXN-010004"
	ErrCodeTransactionDescInvalidChars TransactionErrorCode = "TXN-010005"
	ErrCodeInvalidTransactionType      TransactionErrorCode = "TXN-010006"
	ErrCodeInvalidTransactionDate      TransactionErrorCode = "TXN-010007"
	ErrCodeTransactionDateOutOfRange   TransactionErrorCode = "TXN-010008"
	ErrCodeMissingTransactionFields    TransactionErrorCode = "TXN-010009"

	// Business rule errors (02XXXX)
	ErrCodeTransactionNotFound       TransactionErrorCode = "TXN-020001"
	ErrCodeTxnAccountNotFound        TransactionErrorCode = "TXN-020002"
	ErrCodeTxnCategoryNotFound       TransactionErrorCode = "TXN-020003"
	ErrCodeCategoryTypeMismatch      TransactionErrorCode = "TXN-020004"
	ErrCodeInsufficientBalance       TransactionErrorCode = "TXN-020005"
	ErrCodeCannotDeleteReconciledTxn TransactionErrorCode = "TXN-020006"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
