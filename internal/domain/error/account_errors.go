// Package error defines domain-specific errors for the Finance Wallet application.
package error

import "errors"

// Account domain errors.
var (
	// ErrAccountNameTooShort is returned when the account name is below the minimum length.
	ErrAccountNameTooShort = errors.New("account name too short")

	// ErrAccountNameTooLong is returned when the account name exceeds the maximum length.
	ErrAccountNameTooLong = errors.New("account name too long")

	// ErrAccountNameInvalidChars is returned when the account name contains disallowed characters.
	ErrAccountNameInvalidChars = errors.New("account name contains invalid characters")

	// ErrInvalidAccountType is returned when the account type is not one of the supported types.
	ErrInvalidAccountType = errors.New("invalid account type")

	// ErrInvalidAccountBalance is returned when the balance is not a finite number.
	ErrInvalidAccountBalance = errors.New("invalid account balance")

	// ErrAccountBalanceOutOfRange is returned when the balance exceeds the supported range.
	ErrAccountBalanceOutOfRange = errors.New("account balance out of range")

	// ErrBalanceDivisionByZero is returned when dividing an account balance by zero.
	ErrBalanceDivisionByZero = errors.New("account balance division by zero")

	// ErrInvalidCurrencyFormat is returned when the currency code is not a 3-letter code.
	ErrInvalidCurrencyFormat = errors.New("invalid currency format")

	// ErrCurrencyNotSupported is returned when the currency is not in the supported set.
	ErrCurrencyNotSupported = errors.New("currency not supported")

	// ErrAccountNotFound is returned when an account is not found for the given user.
	ErrAccountNotFound = errors.New("account not found")

	// ErrDuplicateAccountName is returned when the user already has an active account with the name.
	ErrDuplicateAccountName = errors.New("account name already exists")
)

// AccountErrorCode defines error codes for account errors.
// Format: ACC-XXYYYY where XX is category and YYYY is specific error.
type AccountErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeAccountNameTooShort     AccountErrorCode = "ACC-010001"
	ErrCodeAccountNameTooLong      AccountErrorCode = "ACC-010002"
	ErrCodeAccountNameInvalidChars AccountErrorCode = "ACC-010003"
	ErrCodeInvalidAccountType      AccountErrorCode = "ACC-010004"
	ErrCodeInvalidAccountBalance   AccountErrorCode = "ACC-010005"
	ErrCodeBalanceOutOfRange       AccountErrorCode = "ACC-010006"
	ErrCodeInvalidCurrencyFormat   AccountErrorCode = "ACC-010007"
	ErrCodeCurrencyNotSupported    AccountErrorCode = "ACC-010008"
	ErrCodeMissingAccountFields    AccountErrorCode = "ACC-010009"

	// Business rule errors (02XXXX)
	ErrCodeAccountNotFound      AccountErrorCode = "ACC-020001"
	ErrCodeDuplicateAccountName AccountErrorCode = "ACC-020002"
)

// AccountError represents an account error with code and message.
type AccountError struct {
	Code    AccountErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AccountError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AccountError) Unwrap() error {
	return e.Err
}

// NewAccountError creates a new AccountError with the given code and message.
func NewAccountError(code AccountErrorCode, message string, err error) *AccountError {
	return &AccountError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
