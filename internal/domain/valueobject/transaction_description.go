package valueobject

import (
	"regexp"
	"strings"

	domainerror "github.com/finance-wallet/backend/internal/domain/error"
)

// MaxTransactionDescriptionLength is the maximum allowed length for transaction descriptions.
const MaxTransactionDescriptionLength = 200

// transactionDescriptionRegex is compiled once at package level for performance.
var transactionDescriptionRegex = regexp.MustCompile(`^[A-Za-z0-9\s\-_.,!?()]+$`)

// TransactionDescription is the required free-text description of a transaction.
type TransactionDescription struct {
	value string
}

// NewTransactionDescription creates a validated TransactionDescription from raw
// input. Empty input fails with a Required error, distinct from the length errors.
func NewTransactionDescription(raw string) (TransactionDescription, error) {
	trimmed := strings.TrimSpace(raw)

	if trimmed == "" {
		return TransactionDescription{}, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionDescRequired,
			"transaction description is required",
			domainerror.ErrTransactionDescriptionRequired,
		)
	}
	if len(trimmed) > MaxTransactionDescriptionLength {
		return TransactionDescription{}, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionDescTooLong,
			"transaction description must not exceed 200 characters",
			domainerror.ErrTransactionDescriptionTooLong,
		)
	}
	if !transactionDescriptionRegex.MatchString(trimmed) {
		return TransactionDescription{}, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionDescInvalidChars,
			"transaction description contains unsupported characters",
			domainerror.ErrTransactionDescriptionInvalidChars,
		)
	}

	return TransactionDescription{value: trimmed}, nil
}

// Value returns the validated description.
func (d TransactionDescription) Value() string {
	return d.value
}

// Equals reports whether two descriptions hold the same value.
func (d TransactionDescription) Equals(other TransactionDescription) bool {
	return d.value == other.value
}
