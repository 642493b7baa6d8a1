// Package valueobject contains domain value objects for the Finance Wallet system.
//
// Every value object is immutable, validates on construction and exposes the wrapped
// primitive through accessors only. Constructors are the single way to obtain an
// instance; they return a typed domain error when a validation rule is violated.
package valueobject

import (
	"regexp"
	"strings"

	domainerror "github.com/finance-wallet/backend/internal/domain/error"
)

const (
	// MinAccountNameLength is the minimum allowed length for account names.
	MinAccountNameLength = 2
	// MaxAccountNameLength is the maximum allowed length for account names.
	MaxAccountNameLength = 100
)

// accountNameRegex is compiled once at package level for performance.
var accountNameRegex = regexp.MustCompile(`^[A-Za-z0-9\s\-_]+$`)

// AccountName is the validated name of an account. Input is trimmed before
// validation; equality is on the trimmed value.
type AccountName struct {
	value string
}

// NewAccountName creates a validated AccountName from raw input.
func NewAccountName(raw string) (AccountName, error) {
	trimmed := strings.TrimSpace(raw)

	if len(trimmed) < MinAccountNameLength {
		return AccountName{}, domainerror.NewAccountError(
			domainerror.ErrCodeAccountNameTooShort,
			"account name must be at least 2 characters",
			domainerror.ErrAccountNameTooShort,
		)
	}
	if len(trimmed) > MaxAccountNameLength {
		return AccountName{}, domainerror.NewAccountError(
			domainerror.ErrCodeAccountNameTooLong,
			"account name must not exceed 100 characters",
			domainerror.ErrAccountNameTooLong,
		)
	}
	if !accountNameRegex.MatchString(trimmed) {
		return AccountName{}, domainerror.NewAccountError(
			domainerror.ErrCodeAccountNameInvalidChars,
			"account name may only contain letters, numbers, spaces, hyphens and underscores",
			domainerror.ErrAccountNameInvalidChars,
		)
	}

	return AccountName{value: trimmed}, nil
}

// Value returns the validated name.
func (n AccountName) Value() string {
	return n.value
}

// Equals reports whether two account names hold the same value.
func (n AccountName) Equals(other AccountName) bool {
	return n.value == other.value
}
