package valueobject

import (
	"strings"

	domainerror "github.com/finance-wallet/backend/internal/domain/error"
)

const (
	// MaxCategoryDescriptionLength is the maximum allowed length for category descriptions.
	MaxCategoryDescriptionLength = 200
	// DefaultTruncateLength is the default limit used by Truncate.
	DefaultTruncateLength = 50
)

// CategoryDescription is an optional free-text description. Blank input yields
// the empty state rather than an error.
type CategoryDescription struct {
	value string
}

// NewCategoryDescription creates a validated CategoryDescription from raw input.
func NewCategoryDescription(raw string) (CategoryDescription, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return CategoryDescription{}, nil
	}

	if len(trimmed) > MaxCategoryDescriptionLength {
		return CategoryDescription{}, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryDescTooLong,
			"category description must not exceed 200 characters",
			domainerror.ErrCategoryDescriptionTooLong,
		)
	}

	return CategoryDescription{value: trimmed}, nil
}

// Value returns the description text, empty when no description was provided.
func (d CategoryDescription) Value() string {
	return d.value
}

// IsEmpty reports whether the description holds no value.
func (d CategoryDescription) IsEmpty() bool {
	return d.value == ""
}

// Truncate returns the description cut to limit characters with an ellipsis
// appended. A non-positive limit falls back to DefaultTruncateLength.
func (d CategoryDescription) Truncate(limit int) string {
	if limit <= 0 {
		limit = DefaultTruncateLength
	}
	if len(d.value) <= limit {
		return d.value
	}
	return d.value[:limit] + "..."
}

// Equals reports whether two descriptions hold the same value.
func (d CategoryDescription) Equals(other CategoryDescription) bool {
	return d.value == other.value
}
