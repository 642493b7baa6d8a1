package valueobject

import (
	"regexp"
	"strings"
	"unicode"

	domainerror "github.com/finance-wallet/backend/internal/domain/error"
)

const (
	// MinCategoryNameLength is the minimum allowed length for category names.
	MinCategoryNameLength = 2
	// MaxCategoryNameLength is the maximum allowed length for category names.
	MaxCategoryNameLength = 50
)

// categoryNameRegex is compiled once at package level for performance.
var categoryNameRegex = regexp.MustCompile(`^[A-Za-z0-9\s\-_&]+$`)

// CategoryName is the validated name of a category. Equality is case-insensitive.
type CategoryName struct {
	value string
}

// NewCategoryName creates a validated CategoryName from raw input.
func NewCategoryName(raw string) (CategoryName, error) {
	trimmed := strings.TrimSpace(raw)

	if len(trimmed) < MinCategoryNameLength {
		return CategoryName{}, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameTooShort,
			"category name must be at least 2 characters",
			domainerror.ErrCategoryNameTooShort,
		)
	}
	if len(trimmed) > MaxCategoryNameLength {
		return CategoryName{}, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameTooLong,
			"category name must not exceed 50 characters",
			domainerror.ErrCategoryNameTooLong,
		)
	}
	if !categoryNameRegex.MatchString(trimmed) {
		return CategoryName{}, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameInvalidChars,
			"category name may only contain letters, numbers, spaces, hyphens, underscores and ampersands",
			domainerror.ErrCategoryNameInvalidChars,
		)
	}

	return CategoryName{value: trimmed}, nil
}

// Value returns the validated name.
func (n CategoryName) Value() string {
	return n.value
}

// DisplayValue returns the name with its first letter capitalized.
func (n CategoryName) DisplayValue() string {
	runes := []rune(n.value)
	if len(runes) == 0 {
		return n.value
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// Equals reports whether two category names are equal, ignoring case.
func (n CategoryName) Equals(other CategoryName) bool {
	return strings.EqualFold(n.value, other.value)
}
