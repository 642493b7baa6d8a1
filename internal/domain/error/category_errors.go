// Package error defines domain-specific errors for the Finance Wallet application.
package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNameTooShort is returned when the category name is below the minimum length.
	ErrCategoryNameTooShort = errors.New("category name too short")

	// ErrCategoryNameTooLong is returned when the category name exceeds the maximum length.
	ErrCategoryNameTooLong = errors.New("category name too long")

	// ErrCategoryNameInvalidChars is returned when the category name contains disallowed characters.
	ErrCategoryNameInvalidChars = errors.New("category name contains invalid characters")

	// ErrCategoryDescriptionTooLong is returned when the description exceeds the maximum length.
	ErrCategoryDescriptionTooLong = errors.New("category description too long")

	// ErrInvalidCategoryType is returned when the category type is not one of the supported types.
	ErrInvalidCategoryType = errors.New("invalid category type")

	// ErrInvalidCategoryColor is returned when the color is not a valid hex color.
	ErrInvalidCategoryColor = errors.New("invalid category color")

	// ErrCategoryNotFound is returned when a category is not found for the given user.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrDuplicateCategoryName is returned when the user already has a category with the name.
	ErrDuplicateCategoryName = errors.New("category name already exists")

	// ErrCannotUpdateDefaultCategory is returned when attempting to modify a default category.
	ErrCannotUpdateDefaultCategory = errors.New("default categories cannot be updated")

	// ErrCannotDeleteDefaultCategory is returned when attempting to delete a default category.
	ErrCannotDeleteDefaultCategory = errors.New("default categories cannot be deleted")

	// ErrCannotDeleteCategoryInUse is returned when the category is referenced by transactions.
	ErrCannotDeleteCategoryInUse = errors.New("category is in use by transactions")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCategoryNameTooShort     CategoryErrorCode = "CAT-010001"
	ErrCodeCategoryNameTooLong      CategoryErrorCode = "CAT-010002"
	ErrCodeCategoryNameInvalidChars CategoryErrorCode = "CAT-010003"
	ErrCodeCategoryDescTooLong      CategoryErrorCode = "CAT-010004"
	ErrCodeInvalidCategoryType      CategoryErrorCode = "CAT-010005"
	ErrCodeInvalidCategoryColor     CategoryErrorCode = "CAT-010006"
	ErrCodeMissingCategoryFields    CategoryErrorCode = "CAT-010007"

	// Business rule errors (02XXXX)
	ErrCodeCategoryNotFound            CategoryErrorCode = "CAT-020001"
	ErrCodeDuplicateCategoryName       CategoryErrorCode = "CAT-020002"
	ErrCodeCannotUpdateDefaultCategory CategoryErrorCode = "CAT-020003"
	ErrCodeCannotDeleteDefaultCategory CategoryErrorCode = "CAT-020004"
	ErrCodeCannotDeleteCategoryInUse   CategoryErrorCode = "CAT-020005"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
