// Package error defines domain-specific errors for the Finance Wallet application.
package error

import "errors"

// Auth domain errors.
var (
	// ErrMissingToken is returned when no authentication token is provided.
	ErrMissingToken = errors.New("authentication token is required")

	// ErrInvalidToken is returned when the authentication token is invalid or expired.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// AuthErrorCode defines error codes for authentication errors.
type AuthErrorCode string

const (
	ErrCodeMissingToken AuthErrorCode = "AUTH-010001"
	ErrCodeInvalidToken AuthErrorCode = "AUTH-010002"
	ErrCodeRateLimited  AuthErrorCode = "AUTH-010003"
)
