package valueobject

import (
	"regexp"
	"strings"

	domainerror "github.com/finance-wallet/backend/internal/domain/error"
)

// currencyCodeRegex matches ISO 4217 style 3-letter currency codes.
var currencyCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// supportedCurrencies is the closed set of currencies the application accepts.
var supportedCurrencies = map[string]struct{}{
	"EUR": {},
	"USD": {},
}

// Currency is a validated, normalized currency code.
type Currency struct {
	code string
}

// NewCurrency creates a validated Currency from raw input. The input is trimmed
// and uppercased before validation, so NewCurrency("eur") and NewCurrency("EUR")
// yield equal values.
func NewCurrency(raw string) (Currency, error) {
	code := strings.ToUpper(strings.TrimSpace(raw))

	if !currencyCodeRegex.MatchString(code) {
		return Currency{}, domainerror.NewAccountError(
			domainerror.ErrCodeInvalidCurrencyFormat,
			"currency must be a 3-letter code",
			domainerror.ErrInvalidCurrencyFormat,
		)
	}
	if _, ok := supportedCurrencies[code]; !ok {
		return Currency{}, domainerror.NewAccountError(
			domainerror.ErrCodeCurrencyNotSupported,
			"currency must be one of: EUR, USD",
			domainerror.ErrCurrencyNotSupported,
		)
	}

	return Currency{code: code}, nil
}

// Code returns the normalized currency code.
func (c Currency) Code() string {
	return c.code
}

// Symbol returns the display symbol for the currency.
func (c Currency) Symbol() string {
	switch c.code {
	case "EUR":
		return "€"
	case "USD":
		return "$"
	default:
		return c.code
	}
}

// Equals reports whether two currencies hold the same code.
func (c Currency) Equals(other Currency) bool {
	return c.code == other.code
}
