package valueobject

import (
	"github.com/shopspring/decimal"

	domainerror "github.com/finance-wallet/backend/internal/domain/error"
)

// TransactionAmount is a validated signed monetary amount. Negative amounts
// represent expenses, positive amounts income. The numeric contract matches
// AccountBalance: finite, within ±MaxMoneyMagnitude, two decimal places.
type TransactionAmount struct {
	value decimal.Decimal
}

// NewTransactionAmount creates a validated TransactionAmount from a decimal value.
func NewTransactionAmount(value decimal.Decimal) (TransactionAmount, error) {
	if !moneyInRange(value) {
		return TransactionAmount{}, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionAmountOutOfRange,
			"transaction amount must be within ±999,999,999",
			domainerror.ErrTransactionAmountOutOfRange,
		)
	}
	return TransactionAmount{value: roundMoney(value)}, nil
}

// NewTransactionAmountFromFloat creates a validated TransactionAmount from a raw float.
func NewTransactionAmountFromFloat(value float64) (TransactionAmount, error) {
	if !isFiniteFloat(value) {
		return TransactionAmount{}, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"transaction amount must be a finite number",
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	return NewTransactionAmount(decimal.NewFromFloat(value))
}

// NewTransactionAmountFromString creates a validated TransactionAmount from a decimal string.
func NewTransactionAmountFromString(raw string) (TransactionAmount, error) {
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return TransactionAmount{}, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"transaction amount must be a valid number",
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	return NewTransactionAmount(value)
}

// Value returns the amount as a decimal.
func (a TransactionAmount) Value() decimal.Decimal {
	return a.value
}

// Float64 returns the amount as a float, for display purposes only.
func (a TransactionAmount) Float64() float64 {
	f, _ := a.value.Float64()
	return f
}

// Add returns a new amount holding the sum.
func (a TransactionAmount) Add(other TransactionAmount) (TransactionAmount, error) {
	return NewTransactionAmount(a.value.Add(other.value))
}

// Subtract returns a new amount holding the difference.
func (a TransactionAmount) Subtract(other TransactionAmount) (TransactionAmount, error) {
	return NewTransactionAmount(a.value.Sub(other.value))
}

// Multiply returns a new amount scaled by the given factor.
func (a TransactionAmount) Multiply(factor decimal.Decimal) (TransactionAmount, error) {
	return NewTransactionAmount(a.value.Mul(factor))
}

// Divide returns a new amount divided by the given divisor.
func (a TransactionAmount) Divide(divisor decimal.Decimal) (TransactionAmount, error) {
	if divisor.IsZero() {
		return TransactionAmount{}, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"cannot divide transaction amount by zero",
			domainerror.ErrAmountDivisionByZero,
		)
	}
	return NewTransactionAmount(a.value.Div(divisor))
}

// IsPositive reports whether the amount is greater than zero.
func (a TransactionAmount) IsPositive() bool {
	return a.value.IsPositive()
}

// IsNegative reports whether the amount is less than zero.
func (a TransactionAmount) IsNegative() bool {
	return a.value.IsNegative()
}

// IsZero reports whether the amount is exactly zero.
func (a TransactionAmount) IsZero() bool {
	return a.value.IsZero()
}

// Abs returns the magnitude of the amount as a decimal.
func (a TransactionAmount) Abs() decimal.Decimal {
	return a.value.Abs()
}

// Equals reports whether two amounts hold the same value.
func (a TransactionAmount) Equals(other TransactionAmount) bool {
	return a.value.Equal(other.value)
}
