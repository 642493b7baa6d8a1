package valueobject

import (
	"github.com/shopspring/decimal"

	domainerror "github.com/finance-wallet/backend/internal/domain/error"
)

// AccountBalance is a validated monetary balance: finite, within
// ±MaxMoneyMagnitude and stored with two decimal places. Arithmetic operations
// return new validated instances and never mutate the receiver.
type AccountBalance struct {
	value decimal.Decimal
}

// NewAccountBalance creates a validated AccountBalance from a decimal value.
func NewAccountBalance(value decimal.Decimal) (AccountBalance, error) {
	if !moneyInRange(value) {
		return AccountBalance{}, domainerror.NewAccountError(
			domainerror.ErrCodeBalanceOutOfRange,
			"account balance must be within ±999,999,999",
			domainerror.ErrAccountBalanceOutOfRange,
		)
	}
	return AccountBalance{value: roundMoney(value)}, nil
}

// NewAccountBalanceFromFloat creates a validated AccountBalance from a raw float.
func NewAccountBalanceFromFloat(value float64) (AccountBalance, error) {
	if !isFiniteFloat(value) {
		return AccountBalance{}, domainerror.NewAccountError(
			domainerror.ErrCodeInvalidAccountBalance,
			"account balance must be a finite number",
			domainerror.ErrInvalidAccountBalance,
		)
	}
	return NewAccountBalance(decimal.NewFromFloat(value))
}

// NewAccountBalanceFromString creates a validated AccountBalance from a decimal string.
func NewAccountBalanceFromString(raw string) (AccountBalance, error) {
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return AccountBalance{}, domainerror.NewAccountError(
			domainerror.ErrCodeInvalidAccountBalance,
			"account balance must be a valid number",
			domainerror.ErrInvalidAccountBalance,
		)
	}
	return NewAccountBalance(value)
}

// Value returns the balance as a decimal.
func (b AccountBalance) Value() decimal.Decimal {
	return b.value
}

// Float64 returns the balance as a float, for display purposes only.
func (b AccountBalance) Float64() float64 {
	f, _ := b.value.Float64()
	return f
}

// Add returns a new balance holding the sum.
func (b AccountBalance) Add(other AccountBalance) (AccountBalance, error) {
	return NewAccountBalance(b.value.Add(other.value))
}

// Subtract returns a new balance holding the difference.
func (b AccountBalance) Subtract(other AccountBalance) (AccountBalance, error) {
	return NewAccountBalance(b.value.Sub(other.value))
}

// Multiply returns a new balance scaled by the given factor.
func (b AccountBalance) Multiply(factor decimal.Decimal) (AccountBalance, error) {
	return NewAccountBalance(b.value.Mul(factor))
}

// Divide returns a new balance divided by the given divisor.
func (b AccountBalance) Divide(divisor decimal.Decimal) (AccountBalance, error) {
	if divisor.IsZero() {
		return AccountBalance{}, domainerror.NewAccountError(
			domainerror.ErrCodeInvalidAccountBalance,
			"cannot divide account balance by zero",
			domainerror.ErrBalanceDivisionByZero,
		)
	}
	return NewAccountBalance(b.value.Div(divisor))
}

// IsPositive reports whether the balance is greater than zero.
func (b AccountBalance) IsPositive() bool {
	return b.value.IsPositive()
}

// IsNegative reports whether the balance is less than zero.
func (b AccountBalance) IsNegative() bool {
	return b.value.IsNegative()
}

// IsZero reports whether the balance is exactly zero.
func (b AccountBalance) IsZero() bool {
	return b.value.IsZero()
}

// Equals reports whether two balances hold the same value.
func (b AccountBalance) Equals(other AccountBalance) bool {
	return b.value.Equal(other.value)
}

// GreaterThan reports whether the balance exceeds the other.
func (b AccountBalance) GreaterThan(other AccountBalance) bool {
	return b.value.GreaterThan(other.value)
}

// LessThan reports whether the balance is below the other.
func (b AccountBalance) LessThan(other AccountBalance) bool {
	return b.value.LessThan(other.value)
}
