package valueobject

import (
	"math"

	"github.com/shopspring/decimal"
)

// MaxMoneyMagnitude is the largest absolute value a monetary amount may hold.
var MaxMoneyMagnitude = decimal.NewFromInt(999_999_999)

// moneyInRange reports whether the value is within ±MaxMoneyMagnitude.
func moneyInRange(value decimal.Decimal) bool {
	return value.Abs().LessThanOrEqual(MaxMoneyMagnitude)
}

// roundMoney normalizes a monetary value to two decimal places, rounding half
// away from zero.
func roundMoney(value decimal.Decimal) decimal.Decimal {
	return value.Round(2)
}

// isFiniteFloat reports whether the value is a usable number (not NaN or ±Inf).
func isFiniteFloat(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}
