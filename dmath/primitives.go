package dmath

import (
	"github.com/shopspring/decimal"
)

// Abs returns the absolute value of x.
func Abs(x decimal.Decimal) decimal.Decimal {
	if x.Sign() <= 0 {
		return x.Neg()
	}
	return x
}

// Sign returns -1 if x < 0, 0 if x == 0 and 1 if x > 0.
func Sign(x decimal.Decimal) int {
	switch {
	case x.LessThan(Zero):
		return -1
	case x.GreaterThan(Zero):
		return 1
	default:
		return 0
	}
}

// isInteger reports whether x is within Epsilon of its truncation toward zero.
// The tolerance is absolute, regardless of the magnitude of x.
func isInteger(x decimal.Decimal) bool {
	return Abs(x.Sub(x.Truncate(0))).LessThanOrEqual(Epsilon)
}

// order returns the integer k such that |x| = m*10^k with 1 <= m < 10, for x != 0.
func order(x decimal.Decimal) int64 {
	return int64(len(Abs(x).Coefficient().String())) + int64(x.Exponent()) - 1
}
