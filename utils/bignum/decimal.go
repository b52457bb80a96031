package bignum

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// FromDecimal returns the exact value of d as a big.Float with prec bits of precision
// (rounded to nearest even if d is not representable).
func FromDecimal(d decimal.Decimal, prec uint) *big.Float {
	return NewFloat(d, prec)
}

// ToDecimal returns x rounded to the given number of digits after the decimal point.
func ToDecimal(x *big.Float, places int32) decimal.Decimal {
	return decimal.RequireFromString(x.Text('f', int(places)))
}

// AbsError returns |x - want| / max(1, |want|), that is the absolute error for
// values of magnitude at most one and the relative error otherwise.
func AbsError(x, want *big.Float) float64 {

	diff := new(big.Float).Sub(x, want)
	diff.Abs(diff)

	if scale := new(big.Float).Abs(want); scale.Cmp(big.NewFloat(1)) > 0 {
		diff.Quo(diff, scale)
	}

	f, _ := diff.Float64()
	return f
}
