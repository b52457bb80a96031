package dmath

import (
	"github.com/shopspring/decimal"
)

// e^-2x is below the working grid beyond this bound, where tanh(x) rounds to 1.
var tanhSaturation = decimal.NewFromInt(43)

// Sinh returns the hyperbolic sine of x.
// Sinh panics with an error wrapping ErrOverflow if |x| > MaximumExpArgument.
func Sinh(x decimal.Decimal) decimal.Decimal {
	y, yy := expPair(x)
	return finish(mul(y.Sub(yy), half))
}

// Cosh returns the hyperbolic cosine of x.
// Cosh panics with an error wrapping ErrOverflow if |x| > MaximumExpArgument.
func Cosh(x decimal.Decimal) decimal.Decimal {
	y, yy := expPair(x)
	return finish(mul(y.Add(yy), half))
}

// Tanh returns the hyperbolic tangent of x.
func Tanh(x decimal.Decimal) decimal.Decimal {
	if Abs(x).GreaterThan(tanhSaturation) {
		return decimal.NewFromInt(int64(x.Sign()))
	}
	y, yy := expPair(x)
	return finish(quo(y.Sub(yy), y.Add(yy)))
}

// expPair returns e^x and e^-x. Only the exponential of |x| is evaluated, the
// other one is its inverse, so that neither side underflows to a zero divisor.
func expPair(x decimal.Decimal) (y, yy decimal.Decimal) {
	if x.IsNegative() {
		yy = exp(x.Neg())
		return quo(One, yy), yy
	}
	y = exp(x)
	return y, quo(One, y)
}
