package dmath

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Cos returns the cosine of x (in radians).
func Cos(x decimal.Decimal) decimal.Decimal {
	return finish(cos(x))
}

// cos evaluates cos(x) on the working grid.
// x is reduced into (-2Pi, 2Pi), then into [-Pi, Pi] with cos(x) = -cos(x-Pi),
// where the even Taylor series is summed.
func cos(x decimal.Decimal) decimal.Decimal {

	if x.GreaterThan(twoPi) || x.LessThan(twoPi.Neg()) {
		x = x.Mod(twoPi)
	}

	if x.GreaterThanOrEqual(Pi) && x.LessThanOrEqual(twoPi) {
		return cos(x.Sub(Pi)).Neg()
	}

	if x.GreaterThanOrEqual(twoPi.Neg()) && x.LessThanOrEqual(Pi.Neg()) {
		return cos(x.Add(Pi)).Neg()
	}

	x2 := mul(x, x)

	// y = 1 - x^2/2! + x^4/4! - x^6/6! ...
	term := mul(x2.Neg(), half)
	y := One.Add(term)
	cached := y.Sub(One)

	for i := int64(1); !cached.Equal(y) && i < MaximumIterations; i++ {
		cached = y

		// (2i+1)(2i+2)/2 = i(2i+3)+1
		factor := quo(half.Neg(), decimal.NewFromInt(i*(i+i+3)+1))
		term = mul(term, mul(x2, factor))
		y = y.Add(term)
	}

	return y
}

// Sin returns the sine of x (in radians).
func Sin(x decimal.Decimal) decimal.Decimal {
	return finish(sin(x))
}

// sin evaluates sin(x) on the working grid.
func sin(x decimal.Decimal) decimal.Decimal {
	return sinFromCos(x, cos(x))
}

// sinFromCos returns sin(x) as +/-sqrt(1-c^2), where c = cos(x).
func sinFromCos(x, c decimal.Decimal) decimal.Decimal {

	// cos(x)^2 can exceed one by a rounding error, in which case |sin(x)| is 0.
	modulus := Zero
	if m := One.Sub(mul(c, c)); m.IsPositive() {
		modulus = sqrt(m, Zero)
	}

	if isSignOfSinusPositive(x) {
		return modulus
	}

	return modulus.Neg()
}

// isSignOfSinusPositive reports whether sin(x) >= 0, by locating x modulo 2Pi
// among the four half periods of [-2Pi, 2Pi].
func isSignOfSinusPositive(x decimal.Decimal) bool {

	if x.GreaterThanOrEqual(twoPi) || x.LessThanOrEqual(twoPi.Neg()) {
		x = x.Mod(twoPi)
	}

	switch {
	case x.GreaterThanOrEqual(twoPi.Neg()) && x.LessThanOrEqual(Pi.Neg()):
		return true
	case x.GreaterThanOrEqual(Pi.Neg()) && x.LessThanOrEqual(Zero):
		return false
	case x.GreaterThanOrEqual(Zero) && x.LessThanOrEqual(Pi):
		return true
	case x.GreaterThanOrEqual(Pi) && x.LessThanOrEqual(twoPi):
		return false
	}

	panic(fmt.Errorf("invalid reduction: %s is not in [-2Pi, 2Pi]", x))
}

// Tan returns the tangent of x (in radians).
// Returns ErrInvalidArgument if Cos(x) is zero.
func Tan(x decimal.Decimal) (decimal.Decimal, error) {

	c := cos(x)

	if finish(c).IsZero() {
		return Zero, fmt.Errorf("tan of %s: %w: cosine is zero", x, ErrInvalidArgument)
	}

	return finish(quo(sinFromCos(x, c), c)), nil
}
