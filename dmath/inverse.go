package dmath

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// maxAsinDepth bounds the recursion of asin. Each half-angle step moves the
// argument at least four times closer to the fast region, so the depth is
// logarithmic in the working precision.
const maxAsinDepth = 8 * workingPrecision

// Asin returns the arcsine of x, in [-Pi/2, Pi/2].
// Returns ErrInvalidArgument if x is not in [-1, 1].
func Asin(x decimal.Decimal) (decimal.Decimal, error) {
	if x.GreaterThan(One) || x.LessThan(One.Neg()) {
		return Zero, fmt.Errorf("asin of %s: %w: x must be in [-1, 1]", x, ErrInvalidArgument)
	}
	return finish(asin(x, 0)), nil
}

// asin evaluates asin(x) on the working grid for x in [-1, 1].
// Uses asin(x) = (Pi/2 - asin(1-2x^2))/2 for x >= 0 whenever 1-2x^2 is closer
// to zero than x, then sums the odd Taylor series.
func asin(x decimal.Decimal, depth int) decimal.Decimal {

	if depth > maxAsinDepth {
		panic(fmt.Errorf("asin: recursion depth exceeded %d for %s", maxAsinDepth, x))
	}

	switch {
	case x.IsZero():
		return Zero
	case x.Equal(One):
		return halfPi
	case x.IsNegative():
		return asin(x.Neg(), depth+1).Neg()
	}

	x2 := mul(x, x)

	if newX := One.Sub(mul(two, x2)); x.GreaterThan(Abs(newX)) {
		return mul(half, halfPi.Sub(asin(newX, depth+1)))
	}

	y := x
	term := x

	for i := int64(1); i <= MaximumIterations; i++ {
		cached := term
		term = mul(term, mul(x2, One.Sub(quoInt(half, i))))
		y = y.Add(quoInt(term, 2*i+1))
		if term.Equal(cached) {
			break
		}
	}

	return y
}

// Acos returns the arccosine of x, in [0, Pi].
// Returns ErrInvalidArgument if x is not in [-1, 1].
func Acos(x decimal.Decimal) (decimal.Decimal, error) {
	if x.GreaterThan(One) || x.LessThan(One.Neg()) {
		return Zero, fmt.Errorf("acos of %s: %w: x must be in [-1, 1]", x, ErrInvalidArgument)
	}
	return finish(acos(x)), nil
}

func acos(x decimal.Decimal) decimal.Decimal {
	switch {
	case x.IsZero():
		return halfPi
	case x.Equal(One):
		return Zero
	case x.IsNegative():
		return Pi.Sub(acos(x.Neg()))
	}
	return halfPi.Sub(asin(x, 0))
}

// Atan returns the arctangent of x, in [-Pi/2, Pi/2].
func Atan(x decimal.Decimal) decimal.Decimal {
	return finish(atan(x))
}

// atan evaluates atan(x) = asin(x/sqrt(1+x^2)) on the working grid.
func atan(x decimal.Decimal) decimal.Decimal {

	switch {
	case x.IsZero():
		return Zero
	case x.Equal(One):
		return quarterPi
	}

	r := quo(x, sqrt(One.Add(mul(x, x)), Zero))

	// |r| <= 1 up to rounding
	switch {
	case r.GreaterThan(One):
		r = One
	case r.LessThan(One.Neg()):
		r = One.Neg()
	}

	return asin(r, 0)
}

// Atan2 returns the angle of the point (x, y), in [-Pi, Pi].
// Returns ErrInvalidArgument if x and y are both zero.
func Atan2(y, x decimal.Decimal) (decimal.Decimal, error) {

	switch {
	case x.IsPositive():
		return finish(atan(quo(y, x))), nil
	case x.IsNegative() && !y.IsNegative():
		return finish(atan(quo(y, x)).Add(Pi)), nil
	case x.IsNegative():
		return finish(atan(quo(y, x)).Sub(Pi)), nil
	case y.IsPositive():
		return finish(halfPi), nil
	case y.IsNegative():
		return finish(halfPi.Neg()), nil
	}

	return Zero, fmt.Errorf("atan2 of (%s, %s): %w: angle is undefined at the origin", y, x, ErrInvalidArgument)
}
