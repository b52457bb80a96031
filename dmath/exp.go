package dmath

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Exp returns e^x.
// Exp panics with an error wrapping ErrOverflow if x > MaximumExpArgument.
func Exp(x decimal.Decimal) decimal.Decimal {
	return finish(exp(x))
}

// checkExp returns an error wrapping ErrOverflow if e^x exceeds
// e^MaximumExpArgument.
func checkExp(x decimal.Decimal) error {
	if x.GreaterThan(maxExpArgument) {
		return fmt.Errorf("exp of %s: %w: argument exceeds %d", x, ErrOverflow, MaximumExpArgument)
	}
	return nil
}

// exp evaluates e^x on the working grid.
// x is first shifted by an integer count into [0, 1], the Taylor series of
// e^x is summed there and the result is scaled back by E^count.
func exp(x decimal.Decimal) decimal.Decimal {

	if err := checkExp(x); err != nil {
		panic(err)
	}

	if x.LessThan(minExpArgument) {
		return Zero
	}

	// |count| <= MaximumExpArgument from here on
	var count int64
	switch {
	case x.GreaterThan(One):
		n := x.Ceil().Sub(One)
		x = x.Sub(n)
		count = n.IntPart()
	case x.IsNegative():
		n := x.Neg().Ceil()
		x = x.Add(n)
		count = -n.IntPart()
	}

	result := One
	factor := One
	for i := int64(1); i <= MaximumIterations; i++ {
		cached := result
		factor = mul(factor, quoInt(x, i))
		result = result.Add(factor)
		if result.Equal(cached) {
			break
		}
	}

	if count != 0 {
		result = mul(result, powerN(E, count))
	}

	return result
}

// Log returns the natural logarithm of x.
// Returns ErrInvalidArgument if x <= 0.
func Log(x decimal.Decimal) (decimal.Decimal, error) {
	if x = x.Round(workingPrecision); x.Sign() <= 0 {
		return Zero, fmt.Errorf("log of %s: %w: x must be greater than zero", x, ErrInvalidArgument)
	}
	return finish(log(x)), nil
}

// Log10 returns the decimal logarithm of x.
// Returns ErrInvalidArgument if x <= 0.
func Log10(x decimal.Decimal) (decimal.Decimal, error) {
	if x = x.Round(workingPrecision); x.Sign() <= 0 {
		return Zero, fmt.Errorf("log10 of %s: %w: x must be greater than zero", x, ErrInvalidArgument)
	}
	return finish(mul(log(x), log10Inv)), nil
}

// log evaluates ln(x) on the working grid for x > 0 on the grid.
// x is first written m*10^k with m in [1, 10), so that the grid keeps the
// significant digits of small inputs, and ln(x) = ln(m) + k*ln(10).
func log(x decimal.Decimal) decimal.Decimal {
	k := order(x)
	if k == 0 {
		return logMantissa(x)
	}
	return logMantissa(x.Shift(int32(-k))).Add(mul(decimal.NewFromInt(k), ln10))
}

// logMantissa multiplies x by powers of 1/E until it falls into (1/E, 1),
// after which ln(1+u) is summed as an alternating series in u = x-1.
func logMantissa(x decimal.Decimal) decimal.Decimal {

	var count int64
	for x.GreaterThanOrEqual(One) {
		x = mul(x, eInverted)
		count++
	}

	for x.LessThanOrEqual(eInverted) {
		x = mul(x, E)
		count--
	}

	u := x.Sub(One)
	if u.IsZero() {
		return decimal.NewFromInt(count)
	}

	minusU := u.Neg()
	result := Zero
	y := One
	for i := int64(1); i <= MaximumIterations; i++ {
		cached := result
		y = mul(y, minusU)
		result = result.Add(quoInt(y, i))
		if result.Equal(cached) {
			break
		}
	}

	return decimal.NewFromInt(count).Sub(result)
}
