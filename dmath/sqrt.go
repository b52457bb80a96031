package dmath

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Sqrt returns the square root of x, iterated until two consecutive
// Newton-Raphson steps are equal on the working grid.
// Returns ErrOverflow if x < 0.
func Sqrt(x decimal.Decimal) (decimal.Decimal, error) {
	return SqrtEpsilon(x, Zero)
}

// SqrtEpsilon returns the square root of x, iterated until two consecutive
// Newton-Raphson steps differ by at most epsilon.
// Returns ErrOverflow if x < 0.
func SqrtEpsilon(x, epsilon decimal.Decimal) (decimal.Decimal, error) {
	if x.IsNegative() {
		return Zero, fmt.Errorf("sqrt of %s: %w: cannot calculate square root from a negative number", x, ErrOverflow)
	}
	return finish(sqrt(x, epsilon)), nil
}

// sqrt evaluates the square root of x >= 0 on the working grid, starting from
// the float64 approximation.
func sqrt(x, epsilon decimal.Decimal) (current decimal.Decimal) {

	current = sqrtSeed(x)

	for i := 0; i < MaximumIterations; i++ {

		previous := current

		if previous.IsZero() {
			return Zero
		}

		current = mul(previous.Add(quo(x, previous)), half)

		if Abs(previous.Sub(current)).LessThanOrEqual(epsilon) {
			break
		}
	}

	return
}

// sqrtSeed returns a first approximation of the square root of x >= 0.
func sqrtSeed(x decimal.Decimal) decimal.Decimal {

	f, _ := x.Float64()

	if s := math.Sqrt(f); !math.IsInf(s, 0) && !math.IsNaN(s) {
		return decimal.NewFromFloat(s)
	}

	// Out of the float64 range: 10^ceil(digits/2) where digits is the
	// number of digits of the integer part of x.
	digits := int64(len(x.Coefficient().String())) + int64(x.Exponent())
	return decimal.New(1, int32((digits+1)/2))
}
