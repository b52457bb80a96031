package dmath

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"
)

// PowerN returns value^power for an integer power, by exponentiation by squaring.
// Negative powers invert value first, hence PowerN panics if value is zero and
// power is negative. It also panics with an error wrapping ErrOverflow if
// |value|^power exceeds e^MaximumExpArgument. Use Power for a checked
// evaluation.
func PowerN[T constraints.Integer](value decimal.Decimal, power T) decimal.Decimal {
	if err := checkPower(value, float64(power)); err != nil {
		panic(err)
	}
	if power < 0 {
		return finish(powerUint(quo(One, value), uint64(-int64(power))))
	}
	return finish(powerUint(value, uint64(power)))
}

// powerN returns value^power on the working grid.
func powerN(value decimal.Decimal, power int64) decimal.Decimal {
	if power < 0 {
		// -math.MinInt64 wraps to itself, whose uint64 conversion is 2^63.
		return powerUint(quo(One, value), uint64(-power))
	}
	return powerUint(value, uint64(power))
}

// checkPower returns an error wrapping ErrOverflow if |value|^power exceeds
// e^MaximumExpArgument.
func checkPower(value decimal.Decimal, power float64) error {
	if value.IsZero() {
		return nil
	}
	if lnAbs(value)*power > MaximumExpArgument {
		return fmt.Errorf("power %s^%g: %w: result exceeds e^%d", value, power, ErrOverflow, MaximumExpArgument)
	}
	return nil
}

// lnAbs approximates ln|x| for x != 0 from its decimal order, so that it holds
// outside of the float64 range.
func lnAbs(x decimal.Decimal) float64 {
	k := order(x)
	return math.Log(Abs(x).Shift(int32(-k)).InexactFloat64()) + float64(k)*math.Ln10
}

func powerUint(value decimal.Decimal, q uint64) decimal.Decimal {

	prod := One
	current := value

	for q > 0 {
		// picks the factor value^(2^i) for every bit set in the power
		if q&1 == 1 {
			prod = mul(current, prod)
		}

		q >>= 1

		if q > 0 {
			current = mul(current, current)
		}
	}

	return prod
}

// Power returns value^pow.
// Integer powers of a positive base are computed exactly by squaring, the
// others as Exp(pow*Log(|value|)).
// Returns ErrInvalidOperation if value is zero and pow is negative, or if value
// is negative and pow is not an integer.
// Returns ErrOverflow if |value^pow| exceeds e^MaximumExpArgument.
func Power(value, pow decimal.Decimal) (decimal.Decimal, error) {

	switch {
	case pow.IsZero():
		return One, nil
	case pow.Equal(One):
		return value, nil
	}

	switch {
	case value.Equal(One):
		return One, nil
	case value.IsZero() && pow.IsZero():
		return One, nil
	case value.IsZero() && pow.IsPositive():
		return Zero, nil
	case value.IsZero():
		return Zero, fmt.Errorf("power %s^%s: %w: zero base and negative power", value, pow, ErrInvalidOperation)
	}

	if pow.Equal(One.Neg()) {
		if err := checkPower(value, -1); err != nil {
			return Zero, err
		}
		return finish(quo(One, value)), nil
	}

	isPowerInteger := isInteger(pow)
	if value.IsNegative() && !isPowerInteger {
		return Zero, fmt.Errorf("power %s^%s: %w: negative base and non-integer power", value, pow, ErrInvalidOperation)
	}

	if isPowerInteger && value.IsPositive() {
		if n, ok := int64Part(pow); ok {
			if err := checkPower(value, float64(n)); err != nil {
				return Zero, err
			}
			return finish(powerN(value, n)), nil
		}
	}

	t := mul(pow, log(Abs(value)))
	if err := checkExp(t); err != nil {
		return Zero, fmt.Errorf("power %s^%s: %w", value, pow, err)
	}

	if !isPowerInteger || !value.IsNegative() {
		return finish(exp(t)), nil
	}

	y := exp(t)
	if pow.Truncate(0).Mod(two).IsZero() {
		return finish(y), nil
	}

	return finish(y.Neg()), nil
}

// int64Part returns x truncated toward zero and whether it fits in an int64.
func int64Part(x decimal.Decimal) (int64, bool) {
	n := x.Truncate(0).BigInt()
	if !n.IsInt64() {
		return 0, false
	}
	return n.Int64(), true
}
