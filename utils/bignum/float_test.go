package bignum

import (
	"math"
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestFloat(t *testing.T) {
	testFunc1("Sin", 1.4142135623730951, math.Sin, Sin, 1e-15, t)
	testFunc1("Cos", 1.4142135623730951, math.Cos, Cos, 1e-15, t)
	testFunc1("Tan", 1.4142135623730951, math.Tan, Tan, 1e-12, t)
	testFunc1("ArcSin", 0.7071067811865476, math.Asin, ArcSin, 1e-13, t)
	testFunc1("ArcSin/One", 1, math.Asin, ArcSin, 1e-15, t)
	testFunc1("ArcCos", -0.3, math.Acos, ArcCos, 1e-13, t)
	testFunc1("ArcTan", 1.4142135623730951, math.Atan, ArcTan, 1e-13, t)
	testFunc1("ArcTan/Negative", -25, math.Atan, ArcTan, 1e-13, t)
	testFunc1("Sqrt", 1.4142135623730951, math.Sqrt, Sqrt, 1e-15, t)
	testFunc1("Log", 1.4142135623730951, math.Log, Log, 1e-15, t)
	testFunc1("Log10", 1.4142135623730951, math.Log10, Log10, 1e-15, t)
	testFunc1("Exp", 1.4142135623730951, math.Exp, Exp, 1e-15, t)
	testFunc2("Pow", 2, 1.4142135623730951, math.Pow, Pow, 1e-15, t)
	testFunc2("ArcTan2", -1, -1.4142135623730951, math.Atan2, ArcTan2, 1e-13, t)
	testFunc2("ArcTan2/Axis", 3, 0, math.Atan2, ArcTan2, 1e-15, t)
	testFunc1("SinH", 1.4142135623730951, math.Sinh, SinH, 1e-15, t)
	testFunc1("CosH", 1.4142135623730951, math.Cosh, CosH, 1e-14, t)
	testFunc1("TanH", 1.4142135623730951, math.Tanh, TanH, 1e-15, t)
}

func TestHighPrecision(t *testing.T) {

	prec := uint(256)

	t.Run("Sin^2+Cos^2", func(t *testing.T) {
		x := NewFloat(2.5, prec)
		s, c := Sin(x), Cos(x)
		s.Mul(s, s)
		c.Mul(c, c)
		s.Add(s, c)
		require.Less(t, AbsError(s, NewFloat(1, prec)), 1e-70)
	})

	t.Run("ArcTan(1)", func(t *testing.T) {
		quarterPi := Pi(prec)
		quarterPi.Quo(quarterPi, NewFloat(4, prec))
		require.Less(t, AbsError(ArcTan(NewFloat(1, prec)), quarterPi), 1e-70)
	})
}

func TestDecimal(t *testing.T) {

	d := decimal.RequireFromString("-12.3456789012345678901234567890123")

	x := FromDecimal(d, 256)
	require.True(t, d.Equal(ToDecimal(x, 31)))
	require.True(t, decimal.RequireFromString("-12.35").Equal(ToDecimal(x, 2)))

	require.Equal(t, 0.5, AbsError(NewFloat(0.25, 53), NewFloat(0.75, 53)))
	require.Equal(t, 0.25, AbsError(NewFloat(3, 53), NewFloat(4, 53)))
}

func testFunc1(name string, x float64, f func(x float64) (y float64), g func(x *big.Float) (y *big.Float), delta float64, t *testing.T) {
	t.Run(name, func(t *testing.T) {
		y, _ := g(NewFloat(x, 53)).Float64()
		require.InDelta(t, f(x), y, delta)
	})
}

func testFunc2(name string, x, e float64, f func(x, e float64) (y float64), g func(x, e *big.Float) (y *big.Float), delta float64, t *testing.T) {
	t.Run(name, func(t *testing.T) {
		y, _ := g(NewFloat(x, 53), NewFloat(e, 53)).Float64()
		require.InDelta(t, f(x, e), y, delta)
	})
}
