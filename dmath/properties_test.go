package dmath

import (
	"context"
	"math"
	"math/big"
	"sort"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/decmath/utils/bignum"
	"github.com/tuneinsight/decmath/utils/sampling"
	"golang.org/x/sync/errgroup"
)

const (
	oraclePrec = 256
	samples    = 32
	places     = 12
)

func noError(f func(decimal.Decimal) decimal.Decimal) func(decimal.Decimal) (decimal.Decimal, error) {
	return func(x decimal.Decimal) (decimal.Decimal, error) {
		return f(x), nil
	}
}

func randDecimals(t *testing.T, key, min, max string, n int) (xs []decimal.Decimal) {
	prng, err := sampling.NewKeyedPRNG([]byte(key))
	require.NoError(t, err)
	xs = make([]decimal.Decimal, n)
	for i := range xs {
		xs[i], err = sampling.RandDecimal(prng, d(min), d(max), places)
		require.NoError(t, err)
	}
	return
}

func TestOracle(t *testing.T) {

	testCases := []struct {
		name     string
		min, max string
		delta    float64
		f        func(decimal.Decimal) (decimal.Decimal, error)
		oracle   func(*big.Float) *big.Float
	}{
		{"Exp", "-20", "20", 1e-27, noError(Exp), bignum.Exp},
		{"Log", "0.000001", "1000", 1e-21, Log, bignum.Log},
		{"Log10", "0.000001", "1000", 1e-21, Log10, bignum.Log10},
		{"Sqrt", "0", "1000000", 1e-27, Sqrt, bignum.Sqrt},
		{"Cos", "-100", "100", 1e-27, noError(Cos), bignum.Cos},
		{"Sin", "-100", "100", 1e-27, noError(Sin), bignum.Sin},
		{"Tan", "-1.5", "1.5", 1e-27, Tan, bignum.Tan},
		{"Asin", "-1", "1", 1e-27, Asin, bignum.ArcSin},
		{"Acos", "-1", "1", 1e-27, Acos, bignum.ArcCos},
		{"Atan", "-100", "100", 1e-27, noError(Atan), bignum.ArcTan},
		{"Sinh", "-20", "20", 1e-27, noError(Sinh), bignum.SinH},
		{"Cosh", "-20", "20", 1e-27, noError(Cosh), bignum.CosH},
		{"Tanh", "-20", "20", 1e-27, noError(Tanh), bignum.TanH},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for _, x := range randDecimals(t, tc.name, tc.min, tc.max, samples) {
				have, err := tc.f(x)
				require.NoError(t, err)
				want := tc.oracle(bignum.FromDecimal(x, oraclePrec))
				require.Lessf(t, bignum.AbsError(bignum.FromDecimal(have, oraclePrec), want), tc.delta, "x=%s have=%s want=%s", x, have, want.Text('g', 40))
			}
		})
	}

	t.Run("Power", func(t *testing.T) {
		values := randDecimals(t, "Power/value", "0.01", "100", samples)
		powers := randDecimals(t, "Power/pow", "-5", "5", samples)
		for i := range values {
			have, err := Power(values[i], powers[i])
			require.NoError(t, err)
			want := bignum.Pow(bignum.FromDecimal(values[i], oraclePrec), bignum.FromDecimal(powers[i], oraclePrec))
			require.Lessf(t, bignum.AbsError(bignum.FromDecimal(have, oraclePrec), want), 1e-20, "%s^%s", values[i], powers[i])
		}
	})

	t.Run("Atan2", func(t *testing.T) {
		ys := randDecimals(t, "Atan2/y", "-10", "10", samples)
		xs := randDecimals(t, "Atan2/x", "-10", "10", samples)
		for i := range ys {
			have, err := Atan2(ys[i], xs[i])
			require.NoError(t, err)
			want := bignum.ArcTan2(bignum.FromDecimal(ys[i], oraclePrec), bignum.FromDecimal(xs[i], oraclePrec))
			require.Lessf(t, bignum.AbsError(bignum.FromDecimal(have, oraclePrec), want), 1e-27, "atan2(%s, %s)", ys[i], xs[i])
		}
	})
}

func TestFloat64(t *testing.T) {
	testFunc1("Exp", 1.4142135623730951, math.Exp, noError(Exp), 1e-14, t)
	testFunc1("Log", 1.4142135623730951, math.Log, Log, 1e-15, t)
	testFunc1("Log10", 1.4142135623730951, math.Log10, Log10, 1e-15, t)
	testFunc1("Sqrt", 1.4142135623730951, math.Sqrt, Sqrt, 1e-15, t)
	testFunc1("Cos", 1.4142135623730951, math.Cos, noError(Cos), 1e-15, t)
	testFunc1("Sin", 1.4142135623730951, math.Sin, noError(Sin), 1e-15, t)
	testFunc1("Tan", 1.4142135623730951, math.Tan, Tan, 1e-13, t)
	testFunc1("Asin", 0.7071067811865476, math.Asin, Asin, 1e-15, t)
	testFunc1("Acos", -0.3, math.Acos, Acos, 1e-15, t)
	testFunc1("Atan", -25, math.Atan, noError(Atan), 1e-15, t)
	testFunc1("Sinh", 1.4142135623730951, math.Sinh, noError(Sinh), 1e-14, t)
	testFunc1("Cosh", 1.4142135623730951, math.Cosh, noError(Cosh), 1e-14, t)
	testFunc1("Tanh", 1.4142135623730951, math.Tanh, noError(Tanh), 1e-15, t)
	testFunc2("Power", 2, 1.4142135623730951, math.Pow, Power, 1e-14, t)
	testFunc2("Atan2", -1, -1.4142135623730951, math.Atan2, Atan2, 1e-14, t)
}

func TestIdentities(t *testing.T) {

	t.Run("Exp(Log(x))", func(t *testing.T) {
		for _, x := range randDecimals(t, "ExpLog", "0.01", "100", samples) {
			have := Exp(must(Log(x)))
			require.Lessf(t, bignum.AbsError(bignum.FromDecimal(have, oraclePrec), bignum.FromDecimal(x, oraclePrec)), 1e-20, "x=%s", x)
		}
	})

	t.Run("Log(Exp(x))", func(t *testing.T) {
		for _, x := range randDecimals(t, "LogExp", "-5", "20", samples) {
			requireNear(t, x, must(Log(Exp(x))), "1e-21")
		}
	})

	t.Run("Sin^2+Cos^2", func(t *testing.T) {
		for _, x := range randDecimals(t, "Pythagoras", "-100", "100", samples) {
			s, c := Sin(x), Cos(x)
			requireNear(t, One, s.Mul(s).Add(c.Mul(c)), Epsilon.String())
		}
	})

	t.Run("Periodicity", func(t *testing.T) {
		for _, x := range randDecimals(t, "Periodicity", "-10", "10", samples) {
			requireNear(t, Cos(x), Cos(x.Add(twoPi)), "1e-27")
			requireNear(t, Sin(x), Sin(x.Sub(twoPi)), "1e-27")
		}
	})

	t.Run("Parity", func(t *testing.T) {
		for _, x := range randDecimals(t, "Parity", "-10", "10", samples) {
			requireEqual(t, Cos(x), Cos(x.Neg()))
			requireEqual(t, Sinh(x).Neg(), Sinh(x.Neg()))
			requireEqual(t, Cosh(x), Cosh(x.Neg()))
		}
	})

	t.Run("Cosh^2-Sinh^2", func(t *testing.T) {
		for _, x := range randDecimals(t, "Hyperbolic", "-5", "5", samples) {
			s, c := Sinh(x), Cosh(x)
			requireNear(t, One, c.Mul(c).Sub(s.Mul(s)), "1e-24")
		}
	})

	t.Run("Monotonicity", func(t *testing.T) {
		xs := randDecimals(t, "Monotonicity", "0.001", "50", samples)
		sort.Slice(xs, func(i, j int) bool { return xs[i].LessThan(xs[j]) })
		for i := 1; i < len(xs); i++ {
			require.True(t, Exp(xs[i-1]).LessThanOrEqual(Exp(xs[i])))
			require.True(t, must(Log(xs[i-1])).LessThanOrEqual(must(Log(xs[i]))))
			require.True(t, must(Sqrt(xs[i-1])).LessThanOrEqual(must(Sqrt(xs[i]))))
		}
	})

	t.Run("Range", func(t *testing.T) {
		for _, x := range randDecimals(t, "Range", "-1000", "1000", samples) {
			require.True(t, Abs(Sin(x)).LessThanOrEqual(One))
			require.True(t, Abs(Cos(x)).LessThanOrEqual(One))
			require.True(t, Abs(Tanh(x)).LessThanOrEqual(One))
			require.True(t, Abs(Atan(x)).LessThanOrEqual(halfPi.Round(Precision)))
		}
	})
}

func TestConcurrency(t *testing.T) {

	xs := randDecimals(t, "Concurrency", "-3", "3", samples)

	want := make([]decimal.Decimal, len(xs))
	for i, x := range xs {
		want[i] = Sin(Exp(x))
	}

	g, _ := errgroup.WithContext(context.Background())
	for w := 0; w < 8; w++ {
		g.Go(func() error {
			for i, x := range xs {
				if have := Sin(Exp(x)); !have.Equal(want[i]) {
					return ErrInvalidOperation
				}
			}
			return nil
		})
	}

	require.NoError(t, g.Wait())
}

func testFunc1(name string, x float64, f func(x float64) (y float64), g func(x decimal.Decimal) (decimal.Decimal, error), delta float64, t *testing.T) {
	t.Run(name, func(t *testing.T) {
		y, err := g(decimal.NewFromFloat(x))
		require.NoError(t, err)
		require.InDelta(t, f(x), y.InexactFloat64(), delta)
	})
}

func testFunc2(name string, x, e float64, f func(x, e float64) (y float64), g func(x, e decimal.Decimal) (decimal.Decimal, error), delta float64, t *testing.T) {
	t.Run(name, func(t *testing.T) {
		y, err := g(decimal.NewFromFloat(x), decimal.NewFromFloat(e))
		require.NoError(t, err)
		require.InDelta(t, f(x, e), y.InexactFloat64(), delta)
	})
}
