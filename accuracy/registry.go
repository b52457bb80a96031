package accuracy

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
	"github.com/tuneinsight/decmath/dmath"
	"github.com/tuneinsight/decmath/utils/bignum"
)

// ErrUnknownFunction is returned when a function name is not registered.
var ErrUnknownFunction = errors.New("unknown function")

// Interval is a closed sampling interval.
// Integer intervals are sampled with no digit after the decimal point.
type Interval struct {
	Min, Max decimal.Decimal
	Integer  bool
}

// Function is a dmath function together with the domain on which it is swept
// and a high precision oracle.
type Function struct {
	Name string
	// Args are the sampling intervals of the arguments, in call order.
	Args []Interval
	// Tolerance is the largest error, as measured by bignum.AbsError,
	// accepted on Args.
	Tolerance float64
	Eval      func(args ...decimal.Decimal) (decimal.Decimal, error)
	Oracle    func(args ...*big.Float) *big.Float
}

func interval(min, max string) Interval {
	return Interval{Min: decimal.RequireFromString(min), Max: decimal.RequireFromString(max)}
}

func unary(f func(decimal.Decimal) decimal.Decimal) func(args ...decimal.Decimal) (decimal.Decimal, error) {
	return func(args ...decimal.Decimal) (decimal.Decimal, error) {
		return f(args[0]), nil
	}
}

func unaryErr(f func(decimal.Decimal) (decimal.Decimal, error)) func(args ...decimal.Decimal) (decimal.Decimal, error) {
	return func(args ...decimal.Decimal) (decimal.Decimal, error) {
		return f(args[0])
	}
}

func oracle1(f func(*big.Float) *big.Float) func(args ...*big.Float) *big.Float {
	return func(args ...*big.Float) *big.Float {
		return f(args[0])
	}
}

const (
	// error bound of a single rounding to dmath.Precision places plus the
	// accumulated error on the working grid
	tightTolerance = 1e-27
	// the series of Log is truncated after dmath.MaximumIterations terms
	// just above a reduction boundary, which leaves about 2e-22
	logTolerance   = 1e-21
	powerTolerance = 1e-20
)

// Functions returns the registered functions in a fixed order.
func Functions() []Function {
	return []Function{
		{
			Name:      "Exp",
			Args:      []Interval{interval("-20", "20")},
			Tolerance: tightTolerance,
			Eval:      unary(dmath.Exp),
			Oracle:    oracle1(bignum.Exp),
		},
		{
			Name:      "Log",
			Args:      []Interval{interval("0.000001", "1000")},
			Tolerance: logTolerance,
			Eval:      unaryErr(dmath.Log),
			Oracle:    oracle1(bignum.Log),
		},
		{
			Name:      "Log10",
			Args:      []Interval{interval("0.000001", "1000")},
			Tolerance: logTolerance,
			Eval:      unaryErr(dmath.Log10),
			Oracle:    oracle1(bignum.Log10),
		},
		{
			Name:      "Power",
			Args:      []Interval{interval("0.01", "100"), interval("-5", "5")},
			Tolerance: powerTolerance,
			Eval: func(args ...decimal.Decimal) (decimal.Decimal, error) {
				return dmath.Power(args[0], args[1])
			},
			Oracle: func(args ...*big.Float) *big.Float {
				return bignum.Pow(args[0], args[1])
			},
		},
		{
			Name:      "PowerN",
			Args:      []Interval{interval("0.5", "10"), {Min: decimal.NewFromInt(-20), Max: decimal.NewFromInt(20), Integer: true}},
			Tolerance: tightTolerance,
			Eval: func(args ...decimal.Decimal) (decimal.Decimal, error) {
				return dmath.PowerN(args[0], args[1].IntPart()), nil
			},
			Oracle: func(args ...*big.Float) *big.Float {
				return bignum.Pow(args[0], args[1])
			},
		},
		{
			Name:      "Sqrt",
			Args:      []Interval{interval("0", "1000000")},
			Tolerance: tightTolerance,
			Eval:      unaryErr(dmath.Sqrt),
			Oracle:    oracle1(bignum.Sqrt),
		},
		{
			Name:      "Sin",
			Args:      []Interval{interval("-100", "100")},
			Tolerance: tightTolerance,
			Eval:      unary(dmath.Sin),
			Oracle:    oracle1(bignum.Sin),
		},
		{
			Name:      "Cos",
			Args:      []Interval{interval("-100", "100")},
			Tolerance: tightTolerance,
			Eval:      unary(dmath.Cos),
			Oracle:    oracle1(bignum.Cos),
		},
		{
			Name:      "Tan",
			Args:      []Interval{interval("-1.5", "1.5")},
			Tolerance: tightTolerance,
			Eval:      unaryErr(dmath.Tan),
			Oracle:    oracle1(bignum.Tan),
		},
		{
			Name:      "Asin",
			Args:      []Interval{interval("-1", "1")},
			Tolerance: tightTolerance,
			Eval:      unaryErr(dmath.Asin),
			Oracle:    oracle1(bignum.ArcSin),
		},
		{
			Name:      "Acos",
			Args:      []Interval{interval("-1", "1")},
			Tolerance: tightTolerance,
			Eval:      unaryErr(dmath.Acos),
			Oracle:    oracle1(bignum.ArcCos),
		},
		{
			Name:      "Atan",
			Args:      []Interval{interval("-100", "100")},
			Tolerance: tightTolerance,
			Eval:      unary(dmath.Atan),
			Oracle:    oracle1(bignum.ArcTan),
		},
		{
			Name:      "Atan2",
			Args:      []Interval{interval("-10", "10"), interval("-10", "10")},
			Tolerance: tightTolerance,
			Eval: func(args ...decimal.Decimal) (decimal.Decimal, error) {
				return dmath.Atan2(args[0], args[1])
			},
			Oracle: func(args ...*big.Float) *big.Float {
				return bignum.ArcTan2(args[0], args[1])
			},
		},
		{
			Name:      "Sinh",
			Args:      []Interval{interval("-20", "20")},
			Tolerance: tightTolerance,
			Eval:      unary(dmath.Sinh),
			Oracle:    oracle1(bignum.SinH),
		},
		{
			Name:      "Cosh",
			Args:      []Interval{interval("-20", "20")},
			Tolerance: tightTolerance,
			Eval:      unary(dmath.Cosh),
			Oracle:    oracle1(bignum.CosH),
		},
		{
			Name:      "Tanh",
			Args:      []Interval{interval("-20", "20")},
			Tolerance: tightTolerance,
			Eval:      unary(dmath.Tanh),
			Oracle:    oracle1(bignum.TanH),
		},
	}
}

// Lookup returns the registered functions with the given names, in the order
// of names, or all of them if names is empty.
func Lookup(names []string) ([]Function, error) {

	all := Functions()

	if len(names) == 0 {
		return all, nil
	}

	byName := make(map[string]Function, len(all))
	for _, f := range all {
		byName[f.Name] = f
	}

	fns := make([]Function, 0, len(names))
	for _, name := range names {
		f, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFunction, name)
		}
		fns = append(fns, f)
	}

	return fns, nil
}
