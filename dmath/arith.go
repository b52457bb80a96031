package dmath

import (
	"github.com/shopspring/decimal"
)

// mul returns a*b rounded to the working grid.
func mul(a, b decimal.Decimal) decimal.Decimal {
	return a.Mul(b).Round(workingPrecision)
}

// quo returns a/b rounded to the working grid.
// Panics if b is zero.
func quo(a, b decimal.Decimal) decimal.Decimal {
	return a.DivRound(b, workingPrecision)
}

// quoInt returns a/n rounded to the working grid.
func quoInt(a decimal.Decimal, n int64) decimal.Decimal {
	return quo(a, decimal.NewFromInt(n))
}

// finish rounds an intermediate result to the returned precision.
func finish(x decimal.Decimal) decimal.Decimal {
	return x.Round(Precision)
}
