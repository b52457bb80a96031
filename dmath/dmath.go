// Package dmath implements elementary transcendental and algebraic functions
// (exponential, logarithm, power, square root, trigonometric, hyperbolic)
// directly on decimal values, without going through binary floating point.
//
// Values are github.com/shopspring/decimal decimals. Since that type is
// arbitrary precision, the package bounds it: every intermediate product and
// quotient is rounded to Precision+GuardDigits places after the decimal point,
// and every returned value is rounded to Precision places. All series
// evaluations stop once a partial sum reaches a fixed point on that grid, or
// after MaximumIterations terms, whichever comes first.
//
// All functions are pure and safe for concurrent use.
package dmath

import (
	"github.com/shopspring/decimal"
)

const (
	// Precision is the number of digits after the decimal point kept in
	// returned values.
	Precision = 28

	// GuardDigits is the number of extra digits carried by intermediate
	// results.
	GuardDigits = 8

	// MaximumIterations bounds the number of terms of every series and
	// iterative refinement.
	MaximumIterations = 100

	// MaximumExpArgument bounds the natural logarithm of the magnitude of
	// results. Exp, Sinh, Cosh, PowerN and Power overflow beyond
	// e^MaximumExpArgument, which has 43430 integer digits.
	MaximumExpArgument = 100000

	workingPrecision = Precision + GuardDigits
)

const (
	eLiteral         = "2.7182818284590452353602874713526624977572470936999595749"
	piLiteral        = "3.14159265358979323846264338327950288419716939937510"
	epsilonLiteral   = "0.0000000000000000001"
	eInvertedLiteral = "0.3678794411714423215955237701614608674458111310317678"
	log10InvLiteral  = "0.434294481903251827651128918916605082294397005803666566114"
	ln10Literal      = "2.302585092994045684017991454684364207601101488628772976033"
	halfPiLiteral    = "1.570796326794896619231321691639751442098584699687552910487"
	quarterPiLiteral = "0.785398163397448309615660845819875721049292349843776455243"
	twoPiLiteral     = "6.28318530717958647692528676655900576839433879875021"
)

var (
	// Zero is 0.
	Zero = decimal.Zero

	// One is 1.
	One = decimal.NewFromInt(1)

	// E is Euler's number.
	E = decimal.RequireFromString(eLiteral)

	// Pi is the ratio of a circle's circumference to its diameter.
	Pi = decimal.RequireFromString(piLiteral)

	// Epsilon is the tolerance of the integer test used by Power.
	Epsilon = decimal.RequireFromString(epsilonLiteral)
)

var (
	two       = decimal.NewFromInt(2)
	half      = decimal.New(5, -1)
	eInverted = decimal.RequireFromString(eInvertedLiteral)
	log10Inv  = decimal.RequireFromString(log10InvLiteral)
	ln10      = decimal.RequireFromString(ln10Literal)
	halfPi    = decimal.RequireFromString(halfPiLiteral)
	quarterPi = decimal.RequireFromString(quarterPiLiteral)
	twoPi     = decimal.RequireFromString(twoPiLiteral)

	maxExpArgument = decimal.NewFromInt(MaximumExpArgument)
	// e^x rounds to zero on the working grid below this bound.
	minExpArgument = decimal.NewFromInt(-84)
)

// HalfPi returns Pi/2 with the full precision of the package constants.
func HalfPi() decimal.Decimal {
	return halfPi
}

// QuarterPi returns Pi/4 with the full precision of the package constants.
func QuarterPi() decimal.Decimal {
	return quarterPi
}

// TwoPi returns 2*Pi with the full precision of the package constants.
func TwoPi() decimal.Decimal {
	return twoPi
}
