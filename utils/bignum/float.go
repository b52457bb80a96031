package bignum

import (
	"fmt"
	"math"
	"math/big"

	"github.com/ALTree/bigfloat"
	"github.com/shopspring/decimal"
)

const pi = "3.1415926535897932384626433832795028841971693993751058209749445923078164062862089986280348253421170679821480865132823066470938446095505822317253594081284811174502841027019385211055596446229489549303819644288109756659334461284756482337867831652712019091456485669234603486104543266482133936072602491412737245870066063155881748815209209628292540917153643678925903600113305305488204665213841469519415116094330572703657595919530921861173819326117931051185480744623799627495673518857527248912279381830119491298336733624406566430860213949463952247371907021798609437027705392171762931767523846748184676694051320005681271452635608277857713427577896091736371787214684409012249534301465495853710507922796892589235420199561121290219608640344181598136297747713099605187072113499999983729780499510597317328160963185950244594553469083026425223082533446850352619311881710100031378387528865875332083814206171776691473035982534904287554687311595628638823537875937519577818577805321712268066130019278766111959092164201989"

// Pi returns Pi with prec bits of precision.
func Pi(prec uint) *big.Float {
	pi, _ := new(big.Float).SetPrec(prec).SetString(pi)
	return pi
}

// NewFloat creates a new big.Float element with "prec" bits of precision.
// Valide types for x are: int, int64, uint, uint64, float64, *big.Int, *big.Float or decimal.Decimal.
func NewFloat(x interface{}, prec uint) (y *big.Float) {

	y = new(big.Float)
	y.SetPrec(prec) // decimal precision

	if x == nil {
		return
	}

	switch x := x.(type) {
	case int:
		y.SetInt64(int64(x))
	case int64:
		y.SetInt64(x)
	case uint:
		y.SetUint64(uint64(x))
	case uint64:
		y.SetUint64(x)
	case float64:
		y.SetFloat64(x)
	case *big.Int:
		y.SetInt(x)
	case *big.Float:
		y.Set(x)
	case decimal.Decimal:
		y.SetRat(x.Rat())
	default:
		panic(fmt.Errorf("invalid x.(type): valide types are int, int64, uint, uint64, float64, *big.Int, *big.Float or decimal.Decimal but is %T", x))
	}

	return
}

// Cos is an iterative arbitrary precision computation of Cos(x)
// Iterative process with an error of ~10^{−0.60206*k} = (1/4)^k after k iterations.
// ref : Johansson, B. Tomas, An elementary algorithm to evaluate trigonometric functions to high precision, 2018
func Cos(x *big.Float) (cosx *big.Float) {
	tmp := new(big.Float)

	t := NewFloat(0.5, x.Prec())
	half := new(big.Float).Copy(t)

	for i := uint(1); i < (x.Prec()>>1)-1; i++ {
		t.Mul(t, half)
	}

	s := new(big.Float).Mul(x, t)
	s.Mul(s, x)
	s.Mul(s, t)

	four := NewFloat(4.0, x.Prec())

	for i := uint(1); i < x.Prec()>>1; i++ { // (1/4)^k = (1/2)^(2*k)
		tmp.Sub(four, s)
		s.Mul(s, tmp)
	}

	cosx = new(big.Float).Quo(s, NewFloat(2.0, x.Prec()))
	cosx.Sub(NewFloat(1.0, x.Prec()), cosx)
	return
}

// Sin returns sin(x) as cos(x - Pi/2).
func Sin(x *big.Float) (sinx *big.Float) {
	halfPi := Pi(x.Prec())
	halfPi.Quo(halfPi, new(big.Float).SetInt64(2))
	return Cos(new(big.Float).Sub(x, halfPi))
}

// Tan returns sin(x)/cos(x).
func Tan(x *big.Float) (tanx *big.Float) {
	return new(big.Float).Quo(Sin(x), Cos(x))
}

// ArcTan returns atan(x), refined by Newton iterations on sin(t) - x*cos(t)
// from the float64 approximation.
func ArcTan(x *big.Float) (atanx *big.Float) {

	prec := x.Prec()

	f, _ := x.Float64()
	atanx = NewFloat(math.Atan(f), prec)

	num := new(big.Float).SetPrec(prec)
	den := new(big.Float).SetPrec(prec)

	// each iteration doubles the number of correct bits
	for bits := uint(53); bits < prec<<1; bits <<= 1 {
		sin, cos := Sin(atanx), Cos(atanx)
		num.Mul(x, cos)
		num.Sub(sin, num)
		den.Mul(x, sin)
		den.Add(cos, den)
		num.Quo(num, den)
		atanx.Sub(atanx, num)
	}

	return
}

// ArcSin returns asin(x) for x in [-1, 1].
func ArcSin(x *big.Float) (asinx *big.Float) {

	one := NewFloat(1, x.Prec())

	if new(big.Float).Abs(x).Cmp(one) == 0 {
		asinx = Pi(x.Prec())
		asinx.Quo(asinx, NewFloat(2, x.Prec()))
		if x.Sign() < 0 {
			asinx.Neg(asinx)
		}
		return
	}

	tmp := new(big.Float).Mul(x, x)
	tmp.Sub(one, tmp)
	tmp.Sqrt(tmp)
	tmp.Quo(x, tmp)

	return ArcTan(tmp)
}

// ArcCos returns acos(x) = Pi/2 - asin(x) for x in [-1, 1].
func ArcCos(x *big.Float) (acosx *big.Float) {
	acosx = Pi(x.Prec())
	acosx.Quo(acosx, NewFloat(2, x.Prec()))
	return acosx.Sub(acosx, ArcSin(x))
}

// ArcTan2 returns the angle of the point (x, y), in [-Pi, Pi], and 0 at the origin.
func ArcTan2(y, x *big.Float) (atan2 *big.Float) {

	prec := x.Prec()

	switch {
	case x.Sign() == 0 && y.Sign() == 0:
		return NewFloat(0, prec)
	case x.Sign() == 0:
		atan2 = Pi(prec)
		atan2.Quo(atan2, NewFloat(2, prec))
		if y.Sign() < 0 {
			atan2.Neg(atan2)
		}
		return
	}

	atan2 = ArcTan(new(big.Float).Quo(y, x))

	if x.Sign() < 0 {
		if y.Sign() < 0 {
			atan2.Sub(atan2, Pi(prec))
		} else {
			atan2.Add(atan2, Pi(prec))
		}
	}

	return
}

// Sqrt returns the square root of x with the precision of x.
func Sqrt(x *big.Float) (sqrt *big.Float) {
	return new(big.Float).SetPrec(x.Prec()).Sqrt(x)
}

// Log return ln(x) with 2^precisions bits.
func Log(x *big.Float) (ln *big.Float) {
	return bigfloat.Log(x)
}

// Log10 returns log10(x) = ln(x)/ln(10).
func Log10(x *big.Float) (log10 *big.Float) {
	return new(big.Float).Quo(Log(x), Log(NewFloat(10, x.Prec())))
}

// Exp returns exp(x) with 2^precisions bits.
func Exp(x *big.Float) (exp *big.Float) {
	return bigfloat.Exp(x)
}

// Pow returns x^y
func Pow(x, y *big.Float) (pow *big.Float) {
	return bigfloat.Pow(x, y)
}

// SinH returns hyperbolic sin(x) with 2^precisions bits.
func SinH(x *big.Float) (sinh *big.Float) {
	sinh = new(big.Float).Set(x)
	sinh.Add(sinh, sinh)
	sinh.Neg(sinh)
	sinh = Exp(sinh)
	sinh.Neg(sinh)
	sinh.Add(sinh, NewFloat(1, x.Prec()))
	tmp := new(big.Float).Set(x)
	tmp.Neg(tmp)
	tmp = Exp(tmp)
	tmp.Add(tmp, tmp)
	sinh.Quo(sinh, tmp)
	return
}

// CosH returns hyperbolic cos(x) = (e^x + e^-x)/2.
func CosH(x *big.Float) (cosh *big.Float) {
	cosh = Exp(x)
	tmp := new(big.Float).Quo(NewFloat(1, x.Prec()), cosh)
	cosh.Add(cosh, tmp)
	return cosh.Quo(cosh, NewFloat(2, x.Prec()))
}

// TanH returns hyperbolic tan(x) with 2^precisions bits.
func TanH(x *big.Float) (tanh *big.Float) {
	tanh = new(big.Float).Set(x)
	tanh.Add(tanh, tanh)
	tanh = Exp(tanh)
	tmp := new(big.Float).Set(tanh)
	tmp.Add(tmp, NewFloat(1, x.Prec()))
	tanh.Sub(tanh, NewFloat(1, x.Prec()))
	tanh.Quo(tanh, tmp)
	return
}
