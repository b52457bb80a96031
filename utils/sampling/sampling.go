// Package sampling implements sampling of bytes, integers and decimals from a PRNG.
package sampling

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"math/big"

	"github.com/shopspring/decimal"
)

// RandUint64 returns a value between 0 and 0xFFFFFFFFFFFFFFFF read from r.
func RandUint64(r io.Reader) (uint64, error) {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := io.ReadFull(r, b); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// RandFloat64 returns a float between min and max read from r.
func RandFloat64(r io.Reader, min, max float64) (float64, error) {
	u, err := RandUint64(r)
	if err != nil {
		return 0, err
	}
	f := float64(u) / 1.8446744073709552e+19
	return min + f*(max-min), nil
}

// RandInt returns an Int uniformly distributed in [0, max-1] read from r.
func RandInt(r io.Reader, max *big.Int) (n *big.Int, err error) {
	return rand.Int(r, max)
}

// RandDecimal returns a decimal uniformly distributed in [min, max] with the
// given number of digits after the decimal point, read from r.
func RandDecimal(r io.Reader, min, max decimal.Decimal, places int32) (decimal.Decimal, error) {

	if min.GreaterThan(max) {
		return decimal.Zero, fmt.Errorf("invalid interval: min=%s > max=%s", min, max)
	}

	lo := min.RoundCeil(places)
	hi := max.RoundFloor(places)

	if lo.GreaterThan(hi) {
		return decimal.Zero, fmt.Errorf("invalid interval: [%s, %s] contains no decimal with %d places", min, max, places)
	}

	// number of grid points in [lo, hi]
	steps := hi.Sub(lo).Shift(places).BigInt()
	steps.Add(steps, big.NewInt(1))

	n, err := RandInt(r, steps)
	if err != nil {
		return decimal.Zero, err
	}

	return lo.Add(decimal.NewFromBigInt(n, -places)), nil
}
