/*
Package decmath provides transcendental and algebraic functions on decimal numbers.

The functions live in package dmath and operate on github.com/shopspring/decimal values
with a fixed number of digits after the decimal point. Package accuracy measures their
error against arbitrary precision big.Float oracles from utils/bignum, on reproducible
samples drawn with utils/sampling.
*/
package decmath
