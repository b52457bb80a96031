package dmath

import (
	"errors"
)

var (
	// ErrInvalidArgument is returned when an argument lies outside the
	// domain of a function.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOverflow is returned by Sqrt for negative arguments, and by Power
	// when the magnitude of the result exceeds e^MaximumExpArgument. Exp,
	// Sinh, Cosh and PowerN panic with an error wrapping it in that case.
	ErrOverflow = errors.New("overflow")

	// ErrInvalidOperation is returned by Power when the result is undefined
	// or not a real number.
	ErrInvalidOperation = errors.New("invalid operation")
)
