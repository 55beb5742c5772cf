// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument means that a component was
	// given a value that is not a number.
	ErrInvalidArgument = errors.New("linear: invalid argument")
	// ErrTypeMismatch means that an operation was given
	// an operand of a type it is not defined for.
	ErrTypeMismatch = errors.New("linear: type mismatch")
	// ErrDivisionByZero means that a division by 0 or by
	// the zero quaternion was attempted.
	ErrDivisionByZero = errors.New("linear: division by zero")
)

var errZeroScalar = fmt.Errorf("%w: scalar is 0", ErrDivisionByZero)

func errZeroQ(op string, q Q) error {
	return fmt.Errorf("%w: cannot %s %v", ErrDivisionByZero, op, q)
}

func errOperands(op string, x, y Operand) error {
	return fmt.Errorf("%w: cannot %s %T and %T", ErrTypeMismatch, op, x, y)
}
