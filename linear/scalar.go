// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"fmt"
)

// Operand is either a Q or a Scalar.
type Operand interface {
	operand()
}

// Scalar is a real number used as an Operand.
type Scalar float64

func (Q) operand()      {}
func (Scalar) operand() {}

// Mul returns x ⋅ y.
// If both operands are Q, it is the same as MulQ.
// If one of them is a Scalar, it is the same as
// ScaleQ, regardless of the operand order.
// At least one operand must be a Q.
func Mul(x, y Operand) (Q, error) {
	switch x := x.(type) {
	case Q:
		switch y := y.(type) {
		case Q:
			return MulQ(x, y), nil
		case Scalar:
			return ScaleQ(float64(y), x), nil
		}
	case Scalar:
		if y, ok := y.(Q); ok {
			return ScaleQ(float64(x), y), nil
		}
	}
	return Q{}, errOperands("multiply", x, y)
}

// Div returns x ⋅ y⁻¹.
// Q / Q is the same as DivQ and Q / Scalar is
// the same as QuoQ.
// Scalar / Q is the Scalar times the inverse of
// the Q.
// At least one operand must be a Q.
func Div(x, y Operand) (Q, error) {
	switch x := x.(type) {
	case Q:
		switch y := y.(type) {
		case Q:
			return DivQ(x, y)
		case Scalar:
			return QuoQ(x, float64(y))
		}
	case Scalar:
		if y, ok := y.(Q); ok {
			inv, err := InvQ(y)
			if err != nil {
				return Q{}, err
			}
			return ScaleQ(float64(x), inv), nil
		}
	}
	return Q{}, errOperands("divide", x, y)
}

// Equal reports whether x and y are equal quaternions.
// It fails with ErrTypeMismatch unless both
// operands are Q.
func Equal(x, y Operand) (bool, error) {
	p, q, err := pair("compare", x, y)
	if err != nil {
		return false, err
	}
	return p.Eq(q), nil
}

// Less reports whether the modulus of x is less
// than the modulus of y.
// A NaN modulus is never less than another.
// It fails with ErrTypeMismatch unless both
// operands are Q.
func Less(x, y Operand) (bool, error) {
	p, q, err := pair("compare", x, y)
	if err != nil {
		return false, err
	}
	return p.mod < q.mod, nil
}

// LessEq reports whether the modulus of x is less
// than or equal to the modulus of y.
// A NaN modulus is never less than or equal to another.
// It fails with ErrTypeMismatch unless both
// operands are Q.
func LessEq(x, y Operand) (bool, error) {
	p, q, err := pair("compare", x, y)
	if err != nil {
		return false, err
	}
	return p.mod <= q.mod, nil
}

func pair(op string, x, y Operand) (p, q Q, err error) {
	p, ok := x.(Q)
	if ok {
		q, ok = y.(Q)
	}
	if !ok {
		err = errOperands(op, x, y)
	}
	return
}

// component converts v to a float64 component.
func component(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case Scalar:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int8:
		return float64(x), nil
	case int16:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint:
		return float64(x), nil
	case uint8:
		return float64(x), nil
	case uint16:
		return float64(x), nil
	case uint32:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case uintptr:
		return float64(x), nil
	}
	return 0, fmt.Errorf("%w: cannot set component to %T", ErrInvalidArgument, v)
}
