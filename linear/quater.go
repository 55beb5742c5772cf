// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package linear implements quaternion math.
package linear

import (
	"math"
	"strconv"
)

// Q is a quaternion of float64.
// Q values are immutable: every operation returns a new Q.
// The zero value is the zero quaternion.
type Q struct {
	r, i, j, k float64
	// Cached at construction.
	mod float64
}

// New returns the quaternion r + i·i + j·j + k·k.
// Any value is accepted, including NaN and ±Inf.
func New(r, i, j, k float64) Q {
	return Q{r: r, i: i, j: j, k: k, mod: modulus(r, i, j, k)}
}

// Components returns the components of q in the
// order real, i, j, k.
func (q Q) Components() (r, i, j, k float64) { return q.r, q.i, q.j, q.k }

// Real returns the real part of q.
func (q Q) Real() float64 { return q.r }

// I returns the i component of q.
func (q Q) I() float64 { return q.i }

// J returns the j component of q.
func (q Q) J() float64 { return q.j }

// K returns the k component of q.
func (q Q) K() float64 { return q.k }

// Len returns the modulus of q, rounded to six
// decimal digits.
func (q Q) Len() float64 { return q.mod }

// WithReal returns a copy of q whose real part is v.
// v must be of an integer or floating-point type.
func (q Q) WithReal(v any) (Q, error) {
	x, err := component(v)
	if err != nil {
		return q, err
	}
	return New(x, q.i, q.j, q.k), nil
}

// WithI returns a copy of q whose i component is v.
// v must be of an integer or floating-point type.
func (q Q) WithI(v any) (Q, error) {
	x, err := component(v)
	if err != nil {
		return q, err
	}
	return New(q.r, x, q.j, q.k), nil
}

// WithJ returns a copy of q whose j component is v.
// v must be of an integer or floating-point type.
func (q Q) WithJ(v any) (Q, error) {
	x, err := component(v)
	if err != nil {
		return q, err
	}
	return New(q.r, q.i, x, q.k), nil
}

// WithK returns a copy of q whose k component is v.
// v must be of an integer or floating-point type.
func (q Q) WithK(v any) (Q, error) {
	x, err := component(v)
	if err != nil {
		return q, err
	}
	return New(q.r, q.i, q.j, x), nil
}

// AddQ returns p + q.
func AddQ(p, q Q) Q {
	return New(p.r+q.r, p.i+q.i, p.j+q.j, p.k+q.k)
}

// SubQ returns p - q.
func SubQ(p, q Q) Q {
	return New(p.r-q.r, p.i-q.i, p.j-q.j, p.k-q.k)
}

// MulQ returns the Hamilton product p ⋅ q.
// In general, MulQ(p, q) != MulQ(q, p).
func MulQ(p, q Q) Q {
	return New(
		p.r*q.r-p.i*q.i-p.j*q.j-p.k*q.k,
		p.r*q.i+p.i*q.r+p.j*q.k-p.k*q.j,
		p.r*q.j-p.i*q.k+p.j*q.r+p.k*q.i,
		p.r*q.k+p.i*q.j-p.j*q.i+p.k*q.r,
	)
}

// ScaleQ returns s ⋅ q, which is the same as q ⋅ s.
func ScaleQ(s float64, q Q) Q {
	return New(s*q.r, s*q.i, s*q.j, s*q.k)
}

// DivQ returns p ⋅ q⁻¹.
// It fails with ErrDivisionByZero if q is the
// zero quaternion.
func DivQ(p, q Q) (Q, error) {
	n := NormSq(q)
	if n == 0 {
		return Q{}, errZeroQ("divide by", q)
	}
	return ScaleQ(1/n, MulQ(p, ConjQ(q))), nil
}

// QuoQ returns q ⋅ 1/s.
// It fails with ErrDivisionByZero if s is 0.
func QuoQ(q Q, s float64) (Q, error) {
	if s == 0 {
		return Q{}, errZeroScalar
	}
	return ScaleQ(1/s, q), nil
}

// ConjQ returns the conjugate of q.
func ConjQ(q Q) Q {
	return New(q.r, -q.i, -q.j, -q.k)
}

// NormSq returns q ⋅ q*, which is a real number.
// It is computed directly so the imaginary terms
// vanish exactly.
func NormSq(q Q) float64 {
	return q.r*q.r + q.i*q.i + q.j*q.j + q.k*q.k
}

// LenQ returns the modulus of q.
func LenQ(q Q) float64 { return q.mod }

// InvQ returns q⁻¹.
// It fails with ErrDivisionByZero if q is the
// zero quaternion.
func InvQ(q Q) (Q, error) {
	n := NormSq(q)
	if n == 0 {
		return Q{}, errZeroQ("invert", q)
	}
	return ScaleQ(1/n, ConjQ(q)), nil
}

// Eq reports whether every component of q is
// exactly equal to the respective component of p.
func (q Q) Eq(p Q) bool {
	return q.r == p.r && q.i == p.i && q.j == p.j && q.k == p.k
}

// CompareQ compares the moduli of p and q.
// It returns -1 if p is shorter, 1 if q is shorter
// and 0 otherwise.
// Distinct quaternions may compare as 0.
// A NaN modulus is considered shorter than any other
// and equal to another NaN.
func CompareQ(p, q Q) int {
	pnan, qnan := math.IsNaN(p.mod), math.IsNaN(q.mod)
	switch {
	case pnan && qnan:
		return 0
	case pnan || p.mod < q.mod:
		return -1
	case qnan || p.mod > q.mod:
		return 1
	}
	return 0
}

// modulus computes sqrt(r² + i² + j² + k²) rounded
// to six decimal digits.
// Components are scaled by the largest magnitude
// so the squares cannot overflow.
func modulus(r, i, j, k float64) float64 {
	switch {
	case math.IsNaN(r) || math.IsNaN(i) || math.IsNaN(j) || math.IsNaN(k):
		return math.NaN()
	case math.IsInf(r, 0) || math.IsInf(i, 0) || math.IsInf(j, 0) || math.IsInf(k, 0):
		return math.Inf(1)
	}
	r, i, j, k = math.Abs(r), math.Abs(i), math.Abs(j), math.Abs(k)
	m := math.Max(math.Max(r, i), math.Max(j, k))
	if m == 0 {
		return 0
	}
	r, i, j, k = r/m, i/m, j/m, k/m
	return round6(m * math.Sqrt(r*r+i*i+j*j+k*k))
}

// round6 rounds x to six decimal digits, halves
// to even.
// Values with a fractional part take a round trip
// through strconv, which dominates the cost of New.
func round6(x float64) float64 {
	if math.IsInf(x, 0) || math.IsNaN(x) || x == math.Trunc(x) {
		return x
	}
	y, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 6, 64), 64)
	if err != nil {
		return x
	}
	return y
}
