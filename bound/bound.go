// Copyright ©2026 optimgo. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bound

import (
	"fmt"
	"math"
)

type bndKind uint8

const (
	// bndNone the side is unrestricted (conceptually ±∞).
	bndNone bndKind = iota
	// bndScalar one value applied to every variable.
	bndScalar
	// bndVector one value per variable.
	bndVector
)

// Bound describes one side of a box constraint: absent, a uniform
// scalar, or a per-element vector. The zero Bound is the absent bound.
type Bound struct {
	kind bndKind
	s    float64
	v    []float64
}

// None returns the absent bound (the side is unrestricted).
func None() Bound { return Bound{} }

// Scalar returns a uniform bound applying v to every variable.
func Scalar(v float64) Bound { return Bound{kind: bndScalar, s: v} }

// Vector returns a per-element bound. The slice is referenced, not
// copied; it must match the length of the arrays it is used with.
func Vector(v []float64) Bound { return Bound{kind: bndVector, v: v} }

// side is a Bound resolved against a problem size n, with the
// element access settled once per call so per-element loops stay
// branch-predictable:
//   - an absent side carries ±∞ in s
//   - a scalar side carries its value in s
//   - a vector side carries its storage in v
type side struct {
	bounded bool
	scalar  bool
	s       float64
	v       []float64
}

func (s *side) at(i int) float64 {
	if s.scalar {
		return s.s
	}
	return s.v[i]
}

// resolve checks the bound shape against n and settles element access.
// unrestricted is the value an absent side resolves to (-∞ for a lower
// bound, +∞ for an upper bound).
func (b Bound) resolve(n int, unrestricted float64) (side, error) {
	switch b.kind {
	case bndScalar:
		return side{bounded: true, scalar: true, s: b.s}, nil
	case bndVector:
		if len(b.v) != n {
			return side{}, errShape("bound", len(b.v), n)
		}
		return side{bounded: true, v: b.v}, nil
	default:
		return side{scalar: true, s: unrestricted}, nil
	}
}

// resolveBox resolves both sides against n and verifies lᵢ ≤ uᵢ for
// every i before any operation writes output. The feasibility test is
// !(lᵢ ≤ uᵢ) so that a NaN bound value, whose every comparison is
// false, is caught explicitly instead of slipping through.
func resolveBox(n int, lo, hi Bound) (l, u side, err error) {
	if l, err = lo.resolve(n, math.Inf(-1)); err != nil {
		return
	}
	if u, err = hi.resolve(n, math.Inf(1)); err != nil {
		return
	}
	switch {
	case l.scalar && u.scalar:
		if !(l.s <= u.s) {
			err = fmt.Errorf("%w: lo=%v, hi=%v", ErrBounds, l.s, u.s)
		}
	case l.scalar:
		for i, ui := range u.v {
			if !(l.s <= ui) {
				err = errBoundAt(i, l.s, ui)
				return
			}
		}
	case u.scalar:
		for i, li := range l.v {
			if !(li <= u.s) {
				err = errBoundAt(i, li, u.s)
				return
			}
		}
	default:
		lv, uv := l.v, u.v
		if len(uv) < len(lv) {
			panic("bound check error")
		}
		for i, li := range lv {
			if !(li <= uv[i]) {
				err = errBoundAt(i, li, uv[i])
				return
			}
		}
	}
	return
}

// Orientation is the sign convention applied to a direction vector to
// define which way counts as moving forward.
type Orientation int

const (
	// Forward the direction is taken as given.
	Forward Orientation = 1
	// Backward the direction is negated, as when a descent move follows -g.
	Backward Orientation = -1
)

// Orient derives an Orientation from the sign of s.
// A zero or NaN s has no usable sign and yields ErrOrientation.
func Orient(s float64) (Orientation, error) {
	if s > zero {
		return Forward, nil
	}
	if s < zero {
		return Backward, nil
	}
	return 0, fmt.Errorf("%w: sign of %v is undefined", ErrOrientation, s)
}

// sign is the hoisted ±1 factor for per-element loops.
// Any positive Orientation counts as Forward, any negative as Backward.
func (o Orientation) sign() (float64, error) {
	if o > 0 {
		return one, nil
	}
	if o < 0 {
		return -one, nil
	}
	return zero, fmt.Errorf("%w: zero orientation", ErrOrientation)
}
