// Copyright ©2026 optimgo. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bound implements the box-constraint kernels used by
// gradient-based bound-constrained optimizers: projection of a point
// onto the feasible box, projection of a search direction or gradient,
// feasible step limits along a direction, and free/active variable
// selection.
//
// Every operation is pure with respect to anything but its explicit
// destination buffer and performs no allocation of its own, so the same
// caller-owned buffers can be recycled across optimizer iterations.
// Bounds are validated eagerly (including NaN detection) before any
// output is written; NaN inside a point or direction is deliberately
// not checked and propagates through the arithmetic.
package bound

import (
	"errors"
	"fmt"
)

const (
	zero = 0.0
	one  = 1.0
)

var (
	// ErrBounds reports an infeasible box: some lᵢ > uᵢ, or a NaN bound
	// value (a NaN comparison is silently false, so it is detected with
	// an inverted comparison rather than inferred from a failed one).
	ErrBounds = errors.New("bound: infeasible bounds")
	// ErrShape reports array arguments of differing lengths.
	ErrShape = errors.New("bound: shape mismatch")
	// ErrOrientation reports a zero-valued signed orientation.
	ErrOrientation = errors.New("bound: invalid orientation")
)

func errShape(name string, got, want int) error {
	return fmt.Errorf("%w: len(%s) = %d, want %d", ErrShape, name, got, want)
}

func errBoundAt(i int, lo, hi float64) error {
	return fmt.Errorf("%w: no feasible value at %d (lo=%v, hi=%v)", ErrBounds, i, lo, hi)
}
