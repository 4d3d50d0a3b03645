// Copyright ©2026 optimgo. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bound

// FreeVariables appends to sel[:0] the ascending indices of the nonzero
// entries of a projected direction gp (for example the output of
// ProjectGradient), and returns the logically resized slice. The test
// is a strict gpᵢ ≠ 𝟶, with no boundary special case. sel must not
// alias gp; reusing the returned slice across iterations keeps the
// selection allocation-free once grown.
func FreeVariables(sel []int, gp []float64) []int {
	sel = sel[:0]
	for i, g := range gp {
		if g != zero {
			sel = append(sel, i)
		}
	}
	return sel
}

// UnblockedVariables appends to sel[:0] the ascending indices of the
// variables that may still move from x along the oriented d without
// immediately violating a bound, and returns the logically resized
// slice. With pᵢ = s·dᵢ, variable i may move when
//
//	both sides restricted:  pᵢ > 𝟶 ∧ xᵢ < uᵢ, or pᵢ < 𝟶 ∧ xᵢ > lᵢ
//	lower side only:        pᵢ > 𝟶 ∨ xᵢ > lᵢ
//	upper side only:        pᵢ < 𝟶 ∨ xᵢ < uᵢ
//	no bounds:              always
//
// Note the deliberate asymmetry with FreeVariables: with dᵢ = 𝟶 and a
// single restricted side, the variable still counts as free unless it
// sits exactly on that bound, whereas the strict nonzero test never
// frees a zero entry. Both truth tables are intentional and kept
// distinct. sel must not alias any input.
func UnblockedVariables(sel []int, x []float64, lo, hi Bound, o Orientation, d []float64) ([]int, error) {
	n := len(x)
	if len(d) != n {
		return nil, errShape("d", len(d), n)
	}
	sgn, err := o.sign()
	if err != nil {
		return nil, err
	}
	l, u, err := resolveBox(n, lo, hi)
	if err != nil {
		return nil, err
	}

	if n > len(x) || n > len(d) {
		panic("bound check error")
	}
	sel = sel[:0]
	switch {
	case !l.bounded && !u.bounded:
		for i := 0; i < n; i++ {
			sel = append(sel, i)
		}
	case l.bounded && u.bounded:
		for i := 0; i < n; i++ {
			free := false
			if p := sgn * d[i]; p > zero {
				free = x[i] < u.at(i)
			} else if p < zero {
				free = x[i] > l.at(i)
			}
			if free {
				sel = append(sel, i)
			}
		}
	case l.bounded:
		for i := 0; i < n; i++ {
			if sgn*d[i] > zero || x[i] > l.at(i) {
				sel = append(sel, i)
			}
		}
	default:
		for i := 0; i < n; i++ {
			if sgn*d[i] < zero || x[i] < u.at(i) {
				sel = append(sel, i)
			}
		}
	}
	return sel, nil
}

// VarState is the active-set status of a single variable.
type VarState int8

const (
	// VarUnbounded the variable has no bound on either side.
	VarUnbounded VarState = iota
	// VarInterior the variable is strictly inside its bounds.
	VarInterior
	// VarAtLower the variable sits at its lower bound, with lᵢ ≠ uᵢ.
	VarAtLower
	// VarAtUpper the variable sits at its upper bound, with lᵢ ≠ uᵢ.
	VarAtUpper
	// VarFixed the variable is pinned by lᵢ = uᵢ.
	VarFixed
)

// Classify writes the active-set status of every variable of a feasible
// x into dst and returns it. Drivers use the classification to track
// variables entering and leaving the active set across iterations.
func Classify(dst []VarState, x []float64, lo, hi Bound) ([]VarState, error) {
	n := len(x)
	if len(dst) != n {
		return nil, errShape("dst", len(dst), n)
	}
	l, u, err := resolveBox(n, lo, hi)
	if err != nil {
		return nil, err
	}

	if n > len(x) || n > len(dst) {
		panic("bound check error")
	}
	for i := 0; i < n; i++ {
		s := VarInterior
		switch {
		case !l.bounded && !u.bounded:
			s = VarUnbounded
		case l.bounded && u.bounded && !(l.at(i) < u.at(i)):
			s = VarFixed
		case l.bounded && x[i] <= l.at(i):
			s = VarAtLower
		case u.bounded && x[i] >= u.at(i):
			s = VarAtUpper
		}
		dst[i] = s
	}
	return dst, nil
}
