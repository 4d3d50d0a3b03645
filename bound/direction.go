// Copyright ©2026 optimgo. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bound

import "math"

// ProjectDirection writes into dst the direction d with every component
// zeroed that would immediately push x out of the box [lo,hi].
// With s the orientation sign and pᵢ = s·dᵢ:
//
//	dstᵢ = 𝟶   if pᵢ > 𝟶 and xᵢ is at a restricted upper bound
//	dstᵢ = 𝟶   if pᵢ < 𝟶 and xᵢ is at a restricted lower bound
//	dstᵢ = dᵢ  otherwise
//
// x is assumed feasible; strictly inside the box the direction passes
// through unchanged. dst may alias x or d. Returns dst.
func ProjectDirection(dst, x []float64, lo, hi Bound, o Orientation, d []float64) ([]float64, error) {
	n := len(x)
	if len(d) != n {
		return nil, errShape("d", len(d), n)
	}
	if len(dst) != n {
		return nil, errShape("dst", len(dst), n)
	}
	sgn, err := o.sign()
	if err != nil {
		return nil, err
	}
	l, u, err := resolveBox(n, lo, hi)
	if err != nil {
		return nil, err
	}

	if !l.bounded && !u.bounded {
		copy(dst, d)
		return dst, nil
	}

	if n > len(x) || n > len(d) || n > len(dst) {
		panic("bound check error")
	}
	for i := 0; i < n; i++ {
		di := d[i]
		keep := true
		if p := sgn * di; p > zero {
			keep = !u.bounded || x[i] < u.at(i)
		} else if p < zero {
			keep = !l.bounded || x[i] > l.at(i)
		}
		if keep {
			dst[i] = di
		} else {
			dst[i] = zero
		}
	}
	return dst, nil
}

// ProjectGradient writes into dst the gradient g with every component
// zeroed whose descent move -gᵢ would immediately leave the box, i.e.
// ProjectDirection with Backward orientation: a feasible descent
// direction from a gradient g is along -g. Returns dst.
func ProjectGradient(dst, x []float64, lo, hi Bound, g []float64) ([]float64, error) {
	return ProjectDirection(dst, x, lo, hi, Backward, g)
}

// ProjGradNorm computes ‖𝚙𝚛𝚘𝚓 g‖∞, the infinity norm of the gradient
// projected onto the box at x:
//
//	𝚙𝚛𝚘𝚓 gᵢ = 𝚖𝚊𝚡(xᵢ - uᵢ, gᵢ)  if gᵢ < 𝟶 and xᵢ is bounded above
//	𝚙𝚛𝚘𝚓 gᵢ = 𝚖𝚒𝚗(xᵢ - lᵢ, gᵢ)  if gᵢ > 𝟶 and xᵢ is bounded below
//	𝚙𝚛𝚘𝚓 gᵢ = gᵢ               otherwise
//
// Bound-constrained drivers use this quantity to measure stationarity.
func ProjGradNorm(x []float64, lo, hi Bound, g []float64) (float64, error) {
	n := len(x)
	if len(g) != n {
		return zero, errShape("g", len(g), n)
	}
	l, u, err := resolveBox(n, lo, hi)
	if err != nil {
		return zero, err
	}

	if n > len(x) || n > len(g) {
		panic("bound check error")
	}
	norm := zero
	for i := 0; i < n; i++ {
		gi := g[i]
		if gi < zero {
			if u.bounded {
				gi = math.Max(x[i]-u.at(i), gi)
			}
		} else {
			if l.bounded {
				gi = math.Min(x[i]-l.at(i), gi)
			}
		}
		norm = math.Max(norm, math.Abs(gi))
	}
	return norm, nil
}
