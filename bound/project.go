// Copyright ©2026 optimgo. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bound

// fastmin returns the smaller of x and y with a non-propagating NaN
// rule: when x is NaN the comparison fails and x is returned, whatever
// y is. This is deliberately not math.Min.
func fastmin(x, y float64) float64 {
	if y < x {
		return y
	}
	return x
}

// fastmax returns the larger of x and y, returning x when x is NaN.
func fastmax(x, y float64) float64 {
	if y > x {
		return y
	}
	return x
}

// clamp limits x to [lo,hi] as 𝚏𝚊𝚜𝚝𝚖𝚊𝚡(𝚏𝚊𝚜𝚝𝚖𝚒𝚗(x,hi), lo).
// A NaN x that fails both comparisons passes through unmodified.
func clamp(x, lo, hi float64) float64 {
	return fastmax(fastmin(x, hi), lo)
}

// Project writes the projection of src onto the box [lo,hi] into dst:
//
//	dstᵢ = 𝚌𝚕𝚊𝚖𝚙(srcᵢ, lᵢ, uᵢ)
//
// dst may alias src for an in-place clamp. When both sides are absent
// the operation degenerates to a copy. Returns dst.
func Project(dst, src []float64, lo, hi Bound) ([]float64, error) {
	n := len(src)
	if len(dst) != n {
		return nil, errShape("dst", len(dst), n)
	}
	l, u, err := resolveBox(n, lo, hi)
	if err != nil {
		return nil, err
	}
	switch {
	case !l.bounded && !u.bounded:
		copy(dst, src)
	case l.bounded && u.bounded:
		switch {
		case l.scalar && u.scalar:
			clampSS(dst, src, l.s, u.s)
		case l.scalar:
			clampSV(dst, src, l.s, u.v)
		case u.scalar:
			clampVS(dst, src, l.v, u.s)
		default:
			clampVV(dst, src, l.v, u.v)
		}
	case l.bounded:
		if l.scalar {
			clampBelowS(dst, src, l.s)
		} else {
			clampBelowV(dst, src, l.v)
		}
	default:
		if u.scalar {
			clampAboveS(dst, src, u.s)
		} else {
			clampAboveV(dst, src, u.v)
		}
	}
	return dst, nil
}

func clampSS(dst, src []float64, lo, hi float64) {
	if len(src) > len(dst) {
		panic("bound check error")
	}
	for i, v := range src {
		dst[i] = clamp(v, lo, hi)
	}
}

func clampSV(dst, src []float64, lo float64, hi []float64) {
	if len(src) > len(dst) || len(src) > len(hi) {
		panic("bound check error")
	}
	for i, v := range src {
		dst[i] = clamp(v, lo, hi[i])
	}
}

func clampVS(dst, src, lo []float64, hi float64) {
	if len(src) > len(dst) || len(src) > len(lo) {
		panic("bound check error")
	}
	for i, v := range src {
		dst[i] = clamp(v, lo[i], hi)
	}
}

func clampVV(dst, src, lo, hi []float64) {
	if len(src) > len(dst) || len(src) > len(lo) || len(src) > len(hi) {
		panic("bound check error")
	}
	for i, v := range src {
		dst[i] = clamp(v, lo[i], hi[i])
	}
}

// Single-sided clamps: the missing side resolves to ±∞, against which
// fastmin/fastmax is the identity (also for NaN), so one primitive
// suffices.

func clampBelowS(dst, src []float64, lo float64) {
	if len(src) > len(dst) {
		panic("bound check error")
	}
	for i, v := range src {
		dst[i] = fastmax(v, lo)
	}
}

func clampBelowV(dst, src, lo []float64) {
	if len(src) > len(dst) || len(src) > len(lo) {
		panic("bound check error")
	}
	for i, v := range src {
		dst[i] = fastmax(v, lo[i])
	}
}

func clampAboveS(dst, src []float64, hi float64) {
	if len(src) > len(dst) {
		panic("bound check error")
	}
	for i, v := range src {
		dst[i] = fastmin(v, hi)
	}
}

func clampAboveV(dst, src, hi []float64) {
	if len(src) > len(dst) || len(src) > len(hi) {
		panic("bound check error")
	}
	for i, v := range src {
		dst[i] = fastmin(v, hi[i])
	}
}
