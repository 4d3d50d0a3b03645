// Copyright ©2026 optimgo. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bound

import "math"

// StepLimits computes the range of feasible step lengths from a
// feasible x along the oriented direction d. With pᵢ = s·dᵢ, the
// distance of variable i to the bound it moves toward is
//
//	aᵢ = (uᵢ - xᵢ)/pᵢ  if pᵢ > 𝟶
//	aᵢ = (lᵢ - xᵢ)/pᵢ  if pᵢ < 𝟶
//	aᵢ = ∞             if pᵢ = 𝟶 (the variable never reaches a bound)
//
// smin is the least strictly positive finite aᵢ, or +∞ when no finite
// bound is ever hit. smax is the greatest finite aᵢ observed, or +∞
// when some variable with pᵢ ≠ 𝟶 escapes toward an unrestricted side.
// Postconditions: 𝟶 < smin and 𝟶 ≤ smax ≥ every finite aᵢ.
func StepLimits(x []float64, lo, hi Bound, o Orientation, d []float64) (smin, smax float64, err error) {
	n := len(x)
	if len(d) != n {
		err = errShape("d", len(d), n)
		return
	}
	var sgn float64
	if sgn, err = o.sign(); err != nil {
		return
	}
	var l, u side
	if l, u, err = resolveBox(n, lo, hi); err != nil {
		return
	}

	if n > len(x) || n > len(d) {
		panic("bound check error")
	}
	smin = math.Inf(1)
	unbounded := false
	for i := 0; i < n; i++ {
		if p := sgn * d[i]; p > zero {
			if ui := u.at(i); !math.IsInf(ui, 1) {
				a := (ui - x[i]) / p
				if a > zero && a < smin {
					smin = a
				}
				if a > smax {
					smax = a
				}
			} else {
				unbounded = true
			}
		} else if p < zero {
			if li := l.at(i); !math.IsInf(li, -1) {
				a := (li - x[i]) / p
				if a > zero && a < smin {
					smin = a
				}
				if a > smax {
					smax = a
				}
			} else {
				unbounded = true
			}
		}
	}
	if unbounded {
		smax = math.Inf(1)
	}
	return
}

// Breakpoints writes into t the per-variable bound-hit distance tᵢ = aᵢ
// of StepLimits, +∞ when the variable never reaches a restricted bound
// along the oriented d. The vector feeds piecewise-linear path searches
// over the projected ray 𝚙𝚛𝚘𝚓(x + s·t·d). Returns t.
func Breakpoints(t, x []float64, lo, hi Bound, o Orientation, d []float64) ([]float64, error) {
	n := len(x)
	if len(d) != n {
		return nil, errShape("d", len(d), n)
	}
	if len(t) != n {
		return nil, errShape("t", len(t), n)
	}
	sgn, err := o.sign()
	if err != nil {
		return nil, err
	}
	l, u, err := resolveBox(n, lo, hi)
	if err != nil {
		return nil, err
	}

	if n > len(x) || n > len(d) || n > len(t) {
		panic("bound check error")
	}
	for i := 0; i < n; i++ {
		ti := math.Inf(1)
		if p := sgn * d[i]; p > zero {
			if ui := u.at(i); !math.IsInf(ui, 1) {
				ti = (ui - x[i]) / p
			}
		} else if p < zero {
			if li := l.at(i); !math.IsInf(li, -1) {
				ti = (li - x[i]) / p
			}
		}
		t[i] = ti
	}
	return t, nil
}

// BreakQueue extracts breakpoints in ascending order from caller-owned
// buffers without allocating, using a partial heapsort: the heap is
// built on the first pop and each subsequent pop only restores it.
// Both buffers are rearranged in place; after k pops the k popped
// entries occupy the tail in descending order.
type BreakQueue struct {
	t     []float64
	order []int
	left  int
	built bool
}

// Reset points the queue at a breakpoint vector t and an index buffer
// order of the same length. order is overwritten with 0..len(t)-1.
func (q *BreakQueue) Reset(t []float64, order []int) error {
	if len(order) != len(t) {
		return errShape("order", len(order), len(t))
	}
	for i := range order {
		order[i] = i
	}
	q.t, q.order = t, order
	q.left = len(t)
	q.built = false
	return nil
}

// Pop removes and returns the smallest remaining breakpoint and the
// variable index it belongs to. ok is false once the queue is empty.
func (q *BreakQueue) Pop() (idx int, t float64, ok bool) {
	n := q.left
	if n <= 0 {
		return 0, zero, false
	}
	heapMinOut(n, q.t, q.order, q.built)
	q.built = true
	q.left = n - 1
	return q.order[n-1], q.t[n-1], true
}

// heapMinOut pops the minimum of t[:n] to t[n-1].
//
// Given t[:n] and order[:n]:
//   - Build min-heap on t[:n] (heaped = false)
//   - Swap the top element to the tail t[0] ⇄ t[n-1]
//   - Recover heap t[:n-1] by shifting down t[0]
func heapMinOut(n int, t []float64, order []int, heaped bool) {

	if n < 0 || n > len(t) || n > len(order) {
		panic("bound check error")
	}

	if !heaped { // Build heap on t[:n]
		for k := 1; k < n; k++ {
			i := k // Add t[i] to the heap t[:i-1]
			val, idx := t[i], order[i]
			for i > 0 && i < n {
				j := (i - 1) / 2 // Parent of t[i]
				if val < t[j] {  // Shift down the parent
					t[i], order[i] = t[j], order[j]
					i = j
				} else { // Already a heap
					break
				}
			}
			t[i], order[i] = val, idx
		}
	}

	if n > 1 {
		// Pop the least element of the heap
		topVal, topIdx := t[0], order[0]
		// Move the bottom element to the top t[0] = t[n-1] and trim the heap to t[:n-1]
		val, idx := t[n-1], order[n-1]
		// Shift down t[0] until the heap recovers
		i := 0 // t[i] is parent
		for {
			j := 2*i + 1 // Left child
			if j < n {
				// Select the smaller child when the right child is available
				if j+1 < n && t[j+1] < t[j] {
					j++
				}
				if t[j] < val { // Shift up the smaller child
					t[i], order[i] = t[j], order[j]
					i = j
				} else {
					break // Stop when parent is smaller than children
				}
			} else {
				break
			}
		}
		// Now t[:n-1] is a heap
		t[i], order[i] = val, idx
		// Store the least element at t[n-1]
		t[n-1], order[n-1] = topVal, topIdx
	}
}
