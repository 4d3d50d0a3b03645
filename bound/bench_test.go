// Copyright ©2026 optimgo. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bound

import (
	"math/rand/v2"
	"testing"
)

func benchProblem(n int) (x, d, lv, uv []float64) {
	rng := rand.New(rand.NewPCG(42, 42))
	x = make([]float64, n)
	d = make([]float64, n)
	lv = make([]float64, n)
	uv = make([]float64, n)
	for i := 0; i < n; i++ {
		lv[i] = -1 - rng.Float64()
		uv[i] = 1 + rng.Float64()
		x[i] = rng.Float64()*2 - 1
		d[i] = rng.Float64()*2 - 1
	}
	return
}

func TestOperationsDoNotAllocate(t *testing.T) {
	x, d, lv, uv := benchProblem(256)
	lo, hi := Vector(lv), Vector(uv)
	dst := make([]float64, len(x))
	sel := make([]int, 0, len(x))
	tbuf := make([]float64, len(x))

	allocs := testing.AllocsPerRun(100, func() {
		_, _ = Project(dst, x, lo, hi)
	})
	if allocs > 0 {
		t.Errorf("Project allocs = %v; want 0", allocs)
	}

	allocs = testing.AllocsPerRun(100, func() {
		_, _ = ProjectDirection(dst, x, lo, hi, Forward, d)
	})
	if allocs > 0 {
		t.Errorf("ProjectDirection allocs = %v; want 0", allocs)
	}

	allocs = testing.AllocsPerRun(100, func() {
		_, _, _ = StepLimits(x, lo, hi, Forward, d)
	})
	if allocs > 0 {
		t.Errorf("StepLimits allocs = %v; want 0", allocs)
	}

	allocs = testing.AllocsPerRun(100, func() {
		sel, _ = UnblockedVariables(sel, x, lo, hi, Forward, d)
	})
	if allocs > 0 {
		t.Errorf("UnblockedVariables allocs = %v; want 0", allocs)
	}

	allocs = testing.AllocsPerRun(100, func() {
		_, _ = Breakpoints(tbuf, x, lo, hi, Forward, d)
	})
	if allocs > 0 {
		t.Errorf("Breakpoints allocs = %v; want 0", allocs)
	}
}

func BenchmarkProject(b *testing.B) {
	x, _, lv, uv := benchProblem(1024)
	lo, hi := Vector(lv), Vector(uv)
	dst := make([]float64, len(x))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Project(dst, x, lo, hi)
	}
}

func BenchmarkProjectScalarBounds(b *testing.B) {
	x, _, _, _ := benchProblem(1024)
	lo, hi := Scalar(-1), Scalar(1)
	dst := make([]float64, len(x))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Project(dst, x, lo, hi)
	}
}

func BenchmarkProjectDirection(b *testing.B) {
	x, d, lv, uv := benchProblem(1024)
	lo, hi := Vector(lv), Vector(uv)
	dst := make([]float64, len(x))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ProjectDirection(dst, x, lo, hi, Forward, d)
	}
}

func BenchmarkStepLimits(b *testing.B) {
	x, d, lv, uv := benchProblem(1024)
	lo, hi := Vector(lv), Vector(uv)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = StepLimits(x, lo, hi, Forward, d)
	}
}

func BenchmarkUnblockedVariables(b *testing.B) {
	x, d, lv, uv := benchProblem(1024)
	lo, hi := Vector(lv), Vector(uv)
	sel := make([]int, 0, len(x))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sel, _ = UnblockedVariables(sel, x, lo, hi, Forward, d)
	}
}
