// Copyright 2026 The go-distpiece Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distr

import (
	"math"
	"sort"
	"testing"
)

func aeq(expect, got float64) bool {
	if expect == got {
		// Also covers exact zeros and infinities.
		return true
	}
	return math.Abs(expect-got) < 0.00001
}

// testFunc checks f against a table of expected values, in increasing
// argument order.
func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()
	xs := make([]float64, 0, len(vals))
	for x := range vals {
		xs = append(xs, x)
	}
	sort.Float64s(xs)
	for _, x := range xs {
		if want, got := vals[x], f(x); !aeq(want, got) {
			t.Errorf("%s(%v) = %v, want %v", name, x, got, want)
		}
	}
}

// checkMass checks that the piecewise form of d integrates to 1.
func checkMass(t *testing.T, d Dist) {
	t.Helper()
	if m := d.Piecewise().Mass(); math.Abs(m-1) > 1e-6 {
		t.Errorf("%s: total mass = %v, want 1 within 1e-6", d.Name(), m)
	}
}

// checkBreaks checks the exact boundary sequence of d's decomposition
// and that consecutive segments are contiguous.
func checkBreaks(t *testing.T, d Dist, want []float64) {
	t.Helper()
	pw := d.Piecewise()
	if err := pw.Validate(); err != nil {
		t.Errorf("%s: %v", d.Name(), err)
	}
	segs := pw.Segments()
	got := []float64{segs[0].Lo()}
	for _, s := range segs {
		if s.Lo() == s.Hi() {
			continue
		}
		got = append(got, s.Hi())
	}
	if len(got) != len(want) {
		t.Errorf("%s: boundaries %v, want %v", d.Name(), got, want)
		return
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("%s: boundaries %v, want %v", d.Name(), got, want)
			return
		}
	}
}

// checkBatch checks that batch evaluation agrees with the scalar code
// path exactly, poles and out-of-support points included.
func checkBatch(t *testing.T, d Dist, xs []float64) {
	t.Helper()
	ys := d.PDFEach(xs)
	for i, x := range xs {
		want := d.PDF(x)
		if ys[i] != want && !(math.IsNaN(ys[i]) && math.IsNaN(want)) {
			t.Errorf("%s: PDFEach(%v)[%d] = %v, PDF = %v", d.Name(), x, i, ys[i], want)
		}
	}
}

// checkIdempotent checks that the lazy build returns one shared
// sequence.
func checkIdempotent(t *testing.T, d Dist) {
	t.Helper()
	if d.Piecewise() != d.Piecewise() {
		t.Errorf("%s: Piecewise() rebuilt its segment sequence", d.Name())
	}
}
