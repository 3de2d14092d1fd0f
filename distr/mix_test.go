// Copyright 2026 The go-distpiece Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestMixPDF(t *testing.T) {
	a, _ := NewNormal(-1, 0.5)
	b, _ := NewNormal(1, 2)
	d, err := NewMix([]float64{0.25, 0.75}, a, b)
	require.NoError(t, err)

	for _, x := range []float64{-3, -1, 0, 1, 3} {
		want := 0.25*a.PDF(x) + 0.75*b.PDF(x)
		if got := d.PDF(x); !aeq(want, got) {
			t.Errorf("%s.PDF(%v) = %v, want %v", d.Name(), x, got, want)
		}
	}
	checkBatch(t, d, []float64{-2, 0, 2})
	checkMass(t, d)
	checkIdempotent(t, d)
}

func TestMixPiecewise(t *testing.T) {
	a, _ := NewNormal(-1, 0.5)
	b, _ := NewNormal(1, 2)
	d, _ := NewMix([]float64{0.25, 0.75}, a, b)

	// Boundaries are the union of both components' boundaries.
	checkBreaks(t, d, []float64{math.Inf(-1), -1.5, -1, -0.5, 3, math.Inf(1)})

	// The combined decomposition still evaluates to the mixture
	// density.
	pw := d.Piecewise()
	for _, x := range []float64{-2, -1, 0, 2, 5} {
		if want, got := d.PDF(x), pw.At(x); !aeq(want, got) {
			t.Errorf("At(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestMixPoleComponents(t *testing.T) {
	// A pole-carrying component keeps its declarations inside the
	// mixture.
	a, _ := NewBeta(0.5, 0.5)
	b, _ := NewUniform(0, 1)
	d, _ := NewMix([]float64{0.5, 0.5}, a, b)

	pw := d.Piecewise()
	require.NoError(t, pw.Validate())
	segs := pw.Segments()
	if !segs[0].LeftPole() {
		t.Errorf("mixture lost the pole at 0")
	}
	if !segs[len(segs)-1].RightPole() {
		t.Errorf("mixture lost the pole at 1")
	}
	checkBreaks(t, d, []float64{0, 0.5, 1})
	checkMass(t, d)
}

func TestMixWithDiscrete(t *testing.T) {
	// A continuous-discrete mixture carries the point mass through.
	u, _ := NewUniform(0, 2)
	c := NewConstant(1)
	d, _ := NewMix([]float64{0.6, 0.4}, u, c)

	pw := d.Piecewise()
	require.NoError(t, pw.Validate())
	// At the point-mass location the mass itself is reported, not the
	// surrounding continuous density.
	if want, got := 0.4, pw.At(1); !aeq(want, got) {
		t.Errorf("At(point mass) = %v, want %v", got, want)
	}
	if want, got := 0.3, pw.At(0.5); !aeq(want, got) {
		t.Errorf("At(0.5) = %v, want %v", got, want)
	}
	checkMass(t, d)

	// CDF jumps by the point mass at 1.
	if want, got := 0.3, pw.CDF(0.999999); math.Abs(want-got) > 1e-4 {
		t.Errorf("CDF(1-) = %v, want about %v", got, want)
	}
	if want, got := 0.7, pw.CDF(1); math.Abs(want-got) > 1e-6 {
		t.Errorf("CDF(1) = %v, want %v", got, want)
	}
}

func TestMixWithMultiPointDiscrete(t *testing.T) {
	// All of a multi-point discrete component's masses survive the
	// combination, not only the first one.
	u, _ := NewUniform(0, 2)
	disc, _ := NewDiscrete([]float64{0.5, 1.5}, []float64{0.5, 0.5})
	d, _ := NewMix([]float64{0.6, 0.4}, u, disc)

	pw := d.Piecewise()
	require.NoError(t, pw.Validate())
	require.InDelta(t, 0.2, pw.At(0.5), 1e-12)
	require.InDelta(t, 0.2, pw.At(1.5), 1e-12)
	if want, got := 0.3, pw.At(1); !aeq(want, got) {
		t.Errorf("At(1) = %v, want the continuous part %v", got, want)
	}
	checkMass(t, d)

	// Both jumps show up in the CDF.
	if want, got := 0.35, pw.CDF(0.5); math.Abs(want-got) > 1e-6 {
		t.Errorf("CDF(0.5) = %v, want %v", got, want)
	}
	if want, got := 0.85, pw.CDF(1.5); math.Abs(want-got) > 1e-6 {
		t.Errorf("CDF(1.5) = %v, want %v", got, want)
	}
}

func TestMixErrors(t *testing.T) {
	a, _ := NewNormal(0, 1)
	b, _ := NewNormal(1, 1)
	_, err := NewMix([]float64{0.5}, a, b)
	require.ErrorIs(t, err, ErrInvalidParam)
	_, err = NewMix([]float64{-0.5, 1.5}, a, b)
	require.ErrorIs(t, err, ErrInvalidParam)
	_, err = NewMix([]float64{0.5, 0.6}, a, b)
	require.ErrorIs(t, err, ErrInvalidParam)
	_, err = NewMix(nil)
	require.ErrorIs(t, err, ErrInvalidParam)
}

func TestMixRand(t *testing.T) {
	a, _ := NewUniform(0, 1)
	b, _ := NewUniform(2, 3)
	d, _ := NewMix([]float64{0.5, 0.5}, a, b)
	d.Src = rand.NewSource(1)
	for _, x := range d.RandN(100) {
		if !(x >= 0 && x <= 1) && !(x >= 2 && x <= 3) {
			t.Fatalf("Rand() = %v, want a draw from one component's support", x)
		}
	}
}
