// Copyright 2026 The go-distpiece Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/distpiece/go-distpiece/piecewise"
)

func TestFunc(t *testing.T) {
	// Linear ramp density 2x on [0, 1].
	d, err := NewFunc(func(x float64) float64 { return 2 * x }, []float64{0, 1}, nil)
	require.NoError(t, err)

	testFunc(t, d.Name()+".PDF", d.PDF, map[float64]float64{
		-1:   0,
		0:    0,
		0.5:  1,
		1:    2,
		1.25: 0,
	})
	checkBreaks(t, d, []float64{0, 1})
	checkMass(t, d)
	checkIdempotent(t, d)

	pw := d.Piecewise()
	if got := pw.CDF(0.5); math.Abs(got-0.25) > 1e-6 {
		t.Errorf("CDF(0.5) = %v, want 0.25", got)
	}
	if got := pw.InvCDF(0.25); math.Abs(got-0.5) > 1e-6 {
		t.Errorf("InvCDF(0.25) = %v, want 0.5", got)
	}
}

func TestFuncWithPole(t *testing.T) {
	// 1/(2*sqrt(x)) on [0, 1] integrates to 1 through the declared
	// pole.
	d, err := NewFunc(func(x float64) float64 { return 0.5 / math.Sqrt(x) },
		[]float64{0, 1}, []bool{true, false})
	require.NoError(t, err)
	checkMass(t, d)
	segs := d.Piecewise().Segments()
	if !segs[0].LeftPole() {
		t.Errorf("declared pole missing from the decomposition")
	}
}

func TestFuncTails(t *testing.T) {
	// Infinite outer breaks become tail segments.
	f := func(x float64) float64 { return math.Exp(-math.Abs(x)) / 2 }
	d, err := NewFunc(f, []float64{math.Inf(-1), 0, math.Inf(1)}, nil)
	require.NoError(t, err)
	checkBreaks(t, d, []float64{math.Inf(-1), 0, math.Inf(1)})
	checkMass(t, d)
}

func TestFuncErrors(t *testing.T) {
	f := func(x float64) float64 { return 1 }
	_, err := NewFunc(f, []float64{0}, nil)
	require.ErrorIs(t, err, ErrInvalidParam)
	_, err = NewFunc(f, []float64{1, 0}, nil)
	require.ErrorIs(t, err, ErrInvalidParam)
	_, err = NewFunc(f, []float64{0, 0.5, 1}, []bool{true})
	require.ErrorIs(t, err, ErrInvalidParam)
}

func TestFuncRand(t *testing.T) {
	d, _ := NewFunc(func(x float64) float64 { return 2 * x }, []float64{0, 1}, nil)
	d.Src = rand.NewSource(1)
	for _, x := range d.RandN(50) {
		if x < 0 || x > 1 {
			t.Fatalf("Rand() = %v, want a draw in [0, 1]", x)
		}
	}
}

func TestPieces(t *testing.T) {
	// Triangle density assembled segment by segment.
	up := func(x float64) float64 { return x }
	down := func(x float64) float64 { return 2 - x }
	d, err := NewPieces(
		piecewise.NewInterior(0, 1, up),
		piecewise.NewInterior(1, 2, down),
	)
	require.NoError(t, err)

	testFunc(t, d.Name()+".PDF", d.PDF, map[float64]float64{
		-1:  0,
		0.5: 0.5,
		1:   1,
		1.5: 0.5,
		3:   0,
	})
	checkMass(t, d)

	pw := d.Piecewise()
	if got := pw.InvCDF(0.5); math.Abs(got-1) > 1e-6 {
		t.Errorf("InvCDF(0.5) = %v, want 1", got)
	}
}

func TestPiecesGap(t *testing.T) {
	f := func(x float64) float64 { return 1 }
	_, err := NewPieces(
		piecewise.NewInterior(0, 1, f),
		piecewise.NewInterior(2, 3, f),
	)
	require.ErrorIs(t, err, ErrInvalidParam)
}
