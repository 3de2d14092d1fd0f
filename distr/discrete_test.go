// Copyright 2026 The go-distpiece Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distr

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/distpiece/go-distpiece/piecewise"
)

func TestDiscretePDF(t *testing.T) {
	d, err := NewDiscrete([]float64{0, 1}, []float64{0.5, 0.5})
	require.NoError(t, err)
	testFunc(t, "Di(2).PDF", d.PDF, map[float64]float64{
		-1:  0,
		0:   0.5,
		0.5: 0,
		1:   0.5,
		2:   0,
	})
	checkBatch(t, d, []float64{-1, 0, 0.5, 1})
}

func TestDiscreteSortsSupport(t *testing.T) {
	d, err := NewDiscrete([]float64{2, 1}, []float64{0.3, 0.7})
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2}, d.Xs)
	require.Equal(t, []float64{0.7, 0.3}, d.Ps)
}

func TestDiscretePiecewise(t *testing.T) {
	d, _ := NewDiscrete([]float64{0, 1, 3}, []float64{0.2, 0.5, 0.3})
	pw := d.Piecewise()
	require.NoError(t, pw.Validate())

	// Point masses alternate with zero-density fillers.
	segs := pw.Segments()
	require.Len(t, segs, 5)
	wantLo := []float64{0, 0, 1, 1, 3}
	wantHi := []float64{0, 1, 1, 3, 3}
	for i, s := range segs {
		require.Equal(t, wantLo[i], s.Lo(), "segment %d", i)
		require.Equal(t, wantHi[i], s.Hi(), "segment %d", i)
	}
	if _, ok := segs[0].(piecewise.Dirac); !ok {
		t.Errorf("segment 0 = %T, want Dirac", segs[0])
	}
	if _, ok := segs[1].(piecewise.Const); !ok {
		t.Errorf("segment 1 = %T, want Const", segs[1])
	}

	// Total mass is a plain sum for a discrete law; no quadrature is
	// involved, only rounding of the addition itself.
	require.InDelta(t, 1.0, pw.Mass(), 1e-12)

	// Right-continuous CDF steps.
	require.Equal(t, 0.0, pw.CDF(-0.5))
	require.Equal(t, 0.2, pw.CDF(0))
	require.Equal(t, 0.2, pw.CDF(0.5))
	require.InDelta(t, 0.7, pw.CDF(1), 1e-12)
	require.InDelta(t, 1.0, pw.CDF(3), 1e-12)

	// Every mass is visible through pointwise evaluation; the fillers
	// sharing the boundary do not shadow it.
	require.Equal(t, 0.2, pw.At(0))
	require.Equal(t, 0.5, pw.At(1))
	require.Equal(t, 0.3, pw.At(3))
	require.Equal(t, 0.0, pw.At(2))

	// InvCDF lands on support points.
	require.Equal(t, 0.0, pw.InvCDF(0.1))
	require.Equal(t, 1.0, pw.InvCDF(0.5))
	require.Equal(t, 3.0, pw.InvCDF(0.9))
}

func TestDiscreteErrors(t *testing.T) {
	_, err := NewDiscrete([]float64{0, 1}, []float64{0.5})
	require.ErrorIs(t, err, ErrInvalidParam)
	_, err = NewDiscrete([]float64{0, 1}, []float64{-0.5, 1.5})
	require.ErrorIs(t, err, ErrInvalidParam)
	_, err = NewDiscrete([]float64{0, 0}, []float64{0.5, 0.5})
	require.ErrorIs(t, err, ErrInvalidParam)
	_, err = NewDiscrete([]float64{0, 1}, []float64{0.5, 0.6})
	require.ErrorIs(t, err, ErrInvalidParam)
	_, err = NewDiscrete(nil, nil)
	require.ErrorIs(t, err, ErrInvalidParam)
}

func TestDiscreteConstants(t *testing.T) {
	c := NewConstant(3)
	require.Equal(t, 1.0, c.PDF(3))
	require.Equal(t, 0.0, c.PDF(2))
	require.Equal(t, 1.0, c.Piecewise().Mass())

	require.Equal(t, 1.0, One().PDF(1))
	require.Equal(t, 1.0, Zero().PDF(0))
}

func TestDiscreteRandDegenerateWeight(t *testing.T) {
	// A zero weight is never drawn; repeated draws reuse the weight
	// table prepared on the first one.
	d, _ := NewDiscrete([]float64{1, 2}, []float64{1, 0})
	d.Src = rand.NewSource(7)
	for _, x := range d.RandN(200) {
		if x != 1 {
			t.Fatalf("Rand() = %v, want 1 (the only positive-weight point)", x)
		}
	}
}

func TestDiscreteRand(t *testing.T) {
	d, _ := NewDiscrete([]float64{-1, 2}, []float64{0.25, 0.75})
	d.Src = rand.NewSource(1)
	for _, x := range d.RandN(100) {
		if x != -1 && x != 2 {
			t.Fatalf("Rand() = %v, want a support point", x)
		}
	}
}
