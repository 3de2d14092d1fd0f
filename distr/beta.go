// Copyright 2026 The go-distpiece Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distr

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/distpiece/go-distpiece/mathx"
	"github.com/distpiece/go-distpiece/piecewise"
)

// Beta is the beta law on [0, 1] with shapes Alpha and Beta.
type Beta struct {
	Alpha, Beta float64

	// Src is an optional random source for Rand.
	Src rand.Source

	lgNorm float64
	pdfAt0 float64
	pdfAt1 float64
	pw     lazyDensity
}

// NewBeta returns a beta law with shapes alpha > 0 and beta > 0.
func NewBeta(alpha, beta float64) (*Beta, error) {
	if !(alpha > 0) {
		return nil, fmt.Errorf("%w: beta shape alpha=%v must be > 0", ErrInvalidParam, alpha)
	}
	if !(beta > 0) {
		return nil, fmt.Errorf("%w: beta shape beta=%v must be > 0", ErrInvalidParam, beta)
	}
	d := &Beta{
		Alpha:  alpha,
		Beta:   beta,
		lgNorm: -mathx.LogBeta(alpha, beta),
	}
	d.pdfAt0 = edgeLimit(alpha, d.lgNorm)
	d.pdfAt1 = edgeLimit(beta, d.lgNorm)
	return d, nil
}

// edgeLimit is the density limit at a support edge whose local
// behavior is x^(shape-1).
func edgeLimit(shape, lgNorm float64) float64 {
	switch {
	case shape < 1:
		return inf
	case shape == 1:
		return math.Exp(lgNorm)
	default:
		return 0
	}
}

// PDF evaluates x^(α-1)·(1-x)^(β-1) in the log domain on the open
// interval and substitutes the precomputed limits exactly at the
// edges, avoiding 0^negative.
func (d *Beta) PDF(x float64) float64 {
	switch {
	case x < 0 || x > 1:
		return 0
	case x == 0:
		return d.pdfAt0
	case x == 1:
		return d.pdfAt1
	default:
		return math.Exp(d.lgNorm + (d.Alpha-1)*math.Log(x) + (d.Beta-1)*math.Log1p(-x))
	}
}

func (d *Beta) PDFEach(xs []float64) []float64 { return pdfEach(d.PDF, xs) }

// betaPole applies the pole-detection rule for one edge shape.
func betaPole(shape float64) bool {
	return shape < 2 && math.Abs(shape-1) > MaxPoleExponent
}

// Piecewise splits at the fixed midpoint 0.5. The analytic mode
// (α-1)/(α+β-2) is deliberately not used; the reference decomposition
// overrides it with 0.5, a retained approximation pending validation.
func (d *Beta) Piecewise() *piecewise.Density {
	return d.pw.get(func() *piecewise.Density {
		const m = 0.5
		poleL := betaPole(d.Alpha)
		poleR := betaPole(d.Beta)
		pw := piecewise.New()
		if poleL {
			pw.AddSegment(piecewise.NewWithPole(0, m, d.PDF, true))
		} else {
			pw.AddSegment(piecewise.NewInterior(0, m, d.PDF))
		}
		if poleR {
			pw.AddSegment(piecewise.NewWithPole(m, 1, d.PDF, false))
		} else {
			pw.AddSegment(piecewise.NewInterior(m, 1, d.PDF))
		}
		return pw
	})
}

func (d *Beta) Rand() float64 {
	return distuv.Beta{Alpha: d.Alpha, Beta: d.Beta, Src: d.Src}.Rand()
}

func (d *Beta) RandN(n int) []float64 { return randN(d.Rand, n) }

func (d *Beta) Name() string { return fmt.Sprintf("Beta(%g,%g)", d.Alpha, d.Beta) }
