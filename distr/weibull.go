// Copyright 2026 The go-distpiece Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distr

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/distpiece/go-distpiece/piecewise"
)

// Weibull is the Weibull law with shape K and scale Lambda.
type Weibull struct {
	K, Lambda float64

	// Src is an optional random source for Rand.
	Src rand.Source

	lgNrm  float64
	pdfAt0 float64
	pw     lazyDensity
}

// NewWeibull returns a Weibull law with shape k > 0 and scale
// lambda > 0.
func NewWeibull(k, lambda float64) (*Weibull, error) {
	if !(k > 0) {
		return nil, fmt.Errorf("%w: weibull shape k=%v must be > 0", ErrInvalidParam, k)
	}
	if !(lambda > 0) {
		return nil, fmt.Errorf("%w: weibull scale lambda=%v must be > 0", ErrInvalidParam, lambda)
	}
	d := &Weibull{
		K:      k,
		Lambda: lambda,
		lgNrm:  math.Log(k / lambda),
	}
	switch {
	case k < 1:
		d.pdfAt0 = inf
	case k == 1:
		d.pdfAt0 = 1
	default:
		d.pdfAt0 = 0
	}
	return d, nil
}

func (d *Weibull) logPDF(x float64) float64 {
	z := x / d.Lambda
	return d.lgNrm + (d.K-1)*math.Log(z) - math.Pow(z, d.K)
}

func (d *Weibull) PDF(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x == 0:
		return d.pdfAt0
	default:
		return math.Exp(d.logPDF(x))
	}
}

func (d *Weibull) PDFEach(xs []float64) []float64 { return pdfEach(d.PDF, xs) }

// Piecewise splits at k for k ≤ 1 (left pole) and at the mode
// lambda·((k-1)/k)^(1/k) for k > 1. For k > 1 the left boundary is
// still treated as a pole when k is not an integer: the density at 0
// is exactly 0 but its derivatives are unbounded, which the pole-aware
// substitution handles; integer k is smooth there.
func (d *Weibull) Piecewise() *piecewise.Density {
	return d.pw.get(func() *piecewise.Density {
		if d.K <= 1 {
			return mustDensity(piecewise.FromBreaks(d.PDF,
				[]float64{0, d.K, inf},
				[]bool{true, false, false}))
		}
		mode := d.Lambda * math.Pow((d.K-1)/d.K, 1/d.K)
		pole := d.K != math.Floor(d.K)
		return mustDensity(piecewise.FromBreaks(d.PDF,
			[]float64{0, mode, inf},
			[]bool{pole, false, false}))
	})
}

func (d *Weibull) Rand() float64 {
	return distuv.Weibull{K: d.K, Lambda: d.Lambda, Src: d.Src}.Rand()
}

func (d *Weibull) RandN(n int) []float64 { return randN(d.Rand, n) }

func (d *Weibull) Name() string { return fmt.Sprintf("Weibull(%g,%g)", d.K, d.Lambda) }
