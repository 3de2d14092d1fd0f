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

// F is the Fisher-Snedecor law with D1 and D2 degrees of freedom.
type F struct {
	D1, D2 float64

	// Src is an optional random source for Rand.
	Src rand.Source

	lgNorm float64
	pdfAt0 float64
	pw     lazyDensity
}

// NewF returns an F law with d1 > 0 and d2 > 0 degrees of freedom.
func NewF(d1, d2 float64) (*F, error) {
	if !(d1 > 0) {
		return nil, fmt.Errorf("%w: F df1=%v must be > 0", ErrInvalidParam, d1)
	}
	if !(d2 > 0) {
		return nil, fmt.Errorf("%w: F df2=%v must be > 0", ErrInvalidParam, d2)
	}
	d := &F{
		D1:     d1,
		D2:     d2,
		lgNorm: d2/2*math.Log(d2) + mathx.Lgamma((d1+d2)/2) - mathx.Lgamma(d1/2) - mathx.Lgamma(d2/2),
	}
	switch {
	case d1 < 2:
		d.pdfAt0 = inf
	case d1 == 2:
		d.pdfAt0 = 1
	default:
		d.pdfAt0 = 0
	}
	return d, nil
}

func (d *F) logPDF(x float64) float64 {
	return d.lgNorm + 0.5*(d.D1*math.Log(d.D1*x)-(d.D1+d.D2)*math.Log(d.D1*x+d.D2)) - math.Log(x)
}

func (d *F) PDF(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x == 0:
		return d.pdfAt0
	default:
		return math.Exp(d.logPDF(x))
	}
}

func (d *F) PDFEach(xs []float64) []float64 { return pdfEach(d.PDF, xs) }

// Piecewise splits at 1 for d1 ≤ 2 and around the mode
// ((d1-2)/d1)·(d2/(d2+2)) for d1 > 2. The mode-adjacent left piece
// keeps a pole declaration: the density rises steeply from 0 there and
// is integrated through the pole substitution.
func (d *F) Piecewise() *piecewise.Density {
	return d.pw.get(func() *piecewise.Density {
		pw := piecewise.New()
		switch {
		case d.D1 < 2:
			pw.AddSegment(piecewise.NewWithPole(0, 1, d.PDF, true))
			pw.AddSegment(piecewise.NewRightTail(1, d.PDF))
		case d.D1 == 2:
			pw.AddSegment(piecewise.NewInterior(0, 1, d.PDF))
			pw.AddSegment(piecewise.NewRightTail(1, d.PDF))
		default:
			mode := (d.D1 - 2) / d.D1 * d.D2 / (d.D2 + 2)
			pw.AddSegment(piecewise.NewWithPole(0, mode, d.PDF, true))
			pw.AddSegment(piecewise.NewInterior(mode, mode+1, d.PDF))
			pw.AddSegment(piecewise.NewRightTail(mode+1, d.PDF))
		}
		return pw
	})
}

func (d *F) Rand() float64 {
	return distuv.F{D1: d.D1, D2: d.D2, Src: d.Src}.Rand()
}

func (d *F) RandN(n int) []float64 { return randN(d.Rand, n) }

func (d *F) Name() string { return fmt.Sprintf("F(%g,%g)", d.D1, d.D2) }
