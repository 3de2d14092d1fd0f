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

// ChiSquare is the chi-square law with DF degrees of freedom.
//
// At x=0 the density diverges for df < 2, equals 0.5 for df = 2 and
// vanishes for df > 2. The boundary value is precomputed once and
// substituted exactly at x=0; the closed form is only evaluated on the
// open positive half line, in the log domain.
type ChiSquare struct {
	DF float64

	// Src is an optional random source for Rand.
	Src rand.Source

	lgNorm float64
	pdfAt0 float64
	pw     lazyDensity
}

// NewChiSquare returns a chi-square law with df degrees of freedom.
// df must be positive; df < 1 is outside the handled decomposition
// range and is rejected with ErrUnsupportedParam.
func NewChiSquare(df float64) (*ChiSquare, error) {
	if !(df > 0) {
		return nil, fmt.Errorf("%w: chi-square df=%v must be > 0", ErrInvalidParam, df)
	}
	if df < 1 {
		return nil, fmt.Errorf("%w: chi-square df=%v < 1 has no decomposition", ErrUnsupportedParam, df)
	}
	d := &ChiSquare{
		DF:     df,
		lgNorm: mathx.Lgamma(df/2) + df/2*math.Ln2,
	}
	switch {
	case df < 2:
		d.pdfAt0 = inf
	case df == 2:
		d.pdfAt0 = 0.5
	default:
		d.pdfAt0 = 0
	}
	return d, nil
}

func (d *ChiSquare) logPDF(x float64) float64 {
	return (d.DF/2-1)*math.Log(x) - x/2 - d.lgNorm
}

func (d *ChiSquare) PDF(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x == 0:
		return d.pdfAt0
	default:
		return math.Exp(d.logPDF(x))
	}
}

func (d *ChiSquare) PDFEach(xs []float64) []float64 { return pdfEach(d.PDF, xs) }

// Piecewise splits at {0, df/2, 2·df} for df ≤ 20 and at
// {0, 0.75·df, (4/3)·df} beyond, where the law is close to
// N(df, sqrt(2·df)). The left boundary is a pole only when the
// density truly diverges there.
func (d *ChiSquare) Piecewise() *piecewise.Density {
	return d.pw.get(func() *piecewise.Density {
		var breaks []float64
		if d.DF <= 20 {
			breaks = []float64{0, d.DF / 2, 2 * d.DF, inf}
		} else {
			breaks = []float64{0, 0.75 * d.DF, d.DF * 4 / 3, inf}
		}
		lpoles := []bool{d.DF < 2, false, false, false}
		return mustDensity(piecewise.FromBreaks(d.PDF, breaks, lpoles))
	})
}

func (d *ChiSquare) Rand() float64 {
	return distuv.ChiSquared{K: d.DF, Src: d.Src}.Rand()
}

func (d *ChiSquare) RandN(n int) []float64 { return randN(d.Rand, n) }

func (d *ChiSquare) Name() string { return fmt.Sprintf("Chi2(%g)", d.DF) }
