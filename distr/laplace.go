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

// Laplace is the Laplace (double exponential) law with scale Lambda
// and location Mu.
type Laplace struct {
	Lambda, Mu float64

	// Src is an optional random source for Rand.
	Src rand.Source

	nrm float64
	pw  lazyDensity
}

// NewLaplace returns a Laplace law with scale lambda > 0 at mu.
func NewLaplace(lambda, mu float64) (*Laplace, error) {
	if !(lambda > 0) {
		return nil, fmt.Errorf("%w: laplace lambda=%v must be > 0", ErrInvalidParam, lambda)
	}
	return &Laplace{Lambda: lambda, Mu: mu, nrm: 0.5 / lambda}, nil
}

func (d *Laplace) PDF(x float64) float64 {
	return d.nrm * math.Exp(-math.Abs(x-d.Mu)/d.Lambda)
}

func (d *Laplace) PDFEach(xs []float64) []float64 { return pdfEach(d.PDF, xs) }

// Piecewise splits at Mu±2·Lambda and at the kink x=Mu, where the
// density is continuous but not differentiable.
func (d *Laplace) Piecewise() *piecewise.Density {
	return d.pw.get(func() *piecewise.Density {
		b1 := d.Mu - 2*d.Lambda
		b2 := d.Mu + 2*d.Lambda
		pw := piecewise.New()
		pw.AddSegment(piecewise.NewLeftTail(b1, d.PDF))
		pw.AddSegment(piecewise.NewInterior(b1, d.Mu, d.PDF))
		pw.AddSegment(piecewise.NewInterior(d.Mu, b2, d.PDF))
		pw.AddSegment(piecewise.NewRightTail(b2, d.PDF))
		return pw
	})
}

func (d *Laplace) Rand() float64 {
	return distuv.Laplace{Mu: d.Mu, Scale: d.Lambda, Src: d.Src}.Rand()
}

func (d *Laplace) RandN(n int) []float64 { return randN(d.Rand, n) }

func (d *Laplace) Name() string { return fmt.Sprintf("Laplace(%g,%g)", d.Lambda, d.Mu) }
