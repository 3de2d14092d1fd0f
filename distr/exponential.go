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

// Exponential is the exponential law with rate Lambda.
type Exponential struct {
	Lambda float64

	// Src is an optional random source for Rand.
	Src rand.Source

	pw lazyDensity
}

// NewExponential returns an exponential law with rate lambda > 0.
func NewExponential(lambda float64) (*Exponential, error) {
	if !(lambda > 0) {
		return nil, fmt.Errorf("%w: exponential lambda=%v must be > 0", ErrInvalidParam, lambda)
	}
	return &Exponential{Lambda: lambda}, nil
}

func (d *Exponential) PDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	return d.Lambda * math.Exp(-d.Lambda*x)
}

func (d *Exponential) PDFEach(xs []float64) []float64 { return pdfEach(d.PDF, xs) }

func (d *Exponential) Piecewise() *piecewise.Density {
	return d.pw.get(func() *piecewise.Density {
		pw := piecewise.New()
		pw.AddSegment(piecewise.NewInterior(0, 1, d.PDF))
		pw.AddSegment(piecewise.NewRightTail(1, d.PDF))
		return pw
	})
}

func (d *Exponential) Rand() float64 {
	return distuv.Exponential{Rate: d.Lambda, Src: d.Src}.Rand()
}

func (d *Exponential) RandN(n int) []float64 { return randN(d.Rand, n) }

func (d *Exponential) Name() string { return fmt.Sprintf("Ex(%g)", d.Lambda) }
