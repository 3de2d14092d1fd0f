// Copyright 2026 The go-distpiece Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distr

import (
	"sync"

	"github.com/distpiece/go-distpiece/piecewise"
)

// A Dist is a probability law exposed through its density, its
// piecewise decomposition and a sampler.
type Dist interface {
	// PDF returns the value of the probability density function at
	// x. It is defined for every numeric x and returns 0 outside
	// the support; at a declared pole it returns +Inf.
	PDF(x float64) float64

	// PDFEach returns PDF(xs[i]) for each i.
	PDFEach(xs []float64) []float64

	// Piecewise returns the law's piecewise decomposition. The
	// sequence is built on first access, exactly once, and shared
	// by later calls.
	Piecewise() *piecewise.Density

	// Rand returns one draw from the law.
	Rand() float64

	// RandN returns n draws from the law.
	RandN(n int) []float64

	// Name returns a short canonical identifier of the family and
	// its parameters, for diagnostics only.
	Name() string
}

// lazyDensity guards the one-time build of a law's piecewise form.
type lazyDensity struct {
	once sync.Once
	d    *piecewise.Density
}

func (l *lazyDensity) get(build func() *piecewise.Density) *piecewise.Density {
	l.once.Do(func() { l.d = build() })
	return l.d
}

// pdfEach evaluates a scalar density over a batch. Batch evaluation
// shares the scalar code path, so the two agree exactly at every
// sample point.
func pdfEach(pdf func(float64) float64, xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = pdf(x)
	}
	return ys
}

// randN collects n draws from a scalar sampler.
func randN(rand func() float64, n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = rand()
	}
	return xs
}

// mustDensity unwraps a density construction that cannot fail for
// parameters admitted by the family's constructor.
func mustDensity(d *piecewise.Density, err error) *piecewise.Density {
	if err != nil {
		panic(err)
	}
	return d
}
