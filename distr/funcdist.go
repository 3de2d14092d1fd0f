// Copyright 2026 The go-distpiece Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distr

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/distpiece/go-distpiece/piecewise"
)

// Func is a user-defined law given by a density function and an
// explicit list of break points, with optional left-pole declarations.
// Well-formedness of the density itself is delegated to the piecewise
// machinery; only the break structure is validated.
type Func struct {
	F         func(float64) float64
	Breaks    []float64
	LeftPoles []bool

	// Src is an optional random source for the inverse-CDF sampler.
	Src rand.Source

	pw lazyDensity
}

// NewFunc returns a user-defined law for f split at the given break
// points. breaks must contain at least two strictly increasing values;
// the first may be -inf and the last +inf. leftPoles may be nil or
// parallel to breaks.
func NewFunc(f func(float64) float64, breaks []float64, leftPoles []bool) (*Func, error) {
	// Validate eagerly so construction fails fast; the density
	// itself is still built lazily.
	if _, err := piecewise.FromBreaks(f, breaks, leftPoles); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParam, err)
	}
	return &Func{
		F:         f,
		Breaks:    append([]float64(nil), breaks...),
		LeftPoles: append([]bool(nil), leftPoles...),
	}, nil
}

func (d *Func) PDF(x float64) float64 {
	if x < d.Breaks[0] || x > d.Breaks[len(d.Breaks)-1] {
		return 0
	}
	return d.F(x)
}

func (d *Func) PDFEach(xs []float64) []float64 { return pdfEach(d.PDF, xs) }

func (d *Func) Piecewise() *piecewise.Density {
	return d.pw.get(func() *piecewise.Density {
		return mustDensity(piecewise.FromBreaks(d.PDF, d.Breaks, d.LeftPoles))
	})
}

// Rand draws through the inverse-CDF fallback; there is no closed-form
// generator for an arbitrary density.
func (d *Func) Rand() float64 {
	u := distuv.Uniform{Min: 0, Max: 1, Src: d.Src}.Rand()
	return d.Piecewise().InvCDF(u)
}

func (d *Func) RandN(n int) []float64 { return randN(d.Rand, n) }

func (d *Func) Name() string {
	lo, hi := d.Breaks[0], d.Breaks[len(d.Breaks)-1]
	return fmt.Sprintf("Fun(%g,%g)", lo, hi)
}

// Pieces is a user-defined law given directly as an ordered segment
// sequence.
type Pieces struct {
	// Src is an optional random source for the inverse-CDF sampler.
	Src rand.Source

	pw *piecewise.Density
}

// NewPieces returns a law over an explicitly assembled segment
// sequence. The sequence must be contiguous with strictly increasing
// boundaries.
func NewPieces(segs ...piecewise.Segment) (*Pieces, error) {
	pw := piecewise.New()
	for _, s := range segs {
		pw.AddSegment(s)
	}
	if err := pw.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParam, err)
	}
	return &Pieces{pw: pw}, nil
}

func (d *Pieces) PDF(x float64) float64 { return d.pw.At(x) }

func (d *Pieces) PDFEach(xs []float64) []float64 { return pdfEach(d.PDF, xs) }

// Piecewise returns the sequence the law was built from; for Pieces
// the build happened at construction and is trivially idempotent.
func (d *Pieces) Piecewise() *piecewise.Density { return d.pw }

func (d *Pieces) Rand() float64 {
	u := distuv.Uniform{Min: 0, Max: 1, Src: d.Src}.Rand()
	return d.pw.InvCDF(u)
}

func (d *Pieces) RandN(n int) []float64 { return randN(d.Rand, n) }

func (d *Pieces) Name() string {
	return fmt.Sprintf("PDistr(%d segments)", len(d.pw.Segments()))
}
