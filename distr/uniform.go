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

// Uniform is the continuous uniform law on [A, B].
type Uniform struct {
	A, B float64

	// Src is an optional random source for Rand.
	Src rand.Source

	p  float64
	pw lazyDensity
}

// NewUniform returns the uniform law on [a, b], a < b.
func NewUniform(a, b float64) (*Uniform, error) {
	if !(a < b) {
		return nil, fmt.Errorf("%w: uniform bounds a=%v, b=%v must satisfy a < b", ErrInvalidParam, a, b)
	}
	return &Uniform{A: a, B: b, p: 1 / (b - a)}, nil
}

func (d *Uniform) PDF(x float64) float64 {
	if x < d.A || x > d.B {
		return 0
	}
	return d.p
}

func (d *Uniform) PDFEach(xs []float64) []float64 { return pdfEach(d.PDF, xs) }

// Piecewise is a single constant segment.
func (d *Uniform) Piecewise() *piecewise.Density {
	return d.pw.get(func() *piecewise.Density {
		pw := piecewise.New()
		pw.AddSegment(piecewise.NewConst(d.A, d.B, d.p))
		return pw
	})
}

func (d *Uniform) Rand() float64 {
	return distuv.Uniform{Min: d.A, Max: d.B, Src: d.Src}.Rand()
}

func (d *Uniform) RandN(n int) []float64 { return randN(d.Rand, n) }

func (d *Uniform) Name() string { return fmt.Sprintf("U(%g,%g)", d.A, d.B) }
