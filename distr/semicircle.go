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

// Semicircle is the Wigner semicircle law on [-R, R]. Both support
// edges carry pole declarations: the density vanishes there but with
// an inverse-square-root branch singularity that plain quadrature
// resolves poorly.
type Semicircle struct {
	R float64

	// Src is an optional random source for Rand.
	Src rand.Source

	nrm float64
	pw  lazyDensity
}

// NewSemicircle returns a semicircle law with radius r > 0.
func NewSemicircle(r float64) (*Semicircle, error) {
	if !(r > 0) {
		return nil, fmt.Errorf("%w: semicircle R=%v must be > 0", ErrInvalidParam, r)
	}
	return &Semicircle{R: r, nrm: 2 / (math.Pi * r * r)}, nil
}

func (d *Semicircle) PDF(x float64) float64 {
	if x < -d.R || x > d.R {
		return 0
	}
	return d.nrm * math.Sqrt(d.R*d.R-x*x)
}

func (d *Semicircle) PDFEach(xs []float64) []float64 { return pdfEach(d.PDF, xs) }

// Piecewise uses three pieces: pole-adjacent quarters at both edges
// and a plain interior.
func (d *Semicircle) Piecewise() *piecewise.Density {
	return d.pw.get(func() *piecewise.Density {
		pw := piecewise.New()
		pw.AddSegment(piecewise.NewWithPole(-d.R, -d.R/2, d.PDF, true))
		pw.AddSegment(piecewise.NewInterior(-d.R/2, d.R/2, d.PDF))
		pw.AddSegment(piecewise.NewWithPole(d.R/2, d.R, d.PDF, false))
		return pw
	})
}

// Rand draws R·sqrt(U1)·cos(pi·U2), a polar-form semicircle sampler.
func (d *Semicircle) Rand() float64 {
	u := distuv.Uniform{Min: 0, Max: 1, Src: d.Src}
	return d.R * math.Sqrt(u.Rand()) * math.Cos(math.Pi*u.Rand())
}

func (d *Semicircle) RandN(n int) []float64 { return randN(d.Rand, n) }

func (d *Semicircle) Name() string { return fmt.Sprintf("Semicircle(%g)", d.R) }
