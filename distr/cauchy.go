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

// Cauchy is the Cauchy law with half-width Gamma at Center.
type Cauchy struct {
	Gamma, Center float64

	// Src is an optional random source for Rand.
	Src rand.Source

	pw lazyDensity
}

// NewCauchy returns a Cauchy law with scale gamma > 0 centered at
// center.
func NewCauchy(gamma, center float64) (*Cauchy, error) {
	if !(gamma > 0) {
		return nil, fmt.Errorf("%w: cauchy gamma=%v must be > 0", ErrInvalidParam, gamma)
	}
	return &Cauchy{Gamma: gamma, Center: center}, nil
}

func (d *Cauchy) PDF(x float64) float64 {
	dx := x - d.Center
	return d.Gamma / (math.Pi * (d.Gamma*d.Gamma + dx*dx))
}

func (d *Cauchy) PDFEach(xs []float64) []float64 { return pdfEach(d.PDF, xs) }

// Piecewise splits at the inflection points Center±Gamma.
func (d *Cauchy) Piecewise() *piecewise.Density {
	return d.pw.get(func() *piecewise.Density {
		pw := piecewise.New()
		pw.AddSegment(piecewise.NewLeftTail(d.Center-d.Gamma, d.PDF))
		pw.AddSegment(piecewise.NewInterior(d.Center-d.Gamma, d.Center+d.Gamma, d.PDF))
		pw.AddSegment(piecewise.NewRightTail(d.Center+d.Gamma, d.PDF))
		return pw
	})
}

// Rand draws via the Student-t identity: a t with one degree of
// freedom is standard Cauchy.
func (d *Cauchy) Rand() float64 {
	t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: 1, Src: d.Src}.Rand()
	return d.Center + d.Gamma*t
}

func (d *Cauchy) RandN(n int) []float64 { return randN(d.Rand, n) }

func (d *Cauchy) Name() string { return fmt.Sprintf("Cauchy(%g,%g)", d.Center, d.Gamma) }
