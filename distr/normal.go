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

// Normal is the normal law N(Mu, Sigma).
type Normal struct {
	Mu, Sigma float64

	// Src is an optional random source for Rand. When nil the
	// shared global source is used.
	Src rand.Source

	invTwoSigma2 float64
	nrm          float64
	pw           lazyDensity
}

// NewNormal returns a normal law with mean mu and standard deviation
// sigma > 0.
func NewNormal(mu, sigma float64) (*Normal, error) {
	if !(sigma > 0) {
		return nil, fmt.Errorf("%w: normal sigma=%v must be > 0", ErrInvalidParam, sigma)
	}
	return &Normal{
		Mu:           mu,
		Sigma:        sigma,
		invTwoSigma2: 0.5 / (sigma * sigma),
		nrm:          1 / (sigma * math.Sqrt(2*math.Pi)),
	}, nil
}

func (d *Normal) PDF(x float64) float64 {
	q := (x - d.Mu) * (x - d.Mu) * d.invTwoSigma2
	return d.nrm * math.Exp(-q)
}

func (d *Normal) PDFEach(xs []float64) []float64 { return pdfEach(d.PDF, xs) }

// Piecewise splits at the inflection points Mu±Sigma.
func (d *Normal) Piecewise() *piecewise.Density {
	return d.pw.get(func() *piecewise.Density {
		pw := piecewise.New()
		pw.AddSegment(piecewise.NewLeftTail(d.Mu-d.Sigma, d.PDF))
		pw.AddSegment(piecewise.NewInterior(d.Mu-d.Sigma, d.Mu+d.Sigma, d.PDF))
		pw.AddSegment(piecewise.NewRightTail(d.Mu+d.Sigma, d.PDF))
		return pw
	})
}

func (d *Normal) Rand() float64 {
	return distuv.Normal{Mu: d.Mu, Sigma: d.Sigma, Src: d.Src}.Rand()
}

func (d *Normal) RandN(n int) []float64 { return randN(d.Rand, n) }

func (d *Normal) Name() string { return fmt.Sprintf("N(%g,%g)", d.Mu, d.Sigma) }
