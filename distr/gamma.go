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

// Gamma is the gamma law with shape K and scale Theta.
type Gamma struct {
	K, Theta float64

	// Src is an optional random source for Rand.
	Src rand.Source

	lgNorm float64
	pdfAt0 float64
	pw     lazyDensity
}

// NewGamma returns a gamma law with shape k > 0 and scale theta > 0.
func NewGamma(k, theta float64) (*Gamma, error) {
	if !(k > 0) {
		return nil, fmt.Errorf("%w: gamma shape k=%v must be > 0", ErrInvalidParam, k)
	}
	if !(theta > 0) {
		return nil, fmt.Errorf("%w: gamma scale theta=%v must be > 0", ErrInvalidParam, theta)
	}
	d := &Gamma{
		K:      k,
		Theta:  theta,
		lgNorm: mathx.Lgamma(k) + k*math.Log(theta),
	}
	switch {
	case k < 1:
		d.pdfAt0 = inf
	case k == 1:
		d.pdfAt0 = 1 / theta
	default:
		d.pdfAt0 = 0
	}
	return d, nil
}

func (d *Gamma) logPDF(x float64) float64 {
	return (d.K-1)*math.Log(x) - x/d.Theta - d.lgNorm
}

func (d *Gamma) PDF(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x == 0:
		return d.pdfAt0
	default:
		return math.Exp(d.logPDF(x))
	}
}

func (d *Gamma) PDFEach(xs []float64) []float64 { return pdfEach(d.PDF, xs) }

// Piecewise uses two pieces split at 1 for k ≤ 1 (with a left pole
// when k < 1) and four pieces quartered around the mode (k-1)·theta
// for k > 1.
func (d *Gamma) Piecewise() *piecewise.Density {
	return d.pw.get(func() *piecewise.Density {
		pw := piecewise.New()
		switch {
		case d.K < 1:
			pw.AddSegment(piecewise.NewWithPole(0, 1, d.PDF, true))
			pw.AddSegment(piecewise.NewRightTail(1, d.PDF))
		case d.K == 1:
			pw.AddSegment(piecewise.NewInterior(0, 1, d.PDF))
			pw.AddSegment(piecewise.NewRightTail(1, d.PDF))
		default:
			mode := (d.K - 1) * d.Theta
			pw.AddSegment(piecewise.NewInterior(0, mode/2, d.PDF))
			pw.AddSegment(piecewise.NewInterior(mode/2, mode, d.PDF))
			pw.AddSegment(piecewise.NewInterior(mode, 2*mode, d.PDF))
			pw.AddSegment(piecewise.NewRightTail(2*mode, d.PDF))
		}
		return pw
	})
}

// Rand draws via distuv's rate parameterization, Beta = 1/Theta.
func (d *Gamma) Rand() float64 {
	return distuv.Gamma{Alpha: d.K, Beta: 1 / d.Theta, Src: d.Src}.Rand()
}

func (d *Gamma) RandN(n int) []float64 { return randN(d.Rand, n) }

func (d *Gamma) Name() string { return fmt.Sprintf("Gamma(%g,%g)", d.K, d.Theta) }
