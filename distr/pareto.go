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

// Pareto is the Pareto law with tail index Alpha and minimum Xmin.
// The density at the boundary Xmin is finite (alpha/xmin); no pole is
// declared.
type Pareto struct {
	Alpha, Xmin float64

	// Src is an optional random source for Rand.
	Src rand.Source

	lgNrm float64
	pw    lazyDensity
}

// NewPareto returns a Pareto law with alpha > 0 and xmin > 0.
func NewPareto(alpha, xmin float64) (*Pareto, error) {
	if !(alpha > 0) {
		return nil, fmt.Errorf("%w: pareto alpha=%v must be > 0", ErrInvalidParam, alpha)
	}
	if !(xmin > 0) {
		return nil, fmt.Errorf("%w: pareto xmin=%v must be > 0", ErrInvalidParam, xmin)
	}
	return &Pareto{
		Alpha: alpha,
		Xmin:  xmin,
		lgNrm: math.Log(alpha) + alpha*math.Log(xmin),
	}, nil
}

func (d *Pareto) PDF(x float64) float64 {
	if x < d.Xmin {
		return 0
	}
	return math.Exp(d.lgNrm - (d.Alpha+1)*math.Log(x))
}

func (d *Pareto) PDFEach(xs []float64) []float64 { return pdfEach(d.PDF, xs) }

// Piecewise splits one unit above the minimum, leaving the heavy tail
// to its own segment.
func (d *Pareto) Piecewise() *piecewise.Density {
	return d.pw.get(func() *piecewise.Density {
		pw := piecewise.New()
		pw.AddSegment(piecewise.NewInterior(d.Xmin, d.Xmin+1, d.PDF))
		pw.AddSegment(piecewise.NewRightTail(d.Xmin+1, d.PDF))
		return pw
	})
}

func (d *Pareto) Rand() float64 {
	return distuv.Pareto{Xm: d.Xmin, Alpha: d.Alpha, Src: d.Src}.Rand()
}

func (d *Pareto) RandN(n int) []float64 { return randN(d.Rand, n) }

func (d *Pareto) Name() string { return fmt.Sprintf("Pareto(%g,%g)", d.Alpha, d.Xmin) }
