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

// Levy is the Lévy law with scale C starting at Xmin. The density
// limit at the boundary is 0 (the essential singularity of the
// exponential factor wins over the power divergence), so no pole is
// declared.
type Levy struct {
	C, Xmin float64

	// Src is an optional random source for Rand.
	Src rand.Source

	lgNrm float64
	pw    lazyDensity
}

// NewLevy returns a Lévy law with scale c > 0 located at xmin.
func NewLevy(c, xmin float64) (*Levy, error) {
	if !(c > 0) {
		return nil, fmt.Errorf("%w: levy c=%v must be > 0", ErrInvalidParam, c)
	}
	return &Levy{C: c, Xmin: xmin, lgNrm: 0.5 * math.Log(c/(2*math.Pi))}, nil
}

// PDF evaluates in the log domain; at and below Xmin the density is
// exactly 0, and just above it exp(-c/(2(x-xmin))) underflows to 0
// before the power term can overflow.
func (d *Levy) PDF(x float64) float64 {
	if x <= d.Xmin {
		return 0
	}
	dx := x - d.Xmin
	return math.Exp(d.lgNrm - 1.5*math.Log(dx) - 0.5*d.C/dx)
}

func (d *Levy) PDFEach(xs []float64) []float64 { return pdfEach(d.PDF, xs) }

// Piecewise splits at Xmin+C.
func (d *Levy) Piecewise() *piecewise.Density {
	return d.pw.get(func() *piecewise.Density {
		pw := piecewise.New()
		pw.AddSegment(piecewise.NewInterior(d.Xmin, d.Xmin+d.C, d.PDF))
		pw.AddSegment(piecewise.NewRightTail(d.Xmin+d.C, d.PDF))
		return pw
	})
}

// Rand draws via the inverse-square identity: if Z ~ N(0, 1/sqrt(c)),
// then Xmin + 1/Z² is Lévy(c, Xmin).
func (d *Levy) Rand() float64 {
	z := distuv.Normal{Mu: 0, Sigma: 1 / math.Sqrt(d.C), Src: d.Src}.Rand()
	return d.Xmin + 1/(z*z)
}

func (d *Levy) RandN(n int) []float64 { return randN(d.Rand, n) }

func (d *Levy) Name() string { return fmt.Sprintf("Levy(%g,%g)", d.C, d.Xmin) }
