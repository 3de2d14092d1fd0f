// Copyright 2026 The go-distpiece Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distr

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/distpiece/go-distpiece/piecewise"
)

// Discrete is a finite discrete law: point masses Ps[i] at the
// strictly increasing support points Xs[i].
type Discrete struct {
	Xs, Ps []float64

	// Src is an optional random source, read when the sampler is
	// first used.
	Src rand.Source

	catOnce sync.Once
	cat     distuv.Categorical
	pw      lazyDensity
}

// NewDiscrete returns a discrete law over the given support points and
// probabilities. The pairs are sorted by support point; probabilities
// must lie in [0, 1] and sum to 1.
func NewDiscrete(xs, ps []float64) (*Discrete, error) {
	if len(xs) == 0 || len(xs) != len(ps) {
		return nil, fmt.Errorf("%w: discrete law needs equally many support points (%d) and probabilities (%d)",
			ErrInvalidParam, len(xs), len(ps))
	}
	xs = append([]float64(nil), xs...)
	ps = append([]float64(nil), ps...)
	sort.Sort(byPoint{xs, ps})
	for i, p := range ps {
		if !(p >= 0 && p <= 1) {
			return nil, fmt.Errorf("%w: discrete probability %v at x=%v", ErrInvalidParam, p, xs[i])
		}
		if i > 0 && xs[i-1] == xs[i] {
			return nil, fmt.Errorf("%w: duplicate discrete support point %v", ErrInvalidParam, xs[i])
		}
	}
	if total := floats.Sum(ps); math.Abs(total-1) > 1e-9 {
		return nil, fmt.Errorf("%w: discrete probabilities sum to %v, want 1", ErrInvalidParam, total)
	}
	return &Discrete{Xs: xs, Ps: ps}, nil
}

// NewConstant returns the degenerate one-point law concentrated at c.
func NewConstant(c float64) *Discrete {
	d, err := NewDiscrete([]float64{c}, []float64{1})
	if err != nil {
		panic(err)
	}
	return d
}

// One returns the one-point law at 1.
func One() *Discrete { return NewConstant(1) }

// Zero returns the one-point law at 0.
func Zero() *Discrete { return NewConstant(0) }

type byPoint struct{ xs, ps []float64 }

func (b byPoint) Len() int           { return len(b.xs) }
func (b byPoint) Less(i, j int) bool { return b.xs[i] < b.xs[j] }
func (b byPoint) Swap(i, j int) {
	b.xs[i], b.xs[j] = b.xs[j], b.xs[i]
	b.ps[i], b.ps[j] = b.ps[j], b.ps[i]
}

// PDF returns the point mass at x when x is a support point and 0
// everywhere else.
func (d *Discrete) PDF(x float64) float64 {
	i := sort.SearchFloat64s(d.Xs, x)
	if i < len(d.Xs) && d.Xs[i] == x {
		return d.Ps[i]
	}
	return 0
}

func (d *Discrete) PDFEach(xs []float64) []float64 { return pdfEach(d.PDF, xs) }

// Piecewise attaches one Dirac segment per support point and
// zero-density constant segments filling the gaps between consecutive
// points.
func (d *Discrete) Piecewise() *piecewise.Density {
	return d.pw.get(func() *piecewise.Density {
		pw := piecewise.New()
		for i, x := range d.Xs {
			pw.AddSegment(piecewise.NewDirac(x, d.Ps[i]))
		}
		for i := 0; i+1 < len(d.Xs); i++ {
			pw.AddSegment(piecewise.NewConst(d.Xs[i], d.Xs[i+1], 0))
		}
		return pw
	})
}

// Rand draws a support point by weight. The categorical table is
// prepared on the first draw and reused; the probabilities are
// immutable after construction.
func (d *Discrete) Rand() float64 {
	d.catOnce.Do(func() { d.cat = distuv.NewCategorical(d.Ps, d.Src) })
	return d.Xs[int(d.cat.Rand())]
}

func (d *Discrete) RandN(n int) []float64 { return randN(d.Rand, n) }

func (d *Discrete) Name() string { return fmt.Sprintf("Di(%d)", len(d.Xs)) }
