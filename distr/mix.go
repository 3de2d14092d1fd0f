// Copyright 2026 The go-distpiece Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distr

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/distpiece/go-distpiece/piecewise"
)

// Mix is a finite mixture of laws with the given weights.
type Mix struct {
	Weights    []float64
	Components []Dist

	// Src is an optional random source for component selection, read
	// when the sampler is first used.
	Src rand.Source

	catOnce sync.Once
	cat     distuv.Categorical
	pw      lazyDensity
}

// NewMix returns the mixture of the given components. Weights must be
// positive and sum to 1, with one weight per component.
func NewMix(weights []float64, components ...Dist) (*Mix, error) {
	if len(components) == 0 || len(weights) != len(components) {
		return nil, fmt.Errorf("%w: mixture needs equally many weights (%d) and components (%d)",
			ErrInvalidParam, len(weights), len(components))
	}
	for i, w := range weights {
		if !(w > 0) {
			return nil, fmt.Errorf("%w: mixture weight %v for %s", ErrInvalidParam, w, components[i].Name())
		}
	}
	if total := floats.Sum(weights); math.Abs(total-1) > 1e-9 {
		return nil, fmt.Errorf("%w: mixture weights sum to %v, want 1", ErrInvalidParam, total)
	}
	return &Mix{
		Weights:    append([]float64(nil), weights...),
		Components: append([]Dist(nil), components...),
	}, nil
}

// PDF is the weighted sum of the component densities.
func (d *Mix) PDF(x float64) float64 {
	y := 0.0
	for i, c := range d.Components {
		y += d.Weights[i] * c.PDF(x)
	}
	return y
}

func (d *Mix) PDFEach(xs []float64) []float64 { return pdfEach(d.PDF, xs) }

// Piecewise combines the components' piecewise forms, not their raw
// closed-form densities: each component first exposes its own
// decomposition, so heterogeneous pole structure across components
// survives the combination.
func (d *Mix) Piecewise() *piecewise.Density {
	return d.pw.get(func() *piecewise.Density {
		acc := d.Components[0].Piecewise().Scale(d.Weights[0])
		for i := 1; i < len(d.Components); i++ {
			acc = piecewise.Sum(acc, d.Components[i].Piecewise().Scale(d.Weights[i]))
		}
		return acc
	})
}

// Rand picks a component by weight, then draws from it. The weight
// table is prepared on the first draw and reused.
func (d *Mix) Rand() float64 {
	d.catOnce.Do(func() { d.cat = distuv.NewCategorical(d.Weights, d.Src) })
	return d.Components[int(d.cat.Rand())].Rand()
}

func (d *Mix) RandN(n int) []float64 { return randN(d.Rand, n) }

func (d *Mix) Name() string {
	parts := make([]string, len(d.Components))
	for i, c := range d.Components {
		parts[i] = fmt.Sprintf("%g*%s", d.Weights[i], c.Name())
	}
	return "Mix(" + strings.Join(parts, ",") + ")"
}
