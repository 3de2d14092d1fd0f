// Copyright 2026 The go-distpiece Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package piecewise

import "math"

// buildCDF integrates every segment once and caches the cumulative
// mass table. The table is built at most once per density.
func (d *Density) buildCDF() {
	d.cdfOnce.Do(func() {
		d.cum = make([]float64, len(d.segs))
		total := 0.0
		for i, s := range d.segs {
			total += s.Mass()
			d.cum[i] = total
		}
		d.total = total
	})
}

// Mass returns the total integral of the density over its support.
// For a probability density this is 1 up to quadrature error.
func (d *Density) Mass() float64 {
	d.buildCDF()
	return d.total
}

// CDF returns the integral of the density from the left end of the
// support up to and including x. Point masses at x are included, so
// the result is right-continuous.
func (d *Density) CDF(x float64) float64 {
	d.buildCDF()
	acc := 0.0
	for i, s := range d.segs {
		if x >= s.Hi() {
			acc = d.cum[i]
			continue
		}
		if x > s.Lo() {
			acc += partialMass(s, x)
		}
		break
	}
	return acc
}

// InvCDF returns the smallest x with CDF(x) >= p*Mass(). It is the
// inverse-CDF sampling fallback for laws without a closed-form
// generator. p outside [0, 1] is clamped.
func (d *Density) InvCDF(p float64) float64 {
	d.buildCDF()
	if len(d.segs) == 0 {
		return math.NaN()
	}
	if p < 0 {
		p = 0
	} else if p > 1 {
		p = 1
	}
	target := p * d.total

	// Locate the segment where the cumulative mass crosses the
	// target.
	i := 0
	for ; i < len(d.segs)-1; i++ {
		if d.cum[i] >= target {
			break
		}
	}
	s := d.segs[i]
	prev := 0.0
	if i > 0 {
		prev = d.cum[i-1]
	}

	switch s := s.(type) {
	case Dirac:
		return s.x
	case Const:
		if s.c == 0 {
			return s.lo
		}
		return s.lo + (target-prev)/s.c
	}

	lo, hi := d.bracket(s, target)
	for k := 0; k < 80 && lo < hi; k++ {
		mid := 0.5 * (lo + hi)
		if d.CDF(mid) < target {
			lo = mid
		} else {
			hi = mid
		}
	}
	return 0.5 * (lo + hi)
}

// bracket returns finite bounds around the inverse-CDF solution inside
// segment s, expanding geometrically into unbounded tails.
func (d *Density) bracket(s Segment, target float64) (lo, hi float64) {
	lo, hi = s.Lo(), s.Hi()
	if math.IsInf(lo, -1) {
		lo = hi - 1
		for step := 1.0; d.CDF(lo) > target && step < 1e300; step *= 2 {
			lo = hi - step
		}
	}
	if math.IsInf(hi, 1) {
		hi = lo + 1
		for step := 1.0; d.CDF(hi) < target && step < 1e300; step *= 2 {
			hi = lo + step
		}
	}
	return lo, hi
}
