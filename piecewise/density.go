// Copyright 2026 The go-distpiece Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// piecewise holds probability densities decomposed into ordered,
// analytically well-behaved segments, and the quadrature, CDF and
// inverse-CDF machinery operating on them.
package piecewise // import "github.com/distpiece/go-distpiece/piecewise"

import (
	"errors"
	"math"
	"sort"
	"sync"
)

var (
	// ErrBreaks indicates a break-point list that is too short or
	// not strictly increasing.
	ErrBreaks = errors.New("piecewise: break points must be at least two, strictly increasing values")
	// ErrPoleList indicates a left-pole list that does not parallel
	// the break-point list.
	ErrPoleList = errors.New("piecewise: left-pole flags must parallel the break points")
	// ErrGap indicates a segment sequence with a gap or overlap.
	ErrGap = errors.New("piecewise: segment sequence must be contiguous and non-overlapping")
)

// A Density is an ordered, non-overlapping sequence of segments
// representing one probability density. Segments are kept sorted by
// their lower boundary; zero-width point masses sort before the
// interval starting at the same point.
type Density struct {
	segs []Segment

	cdfOnce sync.Once
	cum     []float64
	total   float64
}

// New returns an empty density.
func New() *Density {
	return &Density{}
}

// AddSegment inserts s, preserving boundary order. It must be called
// before any mass or CDF query.
func (d *Density) AddSegment(s Segment) {
	i := sort.Search(len(d.segs), func(i int) bool {
		si := d.segs[i]
		if si.Lo() != s.Lo() {
			return si.Lo() > s.Lo()
		}
		// Point mass sorts before the interval it abuts.
		return !(si.Lo() == si.Hi() && s.Lo() != s.Hi())
	})
	d.segs = append(d.segs, nil)
	copy(d.segs[i+1:], d.segs[i:])
	d.segs[i] = s
}

// Segments returns the ordered segment sequence. The caller must not
// modify it.
func (d *Density) Segments() []Segment {
	return d.segs
}

// Validate checks that the segment sequence partitions its support:
// boundaries strictly increase and consecutive segments share a
// boundary with no gap or overlap.
func (d *Density) Validate() error {
	for i, s := range d.segs {
		if s.Lo() > s.Hi() {
			return ErrGap
		}
		if i == 0 {
			continue
		}
		if d.segs[i-1].Hi() != s.Lo() {
			return ErrGap
		}
	}
	return nil
}

// FromBreaks builds a density for f split at the given break points.
// breaks[0] may be -inf and the last break +inf, producing tail
// segments. leftPoles may be nil; otherwise leftPoles[i] declares a
// pole on the left boundary of the segment starting at breaks[i].
func FromBreaks(f Func, breaks []float64, leftPoles []bool) (*Density, error) {
	if len(breaks) < 2 {
		return nil, ErrBreaks
	}
	for i := 1; i < len(breaks); i++ {
		if !(breaks[i-1] < breaks[i]) {
			return nil, ErrBreaks
		}
	}
	if leftPoles != nil && len(leftPoles) != len(breaks) {
		return nil, ErrPoleList
	}

	d := New()
	for i := 0; i+1 < len(breaks); i++ {
		lo, hi := breaks[i], breaks[i+1]
		pole := leftPoles != nil && leftPoles[i]
		switch {
		case math.IsInf(lo, -1):
			d.AddSegment(NewLeftTail(hi, f))
		case math.IsInf(hi, 1):
			d.AddSegment(NewRightTail(lo, f))
		case pole:
			d.AddSegment(NewWithPole(lo, hi, f, true))
		default:
			d.AddSegment(NewInterior(lo, hi, f))
		}
	}
	return d, nil
}

// At returns the density at x, or 0 when x is outside the support.
// At a point-mass location it returns the mass itself: the zero-width
// segment wins over any interval segment sharing that boundary, so a
// mass between two fillers is never shadowed by its neighbors.
func (d *Density) At(x float64) float64 {
	for _, s := range d.segs {
		if s.Lo() == s.Hi() && x == s.Lo() {
			return s.Mass()
		}
	}
	for _, s := range d.segs {
		if s.Lo() == s.Hi() {
			continue
		}
		if s.Lo() <= x && x <= s.Hi() {
			return s.At(x)
		}
	}
	return 0
}

// Each returns At(xs[i]) for each i.
func (d *Density) Each(xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = d.At(x)
	}
	return ys
}

// Scale returns a new density with every segment's density multiplied
// by w. The receiver is unchanged.
func (d *Density) Scale(w float64) *Density {
	out := New()
	for _, s := range d.segs {
		out.AddSegment(scaled(s, w))
	}
	return out
}

// Sum returns the pointwise sum of two densities. Break points are the
// union of both sequences' boundaries, so each operand's pole
// structure survives in the result; summing the raw closed forms
// instead would lose it.
func Sum(a, b *Density) *Density {
	at := func(x float64) float64 { return a.At(x) + b.At(x) }

	// Union of finite boundaries and point masses.
	bset := make(map[float64]bool)
	pmass := make(map[float64]float64)
	var leftTail, rightTail bool
	for _, d := range []*Density{a, b} {
		for _, s := range d.segs {
			if s.Lo() == s.Hi() {
				pmass[s.Lo()] += s.Mass()
				bset[s.Lo()] = true
				continue
			}
			if math.IsInf(s.Lo(), -1) {
				leftTail = true
			} else {
				bset[s.Lo()] = true
			}
			if math.IsInf(s.Hi(), 1) {
				rightTail = true
			} else {
				bset[s.Hi()] = true
			}
		}
	}
	breaks := make([]float64, 0, len(bset))
	for x := range bset {
		breaks = append(breaks, x)
	}
	sort.Float64s(breaks)

	out := New()
	if leftTail && len(breaks) > 0 {
		out.AddSegment(NewLeftTail(breaks[0], at))
	}
	for x, p := range pmass {
		out.AddSegment(NewDirac(x, p))
	}
	for i := 0; i+1 < len(breaks); i++ {
		addSumPiece(out, a, b, breaks[i], breaks[i+1], at)
	}
	if rightTail && len(breaks) > 0 {
		out.AddSegment(NewRightTail(breaks[len(breaks)-1], at))
	}
	return out
}

// addSumPiece emits the piece [lo, hi] of a summed density, carrying
// over pole declarations from either operand. When both boundaries
// inherit a pole the piece is split at its midpoint so each half
// declares a single side.
func addSumPiece(out *Density, a, b *Density, lo, hi float64, at Func) {
	leftP := hasPoleAt(a, lo, true) || hasPoleAt(b, lo, true)
	rightP := hasPoleAt(a, hi, false) || hasPoleAt(b, hi, false)
	switch {
	case leftP && rightP:
		mid := 0.5 * (lo + hi)
		out.AddSegment(NewWithPole(lo, mid, at, true))
		out.AddSegment(NewWithPole(mid, hi, at, false))
	case leftP:
		out.AddSegment(NewWithPole(lo, hi, at, true))
	case rightP:
		out.AddSegment(NewWithPole(lo, hi, at, false))
	default:
		out.AddSegment(NewInterior(lo, hi, at))
	}
}

// hasPoleAt reports whether d declares a pole at boundary x on the
// given side (left = pole at a segment's lower boundary).
func hasPoleAt(d *Density, x float64, left bool) bool {
	for _, s := range d.segs {
		if left && s.LeftPole() && s.Lo() == x {
			return true
		}
		if !left && s.RightPole() && s.Hi() == x {
			return true
		}
	}
	return false
}
