// Copyright 2026 The go-distpiece Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package piecewise

import "math"

// A Func is a pointwise density evaluated by the quadrature machinery.
// It must be defined on the open interior of the segment it is attached
// to; the container never calls it at a declared pole.
type Func func(x float64) float64

// A Segment is one piece of a piecewise density. The closed set of
// implementations is Interior, WithPole, LeftTail, RightTail, Const and
// Dirac.
type Segment interface {
	// Lo and Hi bound the segment's domain interval. Lo == Hi only
	// for Dirac segments. Tail segments report an infinite bound.
	Lo() float64
	Hi() float64

	// At returns the density at x, which must lie in [Lo, Hi].
	At(x float64) float64

	// Mass returns the integral of the density over the segment
	// (the point mass itself for Dirac segments).
	Mass() float64

	// LeftPole and RightPole report whether the density is treated
	// as singular at the corresponding boundary. At most one of the
	// two is set.
	LeftPole() bool
	RightPole() bool
}

// Interior is a finite two-sided segment with a well-behaved density.
type Interior struct {
	lo, hi float64
	f      Func
}

// NewInterior returns the segment [lo, hi] evaluating f.
func NewInterior(lo, hi float64, f Func) Interior {
	return Interior{lo: lo, hi: hi, f: f}
}

func (s Interior) Lo() float64          { return s.lo }
func (s Interior) Hi() float64          { return s.hi }
func (s Interior) At(x float64) float64 { return s.f(x) }
func (s Interior) Mass() float64        { return refine(s.f, s.lo, s.hi, massTol, maxDepth) }
func (s Interior) LeftPole() bool       { return false }
func (s Interior) RightPole() bool      { return false }

// WithPole is a finite segment whose density is singular, or treated
// as singular for quadrature purposes, at one declared boundary.
type WithPole struct {
	lo, hi   float64
	f        Func
	leftPole bool
}

// NewWithPole returns the segment [lo, hi] with a pole at lo if
// leftPole is true, else at hi.
func NewWithPole(lo, hi float64, f Func, leftPole bool) WithPole {
	return WithPole{lo: lo, hi: hi, f: f, leftPole: leftPole}
}

func (s WithPole) Lo() float64          { return s.lo }
func (s WithPole) Hi() float64          { return s.hi }
func (s WithPole) At(x float64) float64 { return s.f(x) }
func (s WithPole) LeftPole() bool       { return s.leftPole }
func (s WithPole) RightPole() bool      { return !s.leftPole }

func (s WithPole) Mass() float64 {
	g := poleTransform(s.f, s.lo, s.hi, s.leftPole)
	return refine(g, 0, 1, massTol, maxDepth)
}

// LeftTail is the unbounded segment (-inf, hi].
type LeftTail struct {
	hi float64
	f  Func
}

// NewLeftTail returns the tail segment ending at hi.
func NewLeftTail(hi float64, f Func) LeftTail {
	return LeftTail{hi: hi, f: f}
}

func (s LeftTail) Lo() float64          { return math.Inf(-1) }
func (s LeftTail) Hi() float64          { return s.hi }
func (s LeftTail) At(x float64) float64 { return s.f(x) }
func (s LeftTail) Mass() float64        { return refine(tailTransform(s.f, s.hi, true), 0, 1, massTol, maxDepth) }
func (s LeftTail) LeftPole() bool       { return false }
func (s LeftTail) RightPole() bool      { return false }

// RightTail is the unbounded segment [lo, +inf).
type RightTail struct {
	lo float64
	f  Func
}

// NewRightTail returns the tail segment starting at lo.
func NewRightTail(lo float64, f Func) RightTail {
	return RightTail{lo: lo, f: f}
}

func (s RightTail) Lo() float64          { return s.lo }
func (s RightTail) Hi() float64          { return math.Inf(1) }
func (s RightTail) At(x float64) float64 { return s.f(x) }
func (s RightTail) Mass() float64        { return refine(tailTransform(s.f, s.lo, false), 0, 1, massTol, maxDepth) }
func (s RightTail) LeftPole() bool       { return false }
func (s RightTail) RightPole() bool      { return false }

// Const is a finite segment with constant density.
type Const struct {
	lo, hi float64
	c      float64
}

// NewConst returns the segment [lo, hi] with constant density c.
func NewConst(lo, hi, c float64) Const {
	return Const{lo: lo, hi: hi, c: c}
}

func (s Const) Lo() float64        { return s.lo }
func (s Const) Hi() float64        { return s.hi }
func (s Const) At(float64) float64 { return s.c }
func (s Const) Mass() float64      { return s.c * (s.hi - s.lo) }
func (s Const) LeftPole() bool     { return false }
func (s Const) RightPole() bool    { return false }

// Dirac is a zero-width segment carrying discrete probability mass p
// at a single point.
type Dirac struct {
	x, p float64
}

// NewDirac returns a point mass p at x.
func NewDirac(x, p float64) Dirac {
	return Dirac{x: x, p: p}
}

func (s Dirac) Lo() float64 { return s.x }
func (s Dirac) Hi() float64 { return s.x }

// At returns the point mass when x hits the support point exactly.
func (s Dirac) At(x float64) float64 {
	if x == s.x {
		return s.p
	}
	return 0
}

func (s Dirac) Mass() float64   { return s.p }
func (s Dirac) LeftPole() bool  { return false }
func (s Dirac) RightPole() bool { return false }

// scaled returns s with its density multiplied by w.
func scaled(s Segment, w float64) Segment {
	switch s := s.(type) {
	case Interior:
		f := s.f
		return NewInterior(s.lo, s.hi, func(x float64) float64 { return w * f(x) })
	case WithPole:
		f := s.f
		return NewWithPole(s.lo, s.hi, func(x float64) float64 { return w * f(x) }, s.leftPole)
	case LeftTail:
		f := s.f
		return NewLeftTail(s.hi, func(x float64) float64 { return w * f(x) })
	case RightTail:
		f := s.f
		return NewRightTail(s.lo, func(x float64) float64 { return w * f(x) })
	case Const:
		return NewConst(s.lo, s.hi, w*s.c)
	case Dirac:
		return NewDirac(s.x, w*s.p)
	}
	panic("piecewise: unknown segment kind")
}
