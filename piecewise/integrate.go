// Copyright 2026 The go-distpiece Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package piecewise

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

const (
	// quadNodes is the Gauss-Legendre order of one panel.
	quadNodes = 21

	// massTol is the absolute tolerance requested from refine for a
	// full-segment integral. Well below the 1e-6 accuracy the
	// catalogued laws are verified against.
	massTol = 1e-10

	// maxDepth bounds the interval-halving recursion.
	maxDepth = 48

	// poleExp is the exponent of the power substitution that removes
	// boundary singularities. u^6 keeps the transformed integrand
	// bounded for power-law exponents down to x^(-5/6).
	poleExp = 6
)

var legendre = quad.Legendre{}

func fixed(f func(float64) float64, a, b float64) float64 {
	return quad.Fixed(f, a, b, quadNodes, legendre, 0)
}

// refine integrates f over [a, b] by comparing one Gauss-Legendre panel
// against its two halves and recursing where they disagree. f must be
// finite on the open interval; the Legendre nodes never touch the
// endpoints.
func refine(f func(float64) float64, a, b, tol float64, depth int) float64 {
	mid := 0.5 * (a + b)
	whole := fixed(f, a, b)
	split := fixed(f, a, mid) + fixed(f, mid, b)
	if depth <= 0 || math.Abs(whole-split) <= tol {
		return split
	}
	return refine(f, a, mid, 0.5*tol, depth-1) + refine(f, mid, b, 0.5*tol, depth-1)
}

// poleTransform maps the integral of f over [lo, hi] with a singular
// boundary onto [0, 1] via the power substitution x = lo + (hi-lo)*u^6
// (mirrored for a right pole). The substitution absorbs power-law
// divergences so plain Gauss-Legendre converges on the transformed
// integrand.
func poleTransform(f Func, lo, hi float64, leftPole bool) func(float64) float64 {
	w := hi - lo
	if leftPole {
		return func(u float64) float64 {
			up := math.Pow(u, poleExp-1)
			return f(lo+w*up*u) * float64(poleExp) * w * up
		}
	}
	return func(u float64) float64 {
		up := math.Pow(u, poleExp-1)
		return f(hi-w*up*u) * float64(poleExp) * w * up
	}
}

// tailTransform maps an unbounded tail integral onto [0, 1] via the
// rational substitution s = (1-u^2)/u^2 away from the finite endpoint.
// The extra u^2 damping keeps integrands with tails as heavy as
// x^(-3/2) bounded near u = 0.
func tailTransform(f Func, at float64, left bool) func(float64) float64 {
	if left {
		return func(u float64) float64 {
			u2 := u * u
			return f(at-(1-u2)/u2) * 2 / (u2 * u)
		}
	}
	return func(u float64) float64 {
		u2 := u * u
		return f(at+(1-u2)/u2) * 2 / (u2 * u)
	}
}

// partialMass integrates a segment from its lower end up to x, which
// must lie within the segment. Pole boundaries are approached through
// the same substitutions as full-segment integration.
func partialMass(s Segment, x float64) float64 {
	switch s := s.(type) {
	case Interior:
		return refine(s.f, s.lo, x, massTol, maxDepth)
	case Const:
		return s.c * (x - s.lo)
	case Dirac:
		if x >= s.x {
			return s.p
		}
		return 0
	case WithPole:
		w := s.hi - s.lo
		if s.leftPole {
			// Integrate in the transformed variable from the pole.
			ux := math.Pow((x-s.lo)/w, 1/float64(poleExp))
			return refine(poleTransform(s.f, s.lo, s.hi, true), 0, ux, massTol, maxDepth)
		}
		// Right pole: take the complement of the transformed
		// integral over [x, hi].
		ux := math.Pow((s.hi-x)/w, 1/float64(poleExp))
		return s.Mass() - refine(poleTransform(s.f, s.lo, s.hi, false), 0, ux, massTol, maxDepth)
	case LeftTail:
		// Complement of the finite remainder keeps the unbounded
		// part under the tail substitution.
		return s.Mass() - refine(s.f, x, s.hi, massTol, maxDepth)
	case RightTail:
		return refine(s.f, s.lo, x, massTol, maxDepth)
	}
	panic("piecewise: unknown segment kind")
}
