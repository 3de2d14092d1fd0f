// Copyright 2026 The go-distpiece Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distr_test

import (
	"fmt"

	"github.com/distpiece/go-distpiece/distr"
)

func ExampleNormal() {
	d, _ := distr.NewNormal(0, 1)
	for _, s := range d.Piecewise().Segments() {
		fmt.Printf("[%g, %g]\n", s.Lo(), s.Hi())
	}
	// Output:
	// [-Inf, -1]
	// [-1, 1]
	// [1, +Inf]
}

func ExampleMix() {
	a, _ := distr.NewBeta(0.5, 0.5)
	b, _ := distr.NewUniform(0, 1)
	m, _ := distr.NewMix([]float64{0.5, 0.5}, a, b)
	for _, s := range m.Piecewise().Segments() {
		kind := "plain"
		switch {
		case s.LeftPole():
			kind = "left pole"
		case s.RightPole():
			kind = "right pole"
		}
		fmt.Printf("[%g, %g] %s\n", s.Lo(), s.Hi(), kind)
	}
	// Output:
	// [0, 0.5] left pole
	// [0.5, 1] right pole
}
