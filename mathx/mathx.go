// Copyright 2026 The go-distpiece Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// mathx contains the special-function helpers shared by the distpiece
// packages.
package mathx // import "github.com/distpiece/go-distpiece/mathx"

import "math"

// Lgamma returns the natural logarithm of Gamma(x) for x > 0.
//
// Unlike math.Lgamma it drops the sign result, which is always +1 on
// the positive half line where every shape parameter in this module
// lives.
func Lgamma(x float64) float64 {
	v, _ := math.Lgamma(x)
	return v
}

// LogBeta returns log(B(a, b)) = log Γ(a) + log Γ(b) - log Γ(a+b).
func LogBeta(a, b float64) float64 {
	return Lgamma(a) + Lgamma(b) - Lgamma(a+b)
}
