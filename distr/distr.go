// Copyright 2026 The go-distpiece Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// distr provides closed-form parametric probability laws decomposed
// into finite ordered sequences of analytically well-behaved pieces.
//
// Each law splits its support at singularities, modes and inflection
// points, marks which boundaries carry a divergent density, and
// evaluates that density in the log domain so that integration, CDF
// construction and inverse-CDF sampling stay accurate where the naive
// closed form overflows or hits indeterminate forms.
package distr // import "github.com/distpiece/go-distpiece/distr"

import "math"

var inf = math.Inf(1)
