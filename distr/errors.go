// Copyright 2026 The go-distpiece Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distr

import "errors"

var (
	// ErrInvalidParam indicates a shape, scale or location parameter
	// outside its documented domain, e.g. a non-positive scale.
	// Construction fails; evaluation never does.
	ErrInvalidParam = errors.New("distr: parameter outside its valid domain")

	// ErrUnsupportedParam indicates a parameter that is structurally
	// outside the handled decomposition branches, e.g. chi-square
	// with fewer than one degree of freedom.
	ErrUnsupportedParam = errors.New("distr: parameter outside the handled range")
)
