// Copyright 2026 The go-distpiece Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distr

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/distpiece/go-distpiece/mathx"
	"github.com/distpiece/go-distpiece/piecewise"
)

// StudentT is Student's t law with DF degrees of freedom.
type StudentT struct {
	DF float64

	// Src is an optional random source for Rand.
	Src rand.Source

	lgNorm float64
	pw     lazyDensity
}

// NewStudentT returns a Student-t law with df > 0 degrees of freedom.
func NewStudentT(df float64) (*StudentT, error) {
	if !(df > 0) {
		return nil, fmt.Errorf("%w: student-t df=%v must be > 0", ErrInvalidParam, df)
	}
	return &StudentT{
		DF:     df,
		lgNorm: mathx.Lgamma((df+1)/2) - mathx.Lgamma(df/2) - 0.5*(math.Log(df)+math.Log(math.Pi)),
	}, nil
}

// PDF evaluates in the log domain; Log1p keeps the tail exponent
// accurate for small x²/df.
func (d *StudentT) PDF(x float64) float64 {
	return math.Exp(d.lgNorm - (d.DF+1)/2*math.Log1p(x*x/d.DF))
}

func (d *StudentT) PDFEach(xs []float64) []float64 { return pdfEach(d.PDF, xs) }

// Piecewise splits at the inflection points ±sqrt(df/(df+2)).
func (d *StudentT) Piecewise() *piecewise.Density {
	return d.pw.get(func() *piecewise.Density {
		infl := math.Sqrt(d.DF / (d.DF + 2))
		pw := piecewise.New()
		pw.AddSegment(piecewise.NewLeftTail(-infl, d.PDF))
		pw.AddSegment(piecewise.NewInterior(-infl, infl, d.PDF))
		pw.AddSegment(piecewise.NewRightTail(infl, d.PDF))
		return pw
	})
}

func (d *StudentT) Rand() float64 {
	return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: d.DF, Src: d.Src}.Rand()
}

func (d *StudentT) RandN(n int) []float64 { return randN(d.Rand, n) }

func (d *StudentT) Name() string { return fmt.Sprintf("StudentT(%g)", d.DF) }
