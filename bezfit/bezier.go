/*
Package bezfit fits cubic Bézier segments to a list of points.

Two fitters are provided. LeastSquares approximates the points within a
tolerance, splitting the list recursively where a single cubic does not fit
(P. J. Schneider, "An Algorithm for Automatically Fitting Digitized Curves",
Graphics Gems, 1990). Hobby interpolates every point with a Hobby spline
(see package jhobby).

Segment lists returned by a fitter are end-to-end continuous: the end point
of segment i is the start point of segment i+1, and every segment starts
and ends at an input point.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package bezfit

import (
	"fmt"

	"github.com/npillmayer/easecurve"
)

// CubicBezier is a cubic Bézier segment from P0 to P3 with control points
// P1 and P2.
type CubicBezier struct {
	P0, P1, P2, P3 easecurve.Pair
}

// Eval returns the point at parameter u ∈ [0,1].
func (b CubicBezier) Eval(u float64) easecurve.Pair {
	v := 1 - u
	return b.P0.Scaled(v*v*v) + b.P1.Scaled(3*v*v*u) + b.P2.Scaled(3*v*u*u) + b.P3.Scaled(u*u*u)
}

// Derivative returns the first derivative at parameter u.
func (b CubicBezier) Derivative(u float64) easecurve.Pair {
	v := 1 - u
	return (b.P1 - b.P0).Scaled(3*v*v) + (b.P2 - b.P1).Scaled(6*v*u) + (b.P3 - b.P2).Scaled(3*u*u)
}

func (b CubicBezier) secondDerivative(u float64) easecurve.Pair {
	return (b.P2 - b.P1.Scaled(2) + b.P0).Scaled(6*(1-u)) + (b.P3 - b.P2.Scaled(2) + b.P1).Scaled(6*u)
}

// Subdivide splits b into halves at u = 1/2, using de Casteljau.
func (b CubicBezier) Subdivide() (CubicBezier, CubicBezier) {
	p01 := (b.P0 + b.P1).Scaled(0.5)
	p12 := (b.P1 + b.P2).Scaled(0.5)
	p23 := (b.P2 + b.P3).Scaled(0.5)
	l := (p01 + p12).Scaled(0.5)
	r := (p12 + p23).Scaled(0.5)
	mid := (l + r).Scaled(0.5)
	return CubicBezier{P0: b.P0, P1: p01, P2: l, P3: mid},
		CubicBezier{P0: mid, P1: r, P2: p23, P3: b.P3}
}

func (b CubicBezier) String() string {
	return fmt.Sprintf("%v .. controls %v and %v .. %v", b.P0, b.P1, b.P2, b.P3)
}

// line returns the straight segment from p to q with controls at a third of
// the chord.
func line(p, q easecurve.Pair) CubicBezier {
	d := (q - p).Scaled(1.0 / 3)
	return CubicBezier{P0: p, P1: p + d, P2: q - d, P3: q}
}
