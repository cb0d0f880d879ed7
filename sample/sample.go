/*
Package sample evaluates an easing function at regular steps over [0,1] and
keeps the points of interest: every change in direction of the function, plus
enough regularly spaced points to bound the gap between retained points.

The result is meant to be reduced further (see package reduce) before it is
turned into keyframes.
*/
package sample

import (
	"errors"
	"fmt"

	"github.com/npillmayer/easecurve"
	"github.com/npillmayer/easecurve/easing"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'sample'
func tracer() tracing.Trace {
	return tracing.Select("sample")
}

// ErrInvalidSteps indicates a non-positive step count.
var ErrInvalidSteps = errors.New("sample step count must be positive")

// Sample evaluates f(t, 0, 1, 1) for t = i/steps, i = 0 … steps, and returns
// the retained points with strictly increasing times. The first point is at
// t=0 and the last one at t=1.
//
// A sample is retained if the sign of its change relative to the previous
// step differs from the sign recorded at the last retained sample, or if
// maxStepsBetween steps have passed since the last retained sample. Values of
// maxStepsBetween below 1 are treated as 1.
//
// Evaluations at the boundaries which are not finite are replaced by the
// boundary values 0 (at t=0) and 1 (at t=1). Non-finite interior samples are
// skipped.
func Sample(f easing.Func, steps int, maxStepsBetween float64) ([]easecurve.Pair, error) {
	if steps < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSteps, steps)
	}
	if f == nil {
		return nil, fmt.Errorf("sample: %w", easing.ErrInvalidEntry)
	}
	if maxStepsBetween < 1 {
		maxStepsBetween = 1
	}
	step := 1 / float64(steps)
	pts := make([]easecurve.Pair, 0, steps+2)
	prev := boundary(f, 0, 0)
	pts = append(pts, easecurve.P(0, prev))
	var direction float64 // direction at last retained sample
	last := 0             // step index of last retained sample
	for i := 1; i < steps; i++ {
		t := float64(i) * step
		v := f(t, 0, 1, 1)
		if !easecurve.IsFinite(v) {
			tracer().Errorf("skipping non-finite sample at t=%.4f", t)
			continue
		}
		dir := sign(v - prev)
		prev = v
		if dir != direction || float64(i-last) >= maxStepsBetween {
			direction = dir
			last = i
			pts = append(pts, easecurve.P(t, v))
			tracer().Debugf("%04d  time: %.3f  val: %.3f", i, t, v)
		}
	}
	pts = append(pts, easecurve.P(1, boundary(f, 1, 1)))
	tracer().Debugf("sampled %d of %d steps", len(pts), steps+1)
	return pts, nil
}

// boundary evaluates f at t where a finite result is required. Some
// functions are asymptotic at the borders of their domain; for those the
// defined boundary value is returned.
func boundary(f easing.Func, t, defined float64) float64 {
	v := f(t, 0, 1, 1)
	if !easecurve.IsFinite(v) {
		tracer().Errorf("boundary evaluation at t=%g is not finite, using %g", t, defined)
		return defined
	}
	return v
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
