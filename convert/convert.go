/*
Package convert turns easing functions into keyframed curves.

A conversion samples the function over [0,1], reduces the samples,
optionally fits cubic Bézier segments to them and finally builds a curve
with resolved tangents:

	curve, err := convert.Convert(easing.QuadEaseOut, convert.DefaultConfig())
	v := curve.Evaluate(0.3)

Cache converts all functions of a registry, concurrently if asked to.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package convert

import (
	"fmt"

	"github.com/npillmayer/easecurve/anim"
	"github.com/npillmayer/easecurve/easing"
	"github.com/npillmayer/easecurve/reduce"
	"github.com/npillmayer/easecurve/sample"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'convert'
func tracer() tracing.Trace {
	return tracing.Select("convert")
}

// Convert converts f to a resolved curve over [0,1].
func Convert(f easing.Func, cfg Config) (*anim.Curve, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pts, err := sample.Sample(f, cfg.SampleSteps, cfg.MaxStepsBetweenPoints)
	if err != nil {
		return nil, err
	}
	pts = reduce.Reduce(pts, cfg.PreprocessMode, cfg.LinearizeDistance, cfg.RDPError)
	if !cfg.UseCurveFit {
		return anim.BuildFromPoints(pts, cfg.DefaultTangentMode, cfg.CornerAngleDegrees)
	}
	segs, err := cfg.fitter().Fit(pts, cfg.FitError)
	if err != nil {
		return nil, fmt.Errorf("fitting %d points: %w", len(pts), err)
	}
	tracer().Debugf("fitted %d points with %d segments", len(pts), len(segs))
	return anim.BuildFromSegments(segs, cfg.DefaultTangentMode, cfg.FitError)
}

// ConvertEquation converts one of the built-in equations.
func ConvertEquation(eq easing.Equation, cfg Config) (*anim.Curve, error) {
	f := eq.Func()
	if f == nil {
		return nil, fmt.Errorf("%w: %v", easing.ErrUnknownFunction, eq)
	}
	curve, err := Convert(f, cfg)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", eq, err)
	}
	tracer().Infof("converted %v to %d keys", eq, curve.Len())
	return curve, nil
}
