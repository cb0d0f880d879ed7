package bezfit

import (
	"errors"
	"fmt"

	"github.com/npillmayer/easecurve"
	"github.com/npillmayer/easecurve/jhobby"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bezfit'
func tracer() tracing.Trace {
	return tracing.Select("bezfit")
}

// ErrFitFailure is returned, wrapped with details, if a point list cannot be
// fitted.
var ErrFitFailure = errors.New("curve fit failed")

// Fitter fits cubic segments to points. Implementations must return
// continuous segments which start and end at input points.
type Fitter interface {
	Fit(points []easecurve.Pair, tolerance float64) ([]CubicBezier, error)
}

func checkPoints(points []easecurve.Pair) error {
	if len(points) < 2 {
		return fmt.Errorf("%w: need at least 2 points, have %d", ErrFitFailure, len(points))
	}
	for i, p := range points {
		if !p.IsFinite() {
			return fmt.Errorf("%w: point %d is not finite", ErrFitFailure, i)
		}
		if i > 0 && p.Equal(points[i-1]) {
			return fmt.Errorf("%w: points %d and %d coincide", ErrFitFailure, i-1, i)
		}
	}
	return nil
}

// Hobby interpolates the points with a Hobby spline, one segment per pair of
// consecutive points. Both ends have a neutral curl. Tension applies to every
// join; zero means the neutral tension 1.
//
// Hobby ignores the tolerance.
type Hobby struct {
	Tension float64
}

var _ Fitter = Hobby{}

// Fit implements Fitter.
func (h Hobby) Fit(points []easecurve.Pair, tolerance float64) ([]CubicBezier, error) {
	if err := checkPoints(points); err != nil {
		return nil, err
	}
	path := jhobby.Through(points...)
	if h.Tension != 0 {
		for i := 0; i < len(points)-1; i++ {
			path.Tension(i, h.Tension)
		}
	}
	controls, err := jhobby.FindPathControls(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFitFailure, err)
	}
	segs := make([]CubicBezier, len(points)-1)
	for i := range segs {
		segs[i] = CubicBezier{
			P0: points[i],
			P1: controls.PostControl(i),
			P2: controls.PreControl(i + 1),
			P3: points[i+1],
		}
	}
	tracer().Debugf("hobby spline through %d points", len(points))
	return segs, nil
}
