package jhobby

import (
	"fmt"

	"github.com/npillmayer/easecurve"
)

// Validate checks if a path is solvable by Hobby interpolation.
func (path *Path) Validate() error {
	if path == nil {
		return ErrNilPath
	}
	n := path.N()
	if n < 2 {
		return fmt.Errorf("%w: open path needs at least 2 knots, got %d", ErrTooFewKnots, n)
	}
	for i := 0; i < n; i++ {
		if !path.points[i].IsFinite() {
			return fmt.Errorf("%w at knot %d", ErrInvalidKnot, i)
		}
	}
	for i := 0; i < n-1; i++ {
		if path.d(i) <= easecurve.Epsilon {
			return fmt.Errorf("%w between knots %d and %d", ErrDegenerateSegment, i, i+1)
		}
	}
	return nil
}

// FindControls finds the Hobby spline control points for an open path
// through points, with neutral curls and tensions.
func FindControls(points []easecurve.Pair) (*Controls, error) {
	return FindPathControls(Through(points...))
}

// MustFindControls is like FindControls, but panics on invalid paths.
func MustFindControls(points []easecurve.Pair) *Controls {
	c, err := FindControls(points)
	if err != nil {
		panic(err)
	}
	return c
}

/*
FindPathControls finds the control points according to Hobby's algorithm.
This is the central API function of this package. It validates path
geometry and returns an error if the path cannot be solved safely.

The resulting path is traced using log-level INFO (as MetaFont does with
tracingchoices=true).

Curls enter the end equations directly, not through MetaFont's curl ratio.
Results differ slightly from MetaFont for non-neutral tensions at the end
knots.
*/
func FindPathControls(path *Path) (*Controls, error) {
	if err := path.Validate(); err != nil {
		return nil, err
	}
	n := path.N()
	var u = make([]float64, n)
	var v = make([]float64, n)
	var theta = make([]float64, n)
	startOpen(path, u, v)
	buildEqs(path, u, v)
	endOpen(path, theta, u, v)
	controls := setControls(path, theta, newControls(n))
	tracer().Infof(AsString(path, controls))
	return controls, nil
}

func startOpen(path *Path, u, v []float64) {
	a := recip(path.PostTension(0))
	b := recip(path.PreTension(1))
	c := square(a) * path.startCurl / square(b)
	tracer().Debugf("a = %.4g, b = %.4g, c = %.4g", a, b, c)
	u[0] = ((3-a)*c + b) / (a*c + 3 - b)
	v[0] = -u[0] * path.psi(1)
	tracer().Debugf("u.0 = %.4g, v.0 = %.4g", u[0], v[0])
}

// buildEqs eliminates the tridiagonal system for the interior knots.
func buildEqs(path *Path, u, v []float64) {
	for i := 1; i < path.N()-1; i++ {
		a0 := recip(path.PostTension(i - 1))
		a1 := recip(path.PostTension(i))
		b1 := recip(path.PreTension(i))
		b2 := recip(path.PreTension(i + 1))
		A := a0 / (square(b1) * path.d(i-1))
		B := (3 - a0) / (square(b1) * path.d(i-1))
		C := (3 - b2) / (square(a1) * path.d(i))
		D := b2 / (square(a1) * path.d(i))
		tracer().Debugf("A, B, C, D: %.4g, %.4g, %.4g, %.4g", A, B, C, D)
		t := B - u[i-1]*A + C
		u[i] = D / t
		v[i] = (-B*path.psi(i) - D*path.psi(i+1) - A*v[i-1]) / t
		tracer().Debugf("u.%d = %.4g, v.%d = %.4g", i, u[i], i, v[i])
	}
}

func endOpen(path *Path, theta, u, v []float64) {
	last := path.N() - 1
	a := recip(path.PostTension(last - 1))
	b := recip(path.PreTension(last))
	c := square(b) * path.endCurl / square(a)
	ulast := (b*c + 3 - a) / ((3-b)*c + a)
	if den := u[last-1] - ulast; easecurve.Is0(den) {
		// two knots with matching curls: a straight line
		theta[last] = 0
	} else {
		theta[last] = v[last-1] / den
	}
	tracer().Debugf("theta.%d = %.4g", last, rad2deg(theta[last]))
	for i := last - 1; i >= 0; i-- {
		theta[i] = v[i] - u[i]*theta[i+1]
		tracer().Debugf("theta.%d = %.4g", i, rad2deg(theta[i]))
	}
}

func setControls(path *Path, theta []float64, controls *Controls) *Controls {
	for i := 0; i < path.N()-1; i++ {
		phi := -path.psi(i+1) - theta[i+1]
		a := recip(path.PostTension(i))
		b := recip(path.PreTension(i + 1))
		p2, p3 := controlPoints(phi, theta[i], a, b, path.delta(i))
		controls.post[i] = path.Z(i) + p2
		controls.pre[i+1] = path.Z(i+1) - p3
	}
	return controls
}
