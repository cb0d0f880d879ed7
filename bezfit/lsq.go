package bezfit

import (
	"fmt"
	"math"

	"github.com/npillmayer/easecurve"
	"gonum.org/v1/gonum/mat"
)

// LeastSquares fits cubic segments to points such that every point lies
// within tolerance of its segment. Where one cubic does not suffice, the
// points are split at the point of maximum deviation and both halves are
// fitted recursively, sharing a tangent at the split point.
type LeastSquares struct{}

var _ Fitter = LeastSquares{}

const maxReparameterizations = 4

// Fit implements Fitter.
func (LeastSquares) Fit(points []easecurve.Pair, tolerance float64) ([]CubicBezier, error) {
	if err := checkPoints(points); err != nil {
		return nil, err
	}
	if !(tolerance > 0) {
		return nil, fmt.Errorf("%w: tolerance must be positive, is %g", ErrFitFailure, tolerance)
	}
	if len(points) == 2 {
		return []CubicBezier{line(points[0], points[1])}, nil
	}
	last := len(points) - 1
	f := fitting{points: points, tolerance: tolerance}
	t1 := (points[1] - points[0]).Unit()
	t2 := (points[last-1] - points[last]).Unit()
	f.fitCubic(0, last, t1, t2)
	tracer().Debugf("fitted %d points with %d segments", len(points), len(f.segs))
	return f.segs, nil
}

type fitting struct {
	points    []easecurve.Pair
	tolerance float64
	segs      []CubicBezier
}

// fitCubic fits points[first..last] with unit end tangents t1 and t2
// (t2 pointing backwards).
func (f *fitting) fitCubic(first, last int, t1, t2 easecurve.Pair) {
	if last-first == 1 {
		p, q := f.points[first], f.points[last]
		dist := (q - p).Abs() / 3
		f.segs = append(f.segs, CubicBezier{P0: p, P1: p + t1.Scaled(dist), P2: q + t2.Scaled(dist), P3: q})
		return
	}
	u := f.chordLengths(first, last)
	bez := f.generate(first, last, u, t1, t2)
	maxErr, split := f.maxError(first, last, bez, u)
	if maxErr <= f.tolerance {
		f.segs = append(f.segs, bez)
		return
	}
	if maxErr < 4*f.tolerance {
		for i := 0; i < maxReparameterizations; i++ {
			u = f.reparameterize(first, last, u, bez)
			bez = f.generate(first, last, u, t1, t2)
			maxErr, split = f.maxError(first, last, bez, u)
			if maxErr <= f.tolerance {
				f.segs = append(f.segs, bez)
				return
			}
		}
	}
	center := f.centerTangent(split)
	f.fitCubic(first, split, t1, center)
	f.fitCubic(split, last, -center, t2)
}

// chordLengths assigns parameter values to points[first..last] by
// accumulated chord length, normalized to [0,1].
func (f *fitting) chordLengths(first, last int) []float64 {
	u := make([]float64, last-first+1)
	for i := first + 1; i <= last; i++ {
		u[i-first] = u[i-first-1] + (f.points[i] - f.points[i-1]).Abs()
	}
	total := u[len(u)-1]
	for i := range u {
		u[i] /= total
	}
	u[len(u)-1] = 1
	return u
}

// generate finds the control arm lengths of a cubic through points[first]
// and points[last] with fixed tangent directions, minimizing the squared
// distances to the points at parameters u.
func (f *fitting) generate(first, last int, u []float64, t1, t2 easecurve.Pair) CubicBezier {
	p0, p3 := f.points[first], f.points[last]
	var c00, c01, c11, x0, x1 float64
	for i := range u {
		b0, b1, b2, b3 := bernstein(u[i])
		a1, a2 := t1.Scaled(b1), t2.Scaled(b2)
		c00 += a1.Dot(a1)
		c01 += a1.Dot(a2)
		c11 += a2.Dot(a2)
		tmp := f.points[first+i] - (p0.Scaled(b0+b1) + p3.Scaled(b2+b3))
		x0 += a1.Dot(tmp)
		x1 += a2.Dot(tmp)
	}
	segLength := (p3 - p0).Abs()
	eps := 1e-6 * segLength
	C := mat.NewDense(2, 2, []float64{c00, c01, c01, c11})
	X := mat.NewVecDense(2, []float64{x0, x1})
	var alpha mat.VecDense
	alphaL, alphaR := segLength/3, segLength/3
	if err := alpha.SolveVec(C, X); err != nil {
		tracer().Errorf("singular fit of points %d…%d: %v", first, last, err)
	} else if l, r := alpha.AtVec(0), alpha.AtVec(1); l > eps && r > eps && easecurve.IsFinite(l) && easecurve.IsFinite(r) {
		alphaL, alphaR = l, r
	}
	return CubicBezier{
		P0: p0,
		P1: p0 + t1.Scaled(alphaL),
		P2: p3 + t2.Scaled(alphaR),
		P3: p3,
	}
}

// maxError returns the maximum distance of points[first..last] from bez at
// their parameters, and the index of the point where it occurs.
func (f *fitting) maxError(first, last int, bez CubicBezier, u []float64) (float64, int) {
	maxDist, split := 0.0, (first+last+1)/2
	for i := first + 1; i < last; i++ {
		if d := (bez.Eval(u[i-first]) - f.points[i]).Abs(); d > maxDist {
			maxDist, split = d, i
		}
	}
	return maxDist, split
}

// reparameterize improves the parameters u by one Newton-Raphson step each,
// moving them towards the point of bez closest to their input point.
func (f *fitting) reparameterize(first, last int, u []float64, bez CubicBezier) []float64 {
	uPrime := make([]float64, len(u))
	for i := range u {
		uPrime[i] = newtonRaphson(bez, f.points[first+i], u[i])
	}
	return uPrime
}

func newtonRaphson(bez CubicBezier, p easecurve.Pair, u float64) float64 {
	d := bez.Eval(u) - p
	q1 := bez.Derivative(u)
	q2 := bez.secondDerivative(u)
	num := d.Dot(q1)
	den := q1.Dot(q1) + d.Dot(q2)
	if easecurve.Is0(den) {
		return u
	}
	return math.Min(1, math.Max(0, u-num/den))
}

// centerTangent estimates the unit tangent at points[i], pointing backwards.
func (f *fitting) centerTangent(i int) easecurve.Pair {
	t := f.points[i-1] - f.points[i+1]
	if easecurve.Is0(t.Abs()) {
		t = f.points[i-1] - f.points[i]
	}
	return t.Unit()
}

func bernstein(u float64) (float64, float64, float64, float64) {
	v := 1 - u
	return v * v * v, 3 * v * v * u, 3 * v * u * u, u * u * u
}
