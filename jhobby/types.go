package jhobby

import (
	"errors"
	"math/cmplx"

	"github.com/npillmayer/easecurve"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'graphics'
func tracer() tracing.Trace {
	return tracing.Select("graphics")
}

const pi float64 = 3.14159265
const pi2 float64 = 6.28318530

var (
	// ErrNilPath indicates a nil path pointer.
	ErrNilPath = errors.New("path must not be nil")
	// ErrTooFewKnots indicates a path with fewer than two knots.
	ErrTooFewKnots = errors.New("path has too few knots")
	// ErrInvalidKnot indicates a knot coordinate containing NaN/Inf.
	ErrInvalidKnot = errors.New("path has invalid knot coordinate")
	// ErrDegenerateSegment indicates two consecutive knots collapsing to one point.
	ErrDegenerateSegment = errors.New("path has degenerate segment")
)

// Path is an open skeleton path: a sequence of knots, a curl at either end
// and a tension for every join. Create one with Through and adjust it with
// the setters.
type Path struct {
	points    []easecurve.Pair // knot i
	tensions  []float64        // tension of the join from knot i to knot i+1
	startCurl float64
	endCurl   float64
}

// Controls collects calculated spline control points. For knot i, the pre
// control belongs to the join arriving at i, the post control to the join
// leaving i. The first knot has no pre control, the last knot has no post
// control.
type Controls struct {
	pre  []easecurve.Pair
	post []easecurve.Pair
}

func newControls(n int) *Controls {
	c := &Controls{
		pre:  make([]easecurve.Pair, n),
		post: make([]easecurve.Pair, n),
	}
	for i := 0; i < n; i++ {
		c.pre[i] = easecurve.Pair(cmplx.NaN())
		c.post[i] = easecurve.Pair(cmplx.NaN())
	}
	return c
}

// PreControl returns the control point before knot i, or NaN if unknown.
func (ctrls *Controls) PreControl(i int) easecurve.Pair {
	return getC(ctrls.pre, i)
}

// PostControl returns the control point after knot i, or NaN if unknown.
func (ctrls *Controls) PostControl(i int) easecurve.Pair {
	return getC(ctrls.post, i)
}

// N is the number of knots the controls have been calculated for.
func (ctrls *Controls) N() int {
	return len(ctrls.post)
}
