package jhobby

import (
	"fmt"

	"github.com/npillmayer/easecurve"
)

// Through creates an open path through a sequence of knots. The knots are
// connected by smooth curves of tension 1, and both ends carry a neutral
// curl of 1.
//
//	path := Through(easecurve.P(0,0), easecurve.P(2,3), easecurve.P(5,3))
//	controls, err := FindPathControls(path)
func Through(points ...easecurve.Pair) *Path {
	path := &Path{
		points:    append([]easecurve.Pair(nil), points...),
		startCurl: 1,
		endCurl:   1,
	}
	if len(points) > 1 {
		path.tensions = make([]float64, len(points)-1)
		for i := range path.tensions {
			path.tensions[i] = 1
		}
	}
	return path
}

// Curl sets the curl at the first and the last knot. A curl of 1 is
// neutral, 0 lets the path leave and enter its end points straight.
// Negative curls are treated as 0.
func (path *Path) Curl(start, end float64) *Path {
	path.startCurl = max(start, 0)
	path.endCurl = max(end, 0)
	return path
}

// Tension sets the tension of the join from knot i to knot i+1.
//
// Tensions are adapted to lie between 3/4 and 4. Indices outside the path
// are ignored.
func (path *Path) Tension(i int, tension float64) *Path {
	if i < 0 || i >= len(path.tensions) {
		tracer().Errorf("no join %d in path of %d knots", i, path.N())
		return path
	}
	path.tensions[i] = min(max(tension, 0.75), 4.0)
	return path
}

// N returns the knot count of this path.
func (path *Path) N() int {
	return len(path.points)
}

// Z returns knot i.
func (path *Path) Z(i int) easecurve.Pair {
	return path.points[i]
}

// PostTension is the tension after knot i.
func (path *Path) PostTension(i int) float64 {
	if i < 0 || i >= len(path.tensions) {
		return 1
	}
	return path.tensions[i]
}

// PreTension is the tension before knot i.
func (path *Path) PreTension(i int) float64 {
	return path.PostTension(i - 1)
}

func (path *Path) delta(i int) easecurve.Pair {
	return path.Z(i+1) - path.Z(i)
}

func (path *Path) d(i int) float64 {
	return path.delta(i).Abs()
}

// Turning angle at z.i; zero at the end knots.
func (path *Path) psi(i int) float64 {
	if i <= 0 || i >= path.N()-1 {
		return 0
	}
	return reduceAngle(angle(path.delta(i)) - angle(path.delta(i-1)))
}

// AsString returns a path, optionally including spline control points, as a
// (debugging) string. The string contains newlines if control point
// information is present. Otherwise it will include the knot coordinates in
// one line:
//
//	(1,1) .. controls (1.0000,1.5523) and (1.4477,2.0000)
//	  .. (2,2) .. controls (2.5523,2.0000) and (3.0000,1.5523)
//	  .. (3,1)
//
// The format is close to MetaFont's.
func AsString(path *Path, contr *Controls) string {
	var s string
	for i := 0; i < path.N(); i++ {
		if i > 0 {
			if contr != nil {
				s += fmt.Sprintf(" and %s\n  .. ", ptstring(contr.PreControl(i), true))
			} else {
				s += " .. "
			}
		}
		s += ptstring(path.Z(i), false)
		if contr != nil && i < path.N()-1 {
			s += fmt.Sprintf(" .. controls %s", ptstring(contr.PostControl(i), true))
		}
	}
	return s
}
