/*
Package reduce thins out a list of sampled points while keeping its shape.

Four modes are available: None passes the points through, RemoveDuplicates
drops consecutive (near) duplicates, Linearize merges runs of nearly
collinear points, and RDP applies Ramer–Douglas–Peucker simplification.

All modes keep the first and the last point and never return more points
than they are given. Input slices are not modified.
*/
package reduce

import (
	"fmt"
	"strings"

	"github.com/npillmayer/easecurve"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'reduce'
func tracer() tracing.Trace {
	return tracing.Select("reduce")
}

// Mode selects a reduction strategy.
type Mode int

// Reduction modes. Unknown modes fall back to RemoveDuplicates.
const (
	None Mode = iota
	RemoveDuplicates
	Linearize
	RDP
)

var modeNames = [...]string{"None", "RemoveDuplicates", "Linearize", "RDP"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode finds a mode by its name, ignoring case.
func ParseMode(s string) (Mode, error) {
	for i, name := range modeNames {
		if strings.EqualFold(name, s) {
			return Mode(i), nil
		}
	}
	return RemoveDuplicates, fmt.Errorf("unknown reduction mode %q", s)
}

// Reduce applies mode to pts. linearTolerance is used by Linearize,
// simplifyError by RDP.
func Reduce(pts []easecurve.Pair, mode Mode, linearTolerance, simplifyError float64) []easecurve.Pair {
	var out []easecurve.Pair
	switch mode {
	case None:
		return pts
	case Linearize:
		out = LinearizePoints(pts, linearTolerance)
	case RDP:
		out = Simplify(pts, simplifyError)
	default:
		out = Deduplicate(pts)
	}
	tracer().Debugf("%s reduced %d points to %d", mode, len(pts), len(out))
	return out
}

// Deduplicate drops points which are within ε of the previously retained
// point. The first and the last point are always kept; if the last point
// duplicates the previously retained interior point, it takes that point's
// place.
func Deduplicate(pts []easecurve.Pair) []easecurve.Pair {
	if len(pts) < 2 {
		return clone(pts)
	}
	out := make([]easecurve.Pair, 0, len(pts))
	out = append(out, pts[0])
	for _, p := range pts[1 : len(pts)-1] {
		if !p.Equal(out[len(out)-1]) {
			out = append(out, p)
		}
	}
	last := pts[len(pts)-1]
	if len(out) > 1 && last.Equal(out[len(out)-1]) {
		out[len(out)-1] = last
	} else {
		out = append(out, last)
	}
	return out
}

// LinearizePoints merges runs of consecutive points into single segments as
// long as every point of a run lies within tolerance of the segment between
// the run's end points.
func LinearizePoints(pts []easecurve.Pair, tolerance float64) []easecurve.Pair {
	if len(pts) < 3 {
		return clone(pts)
	}
	out := make([]easecurve.Pair, 0, len(pts))
	anchor := 0
	out = append(out, pts[anchor])
	for j := 2; j < len(pts); j++ {
		if !withinTolerance(pts, anchor, j, tolerance) {
			anchor = j - 1
			out = append(out, pts[anchor])
		}
	}
	return append(out, pts[len(pts)-1])
}

// withinTolerance checks all points strictly between from and to against
// the segment pts[from]–pts[to].
func withinTolerance(pts []easecurve.Pair, from, to int, tolerance float64) bool {
	a, b := pts[from], pts[to]
	for k := from + 1; k < to; k++ {
		if SegmentDistance(pts[k], a, b) > tolerance {
			return false
		}
	}
	return true
}

// SegmentDistance is the distance of p from the line segment a–b. For a
// degenerate segment it is the distance from a.
func SegmentDistance(p, a, b easecurve.Pair) float64 {
	ab := b - a
	l2 := ab.Dot(ab)
	if easecurve.Is0(l2) {
		return (p - a).Abs()
	}
	u := (p - a).Dot(ab) / l2
	switch {
	case u <= 0:
		return (p - a).Abs()
	case u >= 1:
		return (p - b).Abs()
	}
	return (p - (a + ab.Scaled(u))).Abs()
}

func clone(pts []easecurve.Pair) []easecurve.Pair {
	return append([]easecurve.Pair(nil), pts...)
}
