package reduce

import "github.com/npillmayer/easecurve"

// Simplify reduces pts with the Ramer–Douglas–Peucker algorithm: the point
// farthest from the segment between the end points of a run is kept if its
// distance exceeds maxError, and both halves are simplified recursively;
// otherwise all interior points of the run are dropped. Of several points at
// the same maximum distance, the first one is chosen.
//
// Every dropped point lies within maxError of the simplified polyline.
func Simplify(pts []easecurve.Pair, maxError float64) []easecurve.Pair {
	if len(pts) < 3 {
		return clone(pts)
	}
	keep := make([]bool, len(pts))
	keep[0], keep[len(pts)-1] = true, true
	rdp(pts, 0, len(pts)-1, maxError, keep)
	out := make([]easecurve.Pair, 0, len(pts))
	for i, k := range keep {
		if k {
			out = append(out, pts[i])
		}
	}
	return out
}

func rdp(pts []easecurve.Pair, first, last int, maxError float64, keep []bool) {
	if last-first < 2 {
		return
	}
	split, dmax := -1, 0.0
	for i := first + 1; i < last; i++ {
		if d := SegmentDistance(pts[i], pts[first], pts[last]); d > dmax {
			split, dmax = i, d
		}
	}
	if split < 0 || dmax <= maxError {
		return
	}
	keep[split] = true
	rdp(pts, first, split, maxError, keep)
	rdp(pts, split, last, maxError, keep)
}
