package anim

import (
	"fmt"
	"math"

	"github.com/npillmayer/easecurve"
	"github.com/npillmayer/easecurve/bezfit"
)

// BuildFromPoints creates a resolved curve with a key at every point.
//
// An interior key whose corner, the angle between the directions towards
// and away from it, exceeds cornerAngle degrees gets Linear tangents on both
// sides. All other keys get defaultMode on both sides.
func BuildFromPoints(pts []easecurve.Pair, defaultMode TangentMode, cornerAngle float64) (*Curve, error) {
	if len(pts) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 points, have %d", ErrDegenerateInput, len(pts))
	}
	if !defaultMode.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTangentMode, int(defaultMode))
	}
	keys := make([]Keyframe, len(pts))
	corners := 0
	for i, p := range pts {
		modes := DefaultModes(defaultMode)
		if i > 0 && i < len(pts)-1 {
			if easecurve.Angle(p-pts[i-1], pts[i+1]-p) > cornerAngle {
				modes = TangentModes{Left: Linear, Right: Linear, Broken: true}
				corners++
			}
		}
		keys[i] = Key(p.X(), p.Y(), modes)
	}
	if err := checkTimes(keys); err != nil {
		return nil, err
	}
	c := &Curve{keys: keys}
	c.ResolveAll()
	tracer().Debugf("built curve of %d keys from points, %d corners", len(keys), corners)
	return c, nil
}

// BuildFromSegments creates a resolved curve with a key at the start of every
// segment and one at the end of the last segment. The keys' tangents are
// seeded with the slopes of the segments' control arms; modes other than
// Free replace them during resolution.
//
// A Hermite interval between two keys places its control arms at a third of
// its duration. Segments with other time arms are subdivided until the
// interval built from their end points stays within tolerance of the
// segment. A tolerance ≤ 0 keeps the segments as they are.
func BuildFromSegments(segs []bezfit.CubicBezier, defaultMode TangentMode, tolerance float64) (*Curve, error) {
	if len(segs) == 0 {
		return nil, fmt.Errorf("%w: no segments", ErrDegenerateInput)
	}
	if !defaultMode.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTangentMode, int(defaultMode))
	}
	if tolerance > 0 {
		segs = splitForTime(segs, tolerance)
	}
	modes := DefaultModes(defaultMode)
	keys := make([]Keyframe, len(segs)+1)
	for i, s := range segs {
		keys[i] = Key(s.P0.X(), s.P0.Y(), modes)
		keys[i].OutTangent = (s.P1 - s.P0).Slope()
		if i > 0 {
			keys[i].InTangent = (segs[i-1].P3 - segs[i-1].P2).Slope()
		} else {
			keys[i].InTangent = keys[i].OutTangent
		}
	}
	end := segs[len(segs)-1]
	keys[len(segs)] = Key(end.P3.X(), end.P3.Y(), modes)
	keys[len(segs)].InTangent = (end.P3 - end.P2).Slope()
	keys[len(segs)].OutTangent = keys[len(segs)].InTangent
	if err := checkTimes(keys); err != nil {
		return nil, err
	}
	c := &Curve{keys: keys}
	c.ResolveAll()
	tracer().Debugf("built curve of %d keys from segments", len(keys))
	return c, nil
}

const (
	maxSplitDepth    = 8  // halvings per fitted segment
	deviationSamples = 16 // samples per segment when measuring deviation
)

// splitForTime subdivides segments until every one of them is represented by
// a Hermite interval within tolerance, or maxSplitDepth is reached. A segment
// whose midpoint is not between its end points in time is not split.
func splitForTime(segs []bezfit.CubicBezier, tolerance float64) []bezfit.CubicBezier {
	split := make([]bezfit.CubicBezier, 0, len(segs))
	var subdivide func(s bezfit.CubicBezier, depth int)
	subdivide = func(s bezfit.CubicBezier, depth int) {
		if depth == maxSplitDepth || hermiteDeviation(s) <= tolerance {
			split = append(split, s)
			return
		}
		l, r := s.Subdivide()
		if mid := l.P3.X(); !(mid > s.P0.X() && mid < s.P3.X()) {
			split = append(split, s) // keys must stay ordered in time
			return
		}
		subdivide(l, depth+1)
		subdivide(r, depth+1)
	}
	for _, s := range segs {
		subdivide(s, 0)
	}
	if len(split) > len(segs) {
		tracer().Debugf("split %d segments into %d", len(segs), len(split))
	}
	return split
}

// hermiteDeviation is the largest difference in value between s and the
// Hermite interval from s.P0 to s.P3 with the slopes of the control arms.
func hermiteDeviation(s bezfit.CubicBezier) float64 {
	k0 := Keyframe{Time: s.P0.X(), Value: s.P0.Y(), OutTangent: (s.P1 - s.P0).Slope()}
	k1 := Keyframe{Time: s.P3.X(), Value: s.P3.Y(), InTangent: (s.P3 - s.P2).Slope()}
	if easecurve.Is0(k1.Time - k0.Time) {
		return 0
	}
	dev := 0.0
	for i := 1; i < deviationSamples; i++ {
		p := s.Eval(float64(i) / deviationSamples)
		t := math.Min(math.Max(p.X(), k0.Time), k1.Time)
		dev = math.Max(dev, math.Abs(hermite(k0, k1, t)-p.Y()))
	}
	return dev
}
