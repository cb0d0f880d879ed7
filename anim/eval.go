package anim

import (
	"fmt"
	"math"
	"sort"

	"github.com/npillmayer/easecurve"
)

// Evaluate returns the value of c at time t. Times before the first key or
// after the last key are clamped. Between two keys the value is
// interpolated by a cubic Hermite spline, unless the left key's out-tangent
// or the right key's in-tangent is Stepped; then the left key's value is
// held.
//
// An empty curve evaluates to 0, a curve of one key to that key's value.
// Evaluating at NaN yields NaN.
func (c *Curve) Evaluate(t float64) float64 {
	n := c.Len()
	switch {
	case math.IsNaN(t):
		return math.NaN()
	case n == 0:
		return 0
	case n == 1 || t <= c.keys[0].Time:
		return c.keys[0].Value
	case t >= c.keys[n-1].Time:
		return c.keys[n-1].Value
	}
	// first key after t; never 0 and never n here
	j := sort.Search(n, func(i int) bool { return c.keys[i].Time > t })
	return hermite(c.keys[j-1], c.keys[j], t)
}

func hermite(k0, k1 Keyframe, t float64) float64 {
	if math.IsInf(k0.OutTangent, 1) || math.IsInf(k1.InTangent, 1) {
		return k0.Value
	}
	dt := k1.Time - k0.Time
	s := (t - k0.Time) / dt
	s2, s3 := s*s, s*s*s
	m0, m1 := k0.OutTangent*dt, k1.InTangent*dt
	h00 := 2*s3 - 3*s2 + 1
	h10 := s3 - 2*s2 + s
	h01 := -2*s3 + 3*s2
	h11 := s3 - s2
	return h00*k0.Value + h10*m0 + h01*k1.Value + h11*m1
}

// Scaled returns a copy of c with times stretched by duration and values by
// amplitude. Tangents are scaled by amplitude/duration; Stepped tangents
// stay stepped.
func (c *Curve) Scaled(duration, amplitude float64) (*Curve, error) {
	return c.Placed(0, duration, 0, amplitude)
}

// Placed returns a copy of c mapped like an easing function with start
// value from and change in value change, played over duration from time
// start on. For a curve over [0,1] the result runs from (start, from) to
// (start+duration, from+change).
func (c *Curve) Placed(start, duration, from, change float64) (*Curve, error) {
	if !(duration > 0) || !easecurve.IsFinite(duration) || !easecurve.IsFinite(change) ||
		!easecurve.IsFinite(start) || !easecurve.IsFinite(from) {
		return nil, fmt.Errorf("%w: cannot place at (%g,%g) scaled by %g × %g", ErrDegenerateInput,
			start, from, duration, change)
	}
	at := easecurve.Scaling(duration, change).Combine(easecurve.Translation(easecurve.P(start, from)))
	placed := c.Clone()
	for i := range placed.keys {
		k := &placed.keys[i]
		p := at.Transform(k.Pt())
		k.Time, k.Value = p.X(), p.Y()
		k.InTangent = scaleTangent(at, k.InTangent)
		k.OutTangent = scaleTangent(at, k.OutTangent)
	}
	return placed, nil
}

func scaleTangent(at easecurve.AT, m float64) float64 {
	if math.IsInf(m, 1) {
		return m
	}
	return at.TransformVector(easecurve.P(1, m)).Slope()
}
