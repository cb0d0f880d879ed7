/*
Package anim holds keyframed curves: keyframes with typed tangents, the
resolution of tangents from their modes, local editing and evaluation.

A curve is built from points or from fitted Bézier segments and is
resolved before it is handed out. Playback needs nothing but Evaluate.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package anim

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/easecurve"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'anim'
func tracer() tracing.Trace {
	return tracing.Select("anim")
}

var (
	// ErrDegenerateInput indicates too few keys or times which are not
	// strictly increasing.
	ErrDegenerateInput = errors.New("degenerate keyframe input")
	// ErrInvalidIndex indicates a key index outside the curve.
	ErrInvalidIndex = errors.New("key index out of range")
)

// Stepped is the tangent value which holds a key's value until the next key.
var Stepped = math.Inf(1)

// Keyframe is a time/value pair with incoming and outgoing tangents.
type Keyframe struct {
	Time       float64
	Value      float64
	InTangent  float64
	OutTangent float64
	Modes      TangentModes
}

// Key creates a keyframe with zero tangents.
func Key(time, value float64, modes TangentModes) Keyframe {
	return Keyframe{Time: time, Value: value, Modes: modes}
}

// Pt returns the keyframe's position as a pair.
func (k Keyframe) Pt() easecurve.Pair {
	return easecurve.P(k.Time, k.Value)
}

func (k Keyframe) String() string {
	return fmt.Sprintf("time: %.4f  value: %.4f  in: %s  out: %s  %s",
		k.Time, k.Value, tangentString(k.InTangent), tangentString(k.OutTangent), k.Modes)
}

func tangentString(t float64) string {
	if math.IsInf(t, 1) {
		return "stepped"
	}
	return fmt.Sprintf("%.4f", t)
}

// Curve is an ordered list of keyframes with strictly increasing times.
// The zero value is an empty curve.
type Curve struct {
	keys []Keyframe
}

// NewCurve creates a curve from a copy of keys. Tangents are not resolved.
func NewCurve(keys ...Keyframe) (*Curve, error) {
	if err := checkTimes(keys); err != nil {
		return nil, err
	}
	for i, k := range keys {
		if err := k.Modes.Valid(); err != nil {
			return nil, fmt.Errorf("key %d: %w", i, err)
		}
	}
	return &Curve{keys: append([]Keyframe(nil), keys...)}, nil
}

func checkTimes(keys []Keyframe) error {
	for i, k := range keys {
		if !easecurve.IsFinite(k.Time) || !easecurve.IsFinite(k.Value) {
			return fmt.Errorf("%w: key %d is not finite", ErrDegenerateInput, i)
		}
		if i > 0 && k.Time <= keys[i-1].Time {
			return fmt.Errorf("%w: time of key %d is %g, not after %g", ErrDegenerateInput,
				i, k.Time, keys[i-1].Time)
		}
	}
	return nil
}

// Validate checks that c can be evaluated as a curve: at least two keys with
// strictly increasing times.
func (c *Curve) Validate() error {
	if c.Len() < 2 {
		return fmt.Errorf("%w: curve has %d keys", ErrDegenerateInput, c.Len())
	}
	return checkTimes(c.keys)
}

// Len is the number of keys.
func (c *Curve) Len() int {
	if c == nil {
		return 0
	}
	return len(c.keys)
}

// Key returns key i.
func (c *Curve) Key(i int) (Keyframe, error) {
	if err := c.checkIndex(i); err != nil {
		return Keyframe{}, err
	}
	return c.keys[i], nil
}

// Keys returns a copy of all keys.
func (c *Curve) Keys() []Keyframe {
	if c == nil {
		return nil
	}
	return append([]Keyframe(nil), c.keys...)
}

// Clone returns a deep copy of c.
func (c *Curve) Clone() *Curve {
	return &Curve{keys: c.Keys()}
}

func (c *Curve) checkIndex(i int) error {
	if i < 0 || i >= c.Len() {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidIndex, i, c.Len())
	}
	return nil
}
