package anim

import (
	"errors"
	"fmt"
	"strings"
)

// TangentMode determines how the tangent on one side of a keyframe is
// derived.
type TangentMode int

// Tangent modes.
const (
	Free     TangentMode = iota // tangent is set explicitly
	Auto                        // smoothed from the neighboring keys
	Linear                      // slope towards the neighboring key
	Constant                    // value is held, i.e. stepped
)

var tangentModeNames = [...]string{"Free", "Auto", "Linear", "Constant"}

// ErrInvalidTangentMode is returned for tangent modes outside Free…Constant
// and for packed descriptors carrying unknown bits.
var ErrInvalidTangentMode = errors.New("invalid tangent mode")

// Valid is true for the four defined modes.
func (m TangentMode) Valid() bool {
	return m >= Free && m <= Constant
}

func (m TangentMode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("TangentMode(%d)", int(m))
	}
	return tangentModeNames[m]
}

// ParseTangentMode finds a tangent mode by its name, ignoring case.
func ParseTangentMode(s string) (TangentMode, error) {
	for i, name := range tangentModeNames {
		if strings.EqualFold(name, s) {
			return TangentMode(i), nil
		}
	}
	return Free, fmt.Errorf("%w: %q", ErrInvalidTangentMode, s)
}

// TangentModes describes the tangent behavior of a keyframe. If Broken is
// false and both sides are Free, the tangents are kept equal.
type TangentModes struct {
	Left, Right TangentMode
	Broken      bool
}

// Bit layout of packed descriptors.
const (
	brokenMask = 1
	leftMask   = 6
	leftShift  = 1
	rightMask  = 24
	rightShift = 3
	packedMask = brokenMask | leftMask | rightMask
)

// DefaultModes returns m on both sides. Any mode other than Free breaks
// the tangents apart.
func DefaultModes(m TangentMode) TangentModes {
	return TangentModes{Left: m, Right: m, Broken: m != Free}
}

// Valid checks both sides.
func (tm TangentModes) Valid() error {
	if !tm.Left.Valid() {
		return fmt.Errorf("%w: left %d", ErrInvalidTangentMode, int(tm.Left))
	}
	if !tm.Right.Valid() {
		return fmt.Errorf("%w: right %d", ErrInvalidTangentMode, int(tm.Right))
	}
	return nil
}

// Pack encodes tm into an integer: bit 0 is the broken flag, bits 1–2 hold
// the left mode and bits 3–4 the right mode.
func (tm TangentModes) Pack() (int, error) {
	if err := tm.Valid(); err != nil {
		return 0, err
	}
	packed := int(tm.Left)<<leftShift | int(tm.Right)<<rightShift
	if tm.Broken {
		packed |= brokenMask
	}
	return packed, nil
}

// UnpackTangentModes decodes a packed descriptor. Bits above bit 4 are an
// error.
func UnpackTangentModes(packed int) (TangentModes, error) {
	if packed < 0 || packed&^packedMask != 0 {
		return TangentModes{}, fmt.Errorf("%w: packed value %#x", ErrInvalidTangentMode, packed)
	}
	return TangentModes{
		Left:   TangentMode((packed & leftMask) >> leftShift),
		Right:  TangentMode((packed & rightMask) >> rightShift),
		Broken: packed&brokenMask != 0,
	}, nil
}

func (tm TangentModes) String() string {
	s := tm.Left.String() + "/" + tm.Right.String()
	if tm.Broken {
		s += " broken"
	}
	return s
}
