/*
Package easing holds a table of easing functions, addressable by name.

An easing function maps a time t within a duration d to a value between a
start value b and b+c. The conversion pipeline samples these functions with
b=0, c=1, d=1.

Functions are registered in an explicit table; there is no lookup by
reflection. Penner() returns the table of Robert Penner's equations in a
fixed order.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package easing

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'easing'
func tracer() tracing.Trace {
	return tracing.Select("easing")
}

// Func is the signature of an easing function: t is the current time, b the
// start value, c the change in value and d the duration.
type Func func(t, b, c, d float64) float64

var (
	// ErrUnknownFunction indicates a name not present in a registry.
	ErrUnknownFunction = errors.New("unknown easing function")
	// ErrDuplicateName indicates a registration under a name already taken.
	ErrDuplicateName = errors.New("easing function already registered")
	// ErrInvalidEntry indicates a registration with an empty name or a nil function.
	ErrInvalidEntry = errors.New("easing function needs a name and a function")
)

// Normalized adapts a unit easing function, mapping [0,1] onto [0,1], to the
// Func signature. Easing libraries like github.com/fogleman/ease provide
// functions of this form.
func Normalized(f func(float64) float64) Func {
	return func(t, b, c, d float64) float64 {
		return b + c*f(t/d)
	}
}

// Equation enumerates the built-in equations.
type Equation int

// The order follows Penner's equation table and is stable, as cached
// curves are indexed by it.
const (
	QuadEaseOutEq Equation = iota
	QuadEaseInEq
	QuadEaseInOutEq
	QuadEaseOutInEq
	ExpoEaseOutEq
	ExpoEaseInEq
	ExpoEaseInOutEq
	ExpoEaseOutInEq
	CubicEaseOutEq
	CubicEaseInEq
	CubicEaseInOutEq
	CubicEaseOutInEq
	QuartEaseOutEq
	QuartEaseInEq
	QuartEaseInOutEq
	QuartEaseOutInEq
	QuintEaseOutEq
	QuintEaseInEq
	QuintEaseInOutEq
	QuintEaseOutInEq
	CircEaseOutEq
	CircEaseInEq
	CircEaseInOutEq
	CircEaseOutInEq
	SineEaseOutEq
	SineEaseInEq
	SineEaseInOutEq
	SineEaseOutInEq
	ElasticEaseOutEq
	ElasticEaseInEq
	ElasticEaseInOutEq
	ElasticEaseOutInEq
	BounceEaseOutEq
	BounceEaseInEq
	BounceEaseInOutEq
	BounceEaseOutInEq
	BackEaseOutEq
	BackEaseInEq
	BackEaseInOutEq
	BackEaseOutInEq
	LinearEq
	equationCount // number of built-in equations
)

// Family groups equations sharing a formula.
type Family int

// Equation families.
const (
	QuadFamily Family = iota
	ExpoFamily
	CubicFamily
	QuartFamily
	QuintFamily
	CircFamily
	SineFamily
	ElasticFamily
	BounceFamily
	BackFamily
	LinearFamily
)

var familyNames = [...]string{
	"Quad", "Expo", "Cubic", "Quart", "Quint", "Circ", "Sine", "Elastic", "Bounce", "Back", "Linear",
}

func (f Family) String() string {
	if f < 0 || int(f) >= len(familyNames) {
		return fmt.Sprintf("Family(%d)", int(f))
	}
	return familyNames[f]
}

type entry struct {
	name string
	fn   Func
}

var equations = [equationCount]entry{
	{"QuadEaseOut", QuadEaseOut}, {"QuadEaseIn", QuadEaseIn},
	{"QuadEaseInOut", QuadEaseInOut}, {"QuadEaseOutIn", QuadEaseOutIn},
	{"ExpoEaseOut", ExpoEaseOut}, {"ExpoEaseIn", ExpoEaseIn},
	{"ExpoEaseInOut", ExpoEaseInOut}, {"ExpoEaseOutIn", ExpoEaseOutIn},
	{"CubicEaseOut", CubicEaseOut}, {"CubicEaseIn", CubicEaseIn},
	{"CubicEaseInOut", CubicEaseInOut}, {"CubicEaseOutIn", CubicEaseOutIn},
	{"QuartEaseOut", QuartEaseOut}, {"QuartEaseIn", QuartEaseIn},
	{"QuartEaseInOut", QuartEaseInOut}, {"QuartEaseOutIn", QuartEaseOutIn},
	{"QuintEaseOut", QuintEaseOut}, {"QuintEaseIn", QuintEaseIn},
	{"QuintEaseInOut", QuintEaseInOut}, {"QuintEaseOutIn", QuintEaseOutIn},
	{"CircEaseOut", CircEaseOut}, {"CircEaseIn", CircEaseIn},
	{"CircEaseInOut", CircEaseInOut}, {"CircEaseOutIn", CircEaseOutIn},
	{"SineEaseOut", SineEaseOut}, {"SineEaseIn", SineEaseIn},
	{"SineEaseInOut", SineEaseInOut}, {"SineEaseOutIn", SineEaseOutIn},
	{"ElasticEaseOut", ElasticEaseOut}, {"ElasticEaseIn", ElasticEaseIn},
	{"ElasticEaseInOut", ElasticEaseInOut}, {"ElasticEaseOutIn", ElasticEaseOutIn},
	{"BounceEaseOut", BounceEaseOut}, {"BounceEaseIn", BounceEaseIn},
	{"BounceEaseInOut", BounceEaseInOut}, {"BounceEaseOutIn", BounceEaseOutIn},
	{"BackEaseOut", BackEaseOut}, {"BackEaseIn", BackEaseIn},
	{"BackEaseInOut", BackEaseInOut}, {"BackEaseOutIn", BackEaseOutIn},
	{"Linear", Linear},
}

// Count is the number of built-in equations.
const Count = int(equationCount)

// Equations returns all built-in equations in table order.
func Equations() []Equation {
	eqs := make([]Equation, Count)
	for i := range eqs {
		eqs[i] = Equation(i)
	}
	return eqs
}

// Valid is a predicate: is e a built-in equation ?
func (e Equation) Valid() bool {
	return e >= 0 && e < equationCount
}

func (e Equation) String() string {
	if !e.Valid() {
		return fmt.Sprintf("Equation(%d)", int(e))
	}
	return equations[e].name
}

// Func returns the easing function of e, or nil for an invalid equation.
func (e Equation) Func() Func {
	if !e.Valid() {
		return nil
	}
	return equations[e].fn
}

// Family returns the family of e. Families come in groups of four (Out, In,
// InOut, OutIn); Linear is a family of its own.
func (e Equation) Family() Family {
	if e == LinearEq {
		return LinearFamily
	}
	return Family(int(e) / 4)
}

// FamilyOf returns the family of a built-in equation given by name.
// Functions registered from elsewhere have no family.
func FamilyOf(name string) (Family, bool) {
	eq, err := ParseEquation(name)
	if err != nil {
		return 0, false
	}
	return eq.Family(), true
}

// ParseEquation finds an equation by its name.
func ParseEquation(name string) (Equation, error) {
	for i, eq := range equations {
		if eq.name == name {
			return Equation(i), nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrUnknownFunction, name)
}
