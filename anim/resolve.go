package anim

import (
	"github.com/npillmayer/easecurve"
)

// Resolve recomputes the tangents of key i from its modes and its
// neighbors. The rules are applied in order, later ones overriding earlier
// ones on the same side:
//
//	left Linear      in  = slope towards the previous key
//	right Linear     out = slope towards the next key
//	either Auto      every Auto side gets the smoothed slope of the neighbors
//	Free, unbroken   out = in
//	left Constant    in  = Stepped
//	right Constant   out = Stepped
//
// Only key i is written. Resolving is idempotent. Resolving any index of an
// empty curve is a no-op.
func (c *Curve) Resolve(i int) error {
	if c.Len() == 0 {
		return nil
	}
	if err := c.checkIndex(i); err != nil {
		return err
	}
	c.resolve(i)
	return nil
}

// ResolveAll resolves every key of c.
func (c *Curve) ResolveAll() {
	for i := 0; i < c.Len(); i++ {
		c.resolve(i)
	}
}

// resolveAround resolves the keys i-1, i and i+1, as far as they exist.
func (c *Curve) resolveAround(i int) {
	for j := max(i-1, 0); j <= min(i+1, c.Len()-1); j++ {
		c.resolve(j)
	}
}

func (c *Curve) resolve(i int) {
	k := &c.keys[i]
	modes := k.Modes
	n := len(c.keys)
	if modes.Left == Linear && i > 0 {
		k.InTangent = secant(c.keys[i-1], *k)
	}
	if modes.Right == Linear && i+1 < n {
		k.OutTangent = secant(*k, c.keys[i+1])
	}
	if modes.Left == Auto || modes.Right == Auto {
		s := c.smoothed(i)
		if modes.Left == Auto {
			k.InTangent = s
		}
		if modes.Right == Auto {
			k.OutTangent = s
		}
	}
	if modes.Left == Free && modes.Right == Free && !modes.Broken {
		k.OutTangent = k.InTangent
	}
	if modes.Left == Constant {
		k.InTangent = Stepped
	}
	if modes.Right == Constant {
		k.OutTangent = Stepped
	}
}

// secant is the slope from k0 to k1; 0 for keys at the same time.
func secant(k0, k1 Keyframe) float64 {
	dt := k1.Time - k0.Time
	if easecurve.Is0(dt) {
		return 0
	}
	return (k1.Value - k0.Value) / dt
}

// smoothed is the derivative at key i of the parabola through key i and its
// neighbors. End keys get the secant towards their only neighbor.
func (c *Curve) smoothed(i int) float64 {
	hasPrev := i > 0 && !easecurve.Is0(c.keys[i].Time-c.keys[i-1].Time)
	hasNext := i+1 < len(c.keys) && !easecurve.Is0(c.keys[i+1].Time-c.keys[i].Time)
	switch {
	case hasPrev && hasNext:
		dt1 := c.keys[i].Time - c.keys[i-1].Time
		dt2 := c.keys[i+1].Time - c.keys[i].Time
		m1 := secant(c.keys[i-1], c.keys[i])
		m2 := secant(c.keys[i], c.keys[i+1])
		return (m1*dt2 + m2*dt1) / (dt1 + dt2)
	case hasPrev:
		return secant(c.keys[i-1], c.keys[i])
	case hasNext:
		return secant(c.keys[i], c.keys[i+1])
	}
	return 0
}
