package anim

import "fmt"

// SetBroken sets the broken flag of key i and re-resolves the key and its
// neighbors.
func (c *Curve) SetBroken(i int, broken bool) error {
	if err := c.checkIndex(i); err != nil {
		return err
	}
	c.keys[i].Modes.Broken = broken
	c.resolveAround(i)
	return nil
}

// SetLeftTangentMode sets the incoming tangent mode of key i. Any mode
// other than Free also breaks the key's tangents apart.
func (c *Curve) SetLeftTangentMode(i int, m TangentMode) error {
	return c.setMode(i, m, func(tm *TangentModes) { tm.Left = m })
}

// SetRightTangentMode sets the outgoing tangent mode of key i. Any mode
// other than Free also breaks the key's tangents apart.
func (c *Curve) SetRightTangentMode(i int, m TangentMode) error {
	return c.setMode(i, m, func(tm *TangentModes) { tm.Right = m })
}

func (c *Curve) setMode(i int, m TangentMode, set func(*TangentModes)) error {
	if err := c.checkIndex(i); err != nil {
		return err
	}
	if !m.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidTangentMode, int(m))
	}
	set(&c.keys[i].Modes)
	if m != Free {
		c.keys[i].Modes.Broken = true
	}
	c.resolveAround(i)
	return nil
}

// MoveKey replaces key i with k. Times must stay strictly increasing. The
// key and its neighbors are re-resolved. On error, c is unchanged.
func (c *Curve) MoveKey(i int, k Keyframe) error {
	if err := c.checkIndex(i); err != nil {
		return err
	}
	if err := k.Modes.Valid(); err != nil {
		return err
	}
	lo, hi := max(i-1, 0), min(i+2, c.Len())
	window := append([]Keyframe(nil), c.keys[lo:hi]...)
	window[i-lo] = k
	if err := checkTimes(window); err != nil {
		return fmt.Errorf("cannot move key %d: %w", i, err)
	}
	c.keys[i] = k
	c.resolveAround(i)
	tracer().Debugf("moved key %d to %v", i, k.Pt())
	return nil
}
