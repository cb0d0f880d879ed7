package easing

import "math"

// The equations below follow Robert Penner's easing functions. The parameters
// are t: current time, b: start value, c: change in value, d: duration.

// Linear is a simple linear tweening, with no easing.
func Linear(t, b, c, d float64) float64 {
	return c*t/d + b
}

// --- Expo ------------------------------------------------------------------

// ExpoEaseOut is an exponential (2^t) easing out: decelerating from zero velocity.
func ExpoEaseOut(t, b, c, d float64) float64 {
	if t == d {
		return b + c
	}
	return c*(-math.Pow(2, -10*t/d)+1) + b
}

// ExpoEaseIn is an exponential (2^t) easing in: accelerating from zero velocity.
func ExpoEaseIn(t, b, c, d float64) float64 {
	if t == 0 {
		return b
	}
	return c*math.Pow(2, 10*(t/d-1)) + b
}

// ExpoEaseInOut accelerates until halfway, then decelerates.
func ExpoEaseInOut(t, b, c, d float64) float64 {
	if t == 0 {
		return b
	}
	if t == d {
		return b + c
	}
	t /= d / 2
	if t < 1 {
		return c/2*math.Pow(2, 10*(t-1)) + b
	}
	t--
	return c/2*(-math.Pow(2, -10*t)+2) + b
}

// ExpoEaseOutIn decelerates until halfway, then accelerates.
func ExpoEaseOutIn(t, b, c, d float64) float64 {
	return outIn(ExpoEaseOut, ExpoEaseIn, t, b, c, d)
}

// --- Circular --------------------------------------------------------------

// CircEaseOut is a circular (sqrt(1-t^2)) easing out.
func CircEaseOut(t, b, c, d float64) float64 {
	t = t/d - 1
	return c*math.Sqrt(1-t*t) + b
}

// CircEaseIn is a circular (sqrt(1-t^2)) easing in.
func CircEaseIn(t, b, c, d float64) float64 {
	t /= d
	return -c*(math.Sqrt(1-t*t)-1) + b
}

// CircEaseInOut is a circular easing in/out.
func CircEaseInOut(t, b, c, d float64) float64 {
	t /= d / 2
	if t < 1 {
		return -c/2*(math.Sqrt(1-t*t)-1) + b
	}
	t -= 2
	return c/2*(math.Sqrt(1-t*t)+1) + b
}

// CircEaseOutIn is a circular easing out/in.
func CircEaseOutIn(t, b, c, d float64) float64 {
	return outIn(CircEaseOut, CircEaseIn, t, b, c, d)
}

// --- Quad ------------------------------------------------------------------

// QuadEaseOut is a quadratic (t^2) easing out.
func QuadEaseOut(t, b, c, d float64) float64 {
	t /= d
	return -c*t*(t-2) + b
}

// QuadEaseIn is a quadratic (t^2) easing in.
func QuadEaseIn(t, b, c, d float64) float64 {
	t /= d
	return c*t*t + b
}

// QuadEaseInOut is a quadratic easing in/out.
func QuadEaseInOut(t, b, c, d float64) float64 {
	t /= d / 2
	if t < 1 {
		return c/2*t*t + b
	}
	t--
	return -c/2*(t*(t-2)-1) + b
}

// QuadEaseOutIn is a quadratic easing out/in.
func QuadEaseOutIn(t, b, c, d float64) float64 {
	return outIn(QuadEaseOut, QuadEaseIn, t, b, c, d)
}

// --- Sine ------------------------------------------------------------------

// SineEaseOut is a sinusoidal (sin(t)) easing out.
func SineEaseOut(t, b, c, d float64) float64 {
	return c*math.Sin(t/d*(math.Pi/2)) + b
}

// SineEaseIn is a sinusoidal (sin(t)) easing in.
func SineEaseIn(t, b, c, d float64) float64 {
	return -c*math.Cos(t/d*(math.Pi/2)) + c + b
}

// SineEaseInOut is a sinusoidal easing in/out.
func SineEaseInOut(t, b, c, d float64) float64 {
	t /= d / 2
	if t < 1 {
		return c/2*math.Sin(math.Pi*t/2) + b
	}
	t--
	return -c/2*(math.Cos(math.Pi*t/2)-2) + b
}

// SineEaseOutIn is a sinusoidal easing out/in.
func SineEaseOutIn(t, b, c, d float64) float64 {
	return outIn(SineEaseOut, SineEaseIn, t, b, c, d)
}

// --- Cubic -----------------------------------------------------------------

// CubicEaseOut is a cubic (t^3) easing out.
func CubicEaseOut(t, b, c, d float64) float64 {
	t = t/d - 1
	return c*(t*t*t+1) + b
}

// CubicEaseIn is a cubic (t^3) easing in.
func CubicEaseIn(t, b, c, d float64) float64 {
	t /= d
	return c*t*t*t + b
}

// CubicEaseInOut is a cubic easing in/out.
func CubicEaseInOut(t, b, c, d float64) float64 {
	t /= d / 2
	if t < 1 {
		return c/2*t*t*t + b
	}
	t -= 2
	return c/2*(t*t*t+2) + b
}

// CubicEaseOutIn is a cubic easing out/in.
func CubicEaseOutIn(t, b, c, d float64) float64 {
	return outIn(CubicEaseOut, CubicEaseIn, t, b, c, d)
}

// --- Quartic ---------------------------------------------------------------

// QuartEaseOut is a quartic (t^4) easing out.
func QuartEaseOut(t, b, c, d float64) float64 {
	t = t/d - 1
	return -c*(t*t*t*t-1) + b
}

// QuartEaseIn is a quartic (t^4) easing in.
func QuartEaseIn(t, b, c, d float64) float64 {
	t /= d
	return c*t*t*t*t + b
}

// QuartEaseInOut is a quartic easing in/out.
func QuartEaseInOut(t, b, c, d float64) float64 {
	t /= d / 2
	if t < 1 {
		return c/2*t*t*t*t + b
	}
	t -= 2
	return -c/2*(t*t*t*t-2) + b
}

// QuartEaseOutIn is a quartic easing out/in.
func QuartEaseOutIn(t, b, c, d float64) float64 {
	return outIn(QuartEaseOut, QuartEaseIn, t, b, c, d)
}

// --- Quintic ---------------------------------------------------------------

// QuintEaseOut is a quintic (t^5) easing out.
func QuintEaseOut(t, b, c, d float64) float64 {
	t = t/d - 1
	return c*(t*t*t*t*t+1) + b
}

// QuintEaseIn is a quintic (t^5) easing in.
func QuintEaseIn(t, b, c, d float64) float64 {
	t /= d
	return c*t*t*t*t*t + b
}

// QuintEaseInOut is a quintic easing in/out.
func QuintEaseInOut(t, b, c, d float64) float64 {
	t /= d / 2
	if t < 1 {
		return c/2*t*t*t*t*t + b
	}
	t -= 2
	return c/2*(t*t*t*t*t+2) + b
}

// QuintEaseOutIn is a quintic easing out/in.
func QuintEaseOutIn(t, b, c, d float64) float64 {
	return outIn(QuintEaseOut, QuintEaseIn, t, b, c, d)
}

// --- Elastic ---------------------------------------------------------------

// ElasticEaseOut is an exponentially decaying sine wave easing out.
func ElasticEaseOut(t, b, c, d float64) float64 {
	t /= d
	if t == 1 {
		return b + c
	}
	p := d * .3
	s := p / 4
	return c*math.Pow(2, -10*t)*math.Sin((t*d-s)*(2*math.Pi)/p) + c + b
}

// ElasticEaseIn is an exponentially growing sine wave easing in.
func ElasticEaseIn(t, b, c, d float64) float64 {
	t /= d
	if t == 1 {
		return b + c
	}
	p := d * .3
	s := p / 4
	t--
	return -(c * math.Pow(2, 10*t) * math.Sin((t*d-s)*(2*math.Pi)/p)) + b
}

// ElasticEaseInOut is an elastic easing in/out.
func ElasticEaseInOut(t, b, c, d float64) float64 {
	t /= d / 2
	if t == 2 {
		return b + c
	}
	p := d * (.3 * 1.5)
	s := p / 4
	if t < 1 {
		t--
		return -.5*(c*math.Pow(2, 10*t)*math.Sin((t*d-s)*(2*math.Pi)/p)) + b
	}
	t--
	return c*math.Pow(2, -10*t)*math.Sin((t*d-s)*(2*math.Pi)/p)*.5 + c + b
}

// ElasticEaseOutIn is an elastic easing out/in.
func ElasticEaseOutIn(t, b, c, d float64) float64 {
	return outIn(ElasticEaseOut, ElasticEaseIn, t, b, c, d)
}

// --- Bounce ----------------------------------------------------------------

// BounceEaseOut is an exponentially decaying parabolic bounce easing out.
func BounceEaseOut(t, b, c, d float64) float64 {
	t /= d
	switch {
	case t < 1/2.75:
		return c*(7.5625*t*t) + b
	case t < 2/2.75:
		t -= 1.5 / 2.75
		return c*(7.5625*t*t+.75) + b
	case t < 2.5/2.75:
		t -= 2.25 / 2.75
		return c*(7.5625*t*t+.9375) + b
	default:
		t -= 2.625 / 2.75
		return c*(7.5625*t*t+.984375) + b
	}
}

// BounceEaseIn is an exponentially growing parabolic bounce easing in.
func BounceEaseIn(t, b, c, d float64) float64 {
	return c - BounceEaseOut(d-t, 0, c, d) + b
}

// BounceEaseInOut is a bounce easing in/out.
func BounceEaseInOut(t, b, c, d float64) float64 {
	if t < d/2 {
		return BounceEaseIn(t*2, 0, c, d)*.5 + b
	}
	return BounceEaseOut(t*2-d, 0, c, d)*.5 + c*.5 + b
}

// BounceEaseOutIn is a bounce easing out/in.
func BounceEaseOutIn(t, b, c, d float64) float64 {
	return outIn(BounceEaseOut, BounceEaseIn, t, b, c, d)
}

// --- Back ------------------------------------------------------------------

const backOvershoot = 1.70158

// BackEaseOut is a back (overshooting cubic) easing out.
func BackEaseOut(t, b, c, d float64) float64 {
	t = t/d - 1
	return c*(t*t*((backOvershoot+1)*t+backOvershoot)+1) + b
}

// BackEaseIn is a back (overshooting cubic) easing in.
func BackEaseIn(t, b, c, d float64) float64 {
	t /= d
	return c*t*t*((backOvershoot+1)*t-backOvershoot) + b
}

// BackEaseInOut is a back easing in/out.
func BackEaseInOut(t, b, c, d float64) float64 {
	s := backOvershoot * 1.525
	t /= d / 2
	if t < 1 {
		return c/2*(t*t*((s+1)*t-s)) + b
	}
	t -= 2
	return c/2*(t*t*((s+1)*t+s)+2) + b
}

// BackEaseOutIn is a back easing out/in.
func BackEaseOutIn(t, b, c, d float64) float64 {
	return outIn(BackEaseOut, BackEaseIn, t, b, c, d)
}

// outIn runs out over the first half of d and in over the second half.
func outIn(out, in Func, t, b, c, d float64) float64 {
	if t < d/2 {
		return out(t*2, b, c/2, d)
	}
	return in(t*2-d, b+c/2, c/2, d)
}
