package jhobby

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/npillmayer/easecurve"
)

func hobbyParamsAlphaBeta(theta, phi float64) (float64, float64) {
	constA := 1.41421356     // sqrt(2) -- empiric constants, as explained by J.Hobby
	constB := 0.0625         // 1/16
	constC := 0.38196601125  // (3 - sqrt(5)) / 2
	constCC := 0.61803398875 // 1 - c
	st := math.Sin(theta)    // in-angle
	ct := math.Cos(theta)
	sf := math.Sin(phi) // out-angle
	cf := math.Cos(phi)
	alpha := constA * (st - constB*sf) * (sf - constB*st) * (ct - cf)
	beta := 1 + constCC*ct + constC*cf
	return alpha, beta
}

// Direction vectors of the control arms, dvec rotated by theta and -phi.
func cunitvecs(theta, phi float64, dvec easecurve.Pair) (easecurve.Pair, easecurve.Pair) {
	st, ct := math.Sincos(theta)
	sf, cf := math.Sincos(phi)
	dx, dy := dvec.X(), dvec.Y()
	uv1 := easecurve.P(dx*ct-dy*st, dx*st+dy*ct)
	uv2 := easecurve.P(dx*cf+dy*sf, -dx*sf+dy*cf)
	return uv1, uv2
}

// Calculate control arms between z.i and z.[i+1].
func controlPoints(phi, theta, a, b float64, dvec easecurve.Pair) (easecurve.Pair, easecurve.Pair) {
	alpha, beta := hobbyParamsAlphaBeta(theta, phi)
	rho := (2 + alpha) / beta
	sigma := (2 - alpha) / beta
	uv1, uv2 := cunitvecs(theta, phi, dvec)
	return uv1.Scaled(a / 3 * rho), uv2.Scaled(b / 3 * sigma)
}

// Get a value from a slice if present, NaN otherwise.
func getC(arr []easecurve.Pair, i int) easecurve.Pair {
	if i < 0 || i >= len(arr) {
		return easecurve.Pair(cmplx.NaN())
	}
	return arr[i]
}

func angle(pr easecurve.Pair) float64 {
	if cmplx.IsNaN(pr.C()) {
		return 0.0
	}
	return cmplx.Phase(pr.C())
}

// Reduce an angle to fit into -pi .. pi.
func reduceAngle(a float64) float64 {
	if math.Abs(a) > pi {
		if a > 0 {
			a -= pi2
		} else {
			a += pi2
		}
	}
	return a
}

// Return 1/a for a.
func recip(a float64) float64 {
	if math.IsNaN(a) {
		return 1.0
	}
	return 1.0 / a
}

func square(a float64) float64 {
	return a * a
}

func rad2deg(a float64) float64 {
	return a * 180 / pi
}

func ptstring(p easecurve.Pair, iscontrol bool) string {
	if cmplx.IsNaN(p.C()) {
		return "(<unknown>)"
	}
	if iscontrol {
		return fmt.Sprintf("(%.4f,%.4f)", round(p.X()), round(p.Y()))
	}
	return fmt.Sprintf("(%.4g,%.4g)", round(p.X()), round(p.Y()))
}

func round(x float64) float64 {
	if x >= 0 {
		return float64(int64(x*10000.0+0.5)) / 10000.0
	}
	return float64(int64(x*10000.0-0.5)) / 10000.0
}
