package reduce

import (
	"math"
	"testing"

	"github.com/npillmayer/easecurve"
	"github.com/npillmayer/easecurve/easing"
	"github.com/npillmayer/easecurve/sample"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var P = easecurve.P

func sampled(t *testing.T, eq easing.Equation) []easecurve.Pair {
	t.Helper()
	pts, err := sample.Sample(eq.Func(), 300, 1)
	require.NoError(t, err)
	return pts
}

// distance of p from the polyline poly
func polylineDistance(p easecurve.Pair, poly []easecurve.Pair) float64 {
	d := math.Inf(1)
	for i := 1; i < len(poly); i++ {
		d = math.Min(d, SegmentDistance(p, poly[i-1], poly[i]))
	}
	return d
}

func TestReduceKeepsEndpoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	modes := []Mode{None, RemoveDuplicates, Linearize, RDP, Mode(17)}
	for _, eq := range easing.Equations() {
		pts := sampled(t, eq)
		for _, mode := range modes {
			out := Reduce(pts, mode, 0.01, 0.0035)
			require.GreaterOrEqual(t, len(out), 2, "%s/%s", eq, mode)
			assert.LessOrEqual(t, len(out), len(pts), "%s/%s", eq, mode)
			assert.Equal(t, pts[0], out[0], "%s/%s", eq, mode)
			assert.Equal(t, pts[len(pts)-1], out[len(out)-1], "%s/%s", eq, mode)
		}
	}
}

func TestSimplifyErrorBound(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, eq := range easing.Equations() {
		pts := sampled(t, eq)
		for _, e := range []float64{0.001, 0.01, 0.1} {
			out := Simplify(pts, e)
			for _, p := range pts {
				assert.LessOrEqual(t, polylineDistance(p, out), e+1e-12, "%s, error %g", eq, e)
			}
		}
	}
}

func TestLinearizeErrorBound(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, eq := range []easing.Equation{easing.QuadEaseOutEq, easing.ElasticEaseOutEq, easing.BounceEaseInEq} {
		pts := sampled(t, eq)
		out := LinearizePoints(pts, 0.01)
		assert.Less(t, len(out), len(pts))
		for _, p := range pts {
			assert.LessOrEqual(t, polylineDistance(p, out), 0.01+1e-12, eq.String())
		}
	}
}

func TestSimplifyUnreachableTolerance(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := []easecurve.Pair{P(0, 0), P(0.25, 1), P(0.5, 0), P(0.75, 1), P(1, 0)}
	assert.Equal(t, pts, Simplify(pts, 0))
	assert.Equal(t, []easecurve.Pair{P(0, 0), P(1, 0)}, Simplify(pts, 2))
}

func TestSimplifyTieBreak(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// two points at the same distance; the earlier one splits first, after
	// which the later one is within tolerance of the new segment
	pts := []easecurve.Pair{P(0, 0), P(1, 1), P(2, 1), P(3, 0)}
	out := Simplify(pts, 0.9)
	assert.Equal(t, []easecurve.Pair{P(0, 0), P(1, 1), P(3, 0)}, out)
	pts = []easecurve.Pair{P(0, 0), P(1, 1), P(1.5, 1.05), P(2, 1), P(3, 0)}
	out = Simplify(pts, 0.5)
	assert.Equal(t, P(1.5, 1.05), out[1])
}

func TestLinearizeCollinear(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	var pts []easecurve.Pair
	for i := 0; i <= 10; i++ {
		pts = append(pts, P(float64(i)/10, float64(i)/5))
	}
	out := LinearizePoints(pts, 1e-9)
	assert.Equal(t, []easecurve.Pair{pts[0], pts[10]}, out)
	// a kink survives
	pts = []easecurve.Pair{P(0, 0), P(0.5, 0), P(0.6, 0.5), P(1, 0.5)}
	out = LinearizePoints(pts, 0.01)
	assert.Equal(t, pts, out)
}

func TestDeduplicate(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := []easecurve.Pair{P(0, 0), P(0, 0), P(0.5, 0.5), P(0.5, 0.5 + 1e-9), P(1, 1), P(1, 1)}
	out := Deduplicate(pts)
	assert.Equal(t, []easecurve.Pair{P(0, 0), P(0.5, 0.5), P(1, 1)}, out)
	assert.Len(t, Deduplicate(pts[:1]), 1)
	same := []easecurve.Pair{P(1, 1), P(1, 1)}
	assert.Equal(t, same, Deduplicate(same))
}

func TestReduceNoneIsIdentity(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := []easecurve.Pair{P(0, 0), P(0, 0), P(1, 1)}
	assert.Equal(t, pts, Reduce(pts, None, 0, 0))
	assert.Len(t, Reduce(pts, Mode(-3), 0, 0), 2)
}

func TestModeNames(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t, "RDP", RDP.String())
	m, err := ParseMode("linearize")
	require.NoError(t, err)
	assert.Equal(t, Linearize, m)
	_, err = ParseMode("bogus")
	assert.Error(t, err)
	assert.Equal(t, "Mode(9)", Mode(9).String())
}

func TestSegmentDistance(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.InDelta(t, 1.0, SegmentDistance(P(0.5, 1), P(0, 0), P(1, 0)), 1e-12)
	assert.InDelta(t, math.Sqrt2, SegmentDistance(P(2, 1), P(0, 0), P(1, 0)), 1e-12)
	assert.InDelta(t, 5.0, SegmentDistance(P(3, 4), P(0, 0), P(0, 0)), 1e-12)
}
