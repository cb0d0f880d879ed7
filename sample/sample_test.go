package sample

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/easecurve"
	"github.com/npillmayer/easecurve/easing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkSampled(t *testing.T, pts []easecurve.Pair, steps int) {
	t.Helper()
	require.GreaterOrEqual(t, len(pts), 2)
	assert.LessOrEqual(t, len(pts), steps+2)
	assert.Equal(t, 0.0, pts[0].X())
	assert.Equal(t, 1.0, pts[len(pts)-1].X())
	for i := 1; i < len(pts); i++ {
		assert.Greater(t, pts[i].X(), pts[i-1].X(), "times must increase at %d", i)
	}
}

func TestSampleAllEquations(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, eq := range easing.Equations() {
		pts, err := Sample(eq.Func(), 200, 1)
		require.NoError(t, err, eq.String())
		checkSampled(t, pts, 200)
	}
}

func TestSampleLinearKeepsEveryStep(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts, err := Sample(easing.Linear, 10, 1)
	require.NoError(t, err)
	assert.Len(t, pts, 11)
	for i, p := range pts {
		assert.InDelta(t, float64(i)/10, p.X(), 1e-12)
		assert.InDelta(t, p.X(), p.Y(), 1e-12)
	}
}

func TestSampleGap(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	steps := 100
	pts, err := Sample(easing.QuadEaseOut, steps, 10)
	require.NoError(t, err)
	checkSampled(t, pts, steps)
	// t=0, the first step (direction is set), then every 10 steps, and t=1
	assert.Len(t, pts, 12)
	for i := 1; i < len(pts); i++ {
		assert.LessOrEqual(t, pts[i].X()-pts[i-1].X(), 10.0/float64(steps)+1e-9)
	}
}

func TestSampleDirectionChange(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// rises until t=0.5, then falls
	hat := func(t, b, c, d float64) float64 {
		return b + c*(1-math.Abs(2*t/d-1))
	}
	pts, err := Sample(hat, 100, 1000)
	require.NoError(t, err)
	checkSampled(t, pts, 100)
	// t=0, first rising step, first falling step, t=1
	require.Len(t, pts, 4)
	assert.InDelta(t, 0.01, pts[1].X(), 1e-9)
	assert.InDelta(t, 0.51, pts[2].X(), 1e-9)
}

func TestSampleBoundaryTolerance(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	asymptotic := func(t, b, c, d float64) float64 {
		if t == d || t == 0 {
			return math.NaN()
		}
		return b + c*t/d
	}
	pts, err := Sample(asymptotic, 20, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, pts[0].Y())
	assert.Equal(t, 1.0, pts[len(pts)-1].Y())
	for _, p := range pts {
		assert.True(t, p.IsFinite())
	}
}

func TestSampleSkipsNonFinite(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	holey := func(t, b, c, d float64) float64 {
		if t > 0.45 && t < 0.55 {
			return math.Inf(1)
		}
		return t
	}
	pts, err := Sample(holey, 10, 1)
	require.NoError(t, err)
	checkSampled(t, pts, 10)
	for _, p := range pts {
		assert.True(t, p.IsFinite())
	}
	assert.Len(t, pts, 10)
}

func TestSampleInvalidSteps(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := Sample(easing.Linear, 0, 1)
	assert.True(t, errors.Is(err, ErrInvalidSteps))
	_, err = Sample(nil, 10, 1)
	assert.Error(t, err)
}
