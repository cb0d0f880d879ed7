package easecurve

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestNumericBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := 0.000000008
	if !Is0(a) {
		t.Errorf("Expected a to be zero, is not")
	}
	assert.False(t, IsFinite(math.NaN()))
	assert.False(t, IsFinite(math.Inf(-1)))
	assert.True(t, IsFinite(1e300))
}

func TestPairBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := P(3, 2)
	q := P(-3, -2)
	r := p + q
	if !r.Equal(Origin) {
		t.Errorf("Expected p + q to be (0,0), is %v", r)
	}
	assert.InDelta(t, 5.0, P(3, 4).Abs(), 1e-12)
	assert.InDelta(t, 1.0, P(3, 4).Unit().Abs(), 1e-12)
	assert.Equal(t, Origin, Origin.Unit())
	assert.InDelta(t, 2.0, P(2, 4).Slope(), 1e-12)
	assert.Equal(t, 0.0, P(0, 4).Slope())
}

func TestAngle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.InDelta(t, 90.0, Angle(P(1, 0), P(0, 1)), 1e-6)
	assert.InDelta(t, 90.0, Angle(P(0, 1), P(1, 0)), 1e-6)
	assert.InDelta(t, 0.0, Angle(P(1, 1), P(2, 2)), 1e-6)
	assert.InDelta(t, 180.0, Angle(P(1, 0), P(-1, 0)), 1e-6)
	// a full reversal must not exceed the largest corner threshold
	assert.LessOrEqual(t, Angle(P(1, 0), P(-1, 0)), 180.0)
	assert.LessOrEqual(t, Angle(P(0.3, 0.7), P(-0.3, -0.7)), 180.0)
	// crossing the ±π seam must not produce a reflex angle
	assert.InDelta(t, 20.0, Angle(P(-1, 0.17632698), P(-1, -0.17632698)), 1e-4)
	assert.Equal(t, 0.0, Angle(Origin, P(1, 0)))
}

func TestTransforms(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if !Translation(P(-1, -1)).Transform(P(1, 1)).Equal(Origin) {
		t.Errorf("Expected (1,1) shifted (-1,-1) to be origin, is not")
	}
	m := Scaling(2, 3).Combine(Translation(P(1, 0)))
	assert.True(t, m.Transform(P(1, 1)).Equal(P(3, 3)), "got %v", m.Transform(P(1, 1)))
	assert.True(t, m.TransformVector(P(1, 1)).Equal(P(2, 3)))
}
