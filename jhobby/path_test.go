package jhobby

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/npillmayer/easecurve"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var P = easecurve.P

func mustPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	f()
}

func near(t *testing.T, what string, got, want easecurve.Pair) {
	t.Helper()
	if math.Abs(got.X()-want.X()) > 0.0002 || math.Abs(got.Y()-want.Y()) > 0.0002 {
		t.Errorf("unexpected %s: got %v, want %v", what, got, want)
	}
}

func testpath() *Path {
	return Through(P(1, 1), P(2, 2), P(3, 1))
}

func TestCreatePath(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := testpath()
	if path.N() != 3 {
		t.Fail()
	}
	if path.PostTension(0) != 1 || path.PreTension(2) != 1 {
		t.Fail()
	}
}

func TestAsStringSnapshot(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if got, want := AsString(testpath(), nil), "(1,1) .. (2,2) .. (3,1)"; got != want {
		t.Fatalf("AsString mismatch:\n got: %s\nwant: %s", got, want)
	}
	got := AsString(testpath(), newControls(3))
	want := "(1,1) .. controls (<unknown>) and (<unknown>)\n  .. (2,2) .. controls (<unknown>) and (<unknown>)\n  .. (3,1)"
	if got != want {
		t.Fatalf("AsString mismatch:\n got: %s\nwant: %s", got, want)
	}
}

func TestSetTension(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := testpath().Tension(0, 0.5).Tension(1, 10).Tension(7, 2)
	if path.PostTension(0) != 0.75 {
		t.Errorf("expected tension to be clamped to 0.75, is %g", path.PostTension(0))
	}
	if path.PreTension(2) != 4 {
		t.Errorf("expected tension to be clamped to 4, is %g", path.PreTension(2))
	}
}

func TestDelta(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := testpath()
	if delta1 := path.delta(1); delta1 != 1-1i {
		t.Errorf("delta [1->2] = %g", delta1)
	}
	if d := path.d(1); math.Abs(d-math.Sqrt2) > 1e-9 {
		t.Errorf("d [1->2] = %g", d)
	}
}

func TestPsi(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := testpath()
	psi := path.psi(1)
	t.Logf("psi [1->2] = %g\n", rad2deg(psi)) // -90.0000001
	if math.Abs(rad2deg(psi)+90.0) > 0.01 {
		t.Fail()
	}
	if path.psi(0) != 0 || path.psi(2) != 0 {
		t.Errorf("end knots of open path must not turn")
	}
}

func TestControlsDeterministicSnapshot(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelInfo)
	controls, err := FindPathControls(testpath())
	if err != nil {
		t.Fatalf("FindPathControls failed: %v", err)
	}
	near(t, "post control[0]", controls.PostControl(0), P(1.0000, 1.5523))
	near(t, "pre control[1]", controls.PreControl(1), P(1.4477, 2.0000))
	near(t, "post control[1]", controls.PostControl(1), P(2.5523, 2.0000))
	near(t, "pre control[2]", controls.PreControl(2), P(3.0000, 1.5523))
	if !math.IsNaN(real(controls.PreControl(0))) || !math.IsNaN(real(controls.PostControl(2))) {
		t.Errorf("open path must not have controls outside its joins")
	}
}

func TestCollinearKnots(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	controls := MustFindControls([]easecurve.Pair{P(0, 0), P(1, 0), P(3, 0)})
	near(t, "post control[0]", controls.PostControl(0), P(1.0/3, 0))
	near(t, "pre control[1]", controls.PreControl(1), P(2.0/3, 0))
	near(t, "post control[1]", controls.PostControl(1), P(1+2.0/3, 0))
	near(t, "pre control[2]", controls.PreControl(2), P(3-2.0/3, 0))
}

func TestTwoKnotsMakeALine(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	controls := MustFindControls([]easecurve.Pair{P(0, 0), P(3, 3)})
	if controls.N() != 2 {
		t.Fatalf("expected controls for 2 knots, have %d", controls.N())
	}
	near(t, "post control[0]", controls.PostControl(0), P(1, 1))
	near(t, "pre control[1]", controls.PreControl(1), P(2, 2))
}

func TestTensionPullsControlsIn(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	loose := MustFindControls([]easecurve.Pair{P(1, 1), P(2, 2), P(3, 1)})
	tight, err := FindPathControls(testpath().Tension(0, 3).Tension(1, 3))
	if err != nil {
		t.Fatal(err)
	}
	arm := func(c *Controls) float64 { return (c.PostControl(0) - P(1, 1)).Abs() }
	if arm(tight) >= arm(loose) {
		t.Errorf("expected higher tension to shorten control arms: %g >= %g", arm(tight), arm(loose))
	}
}

func TestFindControlsRejectsNilPath(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := FindPathControls(nil)
	if !errors.Is(err, ErrNilPath) {
		t.Fatalf("expected ErrNilPath, got %v", err)
	}
}

func TestFindControlsRejectsTooFewKnots(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := FindControls([]easecurve.Pair{P(0, 0)})
	if !errors.Is(err, ErrTooFewKnots) {
		t.Fatalf("expected ErrTooFewKnots, got %v", err)
	}
}

func TestFindControlsRejectsDegenerateSegment(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := FindControls([]easecurve.Pair{P(0, 0), P(0, 0)})
	if !errors.Is(err, ErrDegenerateSegment) {
		t.Fatalf("expected ErrDegenerateSegment, got %v", err)
	}
}

func TestFindControlsRejectsInvalidKnot(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := FindControls([]easecurve.Pair{P(0, 0), P(math.NaN(), 0)})
	if !errors.Is(err, ErrInvalidKnot) {
		t.Fatalf("expected ErrInvalidKnot, got %v", err)
	}
}

func TestMustFindControlsPanicsOnInvalidPath(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	mustPanic(t, func() { MustFindControls([]easecurve.Pair{P(0, 0)}) })
}

// Find the controls for an arc through three knots. The result is part of
// a circle of diameter 2 around (2,1).
func ExampleFindControls() {
	knots := []easecurve.Pair{P(1, 1), P(2, 2), P(3, 1)}
	skeleton := Through(knots...)
	fmt.Printf("skeleton path = %s\n\n", AsString(skeleton, nil))
	controls := MustFindControls(knots)
	fmt.Printf("smooth path = \n%s\n\n", AsString(skeleton, controls))

	// skeleton path = (1,1) .. (2,2) .. (3,1)

	// smooth path =
	// (1,1) .. controls (1.0000,1.5523) and (1.4477,2.0000)
	//   .. (2,2) .. controls (2.5523,2.0000) and (3.0000,1.5523)
	//   .. (3,1)
}
