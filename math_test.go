package gears

import (
	"math"
	"testing"
)

func TestInvolute(t *testing.T) {
	alpha := dtor(20)
	want := math.Tan(alpha) - alpha
	if got := Involute(alpha); got != want {
		t.Errorf("Involute(20°) = %v, want %v", got, want)
	}
	if got := Involute(0); got != 0 {
		t.Errorf("Involute(0) = %v, want 0", got)
	}
}

func TestOperatingPressureAngle(t *testing.T) {
	got := OperatingPressureAngle(18, 36, 0.2, 0.0, 20)
	want := dtor(21.098863188967414)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("operating pressure angle = %v rad, want %v rad", got, want)
	}
	// Zero shift sum leaves the pressure angle unchanged.
	got = OperatingPressureAngle(20, 40, 0, 0, 20)
	if math.Abs(got-dtor(20)) > 1e-9 {
		t.Errorf("unshifted pair: got %v, want %v", got, dtor(20))
	}
}

func TestContactRatioBaseline(t *testing.T) {
	ratio, cd := ContactRatio(1.0, 18, 36, 0.2, 0.0, 20, 1.0)
	if math.Abs(ratio-1.54708178218538) > 1e-9 {
		t.Errorf("contact ratio = %v, want 1.54708178218538", ratio)
	}
	if ratio < 1.5 || ratio > 1.9 {
		t.Errorf("contact ratio %v outside expected design range [1.5, 1.9]", ratio)
	}
	if math.Abs(cd-27.194823293799594) > 1e-9 {
		t.Errorf("center distance = %v, want 27.194823293799594", cd)
	}
	if cd < 27.0 || cd > 27.5 {
		t.Errorf("center distance %v outside expected range [27.0, 27.5]", cd)
	}
}

func TestContactRatioDegenerateMesh(t *testing.T) {
	// Addendum circle inside the base circle: invalid mesh, no panic, no
	// NaN, ratio reported as zero with the center distance intact.
	ratio, cd := ContactRatio(1.0, 18, 36, -0.6, 0.0, 20, 0.01)
	if ratio != 0 {
		t.Errorf("degenerate mesh contact ratio = %v, want 0", ratio)
	}
	if math.Abs(cd-26.330959587659827) > 1e-9 {
		t.Errorf("degenerate mesh center distance = %v, want 26.330959587659827", cd)
	}
}

func TestCheckUndercut(t *testing.T) {
	status := CheckUndercut(10, 20, 0.0, 1.0)
	if status.Code != UndercutWarning {
		t.Fatalf("z=10 x=0: got %v, want warning", status)
	}
	if math.Abs(status.XMin-0.4151111077974452) > 1e-9 {
		t.Errorf("z=10 xMin = %v, want 0.4151111077974452", status.XMin)
	}
	if status := CheckUndercut(40, 20, 0.0, 1.0); status.Code != UndercutOK {
		t.Errorf("z=40 x=0: got %v, want OK", status)
	}
	if status := CheckUndercut(-20, 20, 0.0, 1.0); status.Code != UndercutNotApplicable {
		t.Errorf("z=-20: got %v, want not applicable", status)
	}
	if status := CheckUndercut(0, 20, 0.0, 1.0); status.Code != UndercutNotApplicable {
		t.Errorf("z=0: got %v, want not applicable", status)
	}
}

func TestNormalizeInternal(t *testing.T) {
	g := gearParams{
		teeth:      -20,
		shift:      0.1,
		backlash:   0.05,
		addendum:   1.0,
		dedendum:   1.25,
		hobRadius:  0.2,
		edgeRadius: 0.1,
	}
	n := g.normalizeInternal()
	want := gearParams{
		teeth:      20,
		shift:      -0.1,
		backlash:   -0.05,
		addendum:   1.25,
		dedendum:   1.0,
		hobRadius:  0.1,
		edgeRadius: 0.2,
	}
	if n != want {
		t.Errorf("normalizeInternal(%+v) = %+v, want %+v", g, n, want)
	}
	// Idempotent for external gears.
	if again := n.normalizeInternal(); again != n {
		t.Errorf("normalization not idempotent: %+v != %+v", again, n)
	}
	ext := gearParams{teeth: 18, shift: 0.2}
	if got := ext.normalizeInternal(); got != ext {
		t.Errorf("external gear changed by normalization: %+v", got)
	}
}

func TestUndercutStatusString(t *testing.T) {
	if s := (UndercutStatus{Code: UndercutOK}).String(); s != "OK" {
		t.Errorf("OK status prints %q", s)
	}
	s := UndercutStatus{Code: UndercutWarning, XMin: 0.415}.String()
	if s != "Warning: Risk of undercut (x < 0.415)" {
		t.Errorf("warning status prints %q", s)
	}
}
