package gears

import (
	"math"
	"strings"
	"testing"
)

func testPairParams() PairParameters {
	return PairParameters{
		Module:          1.0,
		PressureAngle:   20.0,
		Backlash:        0.05,
		Addendum:        1.0,
		Dedendum:        1.25,
		HobEdgeRadius:   0.2,
		ToothEdgeRadius: 0.1,
		Driver:          GearSpec{Teeth: 18, ProfileShift: 0.2},
		Driven:          GearSpec{Teeth: 36, ProfileShift: 0.0},
		Seg:             defaultSeg(),
	}
}

func TestGeneratePair(t *testing.T) {
	res, err := GeneratePair(testPairParams())
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(res.Analysis.ContactRatio-1.54708178218538) > 1e-9 {
		t.Errorf("contact ratio = %v, want 1.54708178218538", res.Analysis.ContactRatio)
	}
	if math.Abs(res.Analysis.CenterDistance-27.194823293799594) > 1e-9 {
		t.Errorf("center distance = %v, want 27.194823293799594", res.Analysis.CenterDistance)
	}
	if res.Gear1.Teeth != 18 || res.Gear2.Teeth != 36 {
		t.Errorf("tooth counts = %d, %d, want 18, 36", res.Gear1.Teeth, res.Gear2.Teeth)
	}
	if res.Gear1.Undercut.Code != UndercutOK {
		t.Errorf("gear 1 undercut = %v, want OK", res.Gear1.Undercut)
	}
	if res.Gear2.Undercut.Code != UndercutOK {
		t.Errorf("gear 2 undercut = %v, want OK", res.Gear2.Undercut)
	}
	if len(res.Gear1.Points) != 101 || len(res.Gear2.Points) != 101 {
		t.Errorf("point counts = %d, %d, want 101, 101", len(res.Gear1.Points), len(res.Gear2.Points))
	}
}

func TestGeneratePairUndercutWarning(t *testing.T) {
	p := testPairParams()
	p.Driver = GearSpec{Teeth: 10, ProfileShift: 0.0}
	res, err := GeneratePair(p)
	if err != nil {
		t.Fatal(err)
	}
	if res.Gear1.Undercut.Code != UndercutWarning {
		t.Errorf("gear 1 undercut = %v, want warning", res.Gear1.Undercut)
	}
}

func TestGeneratePairInternal(t *testing.T) {
	p := testPairParams()
	p.Driven = GearSpec{Teeth: -36, ProfileShift: 0.0}
	res, err := GeneratePair(p)
	if err != nil {
		t.Fatal(err)
	}
	if res.Gear2.Undercut.Code != UndercutNotApplicable {
		t.Errorf("internal gear undercut = %v, want not applicable", res.Gear2.Undercut)
	}
	if res.Gear2.Teeth != 36 {
		t.Errorf("internal gear tooth count = %d, want 36", res.Gear2.Teeth)
	}
}

func TestValidate(t *testing.T) {
	for _, tc := range []struct {
		name    string
		mutate  func(*PairParameters)
		wantErr string
	}{
		{"valid", func(p *PairParameters) {}, ""},
		{"zero module", func(p *PairParameters) { p.Module = 0 }, "module must be positive"},
		{"negative module", func(p *PairParameters) { p.Module = -1 }, "module must be positive"},
		{"zero pressure angle", func(p *PairParameters) { p.PressureAngle = 0 }, "pressure angle must be between 0 and 90 degrees"},
		{"right angle pressure angle", func(p *PairParameters) { p.PressureAngle = 90 }, "pressure angle must be between 0 and 90 degrees"},
		{"zero driver teeth", func(p *PairParameters) { p.Driver.Teeth = 0 }, "driver: gear teeth count must be non-zero"},
		{"zero driven teeth", func(p *PairParameters) { p.Driven.Teeth = 0 }, "driven: gear teeth count must be non-zero"},
		{"zero involute segments", func(p *PairParameters) { p.Seg.Involute = 0 }, `segmentation value "involute" must be positive`},
		{"negative root segments", func(p *PairParameters) { p.Seg.Root = -1 }, `segmentation value "root" must be positive`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			p := testPairParams()
			tc.mutate(&p)
			err := p.Validate()
			switch {
			case tc.wantErr == "" && err != nil:
				t.Errorf("unexpected error: %v", err)
			case tc.wantErr != "" && err == nil:
				t.Errorf("want error %q, got nil", tc.wantErr)
			case tc.wantErr != "" && err.Error() != tc.wantErr:
				t.Errorf("error = %q, want %q", err, tc.wantErr)
			}
		})
	}
}

func TestGeneratePairFromMap(t *testing.T) {
	m := testPairParams().ToMap()
	res, err := GeneratePairFromMap(m)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(res.Analysis.ContactRatio-1.54708178218538) > 1e-9 {
		t.Errorf("contact ratio = %v, want 1.54708178218538", res.Analysis.ContactRatio)
	}

	// Missing keys are reported in schema order.
	delete(m, "SEG_ROOT")
	delete(m, "B")
	_, err = GeneratePairFromMap(m)
	if err == nil || !strings.Contains(err.Error(), `"B"`) {
		t.Errorf(`missing-key error = %v, want mention of "B"`, err)
	}
}

func TestTooth(t *testing.T) {
	p := testPairParams()
	prof, err := p.Tooth(p.Driver)
	if err != nil {
		t.Fatal(err)
	}
	if prof.Teeth != 18 || len(prof.Points) != 101 {
		t.Errorf("got %d teeth, %d points, want 18 teeth, 101 points", prof.Teeth, len(prof.Points))
	}
	if _, err := p.Tooth(GearSpec{Teeth: 0}); err == nil {
		t.Error("zero teeth accepted")
	}
}
