// Package gears computes exact involute tooth geometry and meshing metrics
// for spur and internal gear pairs from standard gear-design parameters.
//
// The package is a pure forward calculator: parameters go in, one dense
// tooth-profile polyline per gear plus scalar analysis values (contact
// ratio, center distance, undercut risk) come out. Drawing, replication
// into full gear outlines and file export live in the render and config
// packages.
package gears

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// GearSpec describes one gear of a meshing pair.
type GearSpec struct {
	// Teeth is the tooth count. Negative values denote an internal gear.
	Teeth int
	// ProfileShift is the profile shift coefficient x.
	ProfileShift float64
}

func (g GearSpec) validate() error {
	if g.Teeth == 0 {
		return errors.New("gear teeth count must be non-zero")
	}
	return nil
}

// Segmentation sets the number of sample points generated for each curve
// family of the tooth profile. All counts must be positive.
type Segmentation struct {
	Involute  int // involute flank samples
	Edge      int // tip edge rounding arc samples
	RootRound int // root trochoid samples
	Outer     int // addendum circle cap samples
	Root      int // dedendum circle cap samples
}

func (s Segmentation) validate() error {
	for _, v := range [...]struct {
		name  string
		count int
	}{
		{"involute", s.Involute},
		{"edge", s.Edge},
		{"root_round", s.RootRound},
		{"outer", s.Outer},
		{"root", s.Root},
	} {
		if v.count <= 0 {
			return fmt.Errorf("segmentation value %q must be positive", v.name)
		}
	}
	return nil
}

// PairParameters aggregates the configuration of a meshing gear pair.
// The factor fields (Backlash through ToothEdgeRadius) are dimensionless
// multiples of the module; by convention they lie in [0,1] though this is
// not enforced.
type PairParameters struct {
	// Module is the gear module m, pitch diameter over tooth count [mm].
	Module float64
	// PressureAngle is the pressure angle alpha [degrees], in (0,90).
	PressureAngle float64
	// Backlash is the backlash factor b.
	Backlash float64
	// Addendum is the addendum factor a (1 for standard teeth).
	Addendum float64
	// Dedendum is the dedendum factor d (1.25 for standard teeth).
	Dedendum float64
	// HobEdgeRadius is the cutting tool edge rounding factor c.
	HobEdgeRadius float64
	// ToothEdgeRadius is the tooth tip edge rounding factor e.
	ToothEdgeRadius float64
	Driver          GearSpec
	Driven          GearSpec
	Seg             Segmentation
	// Center is the placement offset (X_0, Y_0) of the driver gear. It is
	// consumed by downstream drawing collaborators, never by the geometry
	// math itself.
	Center r2.Vec
}

// Validate checks the construction invariants of the parameter set.
// Geometry generation cannot fail once Validate passes: all degenerate
// numeric cases downstream are clamped, never raised.
func (p PairParameters) Validate() error {
	if p.Module <= 0 {
		return errors.New("module must be positive")
	}
	if p.PressureAngle <= 0 || p.PressureAngle >= 90 {
		return errors.New("pressure angle must be between 0 and 90 degrees")
	}
	if err := p.Driver.validate(); err != nil {
		return fmt.Errorf("driver: %w", err)
	}
	if err := p.Driven.validate(); err != nil {
		return fmt.Errorf("driven: %w", err)
	}
	return p.Seg.validate()
}

// gearParams collects the per-gear scalar parameters of the pair.
func (p PairParameters) gearParams(g GearSpec) gearParams {
	return gearParams{
		teeth:      g.Teeth,
		shift:      g.ProfileShift,
		backlash:   p.Backlash,
		addendum:   p.Addendum,
		dedendum:   p.Dedendum,
		hobRadius:  p.HobEdgeRadius,
		edgeRadius: p.ToothEdgeRadius,
	}
}

// ToothProfile is the outline of a single tooth spanning the two adjacent
// half tooth-spaces, with the metadata consumers need to replicate it into
// a full gear: rotate by AlignmentAngle once, then by PitchAngle*i for
// i in [0, Teeth).
type ToothProfile struct {
	// Points is the assembled ten-segment profile in the historical
	// segment order (see assemble). Adjacent segments share an endpoint;
	// the shared point is kept once.
	Points []r2.Vec
	// Ring is the same boundary reordered into a strictly sequential open
	// path from one tooth center to the next. Replicas of Ring rotated by
	// the pitch angle connect end to start, forming a closed gear outline.
	Ring []r2.Vec
	// Teeth is the tooth count after internal-gear sign normalization,
	// always positive.
	Teeth int
	// PitchAngle is 2π/Teeth [radians].
	PitchAngle float64
	// AlignmentAngle is π/2 − π/Teeth [radians], the rotation that aligns
	// the tooth symmetrically about the +y axis before replication.
	AlignmentAngle float64
}

// PairAnalysis holds the scalar meshing metrics of a gear pair.
type PairAnalysis struct {
	// ContactRatio is the average number of tooth pairs in simultaneous
	// contact. Zero denotes a geometrically invalid mesh.
	ContactRatio float64
	// CenterDistance is the operating distance between gear centers [mm].
	CenterDistance float64
}

// GearResult is the generated geometry and undercut assessment of one gear.
type GearResult struct {
	ToothProfile
	Undercut UndercutStatus
}

// PairResult bundles everything computed for a gear pair. It is created
// once per GeneratePair call and never mutated afterwards.
type PairResult struct {
	Analysis PairAnalysis
	Gear1    GearResult
	Gear2    GearResult
}
