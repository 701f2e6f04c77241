package gears

import (
	"fmt"
	"math"
)

const (
	pi         = math.Pi
	tau        = 2 * pi
	rightAngle = pi / 2
	// tolerance is the absolute coincidence tolerance of profile geometry.
	tolerance = 1e-9
)

// dtor converts degrees to radians.
func dtor(degrees float64) float64 { return (pi / 180) * degrees }

// Involute returns the involute function inv(α) = tan(α) − α.
// Numerically stable for |α| < π/2.
func Involute(alpha float64) float64 { return math.Tan(alpha) - alpha }

// OperatingPressureAngle returns the operating pressure angle αw [radians]
// of a meshing pair with tooth counts z1, z2, profile shifts x1, x2 and
// nominal pressure angle alphaDeg [degrees].
//
// This is a numerical root-find, not a closed form: inv(αw) = inv(α) +
// 2(x1+x2)tan(α)/(z1+z2) is solved by Newton-Raphson seeded at α with a
// fixed cap of 10 iterations and no convergence check. The derivative
// guard short-circuits the loop when tan²(αw) vanishes instead of dividing
// by a near-zero value. The iteration cap is calibrated for gear-design
// input ranges, where contact ratio use needs only ~4 significant digits.
func OperatingPressureAngle(z1, z2 int, x1, x2, alphaDeg float64) float64 {
	alpha := dtor(alphaDeg)
	invTarget := Involute(alpha) + 2*(x1+x2)*math.Tan(alpha)/float64(z1+z2)
	alphaW := alpha
	for i := 0; i < 10; i++ {
		f := Involute(alphaW) - invTarget
		derivative := math.Tan(alphaW) * math.Tan(alphaW)
		if math.Abs(derivative) < tolerance {
			break
		}
		alphaW -= f / derivative
	}
	return alphaW
}

// ContactRatio returns the transverse contact ratio and operating center
// distance [mm] for a gear pair. addendum is the addendum factor, 1 for
// standard teeth.
//
// If either gear's addendum circle lies inside its base circle the mesh is
// geometrically invalid: the ratio is reported as 0 together with the
// computed center distance.
func ContactRatio(module float64, z1, z2 int, x1, x2, alphaDeg, addendum float64) (ratio, centerDistance float64) {
	alpha := dtor(alphaDeg)
	alphaW := OperatingPressureAngle(z1, z2, x1, x2, alphaDeg)

	centerDistance = module * float64(z1+z2) / 2 * (math.Cos(alpha) / math.Cos(alphaW))

	baseRadius1 := module * float64(z1) * math.Cos(alpha) / 2
	baseRadius2 := module * float64(z2) * math.Cos(alpha) / 2
	addendumRadius1 := module * (float64(z1)/2 + addendum + x1)
	addendumRadius2 := module * (float64(z2)/2 + addendum + x2)

	val1 := addendumRadius1*addendumRadius1 - baseRadius1*baseRadius1
	val2 := addendumRadius2*addendumRadius2 - baseRadius2*baseRadius2
	if val1 < 0 || val2 < 0 {
		return 0, centerDistance
	}

	pathOfContact := math.Sqrt(val1) + math.Sqrt(val2) - centerDistance*math.Sin(alphaW)
	basePitch := module * pi * math.Cos(alpha)
	return pathOfContact / basePitch, centerDistance
}

// UndercutCode classifies the outcome of an undercut check.
type UndercutCode int

const (
	// UndercutOK means the profile shift is large enough to avoid undercut.
	UndercutOK UndercutCode = iota
	// UndercutWarning flags a risk of undercut: the profile shift is below
	// the minimum carried in UndercutStatus.XMin.
	UndercutWarning
	// UndercutNotApplicable is reported for non-positive tooth counts; the
	// check is defined for the external-gear sign convention only.
	UndercutNotApplicable
)

// UndercutStatus is the undercut assessment of a single gear.
type UndercutStatus struct {
	Code UndercutCode
	// XMin is the minimum profile shift avoiding undercut. Only set for
	// UndercutWarning.
	XMin float64
}

func (u UndercutStatus) String() string {
	switch u.Code {
	case UndercutWarning:
		return fmt.Sprintf("Warning: Risk of undercut (x < %.3f)", u.XMin)
	case UndercutNotApplicable:
		return "Not applicable for internal gears in this context"
	}
	return "OK"
}

// CheckUndercut assesses whether a gear cut with the given profile shift is
// at risk of undercutting. teeth is the signed tooth count: non-positive
// values (internal gear convention) yield UndercutNotApplicable.
func CheckUndercut(teeth int, alphaDeg, profileShift, addendum float64) UndercutStatus {
	if teeth <= 0 {
		return UndercutStatus{Code: UndercutNotApplicable}
	}
	sin := math.Sin(dtor(alphaDeg))
	xMin := addendum - float64(teeth)/2*sin*sin
	if profileShift < xMin {
		return UndercutStatus{Code: UndercutWarning, XMin: xMin}
	}
	return UndercutStatus{Code: UndercutOK}
}

// gearParams is one gear's scalar parameter set in the form consumed by the
// profile generator.
type gearParams struct {
	teeth      int
	shift      float64
	backlash   float64
	addendum   float64
	dedendum   float64
	hobRadius  float64
	edgeRadius float64
}

// normalizeInternal maps internal-gear (negative teeth) parameters onto the
// external sign convention: teeth, profile shift and backlash are negated
// while addendum/dedendum and the hob/tooth edge radii swap roles, since an
// internal gear inverts which circle is the outer one. Idempotent for
// teeth >= 0.
func (g gearParams) normalizeInternal() gearParams {
	if g.teeth >= 0 {
		return g
	}
	g.teeth = -g.teeth
	g.shift = -g.shift
	g.backlash = -g.backlash
	g.addendum, g.dedendum = g.dedendum, g.addendum
	g.hobRadius, g.edgeRadius = g.edgeRadius, g.hobRadius
	return g
}
