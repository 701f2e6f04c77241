package gears

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// Legacy flat parameter schema. Parameter files on disk and the historical
// calculation entry points use a flat map of these keys; Z, z2 and the five
// SEG_* values are integral.
const (
	keyModule        = "M"
	keyTeeth         = "Z"
	keyPressureAngle = "ALPHA"
	keyShift         = "X"
	keyBacklash      = "B"
	keyAddendum      = "A"
	keyDedendum      = "D"
	keyHobRadius     = "C"
	keyEdgeRadius    = "E"
	keySegInvolute   = "SEG_INVOLUTE"
	keySegEdge       = "SEG_EDGE_R"
	keySegRootRound  = "SEG_ROOT_R"
	keySegOuter      = "SEG_OUTER"
	keySegRoot       = "SEG_ROOT"
	keyTeeth2        = "z2"
	keyShift2        = "x2"
	keyCenterX       = "X_0"
	keyCenterY       = "Y_0"
)

// toothKeys are the keys required to generate a single tooth profile, in
// the order missing-key errors report them.
var toothKeys = []string{
	keyModule, keyTeeth, keyPressureAngle, keyShift, keyBacklash,
	keyAddendum, keyDedendum, keyHobRadius, keyEdgeRadius,
	keySegInvolute, keySegEdge, keySegRootRound, keySegOuter, keySegRoot,
}

// pairKeys are the keys required for a full pair, toothKeys plus the driven
// gear. X_0 and Y_0 stay optional.
var pairKeys = append(append([]string{}, toothKeys...), keyTeeth2, keyShift2)

func requireKeys(m map[string]float64, keys []string) error {
	for _, k := range keys {
		if _, ok := m[k]; !ok {
			return fmt.Errorf("missing required parameter %q", k)
		}
	}
	return nil
}

func segFromMap(m map[string]float64) Segmentation {
	return Segmentation{
		Involute:  int(m[keySegInvolute]),
		Edge:      int(m[keySegEdge]),
		RootRound: int(m[keySegRootRound]),
		Outer:     int(m[keySegOuter]),
		Root:      int(m[keySegRoot]),
	}
}

// ParamsFromMap builds a validated PairParameters from the legacy flat map.
// Every key except X_0 and Y_0 is required; the first missing key is named
// in the returned error.
func ParamsFromMap(m map[string]float64) (PairParameters, error) {
	if err := requireKeys(m, pairKeys); err != nil {
		return PairParameters{}, err
	}
	p := PairParameters{
		Module:          m[keyModule],
		PressureAngle:   m[keyPressureAngle],
		Backlash:        m[keyBacklash],
		Addendum:        m[keyAddendum],
		Dedendum:        m[keyDedendum],
		HobEdgeRadius:   m[keyHobRadius],
		ToothEdgeRadius: m[keyEdgeRadius],
		Driver:          GearSpec{Teeth: int(m[keyTeeth]), ProfileShift: m[keyShift]},
		Driven:          GearSpec{Teeth: int(m[keyTeeth2]), ProfileShift: m[keyShift2]},
		Seg:             segFromMap(m),
		Center:          r2.Vec{X: m[keyCenterX], Y: m[keyCenterY]},
	}
	if err := p.Validate(); err != nil {
		return PairParameters{}, err
	}
	return p, nil
}

// ToMap translates the parameters into the legacy flat schema. The result
// round-trips through ParamsFromMap unchanged.
func (p PairParameters) ToMap() map[string]float64 {
	return map[string]float64{
		keyModule:        p.Module,
		keyTeeth:         float64(p.Driver.Teeth),
		keyPressureAngle: p.PressureAngle,
		keyShift:         p.Driver.ProfileShift,
		keyBacklash:      p.Backlash,
		keyAddendum:      p.Addendum,
		keyDedendum:      p.Dedendum,
		keyHobRadius:     p.HobEdgeRadius,
		keyEdgeRadius:    p.ToothEdgeRadius,
		keySegInvolute:   float64(p.Seg.Involute),
		keySegEdge:       float64(p.Seg.Edge),
		keySegRootRound:  float64(p.Seg.RootRound),
		keySegOuter:      float64(p.Seg.Outer),
		keySegRoot:       float64(p.Seg.Root),
		keyTeeth2:        float64(p.Driven.Teeth),
		keyShift2:        float64(p.Driven.ProfileShift),
		keyCenterX:       p.Center.X,
		keyCenterY:       p.Center.Y,
	}
}

// ToothProfileFromMap generates a single tooth profile from the legacy flat
// schema, using the M, Z, ALPHA, X, B, A, D, C, E and SEG_* keys. It fails
// fast naming the first missing key.
func ToothProfileFromMap(m map[string]float64) (ToothProfile, error) {
	if err := requireKeys(m, toothKeys); err != nil {
		return ToothProfile{}, err
	}
	if m[keyModule] <= 0 {
		return ToothProfile{}, fmt.Errorf("module must be positive")
	}
	if m[keyPressureAngle] <= 0 || m[keyPressureAngle] >= 90 {
		return ToothProfile{}, fmt.Errorf("pressure angle must be between 0 and 90 degrees")
	}
	teeth := int(m[keyTeeth])
	if teeth == 0 {
		return ToothProfile{}, fmt.Errorf("gear teeth count must be non-zero")
	}
	seg := segFromMap(m)
	if err := seg.validate(); err != nil {
		return ToothProfile{}, err
	}
	g := gearParams{
		teeth:      teeth,
		shift:      m[keyShift],
		backlash:   m[keyBacklash],
		addendum:   m[keyAddendum],
		dedendum:   m[keyDedendum],
		hobRadius:  m[keyHobRadius],
		edgeRadius: m[keyEdgeRadius],
	}
	return generateTooth(m[keyModule], m[keyPressureAngle], g, seg), nil
}
