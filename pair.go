package gears

// GeneratePair computes the meshing analysis and both tooth profiles for a
// gear pair. It fails only on invalid parameters; after validation passes
// the geometry cannot fail and no partial result is ever returned.
//
// The undercut check receives each gear's raw signed tooth count, so
// internal gears (negative teeth) report UndercutNotApplicable even though
// their profile generation normalizes the sign first.
func GeneratePair(p PairParameters) (*PairResult, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	ratio, centerDistance := ContactRatio(
		p.Module,
		p.Driver.Teeth, p.Driven.Teeth,
		p.Driver.ProfileShift, p.Driven.ProfileShift,
		p.PressureAngle, p.Addendum,
	)
	return &PairResult{
		Analysis: PairAnalysis{
			ContactRatio:   ratio,
			CenterDistance: centerDistance,
		},
		Gear1: GearResult{
			ToothProfile: generateTooth(p.Module, p.PressureAngle, p.gearParams(p.Driver), p.Seg),
			Undercut:     CheckUndercut(p.Driver.Teeth, p.PressureAngle, p.Driver.ProfileShift, p.Addendum),
		},
		Gear2: GearResult{
			ToothProfile: generateTooth(p.Module, p.PressureAngle, p.gearParams(p.Driven), p.Seg),
			Undercut:     CheckUndercut(p.Driven.Teeth, p.PressureAngle, p.Driven.ProfileShift, p.Addendum),
		},
	}, nil
}

// GeneratePairFromMap is GeneratePair over the legacy flat parameter
// schema (see ParamsFromMap).
func GeneratePairFromMap(m map[string]float64) (*PairResult, error) {
	p, err := ParamsFromMap(m)
	if err != nil {
		return nil, err
	}
	return GeneratePair(p)
}

// Tooth generates the tooth profile of a single gear using the pair's
// shared scalar parameters.
func (p PairParameters) Tooth(g GearSpec) (ToothProfile, error) {
	if err := p.Validate(); err != nil {
		return ToothProfile{}, err
	}
	if err := g.validate(); err != nil {
		return ToothProfile{}, err
	}
	return generateTooth(p.Module, p.PressureAngle, p.gearParams(g), p.Seg), nil
}
