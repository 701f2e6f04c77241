package gears

import (
	"math"

	"github.com/soypat/gears/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// geometry holds the derived angular parameters of a single gear computed
// from its (internally normalized) scalar parameters. Computed fresh per
// gear, never cached across calls.
type geometry struct {
	gearParams
	module float64
	// baseAngle is the pressure angle [radians].
	baseAngle float64
	// midAngle is the tooth center angle π/z, half the pitch.
	midAngle float64
	// startAngle is the angular position on the pitch circle where the
	// involute flank begins.
	startAngle float64
	// thetaStart..thetaEnd is the involute roll angle range. thetaStart
	// may be negative: the flank then starts below the base circle and is
	// truncated by the root curve instead.
	thetaStart float64
	thetaEnd   float64
	// edgeAngle locates where the involute flank meets the tip rounding
	// arc on the addendum circle.
	edgeAngle float64
	// transitionAngle is where the dedendum cap arc hands over to the
	// root trochoid.
	transitionAngle float64
	// trochoidEnd is the cutter roll angle range end of the trochoid.
	trochoidEnd float64
	pitchAngle  float64
	alignAngle  float64
}

// newGeometry derives the angular parameters of one gear. g must already be
// sign-normalized. The radicand of the involute range end is clamped to
// zero before the square root: floating underflow can produce a tiny
// negative value at the tangency boundary, which is not a real geometric
// branch.
func newGeometry(module, alphaDeg float64, g gearParams) geometry {
	z := float64(g.teeth)
	base := dtor(alphaDeg)
	sin, cos := math.Sincos(base)
	geo := geometry{
		gearParams: g,
		module:     module,
		baseAngle:  base,
		midAngle:   pi / z,
		pitchAngle: tau / z,
		alignAngle: rightAngle - pi/z,
	}
	geo.startAngle = base + geo.midAngle/2 + g.backlash/(z*cos) - (1+2*g.shift/z)*sin/cos
	geo.thetaStart = math.Tan(base) + 2*(g.hobRadius*(1-sin)+g.shift-g.dedendum)/(z*cos*sin)

	k := (z + 2*(g.shift+g.addendum-g.edgeRadius)) / (z * cos)
	radicand := k*k - 1
	if radicand < 0 {
		radicand = 0
	}
	geo.thetaEnd = 2*g.edgeRadius/(z*cos) + math.Sqrt(radicand)
	geo.edgeAngle = geo.startAngle + geo.thetaEnd - math.Atan(math.Sqrt(radicand))

	// Tip radius correction. On low tooth counts or high profile shifts
	// the rounded tip would cross the tooth centerline; when additionally
	// the centerline lies beyond the flank tangency point, shrink the edge
	// radius so the rounding arc stays within the tooth.
	if geo.edgeAngle > geo.midAngle && geo.midAngle > geo.startAngle+geo.thetaEnd-math.Atan(geo.thetaEnd) {
		sec := 1 / math.Cos(geo.startAngle+geo.thetaEnd-geo.midAngle)
		r := sec*sec - 1
		if r < 0 {
			r = 0
		}
		geo.edgeRadius = g.edgeRadius / 2 * cos * (geo.thetaEnd - math.Sqrt(r))
	}

	geo.transitionAngle = (2*(g.hobRadius*(1-sin)-g.dedendum)*sin+g.backlash)/(z*cos) -
		2*g.hobRadius*cos/z + pi/(2*z)
	geo.trochoidEnd = 2*g.hobRadius*cos/z -
		2*(g.dedendum-g.shift-g.hobRadius*(1-sin))*cos/(z*sin)
	return geo
}

// All curve builders sample uniformly in the curve parameter, not in arc
// length. Sampling therefore densifies where parametric speed is low; this
// is intentional and acceptable for CAD export tolerances.

// flank returns the involute flank: the involute of the base circle over
// roll angles [thetaStart, thetaEnd].
func (g *geometry) flank(n int) []r2.Vec {
	baseRadius := 0.5 * g.module * float64(g.teeth) * math.Cos(g.baseAngle)
	pts := make([]r2.Vec, 0, n)
	for _, theta := range linspace(g.thetaStart, g.thetaEnd, n) {
		r := baseRadius * math.Sqrt(1+theta*theta)
		pts = append(pts, d2.Polar(r, g.startAngle+theta-math.Atan(theta)))
	}
	return pts
}

// edgeRound returns the tip rounding arc from the last flank point to the
// tip contact point on the addendum circle. The arc center is placed on
// the edge angle ray so the arc is tangent-continuous with the involute.
func (g *geometry) edgeRound(flank []r2.Vec, n int) []r2.Vec {
	half := float64(g.teeth)/2 + g.shift + g.addendum
	tip := d2.Polar(g.module*half, g.edgeAngle)
	center := d2.Polar(g.module*(half-g.edgeRadius), g.edgeAngle)
	last := flank[len(flank)-1]
	thetaMin := math.Atan2(last.Y-center.Y, last.X-center.X)
	thetaMax := math.Atan2(tip.Y-center.Y, tip.X-center.X)
	pts := make([]r2.Vec, 0, n)
	for _, theta := range linspace(thetaMin, thetaMax, n) {
		pts = append(pts, r2.Add(center, d2.Polar(g.module*g.edgeRadius, theta)))
	}
	return pts
}

// trochoid returns the root fillet: the curve traced by the hob's rounded
// edge as it generates the root, over cutter roll angles [0, trochoidEnd].
//
// The auxiliary hob contact angle has two fixed-value branches: a zero hob
// radius means no rounding (angle 0), while a nonzero hob radius with
// dedendum − shift − hobRadius exactly zero is the cutter-tip-at-pitch-line
// degenerate case whose 0/0 limit is π/2.
func (g *geometry) trochoid(n int) []r2.Vec {
	z := float64(g.teeth)
	halfRoot := z/2 + g.shift - g.dedendum + g.hobRadius
	denom := g.module * (g.dedendum - g.shift - g.hobRadius)
	pts := make([]r2.Vec, 0, n)
	for _, theta := range linspace(0, g.trochoidEnd, n) {
		var aux float64
		switch {
		case g.hobRadius != 0 && denom == 0:
			aux = rightAngle
		case denom != 0:
			aux = math.Atan(g.module * z * theta / 2 / denom)
		}
		sin, cos := math.Sincos(theta + g.transitionAngle)
		sinAux, cosAux := math.Sincos(aux + theta + g.transitionAngle)
		pts = append(pts, r2.Vec{
			X: g.module * (halfRoot*cos + z/2*theta*sin - g.hobRadius*cosAux),
			Y: g.module * (halfRoot*sin - z/2*theta*cos - g.hobRadius*sinAux),
		})
	}
	return pts
}

// outerArc returns the addendum circle cap between the tip rounding arc
// and the tooth center angle.
func (g *geometry) outerArc(n int) []r2.Vec {
	r := g.module * (float64(g.teeth)/2 + g.addendum + g.shift)
	pts := make([]r2.Vec, 0, n)
	for _, theta := range linspace(g.edgeAngle, g.midAngle, n) {
		pts = append(pts, d2.Polar(r, theta))
	}
	return pts
}

// rootArc returns the dedendum circle cap between the tooth-space center
// and the trochoid transition angle.
func (g *geometry) rootArc(n int) []r2.Vec {
	r := g.module * (float64(g.teeth)/2 - g.dedendum + g.shift)
	pts := make([]r2.Vec, 0, n)
	for _, theta := range linspace(0, g.transitionAngle, n) {
		pts = append(pts, d2.Polar(r, theta))
	}
	return pts
}

// assemble mirrors the five flank-1 curves about the x axis and
// concatenates the ten segments into the tooth profile.
//
// Points keeps the historical order: outer2, edge2, flank2, trochoid2,
// rootArc2, rootArc1, trochoid1, flank1, edge1, outer1, with the first
// point of every segment but rootArc1 dropped. In this order each adjacent
// segment pair shares exactly one endpoint (for the mirrored half the
// shared point is the first sample of the earlier segment and the last of
// the later one).
//
// Ring rebuilds the same boundary as one sequential path from −midAngle to
// +midAngle, which replication consumers chain into a closed outline.
func (g *geometry) assemble(seg Segmentation) ToothProfile {
	flank1 := g.flank(seg.Involute)
	edge1 := g.edgeRound(flank1, seg.Edge)
	root1 := g.trochoid(seg.RootRound)
	outer1 := g.outerArc(seg.Outer)
	rootArc1 := g.rootArc(seg.Root)

	flank2 := mirrorY(flank1)
	edge2 := mirrorY(edge1)
	root2 := mirrorY(root1)
	outer2 := mirrorY(outer1)
	rootArc2 := mirrorY(rootArc1)

	n := 2*(len(flank1)+len(edge1)+len(root1)+len(outer1)+len(rootArc1)) - 9
	points := make([]r2.Vec, 0, n)
	points = append(points, outer2[1:]...)
	points = append(points, edge2[1:]...)
	points = append(points, flank2[1:]...)
	points = append(points, root2[1:]...)
	points = append(points, rootArc2[1:]...)
	points = append(points, rootArc1...)
	points = append(points, root1[1:]...)
	points = append(points, flank1[1:]...)
	points = append(points, edge1[1:]...)
	points = append(points, outer1[1:]...)

	forward := make([]r2.Vec, 0, n/2+1)
	forward = append(forward, rootArc1...)
	forward = append(forward, root1[1:]...)
	forward = append(forward, flank1[1:]...)
	forward = append(forward, edge1[1:]...)
	forward = append(forward, outer1[1:]...)
	ring := make([]r2.Vec, 0, 2*len(forward)-1)
	for i := len(forward) - 1; i > 0; i-- {
		ring = append(ring, d2.MirrorY(forward[i]))
	}
	ring = append(ring, forward...)

	return ToothProfile{
		Points:         points,
		Ring:           ring,
		Teeth:          g.teeth,
		PitchAngle:     g.pitchAngle,
		AlignmentAngle: g.alignAngle,
	}
}

// generateTooth is the single pure implementation behind the structured and
// legacy-map tooth generators.
func generateTooth(module, alphaDeg float64, g gearParams, seg Segmentation) ToothProfile {
	geo := newGeometry(module, alphaDeg, g.normalizeInternal())
	return geo.assemble(seg)
}

// linspace samples n values uniformly over [start, end], both endpoints
// included.
func linspace(start, end float64, n int) []float64 {
	v := make([]float64, n)
	if n == 1 {
		v[0] = start
		return v
	}
	step := (end - start) / float64(n-1)
	for i := range v {
		v[i] = start + float64(i)*step
	}
	return v
}

func mirrorY(pts []r2.Vec) []r2.Vec {
	m := make([]r2.Vec, len(pts))
	for i, p := range pts {
		m[i] = d2.MirrorY(p)
	}
	return m
}
