// Package render turns tooth profiles produced by the gears package into
// full gear outlines and writes preview and CAD outputs (PNG, DXF, STL).
package render

import (
	"math"

	"github.com/soypat/gears"
	"github.com/soypat/gears/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

const pi = math.Pi

// MeshRotation returns the initial rotation π + π/teeth that brings the
// driven gear of a pair into mesh with the driver before replication.
func MeshRotation(teeth int) float64 { return pi + pi/float64(teeth) }

// Teeth returns one closed polyline per tooth: the profile rotated by its
// alignment angle plus phase, replicated by the pitch angle and translated
// by offset. phase is 0 for a driver gear and MeshRotation(z) for the
// driven gear of a pair.
func Teeth(t gears.ToothProfile, phase float64, offset r2.Vec) [][]r2.Vec {
	base := rotateAll(t.Points, t.AlignmentAngle+phase)
	teeth := make([][]r2.Vec, t.Teeth)
	for i := range teeth {
		teeth[i] = translateAll(rotateAll(base, t.PitchAngle*float64(i)), offset)
	}
	return teeth
}

// Outline returns the single closed outline of the whole gear. The last
// vertex connects back to the first; the closing point is not repeated.
func Outline(t gears.ToothProfile, phase float64, offset r2.Vec) []r2.Vec {
	ring := rotateAll(t.Ring, t.AlignmentAngle+phase)
	pts := make([]r2.Vec, 0, t.Teeth*(len(ring)-1))
	for i := 0; i < t.Teeth; i++ {
		rep := rotateAll(ring, t.PitchAngle*float64(i))
		if i > 0 {
			// Consecutive replicas share their seam vertex.
			rep = rep[1:]
		}
		pts = append(pts, rep...)
	}
	// The final replica ends where the first began.
	return translateAll(pts[:len(pts)-1], offset)
}

// PairTeeth returns the per-tooth polylines of both gears of a result,
// gear 1 at offset and gear 2 across the center distance along +x, rotated
// into mesh.
func PairTeeth(res *gears.PairResult, offset r2.Vec) (gear1, gear2 [][]r2.Vec) {
	gear1 = Teeth(res.Gear1.ToothProfile, 0, offset)
	offset2 := r2.Add(offset, r2.Vec{X: res.Analysis.CenterDistance})
	gear2 = Teeth(res.Gear2.ToothProfile, MeshRotation(res.Gear2.Teeth), offset2)
	return gear1, gear2
}

func rotateAll(pts []r2.Vec, angle float64) []r2.Vec {
	out := make([]r2.Vec, len(pts))
	for i, p := range pts {
		out[i] = d2.Rotate(p, angle)
	}
	return out
}

func translateAll(pts []r2.Vec, offset r2.Vec) []r2.Vec {
	out := make([]r2.Vec, len(pts))
	for i, p := range pts {
		out[i] = r2.Add(p, offset)
	}
	return out
}
