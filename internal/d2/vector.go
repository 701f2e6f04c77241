package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Polar returns the point at radius r and angle theta about the origin.
func Polar(r, theta float64) r2.Vec {
	s, c := math.Sincos(theta)
	return r2.Vec{X: r * c, Y: r * s}
}

// Rotate returns v rotated by angle radians about the origin.
func Rotate(v r2.Vec, angle float64) r2.Vec {
	s, c := math.Sincos(angle)
	return r2.Vec{X: c*v.X - s*v.Y, Y: s*v.X + c*v.Y}
}

// MirrorY returns v reflected about the x axis.
func MirrorY(v r2.Vec) r2.Vec { return r2.Vec{X: v.X, Y: -v.Y} }

// EqualWithin returns whether a and b coincide componentwise within tol.
func EqualWithin(a, b r2.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}
