package engine

import "math"

// Vec is a 2D vector in world coordinates.
type Vec struct {
	X, Y float64
}

// Add returns v + u.
func (v Vec) Add(u Vec) Vec {
	return Vec{v.X + u.X, v.Y + u.Y}
}

// Scale returns v scaled by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{v.X * s, v.Y * s}
}

// Rotate rotates v around the origin by the given angle (in radians).
func (v Vec) Rotate(angle float64) Vec {
	sinA := math.Sin(angle)
	cosA := math.Cos(angle)
	return Vec{
		X: v.X*cosA - v.Y*sinA,
		Y: v.X*sinA + v.Y*cosA,
	}
}

// radians converts degrees to radians. Angles are stored in degrees
// throughout and only converted at trigonometric call sites.
func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
