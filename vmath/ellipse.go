package vmath

import "math"

// EllipsePoint returns the point on an axis-aligned ellipse at parametric angle phase
// rx and ry are the horizontal and vertical radii
func EllipsePoint(center Vector2, rx, ry, phase float64) Vector2 {
	return Vector2{
		X: center.X + math.Cos(phase)*rx,
		Y: center.Y + math.Sin(phase)*ry,
	}
}

// EllipseContains returns true if p lies inside or on the ellipse boundary
func EllipseContains(center Vector2, rx, ry float64, p Vector2) bool {
	if rx <= 0 || ry <= 0 {
		return false
	}
	dx := (p.X - center.X) / rx
	dy := (p.Y - center.Y) / ry
	return dx*dx+dy*dy <= 1
}
