package vmath

import "math"

// TwoPi is a full rotation in radians
const TwoPi = 2 * math.Pi

// Clamp limits x to [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// WrapAngle wraps a radian difference into (-π, π]
func WrapAngle(a float64) float64 {
	for a > math.Pi {
		a -= TwoPi
	}
	for a <= -math.Pi {
		a += TwoPi
	}
	return a
}

// Bearing returns the absolute angle from one point to another
func Bearing(from, to Vector2) float64 {
	return math.Atan2(to.Y-from.Y, to.X-from.X)
}

// DegToRad converts degrees to radians
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// Polar returns the point at angle/distance from origin
func Polar(origin Vector2, angle, dist float64) Vector2 {
	return Vector2{
		X: origin.X + math.Cos(angle)*dist,
		Y: origin.Y + math.Sin(angle)*dist,
	}
}
