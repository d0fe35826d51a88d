package vmath

import "math"

// Vector2 is a 2D point or direction in arena units
// Value type: copies are independent, owners mutate their own fields in place
type Vector2 struct {
	X, Y float64
}

// Vec returns a Vector2 from components
func Vec(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns v + o
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by factor
func (v Vector2) Scale(factor float64) Vector2 {
	return Vector2{X: v.X * factor, Y: v.Y * factor}
}

// IsZero reports whether both components are exactly zero
func (v Vector2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Length returns the Euclidean magnitude
func (v Vector2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// DistanceTo returns straight-line distance between two points
func (v Vector2) DistanceTo(o Vector2) float64 {
	dx := v.X - o.X
	dy := v.Y - o.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Normalize returns unit vector, zero-safe
func (v Vector2) Normalize() Vector2 {
	l := v.Length()
	if l == 0 {
		return Vector2{}
	}
	return Vector2{X: v.X / l, Y: v.Y / l}
}

// Angle returns atan2(y, x) in radians, 0 = +X axis
func (v Vector2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Clamp limits each component to the given inclusive box
func (v Vector2) Clamp(minX, minY, maxX, maxY float64) Vector2 {
	return Vector2{
		X: Clamp(v.X, minX, maxX),
		Y: Clamp(v.Y, minY, maxY),
	}
}

// StepToward moves from v toward target by step, unless already within stopDist
// Returns v unchanged when within stopDist (prevents jitter at the target)
func (v Vector2) StepToward(target Vector2, step, stopDist float64) Vector2 {
	d := target.Sub(v)
	dist := d.Length()
	if dist <= stopDist {
		return v
	}
	return Vector2{
		X: v.X + d.X/dist*step,
		Y: v.Y + d.Y/dist*step,
	}
}
