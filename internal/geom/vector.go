// Package geom provides 2D vector algebra and polygon geometry for the physics core.
// Everything here is a pure value computation with no failure modes.
package geom

import "math"

// Vector is a 2D vector with double precision components.
type Vector struct {
	X, Y float64
}

// Zero is the zero vector.
var Zero = Vector{}

// V is shorthand for Vector{X: x, Y: y}.
func V(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

// Negate returns -v.
func (v Vector) Negate() Vector {
	return Vector{X: -v.X, Y: -v.Y}
}

// Scale multiplies the vector by a scalar.
func (v Vector) Scale(factor float64) Vector {
	return Vector{X: v.X * factor, Y: v.Y * factor}
}

// Dot returns the dot product of two vectors.
func (v Vector) Dot(o Vector) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the z component of the 3D cross product of v and o.
func (v Vector) Cross(o Vector) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Rotate rotates the vector counter-clockwise by angle radians about the origin.
func (v Vector) Rotate(angle float64) Vector {
	sin, cos := math.Sincos(angle)
	return Vector{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Len returns the magnitude of the vector.
func (v Vector) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to itself.
func (v Vector) Normalize() Vector {
	l := v.Len()
	if l == 0 {
		return Vector{}
	}
	return Vector{X: v.X / l, Y: v.Y / l}
}

// Distance returns the distance between two points.
func (v Vector) Distance(o Vector) float64 {
	return v.Sub(o).Len()
}

// Perp returns the vector rotated 90° clockwise: (y, -x).
// For a counter-clockwise polygon edge this points outward.
func (v Vector) Perp() Vector {
	return Vector{X: v.Y, Y: -v.X}
}

// FromAngle creates a vector from an angle and magnitude.
func FromAngle(angle, magnitude float64) Vector {
	sin, cos := math.Sincos(angle)
	return Vector{X: magnitude * cos, Y: magnitude * sin}
}
