// Package physics implements a small 2D rigid-body simulation: bodies made of
// convex polygons, a Separating Axis collision test, a catalog of force
// generators and a Scene that runs them on a fixed timestep.
//
// A Scene is single-threaded. Every Tick runs to completion before returning
// and nothing in this package starts goroutines.
package physics

import (
	"fmt"
	"math"

	"github.com/vovakirdan/polyarcade/internal/core"
	"github.com/vovakirdan/polyarcade/internal/geom"
)

// Infinite is the mass of an immovable body. Forces and impulses applied to
// such a body never change its velocity, although the velocity may still be
// set directly (moving walls, paddles).
var Infinite = math.Inf(1)

// DefaultElasticity is the restitution coefficient of a newly built body.
const DefaultElasticity = 1.0

// ReleaseFunc is called exactly once with the body payload when the owning
// scene destroys the body.
type ReleaseFunc func(payload any)

// Body is a rigid polygon with mass, velocity and per-tick accumulators.
type Body struct {
	id BodyID

	shape    geom.Polygon
	centroid geom.Vector
	velocity geom.Vector
	force    geom.Vector
	impulse  geom.Vector

	mass       float64
	color      core.Color
	elasticity float64

	rotation        float64
	passiveRotation float64

	payload    any
	hasPayload bool
	release    ReleaseFunc
	released   bool

	removed bool
}

// NewBody builds a body from shape, which is copied. It panics when mass is
// not strictly positive or when the shape is degenerate.
func NewBody(shape geom.Polygon, mass float64, color core.Color) *Body {
	if math.IsNaN(mass) || mass <= 0 {
		panic(fmt.Sprintf("physics: body mass must be positive, got %v", mass))
	}
	if len(shape) < 3 {
		panic(fmt.Sprintf("physics: body shape needs at least 3 vertices, got %d", len(shape)))
	}
	if shape.Area() == 0 {
		panic("physics: body shape encloses zero area")
	}

	s := shape.Clone()
	return &Body{
		shape:      s,
		centroid:   s.Centroid(),
		mass:       mass,
		color:      color,
		elasticity: DefaultElasticity,
	}
}

// NewBodyWithPayload builds a body carrying an opaque payload. release may be
// nil; when set it runs once when the body is destroyed.
func NewBodyWithPayload(shape geom.Polygon, mass float64, color core.Color, payload any, release ReleaseFunc) *Body {
	b := NewBody(shape, mass, color)
	b.payload = payload
	b.hasPayload = true
	b.release = release
	return b
}

// ID returns the scene handle of the body, or the zero BodyID if the body
// has not been added to a scene.
func (b *Body) ID() BodyID { return b.id }

// Shape returns a copy of the body's polygon.
func (b *Body) Shape() geom.Polygon { return b.shape.Clone() }

// Centroid returns the body's center of mass.
func (b *Body) Centroid() geom.Vector { return b.centroid }

// Velocity returns the body's linear velocity.
func (b *Body) Velocity() geom.Vector { return b.velocity }

// Mass returns the body's mass, possibly Infinite.
func (b *Body) Mass() float64 { return b.mass }

// Immovable reports whether the body has infinite mass.
func (b *Body) Immovable() bool { return math.IsInf(b.mass, 1) }

func (b *Body) Color() core.Color            { return b.color }
func (b *Body) SetColor(c core.Color)        { b.color = c }
func (b *Body) Elasticity() float64          { return b.elasticity }
func (b *Body) SetElasticity(e float64)      { b.elasticity = e }
func (b *Body) Rotation() float64            { return b.rotation }
func (b *Body) PassiveRotation() float64     { return b.passiveRotation }
func (b *Body) SetPassiveRotation(w float64) { b.passiveRotation = w }
func (b *Body) SetVelocity(v geom.Vector)    { b.velocity = v }

// HasPayload reports whether the body was built with a payload.
func (b *Body) HasPayload() bool { return b.hasPayload }

// Payload returns the body's payload. It panics if the body has none.
func (b *Body) Payload() any {
	if !b.hasPayload {
		panic("physics: body has no payload")
	}
	return b.payload
}

// SetCentroid moves the body so its centroid lands on pos.
func (b *Body) SetCentroid(pos geom.Vector) {
	b.shape.Translate(pos.Sub(b.centroid))
	b.centroid = pos
}

// SetRotation rotates the body about its centroid to the absolute angle.
func (b *Body) SetRotation(angle float64) {
	b.shape.Rotate(angle-b.rotation, b.centroid)
	b.rotation = angle
}

// AddForce accumulates a force for the next Tick.
func (b *Body) AddForce(f geom.Vector) { b.force = b.force.Add(f) }

// AddImpulse accumulates an impulse for the next Tick.
func (b *Body) AddImpulse(j geom.Vector) { b.impulse = b.impulse.Add(j) }

// Tick integrates the body over dt using the average of the old and new
// velocity, then clears both accumulators.
func (b *Body) Tick(dt float64) {
	next := b.velocity
	if !b.Immovable() {
		next = next.
			Add(b.force.Scale(dt / b.mass)).
			Add(b.impulse.Scale(1 / b.mass))
	}
	avg := b.velocity.Add(next).Scale(0.5)

	b.velocity = next
	b.SetCentroid(b.centroid.Add(avg.Scale(dt)))
	if b.passiveRotation != 0 {
		b.SetRotation(b.rotation + b.passiveRotation*dt)
	}

	b.force = geom.Zero
	b.impulse = geom.Zero
}

// Remove marks the body for removal. The owning scene drops it on its next
// Tick.
func (b *Body) Remove() { b.removed = true }

// IsRemoved reports whether Remove has been called.
func (b *Body) IsRemoved() bool { return b.removed }

func (b *Body) destroy() {
	if b.released {
		return
	}
	b.released = true
	if b.release != nil {
		b.release(b.payload)
	}
}
