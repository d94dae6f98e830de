package physics

import (
	"fmt"

	"github.com/vovakirdan/polyarcade/internal/geom"
)

const (
	// MinGravityDistance is the centroid separation below which Newtonian
	// gravity is switched off.
	MinGravityDistance = 5.0

	// LeashDrag is the drag coefficient applied to both ends of a leash
	// while it pulls.
	LeashDrag = 200.0
)

// NewtonianGravity attracts a and b with G·ma·mb/r² along the line between
// their centroids.
func (s *Scene) NewtonianGravity(G float64, a, b *Body) ForceID {
	bd := &Binding{Constant: G, A: a, B: b}
	return s.AddForce(KindNewtonianGravity, newtonianGravity, bd, []*Body{a, b}, nil)
}

func newtonianGravity(bd *Binding) {
	delta := bd.B.centroid.Sub(bd.A.centroid)
	r := delta.Len()
	if r < MinGravityDistance {
		return
	}
	f := delta.Scale(bd.Constant * bd.A.mass * bd.B.mass / (r * r * r))
	bd.A.AddForce(f)
	bd.B.AddForce(f.Negate())
}

// UniformGravity pulls a downward with g·mass. The force is skipped on any
// tick where a overlaps one of the ground bodies. Ground bodies that have
// been removed are ignored.
func (s *Scene) UniformGravity(g float64, a *Body, ground []*Body) ForceID {
	ground = append([]*Body(nil), ground...)
	bd := &Binding{Constant: g, A: a}
	forcer := func(bd *Binding) {
		if overlapsAny(bd.A, ground) {
			return
		}
		bd.A.AddForce(geom.V(0, -bd.Constant*bd.A.mass))
	}
	return s.AddForce(KindUniformGravity, forcer, bd, []*Body{a}, nil)
}

// Spring pulls a and b toward each other with a force proportional to their
// separation. The rest length is zero.
func (s *Scene) Spring(k float64, a, b *Body) ForceID {
	bd := &Binding{Constant: k, A: a, B: b}
	return s.AddForce(KindSpring, spring, bd, []*Body{a, b}, nil)
}

func spring(bd *Binding) {
	f := bd.B.centroid.Sub(bd.A.centroid).Scale(bd.Constant)
	bd.A.AddForce(f)
	bd.B.AddForce(f.Negate())
}

// Drag opposes the velocity of a with a force of gamma·v.
func (s *Scene) Drag(gamma float64, a *Body) ForceID {
	bd := &Binding{Constant: gamma, A: a}
	return s.AddForce(KindDrag, drag, bd, []*Body{a}, nil)
}

func drag(bd *Binding) {
	bd.A.AddForce(bd.A.velocity.Scale(-bd.Constant))
}

// Leash is a spring between a and b that also damps both ends with LeashDrag.
// It is inactive on any tick where a touches an obstacle, or where b is
// movable and touches one.
func (s *Scene) Leash(k float64, a, b *Body, obstacles []*Body) ForceID {
	obstacles = append([]*Body(nil), obstacles...)
	bd := &Binding{Constant: k, A: a, B: b}
	forcer := func(bd *Binding) {
		if overlapsAny(bd.A, obstacles) {
			return
		}
		if !bd.B.Immovable() && overlapsAny(bd.B, obstacles) {
			return
		}
		spring(bd)
		bd.A.AddForce(bd.A.velocity.Scale(-LeashDrag))
		bd.B.AddForce(bd.B.velocity.Scale(-LeashDrag))
	}
	return s.AddForce(KindLeash, forcer, bd, []*Body{a, b}, nil)
}

// ElasticCollision applies equal and opposite impulses along the contact
// axis when a and b start overlapping. e is the restitution coefficient. It
// panics if both bodies are immovable.
func (s *Scene) ElasticCollision(e float64, a, b *Body) ForceID {
	if a.Immovable() && b.Immovable() {
		panic("physics: elastic collision between two immovable bodies")
	}
	bd := &Binding{Constant: e, A: a, B: b}
	handler := func(a, b *Body, axis geom.Vector) {
		elasticImpulse(e, a, b, axis)
	}
	return s.AddForce(KindElasticCollision, collisionForcer(handler), bd, []*Body{a, b}, nil)
}

func elasticImpulse(e float64, a, b *Body, axis geom.Vector) {
	u1 := axis.Dot(a.velocity)
	u2 := axis.Dot(b.velocity)

	var reduced float64
	switch {
	case a.Immovable():
		reduced = b.mass
	case b.Immovable():
		reduced = a.mass
	default:
		reduced = a.mass * b.mass / (a.mass + b.mass)
	}

	j := axis.Scale(reduced * (1 + e) * (u2 - u1))
	a.AddImpulse(j)
	b.AddImpulse(j.Negate())
}

// DestructiveCollision removes both bodies when they start overlapping.
func (s *Scene) DestructiveCollision(a, b *Body) ForceID {
	handler := func(a, b *Body, _ geom.Vector) {
		a.Remove()
		b.Remove()
	}
	bd := &Binding{A: a, B: b}
	return s.AddForce(KindDestructiveCollision, collisionForcer(handler), bd, []*Body{a, b}, nil)
}

// HalfDestructiveCollision removes b when the bodies start overlapping.
func (s *Scene) HalfDestructiveCollision(a, b *Body) ForceID {
	handler := func(_, b *Body, _ geom.Vector) {
		b.Remove()
	}
	bd := &Binding{A: a, B: b}
	return s.AddForce(KindHalfDestructiveCollision, collisionForcer(handler), bd, []*Body{a, b}, nil)
}

// Collision calls handler once each time a and b start overlapping. release,
// if non-nil, runs when the generator is dropped.
func (s *Scene) Collision(a, b *Body, handler CollisionHandler, release func()) ForceID {
	if handler == nil {
		panic(fmt.Sprintf("physics: nil collision handler for %s", KindCollision))
	}
	bd := &Binding{A: a, B: b}
	return s.AddForce(KindCollision, collisionForcer(handler), bd, []*Body{a, b}, release)
}

// Interaction calls handler on every tick with the current collision test
// result for a and b, whether or not they overlap.
func (s *Scene) Interaction(a, b *Body, handler InteractionHandler, release func()) ForceID {
	if handler == nil {
		panic(fmt.Sprintf("physics: nil interaction handler for %s", KindInteraction))
	}
	bd := &Binding{A: a, B: b}
	return s.AddForce(KindInteraction, interactionForcer(handler), bd, []*Body{a, b}, release)
}

// Overlaps reports whether the shapes of a and b currently intersect.
func Overlaps(a, b *Body) bool {
	return FindCollision(a.shape, b.shape).Collided
}

func overlapsAny(a *Body, others []*Body) bool {
	for _, o := range others {
		if o == a || o.removed {
			continue
		}
		if Overlaps(a, o) {
			return true
		}
	}
	return false
}

// Kinetic returns the translational kinetic energy of the given bodies,
// skipping immovable ones.
func Kinetic(bodies []*Body) float64 {
	total := 0.0
	for _, b := range bodies {
		if b.Immovable() {
			continue
		}
		v := b.velocity.Len()
		total += 0.5 * b.mass * v * v
	}
	return total
}
