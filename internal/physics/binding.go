package physics

import "github.com/vovakirdan/polyarcade/internal/geom"

// ForceKind identifies which catalog constructor produced a force.
type ForceKind int

const (
	KindCustom ForceKind = iota
	KindNewtonianGravity
	KindUniformGravity
	KindSpring
	KindDrag
	KindLeash
	KindElasticCollision
	KindDestructiveCollision
	KindHalfDestructiveCollision
	KindCollision
	KindInteraction
)

// String returns a human-readable name for the force kind.
func (k ForceKind) String() string {
	switch k {
	case KindCustom:
		return "custom"
	case KindNewtonianGravity:
		return "newtonian-gravity"
	case KindUniformGravity:
		return "uniform-gravity"
	case KindSpring:
		return "spring"
	case KindDrag:
		return "drag"
	case KindLeash:
		return "leash"
	case KindElasticCollision:
		return "elastic-collision"
	case KindDestructiveCollision:
		return "destructive-collision"
	case KindHalfDestructiveCollision:
		return "half-destructive-collision"
	case KindCollision:
		return "collision"
	case KindInteraction:
		return "interaction"
	default:
		return "unknown"
	}
}

// Binding couples a constant with up to two bodies. Every force generator
// receives its binding on each tick.
type Binding struct {
	Constant float64
	A, B     *Body

	// collided is the edge-trigger latch used by collision dispatch.
	collided bool
}

// Collided reports whether the bound bodies overlapped on the previous
// collision check.
func (b *Binding) Collided() bool { return b.collided }

// Forcer is the per-tick callback of a force generator.
type Forcer func(b *Binding)

// CollisionHandler reacts once when two bodies start overlapping. axis is the
// contact direction reported by FindCollision.
type CollisionHandler func(a, b *Body, axis geom.Vector)

// InteractionHandler is called on every tick with the current collision test
// result, whether or not the bodies overlap.
type InteractionHandler func(a, b *Body, c Collision)

// collisionForcer dispatches handler on the tick the bound bodies start to
// overlap and re-arms once they separate.
func collisionForcer(handler CollisionHandler) Forcer {
	return func(bd *Binding) {
		c := FindCollision(bd.A.shape, bd.B.shape)
		if !c.Collided {
			bd.collided = false
			return
		}
		if bd.collided {
			return
		}
		bd.collided = true
		handler(bd.A, bd.B, c.Axis)
	}
}

// interactionForcer dispatches handler on every tick.
func interactionForcer(handler InteractionHandler) Forcer {
	return func(bd *Binding) {
		c := FindCollision(bd.A.shape, bd.B.shape)
		bd.collided = c.Collided
		handler(bd.A, bd.B, c)
	}
}
