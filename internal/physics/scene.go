package physics

import "fmt"

// BodyID is a generation-checked handle to a body owned by a Scene. Handles
// stay valid while other bodies come and go; a handle to a pruned body never
// resolves again, even after its slot is reused. The zero value is invalid.
type BodyID uint64

func makeBodyID(index, gen uint32) BodyID {
	return BodyID(uint64(gen)<<32 | uint64(index))
}

func (id BodyID) split() (index, gen uint32) {
	return uint32(id), uint32(id >> 32)
}

// ForceID identifies a registered force generator. IDs are never reused
// within a Scene. The zero value is invalid.
type ForceID uint64

// Force is a registered force generator.
type Force struct {
	id      ForceID
	kind    ForceKind
	forcer  Forcer
	binding *Binding
	bodies  []*Body
	release func()
	removed bool
}

func (f *Force) ID() ForceID       { return f.id }
func (f *Force) Kind() ForceKind   { return f.kind }
func (f *Force) Binding() *Binding { return f.binding }
func (f *Force) Bodies() []*Body   { return append([]*Body(nil), f.bodies...) }

// dependsOnRemoved reports whether any body the force was registered with has
// been marked removed.
func (f *Force) dependsOnRemoved() bool {
	for _, b := range f.bodies {
		if b.removed {
			return true
		}
	}
	return false
}

func (f *Force) destroy() {
	if f.release != nil {
		f.release()
		f.release = nil
	}
}

type slot struct {
	body *Body
	gen  uint32
}

// Scene owns an ordered set of bodies and force generators. Bodies keep
// insertion order; generators run in registration order.
type Scene struct {
	bodies []*Body
	forces []*Force

	slots []slot
	free  []uint32

	nextForce ForceID
	ticking   bool
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{}
}

// AddBody takes ownership of b and returns its handle. It panics if b already
// belongs to a scene.
func (s *Scene) AddBody(b *Body) BodyID {
	if b.id != 0 {
		panic("physics: body already belongs to a scene")
	}

	var idx uint32
	if n := len(s.free); n > 0 {
		idx = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		idx = uint32(len(s.slots))
		s.slots = append(s.slots, slot{})
	}
	sl := &s.slots[idx]
	sl.gen++
	sl.body = b

	b.id = makeBodyID(idx, sl.gen)
	s.bodies = append(s.bodies, b)
	return b.id
}

// Len returns the number of bodies, including ones marked removed but not
// yet pruned.
func (s *Scene) Len() int { return len(s.bodies) }

// BodyAt returns the body at index i in insertion order. It panics if i is
// out of range.
func (s *Scene) BodyAt(i int) *Body {
	if i < 0 || i >= len(s.bodies) {
		panic(fmt.Sprintf("physics: body index %d out of range [0, %d)", i, len(s.bodies)))
	}
	return s.bodies[i]
}

// Bodies returns a snapshot of the body list.
func (s *Scene) Bodies() []*Body {
	return append([]*Body(nil), s.bodies...)
}

// Body resolves a handle. It returns false once the body has been pruned.
func (s *Scene) Body(id BodyID) (*Body, bool) {
	idx, gen := id.split()
	if gen == 0 || int(idx) >= len(s.slots) {
		return nil, false
	}
	sl := s.slots[idx]
	if sl.gen != gen || sl.body == nil {
		return nil, false
	}
	return sl.body, true
}

// IndexOf returns the current index of b, or -1.
func (s *Scene) IndexOf(b *Body) int {
	for i, o := range s.bodies {
		if o == b {
			return i
		}
	}
	return -1
}

// RemoveBodyAt marks the body at index i as removed.
func (s *Scene) RemoveBodyAt(i int) {
	s.BodyAt(i).Remove()
}

// Find returns the first body for which match returns true.
func (s *Scene) Find(match func(*Body) bool) (*Body, bool) {
	for _, b := range s.bodies {
		if match(b) {
			return b, true
		}
	}
	return nil, false
}

// AddForce registers a force generator. The generator is dropped, and release
// called, as soon as any body in bodies is seen removed. binding may be nil.
func (s *Scene) AddForce(kind ForceKind, forcer Forcer, binding *Binding, bodies []*Body, release func()) ForceID {
	if forcer == nil {
		panic("physics: nil forcer")
	}
	if binding == nil {
		binding = &Binding{}
	}
	s.nextForce++
	s.forces = append(s.forces, &Force{
		id:      s.nextForce,
		kind:    kind,
		forcer:  forcer,
		binding: binding,
		bodies:  append([]*Body(nil), bodies...),
		release: release,
	})
	return s.nextForce
}

// Forces returns a snapshot of the live force generators.
func (s *Scene) Forces() []*Force {
	out := make([]*Force, 0, len(s.forces))
	for _, f := range s.forces {
		if !f.removed {
			out = append(out, f)
		}
	}
	return out
}

// ForceCount returns the number of live force generators.
func (s *Scene) ForceCount() int {
	n := 0
	for _, f := range s.forces {
		if !f.removed {
			n++
		}
	}
	return n
}

// Force looks up a live generator by id.
func (s *Scene) Force(id ForceID) (*Force, bool) {
	for _, f := range s.forces {
		if f.id == id && !f.removed {
			return f, true
		}
	}
	return nil, false
}

// RemoveForce unregisters a generator and reports whether it was live. When
// called from inside Tick the generator stops running immediately and is
// released during the pruning step.
func (s *Scene) RemoveForce(id ForceID) bool {
	f, ok := s.Force(id)
	if !ok {
		return false
	}
	f.removed = true
	if !s.ticking {
		s.pruneForces()
	}
	return true
}

// Tick advances the scene by dt: every generator runs, generators bound to a
// removed body are dropped, every body is integrated and removed bodies are
// destroyed. Generators registered during the tick run in the same tick.
func (s *Scene) Tick(dt float64) {
	s.runForces()
	s.pruneForces()

	for _, b := range s.bodies {
		b.Tick(dt)
	}
	s.pruneBodies()
}

// TickOnly integrates the bodies accepted by keep and nothing else. No
// generator runs and nothing is pruned. It implements a paused world in which
// a few bodies keep animating.
func (s *Scene) TickOnly(dt float64, keep func(*Body) bool) {
	for _, b := range s.bodies {
		if keep(b) {
			b.Tick(dt)
		}
	}
}

// Close destroys every body and generator, running all release functions.
// The scene is empty afterwards and may be reused.
func (s *Scene) Close() {
	for _, f := range s.forces {
		f.destroy()
	}
	for _, b := range s.bodies {
		b.destroy()
	}
	s.forces = nil
	s.bodies = nil
	for i := range s.slots {
		if s.slots[i].body != nil {
			s.slots[i].body = nil
			s.free = append(s.free, uint32(i))
		}
	}
}

// runForces calls every live generator. ticking is cleared even if a
// handler panics.
func (s *Scene) runForces() {
	s.ticking = true
	defer func() { s.ticking = false }()
	for i := 0; i < len(s.forces); i++ {
		f := s.forces[i]
		if f.removed {
			continue
		}
		f.forcer(f.binding)
	}
}

func (s *Scene) pruneForces() {
	kept := s.forces[:0]
	for _, f := range s.forces {
		if f.removed || f.dependsOnRemoved() {
			f.removed = true
			f.destroy()
			continue
		}
		kept = append(kept, f)
	}
	for i := len(kept); i < len(s.forces); i++ {
		s.forces[i] = nil
	}
	s.forces = kept
}

func (s *Scene) pruneBodies() {
	kept := s.bodies[:0]
	for _, b := range s.bodies {
		if !b.removed {
			kept = append(kept, b)
			continue
		}
		idx, _ := b.id.split()
		s.slots[idx].body = nil
		s.free = append(s.free, idx)
		b.destroy()
	}
	for i := len(kept); i < len(s.bodies); i++ {
		s.bodies[i] = nil
	}
	s.bodies = kept
}
