package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// DefaultRestingDepth is the penetration below which the Euler solver
// treats a contact as resting and stops both bodies.
const DefaultRestingDepth = 0.01

// Solver advances every entity by one tick. Per-tick flags have already
// been reset by the caller.
type Solver interface {
	Step(dt float32, gravity rl.Vector3, entities []Entity)
}

// EulerSolver is the naive strategy: explicit Euler integration with
// axis-wise velocity reflection on contact.
type EulerSolver struct {
	RestingDepth float32
}

func NewEulerSolver() *EulerSolver {
	return &EulerSolver{RestingDepth: DefaultRestingDepth}
}

func (s *EulerSolver) Step(dt float32, gravity rl.Vector3, entities []Entity) {
	s.applyGravity(dt, gravity, entities)
	s.resolveCollisions(entities)
	s.moveObjects(dt, entities)
}

func (s *EulerSolver) applyGravity(dt float32, gravity rl.Vector3, entities []Entity) {
	step := rl.Vector3Scale(gravity, dt)
	for _, e := range entities {
		b := e.Body()
		if !b.gravityApplies() {
			continue
		}
		b.Velocity = rl.Vector3Add(b.Velocity, step)
	}
}

// resolveCollisions visits every ordered pair once; a pair resolved as
// (i, j) is skipped when it comes around as (j, i).
func (s *EulerSolver) resolveCollisions(entities []Entity) {
	for i, a := range entities {
		for j, b := range entities {
			if i == j || b.Body().CollidedWith(a.ID()) {
				continue
			}
			data, ok := CollisionDataFor(a, b)
			if !ok {
				continue
			}
			a.Body().MarkCollided(b.ID())
			b.Body().MarkCollided(a.ID())
			s.respond(a, b, data)
		}
	}
}

func (s *EulerSolver) respond(a, b Entity, data CollisionData) {
	ba, bb := a.Body(), b.Body()
	if ba.IsStatic() && bb.IsStatic() {
		return
	}

	// Shallow contact: stop both bodies.
	if math32.Abs(data.Depth) < s.RestingDepth {
		ba.Velocity = rl.Vector3Zero()
		bb.Velocity = rl.Vector3Zero()
		return
	}

	pen := data.PenetrationVector()
	switch {
	case ba.IsDynamic() && bb.IsDynamic():
		e := math32.Min(ba.Restitution, bb.Restitution)
		a.SetPosition(rl.Vector3Add(a.Position(), pen))
		b.SetPosition(rl.Vector3Subtract(b.Position(), pen))
		ba.Velocity = rl.Vector3Scale(rl.Vector3Add(ba.Velocity, data.Vector), e)
		bb.Velocity = rl.Vector3Scale(rl.Vector3Subtract(bb.Velocity, data.Vector), e)
	case ba.IsDynamic():
		a.SetPosition(rl.Vector3Add(a.Position(), rl.Vector3Scale(pen, 2)))
		ba.Velocity = reflectAxes(ba.Velocity, data.Vector)
	default:
		b.SetPosition(rl.Vector3Subtract(b.Position(), rl.Vector3Scale(pen, 2)))
		bb.Velocity = reflectAxes(bb.Velocity, data.Vector)
	}
}

// reflectAxes zeroes each velocity component whose collision vector
// component is zero and negates the others.
func reflectAxes(v, collision rl.Vector3) rl.Vector3 {
	axis := func(vc, cc float32) float32 {
		if cc == 0 {
			return 0
		}
		return -vc
	}
	return rl.Vector3{
		X: axis(v.X, collision.X),
		Y: axis(v.Y, collision.Y),
		Z: axis(v.Z, collision.Z),
	}
}

func (s *EulerSolver) moveObjects(dt float32, entities []Entity) {
	for _, e := range entities {
		b := e.Body()
		if b.IsStatic() {
			continue
		}
		e.SetPosition(rl.Vector3Add(e.Position(), rl.Vector3Scale(b.Velocity, dt)))
	}
}
