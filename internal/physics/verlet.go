package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// FloorClampMode controls the y = 0 floor used in place of a ground plane.
type FloorClampMode int

const (
	// FloorClampAuto clamps only while no static plane is registered.
	FloorClampAuto FloorClampMode = iota
	FloorClampOn
	FloorClampOff
)

func (m FloorClampMode) String() string {
	switch m {
	case FloorClampOn:
		return "on"
	case FloorClampOff:
		return "off"
	default:
		return "auto"
	}
}

// VerletSolver integrates with velocity Verlet. Accelerations are rebuilt
// from gravity every tick.
type VerletSolver struct {
	FloorClamp bool

	// PlaneContacts moves dynamic spheres that sank into a static plane
	// during the step back onto its surface.
	PlaneContacts bool

	// RestingSpeed is the rebound speed below which a sphere put back on a
	// plane stays on it.
	RestingSpeed float32
}

func NewVerletSolver() *VerletSolver {
	return &VerletSolver{
		FloorClamp:    true,
		PlaneContacts: true,
		RestingSpeed:  DefaultRestingSpeed,
	}
}

func (s *VerletSolver) Step(dt float32, gravity rl.Vector3, entities []Entity) {
	for _, e := range entities {
		e.Body().Acceleration = rl.Vector3Zero()
	}

	for _, e := range entities {
		b := e.Body()
		if b.IsStatic() {
			continue
		}

		// x' = x + v*dt + a*dt^2/2
		pos := e.Position()
		pos = rl.Vector3Add(pos, rl.Vector3Scale(b.Velocity, dt))
		pos = rl.Vector3Add(pos, rl.Vector3Scale(b.Acceleration, 0.5*dt*dt))
		e.SetPosition(pos)

		halfVel := rl.Vector3Add(b.Velocity, rl.Vector3Scale(b.Acceleration, 0.5*dt))
		acc := b.Acceleration
		if b.gravityApplies() {
			acc = rl.Vector3Add(acc, gravity)
		}
		b.Acceleration = acc
		b.Velocity = rl.Vector3Add(halfVel, rl.Vector3Scale(acc, 0.5*dt))
	}

	if s.PlaneContacts {
		s.projectOntoPlanes(gravity, entities)
	}
	if s.FloorClamp {
		s.clampToFloor(entities)
	}
}

// projectOntoPlanes puts spheres moving into a static plane back on its
// surface. The normal speed is first cut to the speed the sphere had when it
// crossed the surface, then reflected with restitution, so the correction
// adds no energy.
func (s *VerletSolver) projectOntoPlanes(gravity rl.Vector3, entities []Entity) {
	for _, p := range entities {
		if p.CollisionShape() != ShapePlane || p.Body().IsDynamic() {
			continue
		}
		plane := p.Shape()
		pull := -rl.Vector3DotProduct(gravity, plane.Normal)

		for _, e := range entities {
			b := e.Body()
			if b.IsStatic() || e.CollisionShape() != ShapeSphere {
				continue
			}
			shape := e.Shape()
			dist := rl.Vector3DotProduct(rl.Vector3Subtract(shape.Position, plane.Position), plane.Normal)
			depth := shape.Radius - dist
			vn := rl.Vector3DotProduct(b.Velocity, plane.Normal)
			if depth <= 0 || vn > 0 {
				continue
			}
			e.SetPosition(rl.Vector3Add(shape.Position, rl.Vector3Scale(plane.Normal, depth)))

			var speed float32
			if sq := vn*vn - 2*pull*depth; sq > 0 {
				speed = math32.Sqrt(sq)
			}
			rebound := speed * math32.Min(b.Restitution, p.Body().Restitution)
			if rebound < s.RestingSpeed {
				rebound = 0
			}
			b.Velocity = rl.Vector3Add(b.Velocity, rl.Vector3Scale(plane.Normal, rebound-vn))
			an := rl.Vector3DotProduct(b.Acceleration, plane.Normal)
			b.Acceleration = rl.Vector3Subtract(b.Acceleration, rl.Vector3Scale(plane.Normal, an))
		}
	}
}

// clampToFloor keeps dynamic spheres above y = 0 by snapping them onto it
// and reflecting their vertical velocity.
func (s *VerletSolver) clampToFloor(entities []Entity) {
	for _, e := range entities {
		b := e.Body()
		if b.IsStatic() || e.CollisionShape() != ShapeSphere {
			continue
		}
		shape := e.Shape()
		pos := e.Position()
		if pos.Y-shape.Radius > 0 || b.Velocity.Y > 0 {
			continue
		}
		b.Acceleration.Y = 0
		b.Velocity.Y = -b.Velocity.Y
		pos.Y = shape.Radius
		e.SetPosition(pos)
	}
}
