package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

const (
	// DefaultImpulseDeadband is the velocity change below which an impulse
	// is dropped instead of applied.
	DefaultImpulseDeadband = 1.0
	// DefaultRestingSpeed is the normal speed below which a dynamic body
	// touching a static one is held in place instead of bounced.
	DefaultRestingSpeed = 1.0
)

// HeckerResponder resolves contacts with linear impulses along the contact
// normal. Rotation and friction are not modeled.
type HeckerResponder struct {
	Deadband     float32
	RestingSpeed float32

	log *zap.Logger
}

func NewHeckerResponder(log *zap.Logger) *HeckerResponder {
	if log == nil {
		log = zap.NewNop()
	}
	return &HeckerResponder{
		Deadband:     DefaultImpulseDeadband,
		RestingSpeed: DefaultRestingSpeed,
		log:          log,
	}
}

// ResolveAll tests every unordered pair of entities.
func (r *HeckerResponder) ResolveAll(entities []Entity) {
	for i := range entities {
		for j := i + 1; j < len(entities); j++ {
			r.resolve(entities[i], entities[j])
		}
	}
}

// ResolvePairs tests only the candidate pairs from a broad phase.
func (r *HeckerResponder) ResolvePairs(pairs []Pair) {
	for _, p := range pairs {
		r.resolve(p.A, p.B)
	}
}

func (r *HeckerResponder) resolve(a, b Entity) {
	ba, bb := a.Body(), b.Body()
	if ba.IsStatic() && bb.IsStatic() {
		return
	}
	if ba.CollidedWith(b.ID()) || bb.CollidedWith(a.ID()) {
		return
	}
	data, ok := CollisionDataFor(a, b)
	if !ok {
		return
	}
	ba.MarkCollided(b.ID())
	bb.MarkCollided(a.ID())

	n := data.Normal()
	switch {
	case ba.IsDynamic() && bb.IsDynamic():
		r.resolveDynamic(a, b, n, data.Depth)
	case ba.IsDynamic():
		r.resolveStatic(a, b, n, data.Depth)
	default:
		r.resolveStatic(b, a, rl.Vector3Negate(n), data.Depth)
	}
}

// resolveDynamic splits the correction evenly and exchanges momentum.
// n points from b toward a.
func (r *HeckerResponder) resolveDynamic(a, b Entity, n rl.Vector3, depth float32) {
	ba, bb := a.Body(), b.Body()

	a.SetPosition(rl.Vector3Add(a.Position(), rl.Vector3Scale(n, depth/2)))
	b.SetPosition(rl.Vector3Subtract(b.Position(), rl.Vector3Scale(n, depth/2)))

	relVel := rl.Vector3Subtract(ba.Velocity, bb.Velocity)
	velAlongNormal := rl.Vector3DotProduct(relVel, n)
	if velAlongNormal > 0 {
		return
	}

	e := math32.Min(ba.Restitution, bb.Restitution)
	j := -(1 + e) * velAlongNormal
	j /= 1/ba.Mass + 1/bb.Mass

	if dv := rl.Vector3Scale(n, j/ba.Mass); rl.Vector3Length(dv) > r.Deadband {
		ba.Velocity = rl.Vector3Add(ba.Velocity, dv)
	}
	if dv := rl.Vector3Scale(n, j/bb.Mass); rl.Vector3Length(dv) > r.Deadband {
		bb.Velocity = rl.Vector3Subtract(bb.Velocity, dv)
	}
}

// resolveStatic moves only the dynamic body. n points from the static
// body toward the dynamic one.
func (r *HeckerResponder) resolveStatic(dyn, static Entity, n rl.Vector3, depth float32) {
	bd, bs := dyn.Body(), static.Body()
	velAlongNormal := rl.Vector3DotProduct(bd.Velocity, n)

	// Slow contact: settle onto the surface and hold there this tick.
	if math32.Abs(velAlongNormal) < r.RestingSpeed {
		dyn.SetPosition(rl.Vector3Add(dyn.Position(), rl.Vector3Scale(n, depth)))
		bd.Velocity = rl.Vector3Subtract(bd.Velocity, rl.Vector3Scale(n, velAlongNormal))
		bd.Acceleration = rl.Vector3Zero()
		bd.setSupported()
		r.log.Debug("resting contact",
			zap.String("entity", dyn.ID()),
			zap.String("on", static.ID()))
		return
	}

	dyn.SetPosition(rl.Vector3Add(dyn.Position(), rl.Vector3Scale(n, depth*2)))
	if velAlongNormal > 0 {
		return
	}

	e := math32.Min(bd.Restitution, bs.Restitution)
	j := -(1 + e) * velAlongNormal * bd.Mass
	if dv := rl.Vector3Scale(n, j/bd.Mass); rl.Vector3Length(dv) > r.Deadband {
		bd.Velocity = rl.Vector3Add(bd.Velocity, dv)
	}
}

// HeckerVerletSolver resolves contacts with a HeckerResponder, using the
// broad phase for candidate pairs when enabled, then integrates with Verlet.
type HeckerVerletSolver struct {
	Responder     *HeckerResponder
	Integrator    *VerletSolver
	BroadPhase    *BroadPhaseCollisionDetector
	UseBroadPhase bool
}

func (s *HeckerVerletSolver) Step(dt float32, gravity rl.Vector3, entities []Entity) {
	if s.UseBroadPhase && s.BroadPhase != nil {
		s.BroadPhase.Update(entities)
		s.Responder.ResolvePairs(s.BroadPhase.PotentialCollisionPairs())
	} else {
		s.Responder.ResolveAll(entities)
	}
	s.Integrator.Step(dt, gravity, entities)
}
