package components

import (
	"physim/internal/engine"
	"physim/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Rigidbody carries the dynamics settings of a GameObject. Once the object is
// built into a physics entity, Body returns the live state the solver moves.
type Rigidbody struct {
	engine.BaseComponent
	Mass        float32
	Restitution float32 // 0 = no bounce, 1 = perfect bounce
	UseGravity  bool
	IsStatic    bool
	Velocity    rl.Vector3 // initial velocity

	body *physics.Dynamics
}

func NewRigidbody() *Rigidbody {
	return &Rigidbody{
		Mass:        1.0,
		Restitution: 0.5,
		UseGravity:  true,
	}
}

// Body returns the physics body linked by BuildEntity, or nil before that.
func (r *Rigidbody) Body() *physics.Dynamics {
	return r.body
}

// CurrentVelocity reports the simulated velocity once linked and the
// configured initial velocity otherwise.
func (r *Rigidbody) CurrentVelocity() rl.Vector3 {
	if r.body != nil {
		return r.body.Velocity
	}
	return r.Velocity
}

// Kick adds an instantaneous velocity change to the linked body.
func (r *Rigidbody) Kick(dv rl.Vector3) {
	if r.body == nil || r.body.IsStatic() {
		return
	}
	r.body.Velocity = rl.Vector3Add(r.body.Velocity, dv)
}

func (r *Rigidbody) bodyOptions() []physics.BodyOption {
	opts := []physics.BodyOption{
		physics.WithMass(r.Mass),
		physics.WithRestitution(r.Restitution),
		physics.WithVelocity(r.Velocity),
	}
	if !r.UseGravity {
		opts = append(opts, physics.WithoutGravity())
	}
	if r.IsStatic {
		opts = append(opts, physics.Static())
	}
	return opts
}
