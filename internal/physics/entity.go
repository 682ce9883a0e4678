package physics

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	ErrNilEntity     = errors.New("physics: nil entity")
	ErrInvalidMass   = errors.New("physics: dynamic body needs positive mass")
	ErrInvalidRadius = errors.New("physics: sphere radius must be positive")
	ErrInvalidNormal = errors.New("physics: plane normal must be non-zero")
	ErrDuplicateID   = errors.New("physics: duplicate entity id")
)

// CollisionShape tags which narrow-phase test applies to an entity.
// An entity's shape never changes after construction.
type CollisionShape int

const (
	ShapeSphere CollisionShape = iota
	ShapePlane
)

func (s CollisionShape) String() string {
	switch s {
	case ShapeSphere:
		return "Sphere"
	case ShapePlane:
		return "Plane"
	default:
		return "Unknown"
	}
}

// Anchor owns the world-space position of an entity. Scene nodes implement it;
// the physics core only reads and writes positions through it.
type Anchor interface {
	Position() rl.Vector3
	SetPosition(p rl.Vector3)
}

// Point is a free-standing Anchor for entities not attached to a scene node.
type Point struct {
	P rl.Vector3
}

func NewPoint(p rl.Vector3) *Point {
	return &Point{P: p}
}

func (p *Point) Position() rl.Vector3 { return p.P }

func (p *Point) SetPosition(v rl.Vector3) { p.P = v }

// Entity is the capability every simulated body exposes.
//
//go:generate go tool mockgen -destination=./mocks/entity_mock.go -package=mocks . Entity
type Entity interface {
	ID() string
	CollisionShape() CollisionShape
	// Shape returns the tagged shape at the entity's current pose.
	Shape() Shape
	Position() rl.Vector3
	SetPosition(p rl.Vector3)
	AABB() AABB
	Body() *Dynamics
	// Reset clears the per-tick collision bookkeeping.
	Reset()
}

// Dynamics holds the dynamics state shared by every shape.
type Dynamics struct {
	Mass         float32
	Velocity     rl.Vector3
	Acceleration rl.Vector3
	Restitution  float32 // 0 = no bounce, 1 = perfect bounce
	Static       bool
	ApplyGravity bool

	collidedWith map[string]bool
	supported    bool
}

func newDynamics() Dynamics {
	return Dynamics{
		Mass:         1.0,
		Restitution:  0.5,
		ApplyGravity: true,
		collidedWith: make(map[string]bool),
	}
}

func (b *Dynamics) Body() *Dynamics { return b }

func (b *Dynamics) IsStatic() bool { return b.Static }

func (b *Dynamics) IsDynamic() bool { return !b.Static }

// CollidedWith reports whether the pair with id was already resolved this tick.
func (b *Dynamics) CollidedWith(id string) bool {
	return b.collidedWith[id]
}

func (b *Dynamics) MarkCollided(id string) {
	if b.collidedWith == nil {
		b.collidedWith = make(map[string]bool)
	}
	b.collidedWith[id] = true
}

// Supported reports whether a resting contact holds the body up this tick.
// Integrators skip gravity for supported bodies.
func (b *Dynamics) Supported() bool { return b.supported }

func (b *Dynamics) setSupported() { b.supported = true }

// Reset clears per-tick bookkeeping. Called once per tick before any
// collision processing, for static and dynamic bodies alike.
func (b *Dynamics) Reset() {
	clear(b.collidedWith)
	b.supported = false
}

// gravityApplies reports whether the integrators should accelerate the body this tick.
func (b *Dynamics) gravityApplies() bool {
	return !b.Static && b.ApplyGravity && !b.supported
}

// BodyOption configures the Dynamics of a body at construction.
type BodyOption func(*Dynamics)

func WithMass(m float32) BodyOption {
	return func(b *Dynamics) { b.Mass = m }
}

func WithVelocity(v rl.Vector3) BodyOption {
	return func(b *Dynamics) { b.Velocity = v }
}

func WithRestitution(e float32) BodyOption {
	return func(b *Dynamics) { b.Restitution = e }
}

// Static marks the body immovable.
func Static() BodyOption {
	return func(b *Dynamics) { b.Static = true }
}

func WithoutGravity() BodyOption {
	return func(b *Dynamics) { b.ApplyGravity = false }
}

// Validate checks the preconditions the solvers rely on: positive mass on
// dynamic bodies and a non-degenerate shape. Nil *Sphere and *Plane values
// are reported as ErrNilEntity; other implementations must not be passed
// as typed nils.
func Validate(e Entity) error {
	switch v := e.(type) {
	case nil:
		return ErrNilEntity
	case *Sphere:
		if v == nil {
			return ErrNilEntity
		}
	case *Plane:
		if v == nil {
			return ErrNilEntity
		}
	}
	if e.Body() == nil {
		return ErrNilEntity
	}
	b := e.Body()
	if b.IsDynamic() && b.Mass <= 0 {
		return ErrInvalidMass
	}
	s := e.Shape()
	switch s.Kind {
	case ShapeSphere:
		if s.Radius <= 0 {
			return ErrInvalidRadius
		}
	case ShapePlane:
		if rl.Vector3Length(s.Normal) < normalEpsilon {
			return ErrInvalidNormal
		}
	}
	return nil
}
