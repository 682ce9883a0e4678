package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

var _ Entity = (*Sphere)(nil)

// Sphere is a body with a spherical collision volume.
type Sphere struct {
	Dynamics
	id     string
	radius float32
	anchor Anchor
}

// NewSphere creates a sphere body whose position lives in anchor.
// A nil anchor gets a free-standing Point at the origin.
func NewSphere(id string, radius float32, anchor Anchor, opts ...BodyOption) (*Sphere, error) {
	if anchor == nil {
		anchor = NewPoint(rl.Vector3Zero())
	}
	s := &Sphere{
		Dynamics: newDynamics(),
		id:       id,
		radius:   radius,
		anchor:   anchor,
	}
	for _, opt := range opts {
		opt(&s.Dynamics)
	}
	if err := Validate(s); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Sphere) ID() string { return s.id }

func (s *Sphere) CollisionShape() CollisionShape { return ShapeSphere }

func (s *Sphere) Radius() float32 { return s.radius }

func (s *Sphere) Position() rl.Vector3 { return s.anchor.Position() }

func (s *Sphere) SetPosition(p rl.Vector3) { s.anchor.SetPosition(p) }

func (s *Sphere) Shape() Shape {
	return Shape{Kind: ShapeSphere, Position: s.Position(), Radius: s.radius}
}

// AABB is the cube of side 2*radius centered on the sphere.
func (s *Sphere) AABB() AABB {
	return NewAABBFromRadius(s.Position(), s.radius)
}
