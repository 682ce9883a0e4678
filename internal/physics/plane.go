package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Broad-phase stand-in for an infinite plane: a slab this wide in-plane
// and this thick along the normal axis, measured from the plane position.
const (
	planeExtent    = 10000.0
	planeThickness = 1.0
)

var _ Entity = (*Plane)(nil)

// Plane is an infinite plane through its anchor position. Planes are
// always static.
type Plane struct {
	Dynamics
	id     string
	normal rl.Vector3
	anchor Anchor
}

// NewPlane creates a static plane. The normal is normalized; a ground
// plane uses world up (0, 1, 0).
func NewPlane(id string, normal rl.Vector3, anchor Anchor, opts ...BodyOption) (*Plane, error) {
	if rl.Vector3Length(normal) < normalEpsilon {
		return nil, ErrInvalidNormal
	}
	if anchor == nil {
		anchor = NewPoint(rl.Vector3Zero())
	}
	p := &Plane{
		Dynamics: newDynamics(),
		id:       id,
		normal:   rl.Vector3Normalize(normal),
		anchor:   anchor,
	}
	for _, opt := range opts {
		opt(&p.Dynamics)
	}
	p.Static = true
	if err := Validate(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Plane) ID() string { return p.id }

func (p *Plane) CollisionShape() CollisionShape { return ShapePlane }

func (p *Plane) Normal() rl.Vector3 { return p.normal }

func (p *Plane) Position() rl.Vector3 { return p.anchor.Position() }

func (p *Plane) SetPosition(v rl.Vector3) { p.anchor.SetPosition(v) }

func (p *Plane) Shape() Shape {
	return Shape{Kind: ShapePlane, Position: p.Position(), Normal: p.normal}
}

// AABB approximates the plane with a huge thin slab aligned to whichever
// world axis the normal is most aligned with.
func (p *Plane) AABB() AABB {
	half := rl.Vector3{X: planeExtent, Y: planeExtent, Z: planeExtent}
	switch dominantAxis(p.normal) {
	case AxisX:
		half.X = planeThickness
	case AxisY:
		half.Y = planeThickness
	case AxisZ:
		half.Z = planeThickness
	}
	return NewAABBFromHalfExtents(p.Position(), half)
}

func dominantAxis(v rl.Vector3) Axis {
	x, y, z := math32.Abs(v.X), math32.Abs(v.Y), math32.Abs(v.Z)
	switch {
	case y >= x && y >= z:
		return AxisY
	case x >= z:
		return AxisX
	default:
		return AxisZ
	}
}
