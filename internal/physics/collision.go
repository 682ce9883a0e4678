package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Below this length a collision vector has no usable direction.
const normalEpsilon = 1e-6

var worldUp = rl.Vector3{X: 0, Y: 1, Z: 0}

// Shape is the narrow-phase view of an entity: a tagged variant carrying
// only the fields its Kind uses.
type Shape struct {
	Kind     CollisionShape
	Position rl.Vector3
	Radius   float32    // ShapeSphere
	Normal   rl.Vector3 // ShapePlane, unit length
}

// CollisionData describes one contact. Vector is the raw collision vector
// pointing from B toward A; Depth is the penetration along it.
type CollisionData struct {
	Vector rl.Vector3
	Depth  float32
}

// Normal is Vector normalized. Coincident sphere centers produce a zero
// vector, in which case world up is used.
func (c CollisionData) Normal() rl.Vector3 {
	if rl.Vector3Length(c.Vector) < normalEpsilon {
		return worldUp
	}
	return rl.Vector3Normalize(c.Vector)
}

// PenetrationVector is Normal scaled by Depth.
func (c CollisionData) PenetrationVector() rl.Vector3 {
	return rl.Vector3Scale(c.Normal(), c.Depth)
}

type shapePair struct {
	a, b CollisionShape
}

// Collide runs the narrow-phase test for a shape pair. Every combination is
// handled: plane/plane never collides.
func Collide(a, b Shape) (CollisionData, bool) {
	switch (shapePair{a.Kind, b.Kind}) {
	case shapePair{ShapeSphere, ShapeSphere}:
		return sphereVsSphere(a, b)
	case shapePair{ShapeSphere, ShapePlane}:
		return sphereVsPlane(a, b)
	case shapePair{ShapePlane, ShapeSphere}:
		data, ok := sphereVsPlane(b, a)
		data.Vector = rl.Vector3Negate(data.Vector)
		return data, ok
	default:
		return CollisionData{}, false
	}
}

// Collided reports whether two entities are touching or overlapping.
func Collided(a, b Entity) bool {
	_, ok := Collide(a.Shape(), b.Shape())
	return ok
}

// CollisionDataFor returns the contact between two entities, if any.
func CollisionDataFor(a, b Entity) (CollisionData, bool) {
	return Collide(a.Shape(), b.Shape())
}

// Sphere vs Sphere: touching counts as a collision.
func sphereVsSphere(a, b Shape) (CollisionData, bool) {
	diff := rl.Vector3Subtract(a.Position, b.Position)
	dist := rl.Vector3Length(diff)
	minDist := a.Radius + b.Radius
	if dist > minDist {
		return CollisionData{}, false
	}
	return CollisionData{Vector: diff, Depth: minDist - dist}, true
}

// Sphere vs Plane using the signed distance of the center from the plane.
// A sphere entirely behind the plane still counts as colliding.
func sphereVsPlane(s, p Shape) (CollisionData, bool) {
	dist := rl.Vector3DotProduct(rl.Vector3Subtract(s.Position, p.Position), p.Normal)
	if dist > s.Radius {
		return CollisionData{}, false
	}
	return CollisionData{Vector: p.Normal, Depth: s.Radius - dist}, true
}
