package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type RaycastHit struct {
	Entity   Entity
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
}

// Raycast returns the closest entity hit by the ray within maxDistance.
func Raycast(entities []Entity, origin, direction rl.Vector3, maxDistance float32) (RaycastHit, bool) {
	direction = rl.Vector3Normalize(direction)
	var closestHit RaycastHit
	closestHit.Distance = maxDistance
	hit := false

	for _, e := range entities {
		var (
			hitInfo RaycastHit
			ok      bool
		)
		shape := e.Shape()
		switch shape.Kind {
		case ShapeSphere:
			hitInfo, ok = raycastSphere(origin, direction, shape, maxDistance)
		case ShapePlane:
			hitInfo, ok = raycastPlane(origin, direction, shape, maxDistance)
		}
		if ok && hitInfo.Distance < closestHit.Distance {
			closestHit = hitInfo
			closestHit.Entity = e
			hit = true
		}
	}

	return closestHit, hit
}

func raycastSphere(origin, direction rl.Vector3, sphere Shape, maxDistance float32) (RaycastHit, bool) {
	oc := rl.Vector3Subtract(origin, sphere.Position)
	a := rl.Vector3DotProduct(direction, direction)
	b := 2.0 * rl.Vector3DotProduct(oc, direction)
	c := rl.Vector3DotProduct(oc, oc) - sphere.Radius*sphere.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return RaycastHit{}, false
	}

	t := (-b - math32.Sqrt(discriminant)) / (2 * a)
	if t < 0 {
		t = (-b + math32.Sqrt(discriminant)) / (2 * a)
	}
	if t < 0 || t > maxDistance {
		return RaycastHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	normal := rl.Vector3Normalize(rl.Vector3Subtract(point, sphere.Position))

	return RaycastHit{Point: point, Normal: normal, Distance: t}, true
}

// Rays parallel to the plane or pointing away from it miss.
func raycastPlane(origin, direction rl.Vector3, plane Shape, maxDistance float32) (RaycastHit, bool) {
	denom := rl.Vector3DotProduct(direction, plane.Normal)
	if math32.Abs(denom) < normalEpsilon {
		return RaycastHit{}, false
	}
	t := rl.Vector3DotProduct(rl.Vector3Subtract(plane.Position, origin), plane.Normal) / denom
	if t < 0 || t > maxDistance {
		return RaycastHit{}, false
	}

	normal := plane.Normal
	if denom > 0 {
		normal = rl.Vector3Negate(normal)
	}
	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	return RaycastHit{Point: point, Normal: normal, Distance: t}, true
}
