package physics

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Axis selects a world axis for single-axis tests.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// AABB is an axis-aligned bounding box. Min must not exceed Max on any axis;
// boxes are always recomputed from current entity state and never cached.
type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

func NewAABB(min, max rl.Vector3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	return NewAABBFromHalfExtents(center, rl.Vector3Scale(size, 0.5))
}

// NewAABBFromHalfExtents creates an AABB reaching half along each axis from center.
func NewAABBFromHalfExtents(center, half rl.Vector3) AABB {
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

// NewAABBFromRadius creates the cube enclosing a sphere.
func NewAABBFromRadius(center rl.Vector3, radius float32) AABB {
	return NewAABBFromHalfExtents(center, rl.Vector3{X: radius, Y: radius, Z: radius})
}

// Overlaps reports whether the boxes overlap on all three axes. Touching counts.
func (a AABB) Overlaps(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

// OverlapsOnAxis is the single-axis variant of Overlaps. Unknown axes never overlap.
func (a AABB) OverlapsOnAxis(b AABB, axis Axis) bool {
	switch axis {
	case AxisX:
		return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X
	case AxisY:
		return a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y
	case AxisZ:
		return a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
	default:
		return false
	}
}

// ExpandedBy grows the box by radius in every direction.
func (a AABB) ExpandedBy(radius float32) AABB {
	r := rl.Vector3{X: radius, Y: radius, Z: radius}
	return AABB{
		Min: rl.Vector3Subtract(a.Min, r),
		Max: rl.Vector3Add(a.Max, r),
	}
}

// Merged returns the smallest box enclosing both a and b.
func (a AABB) Merged(b AABB) AABB {
	return AABB{
		Min: rl.Vector3Min(a.Min, b.Min),
		Max: rl.Vector3Max(a.Max, b.Max),
	}
}

// Contains reports whether p lies inside the box or on its boundary.
func (a AABB) Contains(p rl.Vector3) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X &&
		p.Y >= a.Min.Y && p.Y <= a.Max.Y &&
		p.Z >= a.Min.Z && p.Z <= a.Max.Z
}

func (a AABB) Center() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Add(a.Min, a.Max), 0.5)
}

func (a AABB) Size() rl.Vector3 {
	return rl.Vector3Subtract(a.Max, a.Min)
}

func (a AABB) HalfExtents() rl.Vector3 {
	return rl.Vector3Scale(a.Size(), 0.5)
}

func (a AABB) String() string {
	return fmt.Sprintf("AABB(min: [%g, %g, %g], max: [%g, %g, %g])",
		a.Min.X, a.Min.Y, a.Min.Z, a.Max.X, a.Max.Y, a.Max.Z)
}
