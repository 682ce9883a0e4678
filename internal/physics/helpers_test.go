package physics

import (
	"testing"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func approx(a, b, eps float32) bool {
	return math32.Abs(a-b) <= eps
}

func at(x, y, z float32) *Point {
	return NewPoint(rl.Vector3{X: x, Y: y, Z: z})
}

func mustSphere(t *testing.T, id string, pos rl.Vector3, radius float32, opts ...BodyOption) *Sphere {
	t.Helper()
	s, err := NewSphere(id, radius, NewPoint(pos), opts...)
	if err != nil {
		t.Fatalf("NewSphere(%s): %v", id, err)
	}
	return s
}

func mustGround(t *testing.T, opts ...BodyOption) *Plane {
	t.Helper()
	p, err := NewPlane("ground", worldUp, at(0, 0, 0), opts...)
	if err != nil {
		t.Fatalf("NewPlane: %v", err)
	}
	return p
}
