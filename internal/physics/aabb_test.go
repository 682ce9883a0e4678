package physics

import (
	"math/rand"
	"strings"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestAABBFromCenter(t *testing.T) {
	box := NewAABBFromCenter(rl.Vector3{X: 1, Y: 2, Z: 3}, rl.Vector3{X: 2, Y: 4, Z: 6})

	if box.Min != (rl.Vector3{X: 0, Y: 0, Z: 0}) {
		t.Errorf("Expected min (0,0,0), got %v", box.Min)
	}
	if box.Max != (rl.Vector3{X: 2, Y: 4, Z: 6}) {
		t.Errorf("Expected max (2,4,6), got %v", box.Max)
	}
	if box.Center() != (rl.Vector3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("Expected center (1,2,3), got %v", box.Center())
	}
	if box.HalfExtents() != (rl.Vector3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("Expected half extents (1,2,3), got %v", box.HalfExtents())
	}
}

func TestAABBFromRadius(t *testing.T) {
	box := NewAABBFromRadius(rl.Vector3{X: 5, Y: 0, Z: 0}, 0.5)

	if box.Size() != (rl.Vector3{X: 1, Y: 1, Z: 1}) {
		t.Errorf("Expected size (1,1,1), got %v", box.Size())
	}
	if box.Min.X != 4.5 || box.Max.X != 5.5 {
		t.Errorf("Expected x range [4.5, 5.5], got [%v, %v]", box.Min.X, box.Max.X)
	}
}

func TestAABBOverlaps(t *testing.T) {
	a := NewAABB(rl.Vector3{X: 0, Y: 0, Z: 0}, rl.Vector3{X: 2, Y: 2, Z: 2})
	b := NewAABB(rl.Vector3{X: 1, Y: 1, Z: 1}, rl.Vector3{X: 3, Y: 3, Z: 3})
	touching := NewAABB(rl.Vector3{X: 2, Y: 0, Z: 0}, rl.Vector3{X: 4, Y: 2, Z: 2})
	apartOnZ := NewAABB(rl.Vector3{X: 0, Y: 0, Z: 5}, rl.Vector3{X: 2, Y: 2, Z: 6})

	if !a.Overlaps(b) {
		t.Error("Overlapping boxes should overlap")
	}
	if !a.Overlaps(touching) {
		t.Error("Touching boxes should count as overlapping")
	}
	if a.Overlaps(apartOnZ) {
		t.Error("Boxes separated on Z should not overlap")
	}
	if !a.OverlapsOnAxis(apartOnZ, AxisX) {
		t.Error("Boxes separated on Z should still overlap on X")
	}
	if a.OverlapsOnAxis(apartOnZ, AxisZ) {
		t.Error("Boxes separated on Z should not overlap on Z")
	}
	if a.OverlapsOnAxis(b, Axis(7)) {
		t.Error("Unknown axis should never overlap")
	}
}

func TestAABBOverlapSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	randomBox := func() AABB {
		c := rl.Vector3{X: rng.Float32()*10 - 5, Y: rng.Float32()*10 - 5, Z: rng.Float32()*10 - 5}
		h := rl.Vector3{X: rng.Float32() * 3, Y: rng.Float32() * 3, Z: rng.Float32() * 3}
		return NewAABBFromHalfExtents(c, h)
	}

	for i := 0; i < 1000; i++ {
		a, b := randomBox(), randomBox()
		if a.Overlaps(b) != b.Overlaps(a) {
			t.Fatalf("Overlap not symmetric for %v and %v", a, b)
		}
	}
}

func TestAABBExpandedAndMerged(t *testing.T) {
	a := NewAABB(rl.Vector3{X: 0, Y: 0, Z: 0}, rl.Vector3{X: 1, Y: 1, Z: 1})
	b := NewAABB(rl.Vector3{X: -2, Y: 0.5, Z: 0}, rl.Vector3{X: 0, Y: 3, Z: 0.5})

	grown := a.ExpandedBy(1)
	if grown.Min != (rl.Vector3{X: -1, Y: -1, Z: -1}) || grown.Max != (rl.Vector3{X: 2, Y: 2, Z: 2}) {
		t.Errorf("Expected [-1,-1,-1]-[2,2,2], got %v", grown)
	}

	m := a.Merged(b)
	if m.Min != (rl.Vector3{X: -2, Y: 0, Z: 0}) || m.Max != (rl.Vector3{X: 1, Y: 3, Z: 1}) {
		t.Errorf("Expected [-2,0,0]-[1,3,1], got %v", m)
	}
}

func TestAABBContains(t *testing.T) {
	box := NewAABB(rl.Vector3{X: 0, Y: 0, Z: 0}, rl.Vector3{X: 1, Y: 1, Z: 1})

	if !box.Contains(rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5}) {
		t.Error("Center should be contained")
	}
	if !box.Contains(rl.Vector3{X: 1, Y: 0, Z: 1}) {
		t.Error("Boundary point should be contained")
	}
	if box.Contains(rl.Vector3{X: 1.1, Y: 0.5, Z: 0.5}) {
		t.Error("Outside point should not be contained")
	}
}

func TestAABBString(t *testing.T) {
	s := NewAABB(rl.Vector3{X: 0, Y: 1, Z: 2}, rl.Vector3{X: 3, Y: 4, Z: 5}).String()
	if !strings.HasPrefix(s, "AABB(min: [0, 1, 2]") {
		t.Errorf("Unexpected string %q", s)
	}
}
