package world

import (
	"testing"
)

func TestBallSceneIsDeterministic(t *testing.T) {
	a := BallScene(42)
	b := BallScene(42)

	if len(a.Objects) != BallCount+1 {
		t.Fatalf("Expected %d objects, got %d", BallCount+1, len(a.Objects))
	}
	for i := range a.Objects {
		for k := range a.Objects[i].Position {
			if a.Objects[i].Position[k] != b.Objects[i].Position[k] {
				t.Fatalf("Object %d differs between runs with the same seed", i)
			}
		}
	}
	if c := BallScene(43); c.Objects[1].Position[0] == a.Objects[1].Position[0] {
		t.Error("Different seeds should give different scenes")
	}
}

func TestBallSceneRanges(t *testing.T) {
	sf := BallScene(7)
	for _, obj := range sf.Objects[1:] {
		x, y, z := obj.Position[0], obj.Position[1], obj.Position[2]
		if x < -7 || x > 7 || y < 1 || y > 10 || z < -7 || z > 0 {
			t.Errorf("%s out of range at (%v, %v, %v)", obj.Name, x, y, z)
		}
	}
}

func TestStressScene(t *testing.T) {
	sf := StressScene(50, 1)
	if len(sf.Objects) != 51 {
		t.Fatalf("Expected 51 objects, got %d", len(sf.Objects))
	}

	scene, err := sf.Instantiate()
	if err != nil {
		t.Fatalf("Instantiate: %v", err)
	}
	if balls := scene.FindByTag("ball"); len(balls) != 50 {
		t.Errorf("Expected 50 balls, got %d", len(balls))
	}
	for _, obj := range sf.Objects[1:] {
		if y := obj.Position[1]; y < 5 || y > 20 {
			t.Errorf("%s height %v out of range", obj.Name, y)
		}
		if vy := obj.Components[1].Velocity[1]; vy != 0 {
			t.Errorf("%s should start with no vertical velocity, got %v", obj.Name, vy)
		}
	}
}
