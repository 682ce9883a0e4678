package camera

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func TestPositionAtDistance(t *testing.T) {
	c := New(rl.Vector3{X: 1, Y: 2, Z: 3})
	c.Yaw, c.Pitch, c.Distance = 0, 0, 10

	p := c.Position()
	if !near(p.X, 11) || !near(p.Y, 2) || !near(p.Z, 3) {
		t.Errorf("Expected (11,2,3), got %v", p)
	}

	c.Pitch = 90
	c.Orbit(0, 0)
	if !near(rl.Vector3Distance(c.Position(), c.Target), 10) {
		t.Errorf("Eye should stay at distance 10, got %v", rl.Vector3Distance(c.Position(), c.Target))
	}
}

func TestOrbitClampsPitch(t *testing.T) {
	c := New(rl.Vector3{})
	c.Orbit(10, 500)
	if c.Pitch != 89 {
		t.Errorf("Expected pitch 89, got %v", c.Pitch)
	}
	c.Orbit(0, -500)
	if c.Pitch != -89 {
		t.Errorf("Expected pitch -89, got %v", c.Pitch)
	}
}

func TestZoomClamps(t *testing.T) {
	c := New(rl.Vector3{})
	c.Zoom(-1000)
	if c.Distance != c.MinDistance {
		t.Errorf("Expected min distance, got %v", c.Distance)
	}
	c.Zoom(1000)
	if c.Distance != c.MaxDistance {
		t.Errorf("Expected max distance, got %v", c.Distance)
	}
}

func TestForwardPointsAtTarget(t *testing.T) {
	c := New(rl.Vector3{})
	c.Pitch = 0
	forward, _ := c.groundDirections()
	toTarget := rl.Vector3Normalize(rl.Vector3Subtract(c.Target, c.Position()))
	if !near(rl.Vector3DotProduct(forward, toTarget), 1) {
		t.Errorf("Forward %v should point at the target %v", forward, toTarget)
	}
}
