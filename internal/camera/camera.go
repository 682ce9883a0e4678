package camera

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// OrbitCamera circles a target point. Yaw and Pitch are in degrees.
type OrbitCamera struct {
	Target    rl.Vector3
	Yaw       float32
	Pitch     float32
	Distance  float32
	LookSpeed float32
	ZoomSpeed float32
	PanSpeed  float32

	MinDistance float32
	MaxDistance float32
}

func New(target rl.Vector3) *OrbitCamera {
	return &OrbitCamera{
		Target:      target,
		Yaw:         -135.0,
		Pitch:       30.0,
		Distance:    25.0,
		LookSpeed:   0.3,
		ZoomSpeed:   2.0,
		PanSpeed:    10.0, // units per second
		MinDistance: 2.0,
		MaxDistance: 200.0,
	}
}

// Update reads mouse and keyboard input: right drag orbits, the wheel zooms
// and WASD pans the target on the ground plane.
func (c *OrbitCamera) Update(deltaTime float32) {
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		d := rl.GetMouseDelta()
		c.Orbit(d.X*c.LookSpeed, d.Y*c.LookSpeed)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		c.Zoom(-wheel * c.ZoomSpeed)
	}

	forward, right := c.groundDirections()
	var move rl.Vector3
	if rl.IsKeyDown(rl.KeyW) {
		move = rl.Vector3Add(move, forward)
	}
	if rl.IsKeyDown(rl.KeyS) {
		move = rl.Vector3Subtract(move, forward)
	}
	if rl.IsKeyDown(rl.KeyD) {
		move = rl.Vector3Add(move, right)
	}
	if rl.IsKeyDown(rl.KeyA) {
		move = rl.Vector3Subtract(move, right)
	}
	// Normalize diagonal movement so you don't go faster diagonally
	if rl.Vector3Length(move) > 0 {
		move = rl.Vector3Scale(rl.Vector3Normalize(move), c.PanSpeed*deltaTime)
		c.Target = rl.Vector3Add(c.Target, move)
	}
}

// Orbit rotates around the target. Pitch is clamped short of the poles.
func (c *OrbitCamera) Orbit(dYaw, dPitch float32) {
	c.Yaw += dYaw
	c.Pitch += dPitch
	if c.Pitch > 89 {
		c.Pitch = 89
	}
	if c.Pitch < -89 {
		c.Pitch = -89
	}
}

func (c *OrbitCamera) Zoom(delta float32) {
	c.Distance += delta
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}

// Position is the eye point at the current yaw, pitch and distance.
func (c *OrbitCamera) Position() rl.Vector3 {
	yawRad := float64(c.Yaw) * math.Pi / 180
	pitchRad := float64(c.Pitch) * math.Pi / 180
	offset := rl.Vector3{
		X: float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		Y: float32(math.Sin(pitchRad)),
		Z: float32(math.Sin(yawRad) * math.Cos(pitchRad)),
	}
	return rl.Vector3Add(c.Target, rl.Vector3Scale(offset, c.Distance))
}

func (c *OrbitCamera) groundDirections() (forward, right rl.Vector3) {
	yawRad := float64(c.Yaw) * math.Pi / 180
	// the eye sits at +yaw, so forward looks back along it
	forward = rl.Vector3{
		X: float32(-math.Cos(yawRad)),
		Z: float32(-math.Sin(yawRad)),
	}
	right = rl.Vector3{
		X: float32(math.Sin(yawRad)),
		Z: float32(-math.Cos(yawRad)),
	}
	return
}

func (c *OrbitCamera) GetRaylibCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position(),
		Target:     c.Target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
}
