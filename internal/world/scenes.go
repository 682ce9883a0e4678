package world

import (
	"fmt"
	"math"
	"math/rand"
)

var ballColors = []string{
	"Red", "Blue", "Green", "Purple", "Orange",
	"Yellow", "Pink", "SkyBlue", "Lime", "Magenta",
}

const (
	BallCount       = 27
	ballRadius      = 0.4
	ballRestitution = 0.9

	stressRadius      = 0.3
	stressRestitution = 0.8
	stressSpacing     = 2.0
)

func ptr[T any](v T) *T { return &v }

func groundDef(restitution float32, size float32) ObjectDef {
	return ObjectDef{
		Name:     "Ground",
		Tags:     []string{"ground"},
		Position: []float32{0, 0, 0},
		Components: []ComponentDef{
			{Type: typePlaneCollider, Normal: []float32{0, 1, 0}},
			{Type: typeRigidbody, Restitution: ptr(restitution), Static: true},
			{Type: typeMeshRenderer, Mesh: "plane", Size: []float32{size, 0, size}, Color: "LightGray"},
		},
	}
}

func sphereDef(name string, pos, vel []float32, radius, restitution float32, color string) ObjectDef {
	return ObjectDef{
		Name:     name,
		Tags:     []string{"ball"},
		Position: pos,
		Components: []ComponentDef{
			{Type: typeSphereCollider, Radius: radius},
			{Type: typeRigidbody, Mass: 1, Restitution: ptr(restitution), Velocity: vel},
			{Type: typeMeshRenderer, Mesh: "sphere", Size: []float32{radius, radius, radius}, Color: color},
		},
	}
}

func uniform(rng *rand.Rand, lo, hi float32) float32 {
	return lo + rng.Float32()*(hi-lo)
}

// BallScene drops BallCount spheres at random heights onto a bouncy ground
// plane. The same seed always gives the same scene.
func BallScene(seed int64) *SceneFile {
	rng := rand.New(rand.NewSource(seed))
	sf := &SceneFile{Name: "balls"}
	sf.Objects = append(sf.Objects, groundDef(1.0, 30))

	for i := range BallCount {
		pos := []float32{
			uniform(rng, -7, 7),
			uniform(rng, 1, 10),
			uniform(rng, -7, 0),
		}
		sf.Objects = append(sf.Objects, sphereDef(
			fmt.Sprintf("Ball_%d", i), pos, nil,
			ballRadius, ballRestitution, ballColors[i%len(ballColors)],
		))
	}
	return sf
}

// StressScene places count spheres on a jittered grid above the ground with
// random horizontal velocities.
func StressScene(count int, seed int64) *SceneFile {
	rng := rand.New(rand.NewSource(seed))
	side := int(math.Ceil(math.Sqrt(float64(count))))
	half := float32(side-1) * stressSpacing / 2

	sf := &SceneFile{Name: fmt.Sprintf("stress_%d", count)}
	sf.Objects = append(sf.Objects, groundDef(0.9, float32(side)*stressSpacing+10))

	for i := range count {
		row, col := i/side, i%side
		pos := []float32{
			float32(col)*stressSpacing - half + uniform(rng, -0.25, 0.25),
			uniform(rng, 5, 20),
			float32(row)*stressSpacing - half + uniform(rng, -0.25, 0.25),
		}
		vel := []float32{uniform(rng, -2, 2), 0, uniform(rng, -2, 2)}
		sf.Objects = append(sf.Objects, sphereDef(
			fmt.Sprintf("Stress_%d", i), pos, vel,
			stressRadius, stressRestitution, ballColors[i%len(ballColors)],
		))
	}
	return sf
}
