package components

import (
	"physim/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PlaneCollider is an infinite plane through the GameObject's position.
type PlaneCollider struct {
	engine.BaseComponent
	Normal rl.Vector3
}

func NewPlaneCollider(normal rl.Vector3) *PlaneCollider {
	return &PlaneCollider{
		Normal: normal,
	}
}
