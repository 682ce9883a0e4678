package components

import (
	"physim/internal/engine"
)

type SphereCollider struct {
	engine.BaseComponent
	Radius float32
}

func NewSphereCollider(radius float32) *SphereCollider {
	return &SphereCollider{
		Radius: radius,
	}
}
