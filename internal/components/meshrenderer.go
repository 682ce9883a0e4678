package components

import (
	"physim/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type MeshType int

const (
	MeshSphere MeshType = iota
	MeshPlane
)

type MeshRenderer struct {
	engine.BaseComponent
	MeshType MeshType
	Color    rl.Color
	Size     rl.Vector3
}

func NewMeshRenderer(meshType MeshType, color rl.Color, size rl.Vector3) *MeshRenderer {
	return &MeshRenderer{
		MeshType: meshType,
		Color:    color,
		Size:     size,
	}
}

// Draw must be called between BeginMode3D and EndMode3D.
func (m *MeshRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	pos := g.WorldPosition()

	switch m.MeshType {
	case MeshSphere:
		rl.DrawSphere(pos, m.Size.X, m.Color)
		rl.DrawSphereWires(pos, m.Size.X, 8, 8, rl.Fade(rl.Black, 0.3))
	case MeshPlane:
		rl.DrawPlane(pos, rl.Vector2{X: m.Size.X, Y: m.Size.Z}, m.Color)
		rl.DrawGrid(int32(m.Size.X), 1)
	}
}
