package engine

import (
	"slices"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
)

type Transform struct {
	Position rl.Vector3
	Scale    rl.Vector3
}

// GameObject is a scene node. It owns the transform that physics entities
// read and write through Position and SetPosition.
type GameObject struct {
	ID         string
	Name       string
	Tags       []string
	Transform  Transform
	Active     bool
	Scene      *Scene
	Parent     *GameObject
	Children   []*GameObject
	components []Component
	started    bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		ID:     uuid.NewString(),
		Name:   name,
		Active: true,
		Transform: Transform{
			Position: rl.Vector3{},
			Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
		},
		components: make([]Component, 0),
		Children:   make([]*GameObject, 0),
	}
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
}

// GetComponent returns the first component of type T, or the zero value.
func GetComponent[T Component](g *GameObject) T {
	var zero T
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	for _, c := range g.components {
		c.Start()
	}
	g.started = true
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
}

func (g *GameObject) Components() []Component {
	return g.components
}

func (g *GameObject) HasTag(tag string) bool {
	return slices.Contains(g.Tags, tag)
}

func (g *GameObject) AddChild(child *GameObject) {
	child.Parent = g
	g.Children = append(g.Children, child)
}

func (g *GameObject) RemoveChild(child *GameObject) {
	for i, c := range g.Children {
		if c == child {
			g.Children = append(g.Children[:i], g.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

// Position is the local position of the node.
func (g *GameObject) Position() rl.Vector3 {
	return g.Transform.Position
}

func (g *GameObject) SetPosition(p rl.Vector3) {
	g.Transform.Position = p
}

// WorldPosition adds the positions of all ancestors, scaled by their scale.
func (g *GameObject) WorldPosition() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Position
	}
	ps := g.Parent.WorldScale()
	scaled := rl.Vector3{
		X: g.Transform.Position.X * ps.X,
		Y: g.Transform.Position.Y * ps.Y,
		Z: g.Transform.Position.Z * ps.Z,
	}
	return rl.Vector3Add(g.Parent.WorldPosition(), scaled)
}

func (g *GameObject) WorldScale() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Scale
	}
	ps := g.Parent.WorldScale()
	return rl.Vector3{
		X: ps.X * g.Transform.Scale.X,
		Y: ps.Y * g.Transform.Scale.Y,
		Z: ps.Z * g.Transform.Scale.Z,
	}
}
