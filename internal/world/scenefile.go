package world

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"

	"physim/internal/components"
	"physim/internal/engine"
)

// --- YAML types ---

type SceneFile struct {
	Name    string      `yaml:"name"`
	Objects []ObjectDef `yaml:"objects"`
}

type ObjectDef struct {
	Name       string         `yaml:"name"`
	Tags       []string       `yaml:"tags,omitempty"`
	Position   []float32      `yaml:"position,flow"`
	Scale      []float32      `yaml:"scale,flow,omitempty"`
	Components []ComponentDef `yaml:"components"`
}

// ComponentDef is the union of every component's fields; Type selects which
// ones apply.
type ComponentDef struct {
	Type string `yaml:"type"`

	// SphereCollider
	Radius float32 `yaml:"radius,omitempty"`
	// PlaneCollider
	Normal []float32 `yaml:"normal,flow,omitempty"`

	// Rigidbody
	Mass        float32   `yaml:"mass,omitempty"`
	Restitution *float32  `yaml:"restitution,omitempty"`
	UseGravity  *bool     `yaml:"useGravity,omitempty"`
	Static      bool      `yaml:"static,omitempty"`
	Velocity    []float32 `yaml:"velocity,flow,omitempty"`

	// MeshRenderer
	Mesh  string    `yaml:"mesh,omitempty"`
	Size  []float32 `yaml:"size,flow,omitempty"`
	Color string    `yaml:"color,omitempty"`
}

const (
	typeSphereCollider = "SphereCollider"
	typePlaneCollider  = "PlaneCollider"
	typeRigidbody      = "Rigidbody"
	typeMeshRenderer   = "MeshRenderer"
)

// --- Color mapping ---

var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Pink":      rl.Pink,
	"SkyBlue":   rl.SkyBlue,
	"Lime":      rl.Lime,
	"Magenta":   rl.Magenta,
	"White":     rl.White,
	"LightGray": rl.LightGray,
	"Gray":      rl.Gray,
	"DarkGray":  rl.DarkGray,
	"Black":     rl.Black,
	"Brown":     rl.Brown,
	"Beige":     rl.Beige,
	"Maroon":    rl.Maroon,
	"Gold":      rl.Gold,
}

var nameByColor map[rl.Color]string

func init() {
	nameByColor = make(map[rl.Color]string, len(colorByName))
	for name, c := range colorByName {
		nameByColor[c] = name
	}
}

func lookupColor(name string) rl.Color {
	if c, ok := colorByName[name]; ok {
		return c
	}
	var r, g, b, a uint8
	if n, _ := fmt.Sscanf(name, "#%02x%02x%02x%02x", &r, &g, &b, &a); n == 4 {
		return rl.Color{R: r, G: g, B: b, A: a}
	}
	return rl.White
}

func lookupColorName(c rl.Color) string {
	if name, ok := nameByColor[c]; ok {
		return name
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// --- Vectors ---

func vec3(v []float32, fallback rl.Vector3) (rl.Vector3, error) {
	switch len(v) {
	case 0:
		return fallback, nil
	case 3:
		return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}, nil
	}
	return fallback, fmt.Errorf("expected 3 components, got %d", len(v))
}

func slice3(v rl.Vector3) []float32 {
	return []float32{v.X, v.Y, v.Z}
}

// --- Loading ---

func LoadSceneFile(path string) (*SceneFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene %s: %w", path, err)
	}
	sf, err := ParseSceneFile(data)
	if err != nil {
		return nil, fmt.Errorf("parse scene %s: %w", path, err)
	}
	return sf, nil
}

func ParseSceneFile(data []byte) (*SceneFile, error) {
	var sf SceneFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, err
	}
	return &sf, nil
}

// Clone returns a deep copy, so a scene can be rebuilt after the original has
// been edited.
func (sf *SceneFile) Clone() (*SceneFile, error) {
	var out SceneFile
	if err := copier.CopyWithOption(&out, sf, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("clone scene %s: %w", sf.Name, err)
	}
	return &out, nil
}

func (sf *SceneFile) Save(path string) error {
	data, err := yaml.Marshal(sf)
	if err != nil {
		return fmt.Errorf("marshal scene: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write scene %s: %w", path, err)
	}
	return nil
}

// Instantiate creates the GameObjects and components the file describes.
// Physics entities are built separately by components.BuildScene.
func (sf *SceneFile) Instantiate() (*engine.Scene, error) {
	scene := engine.NewScene(sf.Name)
	for _, objDef := range sf.Objects {
		g, err := objDef.instantiate()
		if err != nil {
			return nil, fmt.Errorf("object %q: %w", objDef.Name, err)
		}
		scene.AddGameObject(g)
	}
	return scene, nil
}

func (def ObjectDef) instantiate() (*engine.GameObject, error) {
	g := engine.NewGameObject(def.Name)
	g.Tags = def.Tags

	pos, err := vec3(def.Position, rl.Vector3{})
	if err != nil {
		return nil, fmt.Errorf("position: %w", err)
	}
	g.Transform.Position = pos

	// Default scale to 1 if absent
	scale, err := vec3(def.Scale, rl.Vector3{X: 1, Y: 1, Z: 1})
	if err != nil {
		return nil, fmt.Errorf("scale: %w", err)
	}
	g.Transform.Scale = scale

	for _, c := range def.Components {
		if err := addComponent(g, c); err != nil {
			return nil, fmt.Errorf("%s: %w", c.Type, err)
		}
	}
	return g, nil
}

func addComponent(g *engine.GameObject, def ComponentDef) error {
	switch def.Type {
	case typeSphereCollider:
		g.AddComponent(components.NewSphereCollider(def.Radius))

	case typePlaneCollider:
		n, err := vec3(def.Normal, rl.Vector3{Y: 1})
		if err != nil {
			return fmt.Errorf("normal: %w", err)
		}
		g.AddComponent(components.NewPlaneCollider(n))

	case typeRigidbody:
		rb := components.NewRigidbody()
		if def.Mass > 0 {
			rb.Mass = def.Mass
		}
		if def.Restitution != nil {
			rb.Restitution = *def.Restitution
		}
		if def.UseGravity != nil {
			rb.UseGravity = *def.UseGravity
		}
		rb.IsStatic = def.Static
		v, err := vec3(def.Velocity, rl.Vector3{})
		if err != nil {
			return fmt.Errorf("velocity: %w", err)
		}
		rb.Velocity = v
		g.AddComponent(rb)

	case typeMeshRenderer:
		var mesh components.MeshType
		switch def.Mesh {
		case "sphere":
			mesh = components.MeshSphere
		case "plane":
			mesh = components.MeshPlane
		default:
			return fmt.Errorf("unknown mesh %q", def.Mesh)
		}
		size, err := vec3(def.Size, rl.Vector3{X: 1, Y: 1, Z: 1})
		if err != nil {
			return fmt.Errorf("size: %w", err)
		}
		g.AddComponent(components.NewMeshRenderer(mesh, lookupColor(def.Color), size))

	default:
		return fmt.Errorf("unknown component type")
	}
	return nil
}

// --- Saving ---

// Snapshot describes the scene in its current state. Rigidbodies record the
// live velocity of their linked body.
func Snapshot(scene *engine.Scene) *SceneFile {
	sf := &SceneFile{Name: scene.Name}

	for _, g := range scene.GameObjects {
		objDef := ObjectDef{
			Name:     g.Name,
			Tags:     g.Tags,
			Position: slice3(g.Transform.Position),
		}
		if g.Transform.Scale != (rl.Vector3{X: 1, Y: 1, Z: 1}) {
			objDef.Scale = slice3(g.Transform.Scale)
		}

		for _, c := range g.Components() {
			if def, ok := serializeComponent(c); ok {
				objDef.Components = append(objDef.Components, def)
			}
		}

		sf.Objects = append(sf.Objects, objDef)
	}
	return sf
}

func serializeComponent(c engine.Component) (ComponentDef, bool) {
	switch comp := c.(type) {
	case *components.SphereCollider:
		return ComponentDef{Type: typeSphereCollider, Radius: comp.Radius}, true

	case *components.PlaneCollider:
		return ComponentDef{Type: typePlaneCollider, Normal: slice3(comp.Normal)}, true

	case *components.Rigidbody:
		restitution := comp.Restitution
		useGravity := comp.UseGravity
		def := ComponentDef{
			Type:        typeRigidbody,
			Mass:        comp.Mass,
			Restitution: &restitution,
			UseGravity:  &useGravity,
			Static:      comp.IsStatic,
		}
		if v := comp.CurrentVelocity(); v != (rl.Vector3{}) {
			def.Velocity = slice3(v)
		}
		return def, true

	case *components.MeshRenderer:
		mesh := "sphere"
		if comp.MeshType == components.MeshPlane {
			mesh = "plane"
		}
		return ComponentDef{
			Type:  typeMeshRenderer,
			Mesh:  mesh,
			Size:  slice3(comp.Size),
			Color: lookupColorName(comp.Color),
		}, true
	}
	return ComponentDef{}, false
}
