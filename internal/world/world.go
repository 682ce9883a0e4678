package world

import (
	"fmt"
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"physim/internal/components"
	"physim/internal/config"
	"physim/internal/engine"
	"physim/internal/physics"
)

// World hosts a scene and the physics world simulating it. Update and the
// read accessors serialize on one lock, so a renderer never observes a
// half-stepped tick.
type World struct {
	mu      sync.Mutex
	cfg     *config.Config
	scene   *engine.Scene
	physics *physics.World
	source  *SceneFile
	log     *zap.Logger
}

func New(cfg *config.Config, log *zap.Logger) *World {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &World{
		cfg:     cfg,
		scene:   engine.NewScene("empty"),
		physics: newPhysics(cfg, log),
		log:     log,
	}
}

func newPhysics(cfg *config.Config, log *zap.Logger) *physics.World {
	opts := append(cfg.WorldOptions(), physics.WithLogger(log.Named("physics")))
	return physics.NewWorld(cfg.Physics.UpdateType(), opts...)
}

// Build replaces the current scene with sf. The previous scene stays in place
// if sf cannot be built.
func (w *World) Build(sf *SceneFile) error {
	source, err := sf.Clone()
	if err != nil {
		return err
	}
	scene, err := sf.Instantiate()
	if err != nil {
		return fmt.Errorf("build scene %s: %w", sf.Name, err)
	}
	entities, err := components.BuildScene(scene)
	if err != nil {
		return fmt.Errorf("build scene %s: %w", sf.Name, err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	pw := newPhysics(w.cfg, w.log)
	if err := pw.SetEntities(entities); err != nil {
		return fmt.Errorf("build scene %s: %w", sf.Name, err)
	}
	if w.physics != nil && w.physics.UsingBroadPhase() != pw.UsingBroadPhase() {
		pw.SetUseBroadPhase(w.physics.UsingBroadPhase())
	}
	scene.Start()

	w.scene, w.physics, w.source = scene, pw, source
	w.log.Info("scene built",
		zap.String("scene", sf.Name),
		zap.Int("objects", len(scene.GameObjects)),
		zap.Int("entities", len(entities)))
	return nil
}

func (w *World) LoadScene(path string) error {
	sf, err := LoadSceneFile(path)
	if err != nil {
		return err
	}
	return w.Build(sf)
}

// Restart rebuilds the most recently built scene from its original definition.
func (w *World) Restart() error {
	w.mu.Lock()
	source := w.source
	w.mu.Unlock()
	if source == nil {
		return nil
	}
	return w.Build(source)
}

// SaveScene writes the current state of the scene to path.
func (w *World) SaveScene(path string) error {
	w.mu.Lock()
	sf := Snapshot(w.scene)
	w.mu.Unlock()
	return sf.Save(path)
}

func (w *World) Update(deltaTime float32) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.physics.Update(deltaTime)
	w.scene.Update(deltaTime)
}

// View calls fn with the scene and physics world while holding the update
// lock. fn must not retain either.
func (w *World) View(fn func(scene *engine.Scene, pw *physics.World)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fn(w.scene, w.physics)
}

// Physics returns the current physics world. It is replaced by Build.
func (w *World) Physics() *physics.World {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.physics
}

func (w *World) Scene() *engine.Scene {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.scene
}

func (w *World) SetUseBroadPhase(enabled bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.physics.SetUseBroadPhase(enabled)
}

// Kick casts a ray and adds dv to the velocity of the first dynamic object
// it hits. It returns the hit object, or nil.
func (w *World) Kick(origin, direction rl.Vector3, maxDistance float32, dv rl.Vector3) *engine.GameObject {
	w.mu.Lock()
	defer w.mu.Unlock()

	hit, ok := w.physics.Raycast(origin, direction, maxDistance)
	if !ok || hit.Entity.Body().IsStatic() {
		return nil
	}
	g := w.scene.FindByID(hit.Entity.ID())
	if g == nil {
		return nil
	}
	if rb := engine.GetComponent[*components.Rigidbody](g); rb != nil {
		rb.Kick(dv)
	}
	w.log.Debug("kick", zap.String("object", g.Name), zap.Float32("distance", hit.Distance))
	return g
}
