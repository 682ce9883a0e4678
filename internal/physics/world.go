package physics

import (
	"fmt"
	"slices"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// UpdateType selects the simulation strategy. It is fixed when the world
// is created.
type UpdateType int

const (
	NaiveEuler UpdateType = iota
	HeckerVerlet
)

func (t UpdateType) String() string {
	switch t {
	case NaiveEuler:
		return "naive_euler"
	case HeckerVerlet:
		return "hecker_verlet"
	default:
		return fmt.Sprintf("UpdateType(%d)", int(t))
	}
}

func ParseUpdateType(s string) (UpdateType, error) {
	switch s {
	case "naive_euler", "naive", "euler":
		return NaiveEuler, nil
	case "hecker_verlet", "hecker", "verlet":
		return HeckerVerlet, nil
	}
	return 0, fmt.Errorf("unknown solver %q", s)
}

func ParseFloorClampMode(s string) (FloorClampMode, error) {
	switch s {
	case "", "auto":
		return FloorClampAuto, nil
	case "on", "true":
		return FloorClampOn, nil
	case "off", "false":
		return FloorClampOff, nil
	}
	return 0, fmt.Errorf("unknown floor clamp mode %q", s)
}

var DefaultGravity = rl.Vector3{X: 0, Y: -9.8, Z: 0}

type settings struct {
	gravity         rl.Vector3
	log             *zap.Logger
	useBroadPhase   bool
	broadPhaseOpts  []BroadPhaseOption
	floorClamp      FloorClampMode
	restingDepth    float32
	restingSpeed    float32
	impulseDeadband float32
}

type Option func(*settings)

func WithGravity(g rl.Vector3) Option {
	return func(s *settings) { s.gravity = g }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *settings) { s.log = l }
}

// WithBroadPhase toggles sweep and prune candidate generation for the
// HeckerVerlet strategy. Enabled by default.
func WithBroadPhase(enabled bool) Option {
	return func(s *settings) { s.useBroadPhase = enabled }
}

func WithBroadPhaseOptions(opts ...BroadPhaseOption) Option {
	return func(s *settings) { s.broadPhaseOpts = append(s.broadPhaseOpts, opts...) }
}

func WithFloorClamp(mode FloorClampMode) Option {
	return func(s *settings) { s.floorClamp = mode }
}

func WithRestingDepth(d float32) Option {
	return func(s *settings) { s.restingDepth = d }
}

func WithRestingSpeed(v float32) Option {
	return func(s *settings) { s.restingSpeed = v }
}

func WithImpulseDeadband(v float32) Option {
	return func(s *settings) { s.impulseDeadband = v }
}

// World owns the registered entities and steps them with the strategy
// chosen at construction. It is not safe for concurrent use.
type World struct {
	gravity    rl.Vector3
	updateType UpdateType
	entities   []Entity
	ids        map[string]struct{}

	solver     Solver
	heckerStep *HeckerVerletSolver
	broadPhase *BroadPhaseCollisionDetector
	floorClamp FloorClampMode

	log *zap.Logger
}

func NewWorld(updateType UpdateType, opts ...Option) *World {
	cfg := settings{
		gravity:         DefaultGravity,
		log:             zap.NewNop(),
		useBroadPhase:   true,
		restingDepth:    DefaultRestingDepth,
		restingSpeed:    DefaultRestingSpeed,
		impulseDeadband: DefaultImpulseDeadband,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	w := &World{
		gravity:    cfg.gravity,
		updateType: updateType,
		ids:        make(map[string]struct{}),
		floorClamp: cfg.floorClamp,
		log:        cfg.log,
	}
	w.broadPhase = NewBroadPhaseCollisionDetector(
		append([]BroadPhaseOption{WithBroadPhaseLogger(cfg.log.Named("broadphase"))}, cfg.broadPhaseOpts...)...)

	switch updateType {
	case NaiveEuler:
		w.solver = &EulerSolver{RestingDepth: cfg.restingDepth}
	default:
		responder := NewHeckerResponder(cfg.log.Named("response"))
		responder.Deadband = cfg.impulseDeadband
		responder.RestingSpeed = cfg.restingSpeed
		integrator := NewVerletSolver()
		integrator.RestingSpeed = cfg.restingSpeed
		w.heckerStep = &HeckerVerletSolver{
			Responder:     responder,
			Integrator:    integrator,
			BroadPhase:    w.broadPhase,
			UseBroadPhase: cfg.useBroadPhase,
		}
		w.solver = w.heckerStep
		w.updateFloorClamp()
	}

	w.log.Info("physics world created",
		zap.Stringer("solver", updateType),
		zap.Bool("broad_phase", cfg.useBroadPhase),
		zap.Stringer("floor_clamp", cfg.floorClamp))
	return w
}

func (w *World) UpdateType() UpdateType { return w.updateType }

func (w *World) Gravity() rl.Vector3 { return w.gravity }

// AddEntity registers e. Entities with invalid mass or shape, nil
// entities, and reused IDs are rejected.
func (w *World) AddEntity(e Entity) error {
	if err := Validate(e); err != nil {
		return err
	}
	if _, dup := w.ids[e.ID()]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicateID, e.ID())
	}
	w.ids[e.ID()] = struct{}{}
	w.entities = append(w.entities, e)
	w.updateFloorClamp()

	w.log.Debug("entity added",
		zap.String("id", e.ID()),
		zap.Stringer("shape", e.CollisionShape()),
		zap.Bool("static", e.Body().IsStatic()))
	return nil
}

// AddEntities registers all of es or none of them.
func (w *World) AddEntities(es ...Entity) error {
	seen := make(map[string]struct{}, len(es))
	for _, e := range es {
		if err := Validate(e); err != nil {
			return err
		}
		if _, dup := w.ids[e.ID()]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateID, e.ID())
		}
		if _, dup := seen[e.ID()]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateID, e.ID())
		}
		seen[e.ID()] = struct{}{}
	}
	for _, e := range es {
		w.ids[e.ID()] = struct{}{}
		w.entities = append(w.entities, e)
	}
	w.updateFloorClamp()
	return nil
}

// SetEntities replaces the registered entities with es.
func (w *World) SetEntities(es []Entity) error {
	prevEntities, prevIDs := w.entities, w.ids
	w.entities, w.ids = nil, make(map[string]struct{}, len(es))
	if err := w.AddEntities(es...); err != nil {
		w.entities, w.ids = prevEntities, prevIDs
		w.updateFloorClamp()
		return err
	}
	w.broadPhase.Reset()
	return nil
}

// RemoveEntity unregisters the entity with id. It reports whether one was found.
func (w *World) RemoveEntity(id string) bool {
	i := slices.IndexFunc(w.entities, func(e Entity) bool { return e.ID() == id })
	if i < 0 {
		return false
	}
	w.entities = slices.Delete(w.entities, i, i+1)
	delete(w.ids, id)
	w.updateFloorClamp()
	return true
}

// Entities returns the registered entities in registration order.
// The slice is shared with the world.
func (w *World) Entities() []Entity {
	return w.entities
}

// Reset removes every entity and forgets broad-phase state.
func (w *World) Reset() {
	w.entities = nil
	clear(w.ids)
	w.broadPhase.Reset()
	w.updateFloorClamp()
}

// ResetFlags clears per-tick collision bookkeeping on every entity.
func (w *World) ResetFlags() {
	for _, e := range w.entities {
		e.Reset()
	}
}

// Update advances the simulation by dt seconds.
func (w *World) Update(dt float32) {
	w.ResetFlags()
	w.solver.Step(dt, w.gravity, w.entities)
}

// SetUseBroadPhase toggles broad-phase pair generation. It has no effect
// on the NaiveEuler strategy.
func (w *World) SetUseBroadPhase(enabled bool) {
	if w.heckerStep == nil {
		return
	}
	if enabled && !w.heckerStep.UseBroadPhase {
		w.broadPhase.Reset()
	}
	w.heckerStep.UseBroadPhase = enabled
	w.log.Info("broad phase toggled", zap.Bool("enabled", enabled))
}

func (w *World) UsingBroadPhase() bool {
	return w.heckerStep != nil && w.heckerStep.UseBroadPhase
}

func (w *World) BroadPhaseStats() BroadPhaseStats {
	return w.broadPhase.Stats()
}

// Statistics returns the broad-phase check counters of the last tick.
func (w *World) Statistics() (checks, saved int) {
	return w.broadPhase.Statistics()
}

// Raycast returns the closest registered entity hit by the ray.
func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32) (RaycastHit, bool) {
	return Raycast(w.entities, origin, direction, maxDistance)
}

// updateFloorClamp turns the y = 0 clamp on or off according to the mode
// and whether a static plane is registered.
func (w *World) updateFloorClamp() {
	if w.heckerStep == nil {
		return
	}
	switch w.floorClamp {
	case FloorClampOn:
		w.heckerStep.Integrator.FloorClamp = true
	case FloorClampOff:
		w.heckerStep.Integrator.FloorClamp = false
	default:
		hasGround := slices.ContainsFunc(w.entities, func(e Entity) bool {
			return e.CollisionShape() == ShapePlane && e.Body().IsStatic()
		})
		w.heckerStep.Integrator.FloorClamp = !hasGround
	}
}
