package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	rl "github.com/gen2brain/raylib-go/raylib"

	"physim/internal/physics"
)

// EnvPath names the environment variable that overrides the config path.
const EnvPath = "PHYSIM_CONFIG"

const DefaultPath = "config/physim.toml"

type Config struct {
	Physics    PhysicsConfig    `toml:"physics"`
	BroadPhase BroadPhaseConfig `toml:"broad_phase"`
	Simulation SimulationConfig `toml:"simulation"`
	Logging    LoggingConfig    `toml:"logging"`
}

type PhysicsConfig struct {
	Solver          string     `toml:"solver"` // "hecker_verlet" or "naive_euler"
	Gravity         [3]float32 `toml:"gravity"`
	UseBroadPhase   bool       `toml:"use_broad_phase"`
	FloorClamp      string     `toml:"floor_clamp"` // "auto", "on" or "off"
	RestingDepth    float32    `toml:"resting_depth"`
	RestingSpeed    float32    `toml:"resting_speed"`
	ImpulseDeadband float32    `toml:"impulse_deadband"`
}

type BroadPhaseConfig struct {
	ResortThreshold float32 `toml:"resort_threshold"`
	MaxCountDelta   int     `toml:"max_count_delta"`
}

type SimulationConfig struct {
	Scene       string        `toml:"scene"` // empty = built-in ball scene
	Seed        int64         `toml:"seed"`
	TickRate    time.Duration `toml:"tick_rate"`
	Ticks       int           `toml:"ticks"` // 0 = until cancelled
	ReportEvery int           `toml:"report_every"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Load reads path over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault loads the file named by PHYSIM_CONFIG, or DefaultPath. A missing
// default file is not an error; a missing override is.
func LoadDefault() (*Config, error) {
	if p := os.Getenv(EnvPath); p != "" {
		return Load(p)
	}
	if _, err := os.Stat(DefaultPath); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(DefaultPath)
}

func Default() *Config {
	return &Config{
		Physics: PhysicsConfig{
			Solver:          physics.HeckerVerlet.String(),
			Gravity:         [3]float32{0, -9.8, 0},
			UseBroadPhase:   true,
			FloorClamp:      physics.FloorClampAuto.String(),
			RestingDepth:    physics.DefaultRestingDepth,
			RestingSpeed:    physics.DefaultRestingSpeed,
			ImpulseDeadband: physics.DefaultImpulseDeadband,
		},
		BroadPhase: BroadPhaseConfig{
			ResortThreshold: physics.DefaultResortThreshold,
			MaxCountDelta:   physics.DefaultMaxCountDelta,
		},
		Simulation: SimulationConfig{
			Seed:        1,
			TickRate:    time.Second / 60,
			ReportEvery: 120,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func (c *Config) Validate() error {
	if _, err := physics.ParseUpdateType(c.Physics.Solver); err != nil {
		return err
	}
	if _, err := physics.ParseFloorClampMode(c.Physics.FloorClamp); err != nil {
		return err
	}
	if c.Simulation.TickRate <= 0 {
		return fmt.Errorf("tick_rate must be positive, got %s", c.Simulation.TickRate)
	}
	if c.Simulation.Ticks < 0 {
		return fmt.Errorf("ticks must not be negative, got %d", c.Simulation.Ticks)
	}
	return nil
}

// UpdateType returns the configured solver, falling back to HeckerVerlet.
func (p PhysicsConfig) UpdateType() physics.UpdateType {
	t, err := physics.ParseUpdateType(p.Solver)
	if err != nil {
		return physics.HeckerVerlet
	}
	return t
}

// WorldOptions converts the physics and broad phase sections into world
// options. Logging is left to the caller.
func (c *Config) WorldOptions() []physics.Option {
	clamp, err := physics.ParseFloorClampMode(c.Physics.FloorClamp)
	if err != nil {
		clamp = physics.FloorClampAuto
	}
	g := c.Physics.Gravity
	return []physics.Option{
		physics.WithGravity(rl.Vector3{X: g[0], Y: g[1], Z: g[2]}),
		physics.WithBroadPhase(c.Physics.UseBroadPhase),
		physics.WithFloorClamp(clamp),
		physics.WithRestingDepth(c.Physics.RestingDepth),
		physics.WithRestingSpeed(c.Physics.RestingSpeed),
		physics.WithImpulseDeadband(c.Physics.ImpulseDeadband),
		physics.WithBroadPhaseOptions(
			physics.WithResortThreshold(c.BroadPhase.ResortThreshold),
			physics.WithMaxCountDelta(c.BroadPhase.MaxCountDelta),
		),
	}
}

// TickSeconds is the fixed simulation step in seconds.
func (s SimulationConfig) TickSeconds() float32 {
	return float32(s.TickRate.Seconds())
}
