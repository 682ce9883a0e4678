package game

import (
	"fmt"
	"path/filepath"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"physim/internal/camera"
	"physim/internal/components"
	"physim/internal/engine"
	"physim/internal/physics"
	"physim/internal/world"
)

const (
	kickDistance = 200
	kickSpeed    = 8
)

// Game is the interactive viewer. Physics runs on the fixed tick of the
// world configuration, decoupled from the frame rate.
type Game struct {
	World  *world.World
	Camera *camera.OrbitCamera

	SaveDir string

	stepper    stepper
	paused     bool
	broadPhase bool
	showStats  bool

	// Debug timing (ms)
	updateMs float64
	drawMs   float64

	status    string
	statusTTL float32
	log       *zap.Logger
}

func New(w *world.World, tick time.Duration, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	return &Game{
		World:      w,
		Camera:     camera.New(rl.Vector3{Y: 2}),
		SaveDir:    ".",
		stepper:    newStepper(float32(tick.Seconds())),
		broadPhase: w.Physics().UsingBroadPhase(),
		showStats:  true,
		log:        log,
	}
}

func (g *Game) Run() {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(1280, 720, "physim")
	defer rl.CloseWindow()

	rl.SetTargetFPS(120)
	initRayguiStyle()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
}

func (g *Game) Update() {
	updateStart := time.Now()
	deltaTime := rl.GetFrameTime()

	g.Camera.Update(deltaTime)
	g.handleKeys()

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) && !overHUD(rl.GetMousePosition()) {
		g.kick()
	}

	if !g.paused {
		for range g.stepper.advance(deltaTime) {
			g.World.Update(g.stepper.dt)
		}
	}

	if g.statusTTL > 0 {
		g.statusTTL -= deltaTime
	}
	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

func (g *Game) handleKeys() {
	if rl.IsKeyPressed(rl.KeyP) {
		g.paused = !g.paused
	}
	if rl.IsKeyPressed(rl.KeyB) {
		g.setBroadPhase(!g.broadPhase)
	}
	if rl.IsKeyPressed(rl.KeyF1) {
		g.showStats = !g.showStats
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.restart()
	}
	if rl.IsKeyPressed(rl.KeyF5) {
		g.save()
	}
	// single step while paused
	if g.paused && rl.IsKeyPressed(rl.KeyN) {
		g.World.Update(g.stepper.dt)
	}
}

func (g *Game) setBroadPhase(enabled bool) {
	g.broadPhase = enabled
	g.World.SetUseBroadPhase(enabled)
}

func (g *Game) restart() {
	if err := g.World.Restart(); err != nil {
		g.log.Error("restart failed", zap.Error(err))
		g.setStatus("Restart failed")
		return
	}
	g.stepper.reset()
	g.setStatus("Scene restarted")
}

func (g *Game) save() {
	path := filepath.Join(g.SaveDir, fmt.Sprintf("snapshot_%s.yaml", time.Now().Format("20060102_150405")))
	if err := g.World.SaveScene(path); err != nil {
		g.log.Error("save failed", zap.Error(err))
		g.setStatus("Save failed")
		return
	}
	g.log.Info("scene saved", zap.String("path", path))
	g.setStatus("Saved " + path)
}

// kick pushes the ball under the cursor away from the camera and upward.
func (g *Game) kick() {
	cam := g.Camera.GetRaylibCamera()
	ray := rl.GetScreenToWorldRay(rl.GetMousePosition(), cam)
	dir := rl.Vector3Normalize(ray.Direction)
	dv := rl.Vector3Add(rl.Vector3Scale(dir, kickSpeed), rl.Vector3{Y: kickSpeed / 2})

	if hit := g.World.Kick(ray.Position, dir, kickDistance, dv); hit != nil {
		g.setStatus("Kicked " + hit.Name)
	}
}

func (g *Game) setStatus(msg string) {
	g.status = msg
	g.statusTTL = 2
}

func (g *Game) Draw() {
	camera := g.Camera.GetRaylibCamera()

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	drawStart := time.Now()
	rl.BeginMode3D(camera)
	var stats physics.BroadPhaseStats
	var entities int
	g.World.View(func(scene *engine.Scene, pw *physics.World) {
		for _, obj := range scene.GameObjects {
			if renderer := engine.GetComponent[*components.MeshRenderer](obj); renderer != nil {
				renderer.Draw()
			}
		}
		stats = pw.BroadPhaseStats()
		entities = len(pw.Entities())
	})
	rl.EndMode3D()
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.DrawUI(stats, entities)
	rl.EndDrawing()
}
