package world

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"physim/internal/components"
	"physim/internal/config"
	"physim/internal/engine"
	"physim/internal/physics"
)

func TestWorldBuildBallScene(t *testing.T) {
	w := New(nil, nil)
	if err := w.Build(BallScene(1)); err != nil {
		t.Fatalf("Build: %v", err)
	}

	pw := w.Physics()
	if n := len(pw.Entities()); n != BallCount+1 {
		t.Errorf("Expected %d entities, got %d", BallCount+1, n)
	}
	if pw.UpdateType() != physics.HeckerVerlet {
		t.Errorf("Expected hecker_verlet, got %v", pw.UpdateType())
	}
	if w.Scene().Name != "balls" {
		t.Errorf("Expected scene balls, got %s", w.Scene().Name)
	}
}

func TestWorldBallsSettleAboveGround(t *testing.T) {
	w := New(nil, nil)
	if err := w.Build(BallScene(3)); err != nil {
		t.Fatalf("Build: %v", err)
	}

	for range 1200 {
		w.Update(1.0 / 60)
	}

	w.View(func(scene *engine.Scene, _ *physics.World) {
		for _, g := range scene.FindByTag("ball") {
			if y := g.Transform.Position.Y; y < 0 {
				t.Errorf("%s sank below the ground: y = %v", g.Name, y)
			}
		}
	})
}

func TestWorldBuildKeepsPreviousSceneOnError(t *testing.T) {
	w := New(nil, nil)
	if err := w.Build(BallScene(1)); err != nil {
		t.Fatalf("Build: %v", err)
	}

	bad := &SceneFile{Name: "bad", Objects: []ObjectDef{{
		Name:       "Broken",
		Components: []ComponentDef{{Type: "SphereCollider", Radius: -1}},
	}}}
	if err := w.Build(bad); err == nil {
		t.Fatal("Expected error for negative radius")
	}
	if w.Scene().Name != "balls" {
		t.Errorf("Previous scene should be kept, got %s", w.Scene().Name)
	}
}

func TestWorldBuildUsesConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Physics.Solver = "naive_euler"

	w := New(cfg, nil)
	if err := w.Build(StressScene(10, 1)); err != nil {
		t.Fatalf("Build: %v", err)
	}
	if w.Physics().UpdateType() != physics.NaiveEuler {
		t.Errorf("Expected naive_euler, got %v", w.Physics().UpdateType())
	}
}

func TestWorldBroadPhaseToggleSurvivesRebuild(t *testing.T) {
	w := New(nil, nil)
	if err := w.Build(BallScene(1)); err != nil {
		t.Fatalf("Build: %v", err)
	}
	w.SetUseBroadPhase(false)
	if err := w.Restart(); err != nil {
		t.Fatalf("Restart: %v", err)
	}
	if w.Physics().UsingBroadPhase() {
		t.Error("Broad phase should stay disabled after restart")
	}
}

func TestWorldRestartRestoresInitialState(t *testing.T) {
	w := New(nil, nil)
	sf := BallScene(5)
	if err := w.Build(sf); err != nil {
		t.Fatalf("Build: %v", err)
	}
	startY := sf.Objects[1].Position[1]

	for range 30 {
		w.Update(1.0 / 60)
	}
	if err := w.Restart(); err != nil {
		t.Fatalf("Restart: %v", err)
	}

	g := w.Scene().FindByName("Ball_0")
	if g.Transform.Position.Y != startY {
		t.Errorf("Expected restart to restore y %v, got %v", startY, g.Transform.Position.Y)
	}
}

func TestWorldLoadAndSaveScene(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "balls.yaml")
	if err := BallScene(9).Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	w := New(nil, nil)
	if err := w.LoadScene(path); err != nil {
		t.Fatalf("LoadScene: %v", err)
	}
	for range 10 {
		w.Update(1.0 / 60)
	}

	out := filepath.Join(dir, "after.yaml")
	if err := w.SaveScene(out); err != nil {
		t.Fatalf("SaveScene: %v", err)
	}
	sf, err := LoadSceneFile(out)
	if err != nil {
		t.Fatalf("LoadSceneFile: %v", err)
	}
	if len(sf.Objects) != BallCount+1 {
		t.Errorf("Expected %d objects in snapshot, got %d", BallCount+1, len(sf.Objects))
	}
}

func TestWorldKick(t *testing.T) {
	sf := &SceneFile{Name: "kick", Objects: []ObjectDef{
		sphereDef("Target", []float32{0, 1, 0}, nil, 0.5, 0.5, "Red"),
	}}
	sf.Objects[0].Components[1].UseGravity = ptr(false)

	w := New(nil, nil)
	if err := w.Build(sf); err != nil {
		t.Fatalf("Build: %v", err)
	}

	g := w.Kick(rl.Vector3{Y: 1, Z: -10}, rl.Vector3{Z: 1}, 100, rl.Vector3{Y: 3})
	if g == nil || g.Name != "Target" {
		t.Fatalf("Expected to kick Target, got %v", g)
	}
	rb := engine.GetComponent[*components.Rigidbody](g)
	if v := rb.CurrentVelocity(); v != (rl.Vector3{Y: 3}) {
		t.Errorf("Expected velocity (0,3,0), got %v", v)
	}

	if miss := w.Kick(rl.Vector3{Y: 5, Z: -10}, rl.Vector3{Z: 1}, 100, rl.Vector3{Y: 3}); miss != nil {
		t.Errorf("Expected miss, got %s", miss.Name)
	}
}

func TestRunnerStopsAtTickLimit(t *testing.T) {
	w := New(nil, nil)
	if err := w.Build(BallScene(1)); err != nil {
		t.Fatalf("Build: %v", err)
	}
	cfg := config.Default().Simulation
	cfg.Ticks = 25
	cfg.ReportEvery = 10

	var seen int
	r := NewRunner(w, cfg, nil, OnTick(func(tick int) { seen = tick }))
	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	stats := r.Stats()
	if stats.Ticks != 25 || seen != 25 {
		t.Errorf("Expected 25 ticks, got %d (callback saw %d)", stats.Ticks, seen)
	}
	if stats.MinUpdate > stats.AvgUpdate() || stats.AvgUpdate() > stats.MaxUpdate {
		t.Errorf("Inconsistent timings %+v", stats)
	}
}

func TestRunnerHonorsCancellation(t *testing.T) {
	w := New(nil, nil)
	if err := w.Build(BallScene(1)); err != nil {
		t.Fatalf("Build: %v", err)
	}
	cfg := config.Default().Simulation
	cfg.TickRate = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	r := NewRunner(w, cfg, nil, Realtime(), OnTick(func(tick int) {
		if tick == 5 {
			cancel()
		}
	}))

	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Cancellation should stop cleanly, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Runner did not stop after cancellation")
	}
	if r.Stats().Ticks != 5 {
		t.Errorf("Expected 5 ticks before stopping, got %d", r.Stats().Ticks)
	}
}

func TestRunStatsEmpty(t *testing.T) {
	if (RunStats{}).AvgUpdate() != 0 {
		t.Error("Empty stats should average to zero")
	}
}
