package world

import (
	"context"
	"time"

	"go.uber.org/zap"

	"physim/internal/config"
	"physim/internal/engine"
	"physim/internal/physics"
)

// RunStats accumulates update timings over a run.
type RunStats struct {
	Ticks       int
	TotalUpdate time.Duration
	MinUpdate   time.Duration
	MaxUpdate   time.Duration
}

func (s RunStats) AvgUpdate() time.Duration {
	if s.Ticks == 0 {
		return 0
	}
	return s.TotalUpdate / time.Duration(s.Ticks)
}

func (s *RunStats) record(d time.Duration) {
	if s.Ticks == 0 || d < s.MinUpdate {
		s.MinUpdate = d
	}
	if d > s.MaxUpdate {
		s.MaxUpdate = d
	}
	s.Ticks++
	s.TotalUpdate += d
}

// Runner steps a World with a fixed tick. In real-time mode ticks are paced
// by a ticker; otherwise they run back to back.
type Runner struct {
	world       *World
	tickRate    time.Duration
	maxTicks    int
	reportEvery int
	realtime    bool
	onTick      func(tick int)
	log         *zap.Logger

	stats RunStats
}

type RunnerOption func(*Runner)

// Realtime paces ticks to wall clock time.
func Realtime() RunnerOption {
	return func(r *Runner) { r.realtime = true }
}

// OnTick registers a callback run after every tick, outside the world lock.
func OnTick(fn func(tick int)) RunnerOption {
	return func(r *Runner) { r.onTick = fn }
}

func NewRunner(w *World, cfg config.SimulationConfig, log *zap.Logger, opts ...RunnerOption) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Runner{
		world:       w,
		tickRate:    cfg.TickRate,
		maxTicks:    cfg.Ticks,
		reportEvery: cfg.ReportEvery,
		log:         log,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run ticks until the tick limit is reached or ctx is cancelled. Cancellation
// is a normal stop and returns nil.
func (r *Runner) Run(ctx context.Context) error {
	dt := float32(r.tickRate.Seconds())
	r.log.Info("runner started",
		zap.Duration("tick", r.tickRate),
		zap.Int("ticks", r.maxTicks),
		zap.Bool("realtime", r.realtime))

	var ticker *time.Ticker
	if r.realtime {
		ticker = time.NewTicker(r.tickRate)
		defer ticker.Stop()
	}

	for r.maxTicks == 0 || r.stats.Ticks < r.maxTicks {
		if ctx.Err() != nil {
			r.stop("cancelled")
			return nil
		}
		if ticker != nil {
			select {
			case <-ctx.Done():
				r.stop("cancelled")
				return nil
			case <-ticker.C:
			}
		}
		r.tick(dt)
	}
	r.stop("tick limit reached")
	return nil
}

func (r *Runner) tick(dt float32) {
	start := time.Now()
	r.world.Update(dt)
	r.stats.record(time.Since(start))

	if r.onTick != nil {
		r.onTick(r.stats.Ticks)
	}
	if r.reportEvery > 0 && r.stats.Ticks%r.reportEvery == 0 {
		r.report()
	}
}

func (r *Runner) report() {
	var bp physics.BroadPhaseStats
	var broadPhase bool
	r.world.View(func(_ *engine.Scene, pw *physics.World) {
		bp = pw.BroadPhaseStats()
		broadPhase = pw.UsingBroadPhase()
	})
	fields := []zap.Field{
		zap.Int("tick", r.stats.Ticks),
		zap.Duration("avg_update", r.stats.AvgUpdate()),
		zap.Duration("max_update", r.stats.MaxUpdate),
	}
	if broadPhase {
		fields = append(fields,
			zap.Int("pairs", bp.PotentialPairs),
			zap.Int("checks", bp.ChecksPerformed),
			zap.Int("saved", bp.ChecksSaved))
	}
	r.log.Info("tick stats", fields...)
}

func (r *Runner) stop(reason string) {
	r.log.Info("runner stopped",
		zap.String("reason", reason),
		zap.Int("ticks", r.stats.Ticks),
		zap.Duration("avg_update", r.stats.AvgUpdate()))
}

func (r *Runner) Stats() RunStats {
	return r.stats
}
