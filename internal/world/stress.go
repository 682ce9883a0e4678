package world

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"physim/internal/config"
)

// DefaultStressCounts are the sphere counts the stress benchmark sweeps.
var DefaultStressCounts = []int{50, 100, 200, 300, 500}

// StressRun is the outcome of stepping one stress scene with the broad phase
// either on or off.
type StressRun struct {
	Count      int
	BroadPhase bool
	Stats      RunStats
	// Broad-phase counters summed over all ticks. Without the broad phase
	// every pair is checked.
	ChecksPerformed int
	ChecksSaved     int
}

// StressResult pairs the two runs for one sphere count.
type StressResult struct {
	Count   int
	With    StressRun
	Without StressRun
}

// Speedup is the average tick time without the broad phase divided by the
// time with it.
func (r StressResult) Speedup() float64 {
	if r.With.Stats.AvgUpdate() == 0 {
		return 0
	}
	return float64(r.Without.Stats.AvgUpdate()) / float64(r.With.Stats.AvgUpdate())
}

func (r StressResult) String() string {
	return fmt.Sprintf("%4d spheres: broad phase %8v (%7d checks, %7d saved) | all pairs %8v (%7d checks) | %.2fx",
		r.Count,
		r.With.Stats.AvgUpdate().Round(time.Microsecond), r.With.ChecksPerformed, r.With.ChecksSaved,
		r.Without.Stats.AvgUpdate().Round(time.Microsecond), r.Without.ChecksPerformed,
		r.Speedup())
}

type StressOptions struct {
	Counts   []int
	Ticks    int
	Seed     int64
	Parallel int // concurrent scenario runs, at least 1
}

// RunStress builds the stress scene for every count and steps it with and
// without the broad phase. Both runs of a count start from identical copies
// of the same scene. Results are returned in Counts order.
func RunStress(ctx context.Context, cfg *config.Config, opts StressOptions, log *zap.Logger) ([]StressResult, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Parallel < 1 {
		opts.Parallel = 1
	}

	runs := make([]StressRun, 2*len(opts.Counts))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Parallel)

	for i, count := range opts.Counts {
		base := StressScene(count, opts.Seed)
		for j, broadPhase := range []bool{true, false} {
			sf, err := base.Clone()
			if err != nil {
				return nil, err
			}
			slot := &runs[2*i+j]
			g.Go(func() error {
				run, err := stressRun(ctx, cfg, sf, count, broadPhase, opts.Ticks)
				if err != nil {
					return fmt.Errorf("stress %d (broad phase %t): %w", count, broadPhase, err)
				}
				*slot = run
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make([]StressResult, len(opts.Counts))
	for i, count := range opts.Counts {
		results[i] = StressResult{Count: count, With: runs[2*i], Without: runs[2*i+1]}
		log.Info("stress result",
			zap.Int("spheres", count),
			zap.Duration("broad_phase_avg", results[i].With.Stats.AvgUpdate()),
			zap.Duration("all_pairs_avg", results[i].Without.Stats.AvgUpdate()),
			zap.Float64("speedup", results[i].Speedup()))
	}
	return results, nil
}

func stressRun(ctx context.Context, cfg *config.Config, sf *SceneFile, count int, broadPhase bool, ticks int) (StressRun, error) {
	w := New(cfg, nil)
	if err := w.Build(sf); err != nil {
		return StressRun{}, err
	}
	w.SetUseBroadPhase(broadPhase)

	run := StressRun{Count: count, BroadPhase: broadPhase}
	// all pairs among spheres plus every sphere against the ground
	allPairs := (count+1)*count/2

	simCfg := cfg.Simulation
	simCfg.Ticks = ticks
	simCfg.ReportEvery = 0
	r := NewRunner(w, simCfg, nil, OnTick(func(int) {
		if !broadPhase {
			run.ChecksPerformed += allPairs
			return
		}
		checks, saved := w.Physics().Statistics()
		run.ChecksPerformed += checks
		run.ChecksSaved += saved
	}))
	if err := r.Run(ctx); err != nil {
		return StressRun{}, err
	}
	if err := ctx.Err(); err != nil {
		return StressRun{}, err
	}
	run.Stats = r.Stats()
	return run, nil
}
