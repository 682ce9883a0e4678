// Stress test comparing sweep and prune against all-pairs collision checks
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"physim/internal/config"
	"physim/internal/logging"
	"physim/internal/world"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ticks := flag.Int("ticks", 300, "ticks per run")
	seed := flag.Int64("seed", 42, "scene seed")
	parallel := flag.Int("parallel", 1, "concurrent runs (timings are only comparable with 1)")
	flag.Parse()

	cfg, err := config.LoadDefault()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *parallel < 1 {
		*parallel = runtime.NumCPU()
	}

	results, err := world.RunStress(ctx, cfg, world.StressOptions{
		Counts:   world.DefaultStressCounts,
		Ticks:    *ticks,
		Seed:     *seed,
		Parallel: *parallel,
	}, log)
	if err != nil {
		return err
	}

	fmt.Printf("%d ticks per run, solver %s\n\n", *ticks, cfg.Physics.UpdateType())
	for _, r := range results {
		fmt.Println(r)
		fmt.Printf("      min/max with %v/%v, without %v/%v\n",
			r.With.Stats.MinUpdate, r.With.Stats.MaxUpdate,
			r.Without.Stats.MinUpdate, r.Without.Stats.MaxUpdate)
	}
	return nil
}
