// Headless fixed-step simulation of a scene file or the built-in ball scene
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"physim/internal/config"
	"physim/internal/engine"
	"physim/internal/logging"
	"physim/internal/physics"
	"physim/internal/world"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	scenePath := flag.String("scene", "", "scene file (overrides config)")
	ticks := flag.Int("ticks", -1, "ticks to run, 0 = until interrupted (overrides config)")
	realtime := flag.Bool("realtime", false, "pace ticks to wall clock")
	savePath := flag.String("save", "", "write the final scene state to this file")
	flag.Parse()

	cfg, err := config.LoadDefault()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *scenePath != "" {
		cfg.Simulation.Scene = *scenePath
	}
	if *ticks >= 0 {
		cfg.Simulation.Ticks = *ticks
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	w := world.New(cfg, log)
	if cfg.Simulation.Scene != "" {
		err = w.LoadScene(cfg.Simulation.Scene)
	} else {
		err = w.Build(world.BallScene(cfg.Simulation.Seed))
	}
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var opts []world.RunnerOption
	if *realtime {
		opts = append(opts, world.Realtime())
	}
	r := world.NewRunner(w, cfg.Simulation, log.Named("runner"), opts...)
	if err := r.Run(ctx); err != nil {
		return err
	}

	w.View(func(scene *engine.Scene, pw *physics.World) {
		for _, g := range scene.GameObjects {
			if !g.HasTag("ball") {
				continue
			}
			log.Debug("final state",
				zap.String("object", g.Name),
				zap.Float32("x", g.Transform.Position.X),
				zap.Float32("y", g.Transform.Position.Y),
				zap.Float32("z", g.Transform.Position.Z))
		}
		log.Info("done", zap.Int("entities", len(pw.Entities())), zap.Int("ticks", r.Stats().Ticks))
	})

	if *savePath != "" {
		if err := w.SaveScene(*savePath); err != nil {
			return err
		}
		log.Info("scene saved", zap.String("path", *savePath))
	}
	return nil
}
