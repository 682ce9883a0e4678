package main

import (
	"flag"
	"fmt"
	"os"

	"physim/internal/config"
	"physim/internal/game"
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
	scenePath := flag.String("scene", "", "scene file (overrides config)")
	stress := flag.Int("stress", 0, "load a stress scene with this many spheres instead")
	flag.Parse()

	cfg, err := config.LoadDefault()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *scenePath != "" {
		cfg.Simulation.Scene = *scenePath
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	w := world.New(cfg, log)
	switch {
	case *stress > 0:
		err = w.Build(world.StressScene(*stress, cfg.Simulation.Seed))
	case cfg.Simulation.Scene != "":
		err = w.LoadScene(cfg.Simulation.Scene)
	default:
		err = w.Build(world.BallScene(cfg.Simulation.Seed))
	}
	if err != nil {
		return err
	}

	game.New(w, cfg.Simulation.TickRate, log.Named("viewer")).Run()
	return nil
}
