package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mtorres-dev/go-pomcp/pkg/config"
	"github.com/mtorres-dev/go-pomcp/pkg/experiment"
)

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	real, sim, err := newSimulator(problem, seed)
	if err != nil {
		return err
	}

	log := newLogger()
	exp := &experiment.Experiment{
		RealSim:       real,
		SimulationSim: sim,
		PlannerParams: cfg.Planner,
		Knowledge:     cfg.Knowledge,
		Params:        cfg.Experiment,
		Seed:          newSeedFunc(seed),
		Log:           log,
	}

	result := exp.Run()
	fmt.Printf("steps=%d discounted=%.4f undiscounted=%.4f elapsed=%s exhausted=%v\n",
		result.Steps, result.Discounted, result.Undiscounted, result.Elapsed, result.Exhausted)
	return nil
}

func loadConfig() (config.File, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	return config.Load(configPath)
}
