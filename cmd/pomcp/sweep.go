package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mtorres-dev/go-pomcp/pkg/experiment"
)

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	real, sim, err := newSimulator(problem, seed)
	if err != nil {
		return err
	}

	exp := &experiment.Experiment{
		RealSim:       real,
		SimulationSim: sim,
		PlannerParams: cfg.Planner,
		Knowledge:     cfg.Knowledge,
		Params:        cfg.Experiment,
		Seed:          newSeedFunc(seed),
		Log:           newLogger(),
	}

	averageReward, _ := cmd.Flags().GetBool("average-reward")
	var rows []experiment.SweepResult
	if averageReward {
		rows = exp.AverageReward()
	} else {
		rows = exp.DiscountedReturn()
	}

	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		out = experiment.OutputPath(cfg.Experiment.Name)
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := experiment.WriteCSV(f, rows); err != nil {
		return err
	}

	fmt.Printf("wrote %d rows to %s\n", len(rows), out)
	return nil
}
