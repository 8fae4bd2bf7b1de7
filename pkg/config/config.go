// Package config loads and validates the on-disk description of a planning
// run: planner parameters, domain-knowledge levels, and experiment
// parameters, the way jinterlante1206-AleutianLocal's agent/mcts package
// loads its own MCTSFullConfig from YAML.
package config

import (
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/mtorres-dev/go-pomcp/pkg/experiment"
	"github.com/mtorres-dev/go-pomcp/pkg/pomcp"
)

// File is the top-level YAML document: everything needed to construct a
// Planner and drive an Experiment against it.
type File struct {
	Planner    pomcp.PlannerParams `yaml:"planner"`
	Knowledge  pomcp.Knowledge     `yaml:"knowledge"`
	Experiment experiment.Params   `yaml:"experiment"`
}

// Default returns a File populated with every package's own defaults.
func Default() File {
	return File{
		Planner:    pomcp.DefaultPlannerParams(),
		Knowledge:  pomcp.DefaultKnowledge(),
		Experiment: experiment.DefaultParams(),
	}
}

// Load reads and decodes path over Default(), then validates the result.
// The YAML decode error (if any) is wrapped with errors.Wrapf so the
// caller's message carries the offending path.
func Load(path string) (File, error) {
	f := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return f, errors.Wrapf(err, "read config %s", path)
	}

	if err := yaml.Unmarshal(data, &f); err != nil {
		return f, errors.Wrapf(err, "parse config %s", path)
	}

	if err := f.Validate(); err != nil {
		return f, errors.Wrapf(err, "invalid config %s", path)
	}

	return f, nil
}

// Validate aggregates every violated constraint via a multierror rather
// than returning only the first one found, so a caller fixing a config file
// sees every problem in one pass.
func (f File) Validate() error {
	var result *multierror.Error

	if f.Planner.MaxDepth < 0 {
		result = multierror.Append(result, errors.New("planner.max_depth must be >= 0"))
	}
	if f.Planner.NumSimulations < 0 {
		result = multierror.Append(result, errors.New("planner.num_simulations must be >= 0"))
	}
	if f.Planner.NumStartStates < 0 {
		result = multierror.Append(result, errors.New("planner.num_start_states must be >= 0"))
	}
	if f.Planner.ExpandCount < 0 {
		result = multierror.Append(result, errors.New("planner.expand_count must be >= 0"))
	}
	if f.Planner.NumTransforms < 0 {
		result = multierror.Append(result, errors.New("planner.num_transforms must be >= 0"))
	}
	if f.Planner.MaxAttempts < 0 {
		result = multierror.Append(result, errors.New("planner.max_attempts must be >= 0"))
	}
	if f.Planner.RaveDiscount < 0 || f.Planner.RaveDiscount > 1 {
		result = multierror.Append(result, errors.New("planner.rave_discount must be within [0, 1]"))
	}

	if f.Experiment.NumSteps < 0 {
		result = multierror.Append(result, errors.New("experiment.num_steps must be >= 0"))
	}
	if f.Experiment.NumRuns < 0 {
		result = multierror.Append(result, errors.New("experiment.num_runs must be >= 0"))
	}
	if f.Experiment.MinDoubles < 0 {
		result = multierror.Append(result, errors.New("experiment.min_doubles must be >= 0"))
	}
	if f.Experiment.MaxDoubles < f.Experiment.MinDoubles {
		result = multierror.Append(result, errors.New("experiment.max_doubles must be >= min_doubles"))
	}
	if f.Experiment.Accuracy < 0 || f.Experiment.Accuracy >= 1 {
		result = multierror.Append(result, errors.New("experiment.accuracy must be within [0, 1)"))
	}
	if f.Experiment.Name == "" {
		result = multierror.Append(result, errors.New("experiment.name must not be empty"))
	}

	if f.Knowledge.SmartTreeCount < 0 {
		result = multierror.Append(result, errors.New("knowledge.smart_tree_count must be >= 0"))
	}

	return result.ErrorOrNil()
}
