// Package experiment drives POMCP episodes and simulation-budget sweeps
// against a pomcp.Simulator, running repeated episodes and aggregating
// their outcomes the way a benchmark harness drives repeated matches
// against a search engine.
package experiment

import "time"

// Params configures one episode or sweep run.
type Params struct {
	// NumSteps bounds a single episode's length.
	NumSteps int `yaml:"num_steps"`
	// NumRuns is the number of full episodes averaged per sweep row.
	NumRuns int `yaml:"num_runs"`
	// TimeOut bounds wall-clock time, both per episode (Run) and
	// cumulatively across a MultiRun or sweep; zero means unbounded.
	TimeOut time.Duration `yaml:"time_out"`

	// MinDoubles/MaxDoubles bound the sweep's i in NumSimulations = 2^i.
	MinDoubles int `yaml:"min_doubles"`
	MaxDoubles int `yaml:"max_doubles"`
	// TransformDoubles offsets the transform-count exponent:
	// NumTransforms = max(1, 2^(i+TransformDoubles)).
	TransformDoubles int `yaml:"transform_doubles"`
	// TransformAttempts scales MaxAttempts = NumTransforms * TransformAttempts.
	TransformAttempts int `yaml:"transform_attempts"`

	// Accuracy and UndiscountedHorizon feed pomcp.Horizon when a run wants
	// its planner's MaxDepth derived from accuracy rather than set
	// directly; Accuracy <= 0 disables this (MaxDepth is left as given).
	Accuracy            float64 `yaml:"accuracy"`
	UndiscountedHorizon int     `yaml:"undiscounted_horizon"`

	// Name identifies this experiment for CSV output: OutputPath maps
	// "default" to /dev/null.
	Name string `yaml:"name"`
}

// DefaultParams returns reasonable out-of-the-box experiment defaults.
func DefaultParams() Params {
	return Params{
		NumSteps:            100,
		NumRuns:              1000,
		TimeOut:              time.Hour,
		MinDoubles:           0,
		MaxDoubles:           20,
		TransformDoubles:     -4,
		TransformAttempts:    10,
		Accuracy:             0.01,
		UndiscountedHorizon: 100,
		Name:                 "default",
	}
}
