package experiment

import "time"

// EpisodeResult is what one call to Experiment.Run produces.
type EpisodeResult struct {
	Discounted   float64
	Undiscounted float64
	Steps        int
	Elapsed      time.Duration
	// Exhausted records whether particle exhaustion forced a fallback to
	// simulator-driven random play partway through the episode.
	Exhausted bool
}

// SweepResult is one row of a simulation-budget sweep: the aggregated
// outcome of NumRuns episodes run at a fixed (NumSimulations, NumStartStates,
// NumTransforms, MaxAttempts) configuration.
type SweepResult struct {
	Simulations int
	Runs        int

	UndiscountedReturn float64
	UndiscountedError  float64
	DiscountedReturn   float64
	DiscountedError    float64

	// Time is the mean wall-clock seconds per episode.
	Time float64
}
