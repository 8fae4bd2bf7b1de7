package experiment

import (
	"log/slog"
	"time"

	"github.com/mtorres-dev/go-pomcp/pkg/pomcp"
)

// Experiment drives episodes of "plan with SimulationSim, act in RealSim"
// against a pomcp.Planner — generalized from "play N games between two
// strategies" to "run N episodes of one planner against one environment".
// RealSim and SimulationSim are split so that model-mismatch experiments (a
// planner reasoning over an approximate model of a more detailed real
// world) are representable; the common case sets them equal.
type Experiment struct {
	RealSim       pomcp.Simulator
	SimulationSim pomcp.Simulator

	PlannerParams pomcp.PlannerParams
	Knowledge     pomcp.Knowledge
	Params        Params

	Seed pomcp.SeedFunc
	Log  *slog.Logger
}

// Run plays one episode: construct a fresh planner, then alternate
// SelectAction / RealSim.Step / Planner.Update until termination, NumSteps,
// or TimeOut, falling back to simulator-driven random play the moment
// Update reports particle exhaustion.
func (e *Experiment) Run() EpisodeResult {
	start := time.Now()

	plannerParams := e.PlannerParams
	if e.Params.Accuracy > 0 {
		plannerParams.MaxDepth = e.SimulationSim.GetHorizon(e.Params.Accuracy, e.Params.UndiscountedHorizon)
	}

	planner := pomcp.NewPlanner(e.SimulationSim, plannerParams, e.Knowledge, e.Seed, e.Log)

	realState := e.RealSim.CreateStartState()
	defer e.RealSim.FreeState(realState)

	var history pomcp.History
	status := pomcp.Status{}

	var undisc, disc float64
	discountFactor := 1.0
	fallback := false
	steps := 0

	for t := 0; t < e.Params.NumSteps; t++ {
		var action int
		if fallback {
			action = e.fallbackAction(planner, realState, &history, status)
		} else {
			action = planner.SelectAction()
		}

		observation, reward, terminal := e.RealSim.Step(realState, action)
		history.Add(action, observation)
		steps++

		undisc += reward
		disc += discountFactor * reward
		discountFactor *= e.RealSim.GetDiscount()

		if terminal {
			break
		}

		if !fallback {
			if !planner.Update(action, observation, reward) {
				fallback = true
				status = pomcp.Status{Phase: pomcp.PhaseRollout, Particles: pomcp.ParticlesOutOfParticles}
				if e.Log != nil {
					e.Log.Info("experiment: particle exhaustion, falling back to random play", "step", t)
				}
			}
		}

		if e.Params.TimeOut > 0 && time.Since(start) > e.Params.TimeOut {
			break
		}
	}

	return EpisodeResult{
		Discounted:   disc,
		Undiscounted: undisc,
		Steps:        steps,
		Elapsed:      time.Since(start),
		Exhausted:    fallback,
	}
}

// fallbackAction picks a real-world action once the tree has been
// abandoned: the simulation simulator's own RandomSelector override if it
// has one, else the package default knowledge-guided policy, drawing from
// the (now rootless) planner's still-live RNG.
func (e *Experiment) fallbackAction(planner *pomcp.Planner, state pomcp.State, history *pomcp.History, status pomcp.Status) int {
	if rs, ok := e.SimulationSim.(pomcp.RandomSelector); ok {
		return rs.SelectRandom(state, history, status, planner.RNG())
	}
	return pomcp.SelectRandom(e.SimulationSim, state, history, status, e.Knowledge, planner.RNG())
}

// MultiRun runs Params.NumRuns episodes back to back (or until the sweep's
// cumulative TimeOut is exceeded), returning every result.
func (e *Experiment) MultiRun() []EpisodeResult {
	results := make([]EpisodeResult, 0, e.Params.NumRuns)
	start := time.Now()

	for i := 0; i < e.Params.NumRuns; i++ {
		results = append(results, e.Run())
		if e.Params.TimeOut > 0 && time.Since(start) > e.Params.TimeOut {
			break
		}
	}

	return results
}

// DiscountedReturn sweeps NumSimulations/NumStartStates over
// [2^MinDoubles, 2^MaxDoubles], running MultiRun at each budget and
// aggregating mean +/- standard error of discounted/undiscounted return and
// per-episode wall-clock time into one row per budget.
func (e *Experiment) DiscountedReturn() []SweepResult {
	return e.sweep(func(r EpisodeResult) float64 { return r.Undiscounted }, func(r EpisodeResult) float64 { return r.Discounted })
}

// AverageReward is a second sweep mode: instead of episodic discounted
// return, it sweeps simulation budget against mean per-step reward, which
// rewards policies that sustain reward over arbitrarily long episodes
// rather than ones that front-load it.
func (e *Experiment) AverageReward() []SweepResult {
	perStep := func(r EpisodeResult) float64 {
		if r.Steps == 0 {
			return 0
		}
		return r.Undiscounted / float64(r.Steps)
	}
	return e.sweep(perStep, perStep)
}

// sweep is the shared budget-doubling loop behind DiscountedReturn and
// AverageReward; they differ only in which scalar of an EpisodeResult feeds
// the "undiscounted"/"discounted" CSV columns.
func (e *Experiment) sweep(undiscMetric, discMetric func(EpisodeResult) float64) []SweepResult {
	rows := make([]SweepResult, 0, e.Params.MaxDoubles-e.Params.MinDoubles+1)
	sweepStart := time.Now()

	for i := e.Params.MinDoubles; i <= e.Params.MaxDoubles; i++ {
		n := 1 << uint(i)

		budget := *e
		budget.PlannerParams = e.PlannerParams
		budget.PlannerParams.NumSimulations = n
		budget.PlannerParams.NumStartStates = n
		budget.PlannerParams.NumTransforms = transformCount(i, e.Params.TransformDoubles)
		budget.PlannerParams.MaxAttempts = budget.PlannerParams.NumTransforms * e.Params.TransformAttempts

		var undisc, disc, elapsed pomcp.RunningStatistic
		for _, r := range budget.MultiRun() {
			undisc.Add(undiscMetric(r))
			disc.Add(discMetric(r))
			elapsed.Add(r.Elapsed.Seconds())
		}

		rows = append(rows, SweepResult{
			Simulations:        n,
			Runs:               undisc.Count(),
			UndiscountedReturn: undisc.Mean(),
			UndiscountedError:  undisc.StdErr(),
			DiscountedReturn:   disc.Mean(),
			DiscountedError:    disc.StdErr(),
			Time:               elapsed.Mean(),
		})

		if e.Params.TimeOut > 0 && time.Since(sweepStart) > e.Params.TimeOut {
			break
		}
	}

	return rows
}

// transformCount computes max(1, 2^(i+transformDoubles)); transformDoubles
// is frequently negative (the default is -4), so the exponent itself can be
// negative, in which case the result floors to 1.
func transformCount(i, transformDoubles int) int {
	exp := i + transformDoubles
	if exp <= 0 {
		return 1
	}
	return 1 << uint(exp)
}
