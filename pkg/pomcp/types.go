// Package pomcp implements a Partially Observable Monte Carlo Planning
// (POMCP) engine: an online planner that chooses actions by running
// simulated trajectories through a generative model, maintaining a search
// tree keyed by action-observation history and a particle-filter belief
// over hidden state.
package pomcp

// Result is the value type flowing through returns, rewards and statistics.
type Result = float64

// State is an opaque, Simulator-owned state handle. The core never inspects
// it; it is produced only by Simulator.CreateStartState/Copy and released
// only by Simulator.FreeState.
type State any

// Phase identifies which half of a simulation produced a value, used by
// Simulator hooks that behave differently in-tree vs during rollout.
type Phase int

const (
	PhaseTree Phase = iota
	PhaseRollout
)

// ParticleStatus describes the consistency of the belief used to seed the
// current simulation.
type ParticleStatus int

const (
	ParticlesConsistent ParticleStatus = iota
	ParticlesInconsistent
	ParticlesResampled
	ParticlesOutOfParticles
)

// Status carries the phase/particle bookkeeping a Simulator hook may want to
// inspect.
type Status struct {
	Phase     Phase
	Particles ParticleStatus
}

// KnowledgeLevel controls how much domain knowledge a Simulator contributes
// to tree priors (TreeLevel) and rollout action selection (RolloutLevel).
type KnowledgeLevel int

const (
	KnowledgePure KnowledgeLevel = iota
	KnowledgeLegal
	KnowledgeSmart
)
