package pomcp

// PlannerParams configures a Planner.
type PlannerParams struct {
	// MaxDepth is a hard cap on search-tree depth from the root.
	MaxDepth int `yaml:"max_depth"`
	// NumSimulations is the number of simulations SelectAction runs.
	NumSimulations int `yaml:"num_simulations"`
	// NumStartStates is the number of particles injected into the root's
	// belief at planner construction.
	NumStartStates int `yaml:"num_start_states"`
	// ExpandCount is the visit count a QNode must reach before a child
	// VNode is expanded under it for a new observation; until then the
	// simulation continues with a rollout.
	ExpandCount int `yaml:"expand_count"`
	// ExplorationConstant is the UCT constant c. If AutoExploration is set
	// by the caller before construction, it is overwritten with
	// Simulator.GetRewardRange() (0 when UseRave).
	ExplorationConstant float64 `yaml:"exploration_constant"`
	// AutoExploration, when true, makes NewPlanner derive
	// ExplorationConstant from the simulator's reward range (0 if
	// UseRave).
	AutoExploration bool `yaml:"auto_exploration"`

	UseRave      bool    `yaml:"use_rave"`
	RaveConstant float64 `yaml:"rave_constant"`
	RaveDiscount float64 `yaml:"rave_discount"`

	UseTransforms bool `yaml:"use_transforms"`
	NumTransforms int  `yaml:"num_transforms"`
	MaxAttempts   int  `yaml:"max_attempts"`

	// DisableTree runs plain particle-filter rollouts (RolloutSearch)
	// instead of growing a tree.
	DisableTree bool `yaml:"disable_tree"`

	// Verbose: 0=silent, 1=tree ops, 2=per-sim, 3=per-step, 4=per-rollout.
	Verbose int `yaml:"verbose"`

	// SimSteps is read from configuration but never consumed by the
	// search loop; retained for config round-tripping.
	SimSteps int `yaml:"sim_steps"`
	// EnsembleSize is likewise unused by the core.
	EnsembleSize int `yaml:"ensemble_size"`
}

// Verbose levels, named for readability at call sites.
const (
	VerboseSilent     = 0
	VerboseTree       = 1
	VerboseResult     = 2
	VerboseSimulation = 3
	VerboseRollout    = 4
)

// DefaultPlannerParams returns reasonable out-of-the-box defaults.
func DefaultPlannerParams() PlannerParams {
	return PlannerParams{
		MaxDepth:            100,
		NumSimulations:      1000,
		NumStartStates:      1000,
		ExpandCount:         1,
		ExplorationConstant: 1,
		UseRave:             false,
		RaveConstant:        0.01,
		RaveDiscount:        1.0,
		UseTransforms:       true,
		NumTransforms:       100,
		MaxAttempts:         1000,
		DisableTree:         false,
		Verbose:             VerboseSilent,
	}
}
