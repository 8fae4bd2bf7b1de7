package pomcp

// Simulator is the core's only window onto the problem being planned for.
// The core never constructs concrete problem state or reasons about domain
// semantics; it calls these methods as a black box generative model of a
// partially observable stochastic environment.
type Simulator interface {
	// CreateStartState samples a (possibly stochastic) initial state.
	CreateStartState() State
	// FreeState releases a state previously returned by CreateStartState or
	// Copy.
	FreeState(State)
	// Copy returns an independent copy of state.
	Copy(state State) State
	// Step mutates state in place according to action, returning the
	// resulting observation and reward, and whether the episode
	// terminated.
	Step(state State, action int) (observation int, reward Result, terminal bool)

	// GetDiscount returns the per-step discount factor, in (0, 1].
	GetDiscount() float64
	// GetRewardRange returns an upper bound on |reward| used to scale
	// exploration, >= 0.
	GetRewardRange() float64
	// GetNumActions returns the size of the (fixed) action space, >= 1.
	GetNumActions() int
	// GetNumObservations returns the size of the (fixed) observation
	// space, >= 1.
	GetNumObservations() int

	// GetHorizon returns the planning horizon for the given accuracy and,
	// when Discount == 1, the undiscounted horizon verbatim.
	GetHorizon(accuracy Result, undiscountedHorizon int) int
}

// LocalMover is an optional hook used for particle reinvigoration: it
// perturbs state in place into a nearby, still-history-consistent state,
// returning whether the perturbation was accepted.
type LocalMover interface {
	LocalMove(state State, history *History, lastObservation int, status Status) bool
}

// LegalGenerator is an optional hook returning the set of legal actions in
// state, used by both tree priors and SelectRandom's LEGAL knowledge level.
type LegalGenerator interface {
	GenerateLegal(state State, history *History, status Status) []int
}

// PreferredGenerator is an optional hook returning a (possibly empty) set of
// domain-preferred actions in state, used by tree priors and SelectRandom's
// SMART knowledge level.
type PreferredGenerator interface {
	GeneratePreferred(state State, history *History, status Status) []int
}

// RandomSelector lets a Simulator override the default uniform rollout
// policy entirely. When absent, the core's default SelectRandom honours
// RolloutLevel via LegalGenerator/PreferredGenerator.
type RandomSelector interface {
	SelectRandom(state State, history *History, status Status, rng RNG) int
}

// AlphaValuer exposes an optional closed-form POMDP alpha-vector value
// function, used only for explicit-POMDP comparison experiments; the core
// never requires it.
type AlphaValuer interface {
	HasAlpha() bool
	AlphaValue(q *QNode) (value Result, count int)
	UpdateAlpha(q *QNode, state State)
}

// Displayer lets a Simulator render diagnostics for Verbose output. The core
// type-asserts for the whole interface; a Simulator that does not implement
// all four methods gets the raw values logged instead.
type Displayer interface {
	DisplayState(state State) string
	DisplayAction(action int) string
	DisplayObservation(state State, observation int) string
	DisplayReward(reward Result) string
}

// displayAction renders action via sim's Displayer if it implements one,
// else falls back to the bare action index.
func displayAction(sim Simulator, action int) any {
	if d, ok := sim.(Displayer); ok {
		return d.DisplayAction(action)
	}
	return action
}

// displayObservation renders observation via sim's Displayer if it
// implements one, else falls back to the bare observation index.
func displayObservation(sim Simulator, state State, observation int) any {
	if d, ok := sim.(Displayer); ok {
		return d.DisplayObservation(state, observation)
	}
	return observation
}

// displayReward renders reward via sim's Displayer if it implements one,
// else falls back to the bare numeric reward.
func displayReward(sim Simulator, reward Result) any {
	if d, ok := sim.(Displayer); ok {
		return d.DisplayReward(reward)
	}
	return reward
}

// displayState renders state via sim's Displayer if it implements one, else
// falls back to the raw state value.
func displayState(sim Simulator, state State) any {
	if d, ok := sim.(Displayer); ok {
		return d.DisplayState(state)
	}
	return state
}

// Knowledge controls how much domain knowledge a Simulator contributes to
// tree priors (TreeLevel) and rollout action selection (RolloutLevel).
type Knowledge struct {
	RolloutLevel   KnowledgeLevel `yaml:"rollout_level"`
	TreeLevel      KnowledgeLevel `yaml:"tree_level"`
	SmartTreeCount int            `yaml:"smart_tree_count"`
	SmartTreeValue Result         `yaml:"smart_tree_value"`
}

// DefaultKnowledge returns reasonable out-of-the-box knowledge settings.
func DefaultKnowledge() Knowledge {
	return Knowledge{
		RolloutLevel:   KnowledgeLegal,
		TreeLevel:      KnowledgeLegal,
		SmartTreeCount: 10,
		SmartTreeValue: 1.0,
	}
}

// Level returns the knowledge level applicable to the given search phase.
func (k Knowledge) Level(phase Phase) KnowledgeLevel {
	if phase == PhaseTree {
		return k.TreeLevel
	}
	return k.RolloutLevel
}
