package pomcp

import (
	"log/slog"
)

// Planner is the POMCP search engine: a search tree keyed by
// action-observation history plus the particle-filter belief at the root,
// grown by repeated UCT simulations and advanced one real step at a time via
// Update. It is polymorphic over a single Simulator capability record rather
// than a family of cooperating type parameters, since there is exactly one
// "move/result" shape here (action/observation/reward), not a family of
// two-player games.
type Planner struct {
	Params    PlannerParams
	Knowledge Knowledge

	sim   Simulator
	arena *arena
	rng   RNG
	log   *slog.Logger

	Root    *VNode
	History History
	Status  Status

	// TreeDepth is the current recursion depth from the root of this
	// simulation, maintained across SimulateV/SimulateQ.
	TreeDepth int
	// realPrefixLen is History.Size() at the last confirmed real step;
	// every simulation starts by truncating History back to this length.
	realPrefixLen int
	// peakTreeDepth is the deepest TreeDepth reached by the simulation
	// currently in flight; reset at the start of each UCTSearch iteration
	// and sampled into StatTreeDepth at the end of it.
	peakTreeDepth int
	// lastAction/lastObservation are the real step Update is currently
	// advancing through; CreateTransform needs them to replay the step on
	// a belief particle before asking LocalMove to reconcile it.
	lastAction      int
	lastObservation int

	StatTreeDepth    RunningStatistic
	StatRolloutDepth RunningStatistic
	StatTotalReward  RunningStatistic
}

// NewPlanner constructs a Planner, allocates the root VNode, samples
// NumStartStates particles into its belief, and seeds the root's prior via
// sim's optional knowledge hooks, evaluated on the first start state (with
// NumStartStates == 0 there is no state and the prior is skipped). InitFastUCB should be called once before the
// first Planner is constructed (it is idempotent, so calling it again here
// would simply be redundant work across many planners — left to the
// caller).
func NewPlanner(sim Simulator, params PlannerParams, knowledge Knowledge, seed SeedFunc, log *slog.Logger) *Planner {
	if log == nil {
		log = slog.Default()
	}
	if params.AutoExploration {
		if params.UseRave {
			params.ExplorationConstant = 0
		} else {
			params.ExplorationConstant = sim.GetRewardRange()
		}
	}

	p := &Planner{
		Params:    params,
		Knowledge: knowledge,
		sim:       sim,
		arena:     newArena(),
		rng:       NewRNG(seed),
		log:       log,
	}

	p.Root = p.arena.allocVNode(sim.GetNumActions())

	for i := 0; i < params.NumStartStates; i++ {
		p.Root.Belief.AddSample(sim.CreateStartState())
	}

	var priorState State
	if p.Root.Belief.Size() > 0 {
		priorState = p.Root.Belief.Particles()[0]
	}
	p.runPrior(priorState, p.Root)

	return p
}

// Simulator returns the Simulator this planner searches with.
func (p *Planner) Simulator() Simulator {
	return p.sim
}

// RNG returns the planner's owned random source, so callers that fall back
// to simulator-driven random play after particle exhaustion (the episode
// driver) can keep drawing from the same seeded stream rather than minting
// an unseeded one of their own.
func (p *Planner) RNG() RNG {
	return p.rng
}

// ArenaLiveNodes reports the number of VNode+QNode allocations currently
// reachable from Root — exposed for the arena-balance test invariant.
func (p *Planner) ArenaLiveNodes() int {
	return p.arena.liveNodes()
}

// runPrior seeds a freshly allocated vnode's QNode stats from the
// simulator's optional domain-knowledge hooks: a no-op at KnowledgePure,
// legal actions zeroed at >=KnowledgeLegal, preferred actions given
// SmartTreeCount/SmartTreeValue at KnowledgeSmart. state may be nil (e.g.
// for a first root built with no start states), in which case the prior is
// always a no-op.
//
// At >=KnowledgeLegal every action starts Forbid()-den, forbidding the whole
// action set by default and un-forbidding only what GenerateLegal actually
// reports: a simulator whose legal-action set is a strict subset of
// [0, NumActions) must never have the rest silently tried by GreedyUCB's
// count-zero tie-break.
func (p *Planner) runPrior(state State, vnode *VNode) {
	if p.Knowledge.TreeLevel == KnowledgePure || state == nil {
		return
	}

	if p.Knowledge.TreeLevel >= KnowledgeLegal {
		if _, ok := p.sim.(LegalGenerator); ok {
			for a := range vnode.Children {
				vnode.Forbid(a)
			}
		}
	}

	if p.Knowledge.TreeLevel >= KnowledgeLegal {
		if lg, ok := p.sim.(LegalGenerator); ok {
			for _, a := range lg.GenerateLegal(state, &p.History, p.Status) {
				vnode.Children[a].Value.Set(0, 0)
				vnode.Children[a].AMAF.Set(0, 0)
			}
		}
	}

	if p.Knowledge.TreeLevel >= KnowledgeSmart {
		if pg, ok := p.sim.(PreferredGenerator); ok {
			for _, a := range pg.GeneratePreferred(state, &p.History, p.Status) {
				vnode.Children[a].Value.Set(p.Knowledge.SmartTreeCount, p.Knowledge.SmartTreeValue)
				vnode.Children[a].AMAF.Set(p.Knowledge.SmartTreeCount, p.Knowledge.SmartTreeValue)
			}
		}
	}
}

// SelectAction runs NumSimulations simulations (UCTSearch, or RolloutSearch
// when DisableTree) and returns the most-visited/highest-mean root action,
// ignoring the UCB exploration bonus (GreedyUCB with ucb=false).
func (p *Planner) SelectAction() int {
	if p.Params.DisableTree {
		p.RolloutSearch()
	} else {
		p.UCTSearch()
	}
	// Drop the last simulation's suffix so History again holds only the
	// real-world prefix.
	p.History.Truncate(p.realPrefixLen)
	return p.GreedyUCB(p.Root, false)
}
