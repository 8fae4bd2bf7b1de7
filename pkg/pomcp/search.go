package pomcp

// sampleRootState draws a particle from Root's belief and copies it, or
// falls back to a fresh start state when the belief is empty.
func (p *Planner) sampleRootState() State {
	if p.Root.Belief.Size() > 0 {
		return p.sim.Copy(p.Root.Belief.GetSample(p.rng))
	}
	return p.sim.CreateStartState()
}

// UCTSearch runs Params.NumSimulations simulations, each starting from a
// fresh root state and descending SimulateV.
func (p *Planner) UCTSearch() {
	for i := 0; i < p.Params.NumSimulations; i++ {
		state := p.sampleRootState()
		p.Status.Phase = PhaseTree
		p.Status.Particles = ParticlesConsistent

		p.History.Truncate(p.realPrefixLen)
		p.TreeDepth = 0
		p.peakTreeDepth = 0

		if p.Params.Verbose >= VerboseTree {
			p.log.Debug("pomcp: simulation start", "i", i, "state", displayState(p.sim, state))
		}

		totalReturn := p.SimulateV(state, p.Root)

		p.sim.FreeState(state)
		p.StatTotalReward.Add(totalReturn)
		p.StatTreeDepth.Add(float64(p.peakTreeDepth))

		if p.Params.Verbose >= VerboseSimulation {
			p.log.Debug("pomcp: simulation complete", "i", i, "return", totalReturn, "peakDepth", p.peakTreeDepth)
		}
	}
}

// SimulateV descends from vnode, choosing an action via the tree policy
// (GreedyUCB with exploration) and recursing through SimulateQ. Returns 0 at
// the MaxDepth cutoff.
func (p *Planner) SimulateV(state State, vnode *VNode) Result {
	if p.TreeDepth > p.peakTreeDepth {
		p.peakTreeDepth = p.TreeDepth
	}

	if p.TreeDepth >= p.Params.MaxDepth {
		return 0
	}

	action := p.GreedyUCB(vnode, true)
	totalReturn := p.SimulateQ(state, vnode.Children[action], action)

	vnode.Value.Add(totalReturn)

	if p.Params.UseRave {
		p.AddRave(vnode, totalReturn)
	}

	return totalReturn
}

// SimulateQ steps the simulation simulator, appends the resulting
// (action, observation) to History, lazily expands a child VNode once the
// action has been tried ExpandCount times, and recurses (into the tree or
// into a Rollout, whichever the frontier demands).
func (p *Planner) SimulateQ(state State, qnode *QNode, action int) Result {
	observation, reward, terminal := p.sim.Step(state, action)
	p.History.Add(action, observation)

	if p.Params.Verbose >= VerboseSimulation {
		p.log.Debug("pomcp: step",
			"action", displayAction(p.sim, action),
			"observation", displayObservation(p.sim, state, observation),
			"reward", displayReward(p.sim, reward),
			"terminal", terminal)
	}

	vchild := qnode.Child(observation)
	if vchild == nil && qnode.Value.Count() >= p.Params.ExpandCount && !terminal {
		vchild = p.arena.allocVNode(p.sim.GetNumActions())
		p.runPrior(state, vchild)
		qnode.SetChild(observation, vchild)
	}

	// Every simulation that reaches an expanded vchild deposits a copy of
	// the state that produced it into that node's belief: this is how
	// particles accumulate away from the root, and what Update later
	// harvests as the new root's belief.
	if vchild != nil {
		vchild.Belief.AddSample(p.sim.Copy(state))
	}

	var delayed Result
	switch {
	case terminal:
		delayed = 0
	case vchild != nil:
		p.TreeDepth++
		delayed = p.SimulateV(state, vchild)
		p.TreeDepth--
	default:
		p.Status.Phase = PhaseRollout
		delayed = p.Rollout(state)
	}

	totalReturn := reward + p.sim.GetDiscount()*delayed
	qnode.Value.Add(totalReturn)

	if av, ok := p.sim.(AlphaValuer); ok && av.HasAlpha() {
		av.UpdateAlpha(qnode, state)
	}

	return totalReturn
}

// Rollout simulates from the current depth to termination or MaxDepth using
// the (possibly knowledge-guided) default action policy, accumulating a
// discounted return. Rollout depth is recorded in StatRolloutDepth.
func (p *Planner) Rollout(state State) Result {
	depth := p.TreeDepth
	discount := Result(1)
	var totalReturn Result
	steps := 0

	for depth < p.Params.MaxDepth {
		action := p.selectRandomAction(state)
		observation, reward, terminal := p.sim.Step(state, action)
		totalReturn += reward * discount

		p.History.Add(action, observation)
		discount *= p.sim.GetDiscount()
		depth++
		steps++

		if p.Params.Verbose >= VerboseRollout {
			p.log.Debug("pomcp: rollout step",
				"action", displayAction(p.sim, action),
				"observation", displayObservation(p.sim, state, observation),
				"reward", displayReward(p.sim, reward))
		}

		if terminal {
			break
		}
	}

	p.StatRolloutDepth.Add(float64(steps))
	return totalReturn
}

// selectRandomAction dispatches to the simulator's RandomSelector override
// if present, else the package's default knowledge-guided policy.
func (p *Planner) selectRandomAction(state State) int {
	if rs, ok := p.sim.(RandomSelector); ok {
		return rs.SelectRandom(state, &p.History, p.Status, p.rng)
	}
	return SelectRandom(p.sim, state, &p.History, p.Status, p.Knowledge, p.rng)
}

// SelectRandom implements the default action-selection policy used by
// Rollout and by any caller without a tree to consult: preferred actions at
// KnowledgeSmart, else legal actions at KnowledgeLegal, else uniform over
// the whole action space. Exported so
// callers outside the tree search — notably the episode driver's
// particle-exhaustion fallback, which has no tree left to consult — get the
// same knowledge-guided behaviour a Planner would use internally.
func SelectRandom(sim Simulator, state State, history *History, status Status, knowledge Knowledge, rng RNG) int {
	if knowledge.RolloutLevel >= KnowledgeSmart {
		if pg, ok := sim.(PreferredGenerator); ok {
			if actions := pg.GeneratePreferred(state, history, status); len(actions) > 0 {
				return actions[rng.Intn(len(actions))]
			}
		}
	}

	if knowledge.RolloutLevel >= KnowledgeLegal {
		if lg, ok := sim.(LegalGenerator); ok {
			if actions := lg.GenerateLegal(state, history, status); len(actions) > 0 {
				return actions[rng.Intn(len(actions))]
			}
		}
	}

	return rng.Intn(sim.GetNumActions())
}

// RolloutSearch implements the tree-less PO-rollout baseline (DisableTree):
// for every simulation and every root action, step once then roll out to
// the horizon, backing the result straight into the root QNode's Value —
// no VNode children are ever expanded.
func (p *Planner) RolloutSearch() {
	numActions := p.sim.GetNumActions()

	for i := 0; i < p.Params.NumSimulations; i++ {
		for a := 0; a < numActions; a++ {
			state := p.sampleRootState()
			p.History.Truncate(p.realPrefixLen)

			observation, reward, terminal := p.sim.Step(state, a)
			p.History.Add(a, observation)

			var rolloutReturn Result
			if !terminal {
				p.TreeDepth = 1
				rolloutReturn = p.Rollout(state)
			}

			totalReturn := reward + p.sim.GetDiscount()*rolloutReturn
			p.Root.Children[a].Value.Add(totalReturn)

			p.sim.FreeState(state)
		}
	}
}
