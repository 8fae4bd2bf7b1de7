package pomcp

// Update advances the root one real step along (action, observation),
// reinvigorating the surviving belief with transforms before the old tree
// is discarded. Returns false if the belief is empty after reinvigoration
// (particle exhaustion) — the caller (the episode driver) is responsible
// for falling back to simulator-driven random play when that happens; the
// planner itself treats it as ordinary control flow, not an error.
func (p *Planner) Update(action, observation int, reward Result) bool {
	if p.Params.Verbose >= VerboseTree {
		p.log.Debug("pomcp: update", "action", action, "observation", observation, "reward", reward)
	}

	qnode := p.Root.Children[action]
	vchild := qnode.Child(observation)

	var beliefs BeliefState
	if vchild != nil {
		beliefs = vchild.Belief.Copy(p.sim)
	}

	p.lastAction = action
	p.lastObservation = observation
	if p.Params.UseTransforms {
		p.AddTransforms(p.Root, &beliefs)
	}

	// The old root (every sibling action's subtree, and vchild itself) is
	// freed wholesale: beliefs already holds independent copies of
	// whatever particles survive, so nothing is lost.
	p.arena.freeVNode(p.Root, p.sim)
	p.Root = nil

	if beliefs.Size() == 0 {
		return false
	}

	newRoot := p.arena.allocVNode(p.sim.GetNumActions())
	p.runPrior(beliefs.GetSample(p.rng), newRoot)
	newRoot.Belief = beliefs

	p.History.Add(action, observation)
	p.realPrefixLen = p.History.Size()
	p.Root = newRoot

	return true
}

// CreateTransform draws a particle from root's belief, copies it, replays
// the just-taken action, and asks the simulator's LocalMover to reconcile
// the copy with the observation that was actually seen. A true return
// means the perturbed copy is accepted as a reinvigorated particle;
// otherwise the copy is freed and ok is false.
func (p *Planner) CreateTransform(root *VNode) (state State, ok bool) {
	if root.Belief.Size() == 0 {
		return nil, false
	}

	s := p.sim.Copy(root.Belief.GetSample(p.rng))
	p.sim.Step(s, p.lastAction)

	lm, hasLocalMove := p.sim.(LocalMover)
	if !hasLocalMove || !lm.LocalMove(s, &p.History, p.lastObservation, p.Status) {
		p.sim.FreeState(s)
		return nil, false
	}

	return s, true
}

// AddTransforms attempts up to Params.MaxAttempts transforms against root,
// accepting into beliefs until Params.NumTransforms succeed or attempts run
// out. Failures are silently consumed — they are expected, not exceptional.
func (p *Planner) AddTransforms(root *VNode, beliefs *BeliefState) {
	accepted := 0
	for attempt := 0; attempt < p.Params.MaxAttempts && accepted < p.Params.NumTransforms; attempt++ {
		if s, ok := p.CreateTransform(root); ok {
			beliefs.AddSample(s)
			accepted++
		}
	}
}

// Resample discards whatever beliefs currently holds and replaces it with
// Params.NumStartStates fresh CreateStartState samples. Unlike AddTransforms
// this ignores history consistency entirely — it is an explicit full reset,
// never invoked automatically by Update.
func (p *Planner) Resample(beliefs *BeliefState) {
	beliefs.Free(p.sim)
	for i := 0; i < p.Params.NumStartStates; i++ {
		beliefs.AddSample(p.sim.CreateStartState())
	}
}
