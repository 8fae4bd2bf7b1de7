package pomcp

// BeliefState is an unordered multiset of owned State particles, the
// planner's approximation of the posterior over hidden state given a
// history. It owns every particle it holds: Free releases them all through
// the Simulator that produced them.
type BeliefState struct {
	particles []State
}

// AddSample takes ownership of a state copy, adding it to the bag.
func (b *BeliefState) AddSample(s State) {
	b.particles = append(b.particles, s)
}

// GetSample returns a uniformly random particle without removing it from the
// bag. It panics on an empty belief; callers must check Size first.
func (b *BeliefState) GetSample(rng RNG) State {
	return b.particles[rng.Intn(len(b.particles))]
}

// Size is the number of particles currently held.
func (b *BeliefState) Size() int {
	return len(b.particles)
}

// Particles exposes the backing slice for read-only iteration (e.g. RAVE or
// display hooks that want to inspect the whole bag without sampling it).
func (b *BeliefState) Particles() []State {
	return b.particles
}

// Free releases every particle through sim.FreeState and empties the bag.
func (b *BeliefState) Free(sim Simulator) {
	for _, s := range b.particles {
		sim.FreeState(s)
	}
	b.particles = b.particles[:0]
}

// Copy returns a new BeliefState holding fresh Simulator.Copy()s of every
// particle in b (the bag copy never aliases states with its source).
func (b *BeliefState) Copy(sim Simulator) BeliefState {
	cp := BeliefState{particles: make([]State, len(b.particles))}
	for i, s := range b.particles {
		cp.particles[i] = sim.Copy(s)
	}
	return cp
}
