package pomcp

import "testing"

// countingSim is a minimal Simulator stub used only to track Copy/FreeState
// call balance across belief operations; CreateStartState and Copy hand out
// distinct ids, and its Step body is never exercised by these tests.
type countingSim struct {
	nextID int
	frees  int
}

func (s *countingSim) CreateStartState() State {
	s.nextID++
	return s.nextID
}
func (s *countingSim) FreeState(State) { s.frees++ }
func (s *countingSim) Copy(st State) State {
	s.nextID++
	return s.nextID
}
func (s *countingSim) Step(State, int) (int, Result, bool) { return 0, 0, false }
func (s *countingSim) GetDiscount() float64                { return 1 }
func (s *countingSim) GetRewardRange() float64              { return 1 }
func (s *countingSim) GetNumActions() int                   { return 1 }
func (s *countingSim) GetNumObservations() int              { return 1 }
func (s *countingSim) GetHorizon(Result, int) int           { return 1 }

var _ Simulator = (*countingSim)(nil)

func TestBeliefAddSampleAndSize(t *testing.T) {
	var b BeliefState
	b.AddSample(1)
	b.AddSample(2)
	b.AddSample(3)

	if b.Size() != 3 {
		t.Fatalf("Size() = %d, want 3", b.Size())
	}
	if len(b.Particles()) != 3 {
		t.Fatalf("Particles() len = %d, want 3", len(b.Particles()))
	}
}

func TestBeliefGetSampleStaysInBag(t *testing.T) {
	var b BeliefState
	b.AddSample(42)
	rng := rngFromSeed(1)

	for i := 0; i < 10; i++ {
		if got := b.GetSample(rng); got != 42 {
			t.Fatalf("GetSample() = %v, want 42", got)
		}
	}
	if b.Size() != 1 {
		t.Fatal("GetSample must not remove the particle from the bag")
	}
}

func TestBeliefFreeReleasesEveryParticle(t *testing.T) {
	sim := &countingSim{}
	var b BeliefState
	b.AddSample(sim.CreateStartState())
	b.AddSample(sim.CreateStartState())
	b.AddSample(sim.CreateStartState())

	b.Free(sim)

	if sim.frees != 3 {
		t.Fatalf("Free() called FreeState %d times, want 3", sim.frees)
	}
	if b.Size() != 0 {
		t.Fatalf("Size() after Free() = %d, want 0", b.Size())
	}
}

func TestBeliefCopyIsIndependent(t *testing.T) {
	sim := &countingSim{}
	var b BeliefState
	b.AddSample(sim.CreateStartState())
	b.AddSample(sim.CreateStartState())

	cp := b.Copy(sim)

	if cp.Size() != b.Size() {
		t.Fatalf("Copy() size = %d, want %d", cp.Size(), b.Size())
	}
	for i, s := range cp.Particles() {
		if s == b.Particles()[i] {
			t.Fatalf("Copy() aliased particle %d with the source bag", i)
		}
	}

	// Freeing the copy must not double-release the source's particles.
	cp.Free(sim)
	if b.Size() != 2 {
		t.Fatalf("freeing the copy corrupted the source bag: size = %d, want 2", b.Size())
	}
}

// rngFromSeed is a tiny deterministic RNG used where a test only needs a
// stable source, not the planner's own seeding path.
func rngFromSeed(seed int64) RNG {
	return NewRNG(func() int64 { return seed })
}
