package main

import (
	"fmt"

	"github.com/mtorres-dev/go-pomcp/examples/bandit"
	"github.com/mtorres-dev/go-pomcp/examples/corridor"
	"github.com/mtorres-dev/go-pomcp/pkg/pomcp"
)

// newSimulator builds the named demonstration problem's RealSim and
// SimulationSim pair. Both example Simulators are stateless enough that the
// same constructor doubles as "the real world" and "the planner's model of
// it" — a concrete repository with model mismatch would build these
// differently.
func newSimulator(problem string, seed int64) (real, sim pomcp.Simulator, err error) {
	switch problem {
	case "corridor":
		return corridor.New(5), corridor.New(5), nil
	case "bandit":
		return bandit.New(5, seed), bandit.New(5, seed+1), nil
	default:
		return nil, nil, fmt.Errorf("unknown problem %q (want corridor or bandit)", problem)
	}
}
