package pomcp

import "math"

// GreedyUCB scores every child action of vnode and returns the index of the
// best one, breaking ties uniformly at random among the top-scoring
// actions. With ucb=true this is the tree policy (UCT, optionally blended
// with RAVE); with ucb=false it is the final action choice after search
// (mean/visits only, no exploration bonus).
func (p *Planner) GreedyUCB(vnode *VNode, ucb bool) int {
	N := vnode.Value.Count()

	best := -1
	bestScore := math.Inf(-1)
	ties := 0

	for a, q := range vnode.Children {
		score := q.Value.Mean()

		if p.Params.UseRave {
			score = p.raveBlend(q)
		}

		if ucb {
			score += p.Params.ExplorationConstant * FastUCB(N, q.Value.Count())
		}

		if score > bestScore {
			bestScore = score
			best = a
			ties = 1
		} else if score == bestScore {
			ties++
			// Reservoir sampling over ties so each is equally likely,
			// without needing to materialize the tied set.
			if p.rng.Intn(ties) == 0 {
				best = a
			}
		}
	}

	return best
}

// raveBlend computes the count-weighted blend of a QNode's backed-up value
// and its AMAF (all-moves-as-first) statistic, with m = amaf.WeightedCount()
// and n = value.count: beta = m / (m + n + k*m*n).
func (p *Planner) raveBlend(q *QNode) Result {
	value := q.Value
	amaf := q.AMAF

	if amaf.Count() == 0 {
		return value.Mean()
	}

	n, m := float64(value.Count()), amaf.WeightedCount()
	k := p.Params.RaveConstant
	beta := m / (m + n + k*m*n)

	return (1-beta)*value.Mean() + beta*amaf.Mean()
}
