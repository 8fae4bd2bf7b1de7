package pomcp

import "math"

// AddRave folds totalReturn into the AMAF statistic of every action that
// appears in the remainder of the current simulation's history, starting at
// this vnode's own position (the action it is about to take) and running to
// the end of the trajectory, discounted by RaveDiscount^offset. This is
// "all moves as first": every action the simulation happened
// to use later also gets credit here, not just the one actually chosen at
// vnode.
func (p *Planner) AddRave(vnode *VNode, totalReturn Result) {
	start := p.realPrefixLen + p.TreeDepth
	suffix := p.History.Slice(start)

	for offset, entry := range suffix {
		weight := math.Pow(p.Params.RaveDiscount, float64(offset))
		q := vnode.Children[entry.Action]
		q.AMAF.AddWeighted(totalReturn, weight)
	}
}
