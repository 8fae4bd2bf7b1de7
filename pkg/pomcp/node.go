package pomcp

// QNode is an action node: one per (parent VNode, action). It holds the
// backed-up return statistic (Value), the AMAF statistic used by RAVE, and a
// sparse observation -> VNode mapping (most observations never occur for a
// given action, so a map beats a dense array here).
type QNode struct {
	Value    RunningStatistic
	AMAF     RunningStatistic
	children map[int]*VNode
}

func (q *QNode) reset() {
	q.Value.Clear()
	q.AMAF.Clear()
	if q.children != nil {
		for k := range q.children {
			delete(q.children, k)
		}
	}
}

// Child returns the VNode reached by observation, or nil if it has never
// been expanded.
func (q *QNode) Child(observation int) *VNode {
	if q.children == nil {
		return nil
	}
	return q.children[observation]
}

// SetChild attaches vnode as the child reached by observation.
func (q *QNode) SetChild(observation int, vnode *VNode) {
	if q.children == nil {
		q.children = make(map[int]*VNode)
	}
	q.children[observation] = vnode
}

// Observations returns every observation this QNode has expanded a child
// for, in no particular order.
func (q *QNode) Observations() []int {
	obs := make([]int, 0, len(q.children))
	for o := range q.children {
		obs = append(obs, o)
	}
	return obs
}

// VNode is an observation/belief node: the root of the sub-tree reached by a
// specific history. It owns exactly NumActions child QNodes and a
// BeliefState bag of particles.
type VNode struct {
	// Value is this node's own visit/return statistic: Value.count is the
	// number of simulations that have passed through this node (the "N" in
	// GreedyUCB's UCT term), and must always equal the sum of its
	// children's Value.count.
	Value    RunningStatistic
	Children []*QNode
	Belief   BeliefState
	created  bool
}

func (v *VNode) reset() {
	v.Value.Clear()
	v.Children = v.Children[:0]
	v.Belief = BeliefState{}
	v.created = false
}

// Child returns the QNode for the given action. Panics if action is out of
// range, which indicates a Simulator reporting an inconsistent NumActions.
func (v *VNode) Child(action int) *QNode {
	return v.Children[action]
}

// NumActions is the number of actions this node has a QNode for.
func (v *VNode) NumActions() int {
	return len(v.Children)
}

// Forbid marks action as never-selectable by GreedyUCB: value is set to
// -Inf with a very large visit count, so it always loses every comparison
// and is never chosen as "the untried action" either. Used by Simulator
// priors seeding illegal actions.
func (v *VNode) Forbid(action int) {
	q := v.Children[action]
	q.Value.Set(LargeVisitCount, negativeInfinity)
}
