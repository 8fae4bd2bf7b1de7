package pomcp

// arena is a per-planner free list of VNode/QNode objects: a search
// allocates and discards on the order of 2^20 nodes per real-world step as
// the tree is pruned on every Update, so recycling beats a fresh allocation
// per node. Allocation pops from the free list (growing a contiguous block
// when it is empty) and resets the node's fields; release pushes the node
// back as it is.
type arena struct {
	vnodeFree []*VNode
	qnodeFree []*QNode

	vnodeLive int
	qnodeLive int

	blockSize int
}

const defaultArenaBlock = 256

func newArena() *arena {
	return &arena{blockSize: defaultArenaBlock}
}

func (a *arena) growVNodes() {
	block := make([]VNode, a.blockSize)
	a.vnodeFree = make([]*VNode, a.blockSize)
	for i := range block {
		a.vnodeFree[i] = &block[i]
	}
}

func (a *arena) growQNodes() {
	block := make([]QNode, a.blockSize)
	a.qnodeFree = make([]*QNode, a.blockSize)
	for i := range block {
		a.qnodeFree[i] = &block[i]
	}
}

// allocVNode pops a VNode from the free list (growing it if empty), resets
// its fields, and allocates exactly numActions fresh QNode children for it.
func (a *arena) allocVNode(numActions int) *VNode {
	if len(a.vnodeFree) == 0 {
		a.growVNodes()
	}
	n := len(a.vnodeFree) - 1
	v := a.vnodeFree[n]
	a.vnodeFree = a.vnodeFree[:n]
	v.reset()
	a.vnodeLive++

	v.Children = make([]*QNode, numActions)
	for i := 0; i < numActions; i++ {
		v.Children[i] = a.allocQNode()
	}
	return v
}

func (a *arena) allocQNode() *QNode {
	if len(a.qnodeFree) == 0 {
		a.growQNodes()
	}
	n := len(a.qnodeFree) - 1
	q := a.qnodeFree[n]
	a.qnodeFree = a.qnodeFree[:n]
	q.reset()
	a.qnodeLive++
	return q
}

// freeVNode recursively releases v: every QNode child (and, through it,
// every observation sub-tree), then v's own belief particles, then v
// itself. The tree is strictly acyclic so there is no risk of a double
// free.
func (a *arena) freeVNode(v *VNode, sim Simulator) {
	if v == nil {
		return
	}
	for _, q := range v.Children {
		a.freeQNode(q, sim)
	}
	v.Belief.Free(sim)
	a.vnodeFree = append(a.vnodeFree, v)
	a.vnodeLive--
}

func (a *arena) freeQNode(q *QNode, sim Simulator) {
	if q == nil {
		return
	}
	for _, child := range q.children {
		a.freeVNode(child, sim)
	}
	a.qnodeFree = append(a.qnodeFree, q)
	a.qnodeLive--
}

// liveNodes is the number of VNode+QNode allocations currently reachable
// from some root (i.e. not yet returned to the free list) — used to check
// the arena-balance invariant in tests.
func (a *arena) liveNodes() int {
	return a.vnodeLive + a.qnodeLive
}
