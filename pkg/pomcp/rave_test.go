package pomcp

import (
	"math"
	"testing"
)

func TestAddRaveDiscountedWeightDoesNotDeflateAMAFMean(t *testing.T) {
	p := newTestPlanner(1)
	p.Params.RaveDiscount = 0.5

	vnode := &VNode{Children: []*QNode{{}, {}}}
	p.History.Add(0, 0) // the action this vnode is about to take
	p.History.Add(1, 0) // one step further into the simulated trajectory
	p.realPrefixLen = 0
	p.TreeDepth = 0

	p.AddRave(vnode, 4.0)

	// Action 1 sits at offset 1, so its only AMAF sample carries weight 0.5.
	q := vnode.Children[1]
	if q.AMAF.Count() != 1 {
		t.Fatalf("AMAF.Count() = %d, want 1", q.AMAF.Count())
	}
	if q.AMAF.Mean() != 4.0 {
		t.Fatalf("AMAF.Mean() = %v, want 4.0 (a single weighted sample's mean equals the sample itself)", q.AMAF.Mean())
	}
}

func TestAddRaveAppliesDiminishingWeightByOffset(t *testing.T) {
	p := newTestPlanner(1)
	p.Params.RaveDiscount = 0.5

	vnode := &VNode{Children: []*QNode{{}}}
	p.History.Add(0, 0)
	p.History.Add(0, 0)
	p.realPrefixLen = 0
	p.TreeDepth = 0

	p.AddRave(vnode, 1.0)

	q := vnode.Children[0]
	// Offsets 0 and 1 both hit action 0, with weights 1 and 0.5: mean should
	// be the plain average of the sample values (1.0 each here), not pulled
	// toward 0 by treating the discounted sample as a full extra count.
	if math.Abs(q.AMAF.Mean()-1.0) > 1e-9 {
		t.Fatalf("AMAF.Mean() = %v, want 1.0", q.AMAF.Mean())
	}
	if math.Abs(q.AMAF.WeightedCount()-1.5) > 1e-9 {
		t.Fatalf("AMAF.WeightedCount() = %v, want 1.5 (weights 1 + 0.5)", q.AMAF.WeightedCount())
	}
}
