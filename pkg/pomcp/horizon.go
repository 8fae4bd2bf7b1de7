package pomcp

import "math"

// Horizon computes the planning horizon implied by a desired tail accuracy
// and discount factor: ceil(log(accuracy)/log(discount)), or
// undiscountedHorizon verbatim when discount >= 1 (an undiscounted problem
// has no accuracy-driven cutoff). Simulator implementations are expected to
// call this from their own GetHorizon method rather than reimplementing the
// formula.
func Horizon(accuracy Result, discount float64, undiscountedHorizon int) int {
	if discount >= 1 {
		return undiscountedHorizon
	}
	return int(math.Ceil(math.Log(accuracy) / math.Log(discount)))
}
