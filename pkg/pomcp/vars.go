package pomcp

import "math"

// LargeVisitCount and negativeInfinity together mark an action as forbidden:
// GreedyUCB never selects it (score -Inf) and it never counts as "the
// untried action" either (visit count already huge).
const LargeVisitCount = 1 << 20

var negativeInfinity = math.Inf(-1)

// fastUCBTableN and fastUCBTableNsmall bound the precomputed UCB lookup
// table.
const (
	fastUCBTableN      = 10000
	fastUCBTableNsmall = 100
)

// fastUCBTable[N][n] == sqrt(log(max(N,1))/n) for N < fastUCBTableN, n <
// fastUCBTableNsmall. It is process-wide and immutable after InitFastUCB;
// the table itself carries no per-planner constant, since ExplorationConstant
// is applied separately at score time.
var fastUCBTable [fastUCBTableN][fastUCBTableNsmall]float64

var fastUCBInitialised bool

// InitFastUCB precomputes the UCB lookup table. It must be called once,
// before constructing the first Planner; it is safe to call more than once
// (each call simply recomputes the same table).
func InitFastUCB() {
	for n := 0; n < fastUCBTableN; n++ {
		for k := 0; k < fastUCBTableNsmall; k++ {
			if k == 0 {
				fastUCBTable[n][k] = math.Inf(1)
			} else {
				fastUCBTable[n][k] = math.Sqrt(math.Log(math.Max(float64(n), 1)) / float64(k))
			}
		}
	}
	fastUCBInitialised = true
}

// FastUCB returns sqrt(log(max(N,1))/n), using the precomputed table when both N
// and n fall within its bounds and falling through to a direct computation
// otherwise. n=0 always returns +Inf (every action must be tried once).
func FastUCB(N, n int) float64 {
	if n == 0 {
		return math.Inf(1)
	}
	if fastUCBInitialised && N >= 0 && N < fastUCBTableN && n < fastUCBTableNsmall {
		return fastUCBTable[N][n]
	}
	return math.Sqrt(math.Log(math.Max(float64(N), 1)) / float64(n))
}
