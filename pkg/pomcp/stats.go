package pomcp

import "math"

// RunningStatistic accumulates count/mean/variance/min/max over a stream of
// doubles in one pass. It uses plain fields rather than atomics: the planner
// is single-threaded, so there is never concurrent access to a node's stats.
//
// weight is the running sum of per-sample weights (1 for every plain Add,
// arbitrary for AddWeighted); Mean/Variance divide by weight rather than by
// count so that a weighted sample (as RAVE discounting uses) pulls the mean
// by its actual weight instead of being counted as a full sample.
type RunningStatistic struct {
	count  int
	weight Result
	sum    Result
	sumSq  Result
	min    Result
	max    Result
}

// NewRunningStatistic returns a zeroed statistic, equivalent to Clear.
func NewRunningStatistic() RunningStatistic {
	var s RunningStatistic
	s.Clear()
	return s
}

// Clear resets the statistic to its post-construction state.
func (s *RunningStatistic) Clear() {
	s.count = 0
	s.weight = 0
	s.sum = 0
	s.sumSq = 0
	s.min = math.Inf(1)
	s.max = math.Inf(-1)
}

// Add folds x into the running count/sum/sum-of-squares/min/max with a
// weight of 1.
func (s *RunningStatistic) Add(x Result) {
	s.AddWeighted(x, 1)
}

// AddWeighted folds x into the statistic with an arbitrary weight: count
// still counts the sample itself, but sum/sumSq/Mean/Variance are scaled by
// weight rather than by 1, so x contributes weight/total-weight of the
// final mean instead of 1/count of it. Used by RAVE's discounted AMAF
// accumulation.
func (s *RunningStatistic) AddWeighted(x, weight Result) {
	if s.count == 0 || x < s.min {
		s.min = x
	}
	if s.count == 0 || x > s.max {
		s.max = x
	}
	s.count++
	s.weight += weight
	s.sum += x * weight
	s.sumSq += x * x * weight
}

// Set overwrites the statistic with a synthetic count/value pair, used to
// seed preferred-action QNode stats from domain knowledge (SmartTreeCount /
// SmartTreeValue) without replaying individual samples.
func (s *RunningStatistic) Set(count int, value Result) {
	s.count = count
	s.weight = Result(count)
	s.sum = value * Result(count)
	s.sumSq = value * value * Result(count)
	s.min = value
	s.max = value
}

// Count is the number of samples folded into this statistic.
func (s *RunningStatistic) Count() int {
	return s.count
}

// WeightedCount is the running sum of per-sample weights (equal to Count
// when every sample was added via Add/Set rather than AddWeighted).
func (s *RunningStatistic) WeightedCount() Result {
	return s.weight
}

// Mean is sum/weight, or 0 for an empty statistic.
func (s *RunningStatistic) Mean() Result {
	if s.weight == 0 {
		return 0
	}
	return s.sum / s.weight
}

// Variance is sumsq/weight - mean^2, clamped to be non-negative (floating
// point round-off can otherwise drive it slightly below zero).
func (s *RunningStatistic) Variance() Result {
	if s.weight == 0 {
		return 0
	}
	mean := s.Mean()
	v := s.sumSq/s.weight - mean*mean
	if v < 0 {
		v = 0
	}
	return v
}

// StdErr is sqrt(Variance/weight).
func (s *RunningStatistic) StdErr() Result {
	if s.weight == 0 {
		return 0
	}
	return math.Sqrt(s.Variance() / s.weight)
}

// Total is the running sum of weight-scaled samples (the plain sum when
// every sample has weight 1).
func (s *RunningStatistic) Total() Result {
	return s.sum
}

// Min is the smallest sample seen, or +Inf if empty.
func (s *RunningStatistic) Min() Result {
	if s.count == 0 {
		return math.Inf(1)
	}
	return s.min
}

// Max is the largest sample seen, or -Inf if empty.
func (s *RunningStatistic) Max() Result {
	if s.count == 0 {
		return math.Inf(-1)
	}
	return s.max
}
