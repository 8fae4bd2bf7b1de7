package pomcp

import (
	"math"
	"testing"
)

func TestRunningStatisticClearMatchesZeroValue(t *testing.T) {
	var s RunningStatistic
	s.Clear()

	zero := NewRunningStatistic()

	if s.Count() != zero.Count() || s.Mean() != zero.Mean() || s.Min() != zero.Min() || s.Max() != zero.Max() {
		t.Fatalf("Clear() != NewRunningStatistic(): %+v vs %+v", s, zero)
	}
	if !math.IsInf(s.Min(), 1) || !math.IsInf(s.Max(), -1) {
		t.Fatalf("empty statistic should report min=+Inf max=-Inf, got min=%v max=%v", s.Min(), s.Max())
	}
}

func TestRunningStatisticAdd(t *testing.T) {
	var s RunningStatistic
	for _, x := range []Result{1, 2, 3, 4} {
		s.Add(x)
	}

	if s.Count() != 4 {
		t.Fatalf("Count() = %d, want 4", s.Count())
	}
	if s.Mean() != 2.5 {
		t.Fatalf("Mean() = %v, want 2.5", s.Mean())
	}
	if s.Min() != 1 || s.Max() != 4 {
		t.Fatalf("Min/Max = %v/%v, want 1/4", s.Min(), s.Max())
	}

	wantVar := 1.25 // mean of squares (1+4+9+16)/4=7.5, minus mean^2=6.25
	if math.Abs(s.Variance()-wantVar) > 1e-9 {
		t.Fatalf("Variance() = %v, want %v", s.Variance(), wantVar)
	}

	wantStdErr := math.Sqrt(wantVar / 4)
	if math.Abs(s.StdErr()-wantStdErr) > 1e-9 {
		t.Fatalf("StdErr() = %v, want %v", s.StdErr(), wantStdErr)
	}
}

func TestRunningStatisticSetOverwrites(t *testing.T) {
	var s RunningStatistic
	s.Add(100)
	s.Set(5, 2.0)

	if s.Count() != 5 {
		t.Fatalf("Count() = %d, want 5", s.Count())
	}
	if s.Mean() != 2.0 {
		t.Fatalf("Mean() = %v, want 2.0", s.Mean())
	}
	if s.Variance() != 0 {
		t.Fatalf("Variance() = %v, want 0 (synthetic samples are identical)", s.Variance())
	}
}

func TestRunningStatisticVarianceNeverNegative(t *testing.T) {
	var s RunningStatistic
	s.Set(1, 1.0000000001)
	s.Add(1.0)
	if s.Variance() < 0 {
		t.Fatalf("Variance() = %v, want >= 0", s.Variance())
	}
}

func TestRunningStatisticEmptyIsZero(t *testing.T) {
	var s RunningStatistic
	if s.Mean() != 0 || s.Variance() != 0 || s.StdErr() != 0 || s.Total() != 0 {
		t.Fatalf("empty statistic should report zero for mean/variance/stderr/total, got %+v", s)
	}
}

func TestRunningStatisticAddWeightedDividesByWeightNotCount(t *testing.T) {
	var s RunningStatistic
	s.AddWeighted(1.0, 0.5)
	s.AddWeighted(1.0, 0.25)

	if s.Count() != 2 {
		t.Fatalf("Count() = %d, want 2 (two samples folded in, regardless of weight)", s.Count())
	}
	if s.WeightedCount() != 0.75 {
		t.Fatalf("WeightedCount() = %v, want 0.75", s.WeightedCount())
	}
	if s.Mean() != 1.0 {
		t.Fatalf("Mean() = %v, want 1.0 (every sample had the same value, so weight shouldn't move it)", s.Mean())
	}
}

func TestRunningStatisticAddWeightedPullsMeanByWeightShare(t *testing.T) {
	var s RunningStatistic
	s.AddWeighted(1.0, 1.0)
	s.AddWeighted(0.0, 0.1)

	want := 1.0 / 1.1 // weighted average, not (1.0+0.0)/2
	if math.Abs(s.Mean()-want) > 1e-9 {
		t.Fatalf("Mean() = %v, want %v (a low-weight sample should barely move the mean)", s.Mean(), want)
	}
}
