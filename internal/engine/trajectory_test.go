package engine

import (
	"math"
	"testing"
)

const epsilon = 0.001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func correct() Attempt {
	return Attempt{
		QuestionID:    "q",
		LearnerAnswer: "a",
		CorrectAnswer: "a",
		Correct:       true,
	}
}

func wrong(cat ErrorCategory) Attempt {
	return Attempt{
		QuestionID:    "q",
		LearnerAnswer: "b",
		CorrectAnswer: "a",
		Correct:       false,
		Category:      cat,
	}
}

func repeat(a Attempt, n int) []Attempt {
	out := make([]Attempt, n)
	for i := range out {
		out[i] = a
	}
	return out
}

func TestComputeTrajectory_Empty(t *testing.T) {
	if got := ComputeTrajectory(nil, 0); got != TrajectoryUnknown {
		t.Errorf("trajectory = %q, want %q", got, TrajectoryUnknown)
	}
}

func TestComputeTrajectory_InsufficientData(t *testing.T) {
	attempts := []Attempt{correct(), correct()}
	if got := ComputeTrajectory(attempts, 0); got != TrajectoryUnknown {
		t.Errorf("trajectory = %q, want %q", got, TrajectoryUnknown)
	}
}

func TestComputeTrajectory_Improving(t *testing.T) {
	attempts := []Attempt{
		wrong(CategoryStructural),
		wrong(CategoryStructural),
		wrong(CategoryConceptual),
		correct(),
		correct(),
		correct(),
	}
	if got := ComputeTrajectory(attempts, 0); got != TrajectoryImproving {
		t.Errorf("trajectory = %q, want %q", got, TrajectoryImproving)
	}
}

func TestComputeTrajectory_Declining(t *testing.T) {
	attempts := []Attempt{
		correct(),
		correct(),
		correct(),
		wrong(CategoryStructural),
		wrong(CategoryConceptual),
		wrong(CategoryConceptual),
	}
	if got := ComputeTrajectory(attempts, 0); got != TrajectoryDeclining {
		t.Errorf("trajectory = %q, want %q", got, TrajectoryDeclining)
	}
}

func TestComputeTrajectory_AllCorrectIsFlat(t *testing.T) {
	if got := ComputeTrajectory(repeat(correct(), 5), 0); got != TrajectoryFlat {
		t.Errorf("trajectory = %q, want %q", got, TrajectoryFlat)
	}
}

func TestComputeTrajectory_ExactlyThreeAttempts(t *testing.T) {
	attempts := []Attempt{wrong(CategoryStructural), correct(), correct()}
	got := ComputeTrajectory(attempts, 0)
	if got == TrajectoryUnknown {
		t.Error("3 attempts should be enough to label, got unknown")
	}
	// mid = 1: first half [structural]=2.0, second half [correct,correct]=0.0
	if got != TrajectoryImproving {
		t.Errorf("trajectory = %q, want %q", got, TrajectoryImproving)
	}
}

func TestComputeTrajectory_OddSplitSecondHalfLarger(t *testing.T) {
	// 5 attempts, mid=2: halves are [0,2) and [2,5).
	attempts := []Attempt{
		wrong(CategoryConceptual),
		wrong(CategoryConceptual),
		correct(),
		correct(),
		correct(),
	}
	if got := ComputeTrajectory(attempts, 0); got != TrajectoryImproving {
		t.Errorf("trajectory = %q, want %q", got, TrajectoryImproving)
	}
}

func TestComputeTrajectory_WindowLimits(t *testing.T) {
	// Old conceptual failures fall outside the window; the recent
	// all-correct run reads as flat.
	attempts := append(repeat(wrong(CategoryConceptual), 10), repeat(correct(), 5)...)
	if got := ComputeTrajectory(attempts, 5); got != TrajectoryFlat {
		t.Errorf("trajectory = %q, want %q", got, TrajectoryFlat)
	}
}

func TestComputeTrajectory_SmallDeltaIsFlat(t *testing.T) {
	// mid=2: both halves average severity 0.5, delta=0.
	attempts := []Attempt{
		wrong(CategoryComputational),
		correct(),
		wrong(CategoryComputational),
		correct(),
	}
	if got := ComputeTrajectory(attempts, 0); got != TrajectoryFlat {
		t.Errorf("trajectory = %q, want %q", got, TrajectoryFlat)
	}
}

func TestComputeTrajectory_DecreasingSeverityNeverDeclining(t *testing.T) {
	attempts := []Attempt{
		wrong(CategoryConceptual),
		wrong(CategoryStructural),
		wrong(CategoryComputational),
		correct(),
	}
	if got := ComputeTrajectory(attempts, 0); got == TrajectoryDeclining {
		t.Error("strictly decreasing severity must not read as declining")
	}
}
