package engine

// Trajectory labels the short-term performance trend for a topic.
type Trajectory string

const (
	TrajectoryImproving Trajectory = "improving"
	TrajectoryFlat      Trajectory = "flat"
	TrajectoryDeclining Trajectory = "declining"
	TrajectoryUnknown   Trajectory = "unknown"
)

const (
	// DefaultTrajectoryWindow is the number of recent attempts compared.
	DefaultTrajectoryWindow = 5

	// trajectoryDelta is the half-window severity delta required before the
	// trend is labeled anything other than flat.
	trajectoryDelta = 0.3
)

// ComputeTrajectory compares the mean error severity of the first half of the
// recent window against the second half. Severity going down over time means
// the learner is improving. Fewer than 3 total or in-window attempts yields
// unknown. window <= 0 selects the default.
func ComputeTrajectory(attempts []Attempt, window int) Trajectory {
	if window <= 0 {
		window = DefaultTrajectoryWindow
	}
	if len(attempts) < 3 {
		return TrajectoryUnknown
	}

	recent := lastN(attempts, window)
	if len(recent) < 3 {
		return TrajectoryUnknown
	}

	// The second half takes the extra element when the window length is odd.
	mid := len(recent) / 2
	delta := meanSeverity(recent[:mid]) - meanSeverity(recent[mid:])

	switch {
	case delta > trajectoryDelta:
		return TrajectoryImproving
	case delta < -trajectoryDelta:
		return TrajectoryDeclining
	default:
		return TrajectoryFlat
	}
}

func meanSeverity(attempts []Attempt) float64 {
	if len(attempts) == 0 {
		return 0.0
	}
	sum := 0
	for _, a := range attempts {
		sum += severityOf(a)
	}
	return float64(sum) / float64(len(attempts))
}

// lastN returns the trailing n elements of attempts without copying.
func lastN(attempts []Attempt, n int) []Attempt {
	if len(attempts) <= n {
		return attempts
	}
	return attempts[len(attempts)-n:]
}
