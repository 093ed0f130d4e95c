package engine

const (
	// DefaultMasteryWindow is the number of recent attempts scored.
	DefaultMasteryWindow = 10

	// confidenceK is the smoothing constant in the n/(n+k) confidence factor:
	// 5 attempts yield 50% confidence.
	confidenceK = 5
)

// ComputeMastery estimates competence over the recent window as a
// recency-weighted mean of accuracy weights, discounted by a sample-size
// confidence factor. The result is in [0,1); an empty history yields 0.0.
//
// The recency weight for index i (oldest first) is (i+1)/n, a linear ramp
// where the newest attempt gets full weight 1. Histories longer than the
// window score identically to exactly window attempts.
func ComputeMastery(attempts []Attempt, window int) float64 {
	if window <= 0 {
		window = DefaultMasteryWindow
	}
	if len(attempts) == 0 {
		return 0.0
	}

	recent := lastN(attempts, window)
	n := len(recent)

	weightedSum := 0.0
	weightTotal := 0.0
	for i, a := range recent {
		w := float64(i+1) / float64(n)
		weightedSum += accuracyOf(a) * w
		weightTotal += w
	}

	raw := weightedSum / weightTotal
	confidence := float64(n) / float64(n+confidenceK)
	return raw * confidence
}
