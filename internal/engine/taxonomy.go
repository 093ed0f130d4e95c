package engine

// ErrorCategory classifies the outcome of a graded attempt.
type ErrorCategory string

const (
	CategoryCorrect       ErrorCategory = "correct"
	CategoryComputational ErrorCategory = "computational"
	CategoryStructural    ErrorCategory = "structural"
	CategoryConceptual    ErrorCategory = "conceptual"

	// CategoryUnspecified is the conservative default for wrong answers whose
	// category is absent or unrecognized. It carries the structural weights.
	CategoryUnspecified ErrorCategory = "unspecified"
)

// ParseCategory maps a raw category value to the closed enum.
// Unknown or empty values become CategoryUnspecified.
func ParseCategory(raw string) ErrorCategory {
	switch ErrorCategory(raw) {
	case CategoryCorrect, CategoryComputational, CategoryStructural, CategoryConceptual:
		return ErrorCategory(raw)
	default:
		return CategoryUnspecified
	}
}

// Severity returns the ordinal badness of a category: 0 (correct) to 3 (conceptual).
func (c ErrorCategory) Severity() int {
	switch c {
	case CategoryCorrect:
		return 0
	case CategoryComputational:
		return 1
	case CategoryConceptual:
		return 3
	default:
		// Structural and unspecified share the middle ground.
		return 2
	}
}

// AccuracyWeight returns the per-attempt accuracy score used by the mastery
// scorer: 1.0 (correct) down to 0.0 (conceptual).
func (c ErrorCategory) AccuracyWeight() float64 {
	switch c {
	case CategoryCorrect:
		return 1.0
	case CategoryComputational:
		return 0.5
	case CategoryConceptual:
		return 0.0
	default:
		return 0.25
	}
}

// severityOf returns the severity of a single attempt. Correct attempts score
// 0 regardless of any category recorded alongside them.
func severityOf(a Attempt) int {
	if a.Correct {
		return 0
	}
	return ParseCategory(string(a.Category)).Severity()
}

// accuracyOf returns the accuracy weight of a single attempt.
func accuracyOf(a Attempt) float64 {
	if a.Correct {
		return 1.0
	}
	return ParseCategory(string(a.Category)).AccuracyWeight()
}
