package engine

// DefaultDominantWindow is the number of recent attempts inspected when
// profiling errors.
const DefaultDominantWindow = 5

// DominantErrorType finds the most frequent error category among the recent
// wrong answers. Wrong answers without a recognized category count as
// structural. Returns CategoryCorrect when the window holds no wrong answers.
// Ties break toward whichever category reaches the maximum count first in
// chronological order.
func DominantErrorType(attempts []Attempt, window int) ErrorCategory {
	if window <= 0 {
		window = DefaultDominantWindow
	}

	counts := make(map[ErrorCategory]int)
	dominant := CategoryCorrect
	best := 0

	for _, a := range lastN(attempts, window) {
		if a.Correct {
			continue
		}
		cat := ParseCategory(string(a.Category))
		if cat == CategoryCorrect || cat == CategoryUnspecified {
			cat = CategoryStructural
		}
		counts[cat]++
		if counts[cat] > best {
			best = counts[cat]
			dominant = cat
		}
	}

	return dominant
}

// DetectProductiveFailure reports whether an attempt is a productive failure:
// a wrong answer with a computational slip, meaning the learner knew the
// method but erred in execution.
func DetectProductiveFailure(a Attempt) bool {
	return !a.Correct && ParseCategory(string(a.Category)) == CategoryComputational
}
