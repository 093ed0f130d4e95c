package engine

import "testing"

func TestDominantErrorType_Empty(t *testing.T) {
	if got := DominantErrorType(nil, 0); got != CategoryCorrect {
		t.Errorf("dominant = %q, want %q", got, CategoryCorrect)
	}
}

func TestDominantErrorType_AllCorrect(t *testing.T) {
	if got := DominantErrorType(repeat(correct(), 3), 0); got != CategoryCorrect {
		t.Errorf("dominant = %q, want %q", got, CategoryCorrect)
	}
}

func TestDominantErrorType_SingleType(t *testing.T) {
	attempts := repeat(wrong(CategoryComputational), 2)
	if got := DominantErrorType(attempts, 0); got != CategoryComputational {
		t.Errorf("dominant = %q, want %q", got, CategoryComputational)
	}
}

func TestDominantErrorType_Mixed(t *testing.T) {
	attempts := []Attempt{
		wrong(CategoryComputational),
		wrong(CategoryStructural),
		wrong(CategoryStructural),
	}
	if got := DominantErrorType(attempts, 0); got != CategoryStructural {
		t.Errorf("dominant = %q, want %q", got, CategoryStructural)
	}
}

func TestDominantErrorType_MissingCategoryIsStructural(t *testing.T) {
	if got := DominantErrorType([]Attempt{wrong("")}, 0); got != CategoryStructural {
		t.Errorf("dominant = %q, want %q", got, CategoryStructural)
	}
}

func TestDominantErrorType_UnrecognizedCategoryIsStructural(t *testing.T) {
	if got := DominantErrorType([]Attempt{wrong("bogus")}, 0); got != CategoryStructural {
		t.Errorf("dominant = %q, want %q", got, CategoryStructural)
	}
}

func TestDominantErrorType_TieBreaksChronologically(t *testing.T) {
	// conceptual reaches count 2 before computational does.
	attempts := []Attempt{
		wrong(CategoryConceptual),
		wrong(CategoryComputational),
		wrong(CategoryConceptual),
		wrong(CategoryComputational),
	}
	if got := DominantErrorType(attempts, 0); got != CategoryConceptual {
		t.Errorf("dominant = %q, want %q (first to reach max count)", got, CategoryConceptual)
	}
}

func TestDominantErrorType_WindowLimits(t *testing.T) {
	// Conceptual errors outside the 5-attempt window are ignored.
	attempts := append(repeat(wrong(CategoryConceptual), 5), repeat(wrong(CategoryComputational), 5)...)
	if got := DominantErrorType(attempts, 5); got != CategoryComputational {
		t.Errorf("dominant = %q, want %q", got, CategoryComputational)
	}
}

func TestDetectProductiveFailure(t *testing.T) {
	tests := []struct {
		name    string
		attempt Attempt
		want    bool
	}{
		{"computational wrong", wrong(CategoryComputational), true},
		{"structural wrong", wrong(CategoryStructural), false},
		{"conceptual wrong", wrong(CategoryConceptual), false},
		{"uncategorized wrong", wrong(""), false},
		{"correct", correct(), false},
	}
	for _, tt := range tests {
		if got := DetectProductiveFailure(tt.attempt); got != tt.want {
			t.Errorf("%s: DetectProductiveFailure = %v, want %v", tt.name, got, tt.want)
		}
	}
}
