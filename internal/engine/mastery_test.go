package engine

import "testing"

func TestComputeMastery_EmptyHistory(t *testing.T) {
	if got := ComputeMastery(nil, 0); got != 0.0 {
		t.Errorf("mastery = %f, want 0.0", got)
	}
}

func TestComputeMastery_SingleCorrect(t *testing.T) {
	// raw = 1.0, confidence = 1/6 ≈ 0.167
	got := ComputeMastery([]Attempt{correct()}, 0)
	if got <= 0.10 || got >= 0.25 {
		t.Errorf("mastery = %f, want in (0.10, 0.25)", got)
	}
	if !almostEqual(got, 1.0/6.0) {
		t.Errorf("mastery = %f, want %f", got, 1.0/6.0)
	}
}

func TestComputeMastery_TenCorrect(t *testing.T) {
	// raw = 1.0, confidence = 10/15 ≈ 0.667
	got := ComputeMastery(repeat(correct(), 10), 0)
	if got <= 0.60 || got >= 0.75 {
		t.Errorf("mastery = %f, want in (0.60, 0.75)", got)
	}
	if !almostEqual(got, 10.0/15.0) {
		t.Errorf("mastery = %f, want %f", got, 10.0/15.0)
	}
}

func TestComputeMastery_WindowCapsAtTen(t *testing.T) {
	m10 := ComputeMastery(repeat(correct(), 10), 0)
	m20 := ComputeMastery(repeat(correct(), 20), 0)
	if !almostEqual(m10, m20) {
		t.Errorf("mastery(10) = %f, mastery(20) = %f, want equal within 0.01", m10, m20)
	}
}

func TestComputeMastery_AllConceptualIsZero(t *testing.T) {
	for _, n := range []int{1, 5, 15} {
		if got := ComputeMastery(repeat(wrong(CategoryConceptual), n), 0); got != 0.0 {
			t.Errorf("mastery(%d conceptual) = %f, want 0.0", n, got)
		}
	}
}

func TestComputeMastery_ComputationalPartialCredit(t *testing.T) {
	comp := ComputeMastery(repeat(wrong(CategoryComputational), 5), 0)
	full := ComputeMastery(repeat(correct(), 5), 0)
	if comp <= 0.0 {
		t.Errorf("mastery = %f, want > 0 for computational errors", comp)
	}
	if comp >= full {
		t.Errorf("computational mastery %f should be below all-correct %f", comp, full)
	}
}

func TestComputeMastery_RecencyWeighting(t *testing.T) {
	early := []Attempt{
		correct(), correct(),
		wrong(CategoryStructural), wrong(CategoryStructural), wrong(CategoryStructural),
	}
	late := []Attempt{
		wrong(CategoryStructural), wrong(CategoryStructural), wrong(CategoryStructural),
		correct(), correct(),
	}
	if ComputeMastery(late, 0) <= ComputeMastery(early, 0) {
		t.Error("recent correct answers should outweigh early ones")
	}
}

func TestComputeMastery_ConfidenceMonotonic(t *testing.T) {
	m3 := ComputeMastery(repeat(correct(), 3), 0)
	m8 := ComputeMastery(repeat(correct(), 8), 0)
	if m8 <= m3 {
		t.Errorf("mastery(8 correct) = %f should exceed mastery(3 correct) = %f", m8, m3)
	}
}

func TestComputeMastery_CorrectAppendNeverDecreases(t *testing.T) {
	histories := [][]Attempt{
		nil,
		repeat(wrong(CategoryConceptual), 4),
		repeat(correct(), 9),
		{wrong(CategoryStructural), correct(), wrong(CategoryComputational)},
	}
	for i, h := range histories {
		before := ComputeMastery(h, 0)
		after := ComputeMastery(append(h, correct()), 0)
		if after < before {
			t.Errorf("case %d: mastery dropped from %f to %f after a correct attempt", i, before, after)
		}
	}
}

func TestComputeMastery_RangeUpperBound(t *testing.T) {
	for _, n := range []int{1, 5, 10, 50} {
		got := ComputeMastery(repeat(correct(), n), 0)
		if got < 0.0 || got >= 1.0 {
			t.Errorf("mastery(%d) = %f, want in [0,1)", n, got)
		}
	}
}

func TestComputeMastery_UnspecifiedCategoryWeight(t *testing.T) {
	// A wrong answer without a category scores like a structural one.
	bare := ComputeMastery([]Attempt{wrong("")}, 0)
	structural := ComputeMastery([]Attempt{wrong(CategoryStructural)}, 0)
	if !almostEqual(bare, structural) {
		t.Errorf("uncategorized = %f, structural = %f, want equal", bare, structural)
	}
}
