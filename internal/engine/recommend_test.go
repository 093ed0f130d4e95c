package engine

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func recommend(t *testing.T, traj Trajectory, dominant ErrorCategory, mastery float64, graph *TopicGraph, topic string, bs *BreakState) Recommendation {
	t.Helper()
	rec, err := ComputeRecommendation(traj, dominant, mastery, graph, topic, bs, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return rec
}

func mathGraph(prereqs ...string) *TopicGraph {
	return &TopicGraph{Prerequisites: map[string][]string{"math": prereqs}}
}

func TestComputeRecommendation_HighMasteryNoErrors(t *testing.T) {
	rec := recommend(t, TrajectoryFlat, CategoryCorrect, 0.90, nil, "math", nil)
	if rec.Action != ActionKeepGrinding {
		t.Errorf("action = %q, want %q", rec.Action, ActionKeepGrinding)
	}
}

func TestComputeRecommendation_HighMasteryBelowThreshold(t *testing.T) {
	rec := recommend(t, TrajectoryFlat, CategoryCorrect, 0.84, nil, "math", nil)
	if rec.Action != ActionKeepGrinding {
		t.Errorf("action = %q, want %q (default rule)", rec.Action, ActionKeepGrinding)
	}
}

func TestComputeRecommendation_ComputationalFlat(t *testing.T) {
	rec := recommend(t, TrajectoryFlat, CategoryComputational, 0.5, nil, "math", nil)
	if rec.Action != ActionBriefTip {
		t.Errorf("action = %q, want %q", rec.Action, ActionBriefTip)
	}
}

func TestComputeRecommendation_ComputationalImproving(t *testing.T) {
	rec := recommend(t, TrajectoryImproving, CategoryComputational, 0.5, nil, "math", nil)
	if rec.Action != ActionKeepGrinding {
		t.Errorf("action = %q, want %q", rec.Action, ActionKeepGrinding)
	}
}

func TestComputeRecommendation_StructuralFlat(t *testing.T) {
	rec := recommend(t, TrajectoryFlat, CategoryStructural, 0.5, nil, "math", nil)
	if rec.Action != ActionTargetedInstruction {
		t.Errorf("action = %q, want %q", rec.Action, ActionTargetedInstruction)
	}
}

func TestComputeRecommendation_StructuralImproving(t *testing.T) {
	rec := recommend(t, TrajectoryImproving, CategoryStructural, 0.5, nil, "math", nil)
	if rec.Action != ActionKeepGrinding {
		t.Errorf("action = %q, want %q", rec.Action, ActionKeepGrinding)
	}
}

func TestComputeRecommendation_DecliningWithPrereqs(t *testing.T) {
	rec := recommend(t, TrajectoryDeclining, CategoryStructural, 0.3, mathGraph("arithmetic"), "math", nil)
	want := Recommendation{
		Action:            ActionGoBack,
		Detail:            "Trajectory declining. Revisit prerequisite material.",
		PrerequisiteTopic: "arithmetic",
	}
	if diff := cmp.Diff(want, rec); diff != "" {
		t.Errorf("recommendation mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeRecommendation_DecliningPicksFirstPrereq(t *testing.T) {
	rec := recommend(t, TrajectoryDeclining, CategoryStructural, 0.3, mathGraph("algebra", "arithmetic"), "math", nil)
	if rec.PrerequisiteTopic != "algebra" {
		t.Errorf("prerequisite = %q, want the first entry %q", rec.PrerequisiteTopic, "algebra")
	}
}

func TestComputeRecommendation_DecliningNoPrereqs(t *testing.T) {
	rec := recommend(t, TrajectoryDeclining, CategoryStructural, 0.3, nil, "math", nil)
	if rec.Action != ActionTakeBreak {
		t.Errorf("action = %q, want %q", rec.Action, ActionTakeBreak)
	}
	if rec.Urgency != UrgencyMedium {
		t.Errorf("urgency = %q, want %q", rec.Urgency, UrgencyMedium)
	}
	if !rec.PostBreakWarmup {
		t.Error("fallback break should request a post-break warmup")
	}
}

func TestComputeRecommendation_DecliningEmptyPrereqList(t *testing.T) {
	rec := recommend(t, TrajectoryDeclining, CategoryStructural, 0.3, mathGraph(), "math", nil)
	if rec.Action != ActionTakeBreak {
		t.Errorf("action = %q, want %q for empty prerequisite list", rec.Action, ActionTakeBreak)
	}
}

func TestComputeRecommendation_BreakPreemptsEverything(t *testing.T) {
	bs := &BreakState{ConsecutiveErrors: 5}
	rec := recommend(t, TrajectoryFlat, CategoryStructural, 0.3, nil, "math", bs)
	if rec.Action != ActionTakeBreak {
		t.Fatalf("action = %q, want %q", rec.Action, ActionTakeBreak)
	}
	if rec.Urgency != UrgencyHigh {
		t.Errorf("urgency = %q, want %q", rec.Urgency, UrgencyHigh)
	}
	if !rec.PostBreakWarmup {
		t.Error("break recommendation should request a post-break warmup")
	}
}

func TestComputeRecommendation_BreakBeatsHighMastery(t *testing.T) {
	bs := &BreakState{ConsecutiveErrors: 5}
	rec := recommend(t, TrajectoryImproving, CategoryCorrect, 0.95, nil, "math", bs)
	if rec.Action != ActionTakeBreak {
		t.Errorf("action = %q, want %q regardless of mastery", rec.Action, ActionTakeBreak)
	}
}

func TestComputeRecommendation_PostBreakWarmup(t *testing.T) {
	bs := &BreakState{PostBreakWarmup: true}
	rec := recommend(t, TrajectoryFlat, CategoryCorrect, 0.5, nil, "math", bs)
	if rec.Action != ActionWarmup {
		t.Errorf("action = %q, want %q", rec.Action, ActionWarmup)
	}
}

func TestComputeRecommendation_WarmupSuppressedByCooldownBreak(t *testing.T) {
	// A break within cooldown is not re-suggested, but warmup still applies.
	bs := &BreakState{
		PostBreakWarmup:     true,
		ConsecutiveErrors:   5,
		LastBreakSuggestion: stamp(-2 * time.Minute),
		CooldownMinutes:     10,
	}
	rec := recommend(t, TrajectoryFlat, CategoryStructural, 0.3, nil, "math", bs)
	if rec.Action != ActionWarmup {
		t.Errorf("action = %q, want %q", rec.Action, ActionWarmup)
	}
}

func TestComputeRecommendation_ConceptualImproving(t *testing.T) {
	rec := recommend(t, TrajectoryImproving, CategoryConceptual, 0.3, nil, "math", nil)
	if rec.Action != ActionTargetedInstruction {
		t.Errorf("action = %q, want %q", rec.Action, ActionTargetedInstruction)
	}
}

func TestComputeRecommendation_ConceptualFlatWithPrereqs(t *testing.T) {
	rec := recommend(t, TrajectoryFlat, CategoryConceptual, 0.3, mathGraph("basics"), "math", nil)
	if rec.Action != ActionGoBack {
		t.Fatalf("action = %q, want %q", rec.Action, ActionGoBack)
	}
	if rec.PrerequisiteTopic != "basics" {
		t.Errorf("prerequisite = %q, want %q", rec.PrerequisiteTopic, "basics")
	}
}

func TestComputeRecommendation_ConceptualFlatNoPrereqs(t *testing.T) {
	rec := recommend(t, TrajectoryFlat, CategoryConceptual, 0.3, nil, "math", nil)
	if rec.Action != ActionTargetedInstruction {
		t.Errorf("action = %q, want %q", rec.Action, ActionTargetedInstruction)
	}
}

func TestComputeRecommendation_Default(t *testing.T) {
	rec := recommend(t, TrajectoryFlat, CategoryCorrect, 0.5, nil, "math", nil)
	want := Recommendation{
		Action: ActionKeepGrinding,
		Detail: "Continue with appropriately leveled questions.",
	}
	if diff := cmp.Diff(want, rec); diff != "" {
		t.Errorf("recommendation mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeRecommendation_UnknownTrajectoryUsesErrorRules(t *testing.T) {
	rec := recommend(t, TrajectoryUnknown, CategoryConceptual, 0.2, mathGraph("basics"), "math", nil)
	if rec.Action != ActionGoBack {
		t.Errorf("action = %q, want %q for unknown trajectory", rec.Action, ActionGoBack)
	}
}

func TestComputeRecommendation_BadBreakTimestampSurfaces(t *testing.T) {
	bs := &BreakState{LastBreakSuggestion: "garbage"}
	_, err := ComputeRecommendation(TrajectoryFlat, CategoryCorrect, 0.5, nil, "math", bs, testNow)
	if err == nil {
		t.Fatal("expected data-integrity error from break monitor")
	}
}

func TestComputeRecommendation_GraphForOtherTopicIgnored(t *testing.T) {
	graph := &TopicGraph{Prerequisites: map[string][]string{"physics": {"math"}}}
	rec := recommend(t, TrajectoryDeclining, CategoryStructural, 0.3, graph, "math", nil)
	if rec.Action != ActionTakeBreak {
		t.Errorf("action = %q, want %q when the graph has no entry for the topic", rec.Action, ActionTakeBreak)
	}
}
