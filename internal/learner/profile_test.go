package learner

import (
	"errors"
	"testing"
	"time"

	"github.com/abhisek/tutord/internal/engine"
)

var testNow = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

func correctAttempt(id string) engine.Attempt {
	return engine.Attempt{QuestionID: id, LearnerAnswer: "4", CorrectAnswer: "4", Correct: true}
}

func wrongAttempt(id string, cat engine.ErrorCategory) engine.Attempt {
	return engine.Attempt{QuestionID: id, LearnerAnswer: "5", CorrectAnswer: "4", Category: cat}
}

func TestStartSession_NewTopic(t *testing.T) {
	p := NewProfile("alice")
	start := p.StartSession("Markov Process", testNow)

	if start.Topic != "markov_process" {
		t.Errorf("topic = %q, want normalized %q", start.Topic, "markov_process")
	}
	if start.SessionNumber != 1 {
		t.Errorf("session number = %d, want 1", start.SessionNumber)
	}
	if !start.NeedsTopicGraph {
		t.Error("new topic should need a graph")
	}
	if start.Trajectory != engine.TrajectoryUnknown {
		t.Errorf("trajectory = %q, want unknown", start.Trajectory)
	}
	if got := start.Band.Current; got != engine.BloomRemember {
		t.Errorf("band current = %q, want remember", got)
	}
	if len(p.Sessions) != 1 {
		t.Fatalf("session history length = %d, want 1", len(p.Sessions))
	}
	if p.Sessions[0].StartTime != engine.FormatTimestamp(testNow) {
		t.Errorf("summary start = %q, want %q", p.Sessions[0].StartTime, engine.FormatTimestamp(testNow))
	}
}

func TestStartSession_ResetsSessionScopedBreakState(t *testing.T) {
	p := NewProfile("alice")
	p.StartSession("math", testNow)

	ts := p.Topics["math"]
	ts.BreakState.ConsecutiveErrors = 4
	ts.BreakState.PostBreakWarmup = true
	ts.BreakState.SeverityTrend = []int{1, 2, 3}
	ts.BreakState.BreaksTaken = 2
	ts.BreakState.LastBreakTaken = engine.FormatTimestamp(testNow)

	p.StartSession("math", testNow.Add(24*time.Hour))
	bs := ts.BreakState
	if bs.ConsecutiveErrors != 0 || bs.PostBreakWarmup || bs.SeverityTrend != nil {
		t.Errorf("session-scoped fields not reset: %+v", bs)
	}
	if bs.BreaksTaken != 2 || bs.LastBreakTaken == "" {
		t.Error("break history should persist across sessions")
	}
	if p.SessionCount != 2 {
		t.Errorf("session count = %d, want 2", p.SessionCount)
	}
}

func TestRecordAttempt_CorrectClearsCountersAndWarmup(t *testing.T) {
	p := NewProfile("alice")
	p.StartSession("math", testNow)
	ts := p.Topics["math"]
	ts.BreakState.ConsecutiveErrors = 3
	ts.BreakState.PostBreakWarmup = true

	out := p.RecordAttempt("math", correctAttempt("q1"), testNow)
	if out.ConsecutiveErrors != 0 {
		t.Errorf("consecutive errors = %d, want 0", out.ConsecutiveErrors)
	}
	if ts.BreakState.PostBreakWarmup {
		t.Error("warmup flag should clear on a correct answer")
	}
	if out.TotalAttempts != 1 {
		t.Errorf("total attempts = %d, want 1", out.TotalAttempts)
	}
	if out.Mastery <= 0 {
		t.Errorf("mastery = %v, want > 0 after a correct attempt", out.Mastery)
	}
}

func TestRecordAttempt_IncorrectGrowsTrend(t *testing.T) {
	p := NewProfile("alice")
	p.StartSession("math", testNow)

	p.RecordAttempt("math", wrongAttempt("q1", engine.CategoryComputational), testNow)
	out := p.RecordAttempt("math", wrongAttempt("q2", engine.CategoryConceptual), testNow)

	if out.ConsecutiveErrors != 2 {
		t.Errorf("consecutive errors = %d, want 2", out.ConsecutiveErrors)
	}
	ts := p.Topics["math"]
	want := []int{1, 3}
	if len(ts.BreakState.SeverityTrend) != 2 ||
		ts.BreakState.SeverityTrend[0] != want[0] ||
		ts.BreakState.SeverityTrend[1] != want[1] {
		t.Errorf("severity trend = %v, want %v", ts.BreakState.SeverityTrend, want)
	}
}

func TestRecordAttempt_TrendCappedAtTen(t *testing.T) {
	p := NewProfile("alice")
	p.StartSession("math", testNow)
	for i := 0; i < 14; i++ {
		p.RecordAttempt("math", wrongAttempt("q", engine.CategoryStructural), testNow)
	}
	trend := p.Topics["math"].BreakState.SeverityTrend
	if len(trend) != 10 {
		t.Errorf("trend length = %d, want 10", len(trend))
	}
}

func TestRecordAttempt_MissingCategoryUsesStructuralSeverity(t *testing.T) {
	p := NewProfile("alice")
	p.RecordAttempt("math", engine.Attempt{QuestionID: "q1"}, testNow)
	trend := p.Topics["math"].BreakState.SeverityTrend
	if len(trend) != 1 || trend[0] != 2 {
		t.Errorf("trend = %v, want [2]", trend)
	}
}

func TestRecordAttempt_ProductiveFailure(t *testing.T) {
	p := NewProfile("alice")
	out := p.RecordAttempt("math", wrongAttempt("q1", engine.CategoryComputational), testNow)
	if !out.ProductiveFailure {
		t.Error("computational miss should count as productive failure")
	}
	if p.Topics["math"].ProductiveFailures != 1 {
		t.Errorf("productive failures = %d, want 1", p.Topics["math"].ProductiveFailures)
	}

	out = p.RecordAttempt("math", wrongAttempt("q2", engine.CategoryConceptual), testNow)
	if out.ProductiveFailure {
		t.Error("conceptual miss is not a productive failure")
	}
}

func TestRecordAttempt_DerivedFieldsStayInSync(t *testing.T) {
	p := NewProfile("alice")
	for i := 0; i < 6; i++ {
		p.RecordAttempt("math", correctAttempt("q"), testNow)
	}
	ts := p.Topics["math"]
	if got := engine.ComputeMastery(ts.Attempts, engine.DefaultMasteryWindow); got != ts.Mastery {
		t.Errorf("stored mastery %v != recomputed %v", ts.Mastery, got)
	}
	if got := engine.ComputeTrajectory(ts.Attempts, engine.DefaultTrajectoryWindow); got != ts.Trajectory {
		t.Errorf("stored trajectory %v != recomputed %v", ts.Trajectory, got)
	}
}

func TestRecordAttempt_UpdatesSessionSummary(t *testing.T) {
	p := NewProfile("alice")
	p.StartSession("math", testNow)
	p.RecordAttempt("math", correctAttempt("q1"), testNow)
	p.RecordAttempt("math", wrongAttempt("q2", engine.CategoryComputational), testNow)

	s := p.Sessions[0]
	if s.Attempts != 2 || s.Correct != 1 {
		t.Errorf("summary attempts/correct = %d/%d, want 2/1", s.Attempts, s.Correct)
	}
	if s.MasteryEnd != p.Topics["math"].Mastery {
		t.Errorf("summary mastery end = %v, want %v", s.MasteryEnd, p.Topics["math"].Mastery)
	}
}

func TestRecordAttempt_StampsTimestamp(t *testing.T) {
	p := NewProfile("alice")
	p.RecordAttempt("math", correctAttempt("q1"), testNow)
	got := p.Topics["math"].Attempts[0].Timestamp
	if got != engine.FormatTimestamp(testNow) {
		t.Errorf("timestamp = %q, want %q", got, engine.FormatTimestamp(testNow))
	}
}

func TestRecordBreak(t *testing.T) {
	p := NewProfile("alice")
	p.StartSession("math", testNow)
	ts := p.Topics["math"]
	ts.BreakState.ConsecutiveErrors = 5
	ts.BreakState.SeverityTrend = []int{2, 2, 3}

	taken, err := p.RecordBreak("math", testNow.Add(20*time.Minute))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if taken != 1 {
		t.Errorf("breaks taken = %d, want 1", taken)
	}
	bs := ts.BreakState
	if bs.ConsecutiveErrors != 0 || bs.SeverityTrend != nil {
		t.Errorf("break should clear counters, got %+v", bs)
	}
	if !bs.PostBreakWarmup {
		t.Error("break should set the warmup flag")
	}
	if p.Sessions[0].BreaksTaken != 1 {
		t.Errorf("summary breaks = %d, want 1", p.Sessions[0].BreaksTaken)
	}
}

func TestRecordBreak_UnknownTopic(t *testing.T) {
	p := NewProfile("alice")
	if _, err := p.RecordBreak("math", testNow); !errors.Is(err, ErrUnknownTopic) {
		t.Errorf("error = %v, want ErrUnknownTopic", err)
	}
}

func TestObserveMisconception_NewAndRepeat(t *testing.T) {
	p := NewProfile("alice")
	rec := p.ObserveMisconception("math", "Confuses area with perimeter", testNow)
	if !rec.New || rec.TimesObserved != 1 {
		t.Errorf("first observation = %+v, want new with count 1", rec)
	}

	rec = p.ObserveMisconception("math", "confuses AREA with perimeter", testNow.Add(time.Hour))
	if rec.New {
		t.Error("case-insensitive match should not create a new record")
	}
	if rec.TimesObserved != 2 {
		t.Errorf("count = %d, want 2", rec.TimesObserved)
	}
	if rec.Description != "Confuses area with perimeter" {
		t.Errorf("description = %q, want the original casing", rec.Description)
	}
}

func TestResolveMisconception_AndReopen(t *testing.T) {
	p := NewProfile("alice")
	p.ObserveMisconception("math", "off by one", testNow)

	if _, err := p.ResolveMisconception("math", "OFF BY ONE", testNow); err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if !p.Topics["math"].Misconceptions[0].Resolved {
		t.Fatal("misconception should be resolved")
	}

	p.ObserveMisconception("math", "off by one", testNow.Add(time.Hour))
	if p.Topics["math"].Misconceptions[0].Resolved {
		t.Error("re-observation should reopen a resolved misconception")
	}
}

func TestResolveMisconception_NotFound(t *testing.T) {
	p := NewProfile("alice")
	p.StartSession("math", testNow)
	if _, err := p.ResolveMisconception("math", "never seen", testNow); err == nil {
		t.Error("expected error for unknown misconception")
	}
}

func TestAddTopics(t *testing.T) {
	p := NewProfile("alice")
	p.StartSession("algebra", testNow)
	p.SetTopicGraph("geometry", map[string][]string{"geometry": {"algebra"}})

	out := p.AddTopics([]string{"Algebra", "Geometry", "Number Theory"})
	if len(out.Added) != 2 {
		t.Fatalf("added = %v, want geometry and number_theory", out.Added)
	}
	if len(out.AlreadyExisted) != 1 || out.AlreadyExisted[0] != "algebra" {
		t.Errorf("already existed = %v, want [algebra]", out.AlreadyExisted)
	}
	if len(out.NeedsTopicGraph) != 1 || out.NeedsTopicGraph[0] != "number_theory" {
		t.Errorf("needs graph = %v, want [number_theory]", out.NeedsTopicGraph)
	}
}

func TestDeleteTopic(t *testing.T) {
	p := NewProfile("alice")
	p.StartSession("math", testNow)
	p.StartSession("physics", testNow)
	p.SetTopicGraph("math", map[string][]string{"math": {"arithmetic"}})

	remaining, err := p.DeleteTopic("Math")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(remaining) != 1 || remaining[0] != "physics" {
		t.Errorf("remaining = %v, want [physics]", remaining)
	}
	if _, ok := p.TopicGraphs["math"]; ok {
		t.Error("graph entry should be removed with the topic")
	}
}

func TestDeleteTopic_Unknown(t *testing.T) {
	p := NewProfile("alice")
	if _, err := p.DeleteTopic("math"); !errors.Is(err, ErrUnknownTopic) {
		t.Errorf("error = %v, want ErrUnknownTopic", err)
	}
}

func TestOverrideMastery_Clamps(t *testing.T) {
	p := NewProfile("alice")
	cases := []struct {
		in, want float64
	}{
		{0.5, 0.5},
		{-0.2, 0},
		{1.5, 0.99},
		{1.0, 0.99},
	}
	for _, c := range cases {
		if got := p.OverrideMastery("math", c.in); got != c.want {
			t.Errorf("OverrideMastery(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestAssess_UnknownTopic(t *testing.T) {
	p := NewProfile("alice")
	if _, err := p.Assess("math", testNow); !errors.Is(err, ErrUnknownTopic) {
		t.Errorf("error = %v, want ErrUnknownTopic", err)
	}
}

func TestAssess_StampsSuggestionWhenBreakNeeded(t *testing.T) {
	p := NewProfile("alice")
	p.StartSession("math", testNow)
	ts := p.Topics["math"]
	ts.BreakState.ConsecutiveErrors = 5

	got, err := p.Assess("math", testNow.Add(5*time.Minute))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Recommendation.Action != engine.ActionTakeBreak {
		t.Errorf("action = %q, want take_break", got.Recommendation.Action)
	}
	want := engine.FormatTimestamp(testNow.Add(5 * time.Minute))
	if ts.BreakState.LastBreakSuggestion != want {
		t.Errorf("suggestion stamp = %q, want %q", ts.BreakState.LastBreakSuggestion, want)
	}

	// Within cooldown the monitor stays quiet, so no break recommendation.
	got, err = p.Assess("math", testNow.Add(7*time.Minute))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Recommendation.Action == engine.ActionTakeBreak {
		t.Error("break should not be re-suggested inside the cooldown")
	}
}

func TestAssess_UsesGraphForTopic(t *testing.T) {
	p := NewProfile("alice")
	p.StartSession("math", testNow)
	p.SetTopicGraph("math", map[string][]string{"math": {"arithmetic"}})
	ts := p.Topics["math"]
	ts.Trajectory = engine.TrajectoryDeclining
	for i := 0; i < 4; i++ {
		ts.Attempts = append(ts.Attempts, wrongAttempt("q", engine.CategoryStructural))
	}

	got, err := p.Assess("math", testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Recommendation.Action != engine.ActionGoBack {
		t.Fatalf("action = %q, want go_back", got.Recommendation.Action)
	}
	if got.Recommendation.PrerequisiteTopic != "arithmetic" {
		t.Errorf("prerequisite = %q, want arithmetic", got.Recommendation.PrerequisiteTopic)
	}
}

func TestCheckBreak_StampsOnPositive(t *testing.T) {
	p := NewProfile("alice")
	p.StartSession("math", testNow)
	p.Topics["math"].BreakState.ConsecutiveErrors = 5

	check, err := p.CheckBreak("math", testNow.Add(time.Minute))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !check.Needed || check.Urgency != engine.UrgencyHigh {
		t.Errorf("check = %+v, want needed with high urgency", check)
	}
	if p.Topics["math"].BreakState.LastBreakSuggestion == "" {
		t.Error("positive check should stamp the suggestion time")
	}
}

func TestEndSession(t *testing.T) {
	p := NewProfile("alice")
	p.StartSession("math", testNow)
	p.RecordAttempt("math", correctAttempt("q1"), testNow)
	p.RecordAttempt("math", wrongAttempt("q2", engine.CategoryComputational), testNow)

	report, ok, err := p.EndSession(testNow.Add(30 * time.Minute))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected an open session")
	}
	if report.DurationMinutes != 30 {
		t.Errorf("duration = %v, want 30", report.DurationMinutes)
	}
	if report.Attempts != 2 || report.Correct != 1 {
		t.Errorf("attempts/correct = %d/%d, want 2/1", report.Attempts, report.Correct)
	}
	if report.Accuracy != 0.5 {
		t.Errorf("accuracy = %v, want 0.5", report.Accuracy)
	}
	if report.MasteryChange != report.MasteryEnd-report.MasteryStart {
		t.Errorf("mastery change = %v, inconsistent with start/end", report.MasteryChange)
	}
	if p.Sessions[0].EndTime == "" {
		t.Error("summary end time should be stamped")
	}
}

func TestEndSession_NoHistory(t *testing.T) {
	p := NewProfile("alice")
	_, ok, err := p.EndSession(testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("no session to close")
	}
}

func TestEndSession_BadStartTime(t *testing.T) {
	p := NewProfile("alice")
	p.StartSession("math", testNow)
	p.Sessions[0].StartTime = "not a timestamp"

	_, _, err := p.EndSession(testNow)
	var die *engine.DataIntegrityError
	if !errors.As(err, &die) {
		t.Errorf("error = %v, want DataIntegrityError", err)
	}
}
