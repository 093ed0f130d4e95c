package tutor

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/tutord/internal/engine"
	"github.com/abhisek/tutord/internal/learner"
	"github.com/abhisek/tutord/internal/store"
)

var testNow = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

// memProfiles persists profiles through a JSON round trip, like the real
// repo does.
type memProfiles struct {
	mu   sync.Mutex
	docs map[string][]byte
}

func newMemProfiles() *memProfiles {
	return &memProfiles{docs: make(map[string][]byte)}
}

func (r *memProfiles) Load(_ context.Context, learnerID string) (*learner.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	raw, ok := r.docs[learnerID]
	if !ok {
		return learner.NewProfile(learnerID), nil
	}
	var p learner.Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *memProfiles) Save(_ context.Context, p *learner.Profile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs[p.LearnerID] = raw
	return nil
}

func (r *memProfiles) Learners(_ context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ids []string
	for id := range r.docs {
		ids = append(ids, id)
	}
	return ids, nil
}

type memEvents struct {
	mu       sync.Mutex
	attempts []store.AttemptEventData
	sessions []store.SessionEventData
	breaks   []store.BreakEventData
}

func (r *memEvents) AppendAttempt(_ context.Context, data store.AttemptEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attempts = append(r.attempts, data)
	return nil
}

func (r *memEvents) AppendSession(_ context.Context, data store.SessionEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions = append(r.sessions, data)
	return nil
}

func (r *memEvents) AppendBreak(_ context.Context, data store.BreakEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.breaks = append(r.breaks, data)
	return nil
}

func (r *memEvents) TopicStats(_ context.Context, learnerID, topic string) (store.TopicStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var stats store.TopicStats
	for _, a := range r.attempts {
		if a.LearnerID == learnerID && a.Topic == topic {
			stats.Attempts++
			if a.Correct {
				stats.Correct++
			}
		}
	}
	if stats.Attempts > 0 {
		stats.Accuracy = float64(stats.Correct) / float64(stats.Attempts)
	}
	return stats, nil
}

func newTestService() (*Service, *memProfiles, *memEvents) {
	profiles := newMemProfiles()
	events := &memEvents{}
	svc := New(profiles, events, learner.DefaultTuning())
	svc.now = func() time.Time { return testNow }
	return svc, profiles, events
}

func TestStartSession_PersistsAndLogs(t *testing.T) {
	svc, profiles, events := newTestService()
	ctx := context.Background()

	start, err := svc.StartSession(ctx, "alice", "Markov Process")
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	if start.Topic != "markov_process" || start.SessionNumber != 1 {
		t.Errorf("start = %+v, want markov_process session 1", start)
	}
	if start.SessionID == "" {
		t.Error("session id should be assigned")
	}
	if !start.NeedsTopicGraph {
		t.Error("new topic should need a graph")
	}

	saved, err := profiles.Load(ctx, "alice")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if saved.SessionCount != 1 {
		t.Errorf("persisted session count = %d, want 1", saved.SessionCount)
	}

	if len(events.sessions) != 1 || events.sessions[0].Action != "start" {
		t.Errorf("session events = %+v, want one start", events.sessions)
	}
}

func TestRecordAttempt_FlowsThroughEngine(t *testing.T) {
	svc, profiles, events := newTestService()
	ctx := context.Background()

	svc.StartSession(ctx, "alice", "math")
	out, err := svc.RecordAttempt(ctx, "alice", "math", AttemptInput{
		QuestionID:    "q1",
		LearnerAnswer: "5",
		CorrectAnswer: "4",
		Correct:       false,
		ErrorCategory: "computational",
	})
	if err != nil {
		t.Fatalf("record attempt: %v", err)
	}
	if !out.ProductiveFailure {
		t.Error("computational miss should flag a productive failure")
	}
	if out.ConsecutiveErrors != 1 {
		t.Errorf("consecutive errors = %d, want 1", out.ConsecutiveErrors)
	}

	saved, _ := profiles.Load(ctx, "alice")
	ts := saved.Topics["math"]
	if len(ts.Attempts) != 1 {
		t.Fatalf("persisted attempts = %d, want 1", len(ts.Attempts))
	}
	if ts.Attempts[0].Timestamp == "" {
		t.Error("attempt should be timestamped")
	}

	if len(events.attempts) != 1 || events.attempts[0].Category != "computational" {
		t.Errorf("attempt events = %+v, want one computational", events.attempts)
	}
}

func TestGetAssessment_StampsSuggestionAndLogsBreak(t *testing.T) {
	svc, profiles, events := newTestService()
	ctx := context.Background()

	svc.StartSession(ctx, "alice", "math")
	for i := 0; i < 5; i++ {
		svc.RecordAttempt(ctx, "alice", "math", AttemptInput{
			QuestionID: "q", Correct: false, ErrorCategory: "structural",
		})
	}

	got, err := svc.GetAssessment(ctx, "alice", "math")
	if err != nil {
		t.Fatalf("assessment: %v", err)
	}
	if got.Recommendation.Action != engine.ActionTakeBreak {
		t.Fatalf("action = %q, want take_break after five straight errors", got.Recommendation.Action)
	}

	saved, _ := profiles.Load(ctx, "alice")
	if saved.Topics["math"].BreakState.LastBreakSuggestion == "" {
		t.Error("suggestion stamp should be persisted")
	}

	if len(events.breaks) != 1 || events.breaks[0].Action != "suggested" {
		t.Errorf("break events = %+v, want one suggested", events.breaks)
	}
}

func TestGetAssessment_UnknownTopic(t *testing.T) {
	svc, _, _ := newTestService()
	if _, err := svc.GetAssessment(context.Background(), "alice", "math"); err == nil {
		t.Error("expected error for topic with no data")
	}
}

func TestRecordBreak_RoundTrip(t *testing.T) {
	svc, profiles, events := newTestService()
	ctx := context.Background()

	svc.StartSession(ctx, "alice", "math")
	taken, err := svc.RecordBreak(ctx, "alice", "math")
	if err != nil {
		t.Fatalf("record break: %v", err)
	}
	if taken != 1 {
		t.Errorf("breaks taken = %d, want 1", taken)
	}

	saved, _ := profiles.Load(ctx, "alice")
	bs := saved.Topics["math"].BreakState
	if !bs.PostBreakWarmup || bs.LastBreakTaken == "" {
		t.Errorf("break state not persisted: %+v", bs)
	}
	if len(events.breaks) != 1 || events.breaks[0].Action != "taken" {
		t.Errorf("break events = %+v, want one taken", events.breaks)
	}
}

func TestMisconceptionLifecycle(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	rec, err := svc.RecordMisconception(ctx, "alice", "math", "confuses mean and median")
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if !rec.New {
		t.Error("first observation should be new")
	}

	rec, err = svc.ResolveMisconception(ctx, "alice", "math", "Confuses Mean and Median")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if rec.TimesObserved != 1 {
		t.Errorf("times observed = %d, want 1", rec.TimesObserved)
	}
}

func TestEndSession_EmitsMasteryDelta(t *testing.T) {
	svc, _, events := newTestService()
	ctx := context.Background()

	svc.StartSession(ctx, "alice", "math")
	svc.RecordAttempt(ctx, "alice", "math", AttemptInput{QuestionID: "q1", Correct: true})

	report, ok, err := svc.EndSession(ctx, "alice")
	if err != nil {
		t.Fatalf("end session: %v", err)
	}
	if !ok {
		t.Fatal("expected an open session")
	}
	if report.MasteryChange <= 0 {
		t.Errorf("mastery change = %v, want > 0 after a correct answer", report.MasteryChange)
	}

	var end *store.SessionEventData
	for i := range events.sessions {
		if events.sessions[i].Action == "end" {
			end = &events.sessions[i]
		}
	}
	if end == nil {
		t.Fatal("no end event logged")
	}
	if end.MasteryDelta != report.MasteryChange {
		t.Errorf("event delta = %v, want %v", end.MasteryDelta, report.MasteryChange)
	}
	if end.SessionID != report.SessionID {
		t.Errorf("event session id = %q, want %q", end.SessionID, report.SessionID)
	}
}

func TestEndSession_NoSession(t *testing.T) {
	svc, _, _ := newTestService()
	_, ok, err := svc.EndSession(context.Background(), "alice")
	if err != nil {
		t.Fatalf("end session: %v", err)
	}
	if ok {
		t.Error("no session to close")
	}
}

func TestExportImport_RoundTrip(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	svc.StartSession(ctx, "alice", "math")
	svc.RecordAttempt(ctx, "alice", "math", AttemptInput{QuestionID: "q1", Correct: true})

	raw, err := svc.ExportProfile(ctx, "alice")
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	// Import under a second service instance, as a restore would.
	svc2, profiles2, _ := newTestService()
	p, err := svc2.ImportProfile(ctx, raw)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if p.LearnerID != "alice" {
		t.Errorf("learner id = %q, want alice", p.LearnerID)
	}

	restored, _ := profiles2.Load(ctx, "alice")
	if len(restored.Topics["math"].Attempts) != 1 {
		t.Error("attempt history should survive export/import")
	}
}

func TestImportProfile_RejectsInvalid(t *testing.T) {
	svc, _, _ := newTestService()
	if _, err := svc.ImportProfile(context.Background(), []byte(`{"no_id": true}`)); err == nil {
		t.Error("import without learner_id should fail validation")
	}
}

func TestUpdateTopicMastery_Clamps(t *testing.T) {
	svc, _, _ := newTestService()
	got, err := svc.UpdateTopicMastery(context.Background(), "alice", "math", 1.2)
	if err != nil {
		t.Fatalf("update mastery: %v", err)
	}
	if got != 0.99 {
		t.Errorf("mastery = %v, want clamped 0.99", got)
	}
}

func TestGetProfile_IncludesLifetimeStats(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	svc.StartSession(ctx, "alice", "math")
	svc.RecordAttempt(ctx, "alice", "math", AttemptInput{QuestionID: "q1", Correct: true})
	svc.RecordAttempt(ctx, "alice", "math", AttemptInput{QuestionID: "q2", Correct: false, ErrorCategory: "conceptual"})

	view, err := svc.GetProfile(ctx, "alice")
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	stats, ok := view.Lifetime["math"]
	if !ok {
		t.Fatal("expected lifetime stats for math")
	}
	if stats.Attempts != 2 || stats.Accuracy != 0.5 {
		t.Errorf("stats = %+v, want 2 attempts at 0.5", stats)
	}
}

func TestConcurrentAttemptsSerializePerLearner(t *testing.T) {
	svc, profiles, _ := newTestService()
	ctx := context.Background()
	svc.StartSession(ctx, "alice", "math")

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.RecordAttempt(ctx, "alice", "math", AttemptInput{
				QuestionID: "q", Correct: true,
			}); err != nil {
				t.Errorf("record attempt: %v", err)
			}
		}()
	}
	wg.Wait()

	saved, _ := profiles.Load(ctx, "alice")
	if got := len(saved.Topics["math"].Attempts); got != n {
		t.Errorf("attempts = %d, want %d; concurrent writes lost", got, n)
	}
}
