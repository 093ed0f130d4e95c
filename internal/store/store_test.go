package store

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/tutord/internal/engine"
	"github.com/abhisek/tutord/internal/learner"
)

func testTime() time.Time {
	return time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestProfileLoadMissingReturnsDefault(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	p, err := s.Profiles().Load(ctx, "alice")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p.LearnerID != "alice" {
		t.Errorf("learner id = %q, want alice", p.LearnerID)
	}
	if p.SessionCount != 0 || len(p.Topics) != 0 {
		t.Errorf("expected a fresh profile, got %+v", p)
	}
}

func TestProfileSaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Profiles()

	p := learner.NewProfile("alice")
	p.StartSession("fractions", testTime())
	p.RecordAttempt("fractions", engine.Attempt{
		QuestionID:    "q1",
		LearnerAnswer: "1/2",
		CorrectAnswer: "1/2",
		Correct:       true,
	}, testTime())
	p.SetTopicGraph("fractions", map[string][]string{"fractions": {"division"}})

	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Load(ctx, "alice")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.SessionCount != 1 {
		t.Errorf("session count = %d, want 1", got.SessionCount)
	}
	ts, ok := got.Topics["fractions"]
	if !ok {
		t.Fatal("fractions topic missing after round trip")
	}
	if len(ts.Attempts) != 1 || !ts.Attempts[0].Correct {
		t.Errorf("attempt history = %+v, want one correct attempt", ts.Attempts)
	}
	if ts.Mastery != p.Topics["fractions"].Mastery {
		t.Errorf("mastery = %v, want %v", ts.Mastery, p.Topics["fractions"].Mastery)
	}
	prereqs := got.TopicGraphs["fractions"].PrereqsFor("fractions")
	if len(prereqs) != 1 || prereqs[0] != "division" {
		t.Errorf("prereqs = %v, want [division]", prereqs)
	}
}

func TestProfileSaveOverwrites(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Profiles()

	p := learner.NewProfile("alice")
	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("first save: %v", err)
	}
	p.StartSession("math", testTime())
	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := repo.Load(ctx, "alice")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.SessionCount != 1 {
		t.Errorf("session count = %d, want 1 after overwrite", got.SessionCount)
	}
}

func TestLearnersListing(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Profiles()

	for _, id := range []string{"carol", "alice", "bob"} {
		if err := repo.Save(ctx, learner.NewProfile(id)); err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
	}

	ids, err := repo.Learners(ctx)
	if err != nil {
		t.Fatalf("learners: %v", err)
	}
	want := []string{"alice", "bob", "carol"}
	if len(ids) != len(want) {
		t.Fatalf("learners = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("learners[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}

func TestEventAppendAndStats(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	events := s.Events()

	attempts := []AttemptEventData{
		{LearnerID: "alice", Topic: "math", QuestionID: "q1", Correct: true},
		{LearnerID: "alice", Topic: "math", QuestionID: "q2", Correct: false, Category: "computational"},
		{LearnerID: "alice", Topic: "physics", QuestionID: "q3", Correct: true},
		{LearnerID: "bob", Topic: "math", QuestionID: "q4", Correct: false, Category: "conceptual"},
	}
	for _, a := range attempts {
		if err := events.AppendAttempt(ctx, a); err != nil {
			t.Fatalf("append attempt: %v", err)
		}
	}

	stats, err := events.TopicStats(ctx, "alice", "math")
	if err != nil {
		t.Fatalf("topic stats: %v", err)
	}
	if stats.Attempts != 2 || stats.Correct != 1 {
		t.Errorf("stats = %+v, want 2 attempts / 1 correct", stats)
	}
	if stats.Accuracy != 0.5 {
		t.Errorf("accuracy = %v, want 0.5", stats.Accuracy)
	}
}

func TestTopicStatsEmpty(t *testing.T) {
	s := openTestStore(t)
	stats, err := s.Events().TopicStats(context.Background(), "nobody", "nothing")
	if err != nil {
		t.Fatalf("topic stats: %v", err)
	}
	if stats.Attempts != 0 || stats.Accuracy != 0 {
		t.Errorf("stats = %+v, want zero values", stats)
	}
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	events := s.Events()

	if err := events.AppendAttempt(ctx, AttemptEventData{
		LearnerID: "alice", Topic: "math", QuestionID: "q1", Correct: true,
	}); err != nil {
		t.Fatalf("append attempt: %v", err)
	}
	if err := events.AppendBreak(ctx, BreakEventData{
		LearnerID: "alice", Topic: "math", Action: "taken",
	}); err != nil {
		t.Fatalf("append break: %v", err)
	}
	if err := events.AppendSession(ctx, SessionEventData{
		LearnerID: "alice", Topic: "math", Action: "end", SessionNumber: 1,
	}); err != nil {
		t.Fatalf("append session: %v", err)
	}

	seq, err := s.seq.Next(ctx)
	if err != nil {
		t.Fatalf("next sequence: %v", err)
	}
	if seq != 4 {
		t.Errorf("next sequence = %d, want 4 after three events", seq)
	}
}
