package store

import (
	"context"

	"github.com/abhisek/tutord/internal/learner"
)

// ProfileRepo manages learner documents. The document is the authoritative
// state for a learner.
type ProfileRepo interface {
	// Load returns the learner's profile, or a fresh default profile when
	// none has been saved yet. A missing learner is not an error.
	Load(ctx context.Context, learnerID string) (*learner.Profile, error)

	// Save upserts the learner's profile.
	Save(ctx context.Context, profile *learner.Profile) error

	// Learners returns the IDs of all stored learners in sorted order.
	Learners(ctx context.Context) ([]string, error)
}

// AttemptEventData captures one graded answer for the audit log.
type AttemptEventData struct {
	LearnerID  string
	Topic      string
	QuestionID string
	Correct    bool
	Category   string
	BloomLevel string
}

// SessionEventData captures a session boundary for the audit log.
type SessionEventData struct {
	LearnerID      string
	Topic          string
	Action         string // start or end
	SessionID      string
	SessionNumber  int
	Attempts       int
	CorrectAnswers int
	MasteryDelta   float64
}

// BreakEventData captures a break suggestion or a break taken.
type BreakEventData struct {
	LearnerID string
	Topic     string
	Action    string // suggested or taken
	Urgency   string
	Reason    string
}

// TopicStats aggregates the attempt log for one learner/topic pair.
type TopicStats struct {
	Attempts int
	Correct  int
	Accuracy float64
}

// EventRepo provides append access to the event log plus the aggregate
// queries served from it.
type EventRepo interface {
	AppendAttempt(ctx context.Context, data AttemptEventData) error
	AppendSession(ctx context.Context, data SessionEventData) error
	AppendBreak(ctx context.Context, data BreakEventData) error

	// TopicStats aggregates all logged attempts for a learner/topic pair,
	// across every session.
	TopicStats(ctx context.Context, learnerID, topic string) (TopicStats, error)
}
