// Package tutor orchestrates the decision engine over persisted learner
// state. Every operation is a load-mutate-save cycle on one learner's
// document, serialized per learner so concurrent tool calls can't clobber
// each other.
package tutor

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/abhisek/tutord/internal/engine"
	"github.com/abhisek/tutord/internal/learner"
	"github.com/abhisek/tutord/internal/logging"
	"github.com/abhisek/tutord/internal/store"
)

// Service exposes the tutoring operations backed by the store.
type Service struct {
	profiles store.ProfileRepo
	events   store.EventRepo
	tuning   learner.Tuning
	log      *slog.Logger

	now func() time.Time

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates a Service over the given repositories.
func New(profiles store.ProfileRepo, events store.EventRepo, tuning learner.Tuning) *Service {
	return &Service{
		profiles: profiles,
		events:   events,
		tuning:   tuning,
		log:      logging.New("tutor"),
		now:      time.Now,
		locks:    make(map[string]*sync.Mutex),
	}
}

// lock serializes operations per learner and returns the unlock func.
func (s *Service) lock(learnerID string) func() {
	s.mu.Lock()
	m, ok := s.locks[learnerID]
	if !ok {
		m = &sync.Mutex{}
		s.locks[learnerID] = m
	}
	s.mu.Unlock()

	m.Lock()
	return m.Unlock
}

// load fetches a learner's profile and applies the process tuning.
func (s *Service) load(ctx context.Context, learnerID string) (*learner.Profile, error) {
	p, err := s.profiles.Load(ctx, learnerID)
	if err != nil {
		return nil, err
	}
	p.ApplyTuning(s.tuning)
	return p, nil
}

// StartSession starts or resumes a tutoring session on a topic.
func (s *Service) StartSession(ctx context.Context, learnerID, topic string) (learner.SessionStart, error) {
	defer s.lock(learnerID)()

	p, err := s.load(ctx, learnerID)
	if err != nil {
		return learner.SessionStart{}, err
	}

	start := p.StartSession(topic, s.now())
	if err := s.profiles.Save(ctx, p); err != nil {
		return learner.SessionStart{}, err
	}

	if err := s.events.AppendSession(ctx, store.SessionEventData{
		LearnerID:     learnerID,
		Topic:         start.Topic,
		Action:        "start",
		SessionID:     start.SessionID,
		SessionNumber: start.SessionNumber,
	}); err != nil {
		s.log.Warn("append session event failed", "err", err)
	}

	s.log.Info("session started",
		"learner", learnerID, "topic", start.Topic, "session", start.SessionNumber)
	return start, nil
}

// AttemptInput is the caller-supplied description of one graded answer.
type AttemptInput struct {
	QuestionID    string
	LearnerAnswer string
	CorrectAnswer string
	Correct       bool
	ErrorCategory string
	ErrorStep     string
	BloomLevel    string
}

// RecordAttempt records a graded answer and returns the refreshed derived
// state.
func (s *Service) RecordAttempt(ctx context.Context, learnerID, topic string, in AttemptInput) (learner.AttemptOutcome, error) {
	defer s.lock(learnerID)()

	p, err := s.load(ctx, learnerID)
	if err != nil {
		return learner.AttemptOutcome{}, err
	}

	a := engine.Attempt{
		QuestionID:    in.QuestionID,
		LearnerAnswer: in.LearnerAnswer,
		CorrectAnswer: in.CorrectAnswer,
		Correct:       in.Correct,
		Category:      engine.ErrorCategory(in.ErrorCategory),
		ErrorStep:     in.ErrorStep,
		BloomLevel:    engine.BloomLevel(in.BloomLevel),
	}
	out := p.RecordAttempt(topic, a, s.now())
	if err := s.profiles.Save(ctx, p); err != nil {
		return learner.AttemptOutcome{}, err
	}

	if err := s.events.AppendAttempt(ctx, store.AttemptEventData{
		LearnerID:  learnerID,
		Topic:      learner.NormalizeTopic(topic),
		QuestionID: in.QuestionID,
		Correct:    in.Correct,
		Category:   in.ErrorCategory,
		BloomLevel: in.BloomLevel,
	}); err != nil {
		s.log.Warn("append attempt event failed", "err", err)
	}

	return out, nil
}

// GetAssessment runs the full decision engine for a topic.
func (s *Service) GetAssessment(ctx context.Context, learnerID, topic string) (learner.Assessment, error) {
	defer s.lock(learnerID)()

	p, err := s.load(ctx, learnerID)
	if err != nil {
		return learner.Assessment{}, err
	}

	out, err := p.Assess(topic, s.now())
	if err != nil {
		return learner.Assessment{}, err
	}
	// Assess may stamp the break-suggestion time; persist it so the
	// cooldown survives the process.
	if err := s.profiles.Save(ctx, p); err != nil {
		return learner.Assessment{}, err
	}

	if out.Recommendation.Action == engine.ActionTakeBreak {
		if err := s.events.AppendBreak(ctx, store.BreakEventData{
			LearnerID: learnerID,
			Topic:     learner.NormalizeTopic(topic),
			Action:    "suggested",
			Urgency:   string(out.Recommendation.Urgency),
			Reason:    out.Recommendation.Detail,
		}); err != nil {
			s.log.Warn("append break event failed", "err", err)
		}
	}
	return out, nil
}

// CheckBreak runs just the break monitor for a topic.
func (s *Service) CheckBreak(ctx context.Context, learnerID, topic string) (engine.BreakCheck, error) {
	defer s.lock(learnerID)()

	p, err := s.load(ctx, learnerID)
	if err != nil {
		return engine.BreakCheck{}, err
	}

	check, err := p.CheckBreak(topic, s.now())
	if err != nil {
		return engine.BreakCheck{}, err
	}
	if err := s.profiles.Save(ctx, p); err != nil {
		return engine.BreakCheck{}, err
	}

	if check.Needed {
		if err := s.events.AppendBreak(ctx, store.BreakEventData{
			LearnerID: learnerID,
			Topic:     learner.NormalizeTopic(topic),
			Action:    "suggested",
			Urgency:   string(check.Urgency),
			Reason:    check.Reason,
		}); err != nil {
			s.log.Warn("append break event failed", "err", err)
		}
	}
	return check, nil
}

// RecordBreak marks a break as taken and returns the lifetime break count
// for the topic.
func (s *Service) RecordBreak(ctx context.Context, learnerID, topic string) (int, error) {
	defer s.lock(learnerID)()

	p, err := s.load(ctx, learnerID)
	if err != nil {
		return 0, err
	}

	taken, err := p.RecordBreak(topic, s.now())
	if err != nil {
		return 0, err
	}
	if err := s.profiles.Save(ctx, p); err != nil {
		return 0, err
	}

	if err := s.events.AppendBreak(ctx, store.BreakEventData{
		LearnerID: learnerID,
		Topic:     learner.NormalizeTopic(topic),
		Action:    "taken",
	}); err != nil {
		s.log.Warn("append break event failed", "err", err)
	}
	return taken, nil
}

// RecordMisconception logs a misconception observation.
func (s *Service) RecordMisconception(ctx context.Context, learnerID, topic, description string) (learner.MisconceptionRecord, error) {
	defer s.lock(learnerID)()

	p, err := s.load(ctx, learnerID)
	if err != nil {
		return learner.MisconceptionRecord{}, err
	}

	rec := p.ObserveMisconception(topic, description, s.now())
	if err := s.profiles.Save(ctx, p); err != nil {
		return learner.MisconceptionRecord{}, err
	}
	return rec, nil
}

// ResolveMisconception marks a misconception as resolved.
func (s *Service) ResolveMisconception(ctx context.Context, learnerID, topic, description string) (learner.MisconceptionRecord, error) {
	defer s.lock(learnerID)()

	p, err := s.load(ctx, learnerID)
	if err != nil {
		return learner.MisconceptionRecord{}, err
	}

	rec, err := p.ResolveMisconception(topic, description, s.now())
	if err != nil {
		return learner.MisconceptionRecord{}, err
	}
	if err := s.profiles.Save(ctx, p); err != nil {
		return learner.MisconceptionRecord{}, err
	}
	return rec, nil
}

// StoreTopicGraph saves a prerequisite graph for a topic and returns the
// normalized topic key.
func (s *Service) StoreTopicGraph(ctx context.Context, learnerID, topic string, prerequisites map[string][]string) (string, error) {
	defer s.lock(learnerID)()

	p, err := s.load(ctx, learnerID)
	if err != nil {
		return "", err
	}

	key := p.SetTopicGraph(topic, prerequisites)
	if err := s.profiles.Save(ctx, p); err != nil {
		return "", err
	}
	return key, nil
}

// AddTopics registers topics without starting a session.
func (s *Service) AddTopics(ctx context.Context, learnerID string, topics []string) (learner.TopicAddition, error) {
	defer s.lock(learnerID)()

	p, err := s.load(ctx, learnerID)
	if err != nil {
		return learner.TopicAddition{}, err
	}

	out := p.AddTopics(topics)
	if err := s.profiles.Save(ctx, p); err != nil {
		return learner.TopicAddition{}, err
	}
	return out, nil
}

// DeleteTopic removes a topic and its graph, returning the remaining topics.
func (s *Service) DeleteTopic(ctx context.Context, learnerID, topic string) ([]string, error) {
	defer s.lock(learnerID)()

	p, err := s.load(ctx, learnerID)
	if err != nil {
		return nil, err
	}

	remaining, err := p.DeleteTopic(topic)
	if err != nil {
		return remaining, err
	}
	if err := s.profiles.Save(ctx, p); err != nil {
		return nil, err
	}
	return remaining, nil
}

// ProfileView is a learner's document plus lifetime per-topic stats from
// the event log.
type ProfileView struct {
	Profile  *learner.Profile            `json:"profile"`
	Lifetime map[string]store.TopicStats `json:"lifetime_stats,omitempty"`
}

// GetProfile returns the full learner document with lifetime stats.
func (s *Service) GetProfile(ctx context.Context, learnerID string) (ProfileView, error) {
	defer s.lock(learnerID)()

	p, err := s.load(ctx, learnerID)
	if err != nil {
		return ProfileView{}, err
	}

	view := ProfileView{Profile: p}
	for _, topic := range p.TopicNames() {
		stats, err := s.events.TopicStats(ctx, learnerID, topic)
		if err != nil {
			s.log.Warn("topic stats failed", "topic", topic, "err", err)
			continue
		}
		if stats.Attempts > 0 {
			if view.Lifetime == nil {
				view.Lifetime = make(map[string]store.TopicStats)
			}
			view.Lifetime[topic] = stats
		}
	}
	return view, nil
}

// UpdateTopicMastery manually overrides a topic's mastery level. The value
// is clamped to the valid range and returned.
func (s *Service) UpdateTopicMastery(ctx context.Context, learnerID, topic string, level float64) (float64, error) {
	defer s.lock(learnerID)()

	p, err := s.load(ctx, learnerID)
	if err != nil {
		return 0, err
	}

	got := p.OverrideMastery(topic, level)
	if err := s.profiles.Save(ctx, p); err != nil {
		return 0, err
	}
	return got, nil
}

// EndSession closes the learner's open session. The bool is false when no
// session was ever started.
func (s *Service) EndSession(ctx context.Context, learnerID string) (learner.SessionReport, bool, error) {
	defer s.lock(learnerID)()

	p, err := s.load(ctx, learnerID)
	if err != nil {
		return learner.SessionReport{}, false, err
	}

	report, ok, err := p.EndSession(s.now())
	if err != nil {
		return learner.SessionReport{}, false, err
	}
	if err := s.profiles.Save(ctx, p); err != nil {
		return learner.SessionReport{}, false, err
	}
	if !ok {
		return learner.SessionReport{}, false, nil
	}

	if err := s.events.AppendSession(ctx, store.SessionEventData{
		LearnerID:      learnerID,
		Topic:          report.Topic,
		Action:         "end",
		SessionID:      report.SessionID,
		SessionNumber:  report.Number,
		Attempts:       report.Attempts,
		CorrectAnswers: report.Correct,
		MasteryDelta:   report.MasteryChange,
	}); err != nil {
		s.log.Warn("append session event failed", "err", err)
	}

	s.log.Info("session ended",
		"learner", learnerID, "topic", report.Topic,
		"attempts", report.Attempts, "mastery_delta", report.MasteryChange)
	return report, true, nil
}

// ExportProfile serializes a learner's document as indented JSON.
func (s *Service) ExportProfile(ctx context.Context, learnerID string) ([]byte, error) {
	defer s.lock(learnerID)()

	p, err := s.load(ctx, learnerID)
	if err != nil {
		return nil, err
	}
	b, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal profile: %w", err)
	}
	return b, nil
}

// ImportProfile validates an exported document and stores it, overwriting
// any existing document for that learner.
func (s *Service) ImportProfile(ctx context.Context, raw []byte) (*learner.Profile, error) {
	p, err := learner.ParseDocument(raw)
	if err != nil {
		return nil, err
	}

	defer s.lock(p.LearnerID)()
	if err := s.profiles.Save(ctx, p); err != nil {
		return nil, err
	}
	s.log.Info("profile imported", "learner", p.LearnerID, "topics", len(p.Topics))
	return p, nil
}

// Learners lists all stored learner IDs.
func (s *Service) Learners(ctx context.Context) ([]string, error) {
	return s.profiles.Learners(ctx)
}
