package learner

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/tutord/internal/engine"
)

// severityTrendCap bounds the persisted severity trend to the most recent
// entries.
const severityTrendCap = 10

// masteryOverrideCap keeps a manual override inside the mastery range,
// which excludes 1.0.
const masteryOverrideCap = 0.99

// ErrUnknownTopic is returned by operations that require an existing topic.
var ErrUnknownTopic = errors.New("unknown topic")

// SessionStart reports the state of a topic at the start of a session.
type SessionStart struct {
	Topic              string            `json:"topic"`
	SessionID          string            `json:"session_id"`
	SessionNumber      int               `json:"session_number"`
	Mastery            float64           `json:"mastery_level"`
	Trajectory         engine.Trajectory `json:"trajectory"`
	TotalAttempts      int               `json:"total_attempts"`
	NeedsTopicGraph    bool              `json:"needs_topic_graph"`
	Band               DifficultyBand    `json:"difficulty_band"`
	OpenMisconceptions []string          `json:"unresolved_misconceptions,omitempty"`
}

// StartSession begins a new session on a topic, creating the topic on first
// reference. Session-scoped break fields are reset; break history and the
// cooldown setting persist across sessions.
func (p *Profile) StartSession(topic string, now time.Time) SessionStart {
	topic = NormalizeTopic(topic)
	p.SessionCount++

	ts := p.Topic(topic)
	ts.BreakState.CooldownMinutes = p.windows().BreakCooldownMinutes
	ts.BreakState.SessionStart = engine.FormatTimestamp(now)
	ts.BreakState.ConsecutiveErrors = 0
	ts.BreakState.PostBreakWarmup = false
	ts.BreakState.SeverityTrend = nil

	_, hasGraph := p.TopicGraphs[topic]

	sessionID := uuid.NewString()
	p.Sessions = append(p.Sessions, SessionSummary{
		ID:           sessionID,
		Number:       p.SessionCount,
		Topic:        topic,
		StartTime:    engine.FormatTimestamp(now),
		MasteryStart: ts.Mastery,
	})

	return SessionStart{
		Topic:              topic,
		SessionID:          sessionID,
		SessionNumber:      p.SessionCount,
		Mastery:            ts.Mastery,
		Trajectory:         ts.Trajectory,
		TotalAttempts:      len(ts.Attempts),
		NeedsTopicGraph:    !hasGraph,
		Band:               ts.Band,
		OpenMisconceptions: ts.UnresolvedMisconceptions(),
	}
}

// AttemptOutcome reports the derived state after one recorded attempt.
type AttemptOutcome struct {
	Mastery           float64           `json:"mastery_level"`
	Trajectory        engine.Trajectory `json:"trajectory"`
	ProductiveFailure bool              `json:"productive_failure"`
	ConsecutiveErrors int               `json:"consecutive_errors"`
	TotalAttempts     int               `json:"total_attempts"`
}

// RecordAttempt appends an attempt to a topic's history and brings every
// derived field back in sync: break-state counters, the severity trend,
// the productive-failure count, trajectory, mastery, and the open session
// summary. The history itself is append-only.
func (p *Profile) RecordAttempt(topic string, a engine.Attempt, now time.Time) AttemptOutcome {
	topic = NormalizeTopic(topic)
	ts := p.Topic(topic)
	bs := &ts.BreakState

	if a.Timestamp == "" {
		a.Timestamp = engine.FormatTimestamp(now)
	}
	ts.Attempts = append(ts.Attempts, a)

	if a.Correct {
		bs.ConsecutiveErrors = 0
		bs.PostBreakWarmup = false // warmup complete
	} else {
		bs.ConsecutiveErrors++
		sev := engine.ParseCategory(string(a.Category)).Severity()
		bs.SeverityTrend = append(bs.SeverityTrend, sev)
		if len(bs.SeverityTrend) > severityTrendCap {
			bs.SeverityTrend = bs.SeverityTrend[len(bs.SeverityTrend)-severityTrendCap:]
		}
	}

	productive := engine.DetectProductiveFailure(a)
	if productive {
		ts.ProductiveFailures++
	}

	tun := p.windows()
	ts.Trajectory = engine.ComputeTrajectory(ts.Attempts, tun.TrajectoryWindow)
	ts.Mastery = engine.ComputeMastery(ts.Attempts, tun.MasteryWindow)

	if s := p.currentSession(); s != nil {
		s.Attempts++
		if a.Correct {
			s.Correct++
		}
		s.MasteryEnd = ts.Mastery
	}

	return AttemptOutcome{
		Mastery:           ts.Mastery,
		Trajectory:        ts.Trajectory,
		ProductiveFailure: productive,
		ConsecutiveErrors: bs.ConsecutiveErrors,
		TotalAttempts:     len(ts.Attempts),
	}
}

// Assessment is the full decision-engine readout for a topic.
type Assessment struct {
	Mastery            float64               `json:"mastery_level"`
	Trajectory         engine.Trajectory     `json:"trajectory"`
	DominantError      engine.ErrorCategory  `json:"dominant_error_type"`
	Recommendation     engine.Recommendation `json:"recommendation"`
	Band               DifficultyBand        `json:"difficulty_band"`
	ProductiveFailures int                   `json:"productive_failures"`
	ConsecutiveErrors  int                   `json:"consecutive_errors"`
	OpenMisconceptions []string              `json:"unresolved_misconceptions,omitempty"`
}

// Assess runs the decision engine over a topic's current state. When the
// break monitor fires, the suggestion timestamp is stamped so the cooldown
// engages; the recommendation itself is computed against the pre-stamp
// state.
func (p *Profile) Assess(topic string, now time.Time) (Assessment, error) {
	topic = NormalizeTopic(topic)
	ts, ok := p.Topics[topic]
	if !ok {
		return Assessment{}, fmt.Errorf("topic %q: %w", topic, ErrUnknownTopic)
	}

	dominant := engine.DominantErrorType(ts.Attempts, p.windows().DominantErrorWindow)
	rec, err := engine.ComputeRecommendation(
		ts.Trajectory, dominant, ts.Mastery,
		p.TopicGraphs[topic], topic, &ts.BreakState, now,
	)
	if err != nil {
		return Assessment{}, fmt.Errorf("assess %q: %w", topic, err)
	}

	check, err := engine.CheckBreakNeeded(ts.BreakState, ts.Trajectory, now)
	if err != nil {
		return Assessment{}, fmt.Errorf("assess %q: %w", topic, err)
	}
	if check.Needed {
		ts.BreakState.LastBreakSuggestion = engine.FormatTimestamp(now)
	}

	return Assessment{
		Mastery:            ts.Mastery,
		Trajectory:         ts.Trajectory,
		DominantError:      dominant,
		Recommendation:     rec,
		Band:               ts.Band,
		ProductiveFailures: ts.ProductiveFailures,
		ConsecutiveErrors:  ts.BreakState.ConsecutiveErrors,
		OpenMisconceptions: ts.UnresolvedMisconceptions(),
	}, nil
}

// CheckBreak runs the break monitor for a topic. A positive result stamps
// the suggestion timestamp so repeated polls respect the cooldown.
func (p *Profile) CheckBreak(topic string, now time.Time) (engine.BreakCheck, error) {
	topic = NormalizeTopic(topic)
	ts, ok := p.Topics[topic]
	if !ok {
		return engine.BreakCheck{}, fmt.Errorf("topic %q: %w", topic, ErrUnknownTopic)
	}

	check, err := engine.CheckBreakNeeded(ts.BreakState, ts.Trajectory, now)
	if err != nil {
		return engine.BreakCheck{}, fmt.Errorf("check break %q: %w", topic, err)
	}
	if check.Needed {
		ts.BreakState.LastBreakSuggestion = engine.FormatTimestamp(now)
	}
	return check, nil
}

// RecordBreak marks a break as taken: the error counter clears, the trend
// resets, and the next question is flagged as a warmup.
func (p *Profile) RecordBreak(topic string, now time.Time) (int, error) {
	topic = NormalizeTopic(topic)
	ts, ok := p.Topics[topic]
	if !ok {
		return 0, fmt.Errorf("topic %q: %w", topic, ErrUnknownTopic)
	}

	bs := &ts.BreakState
	bs.LastBreakTaken = engine.FormatTimestamp(now)
	bs.BreaksTaken++
	bs.ConsecutiveErrors = 0
	bs.PostBreakWarmup = true
	bs.SeverityTrend = nil

	if s := p.currentSession(); s != nil {
		s.BreaksTaken++
	}
	return bs.BreaksTaken, nil
}

// MisconceptionRecord reports the state of one misconception after an
// observe or resolve operation.
type MisconceptionRecord struct {
	Description   string `json:"description"`
	TimesObserved int    `json:"times_observed"`
	New           bool   `json:"new,omitempty"`
}

// ObserveMisconception logs a misconception, or increments its count when a
// case-insensitive match already exists. Re-observing a resolved
// misconception reopens it.
func (p *Profile) ObserveMisconception(topic, description string, now time.Time) MisconceptionRecord {
	topic = NormalizeTopic(topic)
	ts := p.Topic(topic)

	if m := ts.findMisconception(description); m != nil {
		m.TimesObserved++
		m.LastSeen = engine.FormatTimestamp(now)
		m.Resolved = false
		return MisconceptionRecord{Description: m.Description, TimesObserved: m.TimesObserved}
	}

	stamp := engine.FormatTimestamp(now)
	ts.Misconceptions = append(ts.Misconceptions, Misconception{
		Description:   description,
		TimesObserved: 1,
		FirstSeen:     stamp,
		LastSeen:      stamp,
	})
	return MisconceptionRecord{Description: description, TimesObserved: 1, New: true}
}

// ResolveMisconception marks a misconception as resolved by
// case-insensitive description match.
func (p *Profile) ResolveMisconception(topic, description string, now time.Time) (MisconceptionRecord, error) {
	topic = NormalizeTopic(topic)
	ts, ok := p.Topics[topic]
	if !ok {
		return MisconceptionRecord{}, fmt.Errorf("topic %q: %w", topic, ErrUnknownTopic)
	}

	m := ts.findMisconception(description)
	if m == nil {
		return MisconceptionRecord{}, fmt.Errorf("misconception %q not found on topic %q", description, topic)
	}
	m.Resolved = true
	m.LastSeen = engine.FormatTimestamp(now)
	return MisconceptionRecord{Description: m.Description, TimesObserved: m.TimesObserved}, nil
}

func (ts *TopicState) findMisconception(description string) *Misconception {
	for i := range ts.Misconceptions {
		if strings.EqualFold(ts.Misconceptions[i].Description, description) {
			return &ts.Misconceptions[i]
		}
	}
	return nil
}

// SetTopicGraph stores the prerequisite graph for a topic, replacing any
// existing one.
func (p *Profile) SetTopicGraph(topic string, prerequisites map[string][]string) string {
	topic = NormalizeTopic(topic)
	if p.TopicGraphs == nil {
		p.TopicGraphs = make(map[string]*engine.TopicGraph)
	}
	p.TopicGraphs[topic] = &engine.TopicGraph{Prerequisites: prerequisites}
	return topic
}

// TopicAddition reports the outcome of a bulk topic add.
type TopicAddition struct {
	Added           []string `json:"added"`
	AlreadyExisted  []string `json:"already_existed"`
	NeedsTopicGraph []string `json:"needs_topic_graph"`
}

// AddTopics registers topics with default state without starting a session,
// reporting which ones still need a prerequisite graph.
func (p *Profile) AddTopics(topics []string) TopicAddition {
	var out TopicAddition
	for _, raw := range topics {
		topic := NormalizeTopic(raw)
		if _, ok := p.Topics[topic]; ok {
			out.AlreadyExisted = append(out.AlreadyExisted, topic)
			continue
		}
		p.Topic(topic)
		out.Added = append(out.Added, topic)
		if _, ok := p.TopicGraphs[topic]; !ok {
			out.NeedsTopicGraph = append(out.NeedsTopicGraph, topic)
		}
	}
	return out
}

// DeleteTopic removes a topic's state and its graph entry, returning the
// remaining topic names.
func (p *Profile) DeleteTopic(topic string) ([]string, error) {
	topic = NormalizeTopic(topic)
	if _, ok := p.Topics[topic]; !ok {
		return p.TopicNames(), fmt.Errorf("topic %q: %w", topic, ErrUnknownTopic)
	}
	delete(p.Topics, topic)
	delete(p.TopicGraphs, topic)
	return p.TopicNames(), nil
}

// OverrideMastery manually sets a topic's mastery level, clamped to the
// valid range. This is the only write to mastery outside recomputation.
func (p *Profile) OverrideMastery(topic string, level float64) float64 {
	topic = NormalizeTopic(topic)
	ts := p.Topic(topic)
	ts.Mastery = clamp(level, 0, masteryOverrideCap)
	return ts.Mastery
}

// SessionReport summarizes a closed session.
type SessionReport struct {
	SessionID       string  `json:"session_id"`
	Number          int     `json:"session_number"`
	Topic           string  `json:"topic"`
	DurationMinutes float64 `json:"duration_minutes"`
	Attempts        int     `json:"attempts"`
	Correct         int     `json:"correct"`
	Accuracy        float64 `json:"accuracy"`
	MasteryStart    float64 `json:"mastery_start"`
	MasteryEnd      float64 `json:"mastery_end"`
	MasteryChange   float64 `json:"mastery_change"`
	BreaksTaken     int     `json:"breaks_taken"`
}

// EndSession closes the open session summary and reports its final stats.
// The bool is false when no session has ever been started.
func (p *Profile) EndSession(now time.Time) (SessionReport, bool, error) {
	s := p.currentSession()
	if s == nil {
		return SessionReport{}, false, nil
	}
	s.EndTime = engine.FormatTimestamp(now)

	start, err := time.Parse(time.RFC3339, s.StartTime)
	if err != nil {
		return SessionReport{}, false, &engine.DataIntegrityError{
			Field: "start_time", Value: s.StartTime, Err: err,
		}
	}

	accuracy := 0.0
	if s.Attempts > 0 {
		accuracy = float64(s.Correct) / float64(s.Attempts)
	}
	return SessionReport{
		SessionID:       s.ID,
		Number:          s.Number,
		Topic:           s.Topic,
		DurationMinutes: roundTenth(now.Sub(start).Minutes()),
		Attempts:        s.Attempts,
		Correct:         s.Correct,
		Accuracy:        accuracy,
		MasteryStart:    s.MasteryStart,
		MasteryEnd:      s.MasteryEnd,
		MasteryChange:   s.MasteryEnd - s.MasteryStart,
		BreaksTaken:     s.BreaksTaken,
	}, true, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
