// Package learner owns the persisted learner document and every mutation
// of it. The engine package computes signals from attempt history; this
// package applies them to profile state and keeps the derived fields
// (mastery, trajectory) in sync with the history they are derived from.
package learner

import (
	"sort"

	"github.com/abhisek/tutord/internal/engine"
)

// DifficultyBand is the three-tier zone the question selector targets:
// the level the learner works at, the level that stretches them, and the
// level known to be out of reach.
type DifficultyBand struct {
	Current engine.BloomLevel `json:"current_level"`
	Stretch engine.BloomLevel `json:"stretch_level"`
	TooHard engine.BloomLevel `json:"too_hard_level"`
}

// DefaultBand is the starting band for a new topic.
func DefaultBand() DifficultyBand {
	return DifficultyBand{
		Current: engine.BloomRemember,
		Stretch: engine.BloomUnderstand,
		TooHard: engine.BloomAnalyze,
	}
}

// Misconception is one logged misunderstanding. Re-observing a resolved
// misconception reopens it.
type Misconception struct {
	Description   string `json:"description"`
	TimesObserved int    `json:"times_observed"`
	Resolved      bool   `json:"resolved"`
	FirstSeen     string `json:"first_seen"`
	LastSeen      string `json:"last_seen"`
}

// TopicState is the per-topic aggregate. Mastery and Trajectory are derived
// from Attempts and rewritten on every recorded attempt; the only other
// write path to Mastery is the explicit manual override.
type TopicState struct {
	Mastery            float64           `json:"mastery_level"`
	Attempts           []engine.Attempt  `json:"attempt_history,omitempty"`
	Trajectory         engine.Trajectory `json:"trajectory"`
	Misconceptions     []Misconception   `json:"misconceptions,omitempty"`
	Band               DifficultyBand    `json:"difficulty_band"`
	ProductiveFailures int               `json:"productive_failures"`
	BreakState         engine.BreakState `json:"break_state"`
}

// NewTopicState returns a fresh topic with no history.
func NewTopicState() *TopicState {
	return &TopicState{
		Trajectory: engine.TrajectoryUnknown,
		Band:       DefaultBand(),
		BreakState: engine.BreakState{
			CooldownMinutes: engine.DefaultCooldownMinutes,
		},
	}
}

// UnresolvedMisconceptions returns the descriptions of open misconceptions
// in observation order.
func (ts *TopicState) UnresolvedMisconceptions() []string {
	var open []string
	for _, m := range ts.Misconceptions {
		if !m.Resolved {
			open = append(open, m.Description)
		}
	}
	return open
}

// SessionSummary is one entry in the learner's session history. EndTime is
// empty while the session is open.
type SessionSummary struct {
	ID           string  `json:"session_id"`
	Number       int     `json:"session_number"`
	Topic        string  `json:"topic"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time,omitempty"`
	Attempts     int     `json:"attempts_count"`
	Correct      int     `json:"correct_count"`
	MasteryStart float64 `json:"mastery_start"`
	MasteryEnd   float64 `json:"mastery_end"`
	BreaksTaken  int     `json:"breaks_taken"`
}

// Profile is the full learner document, serialized as one JSON blob per
// learner.
type Profile struct {
	LearnerID    string                        `json:"learner_id"`
	SessionCount int                           `json:"session_count"`
	Topics       map[string]*TopicState        `json:"topics"`
	TopicGraphs  map[string]*engine.TopicGraph `json:"topic_graphs,omitempty"`
	Sessions     []SessionSummary              `json:"session_history,omitempty"`

	tuning Tuning
}

// NewProfile returns an empty profile for the given learner.
func NewProfile(learnerID string) *Profile {
	return &Profile{
		LearnerID: learnerID,
		Topics:    make(map[string]*TopicState),
	}
}

// Topic returns the state for a normalized topic key, creating it on first
// reference.
func (p *Profile) Topic(topic string) *TopicState {
	if p.Topics == nil {
		p.Topics = make(map[string]*TopicState)
	}
	ts, ok := p.Topics[topic]
	if !ok {
		ts = NewTopicState()
		p.Topics[topic] = ts
	}
	return ts
}

// TopicNames returns the learner's topics in sorted order.
func (p *Profile) TopicNames() []string {
	names := make([]string, 0, len(p.Topics))
	for name := range p.Topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// currentSession returns the open tail of the session history, or nil when
// the history is empty.
func (p *Profile) currentSession() *SessionSummary {
	if len(p.Sessions) == 0 {
		return nil
	}
	return &p.Sessions[len(p.Sessions)-1]
}
