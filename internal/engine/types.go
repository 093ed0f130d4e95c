package engine

// BloomLevel is the six-level cognitive-demand taxonomy, ordered from
// lowest (remember) to highest (create).
type BloomLevel string

const (
	BloomRemember   BloomLevel = "remember"
	BloomUnderstand BloomLevel = "understand"
	BloomApply      BloomLevel = "apply"
	BloomAnalyze    BloomLevel = "analyze"
	BloomEvaluate   BloomLevel = "evaluate"
	BloomCreate     BloomLevel = "create"
)

// BloomLevels returns all levels in ascending order of cognitive demand.
func BloomLevels() []BloomLevel {
	return []BloomLevel{
		BloomRemember,
		BloomUnderstand,
		BloomApply,
		BloomAnalyze,
		BloomEvaluate,
		BloomCreate,
	}
}

// Rank returns the level's position in the taxonomy, or -1 for an
// unrecognized value.
func (b BloomLevel) Rank() int {
	for i, l := range BloomLevels() {
		if l == b {
			return i
		}
	}
	return -1
}

// Next returns the next-higher level, saturating at create.
func (b BloomLevel) Next() BloomLevel {
	levels := BloomLevels()
	r := b.Rank()
	if r < 0 || r >= len(levels)-1 {
		return BloomCreate
	}
	return levels[r+1]
}

// Previous returns the next-lower level, saturating at remember.
func (b BloomLevel) Previous() BloomLevel {
	r := b.Rank()
	if r <= 0 {
		return BloomRemember
	}
	return BloomLevels()[r-1]
}

// Attempt is one graded answer event. Attempts are immutable once created
// and append-only within a topic's history.
type Attempt struct {
	QuestionID    string        `json:"question_id"`
	LearnerAnswer string        `json:"learner_answer"`
	CorrectAnswer string        `json:"correct_answer"`
	Correct       bool          `json:"is_correct"`
	Category      ErrorCategory `json:"error_category,omitempty"`
	ErrorStep     string        `json:"error_step,omitempty"`
	BloomLevel    BloomLevel    `json:"bloom_level,omitempty"`
	Timestamp     string        `json:"timestamp"`
}

// BreakState tracks per-topic session fatigue signals. Timestamps are
// persisted as RFC 3339 strings; SessionStart, ConsecutiveErrors,
// PostBreakWarmup and SeverityTrend are session-scoped, the rest persists
// across sessions.
type BreakState struct {
	SessionStart        string `json:"session_start_time,omitempty"`
	LastBreakSuggestion string `json:"last_break_suggestion,omitempty"`
	LastBreakTaken      string `json:"last_break_taken,omitempty"`
	BreaksTaken         int    `json:"breaks_taken"`
	CooldownMinutes     int    `json:"break_cooldown_minutes"`
	ConsecutiveErrors   int    `json:"consecutive_errors"`
	PostBreakWarmup     bool   `json:"post_break_warmup"`
	SeverityTrend       []int  `json:"error_severity_trend,omitempty"`
}

// TopicGraph maps each topic key to its ordered prerequisite topics.
// The first entry is the most immediate prerequisite.
type TopicGraph struct {
	Prerequisites map[string][]string `json:"prerequisites"`
}

// PrereqsFor returns the ordered prerequisites for a topic, or nil when the
// graph is absent or has no entry. A missing graph is a valid steady state,
// not an error.
func (g *TopicGraph) PrereqsFor(topic string) []string {
	if g == nil {
		return nil
	}
	return g.Prerequisites[topic]
}
