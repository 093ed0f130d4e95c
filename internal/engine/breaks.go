package engine

import (
	"fmt"
	"time"
)

// BreakUrgency grades how strongly a break is indicated.
type BreakUrgency string

const (
	UrgencyLow    BreakUrgency = "low"
	UrgencyMedium BreakUrgency = "medium"
	UrgencyHigh   BreakUrgency = "high"
)

const (
	// DefaultCooldownMinutes is the minimum gap between two break suggestions
	// when the state carries no explicit cooldown.
	DefaultCooldownMinutes = 10

	// SessionLimitMinutes is the continuous work span that triggers the
	// session-length break.
	SessionLimitMinutes = 45

	// escalationSpan is how many trailing severities must be strictly
	// increasing to signal escalation.
	escalationSpan = 3

	// decliningErrorThreshold and consecutiveErrorThreshold gate the two
	// consecutive-error triggers.
	decliningErrorThreshold   = 3
	consecutiveErrorThreshold = 5
)

// BreakCheck is the read-only verdict of the break monitor.
type BreakCheck struct {
	Needed  bool         `json:"needed"`
	Reason  string       `json:"reason,omitempty"`
	Urgency BreakUrgency `json:"urgency"`
}

func notNeeded() BreakCheck {
	return BreakCheck{Urgency: UrgencyLow}
}

// CheckBreakNeeded evaluates whether a rest should be suggested. It never
// mutates state; callers decide whether to stamp the suggestion timestamp.
//
// The cooldown guard runs first and suppresses every trigger. The remaining
// triggers run in strict priority order, returning on first match:
// declining trajectory with 3+ consecutive errors (high), 5+ consecutive
// errors (high), 45+ minutes of continuous work (medium), and strictly
// escalating error severity ending at structural-or-worse (medium).
//
// An unparsable persisted timestamp is a data-integrity error for this
// evaluation, never silently defaulted.
func CheckBreakNeeded(bs BreakState, trajectory Trajectory, now time.Time) (BreakCheck, error) {
	if bs.LastBreakSuggestion != "" {
		last, err := parseTimestamp("last_break_suggestion", bs.LastBreakSuggestion)
		if err != nil {
			return BreakCheck{}, err
		}
		cooldown := bs.CooldownMinutes
		if cooldown <= 0 {
			cooldown = DefaultCooldownMinutes
		}
		if now.Sub(last) < time.Duration(cooldown)*time.Minute {
			return notNeeded(), nil
		}
	}

	if trajectory == TrajectoryDeclining && bs.ConsecutiveErrors >= decliningErrorThreshold {
		return BreakCheck{
			Needed: true,
			Reason: fmt.Sprintf(
				"Your trajectory is declining and you've had %d consecutive errors. "+
					"A short break can help reset your focus.", bs.ConsecutiveErrors),
			Urgency: UrgencyHigh,
		}, nil
	}

	if bs.ConsecutiveErrors >= consecutiveErrorThreshold {
		return BreakCheck{
			Needed: true,
			Reason: fmt.Sprintf(
				"You've had %d consecutive errors. Sometimes stepping away for a "+
					"few minutes helps you see things fresh.", bs.ConsecutiveErrors),
			Urgency: UrgencyHigh,
		}, nil
	}

	if bs.SessionStart != "" {
		start, err := parseTimestamp("session_start_time", bs.SessionStart)
		if err != nil {
			return BreakCheck{}, err
		}
		// Measure from the last break when one was already taken this session.
		// A break carried over from an earlier session does not count.
		effective := now.Sub(start)
		if bs.LastBreakTaken != "" {
			taken, err := parseTimestamp("last_break_taken", bs.LastBreakTaken)
			if err != nil {
				return BreakCheck{}, err
			}
			if taken.After(start) {
				effective = now.Sub(taken)
			}
		}
		if effective >= SessionLimitMinutes*time.Minute {
			return BreakCheck{
				Needed: true,
				Reason: fmt.Sprintf(
					"You've been working for about %d minutes without a break. "+
						"A 5-10 minute break can improve retention.", int(effective.Minutes())),
				Urgency: UrgencyMedium,
			}, nil
		}
	}

	if escalating(bs.SeverityTrend) {
		return BreakCheck{
			Needed: true,
			Reason: "Your errors are getting more fundamental over time. " +
				"A break might help you approach the material with fresh eyes.",
			Urgency: UrgencyMedium,
		}, nil
	}

	return notNeeded(), nil
}

// escalating reports whether the last three severities are strictly
// increasing with the most recent at structural or worse.
func escalating(trend []int) bool {
	if len(trend) < escalationSpan {
		return false
	}
	last := trend[len(trend)-escalationSpan:]
	return last[0] < last[1] && last[1] < last[2] && last[2] >= CategoryStructural.Severity()
}
