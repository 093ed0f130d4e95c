package engine

import (
	"errors"
	"strings"
	"testing"
	"time"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func stamp(offset time.Duration) string {
	return FormatTimestamp(testNow.Add(offset))
}

func mustCheck(t *testing.T, bs BreakState, traj Trajectory) BreakCheck {
	t.Helper()
	check, err := CheckBreakNeeded(bs, traj, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return check
}

func TestCheckBreakNeeded_DefaultState(t *testing.T) {
	check := mustCheck(t, BreakState{}, TrajectoryFlat)
	if check.Needed {
		t.Errorf("needed = true for default state, reason %q", check.Reason)
	}
}

func TestCheckBreakNeeded_DecliningPlusThreeErrors(t *testing.T) {
	check := mustCheck(t, BreakState{ConsecutiveErrors: 3}, TrajectoryDeclining)
	if !check.Needed {
		t.Fatal("expected break needed")
	}
	if check.Urgency != UrgencyHigh {
		t.Errorf("urgency = %q, want %q", check.Urgency, UrgencyHigh)
	}
	if !strings.Contains(check.Reason, "3 consecutive errors") {
		t.Errorf("reason %q should mention the error count", check.Reason)
	}
}

func TestCheckBreakNeeded_ThreeErrorsNotDeclining(t *testing.T) {
	check := mustCheck(t, BreakState{ConsecutiveErrors: 3}, TrajectoryFlat)
	if check.Needed {
		t.Error("3 errors without declining trajectory should not trigger")
	}
}

func TestCheckBreakNeeded_FiveConsecutiveErrors(t *testing.T) {
	check := mustCheck(t, BreakState{ConsecutiveErrors: 5}, TrajectoryFlat)
	if !check.Needed {
		t.Fatal("expected break needed")
	}
	if check.Urgency != UrgencyHigh {
		t.Errorf("urgency = %q, want %q", check.Urgency, UrgencyHigh)
	}
}

func TestCheckBreakNeeded_LongSession(t *testing.T) {
	bs := BreakState{SessionStart: stamp(-50 * time.Minute)}
	check := mustCheck(t, bs, TrajectoryFlat)
	if !check.Needed {
		t.Fatal("expected break needed after 50 minutes")
	}
	if check.Urgency != UrgencyMedium {
		t.Errorf("urgency = %q, want %q", check.Urgency, UrgencyMedium)
	}
	if !strings.Contains(check.Reason, "50 minutes") {
		t.Errorf("reason %q should mention elapsed minutes", check.Reason)
	}
}

func TestCheckBreakNeeded_SessionMeasuredFromLastBreak(t *testing.T) {
	// Long session, but a recent break resets the effective clock.
	bs := BreakState{
		SessionStart:   stamp(-120 * time.Minute),
		LastBreakTaken: stamp(-20 * time.Minute),
	}
	if check := mustCheck(t, bs, TrajectoryFlat); check.Needed {
		t.Errorf("needed = true %v, want false with a 20-minute-old break", check)
	}

	bs.LastBreakTaken = stamp(-50 * time.Minute)
	if check := mustCheck(t, bs, TrajectoryFlat); !check.Needed {
		t.Error("expected break 50 minutes after the last one")
	}
}

func TestCheckBreakNeeded_BreakFromEarlierSessionIgnored(t *testing.T) {
	// A break taken before this session started must not reset the clock,
	// in either direction.
	bs := BreakState{
		SessionStart:   stamp(-50 * time.Minute),
		LastBreakTaken: stamp(-24 * time.Hour),
	}
	if check := mustCheck(t, bs, TrajectoryFlat); !check.Needed {
		t.Error("expected break after 50 minutes despite a day-old break record")
	}

	bs = BreakState{
		SessionStart:   stamp(-10 * time.Minute),
		LastBreakTaken: stamp(-24 * time.Hour),
	}
	if check := mustCheck(t, bs, TrajectoryFlat); check.Needed {
		t.Errorf("needed = true %v for a 10-minute session, want false", check)
	}
}

func TestCheckBreakNeeded_ShortSession(t *testing.T) {
	bs := BreakState{SessionStart: stamp(-30 * time.Minute)}
	if check := mustCheck(t, bs, TrajectoryFlat); check.Needed {
		t.Error("30-minute session should not trigger")
	}
}

func TestCheckBreakNeeded_EscalatingSeverity(t *testing.T) {
	check := mustCheck(t, BreakState{SeverityTrend: []int{1, 2, 3}}, TrajectoryFlat)
	if !check.Needed {
		t.Fatal("expected break for escalating severity")
	}
	if check.Urgency != UrgencyMedium {
		t.Errorf("urgency = %q, want %q", check.Urgency, UrgencyMedium)
	}
}

func TestCheckBreakNeeded_EscalationMustBeStrict(t *testing.T) {
	check := mustCheck(t, BreakState{SeverityTrend: []int{1, 2, 2}}, TrajectoryFlat)
	if check.Needed {
		t.Error("non-strict trend should not trigger")
	}
}

func TestCheckBreakNeeded_DecreasingSeverity(t *testing.T) {
	check := mustCheck(t, BreakState{SeverityTrend: []int{3, 2, 1}}, TrajectoryFlat)
	if check.Needed {
		t.Error("decreasing severity should not trigger")
	}
}

func TestCheckBreakNeeded_OnlyLastThreeConsidered(t *testing.T) {
	check := mustCheck(t, BreakState{SeverityTrend: []int{3, 3, 1, 2, 3}}, TrajectoryFlat)
	if !check.Needed {
		t.Error("last three severities escalate, expected trigger")
	}
}

func TestCheckBreakNeeded_CooldownDominates(t *testing.T) {
	bs := BreakState{
		ConsecutiveErrors:   5,
		LastBreakSuggestion: stamp(-5 * time.Minute),
		CooldownMinutes:     10,
	}
	check := mustCheck(t, bs, TrajectoryDeclining)
	if check.Needed {
		t.Error("cooldown must suppress every trigger")
	}
}

func TestCheckBreakNeeded_PastCooldown(t *testing.T) {
	bs := BreakState{
		ConsecutiveErrors:   5,
		LastBreakSuggestion: stamp(-15 * time.Minute),
		CooldownMinutes:     10,
	}
	check := mustCheck(t, bs, TrajectoryFlat)
	if !check.Needed {
		t.Error("expected trigger once cooldown has elapsed")
	}
}

func TestCheckBreakNeeded_ZeroCooldownUsesDefault(t *testing.T) {
	bs := BreakState{
		ConsecutiveErrors:   5,
		LastBreakSuggestion: stamp(-5 * time.Minute),
	}
	check := mustCheck(t, bs, TrajectoryFlat)
	if check.Needed {
		t.Error("unset cooldown should fall back to the 10-minute default")
	}
}

func TestCheckBreakNeeded_BadTimestampIsError(t *testing.T) {
	bs := BreakState{LastBreakSuggestion: "not-a-time"}
	_, err := CheckBreakNeeded(bs, TrajectoryFlat, testNow)
	if err == nil {
		t.Fatal("expected a data-integrity error")
	}
	var die *DataIntegrityError
	if !errors.As(err, &die) {
		t.Fatalf("error %T, want *DataIntegrityError", err)
	}
	if die.Field != "last_break_suggestion" {
		t.Errorf("field = %q, want last_break_suggestion", die.Field)
	}
}

func TestCheckBreakNeeded_BadSessionStartIsError(t *testing.T) {
	bs := BreakState{SessionStart: "yesterday-ish"}
	if _, err := CheckBreakNeeded(bs, TrajectoryFlat, testNow); err == nil {
		t.Fatal("expected a data-integrity error")
	}
}

func TestCheckBreakNeeded_ReadOnly(t *testing.T) {
	bs := BreakState{ConsecutiveErrors: 5, SeverityTrend: []int{1, 2, 3}}
	mustCheck(t, bs, TrajectoryFlat)
	if bs.LastBreakSuggestion != "" || bs.ConsecutiveErrors != 5 {
		t.Error("CheckBreakNeeded must not mutate state")
	}
}
