package learner

import (
	"testing"

	"github.com/abhisek/tutord/internal/engine"
)

func TestApplyTuning_MasteryWindow(t *testing.T) {
	p := NewProfile("alice")
	p.ApplyTuning(Tuning{MasteryWindow: 1})

	for i := 0; i < 5; i++ {
		p.RecordAttempt("math", correctAttempt("q"), testNow)
	}
	// With a window of one, only the last attempt counts: 1.0 * 1/(1+5).
	got := p.Topics["math"].Mastery
	want := 1.0 / 6.0
	if diff := got - want; diff > 0.001 || diff < -0.001 {
		t.Errorf("mastery = %v, want %v with window 1", got, want)
	}
}

func TestApplyTuning_CooldownOnSessionStart(t *testing.T) {
	p := NewProfile("alice")
	p.ApplyTuning(Tuning{BreakCooldownMinutes: 25})
	p.StartSession("math", testNow)

	if got := p.Topics["math"].BreakState.CooldownMinutes; got != 25 {
		t.Errorf("cooldown = %d, want 25", got)
	}
}

func TestApplyTuning_ZeroFieldsFallBack(t *testing.T) {
	p := NewProfile("alice")
	p.ApplyTuning(Tuning{TrajectoryWindow: 3})
	w := p.windows()

	if w.TrajectoryWindow != 3 {
		t.Errorf("trajectory window = %d, want 3", w.TrajectoryWindow)
	}
	if w.MasteryWindow != engine.DefaultMasteryWindow {
		t.Errorf("mastery window = %d, want default", w.MasteryWindow)
	}
	if w.BreakCooldownMinutes != engine.DefaultCooldownMinutes {
		t.Errorf("cooldown = %d, want default", w.BreakCooldownMinutes)
	}
}
