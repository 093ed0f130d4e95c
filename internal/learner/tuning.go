package learner

import "github.com/abhisek/tutord/internal/engine"

// Tuning holds the configurable analysis parameters. It is process
// configuration, not learner state, and is never serialized with the
// profile document.
type Tuning struct {
	TrajectoryWindow     int
	MasteryWindow        int
	DominantErrorWindow  int
	BreakCooldownMinutes int
}

// DefaultTuning returns the engine's published constants.
func DefaultTuning() Tuning {
	return Tuning{
		TrajectoryWindow:     engine.DefaultTrajectoryWindow,
		MasteryWindow:        engine.DefaultMasteryWindow,
		DominantErrorWindow:  engine.DefaultDominantWindow,
		BreakCooldownMinutes: engine.DefaultCooldownMinutes,
	}
}

// ApplyTuning overrides the analysis parameters for subsequent operations
// on this profile. Zero fields fall back to the defaults.
func (p *Profile) ApplyTuning(t Tuning) {
	p.tuning = t
}

// windows returns the effective tuning with zero fields defaulted.
func (p *Profile) windows() Tuning {
	t := p.tuning
	if t.TrajectoryWindow <= 0 {
		t.TrajectoryWindow = engine.DefaultTrajectoryWindow
	}
	if t.MasteryWindow <= 0 {
		t.MasteryWindow = engine.DefaultMasteryWindow
	}
	if t.DominantErrorWindow <= 0 {
		t.DominantErrorWindow = engine.DefaultDominantWindow
	}
	if t.BreakCooldownMinutes <= 0 {
		t.BreakCooldownMinutes = engine.DefaultCooldownMinutes
	}
	return t
}
