package engine

import "time"

// Action is the recommended next pedagogical move.
type Action string

const (
	ActionTakeBreak           Action = "take_break"
	ActionWarmup              Action = "warmup"
	ActionKeepGrinding        Action = "keep_grinding"
	ActionGoBack              Action = "go_back"
	ActionTargetedInstruction Action = "targeted_instruction"
	ActionBriefTip            Action = "brief_tip"
)

// masteryAdvanceThreshold is the mastery level at which an error-free learner
// should be pushed up the difficulty ladder.
const masteryAdvanceThreshold = 0.85

// Recommendation is the engine's final decision. Only the fields relevant to
// the chosen action are populated.
type Recommendation struct {
	Action            Action       `json:"action"`
	Detail            string       `json:"detail"`
	Urgency           BreakUrgency `json:"urgency,omitempty"`
	PostBreakWarmup   bool         `json:"post_break_warmup,omitempty"`
	PrerequisiteTopic string       `json:"prerequisite_topic,omitempty"`
}

// decision carries the precomputed signals the rules consult.
type decision struct {
	trajectory    Trajectory
	dominantError ErrorCategory
	mastery       float64
	prereqs       []string
	breakState    *BreakState
	breakCheck    BreakCheck
}

// rule pairs a predicate with a recommendation builder. Rules are evaluated
// in fixed order, first match wins, so precedence is testable in isolation.
type rule struct {
	applies func(*decision) bool
	build   func(*decision) Recommendation
}

var rules = []rule{
	{
		// A needed break preempts everything else.
		applies: func(d *decision) bool {
			return d.breakState != nil && d.breakCheck.Needed
		},
		build: func(d *decision) Recommendation {
			return Recommendation{
				Action:          ActionTakeBreak,
				Detail:          d.breakCheck.Reason,
				Urgency:         d.breakCheck.Urgency,
				PostBreakWarmup: true,
			}
		},
	},
	{
		// Ease back in after a recorded break.
		applies: func(d *decision) bool {
			return d.breakState != nil && d.breakState.PostBreakWarmup
		},
		build: func(d *decision) Recommendation {
			return Recommendation{
				Action: ActionWarmup,
				Detail: "Welcome back! Let's start with a gentler question to ease back in.",
			}
		},
	},
	{
		// Error-free and strong: raise difficulty.
		applies: func(d *decision) bool {
			return d.dominantError == CategoryCorrect && d.mastery >= masteryAdvanceThreshold
		},
		build: func(d *decision) Recommendation {
			return Recommendation{
				Action: ActionKeepGrinding,
				Detail: "Mastery is strong. Increase difficulty: move up the cognitive-demand " +
					"ladder or introduce edge cases.",
			}
		},
	},
	{
		applies: func(d *decision) bool {
			return d.trajectory == TrajectoryDeclining
		},
		build: func(d *decision) Recommendation {
			if len(d.prereqs) > 0 {
				return Recommendation{
					Action:            ActionGoBack,
					Detail:            "Trajectory declining. Revisit prerequisite material.",
					PrerequisiteTopic: d.prereqs[0],
				}
			}
			return Recommendation{
				Action: ActionTakeBreak,
				Detail: "Trajectory declining and no prerequisite to fall back to. " +
					"Suggest a short break before trying a different angle.",
				Urgency:         UrgencyMedium,
				PostBreakWarmup: true,
			}
		},
	},
	{
		applies: func(d *decision) bool {
			return d.dominantError == CategoryConceptual
		},
		build: func(d *decision) Recommendation {
			if d.trajectory == TrajectoryImproving {
				return Recommendation{
					Action: ActionTargetedInstruction,
					Detail: "Conceptual gaps but improving. Provide a clear explanation of the " +
						"underlying concept with a worked example.",
				}
			}
			if len(d.prereqs) > 0 {
				return Recommendation{
					Action:            ActionGoBack,
					Detail:            "Persistent conceptual errors. Go back to prerequisites.",
					PrerequisiteTopic: d.prereqs[0],
				}
			}
			return Recommendation{
				Action: ActionTargetedInstruction,
				Detail: "Conceptual errors without prerequisite to revisit. " +
					"Give a thorough explanation with multiple examples.",
			}
		},
	},
	{
		applies: func(d *decision) bool {
			return d.dominantError == CategoryStructural
		},
		build: func(d *decision) Recommendation {
			if d.trajectory == TrajectoryImproving {
				return Recommendation{
					Action: ActionKeepGrinding,
					Detail: "Structural errors but improving. Continue with hints about the " +
						"correct method and approach.",
				}
			}
			return Recommendation{
				Action: ActionTargetedInstruction,
				Detail: "Structural errors not improving. Teach the correct method " +
					"step-by-step with a worked example.",
			}
		},
	},
	{
		applies: func(d *decision) bool {
			return d.dominantError == CategoryComputational
		},
		build: func(d *decision) Recommendation {
			if d.trajectory == TrajectoryImproving {
				return Recommendation{
					Action: ActionKeepGrinding,
					Detail: "Computational errors but improving. Keep practicing.",
				}
			}
			return Recommendation{
				Action: ActionBriefTip,
				Detail: "Computation errors. Give a quick tip about careful calculation " +
					"or common pitfalls, then continue.",
			}
		},
	},
	{
		applies: func(d *decision) bool { return true },
		build: func(d *decision) Recommendation {
			return Recommendation{
				Action: ActionKeepGrinding,
				Detail: "Continue with appropriately leveled questions.",
			}
		},
	},
}

// ComputeRecommendation runs the ordered rule list over the latest signals
// and returns one concrete next action. breakState may be nil, in which case
// break handling is skipped entirely. The returned error is non-nil only for
// a data-integrity failure in the break monitor.
func ComputeRecommendation(
	trajectory Trajectory,
	dominantError ErrorCategory,
	mastery float64,
	graph *TopicGraph,
	topic string,
	breakState *BreakState,
	now time.Time,
) (Recommendation, error) {
	d := &decision{
		trajectory:    trajectory,
		dominantError: dominantError,
		mastery:       mastery,
		prereqs:       graph.PrereqsFor(topic),
		breakState:    breakState,
	}

	if breakState != nil {
		check, err := CheckBreakNeeded(*breakState, trajectory, now)
		if err != nil {
			return Recommendation{}, err
		}
		d.breakCheck = check
	}

	for _, r := range rules {
		if r.applies(d) {
			return r.build(d), nil
		}
	}

	// Unreachable: the final rule always applies.
	return Recommendation{Action: ActionKeepGrinding}, nil
}
