// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AttemptEvent is the predicate function for attemptevent builders.
type AttemptEvent func(*sql.Selector)

// BreakEvent is the predicate function for breakevent builders.
type BreakEvent func(*sql.Selector)

// LearnerDoc is the predicate function for learnerdoc builders.
type LearnerDoc func(*sql.Selector)

// SessionEvent is the predicate function for sessionevent builders.
type SessionEvent func(*sql.Selector)
