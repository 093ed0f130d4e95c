// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptEventsColumns holds the columns for the "attempt_events" table.
	AttemptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "category", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "bloom_level", Type: field.TypeString, Nullable: true, Default: ""},
	}
	// AttemptEventsTable holds the schema information for the "attempt_events" table.
	AttemptEventsTable = &schema.Table{
		Name:       "attempt_events",
		Columns:    AttemptEventsColumns,
		PrimaryKey: []*schema.Column{AttemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attemptevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[1]},
			},
			{
				Name:    "attemptevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[2]},
			},
			{
				Name:    "attemptevent_learner_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[3]},
			},
			{
				Name:    "attemptevent_learner_id_topic",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[3], AttemptEventsColumns[4]},
			},
			{
				Name:    "attemptevent_correct",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[6]},
			},
		},
	}
	// BreakEventsColumns holds the columns for the "break_events" table.
	BreakEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "urgency", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "reason", Type: field.TypeString, Nullable: true, Default: ""},
	}
	// BreakEventsTable holds the schema information for the "break_events" table.
	BreakEventsTable = &schema.Table{
		Name:       "break_events",
		Columns:    BreakEventsColumns,
		PrimaryKey: []*schema.Column{BreakEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "breakevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{BreakEventsColumns[1]},
			},
			{
				Name:    "breakevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{BreakEventsColumns[2]},
			},
			{
				Name:    "breakevent_learner_id",
				Unique:  false,
				Columns: []*schema.Column{BreakEventsColumns[3]},
			},
			{
				Name:    "breakevent_learner_id_topic",
				Unique:  false,
				Columns: []*schema.Column{BreakEventsColumns[3], BreakEventsColumns[4]},
			},
		},
	}
	// LearnerDocsColumns holds the columns for the "learner_docs" table.
	LearnerDocsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString, Unique: true},
		{Name: "document", Type: field.TypeJSON},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// LearnerDocsTable holds the schema information for the "learner_docs" table.
	LearnerDocsTable = &schema.Table{
		Name:       "learner_docs",
		Columns:    LearnerDocsColumns,
		PrimaryKey: []*schema.Column{LearnerDocsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "learnerdoc_learner_id",
				Unique:  false,
				Columns: []*schema.Column{LearnerDocsColumns[1]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "session_number", Type: field.TypeInt},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "correct_answers", Type: field.TypeInt, Default: 0},
		{Name: "mastery_delta", Type: field.TypeFloat64, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_learner_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_learner_id_topic",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3], SessionEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptEventsTable,
		BreakEventsTable,
		LearnerDocsTable,
		SessionEventsTable,
	}
)

func init() {
}
