package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records a single graded answer.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty(),
		field.String("topic").
			NotEmpty().
			Comment("Normalized topic key"),
		field.String("question_id").
			NotEmpty(),
		field.Bool("correct"),
		field.String("category").
			Optional().
			Default("").
			Comment("Error category for incorrect attempts"),
		field.String("bloom_level").
			Optional().
			Default(""),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id"),
		index.Fields("learner_id", "topic"),
		index.Fields("correct"),
	}
}
