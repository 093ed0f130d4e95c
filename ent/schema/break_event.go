package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BreakEvent records a break suggestion or a break actually taken.
type BreakEvent struct {
	ent.Schema
}

func (BreakEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (BreakEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty(),
		field.String("topic").
			NotEmpty(),
		field.String("action").
			NotEmpty().
			Comment("suggested or taken"),
		field.String("urgency").
			Optional().
			Default(""),
		field.String("reason").
			Optional().
			Default(""),
	}
}

func (BreakEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id"),
		index.Fields("learner_id", "topic"),
	}
}
