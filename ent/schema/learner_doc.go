package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LearnerDoc holds one learner's full profile as a JSON document. The
// document is the authoritative state; the event tables are an audit trail.
type LearnerDoc struct {
	ent.Schema
}

func (LearnerDoc) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty().
			Unique().
			Immutable(),
		field.JSON("document", map[string]any{}).
			Comment("Serialized learner profile"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (LearnerDoc) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id"),
	}
}
