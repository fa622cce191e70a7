package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Answer holds the schema definition for the Answer entity: the generated
// model output for one (experiment, row) slot.
type Answer struct {
	ent.Schema
}

// Fields of the Answer.
func (Answer) Fields() []ent.Field {
	return []ent.Field{
		field.Int("num_line").
			Comment("0-based dataset row index"),
		field.Text("answer").
			Optional().
			Nillable(),
		field.Text("error_msg").
			Optional().
			Nillable().
			Comment("Null on success"),
		field.Int("execution_time").
			Optional().
			Nillable().
			Comment("Wall-clock milliseconds for the LLM call"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("Token counts, tool-call count, generation time"),
		field.Int("experiment_id"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Answer.
func (Answer) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("experiment", Experiment.Type).
			Ref("answers").
			Field("experiment_id").
			Unique().
			Required(),
	}
}

// Indexes of the Answer.
func (Answer) Indexes() []ent.Index {
	return []ent.Index{
		// The upsert slot: concurrent writers serialize on this constraint.
		index.Fields("experiment_id", "num_line").
			Unique(),
	}
}
