package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Observation holds the schema definition for the Observation entity: a
// metric score for one (result, row) slot.
type Observation struct {
	ent.Schema
}

// Fields of the Observation.
func (Observation) Fields() []ent.Field {
	return []ent.Field{
		field.Int("num_line").
			Comment("0-based dataset row index"),
		field.Float("score").
			Optional().
			Nillable(),
		field.Text("observation").
			Optional().
			Nillable().
			Comment("Free-form blob produced by the metric"),
		field.Text("error_msg").
			Optional().
			Nillable().
			Comment("Null on success"),
		field.Int("execution_time").
			Optional().
			Nillable().
			Comment("Wall-clock milliseconds for the metric evaluation"),
		field.Int("result_id"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Observation.
func (Observation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("result", Result.Type).
			Ref("observations").
			Field("result_id").
			Unique().
			Required(),
	}
}

// Indexes of the Observation.
func (Observation) Indexes() []ent.Index {
	return []ent.Index{
		// The upsert slot: concurrent writers serialize on this constraint.
		index.Fields("result_id", "num_line").
			Unique(),
	}
}
