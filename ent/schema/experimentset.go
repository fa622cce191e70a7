package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// ExperimentSet holds the schema definition for the ExperimentSet entity:
// a named collection of experiments, often generated from a parameter grid.
type ExperimentSet struct {
	ent.Schema
}

// Fields of the ExperimentSet.
func (ExperimentSet) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			Unique(),
		field.Text("readme").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ExperimentSet.
func (ExperimentSet) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("experiments", Experiment.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
