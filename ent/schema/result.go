package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Result holds the schema definition for the Result entity: one
// (experiment, metric) pair accumulating per-row observations.
type Result struct {
	ent.Schema
}

// Fields of the Result.
func (Result) Fields() []ent.Field {
	return []ent.Field{
		field.String("metric_name"),
		field.Enum("metric_status").
			Values("pending", "running", "finished").
			Default("pending"),
		field.Int("num_try").
			Default(0),
		field.Int("num_success").
			Default(0),
		field.Int("experiment_id"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Result.
func (Result) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("experiment", Experiment.Type).
			Ref("results").
			Field("experiment_id").
			Unique().
			Required(),
		edge.To("observations", Observation.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Result.
func (Result) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("metric_name"),
		index.Fields("metric_status"),
		index.Fields("experiment_id", "metric_name").
			Unique(),
	}
}
