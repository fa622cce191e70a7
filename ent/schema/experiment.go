package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Experiment holds the schema definition for the Experiment entity: one
// model × dataset × metric-set evaluation run.
type Experiment struct {
	ent.Schema
}

// Fields of the Experiment.
func (Experiment) Fields() []ent.Field {
	return []ent.Field{
		field.String("name"),
		field.Text("readme").
			Optional().
			Nillable(),
		field.Enum("experiment_status").
			Values("pending", "running_answers", "running_metrics", "finished").
			Default("pending"),
		field.Int("num_try").
			Default(0).
			Comment("Answer attempts, 0 ≤ num_success ≤ num_try ≤ dataset.size"),
		field.Int("num_success").
			Default(0),
		field.Int("num_observation_try").
			Default(0).
			Comment("Observation attempts aggregated across results"),
		field.Int("num_observation_success").
			Default(0),
		field.Int("num_metrics").
			Default(0).
			Comment("Number of Result rows"),
		field.Int("dataset_id"),
		field.Int("model_id").
			Optional().
			Nillable(),
		field.Int("experiment_set_id").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Experiment.
func (Experiment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("dataset", Dataset.Type).
			Ref("experiments").
			Field("dataset_id").
			Unique().
			Required(),
		edge.From("model", Model.Type).
			Ref("experiments").
			Field("model_id").
			Unique(),
		edge.From("experiment_set", ExperimentSet.Type).
			Ref("experiments").
			Field("experiment_set_id").
			Unique(),
		edge.To("results", Result.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("answers", Answer.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Experiment.
func (Experiment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("experiment_status"),
		index.Fields("dataset_id"),
		// Name is unique within its set; orphan experiments are unconstrained.
		index.Fields("experiment_set_id", "name").
			Unique(),
	}
}
