package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Dataset holds the schema definition for the Dataset entity.
// Datasets are immutable once created: only name and readme can change.
type Dataset struct {
	ent.Schema
}

// Fields of the Dataset.
func (Dataset) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			Unique(),
		field.Text("readme").
			Optional().
			Nillable(),
		field.Text("df").
			Comment("Serialized tabular payload"),
		field.Bool("has_query"),
		field.Bool("has_output"),
		field.Bool("has_output_true"),
		field.Int("size").
			Comment("Row count, derived at creation"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Dataset.
func (Dataset) Edges() []ent.Edge {
	return []ent.Edge{
		// Deleting a referenced dataset is rejected; the service layer surfaces
		// the number of linked experiments in the schema error.
		edge.To("experiments", Experiment.Type).
			Annotations(entsql.OnDelete(entsql.Restrict)),
	}
}

// Indexes of the Dataset.
func (Dataset) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name").
			Unique(),
	}
}
