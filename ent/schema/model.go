package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Model holds the schema definition for the Model entity: a descriptor of an
// OpenAI-compatible completion endpoint. Two experiments referencing the same
// underlying model name with different parameters are distinct rows.
type Model struct {
	ent.Schema
}

// Fields of the Model.
func (Model) Fields() []ent.Field {
	return []ent.Field{
		field.String("name"),
		field.String("base_url"),
		field.String("api_key").
			Sensitive(),
		field.Text("prompt_system").
			Optional().
			Nillable(),
		field.JSON("sampling_params", map[string]interface{}{}).
			Optional(),
		field.JSON("extra_params", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Model.
func (Model) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("experiments", Experiment.Type),
	}
}

// Indexes of the Model.
func (Model) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name"),
	}
}
