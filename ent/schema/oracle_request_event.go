package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// OracleRequestEvent records one call to the external verification
// oracle.
type OracleRequestEvent struct {
	ent.Schema
}

func (OracleRequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (OracleRequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider").
			NotEmpty().
			Comment("Backing engine, e.g. newton or anthropic:<model>"),
		field.String("operation").
			NotEmpty().
			Comment("Symbolic operation requested"),
		field.String("expression").
			NotEmpty().
			Comment("Expression sent to the engine"),
		field.String("result").
			Optional().
			Comment("Canonical result, empty on failure"),
		field.Int64("latency_ms").
			Comment("Wall-clock latency of the call"),
		field.Bool("success").
			Comment("Whether the call produced a usable result"),
		field.String("error_message").
			Optional().
			Comment("Error text on failure"),
	}
}

func (OracleRequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider"),
		index.Fields("success"),
	}
}
