package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records one graded answer attempt.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Unique().
			Comment("UUID assigned at grading time"),
		field.String("topic").
			NotEmpty().
			Comment("Curriculum topic the question belongs to"),
		field.String("subtopic").
			Optional().
			Comment("Finer-grained topic, when known"),
		field.String("difficulty").
			NotEmpty().
			Comment("easy, medium, or hard"),
		field.String("learner_answer").
			Comment("What the learner entered, verbatim"),
		field.String("reference_answer").
			NotEmpty().
			Comment("The canonical correct answer"),
		field.Bool("correct").
			Comment("Whether the answer graded as correct"),
		field.String("method").
			Comment("Comparison branch that decided the verdict"),
		field.Int("similarity").
			Comment("0-100 partial-credit score"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic"),
		index.Fields("correct"),
		index.Fields("difficulty"),
	}
}
