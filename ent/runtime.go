// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/gradex/ent/attemptevent"
	"github.com/abhisek/gradex/ent/oraclerequestevent"
	"github.com/abhisek/gradex/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescAttemptID is the schema descriptor for attempt_id field.
	attempteventDescAttemptID := attempteventFields[0].Descriptor()
	// attemptevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	attemptevent.AttemptIDValidator = attempteventDescAttemptID.Validators[0].(func(string) error)
	// attempteventDescTopic is the schema descriptor for topic field.
	attempteventDescTopic := attempteventFields[1].Descriptor()
	// attemptevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	attemptevent.TopicValidator = attempteventDescTopic.Validators[0].(func(string) error)
	// attempteventDescDifficulty is the schema descriptor for difficulty field.
	attempteventDescDifficulty := attempteventFields[3].Descriptor()
	// attemptevent.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	attemptevent.DifficultyValidator = attempteventDescDifficulty.Validators[0].(func(string) error)
	// attempteventDescReferenceAnswer is the schema descriptor for reference_answer field.
	attempteventDescReferenceAnswer := attempteventFields[5].Descriptor()
	// attemptevent.ReferenceAnswerValidator is a validator for the "reference_answer" field. It is called by the builders before save.
	attemptevent.ReferenceAnswerValidator = attempteventDescReferenceAnswer.Validators[0].(func(string) error)
	oraclerequesteventMixin := schema.OracleRequestEvent{}.Mixin()
	oraclerequesteventMixinFields0 := oraclerequesteventMixin[0].Fields()
	_ = oraclerequesteventMixinFields0
	oraclerequesteventFields := schema.OracleRequestEvent{}.Fields()
	_ = oraclerequesteventFields
	// oraclerequesteventDescTimestamp is the schema descriptor for timestamp field.
	oraclerequesteventDescTimestamp := oraclerequesteventMixinFields0[1].Descriptor()
	// oraclerequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	oraclerequestevent.DefaultTimestamp = oraclerequesteventDescTimestamp.Default.(func() time.Time)
	// oraclerequesteventDescProvider is the schema descriptor for provider field.
	oraclerequesteventDescProvider := oraclerequesteventFields[0].Descriptor()
	// oraclerequestevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	oraclerequestevent.ProviderValidator = oraclerequesteventDescProvider.Validators[0].(func(string) error)
	// oraclerequesteventDescOperation is the schema descriptor for operation field.
	oraclerequesteventDescOperation := oraclerequesteventFields[1].Descriptor()
	// oraclerequestevent.OperationValidator is a validator for the "operation" field. It is called by the builders before save.
	oraclerequestevent.OperationValidator = oraclerequesteventDescOperation.Validators[0].(func(string) error)
	// oraclerequesteventDescExpression is the schema descriptor for expression field.
	oraclerequesteventDescExpression := oraclerequesteventFields[2].Descriptor()
	// oraclerequestevent.ExpressionValidator is a validator for the "expression" field. It is called by the builders before save.
	oraclerequestevent.ExpressionValidator = oraclerequesteventDescExpression.Validators[0].(func(string) error)
}
