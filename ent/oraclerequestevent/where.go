// Code generated by ent, DO NOT EDIT.

package oraclerequestevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/gradex/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldEQ(FieldTimestamp, v))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldEQ(FieldProvider, v))
}

// Operation applies equality check predicate on the "operation" field. It's identical to OperationEQ.
func Operation(v string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldEQ(FieldOperation, v))
}

// Expression applies equality check predicate on the "expression" field. It's identical to ExpressionEQ.
func Expression(v string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldEQ(FieldExpression, v))
}

// Result applies equality check predicate on the "result" field. It's identical to ResultEQ.
func Result(v string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldEQ(FieldResult, v))
}

// LatencyMs applies equality check predicate on the "latency_ms" field. It's identical to LatencyMsEQ.
func LatencyMs(v int64) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldEQ(FieldLatencyMs, v))
}

// Success applies equality check predicate on the "success" field. It's identical to SuccessEQ.
func Success(v bool) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldEQ(FieldSuccess, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldLTE(FieldTimestamp, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldContainsFold(FieldProvider, v))
}

// OperationEQ applies the EQ predicate on the "operation" field.
func OperationEQ(v string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldEQ(FieldOperation, v))
}

// OperationNEQ applies the NEQ predicate on the "operation" field.
func OperationNEQ(v string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldNEQ(FieldOperation, v))
}

// OperationIn applies the In predicate on the "operation" field.
func OperationIn(vs ...string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldIn(FieldOperation, vs...))
}

// OperationNotIn applies the NotIn predicate on the "operation" field.
func OperationNotIn(vs ...string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldNotIn(FieldOperation, vs...))
}

// OperationGT applies the GT predicate on the "operation" field.
func OperationGT(v string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldGT(FieldOperation, v))
}

// OperationGTE applies the GTE predicate on the "operation" field.
func OperationGTE(v string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldGTE(FieldOperation, v))
}

// OperationLT applies the LT predicate on the "operation" field.
func OperationLT(v string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldLT(FieldOperation, v))
}

// OperationLTE applies the LTE predicate on the "operation" field.
func OperationLTE(v string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldLTE(FieldOperation, v))
}

// OperationContains applies the Contains predicate on the "operation" field.
func OperationContains(v string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldContains(FieldOperation, v))
}

// OperationHasPrefix applies the HasPrefix predicate on the "operation" field.
func OperationHasPrefix(v string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldHasPrefix(FieldOperation, v))
}

// OperationHasSuffix applies the HasSuffix predicate on the "operation" field.
func OperationHasSuffix(v string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldHasSuffix(FieldOperation, v))
}

// OperationEqualFold applies the EqualFold predicate on the "operation" field.
func OperationEqualFold(v string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldEqualFold(FieldOperation, v))
}

// OperationContainsFold applies the ContainsFold predicate on the "operation" field.
func OperationContainsFold(v string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldContainsFold(FieldOperation, v))
}

// ExpressionEQ applies the EQ predicate on the "expression" field.
func ExpressionEQ(v string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldEQ(FieldExpression, v))
}

// ExpressionNEQ applies the NEQ predicate on the "expression" field.
func ExpressionNEQ(v string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldNEQ(FieldExpression, v))
}

// ExpressionIn applies the In predicate on the "expression" field.
func ExpressionIn(vs ...string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldIn(FieldExpression, vs...))
}

// ExpressionNotIn applies the NotIn predicate on the "expression" field.
func ExpressionNotIn(vs ...string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldNotIn(FieldExpression, vs...))
}

// ExpressionGT applies the GT predicate on the "expression" field.
func ExpressionGT(v string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldGT(FieldExpression, v))
}

// ExpressionGTE applies the GTE predicate on the "expression" field.
func ExpressionGTE(v string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldGTE(FieldExpression, v))
}

// ExpressionLT applies the LT predicate on the "expression" field.
func ExpressionLT(v string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldLT(FieldExpression, v))
}

// ExpressionLTE applies the LTE predicate on the "expression" field.
func ExpressionLTE(v string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldLTE(FieldExpression, v))
}

// ExpressionContains applies the Contains predicate on the "expression" field.
func ExpressionContains(v string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldContains(FieldExpression, v))
}

// ExpressionHasPrefix applies the HasPrefix predicate on the "expression" field.
func ExpressionHasPrefix(v string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldHasPrefix(FieldExpression, v))
}

// ExpressionHasSuffix applies the HasSuffix predicate on the "expression" field.
func ExpressionHasSuffix(v string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldHasSuffix(FieldExpression, v))
}

// ExpressionEqualFold applies the EqualFold predicate on the "expression" field.
func ExpressionEqualFold(v string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldEqualFold(FieldExpression, v))
}

// ExpressionContainsFold applies the ContainsFold predicate on the "expression" field.
func ExpressionContainsFold(v string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldContainsFold(FieldExpression, v))
}

// ResultEQ applies the EQ predicate on the "result" field.
func ResultEQ(v string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldEQ(FieldResult, v))
}

// ResultNEQ applies the NEQ predicate on the "result" field.
func ResultNEQ(v string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldNEQ(FieldResult, v))
}

// ResultIn applies the In predicate on the "result" field.
func ResultIn(vs ...string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldIn(FieldResult, vs...))
}

// ResultNotIn applies the NotIn predicate on the "result" field.
func ResultNotIn(vs ...string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldNotIn(FieldResult, vs...))
}

// ResultGT applies the GT predicate on the "result" field.
func ResultGT(v string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldGT(FieldResult, v))
}

// ResultGTE applies the GTE predicate on the "result" field.
func ResultGTE(v string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldGTE(FieldResult, v))
}

// ResultLT applies the LT predicate on the "result" field.
func ResultLT(v string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldLT(FieldResult, v))
}

// ResultLTE applies the LTE predicate on the "result" field.
func ResultLTE(v string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldLTE(FieldResult, v))
}

// ResultContains applies the Contains predicate on the "result" field.
func ResultContains(v string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldContains(FieldResult, v))
}

// ResultHasPrefix applies the HasPrefix predicate on the "result" field.
func ResultHasPrefix(v string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldHasPrefix(FieldResult, v))
}

// ResultHasSuffix applies the HasSuffix predicate on the "result" field.
func ResultHasSuffix(v string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldHasSuffix(FieldResult, v))
}

// ResultIsNil applies the IsNil predicate on the "result" field.
func ResultIsNil() predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldIsNull(FieldResult))
}

// ResultNotNil applies the NotNil predicate on the "result" field.
func ResultNotNil() predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldNotNull(FieldResult))
}

// ResultEqualFold applies the EqualFold predicate on the "result" field.
func ResultEqualFold(v string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldEqualFold(FieldResult, v))
}

// ResultContainsFold applies the ContainsFold predicate on the "result" field.
func ResultContainsFold(v string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldContainsFold(FieldResult, v))
}

// LatencyMsEQ applies the EQ predicate on the "latency_ms" field.
func LatencyMsEQ(v int64) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldEQ(FieldLatencyMs, v))
}

// LatencyMsNEQ applies the NEQ predicate on the "latency_ms" field.
func LatencyMsNEQ(v int64) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldNEQ(FieldLatencyMs, v))
}

// LatencyMsIn applies the In predicate on the "latency_ms" field.
func LatencyMsIn(vs ...int64) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldIn(FieldLatencyMs, vs...))
}

// LatencyMsNotIn applies the NotIn predicate on the "latency_ms" field.
func LatencyMsNotIn(vs ...int64) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldNotIn(FieldLatencyMs, vs...))
}

// LatencyMsGT applies the GT predicate on the "latency_ms" field.
func LatencyMsGT(v int64) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldGT(FieldLatencyMs, v))
}

// LatencyMsGTE applies the GTE predicate on the "latency_ms" field.
func LatencyMsGTE(v int64) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldGTE(FieldLatencyMs, v))
}

// LatencyMsLT applies the LT predicate on the "latency_ms" field.
func LatencyMsLT(v int64) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldLT(FieldLatencyMs, v))
}

// LatencyMsLTE applies the LTE predicate on the "latency_ms" field.
func LatencyMsLTE(v int64) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldLTE(FieldLatencyMs, v))
}

// SuccessEQ applies the EQ predicate on the "success" field.
func SuccessEQ(v bool) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldEQ(FieldSuccess, v))
}

// SuccessNEQ applies the NEQ predicate on the "success" field.
func SuccessNEQ(v bool) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldNEQ(FieldSuccess, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.FieldContainsFold(FieldErrorMessage, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.OracleRequestEvent) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.OracleRequestEvent) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.OracleRequestEvent) predicate.OracleRequestEvent {
	return predicate.OracleRequestEvent(sql.NotPredicates(p))
}
