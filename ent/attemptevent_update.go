// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/gradex/ent/attemptevent"
	"github.com/abhisek/gradex/ent/predicate"
)

// AttemptEventUpdate is the builder for updating AttemptEvent entities.
type AttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptEventMutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdate) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAttemptID sets the "attempt_id" field.
func (_u *AttemptEventUpdate) SetAttemptID(v string) *AttemptEventUpdate {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableAttemptID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *AttemptEventUpdate) SetTopic(v string) *AttemptEventUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableTopic(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetSubtopic sets the "subtopic" field.
func (_u *AttemptEventUpdate) SetSubtopic(v string) *AttemptEventUpdate {
	_u.mutation.SetSubtopic(v)
	return _u
}

// SetNillableSubtopic sets the "subtopic" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableSubtopic(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetSubtopic(*v)
	}
	return _u
}

// ClearSubtopic clears the value of the "subtopic" field.
func (_u *AttemptEventUpdate) ClearSubtopic() *AttemptEventUpdate {
	_u.mutation.ClearSubtopic()
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *AttemptEventUpdate) SetDifficulty(v string) *AttemptEventUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableDifficulty(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetLearnerAnswer sets the "learner_answer" field.
func (_u *AttemptEventUpdate) SetLearnerAnswer(v string) *AttemptEventUpdate {
	_u.mutation.SetLearnerAnswer(v)
	return _u
}

// SetNillableLearnerAnswer sets the "learner_answer" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableLearnerAnswer(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetLearnerAnswer(*v)
	}
	return _u
}

// SetReferenceAnswer sets the "reference_answer" field.
func (_u *AttemptEventUpdate) SetReferenceAnswer(v string) *AttemptEventUpdate {
	_u.mutation.SetReferenceAnswer(v)
	return _u
}

// SetNillableReferenceAnswer sets the "reference_answer" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableReferenceAnswer(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetReferenceAnswer(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AttemptEventUpdate) SetCorrect(v bool) *AttemptEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableCorrect(v *bool) *AttemptEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetMethod sets the "method" field.
func (_u *AttemptEventUpdate) SetMethod(v string) *AttemptEventUpdate {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableMethod(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// SetSimilarity sets the "similarity" field.
func (_u *AttemptEventUpdate) SetSimilarity(v int) *AttemptEventUpdate {
	_u.mutation.ResetSimilarity()
	_u.mutation.SetSimilarity(v)
	return _u
}

// SetNillableSimilarity sets the "similarity" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableSimilarity(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetSimilarity(*v)
	}
	return _u
}

// AddSimilarity adds value to the "similarity" field.
func (_u *AttemptEventUpdate) AddSimilarity(v int) *AttemptEventUpdate {
	_u.mutation.AddSimilarity(v)
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdate) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdate) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := attemptevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.attempt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := attemptevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := attemptevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReferenceAnswer(); ok {
		if err := attemptevent.ReferenceAnswerValidator(v); err != nil {
			return &ValidationError{Name: "reference_answer", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.reference_answer": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(attemptevent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(attemptevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subtopic(); ok {
		_spec.SetField(attemptevent.FieldSubtopic, field.TypeString, value)
	}
	if _u.mutation.SubtopicCleared() {
		_spec.ClearField(attemptevent.FieldSubtopic, field.TypeString)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(attemptevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerAnswer(); ok {
		_spec.SetField(attemptevent.FieldLearnerAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReferenceAnswer(); ok {
		_spec.SetField(attemptevent.FieldReferenceAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(attemptevent.FieldMethod, field.TypeString, value)
	}
	if value, ok := _u.mutation.Similarity(); ok {
		_spec.SetField(attemptevent.FieldSimilarity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSimilarity(); ok {
		_spec.AddField(attemptevent.FieldSimilarity, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptEventUpdateOne is the builder for updating a single AttemptEvent entity.
type AttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptEventMutation
}

// SetAttemptID sets the "attempt_id" field.
func (_u *AttemptEventUpdateOne) SetAttemptID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableAttemptID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *AttemptEventUpdateOne) SetTopic(v string) *AttemptEventUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableTopic(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetSubtopic sets the "subtopic" field.
func (_u *AttemptEventUpdateOne) SetSubtopic(v string) *AttemptEventUpdateOne {
	_u.mutation.SetSubtopic(v)
	return _u
}

// SetNillableSubtopic sets the "subtopic" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableSubtopic(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetSubtopic(*v)
	}
	return _u
}

// ClearSubtopic clears the value of the "subtopic" field.
func (_u *AttemptEventUpdateOne) ClearSubtopic() *AttemptEventUpdateOne {
	_u.mutation.ClearSubtopic()
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *AttemptEventUpdateOne) SetDifficulty(v string) *AttemptEventUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableDifficulty(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetLearnerAnswer sets the "learner_answer" field.
func (_u *AttemptEventUpdateOne) SetLearnerAnswer(v string) *AttemptEventUpdateOne {
	_u.mutation.SetLearnerAnswer(v)
	return _u
}

// SetNillableLearnerAnswer sets the "learner_answer" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableLearnerAnswer(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetLearnerAnswer(*v)
	}
	return _u
}

// SetReferenceAnswer sets the "reference_answer" field.
func (_u *AttemptEventUpdateOne) SetReferenceAnswer(v string) *AttemptEventUpdateOne {
	_u.mutation.SetReferenceAnswer(v)
	return _u
}

// SetNillableReferenceAnswer sets the "reference_answer" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableReferenceAnswer(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetReferenceAnswer(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AttemptEventUpdateOne) SetCorrect(v bool) *AttemptEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableCorrect(v *bool) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetMethod sets the "method" field.
func (_u *AttemptEventUpdateOne) SetMethod(v string) *AttemptEventUpdateOne {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableMethod(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// SetSimilarity sets the "similarity" field.
func (_u *AttemptEventUpdateOne) SetSimilarity(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetSimilarity()
	_u.mutation.SetSimilarity(v)
	return _u
}

// SetNillableSimilarity sets the "similarity" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableSimilarity(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetSimilarity(*v)
	}
	return _u
}

// AddSimilarity adds value to the "similarity" field.
func (_u *AttemptEventUpdateOne) AddSimilarity(v int) *AttemptEventUpdateOne {
	_u.mutation.AddSimilarity(v)
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdateOne) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdateOne) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptEventUpdateOne) Select(field string, fields ...string) *AttemptEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AttemptEvent entity.
func (_u *AttemptEventUpdateOne) Save(ctx context.Context) (*AttemptEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) SaveX(ctx context.Context) *AttemptEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdateOne) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := attemptevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.attempt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := attemptevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := attemptevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReferenceAnswer(); ok {
		if err := attemptevent.ReferenceAnswerValidator(v); err != nil {
			return &ValidationError{Name: "reference_answer", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.reference_answer": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *AttemptEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptevent.FieldID)
		for _, f := range fields {
			if !attemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(attemptevent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(attemptevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subtopic(); ok {
		_spec.SetField(attemptevent.FieldSubtopic, field.TypeString, value)
	}
	if _u.mutation.SubtopicCleared() {
		_spec.ClearField(attemptevent.FieldSubtopic, field.TypeString)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(attemptevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerAnswer(); ok {
		_spec.SetField(attemptevent.FieldLearnerAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReferenceAnswer(); ok {
		_spec.SetField(attemptevent.FieldReferenceAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(attemptevent.FieldMethod, field.TypeString, value)
	}
	if value, ok := _u.mutation.Similarity(); ok {
		_spec.SetField(attemptevent.FieldSimilarity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSimilarity(); ok {
		_spec.AddField(attemptevent.FieldSimilarity, field.TypeInt, value)
	}
	_node = &AttemptEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
