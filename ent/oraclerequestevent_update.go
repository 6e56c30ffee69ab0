// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/gradex/ent/oraclerequestevent"
	"github.com/abhisek/gradex/ent/predicate"
)

// OracleRequestEventUpdate is the builder for updating OracleRequestEvent entities.
type OracleRequestEventUpdate struct {
	config
	hooks    []Hook
	mutation *OracleRequestEventMutation
}

// Where appends a list predicates to the OracleRequestEventUpdate builder.
func (_u *OracleRequestEventUpdate) Where(ps ...predicate.OracleRequestEvent) *OracleRequestEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProvider sets the "provider" field.
func (_u *OracleRequestEventUpdate) SetProvider(v string) *OracleRequestEventUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *OracleRequestEventUpdate) SetNillableProvider(v *string) *OracleRequestEventUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetOperation sets the "operation" field.
func (_u *OracleRequestEventUpdate) SetOperation(v string) *OracleRequestEventUpdate {
	_u.mutation.SetOperation(v)
	return _u
}

// SetNillableOperation sets the "operation" field if the given value is not nil.
func (_u *OracleRequestEventUpdate) SetNillableOperation(v *string) *OracleRequestEventUpdate {
	if v != nil {
		_u.SetOperation(*v)
	}
	return _u
}

// SetExpression sets the "expression" field.
func (_u *OracleRequestEventUpdate) SetExpression(v string) *OracleRequestEventUpdate {
	_u.mutation.SetExpression(v)
	return _u
}

// SetNillableExpression sets the "expression" field if the given value is not nil.
func (_u *OracleRequestEventUpdate) SetNillableExpression(v *string) *OracleRequestEventUpdate {
	if v != nil {
		_u.SetExpression(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *OracleRequestEventUpdate) SetResult(v string) *OracleRequestEventUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *OracleRequestEventUpdate) SetNillableResult(v *string) *OracleRequestEventUpdate {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *OracleRequestEventUpdate) ClearResult() *OracleRequestEventUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *OracleRequestEventUpdate) SetLatencyMs(v int64) *OracleRequestEventUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *OracleRequestEventUpdate) SetNillableLatencyMs(v *int64) *OracleRequestEventUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *OracleRequestEventUpdate) AddLatencyMs(v int64) *OracleRequestEventUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *OracleRequestEventUpdate) SetSuccess(v bool) *OracleRequestEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *OracleRequestEventUpdate) SetNillableSuccess(v *bool) *OracleRequestEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *OracleRequestEventUpdate) SetErrorMessage(v string) *OracleRequestEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *OracleRequestEventUpdate) SetNillableErrorMessage(v *string) *OracleRequestEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *OracleRequestEventUpdate) ClearErrorMessage() *OracleRequestEventUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the OracleRequestEventMutation object of the builder.
func (_u *OracleRequestEventUpdate) Mutation() *OracleRequestEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OracleRequestEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OracleRequestEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OracleRequestEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OracleRequestEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OracleRequestEventUpdate) check() error {
	if v, ok := _u.mutation.Provider(); ok {
		if err := oraclerequestevent.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "OracleRequestEvent.provider": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Operation(); ok {
		if err := oraclerequestevent.OperationValidator(v); err != nil {
			return &ValidationError{Name: "operation", err: fmt.Errorf(`ent: validator failed for field "OracleRequestEvent.operation": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Expression(); ok {
		if err := oraclerequestevent.ExpressionValidator(v); err != nil {
			return &ValidationError{Name: "expression", err: fmt.Errorf(`ent: validator failed for field "OracleRequestEvent.expression": %w`, err)}
		}
	}
	return nil
}

func (_u *OracleRequestEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(oraclerequestevent.Table, oraclerequestevent.Columns, sqlgraph.NewFieldSpec(oraclerequestevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(oraclerequestevent.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Operation(); ok {
		_spec.SetField(oraclerequestevent.FieldOperation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Expression(); ok {
		_spec.SetField(oraclerequestevent.FieldExpression, field.TypeString, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(oraclerequestevent.FieldResult, field.TypeString, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(oraclerequestevent.FieldResult, field.TypeString)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(oraclerequestevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(oraclerequestevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(oraclerequestevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(oraclerequestevent.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(oraclerequestevent.FieldErrorMessage, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{oraclerequestevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OracleRequestEventUpdateOne is the builder for updating a single OracleRequestEvent entity.
type OracleRequestEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OracleRequestEventMutation
}

// SetProvider sets the "provider" field.
func (_u *OracleRequestEventUpdateOne) SetProvider(v string) *OracleRequestEventUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *OracleRequestEventUpdateOne) SetNillableProvider(v *string) *OracleRequestEventUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetOperation sets the "operation" field.
func (_u *OracleRequestEventUpdateOne) SetOperation(v string) *OracleRequestEventUpdateOne {
	_u.mutation.SetOperation(v)
	return _u
}

// SetNillableOperation sets the "operation" field if the given value is not nil.
func (_u *OracleRequestEventUpdateOne) SetNillableOperation(v *string) *OracleRequestEventUpdateOne {
	if v != nil {
		_u.SetOperation(*v)
	}
	return _u
}

// SetExpression sets the "expression" field.
func (_u *OracleRequestEventUpdateOne) SetExpression(v string) *OracleRequestEventUpdateOne {
	_u.mutation.SetExpression(v)
	return _u
}

// SetNillableExpression sets the "expression" field if the given value is not nil.
func (_u *OracleRequestEventUpdateOne) SetNillableExpression(v *string) *OracleRequestEventUpdateOne {
	if v != nil {
		_u.SetExpression(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *OracleRequestEventUpdateOne) SetResult(v string) *OracleRequestEventUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *OracleRequestEventUpdateOne) SetNillableResult(v *string) *OracleRequestEventUpdateOne {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *OracleRequestEventUpdateOne) ClearResult() *OracleRequestEventUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *OracleRequestEventUpdateOne) SetLatencyMs(v int64) *OracleRequestEventUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *OracleRequestEventUpdateOne) SetNillableLatencyMs(v *int64) *OracleRequestEventUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *OracleRequestEventUpdateOne) AddLatencyMs(v int64) *OracleRequestEventUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *OracleRequestEventUpdateOne) SetSuccess(v bool) *OracleRequestEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *OracleRequestEventUpdateOne) SetNillableSuccess(v *bool) *OracleRequestEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *OracleRequestEventUpdateOne) SetErrorMessage(v string) *OracleRequestEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *OracleRequestEventUpdateOne) SetNillableErrorMessage(v *string) *OracleRequestEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *OracleRequestEventUpdateOne) ClearErrorMessage() *OracleRequestEventUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the OracleRequestEventMutation object of the builder.
func (_u *OracleRequestEventUpdateOne) Mutation() *OracleRequestEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the OracleRequestEventUpdate builder.
func (_u *OracleRequestEventUpdateOne) Where(ps ...predicate.OracleRequestEvent) *OracleRequestEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OracleRequestEventUpdateOne) Select(field string, fields ...string) *OracleRequestEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OracleRequestEvent entity.
func (_u *OracleRequestEventUpdateOne) Save(ctx context.Context) (*OracleRequestEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OracleRequestEventUpdateOne) SaveX(ctx context.Context) *OracleRequestEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OracleRequestEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OracleRequestEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OracleRequestEventUpdateOne) check() error {
	if v, ok := _u.mutation.Provider(); ok {
		if err := oraclerequestevent.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "OracleRequestEvent.provider": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Operation(); ok {
		if err := oraclerequestevent.OperationValidator(v); err != nil {
			return &ValidationError{Name: "operation", err: fmt.Errorf(`ent: validator failed for field "OracleRequestEvent.operation": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Expression(); ok {
		if err := oraclerequestevent.ExpressionValidator(v); err != nil {
			return &ValidationError{Name: "expression", err: fmt.Errorf(`ent: validator failed for field "OracleRequestEvent.expression": %w`, err)}
		}
	}
	return nil
}

func (_u *OracleRequestEventUpdateOne) sqlSave(ctx context.Context) (_node *OracleRequestEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(oraclerequestevent.Table, oraclerequestevent.Columns, sqlgraph.NewFieldSpec(oraclerequestevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OracleRequestEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, oraclerequestevent.FieldID)
		for _, f := range fields {
			if !oraclerequestevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != oraclerequestevent.FieldID {
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
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(oraclerequestevent.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Operation(); ok {
		_spec.SetField(oraclerequestevent.FieldOperation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Expression(); ok {
		_spec.SetField(oraclerequestevent.FieldExpression, field.TypeString, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(oraclerequestevent.FieldResult, field.TypeString, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(oraclerequestevent.FieldResult, field.TypeString)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(oraclerequestevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(oraclerequestevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(oraclerequestevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(oraclerequestevent.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(oraclerequestevent.FieldErrorMessage, field.TypeString)
	}
	_node = &OracleRequestEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{oraclerequestevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
