// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/gradex/ent/oraclerequestevent"
)

// OracleRequestEventCreate is the builder for creating a OracleRequestEvent entity.
type OracleRequestEventCreate struct {
	config
	mutation *OracleRequestEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *OracleRequestEventCreate) SetSequence(v int64) *OracleRequestEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *OracleRequestEventCreate) SetTimestamp(v time.Time) *OracleRequestEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *OracleRequestEventCreate) SetNillableTimestamp(v *time.Time) *OracleRequestEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetProvider sets the "provider" field.
func (_c *OracleRequestEventCreate) SetProvider(v string) *OracleRequestEventCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetOperation sets the "operation" field.
func (_c *OracleRequestEventCreate) SetOperation(v string) *OracleRequestEventCreate {
	_c.mutation.SetOperation(v)
	return _c
}

// SetExpression sets the "expression" field.
func (_c *OracleRequestEventCreate) SetExpression(v string) *OracleRequestEventCreate {
	_c.mutation.SetExpression(v)
	return _c
}

// SetResult sets the "result" field.
func (_c *OracleRequestEventCreate) SetResult(v string) *OracleRequestEventCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_c *OracleRequestEventCreate) SetNillableResult(v *string) *OracleRequestEventCreate {
	if v != nil {
		_c.SetResult(*v)
	}
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *OracleRequestEventCreate) SetLatencyMs(v int64) *OracleRequestEventCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetSuccess sets the "success" field.
func (_c *OracleRequestEventCreate) SetSuccess(v bool) *OracleRequestEventCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *OracleRequestEventCreate) SetErrorMessage(v string) *OracleRequestEventCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *OracleRequestEventCreate) SetNillableErrorMessage(v *string) *OracleRequestEventCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// Mutation returns the OracleRequestEventMutation object of the builder.
func (_c *OracleRequestEventCreate) Mutation() *OracleRequestEventMutation {
	return _c.mutation
}

// Save creates the OracleRequestEvent in the database.
func (_c *OracleRequestEventCreate) Save(ctx context.Context) (*OracleRequestEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OracleRequestEventCreate) SaveX(ctx context.Context) *OracleRequestEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OracleRequestEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OracleRequestEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OracleRequestEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := oraclerequestevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OracleRequestEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "OracleRequestEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "OracleRequestEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "OracleRequestEvent.provider"`)}
	}
	if v, ok := _c.mutation.Provider(); ok {
		if err := oraclerequestevent.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "OracleRequestEvent.provider": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Operation(); !ok {
		return &ValidationError{Name: "operation", err: errors.New(`ent: missing required field "OracleRequestEvent.operation"`)}
	}
	if v, ok := _c.mutation.Operation(); ok {
		if err := oraclerequestevent.OperationValidator(v); err != nil {
			return &ValidationError{Name: "operation", err: fmt.Errorf(`ent: validator failed for field "OracleRequestEvent.operation": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Expression(); !ok {
		return &ValidationError{Name: "expression", err: errors.New(`ent: missing required field "OracleRequestEvent.expression"`)}
	}
	if v, ok := _c.mutation.Expression(); ok {
		if err := oraclerequestevent.ExpressionValidator(v); err != nil {
			return &ValidationError{Name: "expression", err: fmt.Errorf(`ent: validator failed for field "OracleRequestEvent.expression": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "OracleRequestEvent.latency_ms"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "OracleRequestEvent.success"`)}
	}
	return nil
}

func (_c *OracleRequestEventCreate) sqlSave(ctx context.Context) (*OracleRequestEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *OracleRequestEventCreate) createSpec() (*OracleRequestEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &OracleRequestEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(oraclerequestevent.Table, sqlgraph.NewFieldSpec(oraclerequestevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(oraclerequestevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(oraclerequestevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(oraclerequestevent.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.Operation(); ok {
		_spec.SetField(oraclerequestevent.FieldOperation, field.TypeString, value)
		_node.Operation = value
	}
	if value, ok := _c.mutation.Expression(); ok {
		_spec.SetField(oraclerequestevent.FieldExpression, field.TypeString, value)
		_node.Expression = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(oraclerequestevent.FieldResult, field.TypeString, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(oraclerequestevent.FieldLatencyMs, field.TypeInt64, value)
		_node.LatencyMs = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(oraclerequestevent.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(oraclerequestevent.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	return _node, _spec
}

// OracleRequestEventCreateBulk is the builder for creating many OracleRequestEvent entities in bulk.
type OracleRequestEventCreateBulk struct {
	config
	err      error
	builders []*OracleRequestEventCreate
}

// Save creates the OracleRequestEvent entities in the database.
func (_c *OracleRequestEventCreateBulk) Save(ctx context.Context) ([]*OracleRequestEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OracleRequestEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OracleRequestEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *OracleRequestEventCreateBulk) SaveX(ctx context.Context) []*OracleRequestEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OracleRequestEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OracleRequestEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
