// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/edu-cockpit/cockpit/ent/workflowlog"
)

// WorkflowLogCreate is the builder for creating a WorkflowLog entity.
type WorkflowLogCreate struct {
	config
	mutation *WorkflowLogMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *WorkflowLogCreate) SetSessionID(v string) *WorkflowLogCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetStepName sets the "step_name" field.
func (_c *WorkflowLogCreate) SetStepName(v string) *WorkflowLogCreate {
	_c.mutation.SetStepName(v)
	return _c
}

// SetInputJSON sets the "input_json" field.
func (_c *WorkflowLogCreate) SetInputJSON(v string) *WorkflowLogCreate {
	_c.mutation.SetInputJSON(v)
	return _c
}

// SetOutputJSON sets the "output_json" field.
func (_c *WorkflowLogCreate) SetOutputJSON(v string) *WorkflowLogCreate {
	_c.mutation.SetOutputJSON(v)
	return _c
}

// SetNillableOutputJSON sets the "output_json" field if the given value is not nil.
func (_c *WorkflowLogCreate) SetNillableOutputJSON(v *string) *WorkflowLogCreate {
	if v != nil {
		_c.SetOutputJSON(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *WorkflowLogCreate) SetStatus(v workflowlog.Status) *WorkflowLogCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *WorkflowLogCreate) SetErrorMessage(v string) *WorkflowLogCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *WorkflowLogCreate) SetNillableErrorMessage(v *string) *WorkflowLogCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetRiskLevel sets the "risk_level" field.
func (_c *WorkflowLogCreate) SetRiskLevel(v string) *WorkflowLogCreate {
	_c.mutation.SetRiskLevel(v)
	return _c
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_c *WorkflowLogCreate) SetNillableRiskLevel(v *string) *WorkflowLogCreate {
	if v != nil {
		_c.SetRiskLevel(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WorkflowLogCreate) SetCreatedAt(v time.Time) *WorkflowLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WorkflowLogCreate) SetNillableCreatedAt(v *time.Time) *WorkflowLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the WorkflowLogMutation object of the builder.
func (_c *WorkflowLogCreate) Mutation() *WorkflowLogMutation {
	return _c.mutation
}

// Save creates the WorkflowLog in the database.
func (_c *WorkflowLogCreate) Save(ctx context.Context) (*WorkflowLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkflowLogCreate) SaveX(ctx context.Context) *WorkflowLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkflowLogCreate) defaults() {
	if _, ok := _c.mutation.RiskLevel(); !ok {
		v := workflowlog.DefaultRiskLevel
		_c.mutation.SetRiskLevel(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := workflowlog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkflowLogCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "WorkflowLog.session_id"`)}
	}
	if _, ok := _c.mutation.StepName(); !ok {
		return &ValidationError{Name: "step_name", err: errors.New(`ent: missing required field "WorkflowLog.step_name"`)}
	}
	if _, ok := _c.mutation.InputJSON(); !ok {
		return &ValidationError{Name: "input_json", err: errors.New(`ent: missing required field "WorkflowLog.input_json"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "WorkflowLog.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := workflowlog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkflowLog.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RiskLevel(); !ok {
		return &ValidationError{Name: "risk_level", err: errors.New(`ent: missing required field "WorkflowLog.risk_level"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WorkflowLog.created_at"`)}
	}
	return nil
}

func (_c *WorkflowLogCreate) sqlSave(ctx context.Context) (*WorkflowLog, error) {
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

func (_c *WorkflowLogCreate) createSpec() (*WorkflowLog, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkflowLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workflowlog.Table, sqlgraph.NewFieldSpec(workflowlog.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(workflowlog.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.StepName(); ok {
		_spec.SetField(workflowlog.FieldStepName, field.TypeString, value)
		_node.StepName = value
	}
	if value, ok := _c.mutation.InputJSON(); ok {
		_spec.SetField(workflowlog.FieldInputJSON, field.TypeString, value)
		_node.InputJSON = value
	}
	if value, ok := _c.mutation.OutputJSON(); ok {
		_spec.SetField(workflowlog.FieldOutputJSON, field.TypeString, value)
		_node.OutputJSON = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(workflowlog.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(workflowlog.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.RiskLevel(); ok {
		_spec.SetField(workflowlog.FieldRiskLevel, field.TypeString, value)
		_node.RiskLevel = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(workflowlog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// WorkflowLogCreateBulk is the builder for creating many WorkflowLog entities in bulk.
type WorkflowLogCreateBulk struct {
	config
	err      error
	builders []*WorkflowLogCreate
}

// Save creates the WorkflowLog entities in the database.
func (_c *WorkflowLogCreateBulk) Save(ctx context.Context) ([]*WorkflowLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WorkflowLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkflowLogMutation)
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
func (_c *WorkflowLogCreateBulk) SaveX(ctx context.Context) []*WorkflowLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
