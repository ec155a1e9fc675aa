// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/edu-cockpit/cockpit/ent/predicate"
	"github.com/edu-cockpit/cockpit/ent/workflowlog"
)

// WorkflowLogUpdate is the builder for updating WorkflowLog entities.
type WorkflowLogUpdate struct {
	config
	hooks    []Hook
	mutation *WorkflowLogMutation
}

// Where appends a list predicates to the WorkflowLogUpdate builder.
func (_u *WorkflowLogUpdate) Where(ps ...predicate.WorkflowLog) *WorkflowLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the WorkflowLogMutation object of the builder.
func (_u *WorkflowLogUpdate) Mutation() *WorkflowLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkflowLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkflowLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *WorkflowLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(workflowlog.Table, workflowlog.Columns, sqlgraph.NewFieldSpec(workflowlog.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.OutputJSONCleared() {
		_spec.ClearField(workflowlog.FieldOutputJSON, field.TypeString)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(workflowlog.FieldErrorMessage, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkflowLogUpdateOne is the builder for updating a single WorkflowLog entity.
type WorkflowLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkflowLogMutation
}

// Mutation returns the WorkflowLogMutation object of the builder.
func (_u *WorkflowLogUpdateOne) Mutation() *WorkflowLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the WorkflowLogUpdate builder.
func (_u *WorkflowLogUpdateOne) Where(ps ...predicate.WorkflowLog) *WorkflowLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkflowLogUpdateOne) Select(field string, fields ...string) *WorkflowLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkflowLog entity.
func (_u *WorkflowLogUpdateOne) Save(ctx context.Context) (*WorkflowLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowLogUpdateOne) SaveX(ctx context.Context) *WorkflowLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkflowLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *WorkflowLogUpdateOne) sqlSave(ctx context.Context) (_node *WorkflowLog, err error) {
	_spec := sqlgraph.NewUpdateSpec(workflowlog.Table, workflowlog.Columns, sqlgraph.NewFieldSpec(workflowlog.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkflowLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workflowlog.FieldID)
		for _, f := range fields {
			if !workflowlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workflowlog.FieldID {
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
	if _u.mutation.OutputJSONCleared() {
		_spec.ClearField(workflowlog.FieldOutputJSON, field.TypeString)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(workflowlog.FieldErrorMessage, field.TypeString)
	}
	_node = &WorkflowLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
