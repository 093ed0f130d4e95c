// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/tutord/ent/learnerdoc"
	"github.com/abhisek/tutord/ent/predicate"
)

// LearnerDocUpdate is the builder for updating LearnerDoc entities.
type LearnerDocUpdate struct {
	config
	hooks    []Hook
	mutation *LearnerDocMutation
}

// Where appends a list predicates to the LearnerDocUpdate builder.
func (_u *LearnerDocUpdate) Where(ps ...predicate.LearnerDoc) *LearnerDocUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocument sets the "document" field.
func (_u *LearnerDocUpdate) SetDocument(v map[string]interface{}) *LearnerDocUpdate {
	_u.mutation.SetDocument(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LearnerDocUpdate) SetUpdatedAt(v time.Time) *LearnerDocUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LearnerDocMutation object of the builder.
func (_u *LearnerDocUpdate) Mutation() *LearnerDocMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LearnerDocUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearnerDocUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LearnerDocUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearnerDocUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LearnerDocUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := learnerdoc.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *LearnerDocUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(learnerdoc.Table, learnerdoc.Columns, sqlgraph.NewFieldSpec(learnerdoc.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Document(); ok {
		_spec.SetField(learnerdoc.FieldDocument, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(learnerdoc.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learnerdoc.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LearnerDocUpdateOne is the builder for updating a single LearnerDoc entity.
type LearnerDocUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearnerDocMutation
}

// SetDocument sets the "document" field.
func (_u *LearnerDocUpdateOne) SetDocument(v map[string]interface{}) *LearnerDocUpdateOne {
	_u.mutation.SetDocument(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LearnerDocUpdateOne) SetUpdatedAt(v time.Time) *LearnerDocUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LearnerDocMutation object of the builder.
func (_u *LearnerDocUpdateOne) Mutation() *LearnerDocMutation {
	return _u.mutation
}

// Where appends a list predicates to the LearnerDocUpdate builder.
func (_u *LearnerDocUpdateOne) Where(ps ...predicate.LearnerDoc) *LearnerDocUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LearnerDocUpdateOne) Select(field string, fields ...string) *LearnerDocUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LearnerDoc entity.
func (_u *LearnerDocUpdateOne) Save(ctx context.Context) (*LearnerDoc, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearnerDocUpdateOne) SaveX(ctx context.Context) *LearnerDoc {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LearnerDocUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearnerDocUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LearnerDocUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := learnerdoc.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *LearnerDocUpdateOne) sqlSave(ctx context.Context) (_node *LearnerDoc, err error) {
	_spec := sqlgraph.NewUpdateSpec(learnerdoc.Table, learnerdoc.Columns, sqlgraph.NewFieldSpec(learnerdoc.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LearnerDoc.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learnerdoc.FieldID)
		for _, f := range fields {
			if !learnerdoc.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learnerdoc.FieldID {
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
	if value, ok := _u.mutation.Document(); ok {
		_spec.SetField(learnerdoc.FieldDocument, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(learnerdoc.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &LearnerDoc{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learnerdoc.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
