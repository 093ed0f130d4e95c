// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/tutord/ent/breakevent"
	"github.com/abhisek/tutord/ent/predicate"
)

// BreakEventUpdate is the builder for updating BreakEvent entities.
type BreakEventUpdate struct {
	config
	hooks    []Hook
	mutation *BreakEventMutation
}

// Where appends a list predicates to the BreakEventUpdate builder.
func (_u *BreakEventUpdate) Where(ps ...predicate.BreakEvent) *BreakEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *BreakEventUpdate) SetLearnerID(v string) *BreakEventUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *BreakEventUpdate) SetNillableLearnerID(v *string) *BreakEventUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *BreakEventUpdate) SetTopic(v string) *BreakEventUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *BreakEventUpdate) SetNillableTopic(v *string) *BreakEventUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *BreakEventUpdate) SetAction(v string) *BreakEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *BreakEventUpdate) SetNillableAction(v *string) *BreakEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetUrgency sets the "urgency" field.
func (_u *BreakEventUpdate) SetUrgency(v string) *BreakEventUpdate {
	_u.mutation.SetUrgency(v)
	return _u
}

// SetNillableUrgency sets the "urgency" field if the given value is not nil.
func (_u *BreakEventUpdate) SetNillableUrgency(v *string) *BreakEventUpdate {
	if v != nil {
		_u.SetUrgency(*v)
	}
	return _u
}

// ClearUrgency clears the value of the "urgency" field.
func (_u *BreakEventUpdate) ClearUrgency() *BreakEventUpdate {
	_u.mutation.ClearUrgency()
	return _u
}

// SetReason sets the "reason" field.
func (_u *BreakEventUpdate) SetReason(v string) *BreakEventUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *BreakEventUpdate) SetNillableReason(v *string) *BreakEventUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *BreakEventUpdate) ClearReason() *BreakEventUpdate {
	_u.mutation.ClearReason()
	return _u
}

// Mutation returns the BreakEventMutation object of the builder.
func (_u *BreakEventUpdate) Mutation() *BreakEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BreakEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BreakEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BreakEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BreakEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BreakEventUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := breakevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "BreakEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := breakevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "BreakEvent.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := breakevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "BreakEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *BreakEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(breakevent.Table, breakevent.Columns, sqlgraph.NewFieldSpec(breakevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(breakevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(breakevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(breakevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Urgency(); ok {
		_spec.SetField(breakevent.FieldUrgency, field.TypeString, value)
	}
	if _u.mutation.UrgencyCleared() {
		_spec.ClearField(breakevent.FieldUrgency, field.TypeString)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(breakevent.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(breakevent.FieldReason, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{breakevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BreakEventUpdateOne is the builder for updating a single BreakEvent entity.
type BreakEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BreakEventMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *BreakEventUpdateOne) SetLearnerID(v string) *BreakEventUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *BreakEventUpdateOne) SetNillableLearnerID(v *string) *BreakEventUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *BreakEventUpdateOne) SetTopic(v string) *BreakEventUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *BreakEventUpdateOne) SetNillableTopic(v *string) *BreakEventUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *BreakEventUpdateOne) SetAction(v string) *BreakEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *BreakEventUpdateOne) SetNillableAction(v *string) *BreakEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetUrgency sets the "urgency" field.
func (_u *BreakEventUpdateOne) SetUrgency(v string) *BreakEventUpdateOne {
	_u.mutation.SetUrgency(v)
	return _u
}

// SetNillableUrgency sets the "urgency" field if the given value is not nil.
func (_u *BreakEventUpdateOne) SetNillableUrgency(v *string) *BreakEventUpdateOne {
	if v != nil {
		_u.SetUrgency(*v)
	}
	return _u
}

// ClearUrgency clears the value of the "urgency" field.
func (_u *BreakEventUpdateOne) ClearUrgency() *BreakEventUpdateOne {
	_u.mutation.ClearUrgency()
	return _u
}

// SetReason sets the "reason" field.
func (_u *BreakEventUpdateOne) SetReason(v string) *BreakEventUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *BreakEventUpdateOne) SetNillableReason(v *string) *BreakEventUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *BreakEventUpdateOne) ClearReason() *BreakEventUpdateOne {
	_u.mutation.ClearReason()
	return _u
}

// Mutation returns the BreakEventMutation object of the builder.
func (_u *BreakEventUpdateOne) Mutation() *BreakEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the BreakEventUpdate builder.
func (_u *BreakEventUpdateOne) Where(ps ...predicate.BreakEvent) *BreakEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BreakEventUpdateOne) Select(field string, fields ...string) *BreakEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BreakEvent entity.
func (_u *BreakEventUpdateOne) Save(ctx context.Context) (*BreakEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BreakEventUpdateOne) SaveX(ctx context.Context) *BreakEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BreakEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BreakEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BreakEventUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := breakevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "BreakEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := breakevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "BreakEvent.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := breakevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "BreakEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *BreakEventUpdateOne) sqlSave(ctx context.Context) (_node *BreakEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(breakevent.Table, breakevent.Columns, sqlgraph.NewFieldSpec(breakevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BreakEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, breakevent.FieldID)
		for _, f := range fields {
			if !breakevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != breakevent.FieldID {
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
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(breakevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(breakevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(breakevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Urgency(); ok {
		_spec.SetField(breakevent.FieldUrgency, field.TypeString, value)
	}
	if _u.mutation.UrgencyCleared() {
		_spec.ClearField(breakevent.FieldUrgency, field.TypeString)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(breakevent.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(breakevent.FieldReason, field.TypeString)
	}
	_node = &BreakEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{breakevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
