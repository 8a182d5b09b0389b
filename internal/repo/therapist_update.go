// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/alfassih/praxis_backend/internal/repo/predicate"
	"github.com/alfassih/praxis_backend/internal/repo/session"
	"github.com/alfassih/praxis_backend/internal/repo/therapist"
	"github.com/alfassih/praxis_backend/internal/repo/user"
	"github.com/google/uuid"
)

// TherapistUpdate is the builder for updating Therapist entities.
type TherapistUpdate struct {
	config
	hooks    []Hook
	mutation *TherapistMutation
}

// Where appends a list predicates to the TherapistUpdate builder.
func (_u *TherapistUpdate) Where(ps ...predicate.Therapist) *TherapistUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TherapistUpdate) SetUpdatedAt(v time.Time) *TherapistUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *TherapistUpdate) SetFirstName(v string) *TherapistUpdate {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *TherapistUpdate) SetNillableFirstName(v *string) *TherapistUpdate {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *TherapistUpdate) SetLastName(v string) *TherapistUpdate {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *TherapistUpdate) SetNillableLastName(v *string) *TherapistUpdate {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// SetSpecialization sets the "specialization" field.
func (_u *TherapistUpdate) SetSpecialization(v string) *TherapistUpdate {
	_u.mutation.SetSpecialization(v)
	return _u
}

// SetNillableSpecialization sets the "specialization" field if the given value is not nil.
func (_u *TherapistUpdate) SetNillableSpecialization(v *string) *TherapistUpdate {
	if v != nil {
		_u.SetSpecialization(*v)
	}
	return _u
}

// ClearSpecialization clears the value of the "specialization" field.
func (_u *TherapistUpdate) ClearSpecialization() *TherapistUpdate {
	_u.mutation.ClearSpecialization()
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *TherapistUpdate) SetUserID(v uuid.UUID) *TherapistUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TherapistUpdate) SetNillableUserID(v *uuid.UUID) *TherapistUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *TherapistUpdate) ClearUserID() *TherapistUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *TherapistUpdate) SetUser(v *User) *TherapistUpdate {
	return _u.SetUserID(v.ID)
}

// AddSessionIDs adds the "sessions" edge to the Session entity by IDs.
func (_u *TherapistUpdate) AddSessionIDs(ids ...uuid.UUID) *TherapistUpdate {
	_u.mutation.AddSessionIDs(ids...)
	return _u
}

// AddSessions adds the "sessions" edges to the Session entity.
func (_u *TherapistUpdate) AddSessions(v ...*Session) *TherapistUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSessionIDs(ids...)
}

// Mutation returns the TherapistMutation object of the builder.
func (_u *TherapistUpdate) Mutation() *TherapistMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *TherapistUpdate) ClearUser() *TherapistUpdate {
	_u.mutation.ClearUser()
	return _u
}

// ClearSessions clears all "sessions" edges to the Session entity.
func (_u *TherapistUpdate) ClearSessions() *TherapistUpdate {
	_u.mutation.ClearSessions()
	return _u
}

// RemoveSessionIDs removes the "sessions" edge to Session entities by IDs.
func (_u *TherapistUpdate) RemoveSessionIDs(ids ...uuid.UUID) *TherapistUpdate {
	_u.mutation.RemoveSessionIDs(ids...)
	return _u
}

// RemoveSessions removes "sessions" edges to Session entities.
func (_u *TherapistUpdate) RemoveSessions(v ...*Session) *TherapistUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSessionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TherapistUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TherapistUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TherapistUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TherapistUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TherapistUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := therapist.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TherapistUpdate) check() error {
	if v, ok := _u.mutation.FirstName(); ok {
		if err := therapist.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`repo: validator failed for field "Therapist.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastName(); ok {
		if err := therapist.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`repo: validator failed for field "Therapist.last_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Specialization(); ok {
		if err := therapist.SpecializationValidator(v); err != nil {
			return &ValidationError{Name: "specialization", err: fmt.Errorf(`repo: validator failed for field "Therapist.specialization": %w`, err)}
		}
	}
	return nil
}

func (_u *TherapistUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(therapist.Table, therapist.Columns, sqlgraph.NewFieldSpec(therapist.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(therapist.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(therapist.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(therapist.FieldLastName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Specialization(); ok {
		_spec.SetField(therapist.FieldSpecialization, field.TypeString, value)
	}
	if _u.mutation.SpecializationCleared() {
		_spec.ClearField(therapist.FieldSpecialization, field.TypeString)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   therapist.UserTable,
			Columns: []string{therapist.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   therapist.UserTable,
			Columns: []string{therapist.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   therapist.SessionsTable,
			Columns: []string{therapist.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSessionsIDs(); len(nodes) > 0 && !_u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   therapist.SessionsTable,
			Columns: []string{therapist.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   therapist.SessionsTable,
			Columns: []string{therapist.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{therapist.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TherapistUpdateOne is the builder for updating a single Therapist entity.
type TherapistUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TherapistMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TherapistUpdateOne) SetUpdatedAt(v time.Time) *TherapistUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *TherapistUpdateOne) SetFirstName(v string) *TherapistUpdateOne {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *TherapistUpdateOne) SetNillableFirstName(v *string) *TherapistUpdateOne {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *TherapistUpdateOne) SetLastName(v string) *TherapistUpdateOne {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *TherapistUpdateOne) SetNillableLastName(v *string) *TherapistUpdateOne {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// SetSpecialization sets the "specialization" field.
func (_u *TherapistUpdateOne) SetSpecialization(v string) *TherapistUpdateOne {
	_u.mutation.SetSpecialization(v)
	return _u
}

// SetNillableSpecialization sets the "specialization" field if the given value is not nil.
func (_u *TherapistUpdateOne) SetNillableSpecialization(v *string) *TherapistUpdateOne {
	if v != nil {
		_u.SetSpecialization(*v)
	}
	return _u
}

// ClearSpecialization clears the value of the "specialization" field.
func (_u *TherapistUpdateOne) ClearSpecialization() *TherapistUpdateOne {
	_u.mutation.ClearSpecialization()
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *TherapistUpdateOne) SetUserID(v uuid.UUID) *TherapistUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TherapistUpdateOne) SetNillableUserID(v *uuid.UUID) *TherapistUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *TherapistUpdateOne) ClearUserID() *TherapistUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *TherapistUpdateOne) SetUser(v *User) *TherapistUpdateOne {
	return _u.SetUserID(v.ID)
}

// AddSessionIDs adds the "sessions" edge to the Session entity by IDs.
func (_u *TherapistUpdateOne) AddSessionIDs(ids ...uuid.UUID) *TherapistUpdateOne {
	_u.mutation.AddSessionIDs(ids...)
	return _u
}

// AddSessions adds the "sessions" edges to the Session entity.
func (_u *TherapistUpdateOne) AddSessions(v ...*Session) *TherapistUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSessionIDs(ids...)
}

// Mutation returns the TherapistMutation object of the builder.
func (_u *TherapistUpdateOne) Mutation() *TherapistMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *TherapistUpdateOne) ClearUser() *TherapistUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// ClearSessions clears all "sessions" edges to the Session entity.
func (_u *TherapistUpdateOne) ClearSessions() *TherapistUpdateOne {
	_u.mutation.ClearSessions()
	return _u
}

// RemoveSessionIDs removes the "sessions" edge to Session entities by IDs.
func (_u *TherapistUpdateOne) RemoveSessionIDs(ids ...uuid.UUID) *TherapistUpdateOne {
	_u.mutation.RemoveSessionIDs(ids...)
	return _u
}

// RemoveSessions removes "sessions" edges to Session entities.
func (_u *TherapistUpdateOne) RemoveSessions(v ...*Session) *TherapistUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSessionIDs(ids...)
}

// Where appends a list predicates to the TherapistUpdate builder.
func (_u *TherapistUpdateOne) Where(ps ...predicate.Therapist) *TherapistUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TherapistUpdateOne) Select(field string, fields ...string) *TherapistUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Therapist entity.
func (_u *TherapistUpdateOne) Save(ctx context.Context) (*Therapist, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TherapistUpdateOne) SaveX(ctx context.Context) *Therapist {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TherapistUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TherapistUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TherapistUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := therapist.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TherapistUpdateOne) check() error {
	if v, ok := _u.mutation.FirstName(); ok {
		if err := therapist.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`repo: validator failed for field "Therapist.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastName(); ok {
		if err := therapist.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`repo: validator failed for field "Therapist.last_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Specialization(); ok {
		if err := therapist.SpecializationValidator(v); err != nil {
			return &ValidationError{Name: "specialization", err: fmt.Errorf(`repo: validator failed for field "Therapist.specialization": %w`, err)}
		}
	}
	return nil
}

func (_u *TherapistUpdateOne) sqlSave(ctx context.Context) (_node *Therapist, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(therapist.Table, therapist.Columns, sqlgraph.NewFieldSpec(therapist.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Therapist.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, therapist.FieldID)
		for _, f := range fields {
			if !therapist.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != therapist.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(therapist.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(therapist.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(therapist.FieldLastName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Specialization(); ok {
		_spec.SetField(therapist.FieldSpecialization, field.TypeString, value)
	}
	if _u.mutation.SpecializationCleared() {
		_spec.ClearField(therapist.FieldSpecialization, field.TypeString)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   therapist.UserTable,
			Columns: []string{therapist.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   therapist.UserTable,
			Columns: []string{therapist.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   therapist.SessionsTable,
			Columns: []string{therapist.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSessionsIDs(); len(nodes) > 0 && !_u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   therapist.SessionsTable,
			Columns: []string{therapist.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   therapist.SessionsTable,
			Columns: []string{therapist.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Therapist{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{therapist.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
