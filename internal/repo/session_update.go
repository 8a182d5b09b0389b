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
	"github.com/alfassih/praxis_backend/internal/repo/patient"
	"github.com/alfassih/praxis_backend/internal/repo/predicate"
	"github.com/alfassih/praxis_backend/internal/repo/session"
	"github.com/alfassih/praxis_backend/internal/repo/therapist"
	"github.com/google/uuid"
)

// SessionUpdate is the builder for updating Session entities.
type SessionUpdate struct {
	config
	hooks    []Hook
	mutation *SessionMutation
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdate) Where(ps ...predicate.Session) *SessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionUpdate) SetUpdatedAt(v time.Time) *SessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *SessionUpdate) SetPatientID(v uuid.UUID) *SessionUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *SessionUpdate) SetNillablePatientID(v *uuid.UUID) *SessionUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetTherapistID sets the "therapist_id" field.
func (_u *SessionUpdate) SetTherapistID(v uuid.UUID) *SessionUpdate {
	_u.mutation.SetTherapistID(v)
	return _u
}

// SetNillableTherapistID sets the "therapist_id" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableTherapistID(v *uuid.UUID) *SessionUpdate {
	if v != nil {
		_u.SetTherapistID(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *SessionUpdate) SetStartTime(v time.Time) *SessionUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableStartTime(v *time.Time) *SessionUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *SessionUpdate) SetEndTime(v time.Time) *SessionUpdate {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableEndTime(v *time.Time) *SessionUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetSessionType sets the "session_type" field.
func (_u *SessionUpdate) SetSessionType(v string) *SessionUpdate {
	_u.mutation.SetSessionType(v)
	return _u
}

// SetNillableSessionType sets the "session_type" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableSessionType(v *string) *SessionUpdate {
	if v != nil {
		_u.SetSessionType(*v)
	}
	return _u
}

// ClearSessionType clears the value of the "session_type" field.
func (_u *SessionUpdate) ClearSessionType() *SessionUpdate {
	_u.mutation.ClearSessionType()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SessionUpdate) SetStatus(v session.Status) *SessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableStatus(v *session.Status) *SessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *SessionUpdate) SetNotes(v string) *SessionUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableNotes(v *string) *SessionUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *SessionUpdate) ClearNotes() *SessionUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *SessionUpdate) SetPatient(v *Patient) *SessionUpdate {
	return _u.SetPatientID(v.ID)
}

// SetTherapist sets the "therapist" edge to the Therapist entity.
func (_u *SessionUpdate) SetTherapist(v *Therapist) *SessionUpdate {
	return _u.SetTherapistID(v.ID)
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdate) Mutation() *SessionMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *SessionUpdate) ClearPatient() *SessionUpdate {
	_u.mutation.ClearPatient()
	return _u
}

// ClearTherapist clears the "therapist" edge to the Therapist entity.
func (_u *SessionUpdate) ClearTherapist() *SessionUpdate {
	_u.mutation.ClearTherapist()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := session.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionUpdate) check() error {
	if v, ok := _u.mutation.SessionType(); ok {
		if err := session.SessionTypeValidator(v); err != nil {
			return &ValidationError{Name: "session_type", err: fmt.Errorf(`repo: validator failed for field "Session.session_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := session.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Session.status": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Session.patient"`)
	}
	if _u.mutation.TherapistCleared() && len(_u.mutation.TherapistIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Session.therapist"`)
	}
	return nil
}

func (_u *SessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(session.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(session.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(session.FieldEndTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SessionType(); ok {
		_spec.SetField(session.FieldSessionType, field.TypeString, value)
	}
	if _u.mutation.SessionTypeCleared() {
		_spec.ClearField(session.FieldSessionType, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(session.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(session.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(session.FieldNotes, field.TypeString)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   session.PatientTable,
			Columns: []string{session.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   session.PatientTable,
			Columns: []string{session.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TherapistCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   session.TherapistTable,
			Columns: []string{session.TherapistColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(therapist.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TherapistIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   session.TherapistTable,
			Columns: []string{session.TherapistColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(therapist.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionUpdateOne is the builder for updating a single Session entity.
type SessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionUpdateOne) SetUpdatedAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *SessionUpdateOne) SetPatientID(v uuid.UUID) *SessionUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillablePatientID(v *uuid.UUID) *SessionUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetTherapistID sets the "therapist_id" field.
func (_u *SessionUpdateOne) SetTherapistID(v uuid.UUID) *SessionUpdateOne {
	_u.mutation.SetTherapistID(v)
	return _u
}

// SetNillableTherapistID sets the "therapist_id" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableTherapistID(v *uuid.UUID) *SessionUpdateOne {
	if v != nil {
		_u.SetTherapistID(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *SessionUpdateOne) SetStartTime(v time.Time) *SessionUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableStartTime(v *time.Time) *SessionUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *SessionUpdateOne) SetEndTime(v time.Time) *SessionUpdateOne {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableEndTime(v *time.Time) *SessionUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetSessionType sets the "session_type" field.
func (_u *SessionUpdateOne) SetSessionType(v string) *SessionUpdateOne {
	_u.mutation.SetSessionType(v)
	return _u
}

// SetNillableSessionType sets the "session_type" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableSessionType(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetSessionType(*v)
	}
	return _u
}

// ClearSessionType clears the value of the "session_type" field.
func (_u *SessionUpdateOne) ClearSessionType() *SessionUpdateOne {
	_u.mutation.ClearSessionType()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SessionUpdateOne) SetStatus(v session.Status) *SessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableStatus(v *session.Status) *SessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *SessionUpdateOne) SetNotes(v string) *SessionUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableNotes(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *SessionUpdateOne) ClearNotes() *SessionUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *SessionUpdateOne) SetPatient(v *Patient) *SessionUpdateOne {
	return _u.SetPatientID(v.ID)
}

// SetTherapist sets the "therapist" edge to the Therapist entity.
func (_u *SessionUpdateOne) SetTherapist(v *Therapist) *SessionUpdateOne {
	return _u.SetTherapistID(v.ID)
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdateOne) Mutation() *SessionMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *SessionUpdateOne) ClearPatient() *SessionUpdateOne {
	_u.mutation.ClearPatient()
	return _u
}

// ClearTherapist clears the "therapist" edge to the Therapist entity.
func (_u *SessionUpdateOne) ClearTherapist() *SessionUpdateOne {
	_u.mutation.ClearTherapist()
	return _u
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdateOne) Where(ps ...predicate.Session) *SessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionUpdateOne) Select(field string, fields ...string) *SessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Session entity.
func (_u *SessionUpdateOne) Save(ctx context.Context) (*Session, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdateOne) SaveX(ctx context.Context) *Session {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := session.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionUpdateOne) check() error {
	if v, ok := _u.mutation.SessionType(); ok {
		if err := session.SessionTypeValidator(v); err != nil {
			return &ValidationError{Name: "session_type", err: fmt.Errorf(`repo: validator failed for field "Session.session_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := session.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Session.status": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Session.patient"`)
	}
	if _u.mutation.TherapistCleared() && len(_u.mutation.TherapistIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Session.therapist"`)
	}
	return nil
}

func (_u *SessionUpdateOne) sqlSave(ctx context.Context) (_node *Session, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Session.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, session.FieldID)
		for _, f := range fields {
			if !session.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != session.FieldID {
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
		_spec.SetField(session.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(session.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(session.FieldEndTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SessionType(); ok {
		_spec.SetField(session.FieldSessionType, field.TypeString, value)
	}
	if _u.mutation.SessionTypeCleared() {
		_spec.ClearField(session.FieldSessionType, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(session.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(session.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(session.FieldNotes, field.TypeString)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   session.PatientTable,
			Columns: []string{session.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   session.PatientTable,
			Columns: []string{session.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TherapistCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   session.TherapistTable,
			Columns: []string{session.TherapistColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(therapist.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TherapistIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   session.TherapistTable,
			Columns: []string{session.TherapistColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(therapist.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Session{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
