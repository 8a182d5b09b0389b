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
	"github.com/alfassih/praxis_backend/internal/repo/document"
	"github.com/alfassih/praxis_backend/internal/repo/patient"
	"github.com/alfassih/praxis_backend/internal/repo/predicate"
	"github.com/alfassih/praxis_backend/internal/repo/session"
	"github.com/google/uuid"
)

// PatientUpdate is the builder for updating Patient entities.
type PatientUpdate struct {
	config
	hooks    []Hook
	mutation *PatientMutation
}

// Where appends a list predicates to the PatientUpdate builder.
func (_u *PatientUpdate) Where(ps ...predicate.Patient) *PatientUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PatientUpdate) SetUpdatedAt(v time.Time) *PatientUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *PatientUpdate) SetFirstName(v string) *PatientUpdate {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableFirstName(v *string) *PatientUpdate {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *PatientUpdate) SetLastName(v string) *PatientUpdate {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableLastName(v *string) *PatientUpdate {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// SetDateOfBirth sets the "date_of_birth" field.
func (_u *PatientUpdate) SetDateOfBirth(v time.Time) *PatientUpdate {
	_u.mutation.SetDateOfBirth(v)
	return _u
}

// SetNillableDateOfBirth sets the "date_of_birth" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableDateOfBirth(v *time.Time) *PatientUpdate {
	if v != nil {
		_u.SetDateOfBirth(*v)
	}
	return _u
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (_u *PatientUpdate) ClearDateOfBirth() *PatientUpdate {
	_u.mutation.ClearDateOfBirth()
	return _u
}

// SetContactInfo sets the "contact_info" field.
func (_u *PatientUpdate) SetContactInfo(v string) *PatientUpdate {
	_u.mutation.SetContactInfo(v)
	return _u
}

// SetNillableContactInfo sets the "contact_info" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableContactInfo(v *string) *PatientUpdate {
	if v != nil {
		_u.SetContactInfo(*v)
	}
	return _u
}

// ClearContactInfo clears the value of the "contact_info" field.
func (_u *PatientUpdate) ClearContactInfo() *PatientUpdate {
	_u.mutation.ClearContactInfo()
	return _u
}

// SetAnamnesis sets the "anamnesis" field.
func (_u *PatientUpdate) SetAnamnesis(v string) *PatientUpdate {
	_u.mutation.SetAnamnesis(v)
	return _u
}

// SetNillableAnamnesis sets the "anamnesis" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableAnamnesis(v *string) *PatientUpdate {
	if v != nil {
		_u.SetAnamnesis(*v)
	}
	return _u
}

// ClearAnamnesis clears the value of the "anamnesis" field.
func (_u *PatientUpdate) ClearAnamnesis() *PatientUpdate {
	_u.mutation.ClearAnamnesis()
	return _u
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_u *PatientUpdate) AddDocumentIDs(ids ...uuid.UUID) *PatientUpdate {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_u *PatientUpdate) AddDocuments(v ...*Document) *PatientUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// AddSessionIDs adds the "sessions" edge to the Session entity by IDs.
func (_u *PatientUpdate) AddSessionIDs(ids ...uuid.UUID) *PatientUpdate {
	_u.mutation.AddSessionIDs(ids...)
	return _u
}

// AddSessions adds the "sessions" edges to the Session entity.
func (_u *PatientUpdate) AddSessions(v ...*Session) *PatientUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSessionIDs(ids...)
}

// Mutation returns the PatientMutation object of the builder.
func (_u *PatientUpdate) Mutation() *PatientMutation {
	return _u.mutation
}

// ClearDocuments clears all "documents" edges to the Document entity.
func (_u *PatientUpdate) ClearDocuments() *PatientUpdate {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to Document entities by IDs.
func (_u *PatientUpdate) RemoveDocumentIDs(ids ...uuid.UUID) *PatientUpdate {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to Document entities.
func (_u *PatientUpdate) RemoveDocuments(v ...*Document) *PatientUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// ClearSessions clears all "sessions" edges to the Session entity.
func (_u *PatientUpdate) ClearSessions() *PatientUpdate {
	_u.mutation.ClearSessions()
	return _u
}

// RemoveSessionIDs removes the "sessions" edge to Session entities by IDs.
func (_u *PatientUpdate) RemoveSessionIDs(ids ...uuid.UUID) *PatientUpdate {
	_u.mutation.RemoveSessionIDs(ids...)
	return _u
}

// RemoveSessions removes "sessions" edges to Session entities.
func (_u *PatientUpdate) RemoveSessions(v ...*Session) *PatientUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSessionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PatientUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PatientUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PatientUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := patient.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatientUpdate) check() error {
	if v, ok := _u.mutation.FirstName(); ok {
		if err := patient.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`repo: validator failed for field "Patient.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastName(); ok {
		if err := patient.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`repo: validator failed for field "Patient.last_name": %w`, err)}
		}
	}
	return nil
}

func (_u *PatientUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patient.Table, patient.Columns, sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(patient.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(patient.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(patient.FieldLastName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DateOfBirth(); ok {
		_spec.SetField(patient.FieldDateOfBirth, field.TypeTime, value)
	}
	if _u.mutation.DateOfBirthCleared() {
		_spec.ClearField(patient.FieldDateOfBirth, field.TypeTime)
	}
	if value, ok := _u.mutation.ContactInfo(); ok {
		_spec.SetField(patient.FieldContactInfo, field.TypeString, value)
	}
	if _u.mutation.ContactInfoCleared() {
		_spec.ClearField(patient.FieldContactInfo, field.TypeString)
	}
	if value, ok := _u.mutation.Anamnesis(); ok {
		_spec.SetField(patient.FieldAnamnesis, field.TypeString, value)
	}
	if _u.mutation.AnamnesisCleared() {
		_spec.ClearField(patient.FieldAnamnesis, field.TypeString)
	}
	if _u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.DocumentsTable,
			Columns: []string{patient.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.DocumentsTable,
			Columns: []string{patient.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.DocumentsTable,
			Columns: []string{patient.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
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
			Table:   patient.SessionsTable,
			Columns: []string{patient.SessionsColumn},
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
			Table:   patient.SessionsTable,
			Columns: []string{patient.SessionsColumn},
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
			Table:   patient.SessionsTable,
			Columns: []string{patient.SessionsColumn},
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
			err = &NotFoundError{patient.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PatientUpdateOne is the builder for updating a single Patient entity.
type PatientUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PatientMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PatientUpdateOne) SetUpdatedAt(v time.Time) *PatientUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *PatientUpdateOne) SetFirstName(v string) *PatientUpdateOne {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableFirstName(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *PatientUpdateOne) SetLastName(v string) *PatientUpdateOne {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableLastName(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// SetDateOfBirth sets the "date_of_birth" field.
func (_u *PatientUpdateOne) SetDateOfBirth(v time.Time) *PatientUpdateOne {
	_u.mutation.SetDateOfBirth(v)
	return _u
}

// SetNillableDateOfBirth sets the "date_of_birth" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableDateOfBirth(v *time.Time) *PatientUpdateOne {
	if v != nil {
		_u.SetDateOfBirth(*v)
	}
	return _u
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (_u *PatientUpdateOne) ClearDateOfBirth() *PatientUpdateOne {
	_u.mutation.ClearDateOfBirth()
	return _u
}

// SetContactInfo sets the "contact_info" field.
func (_u *PatientUpdateOne) SetContactInfo(v string) *PatientUpdateOne {
	_u.mutation.SetContactInfo(v)
	return _u
}

// SetNillableContactInfo sets the "contact_info" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableContactInfo(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetContactInfo(*v)
	}
	return _u
}

// ClearContactInfo clears the value of the "contact_info" field.
func (_u *PatientUpdateOne) ClearContactInfo() *PatientUpdateOne {
	_u.mutation.ClearContactInfo()
	return _u
}

// SetAnamnesis sets the "anamnesis" field.
func (_u *PatientUpdateOne) SetAnamnesis(v string) *PatientUpdateOne {
	_u.mutation.SetAnamnesis(v)
	return _u
}

// SetNillableAnamnesis sets the "anamnesis" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableAnamnesis(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetAnamnesis(*v)
	}
	return _u
}

// ClearAnamnesis clears the value of the "anamnesis" field.
func (_u *PatientUpdateOne) ClearAnamnesis() *PatientUpdateOne {
	_u.mutation.ClearAnamnesis()
	return _u
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_u *PatientUpdateOne) AddDocumentIDs(ids ...uuid.UUID) *PatientUpdateOne {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_u *PatientUpdateOne) AddDocuments(v ...*Document) *PatientUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// AddSessionIDs adds the "sessions" edge to the Session entity by IDs.
func (_u *PatientUpdateOne) AddSessionIDs(ids ...uuid.UUID) *PatientUpdateOne {
	_u.mutation.AddSessionIDs(ids...)
	return _u
}

// AddSessions adds the "sessions" edges to the Session entity.
func (_u *PatientUpdateOne) AddSessions(v ...*Session) *PatientUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSessionIDs(ids...)
}

// Mutation returns the PatientMutation object of the builder.
func (_u *PatientUpdateOne) Mutation() *PatientMutation {
	return _u.mutation
}

// ClearDocuments clears all "documents" edges to the Document entity.
func (_u *PatientUpdateOne) ClearDocuments() *PatientUpdateOne {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to Document entities by IDs.
func (_u *PatientUpdateOne) RemoveDocumentIDs(ids ...uuid.UUID) *PatientUpdateOne {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to Document entities.
func (_u *PatientUpdateOne) RemoveDocuments(v ...*Document) *PatientUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// ClearSessions clears all "sessions" edges to the Session entity.
func (_u *PatientUpdateOne) ClearSessions() *PatientUpdateOne {
	_u.mutation.ClearSessions()
	return _u
}

// RemoveSessionIDs removes the "sessions" edge to Session entities by IDs.
func (_u *PatientUpdateOne) RemoveSessionIDs(ids ...uuid.UUID) *PatientUpdateOne {
	_u.mutation.RemoveSessionIDs(ids...)
	return _u
}

// RemoveSessions removes "sessions" edges to Session entities.
func (_u *PatientUpdateOne) RemoveSessions(v ...*Session) *PatientUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSessionIDs(ids...)
}

// Where appends a list predicates to the PatientUpdate builder.
func (_u *PatientUpdateOne) Where(ps ...predicate.Patient) *PatientUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PatientUpdateOne) Select(field string, fields ...string) *PatientUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Patient entity.
func (_u *PatientUpdateOne) Save(ctx context.Context) (*Patient, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientUpdateOne) SaveX(ctx context.Context) *Patient {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PatientUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PatientUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := patient.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatientUpdateOne) check() error {
	if v, ok := _u.mutation.FirstName(); ok {
		if err := patient.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`repo: validator failed for field "Patient.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastName(); ok {
		if err := patient.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`repo: validator failed for field "Patient.last_name": %w`, err)}
		}
	}
	return nil
}

func (_u *PatientUpdateOne) sqlSave(ctx context.Context) (_node *Patient, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patient.Table, patient.Columns, sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Patient.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, patient.FieldID)
		for _, f := range fields {
			if !patient.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != patient.FieldID {
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
		_spec.SetField(patient.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(patient.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(patient.FieldLastName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DateOfBirth(); ok {
		_spec.SetField(patient.FieldDateOfBirth, field.TypeTime, value)
	}
	if _u.mutation.DateOfBirthCleared() {
		_spec.ClearField(patient.FieldDateOfBirth, field.TypeTime)
	}
	if value, ok := _u.mutation.ContactInfo(); ok {
		_spec.SetField(patient.FieldContactInfo, field.TypeString, value)
	}
	if _u.mutation.ContactInfoCleared() {
		_spec.ClearField(patient.FieldContactInfo, field.TypeString)
	}
	if value, ok := _u.mutation.Anamnesis(); ok {
		_spec.SetField(patient.FieldAnamnesis, field.TypeString, value)
	}
	if _u.mutation.AnamnesisCleared() {
		_spec.ClearField(patient.FieldAnamnesis, field.TypeString)
	}
	if _u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.DocumentsTable,
			Columns: []string{patient.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.DocumentsTable,
			Columns: []string{patient.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.DocumentsTable,
			Columns: []string{patient.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
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
			Table:   patient.SessionsTable,
			Columns: []string{patient.SessionsColumn},
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
			Table:   patient.SessionsTable,
			Columns: []string{patient.SessionsColumn},
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
			Table:   patient.SessionsTable,
			Columns: []string{patient.SessionsColumn},
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
	_node = &Patient{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patient.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
