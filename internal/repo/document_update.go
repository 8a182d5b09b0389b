// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/alfassih/praxis_backend/internal/repo/document"
	"github.com/alfassih/praxis_backend/internal/repo/patient"
	"github.com/alfassih/praxis_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// DocumentUpdate is the builder for updating Document entities.
type DocumentUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentMutation
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdate) Where(ps ...predicate.Document) *DocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *DocumentUpdate) SetPatientID(v uuid.UUID) *DocumentUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillablePatientID(v *uuid.UUID) *DocumentUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *DocumentUpdate) SetTitle(v string) *DocumentUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableTitle(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDocumentType sets the "document_type" field.
func (_u *DocumentUpdate) SetDocumentType(v string) *DocumentUpdate {
	_u.mutation.SetDocumentType(v)
	return _u
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableDocumentType(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetDocumentType(*v)
	}
	return _u
}

// ClearDocumentType clears the value of the "document_type" field.
func (_u *DocumentUpdate) ClearDocumentType() *DocumentUpdate {
	_u.mutation.ClearDocumentType()
	return _u
}

// SetDescription sets the "description" field.
func (_u *DocumentUpdate) SetDescription(v string) *DocumentUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableDescription(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *DocumentUpdate) ClearDescription() *DocumentUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetFilename sets the "filename" field.
func (_u *DocumentUpdate) SetFilename(v string) *DocumentUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFilename(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *DocumentUpdate) SetPatient(v *Patient) *DocumentUpdate {
	return _u.SetPatientID(v.ID)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdate) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *DocumentUpdate) ClearPatient() *DocumentUpdate {
	_u.mutation.ClearPatient()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := document.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "Document.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocumentType(); ok {
		if err := document.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`repo: validator failed for field "Document.document_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filename(); ok {
		if err := document.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`repo: validator failed for field "Document.filename": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Document.patient"`)
	}
	return nil
}

func (_u *DocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(document.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentType(); ok {
		_spec.SetField(document.FieldDocumentType, field.TypeString, value)
	}
	if _u.mutation.DocumentTypeCleared() {
		_spec.ClearField(document.FieldDocumentType, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(document.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(document.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(document.FieldFilename, field.TypeString, value)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.PatientTable,
			Columns: []string{document.PatientColumn},
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
			Table:   document.PatientTable,
			Columns: []string{document.PatientColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentUpdateOne is the builder for updating a single Document entity.
type DocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentMutation
}

// SetPatientID sets the "patient_id" field.
func (_u *DocumentUpdateOne) SetPatientID(v uuid.UUID) *DocumentUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillablePatientID(v *uuid.UUID) *DocumentUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *DocumentUpdateOne) SetTitle(v string) *DocumentUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableTitle(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDocumentType sets the "document_type" field.
func (_u *DocumentUpdateOne) SetDocumentType(v string) *DocumentUpdateOne {
	_u.mutation.SetDocumentType(v)
	return _u
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableDocumentType(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetDocumentType(*v)
	}
	return _u
}

// ClearDocumentType clears the value of the "document_type" field.
func (_u *DocumentUpdateOne) ClearDocumentType() *DocumentUpdateOne {
	_u.mutation.ClearDocumentType()
	return _u
}

// SetDescription sets the "description" field.
func (_u *DocumentUpdateOne) SetDescription(v string) *DocumentUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableDescription(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *DocumentUpdateOne) ClearDescription() *DocumentUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetFilename sets the "filename" field.
func (_u *DocumentUpdateOne) SetFilename(v string) *DocumentUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFilename(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *DocumentUpdateOne) SetPatient(v *Patient) *DocumentUpdateOne {
	return _u.SetPatientID(v.ID)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdateOne) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *DocumentUpdateOne) ClearPatient() *DocumentUpdateOne {
	_u.mutation.ClearPatient()
	return _u
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdateOne) Where(ps ...predicate.Document) *DocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentUpdateOne) Select(field string, fields ...string) *DocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Document entity.
func (_u *DocumentUpdateOne) Save(ctx context.Context) (*Document, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdateOne) SaveX(ctx context.Context) *Document {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := document.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "Document.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocumentType(); ok {
		if err := document.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`repo: validator failed for field "Document.document_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filename(); ok {
		if err := document.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`repo: validator failed for field "Document.filename": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Document.patient"`)
	}
	return nil
}

func (_u *DocumentUpdateOne) sqlSave(ctx context.Context) (_node *Document, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Document.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, document.FieldID)
		for _, f := range fields {
			if !document.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != document.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(document.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentType(); ok {
		_spec.SetField(document.FieldDocumentType, field.TypeString, value)
	}
	if _u.mutation.DocumentTypeCleared() {
		_spec.ClearField(document.FieldDocumentType, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(document.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(document.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(document.FieldFilename, field.TypeString, value)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.PatientTable,
			Columns: []string{document.PatientColumn},
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
			Table:   document.PatientTable,
			Columns: []string{document.PatientColumn},
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
	_node = &Document{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
