// Code generated by ent, DO NOT EDIT.

package patient

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/alfassih/praxis_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldUpdatedAt, v))
}

// FirstName applies equality check predicate on the "first_name" field. It's identical to FirstNameEQ.
func FirstName(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldFirstName, v))
}

// LastName applies equality check predicate on the "last_name" field. It's identical to LastNameEQ.
func LastName(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldLastName, v))
}

// DateOfBirth applies equality check predicate on the "date_of_birth" field. It's identical to DateOfBirthEQ.
func DateOfBirth(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldDateOfBirth, v))
}

// ContactInfo applies equality check predicate on the "contact_info" field. It's identical to ContactInfoEQ.
func ContactInfo(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldContactInfo, v))
}

// Anamnesis applies equality check predicate on the "anamnesis" field. It's identical to AnamnesisEQ.
func Anamnesis(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldAnamnesis, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldUpdatedAt, v))
}

// FirstNameEQ applies the EQ predicate on the "first_name" field.
func FirstNameEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldFirstName, v))
}

// FirstNameNEQ applies the NEQ predicate on the "first_name" field.
func FirstNameNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldFirstName, v))
}

// FirstNameIn applies the In predicate on the "first_name" field.
func FirstNameIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldFirstName, vs...))
}

// FirstNameNotIn applies the NotIn predicate on the "first_name" field.
func FirstNameNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldFirstName, vs...))
}

// FirstNameGT applies the GT predicate on the "first_name" field.
func FirstNameGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldFirstName, v))
}

// FirstNameGTE applies the GTE predicate on the "first_name" field.
func FirstNameGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldFirstName, v))
}

// FirstNameLT applies the LT predicate on the "first_name" field.
func FirstNameLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldFirstName, v))
}

// FirstNameLTE applies the LTE predicate on the "first_name" field.
func FirstNameLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldFirstName, v))
}

// FirstNameContains applies the Contains predicate on the "first_name" field.
func FirstNameContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldFirstName, v))
}

// FirstNameHasPrefix applies the HasPrefix predicate on the "first_name" field.
func FirstNameHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldFirstName, v))
}

// FirstNameHasSuffix applies the HasSuffix predicate on the "first_name" field.
func FirstNameHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldFirstName, v))
}

// FirstNameEqualFold applies the EqualFold predicate on the "first_name" field.
func FirstNameEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldFirstName, v))
}

// FirstNameContainsFold applies the ContainsFold predicate on the "first_name" field.
func FirstNameContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldFirstName, v))
}

// LastNameEQ applies the EQ predicate on the "last_name" field.
func LastNameEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldLastName, v))
}

// LastNameNEQ applies the NEQ predicate on the "last_name" field.
func LastNameNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldLastName, v))
}

// LastNameIn applies the In predicate on the "last_name" field.
func LastNameIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldLastName, vs...))
}

// LastNameNotIn applies the NotIn predicate on the "last_name" field.
func LastNameNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldLastName, vs...))
}

// LastNameGT applies the GT predicate on the "last_name" field.
func LastNameGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldLastName, v))
}

// LastNameGTE applies the GTE predicate on the "last_name" field.
func LastNameGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldLastName, v))
}

// LastNameLT applies the LT predicate on the "last_name" field.
func LastNameLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldLastName, v))
}

// LastNameLTE applies the LTE predicate on the "last_name" field.
func LastNameLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldLastName, v))
}

// LastNameContains applies the Contains predicate on the "last_name" field.
func LastNameContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldLastName, v))
}

// LastNameHasPrefix applies the HasPrefix predicate on the "last_name" field.
func LastNameHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldLastName, v))
}

// LastNameHasSuffix applies the HasSuffix predicate on the "last_name" field.
func LastNameHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldLastName, v))
}

// LastNameEqualFold applies the EqualFold predicate on the "last_name" field.
func LastNameEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldLastName, v))
}

// LastNameContainsFold applies the ContainsFold predicate on the "last_name" field.
func LastNameContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldLastName, v))
}

// DateOfBirthEQ applies the EQ predicate on the "date_of_birth" field.
func DateOfBirthEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldDateOfBirth, v))
}

// DateOfBirthNEQ applies the NEQ predicate on the "date_of_birth" field.
func DateOfBirthNEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldDateOfBirth, v))
}

// DateOfBirthIn applies the In predicate on the "date_of_birth" field.
func DateOfBirthIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldDateOfBirth, vs...))
}

// DateOfBirthNotIn applies the NotIn predicate on the "date_of_birth" field.
func DateOfBirthNotIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldDateOfBirth, vs...))
}

// DateOfBirthGT applies the GT predicate on the "date_of_birth" field.
func DateOfBirthGT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldDateOfBirth, v))
}

// DateOfBirthGTE applies the GTE predicate on the "date_of_birth" field.
func DateOfBirthGTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldDateOfBirth, v))
}

// DateOfBirthLT applies the LT predicate on the "date_of_birth" field.
func DateOfBirthLT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldDateOfBirth, v))
}

// DateOfBirthLTE applies the LTE predicate on the "date_of_birth" field.
func DateOfBirthLTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldDateOfBirth, v))
}

// DateOfBirthIsNil applies the IsNil predicate on the "date_of_birth" field.
func DateOfBirthIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldDateOfBirth))
}

// DateOfBirthNotNil applies the NotNil predicate on the "date_of_birth" field.
func DateOfBirthNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldDateOfBirth))
}

// ContactInfoEQ applies the EQ predicate on the "contact_info" field.
func ContactInfoEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldContactInfo, v))
}

// ContactInfoNEQ applies the NEQ predicate on the "contact_info" field.
func ContactInfoNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldContactInfo, v))
}

// ContactInfoIn applies the In predicate on the "contact_info" field.
func ContactInfoIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldContactInfo, vs...))
}

// ContactInfoNotIn applies the NotIn predicate on the "contact_info" field.
func ContactInfoNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldContactInfo, vs...))
}

// ContactInfoGT applies the GT predicate on the "contact_info" field.
func ContactInfoGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldContactInfo, v))
}

// ContactInfoGTE applies the GTE predicate on the "contact_info" field.
func ContactInfoGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldContactInfo, v))
}

// ContactInfoLT applies the LT predicate on the "contact_info" field.
func ContactInfoLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldContactInfo, v))
}

// ContactInfoLTE applies the LTE predicate on the "contact_info" field.
func ContactInfoLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldContactInfo, v))
}

// ContactInfoContains applies the Contains predicate on the "contact_info" field.
func ContactInfoContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldContactInfo, v))
}

// ContactInfoHasPrefix applies the HasPrefix predicate on the "contact_info" field.
func ContactInfoHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldContactInfo, v))
}

// ContactInfoHasSuffix applies the HasSuffix predicate on the "contact_info" field.
func ContactInfoHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldContactInfo, v))
}

// ContactInfoIsNil applies the IsNil predicate on the "contact_info" field.
func ContactInfoIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldContactInfo))
}

// ContactInfoNotNil applies the NotNil predicate on the "contact_info" field.
func ContactInfoNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldContactInfo))
}

// ContactInfoEqualFold applies the EqualFold predicate on the "contact_info" field.
func ContactInfoEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldContactInfo, v))
}

// ContactInfoContainsFold applies the ContainsFold predicate on the "contact_info" field.
func ContactInfoContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldContactInfo, v))
}

// AnamnesisEQ applies the EQ predicate on the "anamnesis" field.
func AnamnesisEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldAnamnesis, v))
}

// AnamnesisNEQ applies the NEQ predicate on the "anamnesis" field.
func AnamnesisNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldAnamnesis, v))
}

// AnamnesisIn applies the In predicate on the "anamnesis" field.
func AnamnesisIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldAnamnesis, vs...))
}

// AnamnesisNotIn applies the NotIn predicate on the "anamnesis" field.
func AnamnesisNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldAnamnesis, vs...))
}

// AnamnesisGT applies the GT predicate on the "anamnesis" field.
func AnamnesisGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldAnamnesis, v))
}

// AnamnesisGTE applies the GTE predicate on the "anamnesis" field.
func AnamnesisGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldAnamnesis, v))
}

// AnamnesisLT applies the LT predicate on the "anamnesis" field.
func AnamnesisLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldAnamnesis, v))
}

// AnamnesisLTE applies the LTE predicate on the "anamnesis" field.
func AnamnesisLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldAnamnesis, v))
}

// AnamnesisContains applies the Contains predicate on the "anamnesis" field.
func AnamnesisContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldAnamnesis, v))
}

// AnamnesisHasPrefix applies the HasPrefix predicate on the "anamnesis" field.
func AnamnesisHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldAnamnesis, v))
}

// AnamnesisHasSuffix applies the HasSuffix predicate on the "anamnesis" field.
func AnamnesisHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldAnamnesis, v))
}

// AnamnesisIsNil applies the IsNil predicate on the "anamnesis" field.
func AnamnesisIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldAnamnesis))
}

// AnamnesisNotNil applies the NotNil predicate on the "anamnesis" field.
func AnamnesisNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldAnamnesis))
}

// AnamnesisEqualFold applies the EqualFold predicate on the "anamnesis" field.
func AnamnesisEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldAnamnesis, v))
}

// AnamnesisContainsFold applies the ContainsFold predicate on the "anamnesis" field.
func AnamnesisContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldAnamnesis, v))
}

// HasDocuments applies the HasEdge predicate on the "documents" edge.
func HasDocuments() predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DocumentsTable, DocumentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentsWith applies the HasEdge predicate on the "documents" edge with a given conditions (other predicates).
func HasDocumentsWith(preds ...predicate.Document) predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := newDocumentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSessions applies the HasEdge predicate on the "sessions" edge.
func HasSessions() predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SessionsTable, SessionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionsWith applies the HasEdge predicate on the "sessions" edge with a given conditions (other predicates).
func HasSessionsWith(preds ...predicate.Session) predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := newSessionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Patient) predicate.Patient {
	return predicate.Patient(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Patient) predicate.Patient {
	return predicate.Patient(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Patient) predicate.Patient {
	return predicate.Patient(sql.NotPredicates(p))
}
