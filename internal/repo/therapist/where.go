// Code generated by ent, DO NOT EDIT.

package therapist

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/alfassih/praxis_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Therapist {
	return predicate.Therapist(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Therapist {
	return predicate.Therapist(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Therapist {
	return predicate.Therapist(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Therapist {
	return predicate.Therapist(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Therapist {
	return predicate.Therapist(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Therapist {
	return predicate.Therapist(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Therapist {
	return predicate.Therapist(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Therapist {
	return predicate.Therapist(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Therapist {
	return predicate.Therapist(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Therapist {
	return predicate.Therapist(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Therapist {
	return predicate.Therapist(sql.FieldEQ(FieldUpdatedAt, v))
}

// FirstName applies equality check predicate on the "first_name" field. It's identical to FirstNameEQ.
func FirstName(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldEQ(FieldFirstName, v))
}

// LastName applies equality check predicate on the "last_name" field. It's identical to LastNameEQ.
func LastName(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldEQ(FieldLastName, v))
}

// Specialization applies equality check predicate on the "specialization" field. It's identical to SpecializationEQ.
func Specialization(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldEQ(FieldSpecialization, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.Therapist {
	return predicate.Therapist(sql.FieldEQ(FieldUserID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Therapist {
	return predicate.Therapist(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Therapist {
	return predicate.Therapist(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Therapist {
	return predicate.Therapist(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Therapist {
	return predicate.Therapist(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Therapist {
	return predicate.Therapist(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Therapist {
	return predicate.Therapist(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Therapist {
	return predicate.Therapist(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Therapist {
	return predicate.Therapist(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Therapist {
	return predicate.Therapist(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Therapist {
	return predicate.Therapist(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Therapist {
	return predicate.Therapist(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Therapist {
	return predicate.Therapist(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Therapist {
	return predicate.Therapist(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Therapist {
	return predicate.Therapist(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Therapist {
	return predicate.Therapist(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Therapist {
	return predicate.Therapist(sql.FieldLTE(FieldUpdatedAt, v))
}

// FirstNameEQ applies the EQ predicate on the "first_name" field.
func FirstNameEQ(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldEQ(FieldFirstName, v))
}

// FirstNameNEQ applies the NEQ predicate on the "first_name" field.
func FirstNameNEQ(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldNEQ(FieldFirstName, v))
}

// FirstNameIn applies the In predicate on the "first_name" field.
func FirstNameIn(vs ...string) predicate.Therapist {
	return predicate.Therapist(sql.FieldIn(FieldFirstName, vs...))
}

// FirstNameNotIn applies the NotIn predicate on the "first_name" field.
func FirstNameNotIn(vs ...string) predicate.Therapist {
	return predicate.Therapist(sql.FieldNotIn(FieldFirstName, vs...))
}

// FirstNameGT applies the GT predicate on the "first_name" field.
func FirstNameGT(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldGT(FieldFirstName, v))
}

// FirstNameGTE applies the GTE predicate on the "first_name" field.
func FirstNameGTE(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldGTE(FieldFirstName, v))
}

// FirstNameLT applies the LT predicate on the "first_name" field.
func FirstNameLT(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldLT(FieldFirstName, v))
}

// FirstNameLTE applies the LTE predicate on the "first_name" field.
func FirstNameLTE(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldLTE(FieldFirstName, v))
}

// FirstNameContains applies the Contains predicate on the "first_name" field.
func FirstNameContains(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldContains(FieldFirstName, v))
}

// FirstNameHasPrefix applies the HasPrefix predicate on the "first_name" field.
func FirstNameHasPrefix(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldHasPrefix(FieldFirstName, v))
}

// FirstNameHasSuffix applies the HasSuffix predicate on the "first_name" field.
func FirstNameHasSuffix(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldHasSuffix(FieldFirstName, v))
}

// FirstNameEqualFold applies the EqualFold predicate on the "first_name" field.
func FirstNameEqualFold(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldEqualFold(FieldFirstName, v))
}

// FirstNameContainsFold applies the ContainsFold predicate on the "first_name" field.
func FirstNameContainsFold(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldContainsFold(FieldFirstName, v))
}

// LastNameEQ applies the EQ predicate on the "last_name" field.
func LastNameEQ(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldEQ(FieldLastName, v))
}

// LastNameNEQ applies the NEQ predicate on the "last_name" field.
func LastNameNEQ(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldNEQ(FieldLastName, v))
}

// LastNameIn applies the In predicate on the "last_name" field.
func LastNameIn(vs ...string) predicate.Therapist {
	return predicate.Therapist(sql.FieldIn(FieldLastName, vs...))
}

// LastNameNotIn applies the NotIn predicate on the "last_name" field.
func LastNameNotIn(vs ...string) predicate.Therapist {
	return predicate.Therapist(sql.FieldNotIn(FieldLastName, vs...))
}

// LastNameGT applies the GT predicate on the "last_name" field.
func LastNameGT(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldGT(FieldLastName, v))
}

// LastNameGTE applies the GTE predicate on the "last_name" field.
func LastNameGTE(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldGTE(FieldLastName, v))
}

// LastNameLT applies the LT predicate on the "last_name" field.
func LastNameLT(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldLT(FieldLastName, v))
}

// LastNameLTE applies the LTE predicate on the "last_name" field.
func LastNameLTE(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldLTE(FieldLastName, v))
}

// LastNameContains applies the Contains predicate on the "last_name" field.
func LastNameContains(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldContains(FieldLastName, v))
}

// LastNameHasPrefix applies the HasPrefix predicate on the "last_name" field.
func LastNameHasPrefix(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldHasPrefix(FieldLastName, v))
}

// LastNameHasSuffix applies the HasSuffix predicate on the "last_name" field.
func LastNameHasSuffix(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldHasSuffix(FieldLastName, v))
}

// LastNameEqualFold applies the EqualFold predicate on the "last_name" field.
func LastNameEqualFold(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldEqualFold(FieldLastName, v))
}

// LastNameContainsFold applies the ContainsFold predicate on the "last_name" field.
func LastNameContainsFold(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldContainsFold(FieldLastName, v))
}

// SpecializationEQ applies the EQ predicate on the "specialization" field.
func SpecializationEQ(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldEQ(FieldSpecialization, v))
}

// SpecializationNEQ applies the NEQ predicate on the "specialization" field.
func SpecializationNEQ(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldNEQ(FieldSpecialization, v))
}

// SpecializationIn applies the In predicate on the "specialization" field.
func SpecializationIn(vs ...string) predicate.Therapist {
	return predicate.Therapist(sql.FieldIn(FieldSpecialization, vs...))
}

// SpecializationNotIn applies the NotIn predicate on the "specialization" field.
func SpecializationNotIn(vs ...string) predicate.Therapist {
	return predicate.Therapist(sql.FieldNotIn(FieldSpecialization, vs...))
}

// SpecializationGT applies the GT predicate on the "specialization" field.
func SpecializationGT(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldGT(FieldSpecialization, v))
}

// SpecializationGTE applies the GTE predicate on the "specialization" field.
func SpecializationGTE(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldGTE(FieldSpecialization, v))
}

// SpecializationLT applies the LT predicate on the "specialization" field.
func SpecializationLT(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldLT(FieldSpecialization, v))
}

// SpecializationLTE applies the LTE predicate on the "specialization" field.
func SpecializationLTE(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldLTE(FieldSpecialization, v))
}

// SpecializationContains applies the Contains predicate on the "specialization" field.
func SpecializationContains(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldContains(FieldSpecialization, v))
}

// SpecializationHasPrefix applies the HasPrefix predicate on the "specialization" field.
func SpecializationHasPrefix(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldHasPrefix(FieldSpecialization, v))
}

// SpecializationHasSuffix applies the HasSuffix predicate on the "specialization" field.
func SpecializationHasSuffix(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldHasSuffix(FieldSpecialization, v))
}

// SpecializationIsNil applies the IsNil predicate on the "specialization" field.
func SpecializationIsNil() predicate.Therapist {
	return predicate.Therapist(sql.FieldIsNull(FieldSpecialization))
}

// SpecializationNotNil applies the NotNil predicate on the "specialization" field.
func SpecializationNotNil() predicate.Therapist {
	return predicate.Therapist(sql.FieldNotNull(FieldSpecialization))
}

// SpecializationEqualFold applies the EqualFold predicate on the "specialization" field.
func SpecializationEqualFold(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldEqualFold(FieldSpecialization, v))
}

// SpecializationContainsFold applies the ContainsFold predicate on the "specialization" field.
func SpecializationContainsFold(v string) predicate.Therapist {
	return predicate.Therapist(sql.FieldContainsFold(FieldSpecialization, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.Therapist {
	return predicate.Therapist(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.Therapist {
	return predicate.Therapist(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.Therapist {
	return predicate.Therapist(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.Therapist {
	return predicate.Therapist(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDIsNil applies the IsNil predicate on the "user_id" field.
func UserIDIsNil() predicate.Therapist {
	return predicate.Therapist(sql.FieldIsNull(FieldUserID))
}

// UserIDNotNil applies the NotNil predicate on the "user_id" field.
func UserIDNotNil() predicate.Therapist {
	return predicate.Therapist(sql.FieldNotNull(FieldUserID))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.Therapist {
	return predicate.Therapist(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.Therapist {
	return predicate.Therapist(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSessions applies the HasEdge predicate on the "sessions" edge.
func HasSessions() predicate.Therapist {
	return predicate.Therapist(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SessionsTable, SessionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionsWith applies the HasEdge predicate on the "sessions" edge with a given conditions (other predicates).
func HasSessionsWith(preds ...predicate.Session) predicate.Therapist {
	return predicate.Therapist(func(s *sql.Selector) {
		step := newSessionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Therapist) predicate.Therapist {
	return predicate.Therapist(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Therapist) predicate.Therapist {
	return predicate.Therapist(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Therapist) predicate.Therapist {
	return predicate.Therapist(sql.NotPredicates(p))
}
