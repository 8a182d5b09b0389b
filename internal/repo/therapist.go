// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/alfassih/praxis_backend/internal/repo/therapist"
	"github.com/alfassih/praxis_backend/internal/repo/user"
	"github.com/google/uuid"
)

// Therapist is the model entity for the Therapist schema.
type Therapist struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FirstName holds the value of the "first_name" field.
	FirstName string `json:"first_name,omitempty"`
	// LastName holds the value of the "last_name" field.
	LastName string `json:"last_name,omitempty"`
	// Specialization holds the value of the "specialization" field.
	Specialization *string `json:"specialization,omitempty"`
	// FK -> users.id (1:1); deleting the profile keeps the user
	UserID *uuid.UUID `json:"user_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TherapistQuery when eager-loading is set.
	Edges        TherapistEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TherapistEdges holds the relations/edges for other nodes in the graph.
type TherapistEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// Sessions holds the value of the sessions edge.
	Sessions []*Session `json:"sessions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TherapistEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// SessionsOrErr returns the Sessions value or an error if the edge
// was not loaded in eager-loading.
func (e TherapistEdges) SessionsOrErr() ([]*Session, error) {
	if e.loadedTypes[1] {
		return e.Sessions, nil
	}
	return nil, &NotLoadedError{edge: "sessions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Therapist) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case therapist.FieldUserID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case therapist.FieldFirstName, therapist.FieldLastName, therapist.FieldSpecialization:
			values[i] = new(sql.NullString)
		case therapist.FieldCreatedAt, therapist.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case therapist.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Therapist fields.
func (_m *Therapist) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case therapist.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case therapist.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case therapist.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case therapist.FieldFirstName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field first_name", values[i])
			} else if value.Valid {
				_m.FirstName = value.String
			}
		case therapist.FieldLastName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_name", values[i])
			} else if value.Valid {
				_m.LastName = value.String
			}
		case therapist.FieldSpecialization:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field specialization", values[i])
			} else if value.Valid {
				_m.Specialization = new(string)
				*_m.Specialization = value.String
			}
		case therapist.FieldUserID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = new(uuid.UUID)
				*_m.UserID = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Therapist.
// This includes values selected through modifiers, order, etc.
func (_m *Therapist) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the Therapist entity.
func (_m *Therapist) QueryUser() *UserQuery {
	return NewTherapistClient(_m.config).QueryUser(_m)
}

// QuerySessions queries the "sessions" edge of the Therapist entity.
func (_m *Therapist) QuerySessions() *SessionQuery {
	return NewTherapistClient(_m.config).QuerySessions(_m)
}

// Update returns a builder for updating this Therapist.
// Note that you need to call Therapist.Unwrap() before calling this method if this Therapist
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Therapist) Update() *TherapistUpdateOne {
	return NewTherapistClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Therapist entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Therapist) Unwrap() *Therapist {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Therapist is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Therapist) String() string {
	var builder strings.Builder
	builder.WriteString("Therapist(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("first_name=")
	builder.WriteString(_m.FirstName)
	builder.WriteString(", ")
	builder.WriteString("last_name=")
	builder.WriteString(_m.LastName)
	builder.WriteString(", ")
	if v := _m.Specialization; v != nil {
		builder.WriteString("specialization=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.UserID; v != nil {
		builder.WriteString("user_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Therapists is a parsable slice of Therapist.
type Therapists []*Therapist
