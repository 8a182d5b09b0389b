// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// Patient is the predicate function for patient builders.
type Patient func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)

// Therapist is the predicate function for therapist builders.
type Therapist func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
