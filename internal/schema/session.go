package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Session is a scheduled therapy appointment between one patient and one
// therapist (not a login session). The end-after-start rule is enforced by
// the session service, not by a database constraint.
type Session struct {
	ent.Schema
}

func (Session) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK -> patients.id"),

		field.UUID("therapist_id", uuid.UUID{}).
			Comment("FK -> therapists.id"),

		field.Time("start_time"),

		field.Time("end_time"),

		field.String("session_type").
			Optional().
			Nillable().
			MaxLen(100),

		field.Enum("status").
			Values("scheduled", "completed", "cancelled", "no_show").
			Default("scheduled"),

		field.Text("notes").
			Optional().
			Nillable(),
	}
}

func (Session) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("sessions").
			Unique().
			Required().
			Field("patient_id"),
		edge.From("therapist", Therapist.Type).
			Ref("sessions").
			Unique().
			Required().
			Field("therapist_id"),
	}
}

func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id", "start_time"),
		index.Fields("therapist_id", "status", "start_time"),
		index.Fields("status", "start_time"),
	}
}
