package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// Therapist is the clinical profile. It may be linked 1:1 to a User account
// (the link is optional: a profile can exist without login credentials).
type Therapist struct {
	ent.Schema
}

func (Therapist) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Therapist) Fields() []ent.Field {
	return []ent.Field{
		field.String("first_name").
			NotEmpty().
			MaxLen(100),

		field.String("last_name").
			NotEmpty().
			MaxLen(100),

		field.String("specialization").
			Optional().
			Nillable().
			MaxLen(255),

		field.UUID("user_id", uuid.UUID{}).
			Optional().
			Nillable().
			Unique().
			Comment("FK -> users.id (1:1); deleting the profile keeps the user"),
	}
}

func (Therapist) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("user", User.Type).
			Unique().
			Field("user_id"),
		edge.To("sessions", Session.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
