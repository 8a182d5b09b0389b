package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// User is a login-capable account. Roles are a closed enum; admins manage
// therapists and other users, therapists work with clinical records.
type User struct {
	ent.Schema
}

func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("email").
			Unique().
			NotEmpty().
			MaxLen(255),

		field.String("password_hash").
			NotEmpty().
			Sensitive().
			Comment("Argon2id PHC-format hash"),

		field.String("first_name").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("last_name").
			Optional().
			Nillable().
			MaxLen(100),

		field.Enum("role").
			Values("admin", "therapist"),

		field.Bool("is_active").
			Default(true).
			Comment("Inactive accounts cannot authenticate"),
	}
}

func (User) Edges() []ent.Edge {
	return []ent.Edge{}
}
