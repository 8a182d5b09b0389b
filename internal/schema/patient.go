package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Patient is the clinical subject: personal data, contact info and the
// free-text anamnesis (clinical history). Documents and sessions belong to
// exactly one patient and are removed together with it.
type Patient struct {
	ent.Schema
}

func (Patient) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Patient) Fields() []ent.Field {
	return []ent.Field{
		field.String("first_name").
			NotEmpty().
			MaxLen(100),

		field.String("last_name").
			NotEmpty().
			MaxLen(100),

		field.Time("date_of_birth").
			Optional().
			Nillable(),

		field.Text("contact_info").
			Optional().
			Nillable(),

		field.Text("anamnesis").
			Optional().
			Nillable().
			Comment("Free-text clinical history"),
	}
}

func (Patient) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("documents", Document.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("sessions", Session.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Patient) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("last_name", "first_name"),
	}
}
